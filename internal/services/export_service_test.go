package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"shiftpro_backend/internal/models"
)

func TestExportImportRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	completeSetup(t, env)

	anna := addEmployee(t, env, "Anna", "Bianchi", "anna@trattoria.it", "12")
	addEmployee(t, env, "Luca", "Verdi", "luca@trattoria.it", "11")
	addShift(t, env, anna, "2026-01-05", "09:00", "17:00")

	payload, filename, err := env.export.ExportJSON("Marco Rossi")
	if err != nil {
		t.Fatalf("ExportJSON returned error: %v", err)
	}
	if !strings.HasPrefix(filename, "trattoria-roma-backup-") || !strings.HasSuffix(filename, ".json") {
		t.Fatalf("unexpected export filename %q", filename)
	}

	var bundle models.ExportBundle
	if err := json.Unmarshal(payload, &bundle); err != nil {
		t.Fatalf("export payload is not valid JSON: %v", err)
	}
	if bundle.ExportInfo.Version != models.ExportFormatVersion {
		t.Fatalf("expected format version %q, got %q", models.ExportFormatVersion, bundle.ExportInfo.Version)
	}
	if bundle.ExportInfo.ExportedBy != "Marco Rossi" {
		t.Fatalf("expected exporter stamp, got %q", bundle.ExportInfo.ExportedBy)
	}
	if bundle.ExportInfo.RecordCount.Employees != 2 || bundle.ExportInfo.RecordCount.Shifts != 1 {
		t.Fatalf("unexpected record counts: %+v", bundle.ExportInfo.RecordCount)
	}

	// Wipe the collections, then restore from the exported document.
	env.employeeRepo.ReplaceAll(nil)
	env.shiftRepo.ReplaceAll(nil)

	result, err := env.export.Import(payload)
	if err != nil {
		t.Fatalf("Import returned error: %v", err)
	}
	if result.Employees != 2 || result.Shifts != 1 {
		t.Fatalf("unexpected import result: %+v", result)
	}
	if got := len(env.employees.GetEmployees()); got != 2 {
		t.Fatalf("expected 2 employees after import, got %d", got)
	}
	if got := len(env.shifts.GetShifts()); got != 1 {
		t.Fatalf("expected 1 shift after import, got %d", got)
	}
}

func TestImportRejectsInvalidDocuments(t *testing.T) {
	env := newTestEnv(t)
	completeSetup(t, env)
	addEmployee(t, env, "Anna", "Bianchi", "anna@trattoria.it", "12")

	if _, err := env.export.Import([]byte("not json at all")); !errors.Is(err, ErrImportInvalid) {
		t.Fatalf("expected ErrImportInvalid for garbage, got %v", err)
	}
	if _, err := env.export.Import([]byte(`{"employees": []}`)); !errors.Is(err, ErrImportInvalid) {
		t.Fatalf("expected ErrImportInvalid for bundle without company, got %v", err)
	}

	payload, _, err := env.export.ExportJSON("tester")
	if err != nil {
		t.Fatalf("ExportJSON returned error: %v", err)
	}
	tampered := bytes.Replace(payload, []byte(`"version": "`+models.ExportFormatVersion+`"`), []byte(`"version": "0.9"`), 1)
	if _, err := env.export.Import(tampered); !errors.Is(err, ErrImportVersion) {
		t.Fatalf("expected ErrImportVersion, got %v", err)
	}

	// Every rejection must leave the collections untouched.
	if got := len(env.employees.GetEmployees()); got != 1 {
		t.Fatalf("expected roster untouched after rejected imports, got %d", got)
	}
}

func TestExportExcelProducesWorkbook(t *testing.T) {
	env := newTestEnv(t)
	completeSetup(t, env)
	anna := addEmployee(t, env, "Anna", "Bianchi", "anna@trattoria.it", "12")
	addShift(t, env, anna, "2026-01-05", "09:00", "17:00")

	payload, filename, err := env.export.ExportExcel("tester")
	if err != nil {
		t.Fatalf("ExportExcel returned error: %v", err)
	}
	if !strings.HasSuffix(filename, ".xlsx") {
		t.Fatalf("unexpected excel filename %q", filename)
	}
	// xlsx is a zip container; check the magic bytes rather than parsing.
	if len(payload) < 4 || !bytes.HasPrefix(payload, []byte("PK")) {
		t.Fatal("expected a zip-packaged workbook")
	}
}

func TestExportBeforeSetup(t *testing.T) {
	env := newTestEnv(t)
	if _, _, err := env.export.ExportJSON("tester"); !errors.Is(err, ErrCompanyNotFound) {
		t.Fatalf("expected ErrCompanyNotFound, got %v", err)
	}
}
