package services

import (
	"errors"
	"testing"

	"shiftpro_backend/internal/models"
)

func TestCreateShiftDefaults(t *testing.T) {
	env := newTestEnv(t)
	completeSetup(t, env)
	employeeID := addEmployee(t, env, "Anna", "Bianchi", "anna@trattoria.it", "12")

	shift, err := env.shifts.CreateShift(CreateShiftRequest{
		EmployeeID: employeeID,
		Date:       "2026-01-05",
		StartTime:  "09:00",
		EndTime:    "17:00",
		Position:   "Kitchen",
	}, "creator-id")
	if err != nil {
		t.Fatalf("CreateShift returned error: %v", err)
	}

	if shift.ShiftType != models.DefaultShiftType {
		t.Fatalf("expected default shift type, got %q", shift.ShiftType)
	}
	if shift.BreakMinutes != models.DefaultBreakDuration {
		t.Fatalf("expected break from company settings, got %d", shift.BreakMinutes)
	}
	if shift.Status != models.ShiftStatusScheduled {
		t.Fatalf("expected scheduled status, got %q", shift.Status)
	}
	if shift.Day != "Monday" {
		t.Fatalf("expected derived weekday Monday for 2026-01-05, got %q", shift.Day)
	}
	if shift.CreatedBy != "creator-id" {
		t.Fatalf("expected creator stamp, got %q", shift.CreatedBy)
	}
}

func TestCreateShiftRejectsReversedTimes(t *testing.T) {
	env := newTestEnv(t)
	completeSetup(t, env)
	employeeID := addEmployee(t, env, "Anna", "Bianchi", "anna@trattoria.it", "12")

	for _, tc := range []struct{ start, end string }{
		{"17:00", "09:00"},
		{"09:00", "09:00"},
	} {
		if _, err := env.shifts.CreateShift(CreateShiftRequest{
			EmployeeID: employeeID,
			Date:       "2026-01-05",
			StartTime:  tc.start,
			EndTime:    tc.end,
			Position:   "Floor",
		}, ""); !errors.Is(err, ErrShiftValidation) {
			t.Fatalf("expected ErrShiftValidation for %s-%s, got %v", tc.start, tc.end, err)
		}
	}
	if got := len(env.shifts.GetShifts()); got != 0 {
		t.Fatalf("expected calendar untouched after rejections, got %d shifts", got)
	}
}

func TestCreateShiftFormatValidation(t *testing.T) {
	env := newTestEnv(t)
	completeSetup(t, env)
	employeeID := addEmployee(t, env, "Anna", "Bianchi", "anna@trattoria.it", "12")

	base := CreateShiftRequest{
		EmployeeID: employeeID,
		Date:       "2026-01-05",
		StartTime:  "09:00",
		EndTime:    "17:00",
		Position:   "Floor",
	}

	req := base
	req.Date = "05/01/2026"
	if _, err := env.shifts.CreateShift(req, ""); !errors.Is(err, ErrShiftDateFormat) {
		t.Fatalf("expected ErrShiftDateFormat, got %v", err)
	}

	req = base
	req.StartTime = "9am"
	if _, err := env.shifts.CreateShift(req, ""); !errors.Is(err, ErrShiftTimeFormat) {
		t.Fatalf("expected ErrShiftTimeFormat, got %v", err)
	}

	req = base
	req.Position = "Astronaut"
	if _, err := env.shifts.CreateShift(req, ""); !errors.Is(err, ErrShiftPositionUnknown) {
		t.Fatalf("expected ErrShiftPositionUnknown, got %v", err)
	}

	req = base
	req.EmployeeID = "missing"
	if _, err := env.shifts.CreateShift(req, ""); !errors.Is(err, ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func TestCreateShiftRequiresNotesWhenConfigured(t *testing.T) {
	env := newTestEnv(t)
	completeSetup(t, env)
	employeeID := addEmployee(t, env, "Anna", "Bianchi", "anna@trattoria.it", "12")

	require := true
	if _, err := env.company.UpdateSettings(UpdateSettingsRequest{RequireNotes: &require}); err != nil {
		t.Fatalf("UpdateSettings returned error: %v", err)
	}

	req := CreateShiftRequest{
		EmployeeID: employeeID,
		Date:       "2026-01-05",
		StartTime:  "09:00",
		EndTime:    "17:00",
		Position:   "Floor",
	}
	if _, err := env.shifts.CreateShift(req, ""); !errors.Is(err, ErrShiftValidation) {
		t.Fatalf("expected ErrShiftValidation without notes, got %v", err)
	}
	req.Notes = "covering for Luca"
	if _, err := env.shifts.CreateShift(req, ""); err != nil {
		t.Fatalf("expected shift with notes to pass, got %v", err)
	}
}

func TestDeleteShift(t *testing.T) {
	env := newTestEnv(t)
	completeSetup(t, env)
	employeeID := addEmployee(t, env, "Anna", "Bianchi", "anna@trattoria.it", "12")
	shiftID := addShift(t, env, employeeID, "2026-01-05", "09:00", "17:00")

	if err := env.shifts.DeleteShift(shiftID); err != nil {
		t.Fatalf("DeleteShift returned error: %v", err)
	}
	if err := env.shifts.DeleteShift(shiftID); !errors.Is(err, ErrShiftNotFound) {
		t.Fatalf("expected ErrShiftNotFound on second delete, got %v", err)
	}
}

func TestDuplicateWeek(t *testing.T) {
	env := newTestEnv(t)
	completeSetup(t, env)
	employeeID := addEmployee(t, env, "Anna", "Bianchi", "anna@trattoria.it", "12")

	count, err := env.shifts.DuplicateWeek()
	if err != nil {
		t.Fatalf("DuplicateWeek returned error: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected empty calendar to duplicate 0 shifts, got %d", count)
	}

	addShift(t, env, employeeID, "2026-01-05", "09:00", "17:00")
	addShift(t, env, employeeID, "2026-01-06", "10:00", "18:00")

	count, err = env.shifts.DuplicateWeek()
	if err != nil {
		t.Fatalf("DuplicateWeek returned error: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 duplicated shifts, got %d", count)
	}

	shifts := env.shifts.GetShifts()
	if len(shifts) != 4 {
		t.Fatalf("expected 4 shifts after duplication, got %d", len(shifts))
	}
	seen := make(map[string]bool)
	for _, shift := range shifts {
		if seen[shift.ID] {
			t.Fatalf("duplicate shift ID %q", shift.ID)
		}
		seen[shift.ID] = true
		if shift.CreatedBy != "test-admin" {
			t.Fatalf("expected clones to keep the original creator, got %q", shift.CreatedBy)
		}
	}
}
