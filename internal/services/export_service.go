package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"shiftpro_backend/internal/models"
	"shiftpro_backend/internal/repositories"
	"shiftpro_backend/pkg/utils"

	"github.com/xuri/excelize/v2"
)

// --- Custom Service Errors for Export/Import ---
var (
	ErrExportFailed  = errors.New("export failed")
	ErrImportInvalid = errors.New("import document is not a valid backup bundle")
	ErrImportVersion = errors.New("unsupported backup format version")
)

// ImportResult reports what a restore brought in.
type ImportResult struct {
	Employees int `json:"employees"`
	Shifts    int `json:"shifts"`
}

// ExportService bundles the company, roster and calendar into a downloadable
// document, and restores a previously exported bundle.
type ExportService interface {
	BuildBundle(exportedBy string) (*models.ExportBundle, error)
	// ExportJSON renders the bundle as the backup JSON document and returns
	// the payload plus its download filename.
	ExportJSON(exportedBy string) ([]byte, string, error)
	// ExportExcel renders the bundle as an xlsx workbook with one sheet per
	// collection.
	ExportExcel(exportedBy string) ([]byte, string, error)
	// Import replaces the employee and shift collections with the bundle's
	// contents. The company record is kept; only its collections move.
	Import(data []byte) (*ImportResult, error)
}

type exportService struct {
	companyRepo  repositories.CompanyRepository
	employeeRepo repositories.EmployeeRepository
	shiftRepo    repositories.ShiftRepository
}

// NewExportService creates a new instance of ExportService.
func NewExportService(
	companyRepo repositories.CompanyRepository,
	employeeRepo repositories.EmployeeRepository,
	shiftRepo repositories.ShiftRepository,
) ExportService {
	return &exportService{companyRepo: companyRepo, employeeRepo: employeeRepo, shiftRepo: shiftRepo}
}

func (s *exportService) BuildBundle(exportedBy string) (*models.ExportBundle, error) {
	company, err := s.companyRepo.Get()
	if err != nil {
		return nil, ErrCompanyNotFound
	}
	employees := s.employeeRepo.GetAll()
	shifts := s.shiftRepo.GetAll()

	return &models.ExportBundle{
		Company:   company,
		Employees: employees,
		Shifts:    shifts,
		ExportInfo: models.ExportInfo{
			ExportedBy: exportedBy,
			ExportedAt: time.Now(),
			Version:    models.ExportFormatVersion,
			RecordCount: models.RecordCount{
				Employees: len(employees),
				Shifts:    len(shifts),
			},
		},
	}, nil
}

func (s *exportService) ExportJSON(exportedBy string) ([]byte, string, error) {
	bundle, err := s.BuildBundle(exportedBy)
	if err != nil {
		return nil, "", err
	}
	payload, err := json.MarshalIndent(bundle, "", "  ")
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrExportFailed, err)
	}
	filename := exportFilename(bundle.Company.Name, "json")
	return payload, filename, nil
}

var employeeSheetHeader = []string{
	"ID", "Name", "Surname", "Email", "Phone", "Role", "Department",
	"Hourly Rate", "Contract Type", "Start Date", "Active",
}

var shiftSheetHeader = []string{
	"ID", "Employee", "Date", "Day", "Start", "End", "Position",
	"Type", "Break (min)", "Status", "Notes",
}

func (s *exportService) ExportExcel(exportedBy string) ([]byte, string, error) {
	bundle, err := s.BuildBundle(exportedBy)
	if err != nil {
		return nil, "", err
	}

	byID := make(map[string]string, len(bundle.Employees))
	for _, employee := range bundle.Employees {
		byID[employee.ID] = employee.FullName
	}

	f := excelize.NewFile()
	defer f.Close()

	const employeeSheet = "Employees"
	const shiftSheet = "Shifts"

	f.SetSheetName("Sheet1", employeeSheet)
	if _, err := f.NewSheet(shiftSheet); err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrExportFailed, err)
	}

	for col, title := range employeeSheetHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(employeeSheet, cell, title)
	}
	for row, employee := range bundle.Employees {
		values := []interface{}{
			employee.ID, employee.Name, employee.Surname, employee.Email,
			employee.Phone, employee.Role, employee.Department,
			employee.HourlyRate, employee.ContractType, employee.StartDate,
			employee.IsActive,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(employeeSheet, cell, v)
		}
	}

	for col, title := range shiftSheetHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(shiftSheet, cell, title)
	}
	for row, shift := range bundle.Shifts {
		employeeName := byID[shift.EmployeeID]
		if employeeName == "" {
			employeeName = shift.EmployeeID
		}
		values := []interface{}{
			shift.ID, employeeName, shift.Date, shift.Day, shift.StartTime,
			shift.EndTime, shift.Position, shift.ShiftType,
			shift.BreakMinutes, shift.Status, shift.Notes,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(shiftSheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrExportFailed, err)
	}
	filename := exportFilename(bundle.Company.Name, "xlsx")
	return buf.Bytes(), filename, nil
}

// Import validates a previously exported bundle and replaces the employee and
// shift collections with its contents.
func (s *exportService) Import(data []byte) (*ImportResult, error) {
	var bundle models.ExportBundle
	if err := json.Unmarshal(data, &bundle); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImportInvalid, err)
	}
	if bundle.Company == nil || bundle.ExportInfo.Version == "" {
		return nil, ErrImportInvalid
	}
	if bundle.ExportInfo.Version != models.ExportFormatVersion {
		return nil, fmt.Errorf("%w: '%s'", ErrImportVersion, bundle.ExportInfo.Version)
	}

	s.employeeRepo.ReplaceAll(bundle.Employees)
	s.shiftRepo.ReplaceAll(bundle.Shifts)

	utils.LogInfo("Backup imported", map[string]interface{}{
		"employees": len(bundle.Employees),
		"shifts":    len(bundle.Shifts),
	})
	return &ImportResult{Employees: len(bundle.Employees), Shifts: len(bundle.Shifts)}, nil
}

func exportFilename(companyName, extension string) string {
	date := time.Now().Format(models.DateLayout)
	prefix := utils.SlugifyFilename(companyName)
	if prefix == "" {
		prefix = "shiftpro"
	}
	return prefix + "-backup-" + date + "." + extension
}
