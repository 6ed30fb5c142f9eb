package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"shiftpro_backend/internal/models"
	"shiftpro_backend/internal/repositories"
	"shiftpro_backend/pkg/utils"

	"github.com/google/uuid"
)

// --- Custom Service Errors for Employees ---
var (
	ErrEmployeeNotFound     = errors.New("employee not found")
	ErrEmployeeValidation   = errors.New("employee validation error")
	ErrEmployeeEmailExists  = errors.New("an employee with this email already exists")
	ErrEmployeeRateInvalid  = errors.New("hourly rate must be a non-negative number")
	ErrEmployeeContractType = errors.New("unknown contract type")
)

// --- Employee DTOs ---

// EmployeeRequest is the employee form payload. The hourly rate arrives as a
// string the way form inputs do and must parse as a non-negative number.
type EmployeeRequest struct {
	Name         string `json:"name" binding:"required"`
	Surname      string `json:"surname" binding:"required"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Role         string `json:"role" binding:"required"`
	Department   string `json:"department"`
	HourlyRate   string `json:"hourly_rate" binding:"required"`
	ContractType string `json:"contract_type"`
	StartDate    string `json:"start_date"`
	Notes        string `json:"notes"`
	Avatar       string `json:"avatar"`
	IsActive     *bool  `json:"is_active"`
}

// --- EmployeeService Interface ---
type EmployeeService interface {
	CreateEmployee(req EmployeeRequest, createdBy string) (*models.Employee, error)
	GetEmployees() []models.Employee
	GetEmployeeByID(id string) (*models.Employee, error)
	UpdateEmployee(id string, req EmployeeRequest) (*models.Employee, error)
	// DeleteEmployee removes the employee and cascades deletion of every
	// shift referencing it. Returns how many shifts were removed.
	DeleteEmployee(id string) (int, error)
}

type employeeService struct {
	employeeRepo repositories.EmployeeRepository
	shiftRepo    repositories.ShiftRepository
	companyRepo  repositories.CompanyRepository
}

// NewEmployeeService creates a new instance of EmployeeService.
func NewEmployeeService(
	employeeRepo repositories.EmployeeRepository,
	shiftRepo repositories.ShiftRepository,
	companyRepo repositories.CompanyRepository,
) EmployeeService {
	return &employeeService{employeeRepo: employeeRepo, shiftRepo: shiftRepo, companyRepo: companyRepo}
}

// validateEmployeeRequest applies the shared create/update rules and returns
// the parsed hourly rate.
func (s *employeeService) validateEmployeeRequest(req EmployeeRequest, excludeID string) (float64, error) {
	if utils.IsEmpty(req.Name) || utils.IsEmpty(req.Surname) || utils.IsEmpty(req.Role) || utils.IsEmpty(req.HourlyRate) {
		return 0, fmt.Errorf("%w: name, surname, role and hourly rate are required", ErrEmployeeValidation)
	}
	rate, ok := utils.ParseNonNegativeFloat(strings.TrimSpace(req.HourlyRate))
	if !ok {
		return 0, ErrEmployeeRateInvalid
	}
	if !utils.IsEmpty(req.Email) {
		if _, err := s.employeeRepo.FindByEmail(req.Email, excludeID); err == nil {
			return 0, ErrEmployeeEmailExists
		}
	}
	if req.ContractType != "" && !models.IsKnownContractType(req.ContractType) {
		return 0, fmt.Errorf("%w: '%s'", ErrEmployeeContractType, req.ContractType)
	}
	return rate, nil
}

func (s *employeeService) CreateEmployee(req EmployeeRequest, createdBy string) (*models.Employee, error) {
	rate, err := s.validateEmployeeRequest(req, "")
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	surname := strings.TrimSpace(req.Surname)

	contractType := req.ContractType
	if contractType == "" {
		contractType = models.ContractFullTime
	}
	startDate := req.StartDate
	if utils.IsEmpty(startDate) {
		startDate = time.Now().Format(models.DateLayout)
	}
	department := req.Department
	if utils.IsEmpty(department) {
		department = models.DefaultDepartment
	}
	avatar := req.Avatar
	if avatar == "" {
		avatar = models.DefaultEmployeeAvatar
	}

	companyID := ""
	if company, err := s.companyRepo.Get(); err == nil {
		companyID = company.ID
	}

	employee := &models.Employee{
		ID:           uuid.NewString(),
		CompanyID:    companyID,
		Name:         name,
		Surname:      surname,
		FullName:     name + " " + surname,
		Email:        utils.NormalizeEmail(req.Email),
		Phone:        strings.TrimSpace(req.Phone),
		Role:         strings.TrimSpace(req.Role),
		Department:   department,
		HourlyRate:   rate,
		ContractType: contractType,
		StartDate:    startDate,
		Notes:        req.Notes,
		Avatar:       avatar,
		IsActive:     true,
		CreatedBy:    createdBy,
		CreatedAt:    time.Now(),
	}

	if err := s.employeeRepo.Create(employee); err != nil {
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}
	return employee, nil
}

func (s *employeeService) GetEmployees() []models.Employee {
	return s.employeeRepo.GetAll()
}

func (s *employeeService) GetEmployeeByID(id string) (*models.Employee, error) {
	employee, err := s.employeeRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee by ID: %w", err)
	}
	return employee, nil
}

// UpdateEmployee preserves identity, recomputes the display name and stamps
// the update timestamp.
func (s *employeeService) UpdateEmployee(id string, req EmployeeRequest) (*models.Employee, error) {
	employee, err := s.employeeRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to find employee for update: %w", err)
	}

	rate, err := s.validateEmployeeRequest(req, id)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	surname := strings.TrimSpace(req.Surname)

	employee.Name = name
	employee.Surname = surname
	employee.FullName = name + " " + surname
	employee.Email = utils.NormalizeEmail(req.Email)
	employee.Phone = strings.TrimSpace(req.Phone)
	employee.Role = strings.TrimSpace(req.Role)
	employee.HourlyRate = rate
	employee.Notes = req.Notes
	if !utils.IsEmpty(req.Department) {
		employee.Department = req.Department
	}
	if req.ContractType != "" {
		employee.ContractType = req.ContractType
	}
	if !utils.IsEmpty(req.StartDate) {
		employee.StartDate = req.StartDate
	}
	if req.Avatar != "" {
		employee.Avatar = req.Avatar
	}
	if req.IsActive != nil {
		employee.IsActive = *req.IsActive
	}
	now := time.Now()
	employee.UpdatedAt = &now

	if err := s.employeeRepo.Update(employee); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}
	return employee, nil
}

func (s *employeeService) DeleteEmployee(id string) (int, error) {
	if _, err := s.employeeRepo.GetByID(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return 0, ErrEmployeeNotFound
		}
		return 0, fmt.Errorf("failed to find employee for deletion: %w", err)
	}
	if err := s.employeeRepo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return 0, ErrEmployeeNotFound
		}
		return 0, fmt.Errorf("failed to delete employee: %w", err)
	}
	removed := s.shiftRepo.DeleteByEmployeeID(id)
	if removed > 0 {
		utils.LogInfo("Cascade-deleted shifts for employee", map[string]interface{}{"employee_id": id, "shifts": removed})
	}
	return removed, nil
}
