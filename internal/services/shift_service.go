package services

import (
	"errors"
	"fmt"
	"time"

	"shiftpro_backend/internal/models"
	"shiftpro_backend/internal/repositories"
	"shiftpro_backend/pkg/utils"

	"github.com/google/uuid"
)

// --- Custom Service Errors for Shifts ---
var (
	ErrShiftNotFound        = errors.New("shift not found")
	ErrShiftValidation      = errors.New("shift validation error")
	ErrShiftTimeOrder       = errors.New("end time must be after start time")
	ErrShiftTimeFormat      = errors.New("invalid time format, use HH:MM")
	ErrShiftDateFormat      = errors.New("invalid date format, use YYYY-MM-DD")
	ErrShiftPositionUnknown = errors.New("position is not in the configured position list")
)

// --- Shift DTOs ---

// CreateShiftRequest is the shift form payload.
type CreateShiftRequest struct {
	EmployeeID   string `json:"employee_id" binding:"required"`
	Date         string `json:"date" binding:"required"`
	StartTime    string `json:"start_time" binding:"required"`
	EndTime      string `json:"end_time" binding:"required"`
	Position     string `json:"position" binding:"required"`
	ShiftType    string `json:"shift_type"`
	BreakMinutes *int   `json:"break_minutes"`
	Notes        string `json:"notes"`
}

// --- ShiftService Interface ---
type ShiftService interface {
	CreateShift(req CreateShiftRequest, createdBy string) (*models.Shift, error)
	GetShifts() []models.Shift
	GetShiftByID(id string) (*models.Shift, error)
	DeleteShift(id string) error
	// DuplicateWeek clones every existing shift with a fresh identifier and
	// creation timestamp, appending to the calendar. Returns the clone count.
	DuplicateWeek() (int, error)
}

type shiftService struct {
	shiftRepo    repositories.ShiftRepository
	employeeRepo repositories.EmployeeRepository
	companyRepo  repositories.CompanyRepository
}

// NewShiftService creates a new instance of ShiftService.
func NewShiftService(
	shiftRepo repositories.ShiftRepository,
	employeeRepo repositories.EmployeeRepository,
	companyRepo repositories.CompanyRepository,
) ShiftService {
	return &shiftService{shiftRepo: shiftRepo, employeeRepo: employeeRepo, companyRepo: companyRepo}
}

func (s *shiftService) CreateShift(req CreateShiftRequest, createdBy string) (*models.Shift, error) {
	if utils.IsEmpty(req.EmployeeID) || utils.IsEmpty(req.Date) ||
		utils.IsEmpty(req.StartTime) || utils.IsEmpty(req.EndTime) || utils.IsEmpty(req.Position) {
		return nil, fmt.Errorf("%w: employee, date, start time, end time and position are required", ErrShiftValidation)
	}

	if _, err := time.Parse(models.DateLayout, req.Date); err != nil {
		return nil, ErrShiftDateFormat
	}
	if _, err := time.Parse(models.ClockLayout, req.StartTime); err != nil {
		return nil, ErrShiftTimeFormat
	}
	if _, err := time.Parse(models.ClockLayout, req.EndTime); err != nil {
		return nil, ErrShiftTimeFormat
	}
	// Both are zero-padded 24h strings, so string order is time order.
	if req.StartTime >= req.EndTime {
		return nil, fmt.Errorf("%w: %s", ErrShiftValidation, ErrShiftTimeOrder)
	}

	if _, err := s.employeeRepo.GetByID(req.EmployeeID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: employee %s not found for shift", ErrEmployeeNotFound, req.EmployeeID)
		}
		return nil, fmt.Errorf("failed to validate employee for shift: %w", err)
	}

	company, err := s.companyRepo.Get()
	if err != nil {
		return nil, ErrSetupRequired
	}
	if !containsString(company.Positions, req.Position) {
		return nil, fmt.Errorf("%w: '%s'", ErrShiftPositionUnknown, req.Position)
	}
	if company.Settings.RequireNotes && utils.IsEmpty(req.Notes) {
		return nil, fmt.Errorf("%w: notes are required by company settings", ErrShiftValidation)
	}

	shiftType := req.ShiftType
	if shiftType == "" {
		shiftType = models.DefaultShiftType
	}
	breakMinutes := company.Settings.BreakDuration
	if req.BreakMinutes != nil {
		if *req.BreakMinutes < 0 {
			return nil, fmt.Errorf("%w: break minutes cannot be negative", ErrShiftValidation)
		}
		breakMinutes = *req.BreakMinutes
	}

	shift := &models.Shift{
		ID:           uuid.NewString(),
		CompanyID:    company.ID,
		EmployeeID:   req.EmployeeID,
		Date:         req.Date,
		Day:          models.WeekdayName(req.Date),
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Position:     req.Position,
		ShiftType:    shiftType,
		BreakMinutes: breakMinutes,
		Notes:        req.Notes,
		Status:       models.ShiftStatusScheduled,
		CreatedBy:    createdBy,
		CreatedAt:    time.Now(),
	}

	if err := s.shiftRepo.Create(shift); err != nil {
		return nil, fmt.Errorf("failed to create shift: %w", err)
	}
	return shift, nil
}

func (s *shiftService) GetShifts() []models.Shift {
	return s.shiftRepo.GetAll()
}

func (s *shiftService) GetShiftByID(id string) (*models.Shift, error) {
	shift, err := s.shiftRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrShiftNotFound
		}
		return nil, fmt.Errorf("failed to get shift by ID: %w", err)
	}
	return shift, nil
}

func (s *shiftService) DeleteShift(id string) error {
	if err := s.shiftRepo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrShiftNotFound
		}
		return fmt.Errorf("failed to delete shift: %w", err)
	}
	return nil
}

func (s *shiftService) DuplicateWeek() (int, error) {
	existing := s.shiftRepo.GetAll()
	if len(existing) == 0 {
		return 0, nil
	}

	now := time.Now()
	clones := make([]models.Shift, 0, len(existing))
	for _, shift := range existing {
		clone := shift
		clone.ID = uuid.NewString()
		clone.CreatedAt = now
		clones = append(clones, clone)
	}

	if err := s.shiftRepo.CreateBatch(clones); err != nil {
		return 0, fmt.Errorf("failed to duplicate week: %w", err)
	}
	utils.LogInfo("Duplicated week", map[string]interface{}{"shifts": len(clones)})
	return len(clones), nil
}

func containsString(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
