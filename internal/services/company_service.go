package services

import (
	"errors"
	"fmt"

	"shiftpro_backend/internal/models"
	"shiftpro_backend/internal/repositories"
)

var (
	ErrCompanyNotFound    = errors.New("company not configured")
	ErrSettingsValidation = errors.New("settings validation error")
)

// UpdateSettingsRequest carries partial settings edits; nil fields are left
// unchanged.
type UpdateSettingsRequest struct {
	WorkWeekStart      *int     `json:"work_week_start"`
	OvertimeThreshold  *float64 `json:"overtime_threshold"`
	DefaultShiftLength *int     `json:"default_shift_length"`
	BreakDuration      *int     `json:"break_duration"`
	AllowOverlapping   *bool    `json:"allow_overlapping"`
	RequireNotes       *bool    `json:"require_notes"`
}

// CompanyService exposes the tenant profile and its settings.
type CompanyService interface {
	GetCompany() (*models.Company, error)
	UpdateSettings(req UpdateSettingsRequest) (*models.Company, error)
}

type companyService struct {
	companyRepo repositories.CompanyRepository
}

// NewCompanyService creates a new instance of CompanyService.
func NewCompanyService(companyRepo repositories.CompanyRepository) CompanyService {
	return &companyService{companyRepo: companyRepo}
}

func (s *companyService) GetCompany() (*models.Company, error) {
	company, err := s.companyRepo.Get()
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to load company: %w", err)
	}
	return company, nil
}

func (s *companyService) UpdateSettings(req UpdateSettingsRequest) (*models.Company, error) {
	company, err := s.companyRepo.Get()
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to load company for settings update: %w", err)
	}

	if req.WorkWeekStart != nil {
		if *req.WorkWeekStart < 0 || *req.WorkWeekStart > 6 {
			return nil, fmt.Errorf("%w: work week start must be a weekday index (0-6)", ErrSettingsValidation)
		}
		company.Settings.WorkWeekStart = *req.WorkWeekStart
	}
	if req.OvertimeThreshold != nil {
		if *req.OvertimeThreshold < 0 {
			return nil, fmt.Errorf("%w: overtime threshold cannot be negative", ErrSettingsValidation)
		}
		company.Settings.OvertimeThreshold = *req.OvertimeThreshold
	}
	if req.DefaultShiftLength != nil {
		if *req.DefaultShiftLength <= 0 || *req.DefaultShiftLength > 24 {
			return nil, fmt.Errorf("%w: default shift length must be between 1 and 24 hours", ErrSettingsValidation)
		}
		company.Settings.DefaultShiftLength = *req.DefaultShiftLength
	}
	if req.BreakDuration != nil {
		if *req.BreakDuration < 0 {
			return nil, fmt.Errorf("%w: break duration cannot be negative", ErrSettingsValidation)
		}
		company.Settings.BreakDuration = *req.BreakDuration
	}
	if req.AllowOverlapping != nil {
		company.Settings.AllowOverlapping = *req.AllowOverlapping
	}
	if req.RequireNotes != nil {
		company.Settings.RequireNotes = *req.RequireNotes
	}

	if err := s.companyRepo.Save(company); err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}
	return company, nil
}
