package services

import (
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"shiftpro_backend/internal/models"
	"shiftpro_backend/internal/repositories"
	"shiftpro_backend/pkg/utils"
)

// AnalyticsService derives the weekly aggregates from the employee roster and
// the shift calendar.
type AnalyticsService interface {
	WeeklySummary() (*models.WeeklySummary, error)
	// WeeklySummaryAt computes the summary for the week containing now.
	WeeklySummaryAt(now time.Time) (*models.WeeklySummary, error)
}

// summaryKey identifies the inputs a cached summary was computed from.
type summaryKey struct {
	employeeVersion uint64
	shiftVersion    uint64
	weekStart       string
	threshold       float64
}

type analyticsService struct {
	employeeRepo repositories.EmployeeRepository
	shiftRepo    repositories.ShiftRepository
	companyRepo  repositories.CompanyRepository

	mu     sync.Mutex
	key    summaryKey
	cached *models.WeeklySummary
}

// NewAnalyticsService creates a new instance of AnalyticsService.
func NewAnalyticsService(
	employeeRepo repositories.EmployeeRepository,
	shiftRepo repositories.ShiftRepository,
	companyRepo repositories.CompanyRepository,
) AnalyticsService {
	return &analyticsService{employeeRepo: employeeRepo, shiftRepo: shiftRepo, companyRepo: companyRepo}
}

// CalculateHours returns the duration in hours between two "HH:MM" clock
// strings, clamped at zero. Malformed inputs yield 0, not an error.
func CalculateHours(startTime, endTime string) float64 {
	startMinutes, ok := minutesOfDay(startTime)
	if !ok {
		return 0
	}
	endMinutes, ok := minutesOfDay(endTime)
	if !ok {
		return 0
	}
	total := endMinutes - startMinutes
	if total < 0 {
		return 0
	}
	return float64(total) / 60
}

func minutesOfDay(clock string) (int, bool) {
	parts := strings.Split(clock, ":")
	if len(parts) != 2 {
		return 0, false
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}
	return hours*60 + minutes, true
}

// weekBounds returns the YYYY-MM-DD start and end (inclusive) of the work
// week containing now, for the configured week start day.
func weekBounds(now time.Time, weekStart int) (string, string) {
	offset := (int(now.Weekday()) - weekStart + 7) % 7
	start := now.AddDate(0, 0, -offset)
	end := start.AddDate(0, 0, 6)
	return start.Format(models.DateLayout), end.Format(models.DateLayout)
}

func (s *analyticsService) WeeklySummary() (*models.WeeklySummary, error) {
	return s.WeeklySummaryAt(time.Now())
}

func (s *analyticsService) WeeklySummaryAt(now time.Time) (*models.WeeklySummary, error) {
	company, err := s.companyRepo.Get()
	if err != nil {
		return nil, ErrCompanyNotFound
	}

	weekStartDay := company.Settings.WorkWeekStart
	threshold := company.Settings.OvertimeThreshold
	if threshold <= 0 {
		threshold = models.DefaultOvertimeThreshold
	}
	weekStart, weekEnd := weekBounds(now, weekStartDay)

	key := summaryKey{
		employeeVersion: s.employeeRepo.Version(),
		shiftVersion:    s.shiftRepo.Version(),
		weekStart:       weekStart,
		threshold:       threshold,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cached != nil && s.key == key {
		copied := *s.cached
		return &copied, nil
	}

	summary := s.compute(weekStart, weekEnd, threshold)
	s.key = key
	s.cached = summary
	copied := *summary
	return &copied, nil
}

func (s *analyticsService) compute(weekStart, weekEnd string, threshold float64) *models.WeeklySummary {
	employees := s.employeeRepo.GetAll()
	shifts := s.shiftRepo.GetAll()

	byID := make(map[string]*models.Employee, len(employees))
	activeCount := 0
	for i := range employees {
		byID[employees[i].ID] = &employees[i]
		if employees[i].IsActive {
			activeCount++
		}
	}

	// Dates are zero-padded YYYY-MM-DD, so string comparison is date order.
	var week []models.Shift
	for _, shift := range shifts {
		if shift.Date >= weekStart && shift.Date <= weekEnd {
			week = append(week, shift)
		}
	}

	var totalHours, totalCost float64
	hoursByEmployee := make(map[string]float64)
	for _, shift := range week {
		hours := CalculateHours(shift.StartTime, shift.EndTime)
		hoursByEmployee[shift.EmployeeID] += hours
		employee, ok := byID[shift.EmployeeID]
		if !ok {
			// Stale reference: the employee was deleted out from under the
			// shift. Skipped, not raised.
			continue
		}
		totalHours += hours
		totalCost += hours * employee.HourlyRate
	}

	departmentStats := make(map[string]int)
	for _, employee := range employees {
		department := employee.Department
		if department == "" {
			department = models.UnspecifiedDepartment
		}
		departmentStats[department]++
	}

	overtime := 0
	for _, employee := range employees {
		if hoursByEmployee[employee.ID] > threshold {
			overtime++
		}
	}

	averageHours := 0.0
	utilization := 0
	if activeCount > 0 {
		averageHours = utils.Round1(totalHours / float64(activeCount))
		utilization = int(math.Round(totalHours / (float64(activeCount) * models.FullTimeWeeklyCapacity) * 100))
	}

	return &models.WeeklySummary{
		WeekStart:               weekStart,
		WeekEnd:                 weekEnd,
		TotalEmployees:          len(employees),
		ActiveEmployees:         activeCount,
		TotalShifts:             len(week),
		TotalHours:              utils.Round1(totalHours),
		TotalCost:               utils.Round2(totalCost),
		AverageHoursPerEmployee: averageHours,
		UtilizationRate:         utilization,
		DepartmentStats:         departmentStats,
		OvertimeEmployees:       overtime,
	}
}
