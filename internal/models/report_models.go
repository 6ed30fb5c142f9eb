package models

// WeeklySummary holds the derived metrics for the current work week.
// Hour figures are rounded to 1 decimal, monetary figures to 2, the
// utilization rate to the nearest integer.
type WeeklySummary struct {
	WeekStart               string         `json:"week_start"` // YYYY-MM-DD
	WeekEnd                 string         `json:"week_end"`
	TotalEmployees          int            `json:"total_employees"`
	ActiveEmployees         int            `json:"active_employees"`
	TotalShifts             int            `json:"total_shifts"`
	TotalHours              float64        `json:"total_hours"`
	TotalCost               float64        `json:"total_cost"`
	AverageHoursPerEmployee float64        `json:"average_hours_per_employee"`
	UtilizationRate         int            `json:"utilization_rate"`
	DepartmentStats         map[string]int `json:"department_stats"`
	OvertimeEmployees       int            `json:"overtime_employees"`
}

// FullTimeWeeklyCapacity is the nominal weekly hours per active employee the
// utilization rate measures against.
const FullTimeWeeklyCapacity = 40.0
