package models

import "time"

// Shift is a scheduled work interval for one employee on one date.
// Start and end are zero-padded 24h "HH:MM" strings, so lexicographic order
// matches chronological order within a day.
type Shift struct {
	ID           string    `json:"id"`
	CompanyID    string    `json:"company_id"`
	EmployeeID   string    `json:"employee_id"`
	Date         string    `json:"date"` // YYYY-MM-DD
	Day          string    `json:"day"`  // weekday name, derived from Date
	StartTime    string    `json:"start_time"`
	EndTime      string    `json:"end_time"`
	Position     string    `json:"position"`
	ShiftType    string    `json:"shift_type"`
	BreakMinutes int       `json:"break_minutes"`
	Notes        string    `json:"notes,omitempty"`
	Status       string    `json:"status"`
	CreatedBy    string    `json:"created_by,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// ShiftStatusScheduled is the only status any code path produces; no shift
// lifecycle state machine exists.
const ShiftStatusScheduled = "scheduled"

// DefaultShiftType tags shifts created without an explicit type.
const DefaultShiftType = "Standard"

// DateLayout and ClockLayout are the wire formats for shift dates and times.
const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

// WeekdayName returns the weekday name for a YYYY-MM-DD date string, or ""
// when the date does not parse.
func WeekdayName(date string) string {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return ""
	}
	return t.Weekday().String()
}
