package models

import "time"

// Company is the single tenant owning every other record. Created once during
// first-run setup, mutated only through settings edits.
type Company struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Industry   string          `json:"industry,omitempty"`
	Address    string          `json:"address,omitempty"`
	Phone      string          `json:"phone,omitempty"`
	Email      string          `json:"email,omitempty"`
	Website    string          `json:"website,omitempty"`
	Timezone   string          `json:"timezone"`
	Currency   string          `json:"currency"`
	SetupDate  time.Time       `json:"setup_date"`
	CreatedAt  time.Time       `json:"created_at"`
	Settings   CompanySettings `json:"settings"`
	Positions  []string        `json:"positions"`
	ShiftTypes []string        `json:"shift_types"`
}

// CompanySettings holds the scheduling policy knobs.
type CompanySettings struct {
	WorkWeekStart      int     `json:"work_week_start"` // 0 Sunday .. 6 Saturday
	OvertimeThreshold  float64 `json:"overtime_threshold"`
	DefaultShiftLength int     `json:"default_shift_length"`
	BreakDuration      int     `json:"break_duration"`
	AllowOverlapping   bool    `json:"allow_overlapping"`
	RequireNotes       bool    `json:"require_notes"`
}

// Defaults applied when a company is created.
const (
	DefaultTimezone          = "Europe/Rome"
	DefaultCurrency          = "EUR"
	DefaultIndustry          = "Other"
	DefaultWorkWeekStart     = 1 // Monday
	DefaultOvertimeThreshold = 40
	DefaultShiftLength       = 8
	DefaultBreakDuration     = 30
)

// DefaultSettings returns the settings a freshly created company starts with.
func DefaultSettings() CompanySettings {
	return CompanySettings{
		WorkWeekStart:      DefaultWorkWeekStart,
		OvertimeThreshold:  DefaultOvertimeThreshold,
		DefaultShiftLength: DefaultShiftLength,
		BreakDuration:      DefaultBreakDuration,
		AllowOverlapping:   false,
		RequireNotes:       false,
	}
}

// DefaultPositions is the configured position list shifts validate against
// until the company customizes it.
func DefaultPositions() []string {
	return []string{
		"Floor", "Kitchen", "Bar", "Register", "Cleaning", "Management",
		"Reception", "Warehouse", "Security", "Maintenance",
	}
}

// DefaultShiftTypes is the configured shift-type tag list.
func DefaultShiftTypes() []string {
	return []string{"Morning", "Afternoon", "Evening", "Night", "Double", "Part-time"}
}
