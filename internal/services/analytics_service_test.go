package services

import (
	"testing"
	"time"

	"shiftpro_backend/internal/models"
)

func TestCalculateHours(t *testing.T) {
	cases := []struct {
		start, end string
		want       float64
	}{
		{"09:00", "17:00", 8},
		{"09:30", "17:00", 7.5},
		{"00:00", "23:59", float64(1439) / 60},
		{"17:00", "09:00", 0}, // reversed clamps to zero
		{"09:00", "09:00", 0},
		{"abc", "17:00", 0},
		{"09:00", "", 0},
		{"9", "17:00", 0},
	}
	for _, tc := range cases {
		if got := CalculateHours(tc.start, tc.end); got != tc.want {
			t.Errorf("CalculateHours(%q, %q) = %v, want %v", tc.start, tc.end, got, tc.want)
		}
	}
}

// mondayOf returns the date of the Monday in the week containing now.
func mondayOf(now time.Time) time.Time {
	offset := (int(now.Weekday()) - 1 + 7) % 7
	return now.AddDate(0, 0, -offset)
}

func TestWeeklySummaryAggregates(t *testing.T) {
	env := newTestEnv(t)
	completeSetup(t, env)

	anna := addEmployee(t, env, "Anna", "Bianchi", "anna@trattoria.it", "10")
	luca := addEmployee(t, env, "Luca", "Verdi", "luca@trattoria.it", "20")

	// Pin "now" to a Wednesday so every in-week date is deterministic.
	now := time.Date(2026, time.January, 7, 12, 0, 0, 0, time.UTC)
	monday := mondayOf(now)
	day := func(offset int) string { return monday.AddDate(0, 0, offset).Format(models.DateLayout) }

	// Anna: 16h + 16h + 10h = 42h, over the default 40h threshold.
	addShift(t, env, anna, day(0), "06:00", "22:00")
	addShift(t, env, anna, day(1), "06:00", "22:00")
	addShift(t, env, anna, day(2), "08:00", "18:00")
	// Luca: a regular 8h day.
	addShift(t, env, luca, day(3), "09:00", "17:00")
	// Outside the window, must not count.
	addShift(t, env, luca, monday.AddDate(0, 0, 7).Format(models.DateLayout), "09:00", "17:00")

	summary, err := env.analytics.WeeklySummaryAt(now)
	if err != nil {
		t.Fatalf("WeeklySummaryAt returned error: %v", err)
	}

	if summary.WeekStart != day(0) || summary.WeekEnd != day(6) {
		t.Fatalf("unexpected week bounds %s..%s", summary.WeekStart, summary.WeekEnd)
	}
	if summary.TotalEmployees != 2 || summary.ActiveEmployees != 2 {
		t.Fatalf("unexpected employee counts: %+v", summary)
	}
	if summary.TotalShifts != 4 {
		t.Fatalf("expected 4 in-week shifts, got %d", summary.TotalShifts)
	}
	if summary.TotalHours != 50 {
		t.Fatalf("expected 50 total hours, got %v", summary.TotalHours)
	}
	// 42h * 10 + 8h * 20
	if summary.TotalCost != 580 {
		t.Fatalf("expected cost 580, got %v", summary.TotalCost)
	}
	if summary.AverageHoursPerEmployee != 25 {
		t.Fatalf("expected 25 average hours, got %v", summary.AverageHoursPerEmployee)
	}
	// 50 / (2 * 40) = 62.5% rounds to 63.
	if summary.UtilizationRate != 63 {
		t.Fatalf("expected utilization 63, got %d", summary.UtilizationRate)
	}
	if summary.OvertimeEmployees != 1 {
		t.Fatalf("expected 1 overtime employee, got %d", summary.OvertimeEmployees)
	}
	if summary.DepartmentStats[models.DefaultDepartment] != 2 {
		t.Fatalf("expected both employees under the default department, got %v", summary.DepartmentStats)
	}
}

func TestWeeklySummarySkipsStaleEmployeeReferences(t *testing.T) {
	env := newTestEnv(t)
	completeSetup(t, env)

	anna := addEmployee(t, env, "Anna", "Bianchi", "anna@trattoria.it", "10")
	now := time.Date(2026, time.January, 7, 12, 0, 0, 0, time.UTC)
	date := mondayOf(now).Format(models.DateLayout)
	addShift(t, env, anna, date, "09:00", "17:00")

	// Remove the employee behind the repository's back so the shift dangles.
	stale := models.Shift{
		ID: "stale", EmployeeID: "ghost", Date: date,
		StartTime: "09:00", EndTime: "17:00", Status: models.ShiftStatusScheduled,
	}
	if err := env.shiftRepo.CreateBatch([]models.Shift{stale}); err != nil {
		t.Fatalf("CreateBatch returned error: %v", err)
	}

	summary, err := env.analytics.WeeklySummaryAt(now)
	if err != nil {
		t.Fatalf("WeeklySummaryAt returned error: %v", err)
	}
	if summary.TotalShifts != 2 {
		t.Fatalf("expected the dangling shift to stay in the count, got %d", summary.TotalShifts)
	}
	if summary.TotalHours != 8 {
		t.Fatalf("expected dangling hours excluded from totals, got %v", summary.TotalHours)
	}
	if summary.TotalCost != 80 {
		t.Fatalf("expected dangling cost excluded, got %v", summary.TotalCost)
	}
}

func TestWeeklySummaryEmptyRoster(t *testing.T) {
	env := newTestEnv(t)
	completeSetup(t, env)

	summary, err := env.analytics.WeeklySummary()
	if err != nil {
		t.Fatalf("WeeklySummary returned error: %v", err)
	}
	if summary.UtilizationRate != 0 || summary.AverageHoursPerEmployee != 0 {
		t.Fatalf("expected zeroed rates for empty roster, got %+v", summary)
	}
}

func TestWeeklySummaryRecomputesAfterMutation(t *testing.T) {
	env := newTestEnv(t)
	completeSetup(t, env)

	anna := addEmployee(t, env, "Anna", "Bianchi", "anna@trattoria.it", "10")
	now := time.Date(2026, time.January, 7, 12, 0, 0, 0, time.UTC)
	date := mondayOf(now).Format(models.DateLayout)
	addShift(t, env, anna, date, "09:00", "17:00")

	first, err := env.analytics.WeeklySummaryAt(now)
	if err != nil {
		t.Fatalf("WeeklySummaryAt returned error: %v", err)
	}
	if first.TotalHours != 8 {
		t.Fatalf("expected 8 hours, got %v", first.TotalHours)
	}

	// A cached result must not survive a calendar mutation.
	addShift(t, env, anna, date, "18:00", "22:00")
	second, err := env.analytics.WeeklySummaryAt(now)
	if err != nil {
		t.Fatalf("WeeklySummaryAt returned error: %v", err)
	}
	if second.TotalHours != 12 {
		t.Fatalf("expected 12 hours after adding a shift, got %v", second.TotalHours)
	}

	// A raised threshold changes the overtime count without any mutation.
	threshold := 10.0
	if _, err := env.company.UpdateSettings(UpdateSettingsRequest{OvertimeThreshold: &threshold}); err != nil {
		t.Fatalf("UpdateSettings returned error: %v", err)
	}
	third, err := env.analytics.WeeklySummaryAt(now)
	if err != nil {
		t.Fatalf("WeeklySummaryAt returned error: %v", err)
	}
	if third.OvertimeEmployees != 1 {
		t.Fatalf("expected 1 overtime employee at 10h threshold, got %d", third.OvertimeEmployees)
	}
}
