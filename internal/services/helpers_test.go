package services

import (
	"path/filepath"
	"testing"

	"shiftpro_backend/internal/repositories"
	"shiftpro_backend/internal/storage"
	"shiftpro_backend/pkg/utils"
)

// testEnv wires the full service stack over a throwaway on-disk store.
type testEnv struct {
	store        *storage.Adapter
	authRepo     repositories.AuthRepository
	companyRepo  repositories.CompanyRepository
	employeeRepo repositories.EmployeeRepository
	shiftRepo    repositories.ShiftRepository

	auth      AuthService
	company   CompanyService
	employees EmployeeService
	shifts    ShiftService
	analytics AnalyticsService
	export    ExportService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	utils.SetJWTSecret("test-secret")

	store := storage.Open(filepath.Join(t.TempDir(), "shiftpro.db"))
	t.Cleanup(func() { store.Close() })

	env := &testEnv{store: store}
	env.authRepo = repositories.NewAuthRepository(store)
	env.companyRepo = repositories.NewCompanyRepository(store)
	env.employeeRepo = repositories.NewEmployeeRepository(store)
	env.shiftRepo = repositories.NewShiftRepository(store)

	env.auth = NewAuthService(env.authRepo, env.companyRepo, env.employeeRepo, env.shiftRepo)
	env.company = NewCompanyService(env.companyRepo)
	env.employees = NewEmployeeService(env.employeeRepo, env.shiftRepo, env.companyRepo)
	env.shifts = NewShiftService(env.shiftRepo, env.employeeRepo, env.companyRepo)
	env.analytics = NewAnalyticsService(env.employeeRepo, env.shiftRepo, env.companyRepo)
	env.export = NewExportService(env.companyRepo, env.employeeRepo, env.shiftRepo)
	return env
}

func validSetupRequest() SetupRequest {
	return SetupRequest{
		CompanyName:     "Trattoria Roma",
		Industry:        "Restaurant",
		AdminName:       "Marco Rossi",
		AdminEmail:      "marco@trattoria.it",
		AdminPassword:   "password123",
		ConfirmPassword: "password123",
		AcceptTerms:     true,
	}
}

// completeSetup runs first-run setup and returns the admin's auth response.
func completeSetup(t *testing.T, env *testEnv) *AuthResponse {
	t.Helper()
	resp, err := env.auth.Setup(validSetupRequest())
	if err != nil {
		t.Fatalf("Setup returned error: %v", err)
	}
	return resp
}

// addEmployee creates a roster entry with sane defaults, overridable per test.
func addEmployee(t *testing.T, env *testEnv, name, surname, email, rate string) string {
	t.Helper()
	employee, err := env.employees.CreateEmployee(EmployeeRequest{
		Name:       name,
		Surname:    surname,
		Email:      email,
		Role:       "Waiter",
		HourlyRate: rate,
	}, "test-admin")
	if err != nil {
		t.Fatalf("CreateEmployee(%s %s) returned error: %v", name, surname, err)
	}
	return employee.ID
}

// addShift schedules a shift on a default position with no notes.
func addShift(t *testing.T, env *testEnv, employeeID, date, start, end string) string {
	t.Helper()
	shift, err := env.shifts.CreateShift(CreateShiftRequest{
		EmployeeID: employeeID,
		Date:       date,
		StartTime:  start,
		EndTime:    end,
		Position:   "Floor",
	}, "test-admin")
	if err != nil {
		t.Fatalf("CreateShift(%s %s-%s) returned error: %v", date, start, end, err)
	}
	return shift.ID
}
