package repositories

import (
	"path/filepath"
	"testing"
	"time"

	"shiftpro_backend/internal/models"
	"shiftpro_backend/internal/storage"
)

func TestRepositoriesRehydrateAfterReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shiftpro.db")

	store := storage.Open(path)
	companyRepo := NewCompanyRepository(store)
	authRepo := NewAuthRepository(store)
	employeeRepo := NewEmployeeRepository(store)
	shiftRepo := NewShiftRepository(store)

	company := &models.Company{
		ID:       "c1",
		Name:     "Trattoria Roma",
		Settings: models.DefaultSettings(),
	}
	if err := companyRepo.Save(company); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if err := authRepo.CreateUser(&models.User{
		ID: "u1", Email: "marco@trattoria.it", PasswordHash: "hash-value", Role: models.RoleAdmin,
	}); err != nil {
		t.Fatalf("CreateUser returned error: %v", err)
	}
	if err := employeeRepo.Create(&models.Employee{
		ID: "e1", Name: "Anna", Surname: "Bianchi", CreatedAt: time.Now(),
	}); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if err := shiftRepo.Create(&models.Shift{
		ID: "s1", EmployeeID: "e1", Date: "2026-01-05", StartTime: "09:00", EndTime: "17:00",
	}); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	authRepo.SaveSession(models.SessionPointer{UserID: "u1", Token: "tok"})
	store.Close()

	reopened := storage.Open(path)
	defer reopened.Close()

	if !NewCompanyRepository(reopened).Exists() {
		t.Fatal("expected company record to survive a reopen")
	}
	rehydratedAuth := NewAuthRepository(reopened)
	user, err := rehydratedAuth.FindUserByEmail("marco@trattoria.it")
	if err != nil {
		t.Fatalf("FindUserByEmail returned error: %v", err)
	}
	if user.PasswordHash != "hash-value" {
		t.Fatal("expected credential hash to survive the storage round trip")
	}
	pointer, err := rehydratedAuth.LoadSession()
	if err != nil {
		t.Fatalf("LoadSession returned error: %v", err)
	}
	if pointer.UserID != "u1" {
		t.Fatalf("unexpected session pointer %+v", pointer)
	}
	if got := len(NewEmployeeRepository(reopened).GetAll()); got != 1 {
		t.Fatalf("expected 1 rehydrated employee, got %d", got)
	}
	if got := len(NewShiftRepository(reopened).GetAll()); got != 1 {
		t.Fatalf("expected 1 rehydrated shift, got %d", got)
	}
}

func TestEmployeeRepositoryVersioning(t *testing.T) {
	store := storage.Open(filepath.Join(t.TempDir(), "shiftpro.db"))
	defer store.Close()

	repo := NewEmployeeRepository(store)
	if repo.Version() != 0 {
		t.Fatalf("expected fresh repository at version 0, got %d", repo.Version())
	}
	if err := repo.Create(&models.Employee{ID: "e1"}); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if repo.Version() != 1 {
		t.Fatalf("expected version 1 after create, got %d", repo.Version())
	}
	if err := repo.Delete("e1"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if repo.Version() != 2 {
		t.Fatalf("expected version 2 after delete, got %d", repo.Version())
	}
	if err := repo.Delete("e1"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if repo.Version() != 2 {
		t.Fatalf("expected failed delete to leave version at 2, got %d", repo.Version())
	}
}
