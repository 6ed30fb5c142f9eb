package repositories

import (
	"strings"
	"sync"

	"shiftpro_backend/internal/models"
	"shiftpro_backend/internal/storage"
	"shiftpro_backend/pkg/utils"
)

// EmployeeRepository holds the employee roster.
type EmployeeRepository interface {
	GetAll() []models.Employee
	GetByID(id string) (*models.Employee, error)
	// FindByEmail matches case-insensitively, skipping excludeID so an
	// employee being edited does not collide with itself.
	FindByEmail(email string, excludeID string) (*models.Employee, error)
	Create(employee *models.Employee) error
	Update(employee *models.Employee) error
	Delete(id string) error
	ReplaceAll(employees []models.Employee)
	// Version increases on every mutation; derived aggregates key their
	// caches on it.
	Version() uint64
}

type employeeRepository struct {
	mu        sync.RWMutex
	store     *storage.Adapter
	employees []models.Employee
	version   uint64
}

// NewEmployeeRepository hydrates the roster from the local store.
func NewEmployeeRepository(store *storage.Adapter) EmployeeRepository {
	r := &employeeRepository{store: store}
	store.Get(storage.KeyEmployees, &r.employees)
	return r
}

func (r *employeeRepository) persistLocked() {
	r.version++
	if !r.store.Set(storage.KeyEmployees, r.employees) {
		utils.LogWarn("Employee list not persisted, continuing with in-memory state")
	}
}

func (r *employeeRepository) GetAll() []models.Employee {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Employee, len(r.employees))
	copy(out, r.employees)
	return out
}

func (r *employeeRepository) GetByID(id string) (*models.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.employees {
		if r.employees[i].ID == id {
			copied := r.employees[i]
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

func (r *employeeRepository) FindByEmail(email string, excludeID string) (*models.Employee, error) {
	normalized := utils.NormalizeEmail(email)
	if normalized == "" {
		return nil, ErrNotFound
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.employees {
		if r.employees[i].ID == excludeID {
			continue
		}
		if strings.EqualFold(r.employees[i].Email, normalized) {
			copied := r.employees[i]
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

func (r *employeeRepository) Create(employee *models.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.employees = append(r.employees, *employee)
	r.persistLocked()
	return nil
}

func (r *employeeRepository) Update(employee *models.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.employees {
		if r.employees[i].ID == employee.ID {
			r.employees[i] = *employee
			r.persistLocked()
			return nil
		}
	}
	return ErrNotFound
}

func (r *employeeRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.employees {
		if r.employees[i].ID == id {
			r.employees = append(r.employees[:i], r.employees[i+1:]...)
			r.persistLocked()
			return nil
		}
	}
	return ErrNotFound
}

func (r *employeeRepository) ReplaceAll(employees []models.Employee) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.employees = make([]models.Employee, len(employees))
	copy(r.employees, employees)
	r.persistLocked()
}

func (r *employeeRepository) Version() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.version
}
