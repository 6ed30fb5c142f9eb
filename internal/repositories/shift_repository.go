package repositories

import (
	"sync"

	"shiftpro_backend/internal/models"
	"shiftpro_backend/internal/storage"
	"shiftpro_backend/pkg/utils"
)

// ShiftRepository holds the shift calendar.
type ShiftRepository interface {
	GetAll() []models.Shift
	GetByID(id string) (*models.Shift, error)
	Create(shift *models.Shift) error
	// CreateBatch appends a set of shifts as one mutation (one write-back).
	CreateBatch(shifts []models.Shift) error
	Delete(id string) error
	// DeleteByEmployeeID removes every shift referencing the employee and
	// returns how many were removed.
	DeleteByEmployeeID(employeeID string) int
	ReplaceAll(shifts []models.Shift)
	Version() uint64
}

type shiftRepository struct {
	mu      sync.RWMutex
	store   *storage.Adapter
	shifts  []models.Shift
	version uint64
}

// NewShiftRepository hydrates the calendar from the local store.
func NewShiftRepository(store *storage.Adapter) ShiftRepository {
	r := &shiftRepository{store: store}
	store.Get(storage.KeyShifts, &r.shifts)
	return r
}

func (r *shiftRepository) persistLocked() {
	r.version++
	if !r.store.Set(storage.KeyShifts, r.shifts) {
		utils.LogWarn("Shift list not persisted, continuing with in-memory state")
	}
}

func (r *shiftRepository) GetAll() []models.Shift {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Shift, len(r.shifts))
	copy(out, r.shifts)
	return out
}

func (r *shiftRepository) GetByID(id string) (*models.Shift, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.shifts {
		if r.shifts[i].ID == id {
			copied := r.shifts[i]
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

func (r *shiftRepository) Create(shift *models.Shift) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shifts = append(r.shifts, *shift)
	r.persistLocked()
	return nil
}

func (r *shiftRepository) CreateBatch(shifts []models.Shift) error {
	if len(shifts) == 0 {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shifts = append(r.shifts, shifts...)
	r.persistLocked()
	return nil
}

func (r *shiftRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.shifts {
		if r.shifts[i].ID == id {
			r.shifts = append(r.shifts[:i], r.shifts[i+1:]...)
			r.persistLocked()
			return nil
		}
	}
	return ErrNotFound
}

func (r *shiftRepository) DeleteByEmployeeID(employeeID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.shifts[:0]
	removed := 0
	for _, s := range r.shifts {
		if s.EmployeeID == employeeID {
			removed++
			continue
		}
		kept = append(kept, s)
	}
	if removed == 0 {
		return 0
	}
	r.shifts = kept
	r.persistLocked()
	return removed
}

func (r *shiftRepository) ReplaceAll(shifts []models.Shift) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shifts = make([]models.Shift, len(shifts))
	copy(r.shifts, shifts)
	r.persistLocked()
}

func (r *shiftRepository) Version() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.version
}
