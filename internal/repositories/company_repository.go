package repositories

import (
	"sync"

	"shiftpro_backend/internal/models"
	"shiftpro_backend/internal/storage"
	"shiftpro_backend/pkg/utils"
)

// CompanyRepository holds the single tenant record.
type CompanyRepository interface {
	Get() (*models.Company, error)
	Exists() bool
	Save(company *models.Company) error
}

type companyRepository struct {
	mu      sync.RWMutex
	store   *storage.Adapter
	company *models.Company
}

// NewCompanyRepository hydrates the company record from the local store.
func NewCompanyRepository(store *storage.Adapter) CompanyRepository {
	r := &companyRepository{store: store}
	var company models.Company
	if store.Get(storage.KeyCompany, &company) {
		r.company = &company
	}
	return r
}

func (r *companyRepository) Get() (*models.Company, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.company == nil {
		return nil, ErrNotFound
	}
	copied := *r.company
	return &copied, nil
}

func (r *companyRepository) Exists() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.company != nil
}

// Save replaces the company record and writes it back. A failed write keeps
// the in-memory record authoritative until the next successful write.
func (r *companyRepository) Save(company *models.Company) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *company
	r.company = &copied
	if !r.store.Set(storage.KeyCompany, r.company) {
		utils.LogWarn("Company record not persisted, continuing with in-memory state")
	}
	return nil
}
