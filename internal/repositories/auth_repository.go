package repositories

import (
	"strings"
	"sync"

	"shiftpro_backend/internal/models"
	"shiftpro_backend/internal/storage"
	"shiftpro_backend/pkg/utils"
)

// AuthRepository holds the user list and the persisted session pointer.
type AuthRepository interface {
	GetUsers() []models.User
	FindUserByID(id string) (*models.User, error)
	FindUserByEmail(email string) (*models.User, error)
	CreateUser(user *models.User) error
	ReplaceUsers(users []models.User)

	SaveSession(pointer models.SessionPointer)
	LoadSession() (*models.SessionPointer, error)
	ClearSession()
}

// storedUser keeps the credential hash across the storage round trip; the
// model's own hash field is excluded from JSON everywhere else.
type storedUser struct {
	models.User
	PasswordHash string `json:"password_hash"`
}

type authRepository struct {
	mu    sync.RWMutex
	store *storage.Adapter
	users []models.User
}

// NewAuthRepository hydrates the user list from the local store.
func NewAuthRepository(store *storage.Adapter) AuthRepository {
	r := &authRepository{store: store}
	var stored []storedUser
	if store.Get(storage.KeyUsers, &stored) {
		r.users = make([]models.User, 0, len(stored))
		for _, su := range stored {
			u := su.User
			u.PasswordHash = su.PasswordHash
			r.users = append(r.users, u)
		}
	}
	return r
}

func (r *authRepository) persistLocked() {
	stored := make([]storedUser, 0, len(r.users))
	for _, u := range r.users {
		stored = append(stored, storedUser{User: u, PasswordHash: u.PasswordHash})
	}
	if !r.store.Set(storage.KeyUsers, stored) {
		utils.LogWarn("User list not persisted, continuing with in-memory state")
	}
}

func (r *authRepository) GetUsers() []models.User {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.User, len(r.users))
	copy(out, r.users)
	return out
}

func (r *authRepository) FindUserByID(id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.users {
		if r.users[i].ID == id {
			copied := r.users[i]
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

// FindUserByEmail matches case-insensitively.
func (r *authRepository) FindUserByEmail(email string) (*models.User, error) {
	normalized := utils.NormalizeEmail(email)
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.users {
		if strings.EqualFold(r.users[i].Email, normalized) {
			copied := r.users[i]
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

func (r *authRepository) CreateUser(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.users {
		if strings.EqualFold(r.users[i].Email, user.Email) {
			return ErrAlreadyExists
		}
	}
	r.users = append(r.users, *user)
	r.persistLocked()
	return nil
}

func (r *authRepository) ReplaceUsers(users []models.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users = make([]models.User, len(users))
	copy(r.users, users)
	r.persistLocked()
}

func (r *authRepository) SaveSession(pointer models.SessionPointer) {
	if !r.store.Set(storage.KeySession, pointer) {
		utils.LogWarn("Session pointer not persisted")
	}
}

func (r *authRepository) LoadSession() (*models.SessionPointer, error) {
	var pointer models.SessionPointer
	if !r.store.Get(storage.KeySession, &pointer) {
		return nil, ErrNotFound
	}
	return &pointer, nil
}

// ClearSession drops the persisted pointer unconditionally.
func (r *authRepository) ClearSession() {
	r.store.Remove(storage.KeySession)
}
