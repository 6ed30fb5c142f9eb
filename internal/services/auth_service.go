package services

import (
	"errors"
	"fmt"
	"time"

	"shiftpro_backend/internal/models"
	"shiftpro_backend/internal/repositories"
	"shiftpro_backend/pkg/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// --- Custom Service Errors ---
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSetupComplete      = errors.New("setup has already been completed")
	ErrSetupRequired      = errors.New("first-run setup has not been completed")
	ErrSetupValidation    = errors.New("setup validation error")
	ErrUserValidation     = errors.New("user validation error")
	ErrUserEmailExists    = errors.New("a user with this email already exists")
	ErrRoleUnknown        = errors.New("unknown role")
	ErrNoSession          = errors.New("no active session")
	ErrTokenGeneration    = errors.New("failed to generate session token")
)

const minPasswordLength = 8

// --- DTOs ---

// SetupRequest is the first-run form payload.
type SetupRequest struct {
	CompanyName     string `json:"company_name" binding:"required"`
	Industry        string `json:"industry"`
	AdminName       string `json:"admin_name" binding:"required"`
	AdminEmail      string `json:"admin_email" binding:"required"`
	AdminPassword   string `json:"admin_password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
	AcceptTerms     bool   `json:"accept_terms"`
}

// LoginRequest is the login form payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Remember bool   `json:"remember"`
}

// RegisterUserRequest creates an additional login principal.
type RegisterUserRequest struct {
	Name       string  `json:"name" binding:"required"`
	Email      string  `json:"email" binding:"required"`
	Password   string  `json:"password" binding:"required"`
	Role       string  `json:"role" binding:"required"`
	Department *string `json:"department"`
}

// AuthResponse carries an authenticated user and its session token.
type AuthResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// --- AuthService Interface ---
type AuthService interface {
	NeedsSetup() bool
	Setup(req SetupRequest) (*AuthResponse, error)
	Login(req LoginRequest) (*AuthResponse, error)
	// RestoreSession replays the persisted remember-me pointer, the way the
	// shell restores a session at startup.
	RestoreSession() (*AuthResponse, error)
	Logout()
	// SessionFromToken materializes a session (user + frozen capability set)
	// from a session token.
	SessionFromToken(token string) (*models.Session, error)
	RegisterUser(req RegisterUserRequest) (*models.User, error)
	GetUsers() []models.User
}

type authService struct {
	authRepo     repositories.AuthRepository
	companyRepo  repositories.CompanyRepository
	employeeRepo repositories.EmployeeRepository
	shiftRepo    repositories.ShiftRepository
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(
	authRepo repositories.AuthRepository,
	companyRepo repositories.CompanyRepository,
	employeeRepo repositories.EmployeeRepository,
	shiftRepo repositories.ShiftRepository,
) AuthService {
	return &authService{
		authRepo:     authRepo,
		companyRepo:  companyRepo,
		employeeRepo: employeeRepo,
		shiftRepo:    shiftRepo,
	}
}

func (s *authService) NeedsSetup() bool {
	return !s.companyRepo.Exists()
}

// Setup validates the first-run form, creates the company and the admin user,
// persists empty employee and shift collections, and returns an authenticated
// session directly.
func (s *authService) Setup(req SetupRequest) (*AuthResponse, error) {
	if s.companyRepo.Exists() {
		return nil, ErrSetupComplete
	}
	if utils.IsEmpty(req.CompanyName) || utils.IsEmpty(req.AdminName) ||
		utils.IsEmpty(req.AdminEmail) || req.AdminPassword == "" {
		return nil, fmt.Errorf("%w: all required fields must be filled", ErrSetupValidation)
	}
	if !utils.IsValidEmail(req.AdminEmail) {
		return nil, fmt.Errorf("%w: invalid admin email", ErrSetupValidation)
	}
	if !utils.IsValidPasswordLength(req.AdminPassword, minPasswordLength) {
		return nil, fmt.Errorf("%w: password must be at least %d characters", ErrSetupValidation, minPasswordLength)
	}
	if req.AdminPassword != req.ConfirmPassword {
		return nil, fmt.Errorf("%w: passwords do not match", ErrSetupValidation)
	}
	if !req.AcceptTerms {
		return nil, fmt.Errorf("%w: terms of service must be accepted", ErrSetupValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	industry := req.Industry
	if utils.IsEmpty(industry) {
		industry = models.DefaultIndustry
	}
	company := &models.Company{
		ID:         uuid.NewString(),
		Name:       req.CompanyName,
		Industry:   industry,
		Timezone:   models.DefaultTimezone,
		Currency:   models.DefaultCurrency,
		SetupDate:  now,
		CreatedAt:  now,
		Settings:   models.DefaultSettings(),
		Positions:  models.DefaultPositions(),
		ShiftTypes: models.DefaultShiftTypes(),
	}

	admin := &models.User{
		ID:           uuid.NewString(),
		CompanyID:    company.ID,
		Name:         req.AdminName,
		Email:        utils.NormalizeEmail(req.AdminEmail),
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
		Permissions:  models.PermissionsForRole(models.RoleAdmin),
		Avatar:       "👨‍💼",
		IsActive:     true,
		CreatedAt:    now,
	}

	if err := s.companyRepo.Save(company); err != nil {
		return nil, fmt.Errorf("failed to save company: %w", err)
	}
	s.authRepo.ReplaceUsers([]models.User{*admin})
	s.employeeRepo.ReplaceAll(nil)
	s.shiftRepo.ReplaceAll(nil)

	token, err := utils.GenerateSessionToken(admin.ID, admin.Email, admin.Role)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenGeneration, err)
	}

	utils.LogInfo("First-run setup completed", map[string]interface{}{"company": company.Name})
	return &AuthResponse{User: sanitizeUser(admin), Token: token}, nil
}

// Login matches the email case-insensitively and compares the bcrypt hash.
// Unknown email, wrong password and inactive account all collapse into the
// same generic error.
func (s *authService) Login(req LoginRequest) (*AuthResponse, error) {
	if s.NeedsSetup() {
		return nil, ErrSetupRequired
	}
	if utils.IsEmpty(req.Email) || req.Password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.authRepo.FindUserByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login attempt failed: %w", err)
	}
	if !user.IsActive {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateSessionToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenGeneration, err)
	}

	if req.Remember {
		s.authRepo.SaveSession(models.SessionPointer{UserID: user.ID, Token: token})
	}

	return &AuthResponse{User: sanitizeUser(user), Token: token}, nil
}

func (s *authService) RestoreSession() (*AuthResponse, error) {
	pointer, err := s.authRepo.LoadSession()
	if err != nil {
		return nil, ErrNoSession
	}
	session, err := s.SessionFromToken(pointer.Token)
	if err != nil {
		// Stale pointer: the user is gone, inactive, or the token expired.
		s.authRepo.ClearSession()
		return nil, ErrNoSession
	}
	return &AuthResponse{User: sanitizeUser(session.User), Token: pointer.Token}, nil
}

// Logout clears the persisted session pointer unconditionally.
func (s *authService) Logout() {
	s.authRepo.ClearSession()
}

func (s *authService) SessionFromToken(token string) (*models.Session, error) {
	claims, err := utils.ValidateToken(token)
	if err != nil {
		return nil, ErrNoSession
	}
	user, err := s.authRepo.FindUserByID(claims.UserID)
	if err != nil || !user.IsActive {
		return nil, ErrNoSession
	}
	return models.NewSession(user), nil
}

// RegisterUser creates an additional login principal with the permission set
// its role derives.
func (s *authService) RegisterUser(req RegisterUserRequest) (*models.User, error) {
	company, err := s.companyRepo.Get()
	if err != nil {
		return nil, ErrSetupRequired
	}
	if utils.IsEmpty(req.Name) {
		return nil, fmt.Errorf("%w: name is required", ErrUserValidation)
	}
	if !utils.IsValidEmail(req.Email) {
		return nil, fmt.Errorf("%w: invalid email", ErrUserValidation)
	}
	if !utils.IsValidPasswordLength(req.Password, minPasswordLength) {
		return nil, fmt.Errorf("%w: password must be at least %d characters", ErrUserValidation, minPasswordLength)
	}
	if !models.IsKnownRole(req.Role) {
		return nil, fmt.Errorf("%w: '%s'", ErrRoleUnknown, req.Role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.NewString(),
		CompanyID:    company.ID,
		Name:         req.Name,
		Email:        utils.NormalizeEmail(req.Email),
		PasswordHash: string(hash),
		Role:         req.Role,
		Permissions:  models.PermissionsForRole(req.Role),
		Department:   req.Department,
		Avatar:       "👤",
		IsActive:     true,
		CreatedAt:    time.Now(),
	}

	if err := s.authRepo.CreateUser(user); err != nil {
		if errors.Is(err, repositories.ErrAlreadyExists) {
			return nil, ErrUserEmailExists
		}
		return nil, fmt.Errorf("failed to register user: %w", err)
	}
	return sanitizeUser(user), nil
}

func (s *authService) GetUsers() []models.User {
	users := s.authRepo.GetUsers()
	for i := range users {
		users[i].PasswordHash = ""
	}
	return users
}

// sanitizeUser returns a copy with the credential hash dropped.
func sanitizeUser(user *models.User) *models.User {
	copied := *user
	copied.PasswordHash = ""
	return &copied
}
