package models

import "time"

// User represents a login principal, distinct from an Employee.
type User struct {
	ID           string    `json:"id"`
	CompanyID    string    `json:"company_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // never serialized in API responses
	Role         string    `json:"role"`
	Permissions  []string  `json:"permissions"`
	Department   *string   `json:"department,omitempty"`
	Avatar       string    `json:"avatar,omitempty"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

// Roles in the fixed enumeration.
const (
	RoleAdmin      = "admin"
	RoleManager    = "manager"
	RoleSupervisor = "supervisor"
	RoleStaff      = "staff"
)

// Permission strings.
const (
	PermissionAll             = "all" // admin wildcard
	PermissionManageShifts    = "manage_shifts"
	PermissionManageEmployees = "manage_employees"
	PermissionViewAnalytics   = "view_analytics"
	PermissionExportData      = "export_data"
	PermissionViewShifts      = "view_shifts"
)

// rolePermissions is the static role → permission table.
var rolePermissions = map[string][]string{
	RoleAdmin:      {PermissionAll},
	RoleManager:    {PermissionManageShifts, PermissionManageEmployees, PermissionViewAnalytics, PermissionExportData},
	RoleSupervisor: {PermissionManageShifts, PermissionViewAnalytics},
	RoleStaff:      {PermissionViewShifts},
}

// PermissionsForRole returns the fixed permission list for a role, or nil for
// an unknown role.
func PermissionsForRole(role string) []string {
	perms, ok := rolePermissions[role]
	if !ok {
		return nil
	}
	out := make([]string, len(perms))
	copy(out, perms)
	return out
}

// IsKnownRole reports whether role belongs to the fixed enumeration.
func IsKnownRole(role string) bool {
	_, ok := rolePermissions[role]
	return ok
}

// Session is an authenticated principal with its capability set, computed once
// when the session is materialized.
type Session struct {
	User        *User
	permissions map[string]struct{}
}

// NewSession builds a session for a user, freezing the permission set.
func NewSession(user *User) *Session {
	perms := make(map[string]struct{}, len(user.Permissions))
	for _, p := range user.Permissions {
		perms[p] = struct{}{}
	}
	return &Session{User: user, permissions: perms}
}

// Has reports whether the session holds the permission. The admin wildcard
// grants everything; permissions are otherwise exact-match only.
func (s *Session) Has(permission string) bool {
	if s == nil || s.User == nil {
		return false
	}
	if _, ok := s.permissions[PermissionAll]; ok {
		return true
	}
	_, ok := s.permissions[permission]
	return ok
}

// SessionPointer is the persisted remember-me record.
type SessionPointer struct {
	UserID string `json:"user_id"`
	Token  string `json:"token"`
}
