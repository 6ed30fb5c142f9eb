package models

import "time"

// Employee is a worker eligible for shift assignment.
type Employee struct {
	ID           string     `json:"id"`
	CompanyID    string     `json:"company_id"`
	Name         string     `json:"name"`
	Surname      string     `json:"surname"`
	FullName     string     `json:"full_name"`
	Email        string     `json:"email,omitempty"`
	Phone        string     `json:"phone,omitempty"`
	Role         string     `json:"role"`
	Department   string     `json:"department"`
	HourlyRate   float64    `json:"hourly_rate"`
	ContractType string     `json:"contract_type"`
	StartDate    string     `json:"start_date"` // YYYY-MM-DD
	Notes        string     `json:"notes,omitempty"`
	Avatar       string     `json:"avatar,omitempty"`
	IsActive     bool       `json:"is_active"`
	CreatedBy    string     `json:"created_by,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

// Contract types in the fixed enumeration.
const (
	ContractFullTime   = "full-time"
	ContractPartTime   = "part-time"
	ContractSeasonal   = "seasonal"
	ContractTemporary  = "temporary"
	ContractInternship = "internship"
)

// ContractTypes lists the fixed contract-type enumeration.
func ContractTypes() []string {
	return []string{ContractFullTime, ContractPartTime, ContractSeasonal, ContractTemporary, ContractInternship}
}

// IsKnownContractType reports whether ct belongs to the enumeration.
func IsKnownContractType(ct string) bool {
	for _, known := range ContractTypes() {
		if ct == known {
			return true
		}
	}
	return false
}

// Fallback labels for unspecified employee fields.
const (
	DefaultDepartment     = "General"
	UnspecifiedDepartment = "Unspecified"
	DefaultEmployeeAvatar = "👤"
)
