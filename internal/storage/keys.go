package storage

// Persisted keys. Each value is a JSON document matching the domain models.
const (
	KeyCompany   = "company"
	KeyUsers     = "users"
	KeyEmployees = "employees"
	KeyShifts    = "shifts"
	KeySession   = "current_session"
)
