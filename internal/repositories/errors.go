package repositories

import "errors"

var (
	// ErrNotFound is returned when a specific record is not found.
	ErrNotFound = errors.New("requested record not found")

	// ErrAlreadyExists is returned when a create collides with an existing
	// record (e.g. the single company during setup).
	ErrAlreadyExists = errors.New("record already exists")
)
