package utils

import "strings"

// NewNullString is a helper for string pointers, returning nil if the string is empty.
// Useful for optional fields that should be omitted when not provided.
func NewNullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// NormalizeEmail lowercases and trims an email address for case-insensitive
// comparisons across the user and employee collections.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SlugifyFilename turns a company name into the lowercase dash-separated
// prefix used for export filenames.
func SlugifyFilename(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(strings.TrimSpace(name)), "-"))
}
