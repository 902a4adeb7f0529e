package domain

import "strings"

// User is a read-only user record served by the catalog.
type User struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Validate checks that the user has a positive ID and a name.
func (u *User) Validate() error {
	if u.ID <= 0 {
		return NewValidationError("id", "must be positive", ErrInvalidID)
	}
	if strings.TrimSpace(u.Name) == "" {
		return NewValidationError("name", "cannot be empty", ErrEmptyName)
	}
	return nil
}
