package domain

import (
	"errors"
	"time"
)

var (
	ErrContactNotFound = errors.New("contact not found")
	ErrValidation      = errors.New("validation failed")
)

type Contact struct {
	ID        string
	OwnerID   string
	Name      string
	Phone     string
	Email     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OwnedBy reports whether the contact belongs to the given user. Every
// read/update/delete path goes through this one predicate; a mismatch is
// surfaced as not-found so other users' records stay invisible.
func (c *Contact) OwnedBy(userID string) bool {
	return c.OwnerID == userID
}
