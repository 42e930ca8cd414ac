package domain

import "time"

// User exists only for session issuance; nothing in this service mutates it.
type User struct {
	ID           uint
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
