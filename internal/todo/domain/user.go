package domain

import "time"

// User is an account record. Email uniqueness is enforced by the storage
// layer; the password is held only as a peppered Argon2id hash.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
