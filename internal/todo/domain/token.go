package domain

import "time"

// AuthToken is one issued credential record. A user accumulates one record
// per registration or login; records are deleted on logout and swept once
// expired. TokenHash is the SHA-256 fingerprint of the presented token, the
// raw value is never stored.
type AuthToken struct {
	ID        string
	UserID    string
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
}
