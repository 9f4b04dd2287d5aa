package domain

import "time"

// Todo is a user-created task record with completion state.
//
// CompletedAt is a unix-millisecond timestamp and is non-nil exactly when
// Completed is true. The service derives it on state transitions; clients
// never set it directly.
type Todo struct {
	ID          string
	Text        string
	Completed   bool
	CompletedAt *int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
