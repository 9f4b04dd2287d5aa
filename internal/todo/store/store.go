package store

import (
	"context"
	"errors"

	"github.com/bitmarsh/ticklist/internal/todo/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today)
// implement this. Sub-repositories are exposed as methods to keep concerns
// tidy and to stop callers accidentally nesting transactions.
type Store interface {
	Todos() Todos
	Users() Users
	AuthTokens() AuthTokens

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction: rolled back when fn returns
	// an error, committed otherwise. Prefer this over Tx directly.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It exposes the same repos plus Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Todos interface {
	// CreateTodo inserts a new todo (id is provided by the app via ULID).
	CreateTodo(ctx context.Context, t domain.Todo) error

	// GetTodoByID returns a todo by id.
	GetTodoByID(ctx context.Context, id string) (domain.Todo, error)

	// ListTodos returns all todos ordered by id (i.e. creation order).
	ListTodos(ctx context.Context) ([]domain.Todo, error)

	// UpdateTodo persists text, completed and completed_at and bumps
	// updated_at. Missing row reports ErrNotFound.
	UpdateTodo(ctx context.Context, t domain.Todo) error

	// DeleteTodo removes a todo by id. Missing row reports ErrNotFound.
	DeleteTodo(ctx context.Context, id string) error

	// CountTodos returns the number of stored todos.
	CountTodos(ctx context.Context) (int64, error)
}

type Users interface {
	// CreateUser inserts a new user. A duplicate email reports
	// ErrAlreadyExists.
	CreateUser(ctx context.Context, u domain.User) error

	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail is used during login.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// DeleteUser cascades to auth_tokens (per schema).
	DeleteUser(ctx context.Context, userID string) error
}

type AuthTokens interface {
	// CreateAuthToken stores a new issued token record.
	CreateAuthToken(ctx context.Context, t domain.AuthToken) error

	// GetAuthTokenByHash returns the record matching a token fingerprint.
	GetAuthTokenByHash(ctx context.Context, hash string) (domain.AuthToken, error)

	// ListUserAuthTokens returns a user's token records ordered by id.
	ListUserAuthTokens(ctx context.Context, userID string) ([]domain.AuthToken, error)

	// DeleteAuthToken removes a single token record (logout).
	DeleteAuthToken(ctx context.Context, id string) error

	// DeleteExpiredAuthTokens removes records past their expiry
	// (housekeeping).
	DeleteExpiredAuthTokens(ctx context.Context) error
}
