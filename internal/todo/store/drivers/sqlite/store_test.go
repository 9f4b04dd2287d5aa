package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/bitmarsh/ticklist/internal/todo/domain"
	"github.com/bitmarsh/ticklist/internal/todo/store"
	"github.com/bitmarsh/ticklist/internal/todo/store/drivers/sqlite"
	"github.com/bitmarsh/ticklist/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "test.db") + "?_busy_timeout=5000&_journal_mode=WAL"
	st, err := sqlite.NewStore(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func newTodo(text string) domain.Todo {
	now := time.Now().UTC()
	return domain.Todo{
		ID:        idx.New().String(),
		Text:      text,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestTodosCRUD(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	created := newTodo("buy milk")
	require.NoError(t, st.Todos().CreateTodo(ctx, created))

	t.Run("get returns the stored todo", func(t *testing.T) {
		got, err := st.Todos().GetTodoByID(ctx, created.ID)
		require.NoError(t, err)
		require.Equal(t, created.ID, got.ID)
		require.Equal(t, "buy milk", got.Text)
		require.False(t, got.Completed)
		require.Nil(t, got.CompletedAt)
	})

	t.Run("list returns todos in id order", func(t *testing.T) {
		second := newTodo("walk dog")
		require.NoError(t, st.Todos().CreateTodo(ctx, second))

		todos, err := st.Todos().ListTodos(ctx)
		require.NoError(t, err)
		require.Len(t, todos, 2)
		require.Equal(t, created.ID, todos[0].ID)
		require.Equal(t, second.ID, todos[1].ID)
	})

	t.Run("update persists completion state", func(t *testing.T) {
		completedAt := time.Now().UnixMilli()
		updated := created
		updated.Completed = true
		updated.CompletedAt = &completedAt
		require.NoError(t, st.Todos().UpdateTodo(ctx, updated))

		got, err := st.Todos().GetTodoByID(ctx, created.ID)
		require.NoError(t, err)
		require.True(t, got.Completed)
		require.NotNil(t, got.CompletedAt)
		require.Equal(t, completedAt, *got.CompletedAt)
	})

	t.Run("delete removes the row", func(t *testing.T) {
		require.NoError(t, st.Todos().DeleteTodo(ctx, created.ID))

		_, err := st.Todos().GetTodoByID(ctx, created.ID)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("missing ids report not found", func(t *testing.T) {
		missing := idx.New().String()

		_, err := st.Todos().GetTodoByID(ctx, missing)
		require.ErrorIs(t, err, store.ErrNotFound)
		require.ErrorIs(t, st.Todos().DeleteTodo(ctx, missing), store.ErrNotFound)
		require.ErrorIs(t, st.Todos().UpdateTodo(ctx, newTodo("ghost")), store.ErrNotFound)
	})
}

func TestUsersUniqueEmail(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	now := time.Now().UTC()
	u := domain.User{
		ID:           idx.New().String(),
		Email:        "alice@example.com",
		PasswordHash: "$argon2id$...",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, st.Users().CreateUser(ctx, u))

	got, err := st.Users().GetUserByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)

	dup := u
	dup.ID = idx.New().String()
	require.ErrorIs(t, st.Users().CreateUser(ctx, dup), store.ErrAlreadyExists)

	// Email uniqueness is case-insensitive.
	dup.Email = "ALICE@example.com"
	require.ErrorIs(t, st.Users().CreateUser(ctx, dup), store.ErrAlreadyExists)
}

func TestAuthTokensLifecycle(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	now := time.Now().UTC()
	u := domain.User{
		ID:           idx.New().String(),
		Email:        "bob@example.com",
		PasswordHash: "$argon2id$...",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, st.Users().CreateUser(ctx, u))

	live := domain.AuthToken{
		ID:        idx.New().String(),
		UserID:    u.ID,
		TokenHash: "hash-live",
		ExpiresAt: now.Add(time.Hour),
		CreatedAt: now,
	}
	expired := domain.AuthToken{
		ID:        idx.New().String(),
		UserID:    u.ID,
		TokenHash: "hash-expired",
		ExpiresAt: now.Add(-time.Hour),
		CreatedAt: now,
	}
	require.NoError(t, st.AuthTokens().CreateAuthToken(ctx, live))
	require.NoError(t, st.AuthTokens().CreateAuthToken(ctx, expired))

	t.Run("lookup by hash", func(t *testing.T) {
		got, err := st.AuthTokens().GetAuthTokenByHash(ctx, "hash-live")
		require.NoError(t, err)
		require.Equal(t, live.ID, got.ID)
		require.Equal(t, u.ID, got.UserID)

		_, err = st.AuthTokens().GetAuthTokenByHash(ctx, "no-such-hash")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("list is ordered by id", func(t *testing.T) {
		tokens, err := st.AuthTokens().ListUserAuthTokens(ctx, u.ID)
		require.NoError(t, err)
		require.Len(t, tokens, 2)
		require.Equal(t, live.ID, tokens[0].ID)
		require.Equal(t, expired.ID, tokens[1].ID)
	})

	t.Run("expired sweep keeps live tokens", func(t *testing.T) {
		require.NoError(t, st.AuthTokens().DeleteExpiredAuthTokens(ctx))

		tokens, err := st.AuthTokens().ListUserAuthTokens(ctx, u.ID)
		require.NoError(t, err)
		require.Len(t, tokens, 1)
		require.Equal(t, live.ID, tokens[0].ID)
	})

	t.Run("deleting the user cascades", func(t *testing.T) {
		require.NoError(t, st.Users().DeleteUser(ctx, u.ID))

		tokens, err := st.AuthTokens().ListUserAuthTokens(ctx, u.ID)
		require.NoError(t, err)
		require.Empty(t, tokens)
	})
}

func TestWithTxRollsBackOnError(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	err := st.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Todos().CreateTodo(ctx, newTodo("doomed")); err != nil {
			return err
		}
		return context.Canceled
	})
	require.ErrorIs(t, err, context.Canceled)

	count, err := st.Todos().CountTodos(ctx)
	require.NoError(t, err)
	require.Zero(t, count)
}
