package service_test

import (
	"testing"
	"time"

	"github.com/bitmarsh/ticklist/internal/todo/service"
	"github.com/stretchr/testify/require"
)

func TestCreateTodo(t *testing.T) {
	st := newTestStore(t)
	svc := &service.TodoService{Store: st}
	ctx := t.Context()

	t.Run("creates with trimmed text", func(t *testing.T) {
		created, err := svc.CreateTodo(ctx, "  buy milk  ")
		require.NoError(t, err)
		require.NotEmpty(t, created.ID)
		require.Equal(t, "buy milk", created.Text)
		require.False(t, created.Completed)
		require.Nil(t, created.CompletedAt)
	})

	t.Run("rejects missing text without writing", func(t *testing.T) {
		before, err := svc.ListTodos(ctx)
		require.NoError(t, err)

		_, err = svc.CreateTodo(ctx, "")
		require.ErrorIs(t, err, service.ErrEmptyText)
		_, err = svc.CreateTodo(ctx, "   ")
		require.ErrorIs(t, err, service.ErrEmptyText)

		after, err := svc.ListTodos(ctx)
		require.NoError(t, err)
		require.Len(t, after, len(before), "failed creates must not mutate the store")
	})
}

func TestGetTodoByID(t *testing.T) {
	st := newTestStore(t)
	svc := &service.TodoService{Store: st}
	ctx := t.Context()

	created, err := svc.CreateTodo(ctx, "walk dog")
	require.NoError(t, err)

	got, err := svc.GetTodoByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created.ID, got.ID)

	t.Run("malformed id reports not found", func(t *testing.T) {
		_, err := svc.GetTodoByID(ctx, "123abc!")
		require.ErrorIs(t, err, service.ErrTodoNotFound)
	})

	t.Run("unknown id reports not found", func(t *testing.T) {
		_, err := svc.GetTodoByID(ctx, "01ARZ3NDEKTSV4RRFFQ69G5FAV")
		require.ErrorIs(t, err, service.ErrTodoNotFound)
	})
}

func TestUpdateTodoCompletion(t *testing.T) {
	st := newTestStore(t)
	svc := &service.TodoService{Store: st}
	ctx := t.Context()

	created, err := svc.CreateTodo(ctx, "write report")
	require.NoError(t, err)

	completed := true
	notCompleted := false

	t.Run("completing sets completedAt to roughly now", func(t *testing.T) {
		before := time.Now().UnixMilli()
		updated, err := svc.UpdateTodo(ctx, created.ID, service.TodoPatch{Completed: &completed})
		require.NoError(t, err)
		after := time.Now().UnixMilli()

		require.True(t, updated.Completed)
		require.NotNil(t, updated.CompletedAt)
		require.GreaterOrEqual(t, *updated.CompletedAt, before)
		require.LessOrEqual(t, *updated.CompletedAt, after)
	})

	t.Run("re-completing keeps the original completedAt", func(t *testing.T) {
		first, err := svc.GetTodoByID(ctx, created.ID)
		require.NoError(t, err)

		updated, err := svc.UpdateTodo(ctx, created.ID, service.TodoPatch{Completed: &completed})
		require.NoError(t, err)
		require.Equal(t, *first.CompletedAt, *updated.CompletedAt)
	})

	t.Run("un-completing clears completedAt", func(t *testing.T) {
		updated, err := svc.UpdateTodo(ctx, created.ID, service.TodoPatch{Completed: &notCompleted})
		require.NoError(t, err)
		require.False(t, updated.Completed)
		require.Nil(t, updated.CompletedAt)
	})

	t.Run("text-only patch leaves completion alone", func(t *testing.T) {
		_, err := svc.UpdateTodo(ctx, created.ID, service.TodoPatch{Completed: &completed})
		require.NoError(t, err)

		text := "write the report"
		updated, err := svc.UpdateTodo(ctx, created.ID, service.TodoPatch{Text: &text})
		require.NoError(t, err)
		require.Equal(t, "write the report", updated.Text)
		require.True(t, updated.Completed)
		require.NotNil(t, updated.CompletedAt)
	})

	t.Run("blank text is rejected", func(t *testing.T) {
		blank := "   "
		_, err := svc.UpdateTodo(ctx, created.ID, service.TodoPatch{Text: &blank})
		require.ErrorIs(t, err, service.ErrEmptyText)
	})

	t.Run("unknown id reports not found", func(t *testing.T) {
		_, err := svc.UpdateTodo(ctx, "01ARZ3NDEKTSV4RRFFQ69G5FAV", service.TodoPatch{Completed: &completed})
		require.ErrorIs(t, err, service.ErrTodoNotFound)
	})
}

func TestDeleteTodo(t *testing.T) {
	st := newTestStore(t)
	svc := &service.TodoService{Store: st}
	ctx := t.Context()

	created, err := svc.CreateTodo(ctx, "short lived")
	require.NoError(t, err)

	deleted, err := svc.DeleteTodo(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created.ID, deleted.ID)
	require.Equal(t, "short lived", deleted.Text)

	_, err = svc.GetTodoByID(ctx, created.ID)
	require.ErrorIs(t, err, service.ErrTodoNotFound)

	t.Run("double delete reports not found", func(t *testing.T) {
		_, err := svc.DeleteTodo(ctx, created.ID)
		require.ErrorIs(t, err, service.ErrTodoNotFound)
	})

	t.Run("malformed id reports not found", func(t *testing.T) {
		_, err := svc.DeleteTodo(ctx, "not-a-ulid")
		require.ErrorIs(t, err, service.ErrTodoNotFound)
	})
}
