package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/bitmarsh/ticklist/internal/todo/domain"
	"github.com/bitmarsh/ticklist/internal/todo/store"
	"github.com/bitmarsh/ticklist/pkg/idx"
)

var (
	// ErrEmptyText reports a create or update carrying no usable text.
	ErrEmptyText = errors.New("empty_text")

	// ErrTodoNotFound covers both unknown and malformed todo ids. Malformed
	// ids never match a stored ULID, so both collapse into the same answer.
	ErrTodoNotFound = errors.New("todo_not_found")
)

// TodoPatch is a partial update. Nil fields are left untouched.
type TodoPatch struct {
	Text      *string
	Completed *bool
}

type TodoService struct {
	Store store.Store
}

// CreateTodo validates text and inserts a new todo. Nothing is written when
// validation fails.
func (s *TodoService) CreateTodo(ctx context.Context, text string) (domain.Todo, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.Todo{}, ErrEmptyText
	}

	now := time.Now().UTC()
	t := domain.Todo{
		ID:        idx.New().String(),
		Text:      text,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Store.Todos().CreateTodo(ctx, t); err != nil {
		return domain.Todo{}, err
	}
	return t, nil
}

// ListTodos returns all todos in creation order.
func (s *TodoService) ListTodos(ctx context.Context) ([]domain.Todo, error) {
	return s.Store.Todos().ListTodos(ctx)
}

// GetTodoByID fetches one todo. Malformed ids report ErrTodoNotFound.
func (s *TodoService) GetTodoByID(ctx context.Context, id string) (domain.Todo, error) {
	if _, err := idx.Parse(id); err != nil {
		return domain.Todo{}, ErrTodoNotFound
	}

	t, err := s.Store.Todos().GetTodoByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Todo{}, ErrTodoNotFound
	}
	return t, err
}

// UpdateTodo applies a partial update. The server owns completedAt: it is set
// to the current time (unix ms) when the todo transitions to completed and
// cleared whenever the todo ends up not completed.
func (s *TodoService) UpdateTodo(ctx context.Context, id string, patch TodoPatch) (domain.Todo, error) {
	if _, err := idx.Parse(id); err != nil {
		return domain.Todo{}, ErrTodoNotFound
	}
	if patch.Text != nil && strings.TrimSpace(*patch.Text) == "" {
		return domain.Todo{}, ErrEmptyText
	}

	var updated domain.Todo
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		t, err := tx.Todos().GetTodoByID(ctx, id)
		if err != nil {
			return err
		}

		if patch.Text != nil {
			t.Text = strings.TrimSpace(*patch.Text)
		}
		if patch.Completed != nil {
			t.Completed = *patch.Completed
		}

		if t.Completed {
			if t.CompletedAt == nil {
				at := time.Now().UnixMilli()
				t.CompletedAt = &at
			}
		} else {
			t.CompletedAt = nil
		}
		t.UpdatedAt = time.Now().UTC()

		if err := tx.Todos().UpdateTodo(ctx, t); err != nil {
			return err
		}
		updated = t
		return nil
	})
	if errors.Is(err, store.ErrNotFound) {
		return domain.Todo{}, ErrTodoNotFound
	}
	if err != nil {
		return domain.Todo{}, err
	}
	return updated, nil
}

// DeleteTodo removes a todo and returns the removed record.
func (s *TodoService) DeleteTodo(ctx context.Context, id string) (domain.Todo, error) {
	if _, err := idx.Parse(id); err != nil {
		return domain.Todo{}, ErrTodoNotFound
	}

	var deleted domain.Todo
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		t, err := tx.Todos().GetTodoByID(ctx, id)
		if err != nil {
			return err
		}
		if err := tx.Todos().DeleteTodo(ctx, id); err != nil {
			return err
		}
		deleted = t
		return nil
	})
	if errors.Is(err, store.ErrNotFound) {
		return domain.Todo{}, ErrTodoNotFound
	}
	if err != nil {
		return domain.Todo{}, err
	}
	return deleted, nil
}
