package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/bitmarsh/ticklist/internal/todo/domain"
	"github.com/bitmarsh/ticklist/internal/todo/store"
)

type todosRepo struct {
	db dbtx
}

func (r *todosRepo) CreateTodo(ctx context.Context, t domain.Todo) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO todos (id, text, completed, completed_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		t.ID, t.Text, t.Completed, mapOptionalInt64(t.CompletedAt), t.CreatedAt, t.UpdatedAt,
	)
	return mapConflict(err)
}

func (r *todosRepo) GetTodoByID(ctx context.Context, id string) (domain.Todo, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, text, completed, completed_at, created_at, updated_at
		FROM todos WHERE id = ?`, id)
	return scanTodo(row)
}

func (r *todosRepo) ListTodos(ctx context.Context) ([]domain.Todo, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, text, completed, completed_at, created_at, updated_at
		FROM todos ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	todos := []domain.Todo{}
	for rows.Next() {
		t, err := scanTodo(rows)
		if err != nil {
			return nil, err
		}
		todos = append(todos, t)
	}
	return todos, rows.Err()
}

func (r *todosRepo) UpdateTodo(ctx context.Context, t domain.Todo) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE todos SET text = ?, completed = ?, completed_at = ?, updated_at = ?
		WHERE id = ?`,
		t.Text, t.Completed, mapOptionalInt64(t.CompletedAt), time.Now().UTC(), t.ID,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *todosRepo) DeleteTodo(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM todos WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *todosRepo) CountTodos(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM todos`).Scan(&count)
	return count, err
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanTodo(s scanner) (domain.Todo, error) {
	var (
		t           domain.Todo
		completedAt sql.NullInt64
	)
	if err := s.Scan(&t.ID, &t.Text, &t.Completed, &completedAt, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return domain.Todo{}, mapNotFound(err)
	}
	t.CompletedAt = mapNullInt64Ptr(completedAt)
	return t, nil
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
