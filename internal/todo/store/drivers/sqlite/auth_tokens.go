package sqlite

import (
	"context"
	"time"

	"github.com/bitmarsh/ticklist/internal/todo/domain"
)

type authTokensRepo struct {
	db dbtx
}

func (r *authTokensRepo) CreateAuthToken(ctx context.Context, t domain.AuthToken) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO auth_tokens (id, user_id, token_hash, expires_at, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		t.ID, t.UserID, t.TokenHash, t.ExpiresAt, t.CreatedAt,
	)
	return mapConflict(err)
}

func (r *authTokensRepo) GetAuthTokenByHash(ctx context.Context, hash string) (domain.AuthToken, error) {
	var t domain.AuthToken
	err := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, token_hash, expires_at, created_at
		FROM auth_tokens WHERE token_hash = ?`, hash).
		Scan(&t.ID, &t.UserID, &t.TokenHash, &t.ExpiresAt, &t.CreatedAt)
	if err != nil {
		return domain.AuthToken{}, mapNotFound(err)
	}
	return t, nil
}

func (r *authTokensRepo) ListUserAuthTokens(ctx context.Context, userID string) ([]domain.AuthToken, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, token_hash, expires_at, created_at
		FROM auth_tokens WHERE user_id = ? ORDER BY id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tokens := []domain.AuthToken{}
	for rows.Next() {
		var t domain.AuthToken
		if err := rows.Scan(&t.ID, &t.UserID, &t.TokenHash, &t.ExpiresAt, &t.CreatedAt); err != nil {
			return nil, err
		}
		tokens = append(tokens, t)
	}
	return tokens, rows.Err()
}

func (r *authTokensRepo) DeleteAuthToken(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM auth_tokens WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *authTokensRepo) DeleteExpiredAuthTokens(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM auth_tokens WHERE expires_at < ?`, time.Now().UTC())
	return err
}
