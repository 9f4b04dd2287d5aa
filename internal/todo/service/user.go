package service

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"
	"unicode"

	"github.com/bitmarsh/ticklist/internal/todo/domain"
	"github.com/bitmarsh/ticklist/internal/todo/store"
	"github.com/bitmarsh/ticklist/pkg/cryptox"
	"github.com/bitmarsh/ticklist/pkg/idx"
	"github.com/bitmarsh/ticklist/pkg/jwtx"
)

const (
	// MinPasswordLen is the shortest accepted password.
	MinPasswordLen = 8

	// DefaultTokenTTL is how long issued auth tokens stay valid.
	DefaultTokenTTL = 30 * 24 * time.Hour
)

var (
	ErrInvalidEmail       = errors.New("invalid_email")
	ErrWeakPassword       = errors.New("weak_password")
	ErrEmailTaken         = errors.New("email_taken")
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrInvalidToken       = errors.New("invalid_token")
)

type UserService struct {
	Store    store.Store
	Codec    *jwtx.Codec
	TokenTTL time.Duration
}

// Register validates the email and password, creates the user and issues the
// first auth token. A duplicate email surfaces as ErrEmailTaken without
// touching the password hash work already done.
func (s *UserService) Register(ctx context.Context, email, password string) (domain.User, string, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return domain.User{}, "", err
	}
	if err := checkPasswordStrength(password); err != nil {
		return domain.User{}, "", err
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.User{}, "", err
	}

	now := time.Now().UTC()
	user := domain.User{
		ID:           idx.New().String(),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	var raw string
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().CreateUser(ctx, user); err != nil {
			return err
		}
		raw, err = s.issueToken(ctx, tx, user.ID)
		return err
	})
	if errors.Is(err, store.ErrAlreadyExists) {
		return domain.User{}, "", ErrEmailTaken
	}
	if err != nil {
		return domain.User{}, "", err
	}
	return user, raw, nil
}

// Login verifies credentials and issues a fresh auth token. Unknown emails
// and bad passwords are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, email, password string) (domain.User, string, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return domain.User{}, "", ErrInvalidCredentials
	}

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		return domain.User{}, "", ErrInvalidCredentials
	}
	if err != nil {
		return domain.User{}, "", err
	}

	if cryptox.VerifyPassword(password, user.PasswordHash) != nil {
		return domain.User{}, "", ErrInvalidCredentials
	}

	raw, err := s.issueToken(ctx, s.Store, user.ID)
	if err != nil {
		return domain.User{}, "", err
	}
	return user, raw, nil
}

// GetUserByID fetches a user by id.
func (s *UserService) GetUserByID(ctx context.Context, userID string) (domain.User, error) {
	return s.Store.Users().GetUserByID(ctx, userID)
}

// AuthenticateToken resolves a raw x-auth token to the user and token record
// it belongs to. The signature proves we minted the token; the store lookup
// proves it was never revoked. Both the signed claims and the stored record
// must agree.
func (s *UserService) AuthenticateToken(ctx context.Context, raw string) (string, string, error) {
	claims, err := s.Codec.Verify(raw)
	if err != nil {
		return "", "", ErrInvalidToken
	}

	rec, err := s.Store.AuthTokens().GetAuthTokenByHash(ctx, cryptox.FingerprintToken(raw))
	if errors.Is(err, store.ErrNotFound) {
		return "", "", ErrInvalidToken
	}
	if err != nil {
		return "", "", err
	}

	if rec.ID != claims.TokenID || rec.UserID != claims.Subject {
		return "", "", ErrInvalidToken
	}
	if time.Now().After(rec.ExpiresAt) {
		return "", "", ErrInvalidToken
	}

	return rec.UserID, rec.ID, nil
}

// RevokeToken deletes a token record so it stops authenticating (logout).
func (s *UserService) RevokeToken(ctx context.Context, tokenID string) error {
	err := s.Store.AuthTokens().DeleteAuthToken(ctx, tokenID)
	if errors.Is(err, store.ErrNotFound) {
		return ErrInvalidToken
	}
	return err
}

func (s *UserService) tokenTTL() time.Duration {
	if s.TokenTTL > 0 {
		return s.TokenTTL
	}
	return DefaultTokenTTL
}

// issueToken mints a signed token and stores its fingerprint. st may be the
// root store or a transaction.
func (s *UserService) issueToken(ctx context.Context, st store.Store, userID string) (string, error) {
	tokenID := idx.New().String()
	ttl := s.tokenTTL()

	raw, err := s.Codec.Sign(tokenID, userID, ttl)
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	err = st.AuthTokens().CreateAuthToken(ctx, domain.AuthToken{
		ID:        tokenID,
		UserID:    userID,
		TokenHash: cryptox.FingerprintToken(raw),
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
	})
	if err != nil {
		return "", err
	}
	return raw, nil
}

func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", ErrInvalidEmail
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", ErrInvalidEmail
	}
	return email, nil
}

// checkPasswordStrength requires MinPasswordLen characters with at least one
// letter and one digit.
func checkPasswordStrength(password string) error {
	if len(password) < MinPasswordLen {
		return ErrWeakPassword
	}

	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return ErrWeakPassword
	}
	return nil
}
