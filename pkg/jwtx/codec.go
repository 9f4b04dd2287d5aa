// Package jwtx wraps github.com/golang-jwt/jwt for the single signing scheme
// the service needs: symmetric HS256 tokens carrying a token id, subject and
// expiry. Verification here only proves the token was minted by us; callers
// still check the token id against the store so revocation works.
package jwtx

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken reports a token that failed signature, shape or claim
// validation.
var ErrInvalidToken = errors.New("jwtx: invalid token")

// MinSecretLen is the smallest accepted HMAC secret length in bytes.
const MinSecretLen = 32

// Claims is the decoded view of a verified token.
type Claims struct {
	TokenID   string // jti, matches the stored auth token record
	Subject   string // sub, the user id
	Issuer    string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Codec signs and verifies HS256 tokens with a fixed secret and issuer.
type Codec struct {
	secret []byte
	issuer string
}

// NewCodec builds a Codec. The secret must carry at least MinSecretLen bytes
// of entropy.
func NewCodec(secret []byte, issuer string) (*Codec, error) {
	if len(secret) < MinSecretLen {
		return nil, fmt.Errorf("jwtx: secret must be at least %d bytes, got %d", MinSecretLen, len(secret))
	}
	if issuer == "" {
		return nil, errors.New("jwtx: issuer must not be empty")
	}
	return &Codec{secret: secret, issuer: issuer}, nil
}

// Sign mints a token for the given token record id and subject.
func (c *Codec) Sign(tokenID, subject string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		ID:        tokenID,
		Subject:   subject,
		Issuer:    c.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("jwtx: signing failed: %w", err)
	}
	return signed, nil
}

// Verify checks the signature, algorithm, issuer and expiry of raw and
// returns its claims. Any failure maps to ErrInvalidToken so callers don't
// leak verification detail to clients.
func (c *Codec) Verify(raw string) (Claims, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(raw, &claims,
		func(t *jwt.Token) (any, error) { return c.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(c.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return Claims{}, ErrInvalidToken
	}
	if claims.ID == "" || claims.Subject == "" {
		return Claims{}, ErrInvalidToken
	}

	out := Claims{
		TokenID: claims.ID,
		Subject: claims.Subject,
		Issuer:  claims.Issuer,
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}
