package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/bitmarsh/ticklist/pkg/slogx"
)

// AuthHeader is the request header carrying the auth token.
const AuthHeader = "x-auth"

// TokenAuthenticator validates a raw auth token and resolves the user and
// token record that presented it.
type TokenAuthenticator interface {
	AuthenticateToken(ctx context.Context, raw string) (userID, tokenID string, err error)
}

// AuthnMiddleware requires a valid x-auth header. Failures answer 401 with an
// empty body; nothing about the failure reason is leaked to the caller.
func AuthnMiddleware(auth TokenAuthenticator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			raw := strings.TrimSpace(r.Header.Get(AuthHeader))
			if raw == "" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			userID, tokenID, err := auth.AuthenticateToken(ctx, raw)
			if err != nil {
				log.Warn("token authentication failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			ctx = context.WithValue(ctx, CtxKeyUserID, userID)
			ctx = context.WithValue(ctx, CtxKeyTokenID, tokenID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
