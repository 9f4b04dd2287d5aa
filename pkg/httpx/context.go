package httpx

import "context"

type ctxKey string

const (
	CtxKeyUserID  ctxKey = "user_id"
	CtxKeyTokenID ctxKey = "token_id"
)

// UserIDFromCtx returns the authenticated user id, or "" when unset.
func UserIDFromCtx(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyUserID).(string); ok {
		return v
	}
	return ""
}

// TokenIDFromCtx returns the id of the token record that authenticated the
// request, or "" when unset.
func TokenIDFromCtx(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyTokenID).(string); ok {
		return v
	}
	return ""
}
