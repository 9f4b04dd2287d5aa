package http

import (
	"net/http"

	"github.com/bitmarsh/ticklist/internal/todo/service"
	"github.com/bitmarsh/ticklist/pkg/httpx"
	"github.com/bitmarsh/ticklist/pkg/slogx"
)

type LogoutHandler struct {
	UserService *service.UserService
}

// ServeHTTP godoc
//
//	@Summary		Log out
//	@Description	Revokes the auth token presented on this request. The token stops
//	@Description	authenticating immediately; other tokens of the same user are unaffected.
//	@Tags			Users
//	@Security		AuthToken
//	@Produce		json
//	@Success		200	{object}	map[string]string	"empty object"
//	@Failure		401	"Invalid or missing auth token (empty body)"
//	@Failure		500	{object}	todosdk.ErrorResponse	"error, error_description"
//	@Router			/users/me/token [delete].
func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	tokenID := httpx.TokenIDFromCtx(ctx)
	if tokenID == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if err := h.UserService.RevokeToken(ctx, tokenID); err != nil {
		log.Error("failed to revoke token", "token_id", tokenID, "err", err)
		writeServerError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, map[string]string{})
}
