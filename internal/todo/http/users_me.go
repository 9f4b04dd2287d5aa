package http

import (
	"net/http"

	"github.com/bitmarsh/ticklist/internal/todo/service"
	"github.com/bitmarsh/ticklist/pkg/httpx"
	"github.com/bitmarsh/ticklist/pkg/slogx"
)

type MeHandler struct {
	UserService *service.UserService
}

// ServeHTTP godoc
//
//	@Summary		Get the authenticated user
//	@Description	Returns the public profile of the user presenting the x-auth token.
//	@Tags			Users
//	@Security		AuthToken
//	@Produce		json
//	@Success		200	{object}	todosdk.UserProfile	"id, email"
//	@Failure		401	"Invalid or missing auth token (empty body)"
//	@Failure		500	{object}	todosdk.ErrorResponse	"error, error_description"
//	@Router			/users/me [get].
func (h *MeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserIDFromCtx(ctx)
	if userID == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	user, err := h.UserService.GetUserByID(ctx, userID)
	if err != nil {
		log.Warn("failed to load user", "user_id", userID, "err", err)
		writeServerError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, mapUser(user))
}
