package http

import (
	"errors"
	"net/http"

	"github.com/bitmarsh/ticklist/internal/todo/service"
	"github.com/bitmarsh/ticklist/pkg/httpx"
	"github.com/bitmarsh/ticklist/pkg/slogx"
	"github.com/bitmarsh/ticklist/pkg/todosdk"
)

type LoginHandler struct {
	UserService *service.UserService
}

// ServeHTTP godoc
//
//	@Summary		Log in
//	@Description	Verifies credentials and issues a fresh auth token in the x-auth
//	@Description	response header. Unknown emails and wrong passwords answer identically.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			body	body		todosdk.LoginRequest	true	"email, password"
//	@Success		200		{object}	todosdk.UserProfile		"id, email"
//	@Header			200		{string}	x-auth					"Issued auth token"
//	@Failure		400		{object}	todosdk.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	todosdk.ErrorResponse	"error, error_description"
//	@Router			/users/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req todosdk.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, todosdk.ErrorCodeInvalidRequest, "Invalid JSON body")
		return
	}

	user, token, err := h.UserService.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeError(w, http.StatusBadRequest, todosdk.ErrorCodeInvalidCredentials, "email or password is incorrect")
			return
		}
		log.Error("failed to log in user", "err", err)
		writeServerError(w)
		return
	}

	w.Header().Set(httpx.AuthHeader, token)
	httpx.WriteJSON(w, http.StatusOK, mapUser(user))
}
