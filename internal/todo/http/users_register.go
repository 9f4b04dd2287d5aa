package http

import (
	"errors"
	"net/http"

	"github.com/bitmarsh/ticklist/internal/todo/service"
	"github.com/bitmarsh/ticklist/pkg/httpx"
	"github.com/bitmarsh/ticklist/pkg/slogx"
	"github.com/bitmarsh/ticklist/pkg/todosdk"
)

type RegisterHandler struct {
	UserService *service.UserService
}

// ServeHTTP godoc
//
//	@Summary		Register a user
//	@Description	Creates an account from email and password, validating email format
//	@Description	and password strength. On success the issued auth token is returned
//	@Description	in the x-auth response header. Duplicate emails answer with the
//	@Description	storage layer's duplicate-key code.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			body	body		todosdk.RegisterRequest	true	"email, password"
//	@Success		200		{object}	todosdk.UserProfile		"id, email"
//	@Header			200		{string}	x-auth					"Issued auth token"
//	@Failure		400		{object}	todosdk.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	todosdk.ErrorResponse	"error, error_description"
//	@Router			/users [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req todosdk.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, todosdk.ErrorCodeInvalidRequest, "Invalid JSON body")
		return
	}

	user, token, err := h.UserService.Register(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidEmail):
			writeError(w, http.StatusBadRequest, todosdk.ErrorCodeInvalidEmail, "email is not a valid address")
		case errors.Is(err, service.ErrWeakPassword):
			writeError(w, http.StatusBadRequest, todosdk.ErrorCodeWeakPassword,
				"password must be at least 8 characters with a letter and a digit")
		case errors.Is(err, service.ErrEmailTaken):
			writeError(w, http.StatusBadRequest, todosdk.ErrorCodeDuplicateKey, "email is already registered")
		default:
			log.Error("failed to register user", "err", err)
			writeServerError(w)
		}
		return
	}

	w.Header().Set(httpx.AuthHeader, token)
	httpx.WriteJSON(w, http.StatusOK, mapUser(user))
}
