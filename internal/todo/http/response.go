package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/bitmarsh/ticklist/internal/todo/domain"
	"github.com/bitmarsh/ticklist/pkg/httpx"
	"github.com/bitmarsh/ticklist/pkg/todosdk"
)

// maxBodySize caps request bodies; nothing this API accepts is large.
const maxBodySize = 64 << 10

var errMalformedBody = errors.New("malformed body")

// decodeJSON reads a JSON request body into v, rejecting unknown fields and
// trailing garbage.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodySize))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errMalformedBody
	}
	if dec.More() {
		return errMalformedBody
	}
	return nil
}

func writeError(w http.ResponseWriter, status int, code, description string) {
	httpx.WriteJSON(w, status, todosdk.ErrorResponse{
		Error:            code,
		ErrorDescription: description,
	})
}

func writeNotFound(w http.ResponseWriter) {
	writeError(w, http.StatusNotFound, todosdk.ErrorCodeNotFound, "Todo not found")
}

func writeServerError(w http.ResponseWriter) {
	writeError(w, http.StatusInternalServerError, todosdk.ErrorCodeServerError, "Internal server error")
}

func mapTodo(t domain.Todo) todosdk.Todo {
	return todosdk.Todo{
		ID:          t.ID,
		Text:        t.Text,
		Completed:   t.Completed,
		CompletedAt: t.CompletedAt,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func mapUser(u domain.User) todosdk.UserProfile {
	return todosdk.UserProfile{
		ID:    u.ID,
		Email: u.Email,
	}
}
