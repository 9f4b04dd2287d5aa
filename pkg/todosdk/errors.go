package todosdk

import "fmt"

// Error codes shared between the server and the client.
const (
	ErrorCodeInvalidRequest     = "invalid_request"
	ErrorCodeEmptyText          = "empty_text"
	ErrorCodeNotFound           = "not_found"
	ErrorCodeInvalidEmail       = "invalid_email"
	ErrorCodeWeakPassword       = "weak_password"
	ErrorCodeDuplicateKey       = "duplicate_key"
	ErrorCodeInvalidCredentials = "invalid_credentials"
	ErrorCodeAccessDenied       = "access_denied"
	ErrorCodeServerError        = "server_error"
)

// APIError is a non-2xx answer from the API as seen by the client.
type APIError struct {
	// StatusCode is the HTTP status of the response.
	StatusCode int

	// Code is the machine-readable error code. Empty when the response
	// carried no body (authentication failures).
	Code string

	// Description is the human-readable description, when present.
	Description string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("api error: status %d", e.StatusCode)
	}
	return fmt.Sprintf("api error: status %d: %s: %s", e.StatusCode, e.Code, e.Description)
}
