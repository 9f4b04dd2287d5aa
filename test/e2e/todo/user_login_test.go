package todo_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/bitmarsh/ticklist/pkg/todosdk"
	"github.com/stretchr/testify/require"
)

// TestLoginIssuesFreshToken verifies login returns the profile and a token
// distinct from the registration one, and both remain valid.
func TestLoginIssuesFreshToken(t *testing.T) {
	client := setupServer(t)

	email := uniqueEmail(t)
	registered, err := client.Register(t.Context(), email, testPassword)
	require.NoError(t, err)
	registrationToken := client.Token()

	profile, err := client.Login(t.Context(), email, testPassword)
	require.NoError(t, err)
	require.Equal(t, registered.ID, profile.ID)
	require.NotEmpty(t, client.Token())
	require.NotEqual(t, registrationToken, client.Token())

	// Both tokens authenticate independently.
	_, err = client.Me(t.Context())
	require.NoError(t, err)

	client.SetToken(registrationToken)
	_, err = client.Me(t.Context())
	require.NoError(t, err)
}

// TestLoginWithMixedCaseEmail verifies the address is matched
// case-insensitively.
func TestLoginWithMixedCaseEmail(t *testing.T) {
	client := setupServer(t)

	email := uniqueEmail(t)
	_, err := client.Register(t.Context(), email, testPassword)
	require.NoError(t, err)

	_, err = client.Login(t.Context(), strings.ToUpper(email), testPassword)
	require.NoError(t, err)
}

// TestLoginRejectsWrongPassword verifies a bad password fails without leaking
// whether the account exists.
func TestLoginRejectsWrongPassword(t *testing.T) {
	client := setupServer(t)

	email := uniqueEmail(t)
	_, err := client.Register(t.Context(), email, testPassword)
	require.NoError(t, err)

	_, err = client.Login(t.Context(), email, "WrongPass1")
	requireAPIError(t, err, http.StatusBadRequest, todosdk.ErrorCodeInvalidCredentials)
}

// TestLoginRejectsUnknownEmail verifies an unregistered address fails with the
// same code as a wrong password.
func TestLoginRejectsUnknownEmail(t *testing.T) {
	client := setupServer(t)

	_, err := client.Login(t.Context(), "nobody@example.com", testPassword)
	requireAPIError(t, err, http.StatusBadRequest, todosdk.ErrorCodeInvalidCredentials)
}
