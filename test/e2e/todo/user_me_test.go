package todo_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bitmarsh/ticklist/internal/todo/app"
	"github.com/stretchr/testify/require"
)

// TestMeRequiresToken verifies /users/me without a token answers 401 with an
// entirely empty body.
func TestMeRequiresToken(t *testing.T) {
	client := setupServer(t)
	registerUser(t, client)

	client.SetToken("")
	_, err := client.Me(t.Context())
	requireAPIError(t, err, http.StatusUnauthorized, "")
}

// TestMeRejectsGarbageToken verifies invented tokens are turned away.
func TestMeRejectsGarbageToken(t *testing.T) {
	client := setupServer(t)

	for _, token := range []string{"garbage", "aaaa.bbbb.cccc"} {
		client.SetToken(token)
		_, err := client.Me(t.Context())
		requireAPIError(t, err, http.StatusUnauthorized, "")
	}
}

// TestMeUnauthenticatedBodyIsEmpty pins down the raw wire behaviour: 401 and
// zero body bytes, no error JSON.
func TestMeUnauthenticatedBodyIsEmpty(t *testing.T) {
	srv, cleanup := rawServer(t)
	defer cleanup()

	req, err := http.NewRequestWithContext(t.Context(), http.MethodGet, srv.URL+"/users/me", nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Empty(t, body, "401 responses must carry no body")
}

// TestMeReturnsOwnProfile verifies two accounts each see their own profile.
func TestMeReturnsOwnProfile(t *testing.T) {
	client := setupServer(t)

	alice := registerUser(t, client)
	aliceToken := client.Token()

	bob := registerUser(t, client)

	me, err := client.Me(t.Context())
	require.NoError(t, err)
	require.Equal(t, bob.ID, me.ID)

	client.SetToken(aliceToken)
	me, err = client.Me(t.Context())
	require.NoError(t, err)
	require.Equal(t, alice.ID, me.ID)
}

// rawServer starts a service instance and exposes the httptest server for
// tests that need to inspect raw responses instead of going through the SDK.
func rawServer(t *testing.T) (*httptest.Server, func()) {
	t.Helper()

	dir := t.TempDir()
	cfg := app.LoadConfig()
	cfg.DatabaseFile = dir + "/ticklist.db"
	cfg.PepperFile = dir + "/pepper"
	cfg.TokenSecretFile = dir + "/token_secret"
	cfg.Env = "test"
	cfg.LogLevel = "error"

	application, err := app.New(cfg)
	require.NoError(t, err)

	srv := httptest.NewServer(application.Handler())
	return srv, func() {
		srv.Close()
		_ = application.Close()
	}
}
