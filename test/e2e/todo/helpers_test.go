package todo_test

import (
	"fmt"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bitmarsh/ticklist/internal/todo/app"
	"github.com/bitmarsh/ticklist/pkg/httpx"
	"github.com/bitmarsh/ticklist/pkg/todosdk"
	"github.com/stretchr/testify/require"
)

/*
 * Common helpers for ticklist end-to-end tests. Each test gets a fresh
 * in-process service backed by a temporary SQLite database, exercised
 * through the todosdk client over a real HTTP listener.
 */

const testPassword = "Sup3rSecret"

var emailSeq atomic.Int64

// TestMain lifts the rate limit profiles so the suite can hammer the
// credential endpoints without tripping the production limits.
func TestMain(m *testing.M) {
	generous := httpx.RateLimitConfig{
		RequestsPerWindow: 100000,
		Window:            time.Minute,
		Burst:             100000,
	}
	httpx.StrictLimit = generous
	httpx.ModerateLimit = generous
	httpx.LenientLimit = generous
	httpx.PublicLimit = generous

	os.Exit(m.Run())
}

// setupServer starts a fresh service instance on a temporary database and
// returns an SDK client pointed at it. Cleanup is registered on t.
func setupServer(t *testing.T) *todosdk.Client {
	t.Helper()

	dir := t.TempDir()
	cfg := app.Config{
		Issuer:               "ticklist-test",
		TokenTTL:             time.Hour,
		TokenSecretFile:      filepath.Join(dir, "token_secret"),
		DatabaseFile:         filepath.Join(dir, "ticklist.db"),
		PepperFile:           filepath.Join(dir, "pepper"),
		Env:                  "test",
		LogLevel:             "error",
		LogFormat:            "text",
		ShutdownGracePeriod:  time.Second,
		HousekeepingInterval: time.Hour,
	}

	application, err := app.New(cfg)
	require.NoError(t, err, "application should initialize")

	srv := httptest.NewServer(application.Handler())
	t.Cleanup(func() {
		srv.Close()
		_ = application.Close()
	})

	return todosdk.NewClient(srv.URL)
}

// uniqueEmail returns an address no other test in this run has used.
func uniqueEmail(t *testing.T) string {
	t.Helper()
	return fmt.Sprintf("user%d@example.com", emailSeq.Add(1))
}

// registerUser creates an account and leaves the issued token on the client.
func registerUser(t *testing.T, client *todosdk.Client) todosdk.UserProfile {
	t.Helper()

	profile, err := client.Register(t.Context(), uniqueEmail(t), testPassword)
	require.NoError(t, err, "registration should succeed")
	require.NotEmpty(t, client.Token(), "registration should issue a token")
	return profile
}

// requireAPIError asserts err is an APIError with the given status and code.
func requireAPIError(t *testing.T, err error, status int, code string) {
	t.Helper()

	require.Error(t, err)
	apiErr, ok := err.(*todosdk.APIError)
	require.True(t, ok, "expected *todosdk.APIError, got %T: %v", err, err)
	require.Equal(t, status, apiErr.StatusCode)
	require.Equal(t, code, apiErr.Code)
}
