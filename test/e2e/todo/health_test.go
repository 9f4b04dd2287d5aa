package todo_test

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestLivezEndpoint verifies the liveness probe answers healthy.
func TestLivezEndpoint(t *testing.T) {
	client := setupServer(t)

	health, err := client.Livez(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", health.Status)
	require.NotEmpty(t, health.Version)
	require.NotEmpty(t, health.Uptime)
}

// TestReadyzEndpoint verifies the readiness probe reports the database check.
func TestReadyzEndpoint(t *testing.T) {
	client := setupServer(t)

	health, err := client.Readyz(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", health.Status)
	require.NotNil(t, health.Checks)
	require.Equal(t, "ok", health.Checks.Database)
}
