package http

import (
	"net/http"
	"time"

	"github.com/bitmarsh/ticklist/internal/todo/store"
	"github.com/bitmarsh/ticklist/pkg/httpx"
	"github.com/bitmarsh/ticklist/pkg/todosdk"
)

// ReadyzHandler godoc
//
//	@Summary		Readiness probe
//	@Description	Returns service health including the state of the database connection.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	todosdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	todosdk.HealthResponse	"service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &todosdk.HealthChecks{Database: "ok"}
		status := "ok"
		statusCode := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			status = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, statusCode, todosdk.HealthResponse{
			Status:  status,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}
