package http

import (
	"net/http"
	"time"

	"github.com/bitmarsh/ticklist/pkg/httpx"
	"github.com/bitmarsh/ticklist/pkg/todosdk"
)

// LivezHandler godoc
//
//	@Summary		Liveness probe
//	@Description	Returns basic service health, uptime, and version. Always 200 while the process runs.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	todosdk.HealthResponse	"status, uptime, version"
//	@Router			/livez [get].
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, todosdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		})
	}
}
