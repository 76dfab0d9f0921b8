package http

import (
	"net/http"

	"github.com/homestays/reservations-api/internal/logger"
	"github.com/homestays/reservations-api/internal/utils"
	"github.com/homestays/reservations-api/models"
)

type healthStatus struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

// health handles GET /health. It reports process liveness only; no
// dependencies are touched.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	status := healthStatus{Status: "ok", Version: h.version}
	utils.WriteJSON(w, models.SuccessResponse(status, "healthy", http.StatusOK), http.StatusOK) //nolint:errcheck
}

// ready handles GET /health/ready. Readiness requires a reachable database;
// the upstream services are deliberately excluded since their outages are
// handled per-request by the resilient clients.
func (h *Handler) ready(w http.ResponseWriter, r *http.Request) {
	if err := h.db.PingContext(r.Context()); err != nil {
		logger.FromRequest(r).Err(err).Msg("readiness probe failed: database unreachable")
		utils.WriteJSON(w, models.ErrorResponse("database unreachable", http.StatusServiceUnavailable), http.StatusServiceUnavailable) //nolint:errcheck
		return
	}

	status := healthStatus{Status: "ready", Version: h.version}
	utils.WriteJSON(w, models.SuccessResponse(status, "ready", http.StatusOK), http.StatusOK) //nolint:errcheck
}
