package api

import (
	"net/http"

	"github.com/projecthelena/flowtest/internal/payload"
)

// Health is the liveness probe. It reports healthy whenever the process
// can answer.
// @Summary      Liveness probe
// @Tags         probes
// @Produce      json
// @Success      200  {object} payload.HealthResponse
// @Router       /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, payload.Health())
}
