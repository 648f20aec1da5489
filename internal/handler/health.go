package handler

import (
	"net/http"

	"github.com/exatools/exa-mcp-server/internal/models"
)

const version = "1.0.0"

// HealthHandler handles GET /health
type HealthHandler struct {
	apiKeySet bool
}

func NewHealthHandler(apiKeySet bool) *HealthHandler {
	return &HealthHandler{apiKeySet: apiKeySet}
}

// Health reports process liveness plus whether the Exa credential is
// configured. No upstream call is made; a missing key degrades every tool
// call, so it is worth surfacing here without spending API quota.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	checks := map[string]string{"server": "ok"}
	status := "healthy"

	if h.apiKeySet {
		checks["exa_api_key"] = "configured"
	} else {
		checks["exa_api_key"] = "missing"
		status = "degraded"
	}

	code := http.StatusOK
	if status == "degraded" {
		code = http.StatusServiceUnavailable
	}

	models.WriteJSON(w, code, models.HealthResponse{
		Status:  status,
		Version: version,
		Checks:  checks,
	})
}
