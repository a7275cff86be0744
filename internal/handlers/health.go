package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"ragagent-api/internal/contextutil"
)

// HealthHandler handles HTTP requests for health checks.
// It never contacts the inference endpoint.
type HealthHandler struct {
	credentialSet bool
	now           func() time.Time
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(credentialSet bool) *HealthHandler {
	return &HealthHandler{
		credentialSet: credentialSet,
		now:           time.Now,
	}
}

// HealthResponse represents the health check response.
//
// swagger:model HealthResponse
type HealthResponse struct {
	// Overall health status: "healthy" or "degraded"
	Status string `json:"status"`

	// Timestamp of the health check
	Timestamp string `json:"timestamp"`

	// Individual check results
	Checks map[string]string `json:"checks"`

	// List of issues (only present if status is degraded)
	Issues []string `json:"issues,omitempty"`
}

// ServeHTTP handles HTTP requests for health checks.
//
// swagger:route GET /health healthCheck
//
// # Health check endpoint
//
// Always answers 200 while the process is serving; a missing credential is reported as degraded.
//
// ---
// produces:
// - application/json
// responses:
//
//	'200':
//	  description: Service status
//	  schema:
//	    "$ref": "#/definitions/HealthResponse"
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodGet {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	checks := make(map[string]string)
	var issues []string

	if h.credentialSet {
		checks["credential"] = "configured"
	} else {
		checks["credential"] = "missing"
		issues = append(issues, "credential_missing")
	}

	status := "healthy"
	if len(issues) > 0 {
		status = "degraded"
	}

	response := HealthResponse{
		Status:    status,
		Timestamp: h.now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Issues:    issues,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.ErrorContext(ctx, "failed to encode health response", "error", err)
	}
}
