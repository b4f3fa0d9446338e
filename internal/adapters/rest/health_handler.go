package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/philly/posts-api/internal/adapters/api"
)

// HealthChecker provides methods to check system health
type HealthChecker interface {
	CheckStore(ctx context.Context) error
}

type HealthHandler struct {
	*BaseHandler
	version string
	checker HealthChecker
}

func NewHealthHandler(base *BaseHandler, version string, checker HealthChecker) *HealthHandler {
	return &HealthHandler{
		BaseHandler: base,
		version:     version,
		checker:     checker,
	}
}

// GetLiveness reports healthy whenever the process can answer
func (h *HealthHandler) GetLiveness(w http.ResponseWriter, r *http.Request) {
	response := api.HealthStatus{
		Status:    api.Healthy,
		Timestamp: time.Now().UTC(),
		Version:   &h.version,
	}

	h.WriteJSONResponse(w, r, response, http.StatusOK)
}

// GetReadiness checks the post store; without a checker the service is degraded
func (h *HealthHandler) GetReadiness(w http.ResponseWriter, r *http.Request) {
	status := api.Healthy
	httpStatus := http.StatusOK

	var checks *api.HealthChecks
	if h.checker != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		storeStatus := api.Up
		if err := h.checker.CheckStore(ctx); err != nil {
			h.logger.Warn(r.Context(), "readiness check failed", "check", "store", "error", err)
			storeStatus = api.Down
			status = api.Unhealthy
			httpStatus = http.StatusServiceUnavailable
		}
		checks = &api.HealthChecks{Store: &storeStatus}
	} else {
		status = api.Degraded
	}

	response := api.HealthStatus{
		Status:    status,
		Timestamp: time.Now().UTC(),
		Version:   &h.version,
		Checks:    checks,
	}

	h.WriteJSONResponse(w, r, response, httpStatus)
}
