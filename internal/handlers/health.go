package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/resumio/internal/apiclient"
	"github.com/nfrund/resumio/internal/middleware"
)

// BackendHealth is implemented by *apiclient.Client.
type BackendHealth interface {
	Health(ctx context.Context) (*apiclient.HealthResponse, error)
}

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status  string                    `json:"status"`
	Backend *apiclient.HealthResponse `json:"backend,omitempty"`
	Error   string                    `json:"error,omitempty"`
}

// HealthHandler reports the front-end status and the backend's.
type HealthHandler struct {
	backend BackendHealth
	timeout time.Duration
}

// NewHealthHandler creates a HealthHandler that waits at most timeout for the backend.
func NewHealthHandler(backend BackendHealth, timeout time.Duration) *HealthHandler {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &HealthHandler{backend: backend, timeout: timeout}
}

// Get answers 200 when the backend is reachable and 503 otherwise. The front-end
// itself is always "ok" if it can answer.
func (h *HealthHandler) Get(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	backend, err := h.backend.Health(ctx)
	if err != nil {
		middleware.FromContext(c.Request().Context()).Warn("Backend health check failed", "error", err)
		return c.JSON(http.StatusServiceUnavailable, HealthResponse{Status: "degraded", Error: "backend unavailable"})
	}
	return c.JSON(http.StatusOK, HealthResponse{Status: "ok", Backend: backend})
}
