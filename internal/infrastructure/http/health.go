package http

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"

	"github.com/hm-yang2/board-share/pkg/httputil"
)

// DatabaseHealthChecker reports database reachability
type DatabaseHealthChecker interface {
	HealthCheck(ctx context.Context) bool
}

// PublisherHealthChecker reports event publisher state
type PublisherHealthChecker interface {
	IsHealthy() bool
}

// HealthStatus represents the overall health status
type HealthStatus string

const (
	HealthStatusHealthy   HealthStatus = "healthy"
	HealthStatusDegraded  HealthStatus = "degraded"
	HealthStatusUnhealthy HealthStatus = "unhealthy"
)

// ComponentHealth represents health status of a single component
type ComponentHealth struct {
	Name    string `json:"name"`
	Healthy bool   `json:"healthy"`
	Message string `json:"message,omitempty"`
}

// HealthResponse represents the JSON response for health check
type HealthResponse struct {
	Status     HealthStatus      `json:"status"`
	Timestamp  time.Time         `json:"timestamp"`
	Components []ComponentHealth `json:"components"`
}

// HealthHandler handles GET /health
type HealthHandler struct {
	database  DatabaseHealthChecker
	publisher PublisherHealthChecker
	logger    zerolog.Logger
}

// NewHealthHandler creates a new health check handler
func NewHealthHandler(
	database DatabaseHealthChecker,
	publisher PublisherHealthChecker,
	logger zerolog.Logger,
) *HealthHandler {
	return &HealthHandler{
		database:  database,
		publisher: publisher,
		logger:    logger.With().Str("handler", "health").Logger(),
	}
}

// Handle reports component health. The database is required; a failing
// publisher only degrades the service.
func (h *HealthHandler) Handle(ctx *fasthttp.RequestCtx) {
	checkCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	components := []ComponentHealth{
		h.component("database", h.database.HealthCheck(checkCtx), "database ping failed"),
		h.component("event_publisher", h.publisher.IsHealthy(), "last publish failed"),
	}

	status := HealthStatusHealthy
	switch {
	case !components[0].Healthy:
		status = HealthStatusUnhealthy
	case !components[1].Healthy:
		status = HealthStatusDegraded
	}

	logEvent := h.logger.Debug()
	if status == HealthStatusUnhealthy {
		logEvent = h.logger.Warn()
	}
	logEvent.Str("status", string(status)).Msg("Health check completed")

	httputil.WriteHealthResponse(ctx, HealthResponse{
		Status:     status,
		Timestamp:  time.Now().UTC(),
		Components: components,
	}, status != HealthStatusUnhealthy)
}

func (h *HealthHandler) component(name string, healthy bool, failure string) ComponentHealth {
	c := ComponentHealth{Name: name, Healthy: healthy}
	if !healthy {
		c.Message = failure
	}
	return c
}
