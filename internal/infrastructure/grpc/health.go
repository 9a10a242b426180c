package grpc

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/hm-yang2/board-share/internal/infrastructure/metrics"
)

// DatabaseHealthChecker reports database reachability
type DatabaseHealthChecker interface {
	HealthCheck(ctx context.Context) bool
}

// HealthMonitor mirrors database reachability into the gRPC health service
type HealthMonitor struct {
	server   *health.Server
	checker  DatabaseHealthChecker
	service  string
	interval time.Duration
	metrics  *metrics.Metrics
	logger   zerolog.Logger
}

// NewHealthMonitor creates a monitor publishing status for service and for the server as a whole
func NewHealthMonitor(
	server *health.Server,
	checker DatabaseHealthChecker,
	service string,
	interval time.Duration,
	m *metrics.Metrics,
	logger zerolog.Logger,
) *HealthMonitor {
	if interval <= 0 {
		interval = 15 * time.Second
	}
	return &HealthMonitor{
		server:   server,
		checker:  checker,
		service:  service,
		interval: interval,
		metrics:  m,
		logger:   logger.With().Str("component", "grpc_health_monitor").Logger(),
	}
}

// Check runs one probe and updates the serving status
func (m *HealthMonitor) Check(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	probeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	healthy := m.checker.HealthCheck(probeCtx)
	m.metrics.SetDatabaseUp(healthy)

	status := healthpb.HealthCheckResponse_SERVING
	if !healthy {
		status = healthpb.HealthCheckResponse_NOT_SERVING
		m.logger.Warn().Msg("database ping failed, reporting NOT_SERVING")
	}

	m.server.SetServingStatus("", status)
	m.server.SetServingStatus(m.service, status)
	return status
}

// Run probes until ctx is cancelled
func (m *HealthMonitor) Run(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.Check(ctx)
	for {
		select {
		case <-ticker.C:
			m.Check(ctx)
		case <-ctx.Done():
			m.logger.Info().Msg("health monitor stopped")
			return
		}
	}
}
