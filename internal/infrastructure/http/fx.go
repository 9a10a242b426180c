package http

import (
	"context"

	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/hm-yang2/board-share/config"
	"github.com/hm-yang2/board-share/internal/infrastructure/database"
	"github.com/hm-yang2/board-share/internal/infrastructure/http/server"
	"github.com/hm-yang2/board-share/internal/infrastructure/kafka"
)

// Module provides HTTP server for fx DI
var Module = fx.Module("http",
	fx.Provide(NewServerFx),
	fx.Invoke(RegisterHealth),
)

// NewServerFx creates HTTP server with lifecycle hooks for fx DI
func NewServerFx(
	lc fx.Lifecycle,
	serviceCfg *config.ServiceConfig,
	logger zerolog.Logger,
) *server.Server {
	srv := server.NewServer(serviceCfg.Name, serviceCfg.Port, serviceCfg.AllowedOrigin, logger)

	srv.RegisterMetrics()

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return srv.Start()
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})

	return srv
}

// RegisterHealth mounts GET /health
func RegisterHealth(
	srv *server.Server,
	db *database.HealthChecker,
	publisher kafka.HealthReporter,
	logger zerolog.Logger,
) {
	srv.Router.GET("/health", NewHealthHandler(db, publisher, logger).Handle)
}
