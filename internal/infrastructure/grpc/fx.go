package grpc

import (
	"context"
	"net"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/hm-yang2/board-share/config"
	"github.com/hm-yang2/board-share/internal/infrastructure/database"
	"github.com/hm-yang2/board-share/internal/infrastructure/metrics"
)

var Module = fx.Module(
	"grpc",
	fx.Provide(NewGRPCServer),
	fx.Invoke(registerGRPCServer),
)

type GRPCServerResult struct {
	fx.Out
	Server *grpc.Server
	Health *health.Server
}

func NewGRPCServer() GRPCServerResult {
	server := grpc.NewServer()
	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(server, healthServer)

	return GRPCServerResult{
		Server: server,
		Health: healthServer,
	}
}

func registerGRPCServer(
	lc fx.Lifecycle,
	cfg *config.GRPCConfig,
	serviceCfg *config.ServiceConfig,
	server *grpc.Server,
	healthServer *health.Server,
	db *database.HealthChecker,
	m *metrics.Metrics,
	log zerolog.Logger,
) error {
	monitor := NewHealthMonitor(healthServer, db, serviceCfg.Name, cfg.CheckInterval, m, log)
	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			lis, err := net.Listen("tcp", ":"+cfg.Port)
			if err != nil {
				log.Error().Err(err).Str("port", cfg.Port).Msg("failed to listen for gRPC")
				return err
			}

			go monitor.Run(monitorCtx)

			go func() {
				log.Info().Str("port", cfg.Port).Msg("gRPC server started")
				if err := server.Serve(lis); err != nil {
					log.Error().Err(err).Msg("gRPC server failed")
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("stopping gRPC server...")
			cancelMonitor()
			healthServer.Shutdown()
			server.GracefulStop()
			log.Info().Msg("gRPC server stopped")
			return nil
		},
	})

	return nil
}
