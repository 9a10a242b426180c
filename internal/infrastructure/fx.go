// Package infrastructure contains infrastructure layer components
package infrastructure

import (
	"go.uber.org/fx"

	"github.com/hm-yang2/board-share/internal/infrastructure/cache"
	"github.com/hm-yang2/board-share/internal/infrastructure/database"
	"github.com/hm-yang2/board-share/internal/infrastructure/grpc"
	"github.com/hm-yang2/board-share/internal/infrastructure/http"
	"github.com/hm-yang2/board-share/internal/infrastructure/kafka"
	"github.com/hm-yang2/board-share/internal/infrastructure/logger"
	"github.com/hm-yang2/board-share/internal/infrastructure/metrics"
	"github.com/hm-yang2/board-share/internal/infrastructure/oauth"
)

// Module provides all infrastructure components for fx dependency injection
var Module = fx.Module("infrastructure",
	logger.Module,
	metrics.Module,
	database.Module,
	kafka.Module,
	cache.Module,
	oauth.Module,
	http.Module,
	grpc.Module,
)
