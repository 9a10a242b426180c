package cache

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/hm-yang2/board-share/config"
	authdeps "github.com/hm-yang2/board-share/internal/domain/auth/deps"
	userdeps "github.com/hm-yang2/board-share/internal/domain/user/deps"
	"github.com/hm-yang2/board-share/internal/infrastructure/metrics"
)

// CacheResult exposes the user cache to the domains that read and invalidate it
type CacheResult struct {
	fx.Out

	Cache       *UserCache
	Lookup      authdeps.UserCache
	Invalidator userdeps.SessionInvalidator
}

// Module provides cache components for fx DI
var Module = fx.Module("cache",
	fx.Provide(NewUserCacheFx),
)

// NewUserCacheFx creates UserCache for fx DI
func NewUserCacheFx(cfg *config.CacheConfig, m *metrics.Metrics, logger zerolog.Logger) CacheResult {
	c := NewUserCache(cfg.UserCacheSize, cfg.UserCacheTTL, m, logger)
	return CacheResult{Cache: c, Lookup: c, Invalidator: c}
}
