package logger

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/hm-yang2/board-share/config"
)

// Module provides logger for fx DI
var Module = fx.Module("logger",
	fx.Provide(NewLogger),
)

// NewLogger creates a new logger from config
func NewLogger(cfg *config.LoggingConfig, serviceCfg *config.ServiceConfig) zerolog.Logger {
	return New(cfg.Level).With().Str("service", serviceCfg.Name).Logger()
}
