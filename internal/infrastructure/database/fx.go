package database

import (
	"context"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/hm-yang2/board-share/config"
)

// Module provides database components for fx dependency injection
var Module = fx.Module("database",
	fx.Provide(
		NewDBFx,
		NewHealthChecker,
	),
)

// NewDBFx opens the database, brings the schema up to date and closes it on stop
func NewDBFx(
	lc fx.Lifecycle,
	cfg *config.DatabaseConfig,
	logger zerolog.Logger,
) (*gorm.DB, error) {
	db, err := Open(cfg)
	if err != nil {
		return nil, err
	}

	if cfg.Driver == "postgres" {
		if err := RunMigrations(db, cfg.DBName); err != nil {
			return nil, err
		}
		logger.Info().Msg("Database migrations completed successfully")
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info().Msg("Closing database connection")
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		},
	})

	logger.Info().
		Str("driver", cfg.Driver).
		Str("host", cfg.Host).
		Str("database", cfg.DBName).
		Msg("Database connected successfully")

	return db, nil
}
