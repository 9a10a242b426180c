package database

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/hm-yang2/board-share/config"
	channelentities "github.com/hm-yang2/board-share/internal/domain/channel/entities"
	linkentities "github.com/hm-yang2/board-share/internal/domain/link/entities"
	userentities "github.com/hm-yang2/board-share/internal/domain/user/entities"
)

// Open connects to the configured database driver
func Open(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	switch cfg.Driver {
	case "sqlite":
		return NewSQLiteDB(cfg.Path)
	default:
		return NewPostgresDB(cfg)
	}
}

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.GetDSN()), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

// NewSQLiteDB opens a SQLite database and creates the schema from the entities.
// Pass ":memory:" for a throwaway database.
func NewSQLiteDB(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	// every pooled connection to :memory: would otherwise see its own empty database
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := AutoMigrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// AutoMigrate creates the schema from the GORM entities
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&userentities.User{},
		&userentities.SuperUser{},
		&channelentities.Channel{},
		&linkentities.Link{},
		&linkentities.ChannelLink{},
	); err != nil {
		return fmt.Errorf("failed to auto migrate: %w", err)
	}

	if err := db.AutoMigrate(&channelMemberRow{}, &channelAdminRow{}, &channelOwnerRow{}); err != nil {
		return fmt.Errorf("failed to auto migrate rosters: %w", err)
	}

	for _, kind := range channelentities.RosterKinds {
		table := kind.Table()
		// a user holds each role at most once per channel
		unique := fmt.Sprintf("CREATE UNIQUE INDEX IF NOT EXISTS uq_%s_user_channel ON %s (user_id, channel_id)", table, table)
		if err := db.Exec(unique).Error; err != nil {
			return fmt.Errorf("failed to index %s: %w", table, err)
		}
	}
	return nil
}

// rosterColumns mirrors the columns of channelentities.RosterEntry without its associations.
// Queries keep using RosterEntry with RosterKind.Table.
type rosterColumns struct {
	ID          uint      `gorm:"primaryKey"`
	UserID      uint      `gorm:"not null;index"`
	ChannelID   uint      `gorm:"not null;index"`
	DateCreated time.Time `gorm:"autoCreateTime"`
}

type channelMemberRow struct{ rosterColumns }

func (channelMemberRow) TableName() string { return channelentities.RosterMember.Table() }

type channelAdminRow struct{ rosterColumns }

func (channelAdminRow) TableName() string { return channelentities.RosterAdmin.Table() }

type channelOwnerRow struct{ rosterColumns }

func (channelOwnerRow) TableName() string { return channelentities.RosterOwner.Table() }

// HealthChecker pings the database
type HealthChecker struct {
	db *gorm.DB
}

// NewHealthChecker creates a database health checker
func NewHealthChecker(db *gorm.DB) *HealthChecker {
	return &HealthChecker{db: db}
}

// HealthCheck returns true when the database answers a ping
func (h *HealthChecker) HealthCheck(ctx context.Context) bool {
	sqlDB, err := h.db.DB()
	if err != nil {
		return false
	}
	return sqlDB.PingContext(ctx) == nil
}
