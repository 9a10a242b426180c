package permission

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/hm-yang2/board-share/internal/domain/permission/deps"
	"github.com/hm-yang2/board-share/internal/domain/permission/repository/postgres"
	"github.com/hm-yang2/board-share/internal/domain/permission/usecase/business"
	"github.com/hm-yang2/board-share/internal/infrastructure/metrics"
)

// Module provides role resolution for fx DI
var Module = fx.Module("permission",
	fx.Provide(NewPermissionRepositoryFx),
	fx.Provide(NewResolverFx),
)

// NewPermissionRepositoryFx creates a permission repository for fx DI
func NewPermissionRepositoryFx(db *gorm.DB) deps.PermissionRepository {
	return postgres.NewRepository(db)
}

// NewResolverFx creates the role resolver for fx DI
func NewResolverFx(repo deps.PermissionRepository, m *metrics.Metrics, logger zerolog.Logger) deps.Resolver {
	return business.NewResolver(repo, m, logger)
}
