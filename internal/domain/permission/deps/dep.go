package deps

import (
	"context"

	channelentities "github.com/hm-yang2/board-share/internal/domain/channel/entities"
	"github.com/hm-yang2/board-share/internal/domain/permission/entities"
)

// PermissionRepository answers role membership questions
type PermissionRepository interface {
	IsSuperUser(ctx context.Context, userID uint) (bool, error)
	HasRole(ctx context.Context, kind channelentities.RosterKind, userID, channelID uint) (bool, error)
}

// RoleMetrics counts resolved roles
type RoleMetrics interface {
	RecordRoleResolution(role string)
}

// Resolver computes a user's effective role in a channel
type Resolver interface {
	ResolveRole(ctx context.Context, userID, channelID uint) (entities.Role, error)
	IsSuperUser(ctx context.Context, userID uint) (bool, error)
}
