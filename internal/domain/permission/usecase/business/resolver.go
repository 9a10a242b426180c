package business

import (
	"context"

	"github.com/rs/zerolog"

	channelentities "github.com/hm-yang2/board-share/internal/domain/channel/entities"
	"github.com/hm-yang2/board-share/internal/domain/permission/deps"
	"github.com/hm-yang2/board-share/internal/domain/permission/entities"
)

// checks are ordered from the highest channel role down
var roleChecks = []struct {
	kind channelentities.RosterKind
	role entities.Role
}{
	{channelentities.RosterOwner, entities.RoleOwner},
	{channelentities.RosterAdmin, entities.RoleAdmin},
	{channelentities.RosterMember, entities.RoleMember},
}

// Resolver computes a user's role in a channel
type Resolver struct {
	repo    deps.PermissionRepository
	metrics deps.RoleMetrics
	logger  zerolog.Logger
}

// NewResolver creates a new role resolver
func NewResolver(repo deps.PermissionRepository, metrics deps.RoleMetrics, logger zerolog.Logger) *Resolver {
	return &Resolver{
		repo:    repo,
		metrics: metrics,
		logger:  logger.With().Str("usecase", "permission").Logger(),
	}
}

// ResolveRole returns the highest role userID holds in channelID
func (r *Resolver) ResolveRole(ctx context.Context, userID, channelID uint) (entities.Role, error) {
	role, err := r.resolve(ctx, userID, channelID)
	if err != nil {
		r.logger.Error().Err(err).
			Uint("user_id", userID).
			Uint("channel_id", channelID).
			Msg("failed to resolve role")
		return entities.RoleNotAllowed, err
	}

	r.metrics.RecordRoleResolution(string(role))
	return role, nil
}

func (r *Resolver) resolve(ctx context.Context, userID, channelID uint) (entities.Role, error) {
	isSuper, err := r.repo.IsSuperUser(ctx, userID)
	if err != nil {
		return entities.RoleNotAllowed, err
	}
	if isSuper {
		return entities.RoleSuperUser, nil
	}

	for _, check := range roleChecks {
		ok, err := r.repo.HasRole(ctx, check.kind, userID, channelID)
		if err != nil {
			return entities.RoleNotAllowed, err
		}
		if ok {
			return check.role, nil
		}
	}
	return entities.RoleNotAllowed, nil
}

// IsSuperUser reports whether userID is on the super-user list
func (r *Resolver) IsSuperUser(ctx context.Context, userID uint) (bool, error) {
	return r.repo.IsSuperUser(ctx, userID)
}
