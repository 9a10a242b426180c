package business

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/hm-yang2/board-share/internal/domain/channel/deps"
	"github.com/hm-yang2/board-share/internal/domain/channel/entities"
	channelerrors "github.com/hm-yang2/board-share/internal/domain/channel/errors"
	"github.com/hm-yang2/board-share/internal/domain/events"
	permissiondeps "github.com/hm-yang2/board-share/internal/domain/permission/deps"
	permissionentities "github.com/hm-yang2/board-share/internal/domain/permission/entities"
	userentities "github.com/hm-yang2/board-share/internal/domain/user/entities"
	pkgerrors "github.com/hm-yang2/board-share/pkg/errors"
)

type rosterRule struct {
	minRole permissionentities.Role
	added   string
	removed string
}

var rosterRules = map[entities.RosterKind]rosterRule{
	entities.RosterMember: {permissionentities.RoleAdmin, events.TypeMemberAdded, events.TypeMemberRemoved},
	entities.RosterAdmin:  {permissionentities.RoleAdmin, events.TypeAdminAdded, events.TypeAdminRemoved},
	entities.RosterOwner:  {permissionentities.RoleOwner, events.TypeOwnerAdded, events.TypeOwnerRemoved},
}

// RosterUseCase manages the member, admin and owner rows of channels
type RosterUseCase struct {
	channels  deps.ChannelRepository
	roster    deps.RosterRepository
	users     deps.UserFinder
	resolver  permissiondeps.Resolver
	publisher events.Publisher
	logger    zerolog.Logger
}

// NewRosterUseCase creates a new roster use case
func NewRosterUseCase(
	channels deps.ChannelRepository,
	roster deps.RosterRepository,
	users deps.UserFinder,
	resolver permissiondeps.Resolver,
	publisher events.Publisher,
	logger zerolog.Logger,
) *RosterUseCase {
	return &RosterUseCase{
		channels:  channels,
		roster:    roster,
		users:     users,
		resolver:  resolver,
		publisher: publisher,
		logger:    logger.With().Str("usecase", "roster").Logger(),
	}
}

// List returns the roster rows of a channel
func (u *RosterUseCase) List(ctx context.Context, actor *userentities.User, kind entities.RosterKind, channelID uint) ([]entities.RosterEntry, error) {
	if err := u.authorize(ctx, actor, kind, channelID); err != nil {
		return nil, err
	}
	return u.roster.List(ctx, kind, channelID)
}

// Add puts a user on a channel roster
func (u *RosterUseCase) Add(ctx context.Context, actor *userentities.User, kind entities.RosterKind, channelID, userID uint) (*entities.RosterEntry, error) {
	if err := u.authorize(ctx, actor, kind, channelID); err != nil {
		return nil, err
	}
	if userID == 0 {
		return nil, channelerrors.ErrUserIDRequired
	}

	exists, err := u.roster.Exists(ctx, kind, userID, channelID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, channelerrors.RosterDuplicate(kind)
	}

	if _, err := u.users.GetUser(ctx, userID); err != nil {
		if pkgerrors.IsNotFound(err) {
			return nil, channelerrors.ErrUserNotFound
		}
		return nil, err
	}

	entry := &entities.RosterEntry{UserID: userID, ChannelID: channelID}
	if err := u.roster.Create(ctx, kind, entry); err != nil {
		return nil, err
	}

	u.logger.Info().
		Str("kind", string(kind)).
		Uint("channel_id", channelID).
		Uint("user_id", userID).
		Uint("actor_id", actor.ID).
		Msg("roster entry added")

	u.publish(ctx, rosterEvent(rosterRules[kind].added, actor, entry))
	return entry, nil
}

// Remove deletes a roster row of the channel
func (u *RosterUseCase) Remove(ctx context.Context, actor *userentities.User, kind entities.RosterKind, channelID, entryID uint) error {
	if err := u.authorize(ctx, actor, kind, channelID); err != nil {
		return err
	}

	entry, err := u.roster.Get(ctx, kind, entryID, channelID)
	if err != nil {
		return err
	}

	if kind == entities.RosterOwner {
		owners, err := u.roster.Count(ctx, kind, channelID)
		if err != nil {
			return err
		}
		if owners <= 1 {
			return channelerrors.ErrLastOwner
		}
	}

	if err := u.roster.Delete(ctx, kind, entry.ID); err != nil {
		return err
	}

	u.logger.Info().
		Str("kind", string(kind)).
		Uint("channel_id", channelID).
		Uint("entry_id", entry.ID).
		Uint("actor_id", actor.ID).
		Msg("roster entry removed")

	u.publish(ctx, rosterEvent(rosterRules[kind].removed, actor, entry))
	return nil
}

// authorize checks the channel exists and the caller ranks high enough for the roster kind
func (u *RosterUseCase) authorize(ctx context.Context, actor *userentities.User, kind entities.RosterKind, channelID uint) error {
	rule, ok := rosterRules[kind]
	if !ok {
		return pkgerrors.NewValidationErrorf("unknown roster kind: %s", kind)
	}

	if _, err := u.channels.GetByID(ctx, channelID); err != nil {
		return err
	}

	role, err := u.resolver.ResolveRole(ctx, actor.ID, channelID)
	if err != nil {
		return err
	}
	if !role.AtLeast(rule.minRole) {
		return channelerrors.RosterDenied(kind)
	}
	return nil
}

func (u *RosterUseCase) publish(ctx context.Context, event events.Event) {
	if err := u.publisher.Publish(ctx, event); err != nil {
		u.logger.Warn().Err(err).Str("type", event.Type).Msg("failed to publish event")
	}
}

func rosterEvent(eventType string, actor *userentities.User, entry *entities.RosterEntry) events.Event {
	event := events.New(eventType, actor.ID)
	event.ChannelID = entry.ChannelID
	event.UserID = entry.UserID
	event.RecordID = entry.ID
	return event
}
