package business

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/hm-yang2/board-share/internal/domain/channel/deps"
	"github.com/hm-yang2/board-share/internal/domain/channel/dto"
	"github.com/hm-yang2/board-share/internal/domain/channel/entities"
	channelerrors "github.com/hm-yang2/board-share/internal/domain/channel/errors"
	"github.com/hm-yang2/board-share/internal/domain/events"
	permissiondeps "github.com/hm-yang2/board-share/internal/domain/permission/deps"
	permissionentities "github.com/hm-yang2/board-share/internal/domain/permission/entities"
	userentities "github.com/hm-yang2/board-share/internal/domain/user/entities"
	"github.com/hm-yang2/board-share/pkg/mapfn"
)

const (
	minNameLength        = 3
	maxNameLength        = 50
	maxDescriptionLength = 255
)

// UseCase manages channels
type UseCase struct {
	repo      deps.ChannelRepository
	resolver  permissiondeps.Resolver
	publisher events.Publisher
	logger    zerolog.Logger
}

// NewUseCase creates a new channel use case
func NewUseCase(
	repo deps.ChannelRepository,
	resolver permissiondeps.Resolver,
	publisher events.Publisher,
	logger zerolog.Logger,
) *UseCase {
	return &UseCase{
		repo:      repo,
		resolver:  resolver,
		publisher: publisher,
		logger:    logger.With().Str("usecase", "channel").Logger(),
	}
}

// ListChannels returns every channel to super users. Other callers get the
// channels they own, administer or belong to, followed by the public ones.
func (u *UseCase) ListChannels(ctx context.Context, actor *userentities.User, search string) ([]entities.Channel, error) {
	search = strings.TrimSpace(search)

	isSuper, err := u.resolver.IsSuperUser(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	if isSuper {
		return u.repo.ListAll(ctx, search)
	}

	var channels []entities.Channel
	for _, kind := range []entities.RosterKind{entities.RosterOwner, entities.RosterAdmin, entities.RosterMember} {
		withRole, err := u.repo.ListByRole(ctx, kind, actor.ID, search)
		if err != nil {
			return nil, err
		}
		channels = append(channels, withRole...)
	}

	public, err := u.repo.ListPublic(ctx, search)
	if err != nil {
		return nil, err
	}
	channels = append(channels, public...)

	return mapfn.UniqueBy(channels, func(c entities.Channel) uint { return c.ID }), nil
}

// GetChannel returns a channel. Private channels require a role.
func (u *UseCase) GetChannel(ctx context.Context, actor *userentities.User, id uint) (*entities.Channel, error) {
	channel, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !channel.IsPrivate() {
		return channel, nil
	}

	role, err := u.resolver.ResolveRole(ctx, actor.ID, channel.ID)
	if err != nil {
		return nil, err
	}
	if role == permissionentities.RoleNotAllowed {
		return nil, channelerrors.ErrAccessDenied
	}
	return channel, nil
}

// GetRole resolves the caller's role in channelID. Without a channel it only
// tells super users apart from everyone else.
func (u *UseCase) GetRole(ctx context.Context, actor *userentities.User, channelID *uint) (permissionentities.Role, error) {
	if channelID == nil {
		isSuper, err := u.resolver.IsSuperUser(ctx, actor.ID)
		if err != nil {
			return permissionentities.RoleNotAllowed, err
		}
		if isSuper {
			return permissionentities.RoleSuperUser, nil
		}
		return permissionentities.RoleNotAllowed, nil
	}

	if _, err := u.repo.GetByID(ctx, *channelID); err != nil {
		return permissionentities.RoleNotAllowed, err
	}
	return u.resolver.ResolveRole(ctx, actor.ID, *channelID)
}

// CreateChannel creates a channel and makes the caller its owner
func (u *UseCase) CreateChannel(ctx context.Context, actor *userentities.User, req dto.ChannelRequest) (*entities.Channel, error) {
	channel, err := newChannel(req)
	if err != nil {
		return nil, err
	}

	exists, err := u.repo.ExistsByName(ctx, channel.Name, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, channelerrors.ErrChannelExists
	}

	if err := u.repo.CreateWithOwner(ctx, channel, actor.ID); err != nil {
		return nil, err
	}

	u.logger.Info().
		Uint("channel_id", channel.ID).
		Uint("owner_id", actor.ID).
		Str("visibility", string(channel.Visibility)).
		Msg("channel created")

	u.publish(ctx, channelEvent(events.TypeChannelCreated, actor, channel))
	return channel, nil
}

// UpdateChannel changes a channel, owners and above only
func (u *UseCase) UpdateChannel(ctx context.Context, actor *userentities.User, req dto.ChannelRequest) (*entities.Channel, error) {
	if req.ID == nil || *req.ID == 0 {
		return nil, channelerrors.ErrChannelIDRequired
	}

	channel, err := u.repo.GetByID(ctx, *req.ID)
	if err != nil {
		return nil, err
	}
	if err := u.requireRole(ctx, actor, channel.ID, permissionentities.RoleOwner, channelerrors.ErrUpdateDenied); err != nil {
		return nil, err
	}

	updated, err := newChannel(req)
	if err != nil {
		return nil, err
	}

	exists, err := u.repo.ExistsByName(ctx, updated.Name, channel.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, channelerrors.ErrChannelExists
	}

	channel.Name = updated.Name
	channel.Description = updated.Description
	channel.Visibility = updated.Visibility
	if err := u.repo.Update(ctx, channel); err != nil {
		return nil, err
	}

	u.publish(ctx, channelEvent(events.TypeChannelUpdated, actor, channel))
	return channel, nil
}

// DeleteChannel removes a channel with its rosters and channel links
func (u *UseCase) DeleteChannel(ctx context.Context, actor *userentities.User, id uint) error {
	channel, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := u.requireRole(ctx, actor, channel.ID, permissionentities.RoleOwner, channelerrors.ErrDeleteDenied); err != nil {
		return err
	}

	if err := u.repo.Delete(ctx, channel.ID); err != nil {
		return err
	}

	u.logger.Info().
		Uint("channel_id", channel.ID).
		Uint("actor_id", actor.ID).
		Msg("channel deleted")

	u.publish(ctx, channelEvent(events.TypeChannelDeleted, actor, channel))
	return nil
}

func (u *UseCase) requireRole(ctx context.Context, actor *userentities.User, channelID uint, min permissionentities.Role, denied error) error {
	role, err := u.resolver.ResolveRole(ctx, actor.ID, channelID)
	if err != nil {
		return err
	}
	if !role.AtLeast(min) {
		return denied
	}
	return nil
}

func (u *UseCase) publish(ctx context.Context, event events.Event) {
	if err := u.publisher.Publish(ctx, event); err != nil {
		u.logger.Warn().Err(err).Str("type", event.Type).Msg("failed to publish event")
	}
}

func newChannel(req dto.ChannelRequest) (*entities.Channel, error) {
	name := strings.TrimSpace(req.Name)
	if n := utf8.RuneCountInString(name); n < minNameLength || n > maxNameLength {
		return nil, channelerrors.ErrInvalidName
	}
	if utf8.RuneCountInString(req.Description) > maxDescriptionLength {
		return nil, channelerrors.ErrDescriptionTooLong
	}
	if !req.Visibility.Valid() {
		return nil, channelerrors.ErrInvalidVisibility
	}
	return &entities.Channel{
		Name:        name,
		Description: req.Description,
		Visibility:  req.Visibility,
	}, nil
}

func channelEvent(eventType string, actor *userentities.User, channel *entities.Channel) events.Event {
	event := events.New(eventType, actor.ID)
	event.ChannelID = channel.ID
	event.Name = channel.Name
	return event
}
