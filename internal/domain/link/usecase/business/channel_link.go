package business

import (
	"context"

	"github.com/rs/zerolog"

	channelentities "github.com/hm-yang2/board-share/internal/domain/channel/entities"
	"github.com/hm-yang2/board-share/internal/domain/events"
	"github.com/hm-yang2/board-share/internal/domain/link/deps"
	"github.com/hm-yang2/board-share/internal/domain/link/dto"
	"github.com/hm-yang2/board-share/internal/domain/link/entities"
	linkerrors "github.com/hm-yang2/board-share/internal/domain/link/errors"
	permissiondeps "github.com/hm-yang2/board-share/internal/domain/permission/deps"
	permissionentities "github.com/hm-yang2/board-share/internal/domain/permission/entities"
	userentities "github.com/hm-yang2/board-share/internal/domain/user/entities"
)

// ChannelLinkUseCase manages links posted into channels
type ChannelLinkUseCase struct {
	channelLinks deps.ChannelLinkRepository
	links        deps.LinkRepository
	channels     deps.ChannelFinder
	resolver     permissiondeps.Resolver
	publisher    events.Publisher
	logger       zerolog.Logger
}

// NewChannelLinkUseCase creates a new channel link use case
func NewChannelLinkUseCase(
	channelLinks deps.ChannelLinkRepository,
	links deps.LinkRepository,
	channels deps.ChannelFinder,
	resolver permissiondeps.Resolver,
	publisher events.Publisher,
	logger zerolog.Logger,
) *ChannelLinkUseCase {
	return &ChannelLinkUseCase{
		channelLinks: channelLinks,
		links:        links,
		channels:     channels,
		resolver:     resolver,
		publisher:    publisher,
		logger:       logger.With().Str("usecase", "channel_link").Logger(),
	}
}

// ListChannelLinks returns the links posted in a channel
func (u *ChannelLinkUseCase) ListChannelLinks(ctx context.Context, actor *userentities.User, channelID uint) ([]entities.ChannelLink, error) {
	if _, err := u.visibleChannel(ctx, actor, channelID, linkerrors.ErrViewDenied); err != nil {
		return nil, err
	}
	return u.channelLinks.ListByChannel(ctx, channelID)
}

// GetChannelLink returns one link posted in a channel
func (u *ChannelLinkUseCase) GetChannelLink(ctx context.Context, actor *userentities.User, channelID, id uint) (*entities.ChannelLink, error) {
	if _, err := u.visibleChannel(ctx, actor, channelID, linkerrors.ErrViewDenied); err != nil {
		return nil, err
	}
	return u.channelLinks.Get(ctx, id, channelID)
}

// CreateChannelLink posts an existing link into a channel
func (u *ChannelLinkUseCase) CreateChannelLink(ctx context.Context, actor *userentities.User, channelID uint, req dto.ChannelLinkRequest) (*entities.ChannelLink, error) {
	channel, err := u.visibleChannel(ctx, actor, channelID, linkerrors.ErrCreateDenied)
	if err != nil {
		return nil, err
	}

	title, err := validTitle(req.Title)
	if err != nil {
		return nil, err
	}
	link, err := u.links.GetByID(ctx, req.LinkID)
	if err != nil {
		return nil, err
	}

	channelLink := &entities.ChannelLink{
		Title:     title,
		LinkID:    link.ID,
		ChannelID: channel.ID,
	}
	if err := u.channelLinks.Create(ctx, channelLink); err != nil {
		return nil, err
	}

	u.logger.Info().
		Uint("channel_id", channel.ID).
		Uint("channel_link_id", channelLink.ID).
		Uint("actor_id", actor.ID).
		Msg("link posted to channel")

	u.publish(ctx, channelLinkEvent(events.TypeChannelLinkCreated, actor, channelLink))
	return channelLink, nil
}

// UpdateChannelLink changes the title or target link of a channel entry
func (u *ChannelLinkUseCase) UpdateChannelLink(ctx context.Context, actor *userentities.User, channelID uint, req dto.ChannelLinkRequest) (*entities.ChannelLink, error) {
	if req.ID == nil || *req.ID == 0 {
		return nil, linkerrors.ErrChannelLinkIDRequired
	}

	channelLink, err := u.channelLinks.Get(ctx, *req.ID, channelID)
	if err != nil {
		return nil, err
	}
	if err := u.requireEditor(ctx, actor, channelLink, linkerrors.ErrUpdateDenied); err != nil {
		return nil, err
	}

	title, err := validTitle(req.Title)
	if err != nil {
		return nil, err
	}
	if req.LinkID != 0 && req.LinkID != channelLink.LinkID {
		link, err := u.links.GetByID(ctx, req.LinkID)
		if err != nil {
			return nil, err
		}
		channelLink.LinkID = link.ID
	}
	channelLink.Title = title

	if err := u.channelLinks.Update(ctx, channelLink); err != nil {
		return nil, err
	}

	u.publish(ctx, channelLinkEvent(events.TypeChannelLinkUpdated, actor, channelLink))
	return channelLink, nil
}

// DeleteChannelLink removes a link from a channel
func (u *ChannelLinkUseCase) DeleteChannelLink(ctx context.Context, actor *userentities.User, channelID, id uint) error {
	channelLink, err := u.channelLinks.Get(ctx, id, channelID)
	if err != nil {
		return err
	}
	if err := u.requireEditor(ctx, actor, channelLink, linkerrors.ErrDeleteDenied); err != nil {
		return err
	}

	if err := u.channelLinks.Delete(ctx, channelLink.ID); err != nil {
		return err
	}

	u.logger.Info().
		Uint("channel_id", channelID).
		Uint("channel_link_id", channelLink.ID).
		Uint("actor_id", actor.ID).
		Msg("channel link deleted")

	u.publish(ctx, channelLinkEvent(events.TypeChannelLinkDeleted, actor, channelLink))
	return nil
}

// visibleChannel loads the channel and rejects callers without any role in a private one
func (u *ChannelLinkUseCase) visibleChannel(ctx context.Context, actor *userentities.User, channelID uint, denied error) (*channelentities.Channel, error) {
	channel, err := u.channels.GetByID(ctx, channelID)
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
		return nil, denied
	}
	return channel, nil
}

// requireEditor allows the link's owner and channel admins or above
func (u *ChannelLinkUseCase) requireEditor(ctx context.Context, actor *userentities.User, channelLink *entities.ChannelLink, denied error) error {
	if channelLink.Link != nil && channelLink.Link.UserID == actor.ID {
		return nil
	}

	role, err := u.resolver.ResolveRole(ctx, actor.ID, channelLink.ChannelID)
	if err != nil {
		return err
	}
	if !role.AtLeast(permissionentities.RoleAdmin) {
		return denied
	}
	return nil
}

func (u *ChannelLinkUseCase) publish(ctx context.Context, event events.Event) {
	if err := u.publisher.Publish(ctx, event); err != nil {
		u.logger.Warn().Err(err).Str("type", event.Type).Msg("failed to publish event")
	}
}

func channelLinkEvent(eventType string, actor *userentities.User, channelLink *entities.ChannelLink) events.Event {
	event := events.New(eventType, actor.ID)
	event.ChannelID = channelLink.ChannelID
	event.RecordID = channelLink.ID
	event.Name = channelLink.Title
	return event
}
