package deps

import (
	"context"

	channelentities "github.com/hm-yang2/board-share/internal/domain/channel/entities"
	"github.com/hm-yang2/board-share/internal/domain/link/dto"
	"github.com/hm-yang2/board-share/internal/domain/link/entities"
	userentities "github.com/hm-yang2/board-share/internal/domain/user/entities"
)

// LinkRepository persists personal links
type LinkRepository interface {
	List(ctx context.Context, userID uint, search string) ([]entities.Link, error)
	GetByID(ctx context.Context, id uint) (*entities.Link, error)
	// GetOwned hides links of other users behind ErrLinkNotFound
	GetOwned(ctx context.Context, id, userID uint) (*entities.Link, error)
	Create(ctx context.Context, link *entities.Link) error
	Update(ctx context.Context, link *entities.Link) error
	// Delete removes the link and every channel link posting it
	Delete(ctx context.Context, id uint) error
}

// ChannelLinkRepository persists links posted into channels
type ChannelLinkRepository interface {
	ListByChannel(ctx context.Context, channelID uint) ([]entities.ChannelLink, error)
	Get(ctx context.Context, id, channelID uint) (*entities.ChannelLink, error)
	Create(ctx context.Context, channelLink *entities.ChannelLink) error
	Update(ctx context.Context, channelLink *entities.ChannelLink) error
	Delete(ctx context.Context, id uint) error
}

// ChannelFinder loads the channel a link is posted into
type ChannelFinder interface {
	GetByID(ctx context.Context, id uint) (*channelentities.Channel, error)
}

// LinkUseCase is the personal link API
type LinkUseCase interface {
	ListLinks(ctx context.Context, actor *userentities.User, search string) ([]entities.Link, error)
	GetLink(ctx context.Context, actor *userentities.User, id uint) (*entities.Link, error)
	CreateLink(ctx context.Context, actor *userentities.User, req dto.LinkRequest) (*entities.Link, error)
	UpdateLink(ctx context.Context, actor *userentities.User, req dto.LinkRequest) (*entities.Link, error)
	DeleteLink(ctx context.Context, actor *userentities.User, id uint) error
}

// ChannelLinkUseCase is the channel link API
type ChannelLinkUseCase interface {
	ListChannelLinks(ctx context.Context, actor *userentities.User, channelID uint) ([]entities.ChannelLink, error)
	GetChannelLink(ctx context.Context, actor *userentities.User, channelID, id uint) (*entities.ChannelLink, error)
	CreateChannelLink(ctx context.Context, actor *userentities.User, channelID uint, req dto.ChannelLinkRequest) (*entities.ChannelLink, error)
	UpdateChannelLink(ctx context.Context, actor *userentities.User, channelID uint, req dto.ChannelLinkRequest) (*entities.ChannelLink, error)
	DeleteChannelLink(ctx context.Context, actor *userentities.User, channelID, id uint) error
}
