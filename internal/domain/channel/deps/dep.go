package deps

import (
	"context"

	"github.com/hm-yang2/board-share/internal/domain/channel/dto"
	"github.com/hm-yang2/board-share/internal/domain/channel/entities"
	permissionentities "github.com/hm-yang2/board-share/internal/domain/permission/entities"
	userentities "github.com/hm-yang2/board-share/internal/domain/user/entities"
)

// ChannelRepository persists channels
type ChannelRepository interface {
	ListAll(ctx context.Context, search string) ([]entities.Channel, error)
	ListPublic(ctx context.Context, search string) ([]entities.Channel, error)
	// ListByRole returns channels where userID has a row in the kind's roster
	ListByRole(ctx context.Context, kind entities.RosterKind, userID uint, search string) ([]entities.Channel, error)
	GetByID(ctx context.Context, id uint) (*entities.Channel, error)
	ExistsByName(ctx context.Context, name string, excludeID uint) (bool, error)
	// CreateWithOwner inserts the channel and its first owner in one transaction
	CreateWithOwner(ctx context.Context, channel *entities.Channel, ownerID uint) error
	Update(ctx context.Context, channel *entities.Channel) error
	// Delete removes the channel with its roster and channel links
	Delete(ctx context.Context, id uint) error
}

// RosterRepository persists member, admin and owner rows
type RosterRepository interface {
	List(ctx context.Context, kind entities.RosterKind, channelID uint) ([]entities.RosterEntry, error)
	Exists(ctx context.Context, kind entities.RosterKind, userID, channelID uint) (bool, error)
	Get(ctx context.Context, kind entities.RosterKind, id, channelID uint) (*entities.RosterEntry, error)
	Create(ctx context.Context, kind entities.RosterKind, entry *entities.RosterEntry) error
	Delete(ctx context.Context, kind entities.RosterKind, id uint) error
	Count(ctx context.Context, kind entities.RosterKind, channelID uint) (int64, error)
}

// UserFinder loads roster targets
type UserFinder interface {
	GetUser(ctx context.Context, id uint) (*userentities.User, error)
}

// ChannelUseCase is the channel API
type ChannelUseCase interface {
	ListChannels(ctx context.Context, actor *userentities.User, search string) ([]entities.Channel, error)
	GetChannel(ctx context.Context, actor *userentities.User, id uint) (*entities.Channel, error)
	GetRole(ctx context.Context, actor *userentities.User, channelID *uint) (permissionentities.Role, error)
	CreateChannel(ctx context.Context, actor *userentities.User, req dto.ChannelRequest) (*entities.Channel, error)
	UpdateChannel(ctx context.Context, actor *userentities.User, req dto.ChannelRequest) (*entities.Channel, error)
	DeleteChannel(ctx context.Context, actor *userentities.User, id uint) error
}

// RosterUseCase manages channel members, admins and owners
type RosterUseCase interface {
	List(ctx context.Context, actor *userentities.User, kind entities.RosterKind, channelID uint) ([]entities.RosterEntry, error)
	Add(ctx context.Context, actor *userentities.User, kind entities.RosterKind, channelID, userID uint) (*entities.RosterEntry, error)
	Remove(ctx context.Context, actor *userentities.User, kind entities.RosterKind, channelID, entryID uint) error
}
