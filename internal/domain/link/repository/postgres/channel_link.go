package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/hm-yang2/board-share/internal/domain/link/deps"
	"github.com/hm-yang2/board-share/internal/domain/link/entities"
	linkerrors "github.com/hm-yang2/board-share/internal/domain/link/errors"
)

// ChannelLinkRepository implements deps.ChannelLinkRepository using GORM
type ChannelLinkRepository struct {
	db *gorm.DB
}

// NewChannelLinkRepository creates a new channel link repository
func NewChannelLinkRepository(db *gorm.DB) deps.ChannelLinkRepository {
	return &ChannelLinkRepository{db: db}
}

func (r *ChannelLinkRepository) withRelations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Link").
		Preload("Link.User").
		Preload("Channel")
}

func (r *ChannelLinkRepository) ListByChannel(ctx context.Context, channelID uint) ([]entities.ChannelLink, error) {
	var channelLinks []entities.ChannelLink
	err := r.withRelations(ctx).
		Where("channel_id = ?", channelID).
		Order("id").
		Find(&channelLinks).Error
	if err != nil {
		return nil, linkerrors.ErrDatabase(err)
	}
	return channelLinks, nil
}

func (r *ChannelLinkRepository) Get(ctx context.Context, id, channelID uint) (*entities.ChannelLink, error) {
	var channelLink entities.ChannelLink
	err := r.withRelations(ctx).
		Where("id = ? AND channel_id = ?", id, channelID).
		First(&channelLink).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, linkerrors.ErrChannelLinkNotFound
		}
		return nil, linkerrors.ErrDatabase(err)
	}
	return &channelLink, nil
}

func (r *ChannelLinkRepository) Create(ctx context.Context, channelLink *entities.ChannelLink) error {
	if err := r.db.WithContext(ctx).Omit("Link", "Channel").Create(channelLink).Error; err != nil {
		return linkerrors.ErrDatabase(err)
	}
	return r.reload(ctx, channelLink)
}

func (r *ChannelLinkRepository) Update(ctx context.Context, channelLink *entities.ChannelLink) error {
	err := r.db.WithContext(ctx).
		Model(channelLink).
		Select("title", "link_id").
		Updates(channelLink).Error
	if err != nil {
		return linkerrors.ErrDatabase(err)
	}
	return r.reload(ctx, channelLink)
}

func (r *ChannelLinkRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&entities.ChannelLink{}, id)
	if result.Error != nil {
		return linkerrors.ErrDatabase(result.Error)
	}
	if result.RowsAffected == 0 {
		return linkerrors.ErrChannelLinkNotFound
	}
	return nil
}

// reload refreshes the nested link, its owner and the channel after a write
func (r *ChannelLinkRepository) reload(ctx context.Context, channelLink *entities.ChannelLink) error {
	var fresh entities.ChannelLink
	if err := r.withRelations(ctx).First(&fresh, channelLink.ID).Error; err != nil {
		return linkerrors.ErrDatabase(err)
	}
	*channelLink = fresh
	return nil
}
