package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/hm-yang2/board-share/internal/domain/channel/deps"
	"github.com/hm-yang2/board-share/internal/domain/channel/entities"
	channelerrors "github.com/hm-yang2/board-share/internal/domain/channel/errors"
	linkentities "github.com/hm-yang2/board-share/internal/domain/link/entities"
	"github.com/hm-yang2/board-share/pkg/dbutil"
)

// Repository implements deps.ChannelRepository using GORM
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new channel repository
func NewRepository(db *gorm.DB) deps.ChannelRepository {
	return &Repository{db: db}
}

func withNameSearch(query *gorm.DB, column, search string) *gorm.DB {
	if search == "" {
		return query
	}
	return query.Where(dbutil.ContainsClause(column), dbutil.ContainsPattern(search))
}

func (r *Repository) ListAll(ctx context.Context, search string) ([]entities.Channel, error) {
	var channels []entities.Channel
	query := withNameSearch(r.db.WithContext(ctx).Order("id"), "name", search)
	if err := query.Find(&channels).Error; err != nil {
		return nil, channelerrors.ErrDatabase(err)
	}
	return channels, nil
}

func (r *Repository) ListPublic(ctx context.Context, search string) ([]entities.Channel, error) {
	var channels []entities.Channel
	query := r.db.WithContext(ctx).
		Where("visibility = ?", entities.VisibilityPublic).
		Order("id")
	if err := withNameSearch(query, "name", search).Find(&channels).Error; err != nil {
		return nil, channelerrors.ErrDatabase(err)
	}
	return channels, nil
}

func (r *Repository) ListByRole(ctx context.Context, kind entities.RosterKind, userID uint, search string) ([]entities.Channel, error) {
	var channels []entities.Channel
	query := r.db.WithContext(ctx).
		Joins("JOIN "+kind.Table()+" roster ON roster.channel_id = channels.id").
		Where("roster.user_id = ?", userID).
		Order("roster.id")
	if err := withNameSearch(query, "channels.name", search).Find(&channels).Error; err != nil {
		return nil, channelerrors.ErrDatabase(err)
	}
	return channels, nil
}

func (r *Repository) GetByID(ctx context.Context, id uint) (*entities.Channel, error) {
	var channel entities.Channel
	if err := r.db.WithContext(ctx).First(&channel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, channelerrors.ErrChannelNotFound
		}
		return nil, channelerrors.ErrDatabase(err)
	}
	return &channel, nil
}

func (r *Repository) ExistsByName(ctx context.Context, name string, excludeID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.Channel{}).
		Where("name = ? AND id <> ?", name, excludeID).
		Count(&count).Error
	if err != nil {
		return false, channelerrors.ErrDatabase(err)
	}
	return count > 0, nil
}

func (r *Repository) CreateWithOwner(ctx context.Context, channel *entities.Channel, ownerID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(channel).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return channelerrors.ErrChannelExists
			}
			return channelerrors.ErrDatabase(err)
		}

		owner := &entities.RosterEntry{UserID: ownerID, ChannelID: channel.ID}
		if err := tx.Table(entities.RosterOwner.Table()).Create(owner).Error; err != nil {
			return channelerrors.ErrDatabase(err)
		}
		return nil
	})
}

func (r *Repository) Update(ctx context.Context, channel *entities.Channel) error {
	err := r.db.WithContext(ctx).
		Model(channel).
		Select("name", "description", "visibility").
		Updates(channel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return channelerrors.ErrChannelExists
		}
		return channelerrors.ErrDatabase(err)
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("channel_id = ?", id).Delete(&linkentities.ChannelLink{}).Error; err != nil {
			return channelerrors.ErrDatabase(err)
		}
		for _, kind := range entities.RosterKinds {
			if err := tx.Table(kind.Table()).Where("channel_id = ?", id).Delete(&entities.RosterEntry{}).Error; err != nil {
				return channelerrors.ErrDatabase(err)
			}
		}

		result := tx.Delete(&entities.Channel{}, id)
		if result.Error != nil {
			return channelerrors.ErrDatabase(result.Error)
		}
		if result.RowsAffected == 0 {
			return channelerrors.ErrChannelNotFound
		}
		return nil
	})
}
