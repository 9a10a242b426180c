package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/hm-yang2/board-share/internal/domain/channel/deps"
	"github.com/hm-yang2/board-share/internal/domain/channel/entities"
	channelerrors "github.com/hm-yang2/board-share/internal/domain/channel/errors"
)

// RosterRepository implements deps.RosterRepository on the three role tables
type RosterRepository struct {
	db *gorm.DB
}

// NewRosterRepository creates a new roster repository
func NewRosterRepository(db *gorm.DB) deps.RosterRepository {
	return &RosterRepository{db: db}
}

func (r *RosterRepository) table(ctx context.Context, kind entities.RosterKind) *gorm.DB {
	return r.db.WithContext(ctx).Table(kind.Table())
}

func (r *RosterRepository) List(ctx context.Context, kind entities.RosterKind, channelID uint) ([]entities.RosterEntry, error) {
	var entries []entities.RosterEntry
	err := r.table(ctx, kind).
		Preload("User").
		Preload("Channel").
		Where("channel_id = ?", channelID).
		Order("id").
		Find(&entries).Error
	if err != nil {
		return nil, channelerrors.ErrDatabase(err)
	}
	return entries, nil
}

func (r *RosterRepository) Exists(ctx context.Context, kind entities.RosterKind, userID, channelID uint) (bool, error) {
	var count int64
	err := r.table(ctx, kind).
		Where("user_id = ? AND channel_id = ?", userID, channelID).
		Count(&count).Error
	if err != nil {
		return false, channelerrors.ErrDatabase(err)
	}
	return count > 0, nil
}

// Get returns the row id only when it belongs to channelID
func (r *RosterRepository) Get(ctx context.Context, kind entities.RosterKind, id, channelID uint) (*entities.RosterEntry, error) {
	var entry entities.RosterEntry
	err := r.table(ctx, kind).
		Preload("User").
		Where("id = ? AND channel_id = ?", id, channelID).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, channelerrors.RosterNotFound(kind)
		}
		return nil, channelerrors.ErrDatabase(err)
	}
	return &entry, nil
}

func (r *RosterRepository) Create(ctx context.Context, kind entities.RosterKind, entry *entities.RosterEntry) error {
	if err := r.table(ctx, kind).Create(entry).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return channelerrors.RosterDuplicate(kind)
		}
		return channelerrors.ErrDatabase(err)
	}

	err := r.table(ctx, kind).
		Preload("User").
		Preload("Channel").
		First(entry, entry.ID).Error
	if err != nil {
		return channelerrors.ErrDatabase(err)
	}
	return nil
}

func (r *RosterRepository) Delete(ctx context.Context, kind entities.RosterKind, id uint) error {
	result := r.table(ctx, kind).Delete(&entities.RosterEntry{}, id)
	if result.Error != nil {
		return channelerrors.ErrDatabase(result.Error)
	}
	if result.RowsAffected == 0 {
		return channelerrors.RosterNotFound(kind)
	}
	return nil
}

func (r *RosterRepository) Count(ctx context.Context, kind entities.RosterKind, channelID uint) (int64, error) {
	var count int64
	if err := r.table(ctx, kind).Where("channel_id = ?", channelID).Count(&count).Error; err != nil {
		return 0, channelerrors.ErrDatabase(err)
	}
	return count, nil
}
