package postgres

import (
	"context"

	"gorm.io/gorm"

	channelentities "github.com/hm-yang2/board-share/internal/domain/channel/entities"
	"github.com/hm-yang2/board-share/internal/domain/permission/deps"
	userentities "github.com/hm-yang2/board-share/internal/domain/user/entities"
	pkgerrors "github.com/hm-yang2/board-share/pkg/errors"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) deps.PermissionRepository {
	return &Repository{db: db}
}

func (r *Repository) IsSuperUser(ctx context.Context, userID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&userentities.SuperUser{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return false, pkgerrors.WrapInternal(err, "database operation failed")
	}
	return count > 0, nil
}

func (r *Repository) HasRole(ctx context.Context, kind channelentities.RosterKind, userID, channelID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table(kind.Table()).
		Where("user_id = ? AND channel_id = ?", userID, channelID).
		Count(&count).Error
	if err != nil {
		return false, pkgerrors.WrapInternal(err, "database operation failed")
	}
	return count > 0, nil
}
