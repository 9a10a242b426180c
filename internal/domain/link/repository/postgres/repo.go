package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/hm-yang2/board-share/internal/domain/link/deps"
	"github.com/hm-yang2/board-share/internal/domain/link/entities"
	linkerrors "github.com/hm-yang2/board-share/internal/domain/link/errors"
	"github.com/hm-yang2/board-share/pkg/dbutil"
)

// Repository implements deps.LinkRepository using GORM
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new link repository
func NewRepository(db *gorm.DB) deps.LinkRepository {
	return &Repository{db: db}
}

func (r *Repository) List(ctx context.Context, userID uint, search string) ([]entities.Link, error) {
	query := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ?", userID).
		Order("id")
	if search != "" {
		query = query.Where(dbutil.ContainsClause("title"), dbutil.ContainsPattern(search))
	}

	var links []entities.Link
	if err := query.Find(&links).Error; err != nil {
		return nil, linkerrors.ErrDatabase(err)
	}
	return links, nil
}

func (r *Repository) GetByID(ctx context.Context, id uint) (*entities.Link, error) {
	var link entities.Link
	if err := r.db.WithContext(ctx).Preload("User").First(&link, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, linkerrors.ErrLinkNotFound
		}
		return nil, linkerrors.ErrDatabase(err)
	}
	return &link, nil
}

func (r *Repository) GetOwned(ctx context.Context, id, userID uint) (*entities.Link, error) {
	var link entities.Link
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("id = ? AND user_id = ?", id, userID).
		First(&link).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, linkerrors.ErrLinkNotFound
		}
		return nil, linkerrors.ErrDatabase(err)
	}
	return &link, nil
}

func (r *Repository) Create(ctx context.Context, link *entities.Link) error {
	if err := r.db.WithContext(ctx).Omit("User").Create(link).Error; err != nil {
		return linkerrors.ErrDatabase(err)
	}
	return nil
}

func (r *Repository) Update(ctx context.Context, link *entities.Link) error {
	err := r.db.WithContext(ctx).
		Model(link).
		Select("link", "title", "description").
		Updates(link).Error
	if err != nil {
		return linkerrors.ErrDatabase(err)
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("link_id = ?", id).Delete(&entities.ChannelLink{}).Error; err != nil {
			return linkerrors.ErrDatabase(err)
		}

		result := tx.Delete(&entities.Link{}, id)
		if result.Error != nil {
			return linkerrors.ErrDatabase(result.Error)
		}
		if result.RowsAffected == 0 {
			return linkerrors.ErrLinkNotFound
		}
		return nil
	})
}
