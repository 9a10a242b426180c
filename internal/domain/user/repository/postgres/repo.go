package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	channelentities "github.com/hm-yang2/board-share/internal/domain/channel/entities"
	linkentities "github.com/hm-yang2/board-share/internal/domain/link/entities"
	"github.com/hm-yang2/board-share/internal/domain/user/deps"
	"github.com/hm-yang2/board-share/internal/domain/user/entities"
	usererrors "github.com/hm-yang2/board-share/internal/domain/user/errors"
	"github.com/hm-yang2/board-share/pkg/dbutil"
)

// Repository implements deps.UserRepository using GORM
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new user repository
func NewRepository(db *gorm.DB) deps.UserRepository {
	return &Repository{db: db}
}

func (r *Repository) List(ctx context.Context, search string) ([]entities.User, error) {
	query := r.db.WithContext(ctx).Order("id")
	if search != "" {
		query = query.Where(dbutil.ContainsClause("email"), dbutil.ContainsPattern(search))
	}

	var users []entities.User
	if err := query.Find(&users).Error; err != nil {
		return nil, usererrors.ErrDatabase(err)
	}
	return users, nil
}

func (r *Repository) GetByID(ctx context.Context, id uint) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usererrors.ErrUserNotFound
		}
		return nil, usererrors.ErrDatabase(err)
	}
	return &user, nil
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usererrors.ErrUserNotFound
		}
		return nil, usererrors.ErrDatabase(err)
	}
	return &user, nil
}

func (r *Repository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.User{}).Count(&count).Error; err != nil {
		return 0, usererrors.ErrDatabase(err)
	}
	return count, nil
}

func (r *Repository) CreateWithBootstrap(ctx context.Context, user *entities.User) (bool, error) {
	promoted := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return usererrors.ErrUserExists
			}
			return usererrors.ErrDatabase(err)
		}

		var supers int64
		if err := tx.Model(&entities.SuperUser{}).Count(&supers).Error; err != nil {
			return usererrors.ErrDatabase(err)
		}
		if supers > 0 {
			return nil
		}

		if err := tx.Create(&entities.SuperUser{UserID: user.ID}).Error; err != nil {
			return usererrors.ErrDatabase(err)
		}
		promoted = true
		return nil
	})
	return promoted, err
}

func (r *Repository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ownLinks := tx.Model(&linkentities.Link{}).Select("id").Where("user_id = ?", id)
		if err := tx.Where("link_id IN (?)", ownLinks).Delete(&linkentities.ChannelLink{}).Error; err != nil {
			return usererrors.ErrDatabase(err)
		}
		if err := tx.Where("user_id = ?", id).Delete(&linkentities.Link{}).Error; err != nil {
			return usererrors.ErrDatabase(err)
		}
		for _, kind := range channelentities.RosterKinds {
			if err := tx.Table(kind.Table()).Where("user_id = ?", id).Delete(&channelentities.RosterEntry{}).Error; err != nil {
				return usererrors.ErrDatabase(err)
			}
		}
		if err := tx.Where("user_id = ?", id).Delete(&entities.SuperUser{}).Error; err != nil {
			return usererrors.ErrDatabase(err)
		}

		result := tx.Delete(&entities.User{}, id)
		if result.Error != nil {
			return usererrors.ErrDatabase(result.Error)
		}
		if result.RowsAffected == 0 {
			return usererrors.ErrUserNotFound
		}
		return nil
	})
}

func (r *Repository) ListSuperUsers(ctx context.Context) ([]entities.SuperUser, error) {
	var supers []entities.SuperUser
	if err := r.db.WithContext(ctx).Preload("User").Order("id").Find(&supers).Error; err != nil {
		return nil, usererrors.ErrDatabase(err)
	}
	return supers, nil
}

func (r *Repository) GetSuperUser(ctx context.Context, id uint) (*entities.SuperUser, error) {
	var super entities.SuperUser
	if err := r.db.WithContext(ctx).Preload("User").First(&super, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usererrors.ErrSuperUserNotFound
		}
		return nil, usererrors.ErrDatabase(err)
	}
	return &super, nil
}

func (r *Repository) IsSuperUser(ctx context.Context, userID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.SuperUser{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return false, usererrors.ErrDatabase(err)
	}
	return count > 0, nil
}

func (r *Repository) CreateSuperUser(ctx context.Context, super *entities.SuperUser) error {
	if err := r.db.WithContext(ctx).Create(super).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return usererrors.ErrAlreadySuperUser
		}
		return usererrors.ErrDatabase(err)
	}
	if err := r.db.WithContext(ctx).Preload("User").First(super, super.ID).Error; err != nil {
		return usererrors.ErrDatabase(err)
	}
	return nil
}

func (r *Repository) DeleteSuperUser(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&entities.SuperUser{}, id)
	if result.Error != nil {
		return usererrors.ErrDatabase(result.Error)
	}
	if result.RowsAffected == 0 {
		return usererrors.ErrSuperUserNotFound
	}
	return nil
}

func (r *Repository) CountSuperUsers(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.SuperUser{}).Count(&count).Error; err != nil {
		return 0, usererrors.ErrDatabase(err)
	}
	return count, nil
}
