package deps

import (
	"context"

	"github.com/hm-yang2/board-share/internal/domain/user/entities"
)

// UserRepository persists users and super users
type UserRepository interface {
	List(ctx context.Context, search string) ([]entities.User, error)
	GetByID(ctx context.Context, id uint) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	Count(ctx context.Context) (int64, error)

	// CreateWithBootstrap inserts the user and promotes them to super user
	// when no super user exists yet. It reports whether promotion happened.
	CreateWithBootstrap(ctx context.Context, user *entities.User) (bool, error)

	// Delete removes the user with their links, roles and super user row
	Delete(ctx context.Context, id uint) error

	ListSuperUsers(ctx context.Context) ([]entities.SuperUser, error)
	GetSuperUser(ctx context.Context, id uint) (*entities.SuperUser, error)
	IsSuperUser(ctx context.Context, userID uint) (bool, error)
	CreateSuperUser(ctx context.Context, superUser *entities.SuperUser) error
	DeleteSuperUser(ctx context.Context, id uint) error
	CountSuperUsers(ctx context.Context) (int64, error)
}

// SessionInvalidator forgets cached sessions of a user
type SessionInvalidator interface {
	Invalidate(email string)
}

// UserUseCase is the user and super user API
type UserUseCase interface {
	ListUsers(ctx context.Context, search string) ([]entities.User, error)
	GetUser(ctx context.Context, id uint) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	EnsureUser(ctx context.Context, email string) (*entities.User, error)
	DeleteUser(ctx context.Context, actor *entities.User, id uint) error

	ListSuperUsers(ctx context.Context, actor *entities.User) ([]entities.SuperUser, error)
	AddSuperUser(ctx context.Context, actor *entities.User, userID uint) (*entities.SuperUser, error)
	RemoveSuperUser(ctx context.Context, actor *entities.User, superUserID uint) error
}
