package business

import (
	"context"
	"net/mail"
	"strings"

	"github.com/rs/zerolog"

	"github.com/hm-yang2/board-share/internal/domain/events"
	"github.com/hm-yang2/board-share/internal/domain/user/deps"
	"github.com/hm-yang2/board-share/internal/domain/user/entities"
	usererrors "github.com/hm-yang2/board-share/internal/domain/user/errors"
	pkgerrors "github.com/hm-yang2/board-share/pkg/errors"
)

// UseCase manages users and the super-user list
type UseCase struct {
	repo        deps.UserRepository
	invalidator deps.SessionInvalidator
	publisher   events.Publisher
	logger      zerolog.Logger
}

// NewUseCase creates a new user use case
func NewUseCase(
	repo deps.UserRepository,
	invalidator deps.SessionInvalidator,
	publisher events.Publisher,
	logger zerolog.Logger,
) *UseCase {
	return &UseCase{
		repo:        repo,
		invalidator: invalidator,
		publisher:   publisher,
		logger:      logger.With().Str("usecase", "user").Logger(),
	}
}

// ListUsers returns users whose email contains search
func (u *UseCase) ListUsers(ctx context.Context, search string) ([]entities.User, error) {
	return u.repo.List(ctx, strings.TrimSpace(search))
}

// GetUser returns a user by id
func (u *UseCase) GetUser(ctx context.Context, id uint) (*entities.User, error) {
	if id == 0 {
		return nil, usererrors.ErrUserIDRequired
	}
	return u.repo.GetByID(ctx, id)
}

// GetByEmail looks a user up by normalized email
func (u *UseCase) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	return u.repo.GetByEmail(ctx, normalizeEmail(email))
}

// EnsureUser returns the user for email, creating it on first login.
// The very first user of the application becomes a super user.
func (u *UseCase) EnsureUser(ctx context.Context, email string) (*entities.User, error) {
	email = normalizeEmail(email)
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, usererrors.ErrInvalidEmail
	}

	user, err := u.repo.GetByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if !pkgerrors.IsNotFound(err) {
		return nil, err
	}

	user = &entities.User{Email: email}
	promoted, err := u.repo.CreateWithBootstrap(ctx, user)
	if err != nil {
		// a concurrent login created the same user first
		if pkgerrors.IsConflict(err) {
			return u.repo.GetByEmail(ctx, email)
		}
		u.logger.Error().Err(err).Str("email", email).Msg("failed to create user")
		return nil, err
	}

	u.logger.Info().
		Uint("user_id", user.ID).
		Bool("super_user", promoted).
		Msg("user created")

	event := events.New(events.TypeUserCreated, user.ID)
	event.UserID = user.ID
	event.Name = user.Email
	u.publish(ctx, event)

	return user, nil
}

// DeleteUser removes a user with everything it owns. Only super users may call it.
func (u *UseCase) DeleteUser(ctx context.Context, actor *entities.User, id uint) error {
	if err := u.requireSuperUser(ctx, actor); err != nil {
		return err
	}
	if id == 0 {
		return usererrors.ErrUserIDRequired
	}

	target, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	total, err := u.repo.Count(ctx)
	if err != nil {
		return err
	}
	if total <= 1 {
		return usererrors.ErrLastUser
	}

	isSuper, err := u.repo.IsSuperUser(ctx, target.ID)
	if err != nil {
		return err
	}
	if isSuper {
		supers, err := u.repo.CountSuperUsers(ctx)
		if err != nil {
			return err
		}
		if supers <= 1 {
			return usererrors.ErrLastSuperUser
		}
	}

	if err := u.repo.Delete(ctx, target.ID); err != nil {
		return err
	}
	u.invalidator.Invalidate(target.Email)

	u.logger.Info().
		Uint("user_id", target.ID).
		Uint("actor_id", actor.ID).
		Msg("user deleted")

	event := events.New(events.TypeUserDeleted, actor.ID)
	event.UserID = target.ID
	event.Name = target.Email
	u.publish(ctx, event)

	return nil
}

// ListSuperUsers returns the super-user list to super users
func (u *UseCase) ListSuperUsers(ctx context.Context, actor *entities.User) ([]entities.SuperUser, error) {
	if err := u.requireSuperUser(ctx, actor); err != nil {
		return nil, err
	}
	return u.repo.ListSuperUsers(ctx)
}

// AddSuperUser promotes a user
func (u *UseCase) AddSuperUser(ctx context.Context, actor *entities.User, userID uint) (*entities.SuperUser, error) {
	if err := u.requireSuperUser(ctx, actor); err != nil {
		return nil, err
	}
	if userID == 0 {
		return nil, usererrors.ErrUserIDRequired
	}

	target, err := u.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	already, err := u.repo.IsSuperUser(ctx, target.ID)
	if err != nil {
		return nil, err
	}
	if already {
		return nil, usererrors.ErrAlreadySuperUser
	}

	superUser := &entities.SuperUser{UserID: target.ID}
	if err := u.repo.CreateSuperUser(ctx, superUser); err != nil {
		return nil, err
	}

	event := events.New(events.TypeSuperUserAdded, actor.ID)
	event.UserID = target.ID
	event.RecordID = superUser.ID
	u.publish(ctx, event)

	return superUser, nil
}

// RemoveSuperUser demotes a super user, keeping at least one
func (u *UseCase) RemoveSuperUser(ctx context.Context, actor *entities.User, superUserID uint) error {
	if err := u.requireSuperUser(ctx, actor); err != nil {
		return err
	}

	superUser, err := u.repo.GetSuperUser(ctx, superUserID)
	if err != nil {
		return err
	}

	count, err := u.repo.CountSuperUsers(ctx)
	if err != nil {
		return err
	}
	if count <= 1 {
		return usererrors.ErrLastSuperUser
	}

	if err := u.repo.DeleteSuperUser(ctx, superUser.ID); err != nil {
		return err
	}

	event := events.New(events.TypeSuperUserRemoved, actor.ID)
	event.UserID = superUser.UserID
	event.RecordID = superUser.ID
	u.publish(ctx, event)

	return nil
}

func (u *UseCase) requireSuperUser(ctx context.Context, actor *entities.User) error {
	if actor == nil {
		return usererrors.ErrSuperUserRequired
	}
	ok, err := u.repo.IsSuperUser(ctx, actor.ID)
	if err != nil {
		return err
	}
	if !ok {
		return usererrors.ErrSuperUserRequired
	}
	return nil
}

func (u *UseCase) publish(ctx context.Context, event events.Event) {
	if err := u.publisher.Publish(ctx, event); err != nil {
		u.logger.Warn().Err(err).Str("type", event.Type).Msg("failed to publish event")
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
