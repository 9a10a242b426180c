package business

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/hm-yang2/board-share/internal/domain/auth/deps"
	"github.com/hm-yang2/board-share/internal/domain/auth/entities"
	autherrors "github.com/hm-yang2/board-share/internal/domain/auth/errors"
	userentities "github.com/hm-yang2/board-share/internal/domain/user/entities"
	usererrors "github.com/hm-yang2/board-share/internal/domain/user/errors"
	pkgerrors "github.com/hm-yang2/board-share/pkg/errors"
)

// Login results reported to metrics
const (
	loginSuccess        = "success"
	loginExchangeFailed = "exchange_failed"
	loginUserFailed     = "user_failed"
)

// UseCase signs users in through the identity provider and keeps their sessions alive
type UseCase struct {
	provider deps.IdentityProvider
	tokens   deps.TokenIssuer
	users    deps.UserService
	cache    deps.UserCache
	metrics  deps.AuthMetrics
	logger   zerolog.Logger
}

// NewUseCase creates a new auth use case
func NewUseCase(
	provider deps.IdentityProvider,
	tokens deps.TokenIssuer,
	users deps.UserService,
	cache deps.UserCache,
	metrics deps.AuthMetrics,
	logger zerolog.Logger,
) *UseCase {
	return &UseCase{
		provider: provider,
		tokens:   tokens,
		users:    users,
		cache:    cache,
		metrics:  metrics,
		logger:   logger.With().Str("usecase", "auth").Logger(),
	}
}

// LoginURL returns the identity provider sign-in URL
func (u *UseCase) LoginURL() string {
	return u.provider.AuthCodeURL(uuid.NewString())
}

// Login exchanges an authorization code for a session
func (u *UseCase) Login(ctx context.Context, code string) (*entities.Session, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, autherrors.ErrMissingCode
	}

	email, err := u.provider.ExchangeEmail(ctx, code)
	if err != nil {
		u.metrics.RecordLogin(loginExchangeFailed)
		u.logger.Warn().Err(err).Msg("authorization code exchange failed")
		return nil, err
	}

	user, err := u.users.EnsureUser(ctx, email)
	if err != nil {
		u.metrics.RecordLogin(loginUserFailed)
		return nil, err
	}

	pair, err := u.issue(user)
	if err != nil {
		return nil, err
	}

	u.metrics.RecordLogin(loginSuccess)
	u.logger.Info().Uint("user_id", user.ID).Msg("user logged in")
	return &entities.Session{User: user, Tokens: pair}, nil
}

// Refresh issues a new token pair from a refresh token
func (u *UseCase) Refresh(ctx context.Context, refreshToken string) (*entities.Session, error) {
	if refreshToken == "" {
		return nil, autherrors.ErrInvalidRefreshToken
	}

	email, err := u.tokens.ParseRefresh(refreshToken)
	if err != nil {
		u.logger.Debug().Err(err).Msg("refresh token rejected")
		return nil, autherrors.ErrInvalidRefreshToken
	}

	user, err := u.loadUser(ctx, email)
	if err != nil {
		return nil, err
	}

	pair, err := u.issue(user)
	if err != nil {
		return nil, err
	}

	u.metrics.RecordTokenRefresh()
	return &entities.Session{User: user, Tokens: pair}, nil
}

// Authenticate resolves the session user, rotating tokens when the access token is unusable
func (u *UseCase) Authenticate(ctx context.Context, accessToken, refreshToken string) (*entities.Session, error) {
	if accessToken != "" {
		email, err := u.tokens.ParseAccess(accessToken)
		if err == nil {
			user, err := u.loadUser(ctx, email)
			if err != nil {
				return nil, err
			}
			return &entities.Session{User: user}, nil
		}
		if refreshToken == "" {
			return nil, autherrors.ErrInvalidToken
		}
	}

	if refreshToken == "" {
		return nil, autherrors.ErrNotAuthenticated
	}
	return u.Refresh(ctx, refreshToken)
}

// loadUser resolves the token subject through the cache
func (u *UseCase) loadUser(ctx context.Context, email string) (*userentities.User, error) {
	if user, ok := u.cache.Get(email); ok {
		return user, nil
	}

	user, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, usererrors.ErrUserNotFound) {
			return nil, autherrors.ErrUnknownUser
		}
		return nil, err
	}

	u.cache.Set(user)
	return user, nil
}

func (u *UseCase) issue(user *userentities.User) (*entities.TokenPair, error) {
	pair, err := u.tokens.IssuePair(user.Email)
	if err != nil {
		return nil, pkgerrors.WrapInternal(err, "failed to issue session tokens")
	}
	u.cache.Set(user)
	return pair, nil
}
