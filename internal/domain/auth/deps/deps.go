package deps

import (
	"context"

	"github.com/hm-yang2/board-share/internal/domain/auth/entities"
	userentities "github.com/hm-yang2/board-share/internal/domain/user/entities"
)

// IdentityProvider runs the external authorization-code flow
type IdentityProvider interface {
	AuthCodeURL(state string) string
	ExchangeEmail(ctx context.Context, code string) (string, error)
}

// TokenIssuer signs and verifies session tokens whose subject is an email
type TokenIssuer interface {
	IssuePair(email string) (*entities.TokenPair, error)
	ParseAccess(raw string) (string, error)
	ParseRefresh(raw string) (string, error)
}

// UserService creates and loads the users behind sessions
type UserService interface {
	EnsureUser(ctx context.Context, email string) (*userentities.User, error)
	GetByEmail(ctx context.Context, email string) (*userentities.User, error)
}

// UserCache keeps recently authenticated users by email
type UserCache interface {
	Get(email string) (*userentities.User, bool)
	Set(user *userentities.User)
	Invalidate(email string)
}

// AuthMetrics records login and refresh activity
type AuthMetrics interface {
	RecordLogin(result string)
	RecordTokenRefresh()
}

// AuthUseCase is the login and session API
type AuthUseCase interface {
	LoginURL() string
	Login(ctx context.Context, code string) (*entities.Session, error)
	Refresh(ctx context.Context, refreshToken string) (*entities.Session, error)
	// Authenticate accepts a valid access token, or rotates tokens when
	// only the refresh token is still valid
	Authenticate(ctx context.Context, accessToken, refreshToken string) (*entities.Session, error)
}
