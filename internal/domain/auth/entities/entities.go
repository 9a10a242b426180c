package entities

import (
	"time"

	userentities "github.com/hm-yang2/board-share/internal/domain/user/entities"
)

// TokenType distinguishes access tokens from refresh tokens
type TokenType string

const (
	TokenAccess  TokenType = "access"
	TokenRefresh TokenType = "refresh"
)

// TokenPair is a freshly issued access/refresh pair
type TokenPair struct {
	AccessToken      string
	RefreshToken     string
	AccessExpiresIn  time.Duration
	RefreshExpiresIn time.Duration
}

// Session is an authenticated caller. Tokens is set only when new
// tokens were issued and must be sent back as cookies.
type Session struct {
	User   *userentities.User
	Tokens *TokenPair
}
