package tokens

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/hm-yang2/board-share/config"
	"github.com/hm-yang2/board-share/internal/domain/auth/entities"
)

var errWrongTokenType = errors.New("unexpected token type")

// Claims are the registered claims plus the token type
type Claims struct {
	Type entities.TokenType `json:"typ"`
	jwt.RegisteredClaims
}

// Manager issues and verifies HS512 session tokens whose subject is the user email
type Manager struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	parser     *jwt.Parser
	now        func() time.Time
}

// NewManager creates a token manager from auth config
func NewManager(cfg *config.AuthConfig) *Manager {
	return &Manager{
		secret:     []byte(cfg.JWTSecret),
		accessTTL:  cfg.AccessExpiration,
		refreshTTL: cfg.RefreshExpiration,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS512.Alg()}),
			jwt.WithExpirationRequired(),
			jwt.WithIssuedAt(),
		),
		now: time.Now,
	}
}

// IssuePair signs a new access and refresh token for email
func (m *Manager) IssuePair(email string) (*entities.TokenPair, error) {
	access, err := m.sign(email, entities.TokenAccess, m.accessTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := m.sign(email, entities.TokenRefresh, m.refreshTTL)
	if err != nil {
		return nil, err
	}

	return &entities.TokenPair{
		AccessToken:      access,
		RefreshToken:     refresh,
		AccessExpiresIn:  m.accessTTL,
		RefreshExpiresIn: m.refreshTTL,
	}, nil
}

// ParseAccess returns the email of a valid access token
func (m *Manager) ParseAccess(raw string) (string, error) {
	return m.parse(raw, entities.TokenAccess)
}

// ParseRefresh returns the email of a valid refresh token
func (m *Manager) ParseRefresh(raw string) (string, error) {
	return m.parse(raw, entities.TokenRefresh)
}

func (m *Manager) sign(email string, typ entities.TokenType, ttl time.Duration) (string, error) {
	now := m.now()
	claims := Claims{
		Type: typ,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign %s token: %w", typ, err)
	}
	return signed, nil
}

func (m *Manager) parse(raw string, want entities.TokenType) (string, error) {
	claims := &Claims{}
	_, err := m.parser.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return m.secret, nil
	})
	if err != nil {
		return "", err
	}
	if claims.Type != want {
		return "", errWrongTokenType
	}
	if claims.Subject == "" {
		return "", jwt.ErrTokenInvalidSubject
	}
	return claims.Subject, nil
}
