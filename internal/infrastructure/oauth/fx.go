package oauth

import (
	"go.uber.org/fx"

	"github.com/hm-yang2/board-share/config"
	"github.com/hm-yang2/board-share/internal/domain/auth/deps"
)

// Module provides the identity provider for fx DI
var Module = fx.Module("oauth",
	fx.Provide(NewIdentityProvider),
)

// NewIdentityProvider exposes the Azure provider as deps.IdentityProvider
func NewIdentityProvider(cfg *config.OAuthConfig) deps.IdentityProvider {
	return NewAzureProvider(cfg)
}
