package auth

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/hm-yang2/board-share/config"
	authhttp "github.com/hm-yang2/board-share/internal/domain/auth/delivery/http"
	"github.com/hm-yang2/board-share/internal/domain/auth/deps"
	"github.com/hm-yang2/board-share/internal/domain/auth/tokens"
	"github.com/hm-yang2/board-share/internal/domain/auth/usecase/business"
	userdeps "github.com/hm-yang2/board-share/internal/domain/user/deps"
	"github.com/hm-yang2/board-share/internal/infrastructure/http/server"
	"github.com/hm-yang2/board-share/internal/infrastructure/metrics"
	"github.com/hm-yang2/board-share/pkg/httputil"
)

// Module provides login, session tokens and the /api route groups for fx DI
var Module = fx.Module("auth",
	fx.Provide(NewTokenIssuerFx),
	fx.Provide(NewUserServiceFx),
	fx.Provide(NewAuthMetricsFx),
	fx.Provide(NewAuthUseCaseFx),
	fx.Provide(NewCookieWriterFx),
	fx.Provide(NewAuthHandlerFx),
	fx.Provide(NewAuthRouterFx),
	fx.Provide(NewRouteGroupsFx),
	fx.Invoke(RegisterRoutes),
)

// RouteGroups exposes the /api groups. The unnamed group authenticates every
// request; the public one only carries request ids and access logging.
type RouteGroups struct {
	fx.Out

	API    *httputil.MiddlewareGroup
	Public *httputil.MiddlewareGroup `name:"public"`
}

// NewTokenIssuerFx creates the JWT manager for fx DI
func NewTokenIssuerFx(cfg *config.AuthConfig) deps.TokenIssuer {
	return tokens.NewManager(cfg)
}

// NewUserServiceFx exposes the user use case to login
func NewUserServiceFx(users userdeps.UserUseCase) deps.UserService {
	return users
}

// NewAuthMetricsFx exposes login metrics for fx DI
func NewAuthMetricsFx(m *metrics.Metrics) deps.AuthMetrics {
	return m
}

// NewAuthUseCaseFx creates the auth use case for fx DI
func NewAuthUseCaseFx(
	provider deps.IdentityProvider,
	issuer deps.TokenIssuer,
	users deps.UserService,
	cache deps.UserCache,
	m deps.AuthMetrics,
	logger zerolog.Logger,
) deps.AuthUseCase {
	return business.NewUseCase(provider, issuer, users, cache, m, logger)
}

// NewCookieWriterFx creates the session cookie writer for fx DI
func NewCookieWriterFx(cfg *config.AuthConfig) *authhttp.CookieWriter {
	return authhttp.NewCookieWriter(cfg.CookieSecure)
}

// NewAuthHandlerFx creates the auth handler for fx DI
func NewAuthHandlerFx(useCase deps.AuthUseCase, cookies *authhttp.CookieWriter, logger zerolog.Logger) *authhttp.AuthHandler {
	return authhttp.NewAuthHandler(useCase, cookies, logger)
}

// NewAuthRouterFx creates the auth router for fx DI
func NewAuthRouterFx(handler *authhttp.AuthHandler, logger zerolog.Logger) *authhttp.Router {
	return authhttp.NewRouter(handler, logger)
}

// NewRouteGroupsFx builds the public and authenticated /api groups on the HTTP server
func NewRouteGroupsFx(
	srv *server.Server,
	useCase deps.AuthUseCase,
	cookies *authhttp.CookieWriter,
	m *metrics.Metrics,
	logger zerolog.Logger,
) RouteGroups {
	accessLog := logger.With().Str("component", "http").Logger()

	public := httputil.NewMiddlewareGroup(srv.Router.Group("/api")).
		Use(httputil.RequestID(), httputil.AccessLog(accessLog, m))

	api := httputil.NewMiddlewareGroup(srv.Router.Group("/api")).
		Use(httputil.RequestID(), httputil.AccessLog(accessLog, m), authhttp.Authenticate(useCase, cookies, logger))

	return RouteGroups{API: api, Public: public}
}

// RouteParams selects both /api groups
type RouteParams struct {
	fx.In

	API    *httputil.MiddlewareGroup
	Public *httputil.MiddlewareGroup `name:"public"`
	Router *authhttp.Router
}

// RegisterRoutes registers auth routes
func RegisterRoutes(p RouteParams) {
	p.Router.RegisterRoutes(p.Public, p.API)
}
