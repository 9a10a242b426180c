package channel

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx"
	"gorm.io/gorm"

	channelhttp "github.com/hm-yang2/board-share/internal/domain/channel/delivery/http"
	"github.com/hm-yang2/board-share/internal/domain/channel/deps"
	"github.com/hm-yang2/board-share/internal/domain/channel/repository/postgres"
	"github.com/hm-yang2/board-share/internal/domain/channel/usecase/business"
	"github.com/hm-yang2/board-share/internal/domain/events"
	permissiondeps "github.com/hm-yang2/board-share/internal/domain/permission/deps"
	userdeps "github.com/hm-yang2/board-share/internal/domain/user/deps"
	"github.com/hm-yang2/board-share/pkg/httputil"
)

// Module provides channel and roster components for fx DI
var Module = fx.Module("channel",
	fx.Provide(NewChannelRepositoryFx),
	fx.Provide(NewRosterRepositoryFx),
	fx.Provide(NewUserFinderFx),
	fx.Provide(NewChannelUseCaseFx),
	fx.Provide(NewRosterUseCaseFx),
	fx.Provide(NewChannelHandlerFx),
	fx.Provide(NewChannelRouterFx),
	fx.Invoke(RegisterRoutes),
)

// NewChannelRepositoryFx creates a channel repository for fx DI
func NewChannelRepositoryFx(db *gorm.DB) deps.ChannelRepository {
	return postgres.NewRepository(db)
}

// NewRosterRepositoryFx creates a roster repository for fx DI
func NewRosterRepositoryFx(db *gorm.DB) deps.RosterRepository {
	return postgres.NewRosterRepository(db)
}

// NewUserFinderFx exposes the user use case as the roster's user lookup
func NewUserFinderFx(users userdeps.UserUseCase) deps.UserFinder {
	return users
}

// NewChannelUseCaseFx creates a channel use case for fx DI
func NewChannelUseCaseFx(
	repo deps.ChannelRepository,
	resolver permissiondeps.Resolver,
	publisher events.Publisher,
	logger zerolog.Logger,
) deps.ChannelUseCase {
	return business.NewUseCase(repo, resolver, publisher, logger)
}

// NewRosterUseCaseFx creates a roster use case for fx DI
func NewRosterUseCaseFx(
	channels deps.ChannelRepository,
	roster deps.RosterRepository,
	users deps.UserFinder,
	resolver permissiondeps.Resolver,
	publisher events.Publisher,
	logger zerolog.Logger,
) deps.RosterUseCase {
	return business.NewRosterUseCase(channels, roster, users, resolver, publisher, logger)
}

// NewChannelHandlerFx creates a channel handler for fx DI
func NewChannelHandlerFx(useCase deps.ChannelUseCase, logger zerolog.Logger) *channelhttp.ChannelHandler {
	return channelhttp.NewChannelHandler(useCase, logger)
}

// NewChannelRouterFx creates a channel router for fx DI
func NewChannelRouterFx(handler *channelhttp.ChannelHandler, roster deps.RosterUseCase, logger zerolog.Logger) *channelhttp.Router {
	return channelhttp.NewRouter(handler, roster, logger)
}

// RegisterRoutes registers channel routes on the authenticated API group
func RegisterRoutes(api *httputil.MiddlewareGroup, router *channelhttp.Router) {
	router.RegisterRoutes(api)
}
