package link

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx"
	"gorm.io/gorm"

	channeldeps "github.com/hm-yang2/board-share/internal/domain/channel/deps"
	"github.com/hm-yang2/board-share/internal/domain/events"
	linkhttp "github.com/hm-yang2/board-share/internal/domain/link/delivery/http"
	"github.com/hm-yang2/board-share/internal/domain/link/deps"
	"github.com/hm-yang2/board-share/internal/domain/link/repository/postgres"
	"github.com/hm-yang2/board-share/internal/domain/link/usecase/business"
	permissiondeps "github.com/hm-yang2/board-share/internal/domain/permission/deps"
	"github.com/hm-yang2/board-share/pkg/httputil"
)

// Module provides link and channel link components for fx DI
var Module = fx.Module("link",
	fx.Provide(NewLinkRepositoryFx),
	fx.Provide(NewChannelLinkRepositoryFx),
	fx.Provide(NewChannelFinderFx),
	fx.Provide(NewLinkUseCaseFx),
	fx.Provide(NewChannelLinkUseCaseFx),
	fx.Provide(NewLinkHandlerFx),
	fx.Provide(NewChannelLinkHandlerFx),
	fx.Provide(NewLinkRouterFx),
	fx.Invoke(RegisterRoutes),
)

// NewLinkRepositoryFx creates a link repository for fx DI
func NewLinkRepositoryFx(db *gorm.DB) deps.LinkRepository {
	return postgres.NewRepository(db)
}

// NewChannelLinkRepositoryFx creates a channel link repository for fx DI
func NewChannelLinkRepositoryFx(db *gorm.DB) deps.ChannelLinkRepository {
	return postgres.NewChannelLinkRepository(db)
}

// NewChannelFinderFx exposes the channel repository as the channel lookup
func NewChannelFinderFx(channels channeldeps.ChannelRepository) deps.ChannelFinder {
	return channels
}

// NewLinkUseCaseFx creates a link use case for fx DI
func NewLinkUseCaseFx(repo deps.LinkRepository, logger zerolog.Logger) deps.LinkUseCase {
	return business.NewUseCase(repo, logger)
}

// NewChannelLinkUseCaseFx creates a channel link use case for fx DI
func NewChannelLinkUseCaseFx(
	channelLinks deps.ChannelLinkRepository,
	links deps.LinkRepository,
	channels deps.ChannelFinder,
	resolver permissiondeps.Resolver,
	publisher events.Publisher,
	logger zerolog.Logger,
) deps.ChannelLinkUseCase {
	return business.NewChannelLinkUseCase(channelLinks, links, channels, resolver, publisher, logger)
}

// NewLinkHandlerFx creates a link handler for fx DI
func NewLinkHandlerFx(useCase deps.LinkUseCase, logger zerolog.Logger) *linkhttp.LinkHandler {
	return linkhttp.NewLinkHandler(useCase, logger)
}

// NewChannelLinkHandlerFx creates a channel link handler for fx DI
func NewChannelLinkHandlerFx(useCase deps.ChannelLinkUseCase, logger zerolog.Logger) *linkhttp.ChannelLinkHandler {
	return linkhttp.NewChannelLinkHandler(useCase, logger)
}

// NewLinkRouterFx creates a link router for fx DI
func NewLinkRouterFx(links *linkhttp.LinkHandler, channelLinks *linkhttp.ChannelLinkHandler, logger zerolog.Logger) *linkhttp.Router {
	return linkhttp.NewRouter(links, channelLinks, logger)
}

// RegisterRoutes registers link routes on the authenticated API group
func RegisterRoutes(api *httputil.MiddlewareGroup, router *linkhttp.Router) {
	router.RegisterRoutes(api)
}
