package http

import (
	"github.com/rs/zerolog"

	"github.com/hm-yang2/board-share/pkg/httputil"
)

// Router registers link and channel link HTTP routes
type Router struct {
	links        *LinkHandler
	channelLinks *ChannelLinkHandler
	logger       zerolog.Logger
}

// NewRouter creates a new link router
func NewRouter(links *LinkHandler, channelLinks *ChannelLinkHandler, logger zerolog.Logger) *Router {
	return &Router{
		links:        links,
		channelLinks: channelLinks,
		logger:       logger,
	}
}

// RegisterRoutes registers link routes on the authenticated API group
func (r *Router) RegisterRoutes(api *httputil.MiddlewareGroup) {
	api.GET("/link", r.links.List)
	api.PUT("/link", r.links.Create)
	api.POST("/link", r.links.Update)
	api.GET("/link/{id}", r.links.Get)
	api.DELETE("/link/{id}", r.links.Delete)

	api.GET("/channellink/{channelId}", r.channelLinks.List)
	api.PUT("/channellink/{channelId}", r.channelLinks.Create)
	api.POST("/channellink/{channelId}", r.channelLinks.Update)
	api.GET("/channellink/{channelId}/{channelLinkId}", r.channelLinks.Get)
	api.DELETE("/channellink/{channelId}/{channelLinkId}", r.channelLinks.Delete)

	r.logger.Info().Msg("Link routes registered")
}
