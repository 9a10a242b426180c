package http

import (
	"github.com/rs/zerolog"

	"github.com/hm-yang2/board-share/internal/domain/channel/deps"
	"github.com/hm-yang2/board-share/internal/domain/channel/entities"
	"github.com/hm-yang2/board-share/pkg/httputil"
)

// rosterRoutes maps each roster kind to its path prefix and row id parameter
var rosterRoutes = []struct {
	kind   entities.RosterKind
	prefix string
	param  string
}{
	{entities.RosterMember, "/channelmember", "memberId"},
	{entities.RosterAdmin, "/channeladmin", "adminId"},
	{entities.RosterOwner, "/channelowner", "ownerId"},
}

// Router registers channel and roster HTTP routes
type Router struct {
	channels *ChannelHandler
	roster   deps.RosterUseCase
	logger   zerolog.Logger
}

// NewRouter creates a new channel router
func NewRouter(channels *ChannelHandler, roster deps.RosterUseCase, logger zerolog.Logger) *Router {
	return &Router{
		channels: channels,
		roster:   roster,
		logger:   logger,
	}
}

// RegisterRoutes registers channel routes on the authenticated API group
func (r *Router) RegisterRoutes(api *httputil.MiddlewareGroup) {
	api.GET("/channel", r.channels.List)
	api.PUT("/channel", r.channels.Create)
	api.POST("/channel", r.channels.Update)
	api.GET("/channel/role", r.channels.Role)
	api.GET("/channel/{id}", r.channels.Get)
	api.DELETE("/channel/{id}", r.channels.Delete)

	for _, route := range rosterRoutes {
		h := NewRosterHandler(route.kind, route.param, r.roster, r.logger)
		api.GET(route.prefix+"/{channelId}", h.List)
		api.PUT(route.prefix+"/{channelId}", h.Add)
		api.DELETE(route.prefix+"/{channelId}/{"+route.param+"}", h.Remove)
	}

	r.logger.Info().Msg("Channel routes registered")
}
