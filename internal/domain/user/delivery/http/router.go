package http

import (
	"github.com/rs/zerolog"

	"github.com/hm-yang2/board-share/pkg/httputil"
)

// Router registers user HTTP routes
type Router struct {
	handler *UserHandler
	logger  zerolog.Logger
}

// NewRouter creates a new user router
func NewRouter(handler *UserHandler, logger zerolog.Logger) *Router {
	return &Router{
		handler: handler,
		logger:  logger,
	}
}

// RegisterRoutes registers user routes on the authenticated API group
func (r *Router) RegisterRoutes(api *httputil.MiddlewareGroup) {
	api.GET("/user", r.handler.List)
	api.GET("/user/self", r.handler.Self)
	api.GET("/user/{id}", r.handler.Get)
	api.DELETE("/user/{id}", r.handler.Delete)

	api.GET("/superuser", r.handler.ListSuperUsers)
	api.PUT("/superuser", r.handler.AddSuperUser)
	api.DELETE("/superuser/{superId}", r.handler.RemoveSuperUser)

	r.logger.Info().Msg("User routes registered")
}
