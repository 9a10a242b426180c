package http

import (
	"github.com/rs/zerolog"

	"github.com/hm-yang2/board-share/pkg/httputil"
)

// Router registers auth HTTP routes
type Router struct {
	handler *AuthHandler
	logger  zerolog.Logger
}

// NewRouter creates a new auth router
func NewRouter(handler *AuthHandler, logger zerolog.Logger) *Router {
	return &Router{
		handler: handler,
		logger:  logger,
	}
}

// RegisterRoutes registers login routes on the public group and the
// session check on the authenticated one
func (r *Router) RegisterRoutes(public, api *httputil.MiddlewareGroup) {
	public.GET("/auth/login", r.handler.LoginURL)
	public.POST("/auth/login", r.handler.Login)
	public.POST("/auth/refresh", r.handler.Refresh)
	public.POST("/auth/logout", r.handler.Logout)

	api.GET("/auth/check", r.handler.Check)

	r.logger.Info().Msg("Auth routes registered")
}
