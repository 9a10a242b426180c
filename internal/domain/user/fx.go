package user

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/hm-yang2/board-share/internal/domain/events"
	userhttp "github.com/hm-yang2/board-share/internal/domain/user/delivery/http"
	"github.com/hm-yang2/board-share/internal/domain/user/deps"
	"github.com/hm-yang2/board-share/internal/domain/user/repository/postgres"
	"github.com/hm-yang2/board-share/internal/domain/user/usecase/business"
	"github.com/hm-yang2/board-share/pkg/httputil"
)

// Module provides user components for fx DI
var Module = fx.Module("user",
	fx.Provide(NewUserRepositoryFx),
	fx.Provide(NewUserUseCaseFx),
	fx.Provide(NewUserHandlerFx),
	fx.Provide(NewUserRouterFx),
	fx.Invoke(RegisterRoutes),
)

// NewUserRepositoryFx creates a user repository for fx DI
func NewUserRepositoryFx(db *gorm.DB) deps.UserRepository {
	return postgres.NewRepository(db)
}

// NewUserUseCaseFx creates a user use case for fx DI
func NewUserUseCaseFx(
	repo deps.UserRepository,
	invalidator deps.SessionInvalidator,
	publisher events.Publisher,
	logger zerolog.Logger,
) deps.UserUseCase {
	return business.NewUseCase(repo, invalidator, publisher, logger)
}

// NewUserHandlerFx creates a user handler for fx DI
func NewUserHandlerFx(useCase deps.UserUseCase, logger zerolog.Logger) *userhttp.UserHandler {
	return userhttp.NewUserHandler(useCase, logger)
}

// NewUserRouterFx creates a user router for fx DI
func NewUserRouterFx(handler *userhttp.UserHandler, logger zerolog.Logger) *userhttp.Router {
	return userhttp.NewRouter(handler, logger)
}

// RegisterRoutes registers user routes on the authenticated API group
func RegisterRoutes(api *httputil.MiddlewareGroup, router *userhttp.Router) {
	router.RegisterRoutes(api)
}
