package http

import (
	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"

	"github.com/hm-yang2/board-share/internal/domain/auth/session"
	"github.com/hm-yang2/board-share/internal/domain/user/deps"
	"github.com/hm-yang2/board-share/internal/domain/user/dto"
	pkgerrors "github.com/hm-yang2/board-share/pkg/errors"
	"github.com/hm-yang2/board-share/pkg/httputil"
)

// UserHandler handles user and super user HTTP requests
type UserHandler struct {
	useCase deps.UserUseCase
	mapper  *pkgerrors.Mapper
	logger  zerolog.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(useCase deps.UserUseCase, logger zerolog.Logger) *UserHandler {
	return &UserHandler{
		useCase: useCase,
		mapper:  pkgerrors.NewMapper(logger),
		logger:  logger.With().Str("handler", "user").Logger(),
	}
}

// List handles GET /api/user?search=
func (h *UserHandler) List(ctx *fasthttp.RequestCtx) {
	users, err := h.useCase.ListUsers(ctx, string(ctx.QueryArgs().Peek("search")))
	if err != nil {
		h.handleError(ctx, err)
		return
	}
	httputil.WriteResponse(ctx, users)
}

// Self handles GET /api/user/self
func (h *UserHandler) Self(ctx *fasthttp.RequestCtx) {
	user, err := session.User(ctx)
	if err != nil {
		h.handleError(ctx, err)
		return
	}
	httputil.WriteResponse(ctx, user)
}

// Get handles GET /api/user/{id}
func (h *UserHandler) Get(ctx *fasthttp.RequestCtx) {
	id, err := httputil.PathUint(ctx, "id")
	if err != nil {
		h.handleError(ctx, err)
		return
	}

	user, err := h.useCase.GetUser(ctx, id)
	if err != nil {
		h.handleError(ctx, err)
		return
	}
	httputil.WriteResponse(ctx, user)
}

// Delete handles DELETE /api/user/{id}
func (h *UserHandler) Delete(ctx *fasthttp.RequestCtx) {
	actor, err := session.User(ctx)
	if err != nil {
		h.handleError(ctx, err)
		return
	}
	id, err := httputil.PathUint(ctx, "id")
	if err != nil {
		h.handleError(ctx, err)
		return
	}

	if err := h.useCase.DeleteUser(ctx, actor, id); err != nil {
		h.handleError(ctx, err)
		return
	}
	httputil.WriteNoContent(ctx)
}

// ListSuperUsers handles GET /api/superuser
func (h *UserHandler) ListSuperUsers(ctx *fasthttp.RequestCtx) {
	actor, err := session.User(ctx)
	if err != nil {
		h.handleError(ctx, err)
		return
	}

	supers, err := h.useCase.ListSuperUsers(ctx, actor)
	if err != nil {
		h.handleError(ctx, err)
		return
	}
	httputil.WriteResponse(ctx, supers)
}

// AddSuperUser handles PUT /api/superuser
func (h *UserHandler) AddSuperUser(ctx *fasthttp.RequestCtx) {
	actor, err := session.User(ctx)
	if err != nil {
		h.handleError(ctx, err)
		return
	}

	var req dto.UserIDRequest
	if err := httputil.DecodeJSON(ctx, &req); err != nil {
		h.handleError(ctx, err)
		return
	}

	superUser, err := h.useCase.AddSuperUser(ctx, actor, req.ID)
	if err != nil {
		h.handleError(ctx, err)
		return
	}
	httputil.WriteResponseWithStatus(ctx, superUser, fasthttp.StatusCreated)
}

// RemoveSuperUser handles DELETE /api/superuser/{superId}
func (h *UserHandler) RemoveSuperUser(ctx *fasthttp.RequestCtx) {
	actor, err := session.User(ctx)
	if err != nil {
		h.handleError(ctx, err)
		return
	}
	id, err := httputil.PathUint(ctx, "superId")
	if err != nil {
		h.handleError(ctx, err)
		return
	}

	if err := h.useCase.RemoveSuperUser(ctx, actor, id); err != nil {
		h.handleError(ctx, err)
		return
	}
	httputil.WriteNoContent(ctx)
}

func (h *UserHandler) handleError(ctx *fasthttp.RequestCtx, err error) {
	status, message := h.mapper.MapErrorToHTTP(err)
	httputil.WriteErrorResponse(ctx, message, status)
}
