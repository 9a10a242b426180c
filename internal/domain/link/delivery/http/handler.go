package http

import (
	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"

	"github.com/hm-yang2/board-share/internal/domain/auth/session"
	"github.com/hm-yang2/board-share/internal/domain/link/deps"
	"github.com/hm-yang2/board-share/internal/domain/link/dto"
	pkgerrors "github.com/hm-yang2/board-share/pkg/errors"
	"github.com/hm-yang2/board-share/pkg/httputil"
)

// LinkHandler handles personal link HTTP requests
type LinkHandler struct {
	useCase deps.LinkUseCase
	mapper  *pkgerrors.Mapper
	logger  zerolog.Logger
}

// NewLinkHandler creates a new link handler
func NewLinkHandler(useCase deps.LinkUseCase, logger zerolog.Logger) *LinkHandler {
	return &LinkHandler{
		useCase: useCase,
		mapper:  pkgerrors.NewMapper(logger),
		logger:  logger.With().Str("handler", "link").Logger(),
	}
}

// List handles GET /api/link?search=
func (h *LinkHandler) List(ctx *fasthttp.RequestCtx) {
	actor, err := session.User(ctx)
	if err != nil {
		h.handleError(ctx, err)
		return
	}

	links, err := h.useCase.ListLinks(ctx, actor, string(ctx.QueryArgs().Peek("search")))
	if err != nil {
		h.handleError(ctx, err)
		return
	}
	httputil.WriteResponse(ctx, links)
}

// Get handles GET /api/link/{id}
func (h *LinkHandler) Get(ctx *fasthttp.RequestCtx) {
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

	link, err := h.useCase.GetLink(ctx, actor, id)
	if err != nil {
		h.handleError(ctx, err)
		return
	}
	httputil.WriteResponse(ctx, link)
}

// Create handles PUT /api/link
func (h *LinkHandler) Create(ctx *fasthttp.RequestCtx) {
	actor, err := session.User(ctx)
	if err != nil {
		h.handleError(ctx, err)
		return
	}

	var req dto.LinkRequest
	if err := httputil.DecodeJSON(ctx, &req); err != nil {
		h.handleError(ctx, err)
		return
	}

	link, err := h.useCase.CreateLink(ctx, actor, req)
	if err != nil {
		h.handleError(ctx, err)
		return
	}
	httputil.WriteResponseWithStatus(ctx, link, fasthttp.StatusCreated)
}

// Update handles POST /api/link
func (h *LinkHandler) Update(ctx *fasthttp.RequestCtx) {
	actor, err := session.User(ctx)
	if err != nil {
		h.handleError(ctx, err)
		return
	}

	var req dto.LinkRequest
	if err := httputil.DecodeJSON(ctx, &req); err != nil {
		h.handleError(ctx, err)
		return
	}

	link, err := h.useCase.UpdateLink(ctx, actor, req)
	if err != nil {
		h.handleError(ctx, err)
		return
	}
	httputil.WriteResponse(ctx, link)
}

// Delete handles DELETE /api/link/{id}
func (h *LinkHandler) Delete(ctx *fasthttp.RequestCtx) {
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

	if err := h.useCase.DeleteLink(ctx, actor, id); err != nil {
		h.handleError(ctx, err)
		return
	}
	httputil.WriteNoContent(ctx)
}

func (h *LinkHandler) handleError(ctx *fasthttp.RequestCtx, err error) {
	status, message := h.mapper.MapErrorToHTTP(err)
	httputil.WriteErrorResponse(ctx, message, status)
}
