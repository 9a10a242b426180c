package http

import (
	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"

	"github.com/hm-yang2/board-share/internal/domain/auth/session"
	"github.com/hm-yang2/board-share/internal/domain/link/deps"
	"github.com/hm-yang2/board-share/internal/domain/link/dto"
	userentities "github.com/hm-yang2/board-share/internal/domain/user/entities"
	pkgerrors "github.com/hm-yang2/board-share/pkg/errors"
	"github.com/hm-yang2/board-share/pkg/httputil"
)

// ChannelLinkHandler handles channel link HTTP requests
type ChannelLinkHandler struct {
	useCase deps.ChannelLinkUseCase
	mapper  *pkgerrors.Mapper
	logger  zerolog.Logger
}

// NewChannelLinkHandler creates a new channel link handler
func NewChannelLinkHandler(useCase deps.ChannelLinkUseCase, logger zerolog.Logger) *ChannelLinkHandler {
	return &ChannelLinkHandler{
		useCase: useCase,
		mapper:  pkgerrors.NewMapper(logger),
		logger:  logger.With().Str("handler", "channel_link").Logger(),
	}
}

// caller reads the session user and the channelId route parameter
func (h *ChannelLinkHandler) caller(ctx *fasthttp.RequestCtx) (*userentities.User, uint, bool) {
	actor, err := session.User(ctx)
	if err != nil {
		h.handleError(ctx, err)
		return nil, 0, false
	}
	channelID, err := httputil.PathUint(ctx, "channelId")
	if err != nil {
		h.handleError(ctx, err)
		return nil, 0, false
	}
	return actor, channelID, true
}

// List handles GET /api/channellink/{channelId}
func (h *ChannelLinkHandler) List(ctx *fasthttp.RequestCtx) {
	actor, channelID, ok := h.caller(ctx)
	if !ok {
		return
	}

	channelLinks, err := h.useCase.ListChannelLinks(ctx, actor, channelID)
	if err != nil {
		h.handleError(ctx, err)
		return
	}
	httputil.WriteResponse(ctx, channelLinks)
}

// Get handles GET /api/channellink/{channelId}/{channelLinkId}
func (h *ChannelLinkHandler) Get(ctx *fasthttp.RequestCtx) {
	actor, channelID, ok := h.caller(ctx)
	if !ok {
		return
	}
	id, err := httputil.PathUint(ctx, "channelLinkId")
	if err != nil {
		h.handleError(ctx, err)
		return
	}

	channelLink, err := h.useCase.GetChannelLink(ctx, actor, channelID, id)
	if err != nil {
		h.handleError(ctx, err)
		return
	}
	httputil.WriteResponse(ctx, channelLink)
}

// Create handles PUT /api/channellink/{channelId}
func (h *ChannelLinkHandler) Create(ctx *fasthttp.RequestCtx) {
	actor, channelID, ok := h.caller(ctx)
	if !ok {
		return
	}

	var req dto.ChannelLinkRequest
	if err := httputil.DecodeJSON(ctx, &req); err != nil {
		h.handleError(ctx, err)
		return
	}

	channelLink, err := h.useCase.CreateChannelLink(ctx, actor, channelID, req)
	if err != nil {
		h.handleError(ctx, err)
		return
	}
	httputil.WriteResponseWithStatus(ctx, channelLink, fasthttp.StatusCreated)
}

// Update handles POST /api/channellink/{channelId}
func (h *ChannelLinkHandler) Update(ctx *fasthttp.RequestCtx) {
	actor, channelID, ok := h.caller(ctx)
	if !ok {
		return
	}

	var req dto.ChannelLinkRequest
	if err := httputil.DecodeJSON(ctx, &req); err != nil {
		h.handleError(ctx, err)
		return
	}

	channelLink, err := h.useCase.UpdateChannelLink(ctx, actor, channelID, req)
	if err != nil {
		h.handleError(ctx, err)
		return
	}
	httputil.WriteResponse(ctx, channelLink)
}

// Delete handles DELETE /api/channellink/{channelId}/{channelLinkId}
func (h *ChannelLinkHandler) Delete(ctx *fasthttp.RequestCtx) {
	actor, channelID, ok := h.caller(ctx)
	if !ok {
		return
	}
	id, err := httputil.PathUint(ctx, "channelLinkId")
	if err != nil {
		h.handleError(ctx, err)
		return
	}

	if err := h.useCase.DeleteChannelLink(ctx, actor, channelID, id); err != nil {
		h.handleError(ctx, err)
		return
	}
	httputil.WriteNoContent(ctx)
}

func (h *ChannelLinkHandler) handleError(ctx *fasthttp.RequestCtx, err error) {
	status, message := h.mapper.MapErrorToHTTP(err)
	httputil.WriteErrorResponse(ctx, message, status)
}
