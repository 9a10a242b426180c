package http

import (
	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"

	"github.com/hm-yang2/board-share/internal/domain/auth/session"
	"github.com/hm-yang2/board-share/internal/domain/channel/deps"
	"github.com/hm-yang2/board-share/internal/domain/channel/dto"
	pkgerrors "github.com/hm-yang2/board-share/pkg/errors"
	"github.com/hm-yang2/board-share/pkg/httputil"
)

// ChannelHandler handles channel HTTP requests
type ChannelHandler struct {
	useCase deps.ChannelUseCase
	mapper  *pkgerrors.Mapper
	logger  zerolog.Logger
}

// NewChannelHandler creates a new channel handler
func NewChannelHandler(useCase deps.ChannelUseCase, logger zerolog.Logger) *ChannelHandler {
	return &ChannelHandler{
		useCase: useCase,
		mapper:  pkgerrors.NewMapper(logger),
		logger:  logger.With().Str("handler", "channel").Logger(),
	}
}

// List handles GET /api/channel?search=
func (h *ChannelHandler) List(ctx *fasthttp.RequestCtx) {
	actor, err := session.User(ctx)
	if err != nil {
		writeError(ctx, h.mapper, err)
		return
	}

	channels, err := h.useCase.ListChannels(ctx, actor, string(ctx.QueryArgs().Peek("search")))
	if err != nil {
		writeError(ctx, h.mapper, err)
		return
	}
	httputil.WriteResponse(ctx, channels)
}

// Get handles GET /api/channel/{id}
func (h *ChannelHandler) Get(ctx *fasthttp.RequestCtx) {
	actor, err := session.User(ctx)
	if err != nil {
		writeError(ctx, h.mapper, err)
		return
	}
	id, err := httputil.PathUint(ctx, "id")
	if err != nil {
		writeError(ctx, h.mapper, err)
		return
	}

	channel, err := h.useCase.GetChannel(ctx, actor, id)
	if err != nil {
		writeError(ctx, h.mapper, err)
		return
	}
	httputil.WriteResponse(ctx, channel)
}

// Role handles GET /api/channel/role?channelId=
func (h *ChannelHandler) Role(ctx *fasthttp.RequestCtx) {
	actor, err := session.User(ctx)
	if err != nil {
		writeError(ctx, h.mapper, err)
		return
	}
	channelID, err := httputil.QueryUint(ctx, "channelId")
	if err != nil {
		writeError(ctx, h.mapper, err)
		return
	}

	role, err := h.useCase.GetRole(ctx, actor, channelID)
	if err != nil {
		writeError(ctx, h.mapper, err)
		return
	}
	httputil.WriteResponse(ctx, dto.RoleResponse{Role: role})
}

// Create handles PUT /api/channel
func (h *ChannelHandler) Create(ctx *fasthttp.RequestCtx) {
	actor, err := session.User(ctx)
	if err != nil {
		writeError(ctx, h.mapper, err)
		return
	}

	var req dto.ChannelRequest
	if err := httputil.DecodeJSON(ctx, &req); err != nil {
		writeError(ctx, h.mapper, err)
		return
	}

	channel, err := h.useCase.CreateChannel(ctx, actor, req)
	if err != nil {
		writeError(ctx, h.mapper, err)
		return
	}
	httputil.WriteResponseWithStatus(ctx, channel, fasthttp.StatusCreated)
}

// Update handles POST /api/channel
func (h *ChannelHandler) Update(ctx *fasthttp.RequestCtx) {
	actor, err := session.User(ctx)
	if err != nil {
		writeError(ctx, h.mapper, err)
		return
	}

	var req dto.ChannelRequest
	if err := httputil.DecodeJSON(ctx, &req); err != nil {
		writeError(ctx, h.mapper, err)
		return
	}

	channel, err := h.useCase.UpdateChannel(ctx, actor, req)
	if err != nil {
		writeError(ctx, h.mapper, err)
		return
	}
	httputil.WriteResponse(ctx, channel)
}

// Delete handles DELETE /api/channel/{id}
func (h *ChannelHandler) Delete(ctx *fasthttp.RequestCtx) {
	actor, err := session.User(ctx)
	if err != nil {
		writeError(ctx, h.mapper, err)
		return
	}
	id, err := httputil.PathUint(ctx, "id")
	if err != nil {
		writeError(ctx, h.mapper, err)
		return
	}

	if err := h.useCase.DeleteChannel(ctx, actor, id); err != nil {
		writeError(ctx, h.mapper, err)
		return
	}
	httputil.WriteNoContent(ctx)
}

func writeError(ctx *fasthttp.RequestCtx, mapper *pkgerrors.Mapper, err error) {
	status, message := mapper.MapErrorToHTTP(err)
	httputil.WriteErrorResponse(ctx, message, status)
}
