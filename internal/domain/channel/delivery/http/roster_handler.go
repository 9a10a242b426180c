package http

import (
	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"

	"github.com/hm-yang2/board-share/internal/domain/auth/session"
	"github.com/hm-yang2/board-share/internal/domain/channel/deps"
	"github.com/hm-yang2/board-share/internal/domain/channel/dto"
	"github.com/hm-yang2/board-share/internal/domain/channel/entities"
	pkgerrors "github.com/hm-yang2/board-share/pkg/errors"
	"github.com/hm-yang2/board-share/pkg/httputil"
)

// RosterHandler serves one roster kind: members, admins or owners
type RosterHandler struct {
	kind    entities.RosterKind
	entryID string
	useCase deps.RosterUseCase
	mapper  *pkgerrors.Mapper
	logger  zerolog.Logger
}

// NewRosterHandler creates a handler for kind; entryParam names the route
// parameter holding the roster row id
func NewRosterHandler(kind entities.RosterKind, entryParam string, useCase deps.RosterUseCase, logger zerolog.Logger) *RosterHandler {
	return &RosterHandler{
		kind:    kind,
		entryID: entryParam,
		useCase: useCase,
		mapper:  pkgerrors.NewMapper(logger),
		logger:  logger.With().Str("handler", "channel_"+string(kind)).Logger(),
	}
}

// List handles GET /api/channel{kind}/{channelId}
func (h *RosterHandler) List(ctx *fasthttp.RequestCtx) {
	actor, err := session.User(ctx)
	if err != nil {
		writeError(ctx, h.mapper, err)
		return
	}
	channelID, err := httputil.PathUint(ctx, "channelId")
	if err != nil {
		writeError(ctx, h.mapper, err)
		return
	}

	entries, err := h.useCase.List(ctx, actor, h.kind, channelID)
	if err != nil {
		writeError(ctx, h.mapper, err)
		return
	}
	httputil.WriteResponse(ctx, entries)
}

// Add handles PUT /api/channel{kind}/{channelId}
func (h *RosterHandler) Add(ctx *fasthttp.RequestCtx) {
	actor, err := session.User(ctx)
	if err != nil {
		writeError(ctx, h.mapper, err)
		return
	}
	channelID, err := httputil.PathUint(ctx, "channelId")
	if err != nil {
		writeError(ctx, h.mapper, err)
		return
	}

	var req dto.UserIDRequest
	if err := httputil.DecodeJSON(ctx, &req); err != nil {
		writeError(ctx, h.mapper, err)
		return
	}

	entry, err := h.useCase.Add(ctx, actor, h.kind, channelID, req.ID)
	if err != nil {
		writeError(ctx, h.mapper, err)
		return
	}
	httputil.WriteResponseWithStatus(ctx, entry, fasthttp.StatusCreated)
}

// Remove handles DELETE /api/channel{kind}/{channelId}/{entryId}
func (h *RosterHandler) Remove(ctx *fasthttp.RequestCtx) {
	actor, err := session.User(ctx)
	if err != nil {
		writeError(ctx, h.mapper, err)
		return
	}
	channelID, err := httputil.PathUint(ctx, "channelId")
	if err != nil {
		writeError(ctx, h.mapper, err)
		return
	}
	entryID, err := httputil.PathUint(ctx, h.entryID)
	if err != nil {
		writeError(ctx, h.mapper, err)
		return
	}

	if err := h.useCase.Remove(ctx, actor, h.kind, channelID, entryID); err != nil {
		writeError(ctx, h.mapper, err)
		return
	}
	httputil.WriteNoContent(ctx)
}
