package http

import (
	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"

	"github.com/hm-yang2/board-share/internal/domain/auth/deps"
	"github.com/hm-yang2/board-share/internal/domain/auth/dto"
	"github.com/hm-yang2/board-share/internal/domain/auth/session"
	pkgerrors "github.com/hm-yang2/board-share/pkg/errors"
	"github.com/hm-yang2/board-share/pkg/httputil"
)

// AuthHandler handles login and session HTTP requests
type AuthHandler struct {
	useCase deps.AuthUseCase
	cookies *CookieWriter
	mapper  *pkgerrors.Mapper
	logger  zerolog.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(useCase deps.AuthUseCase, cookies *CookieWriter, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		useCase: useCase,
		cookies: cookies,
		mapper:  pkgerrors.NewMapper(logger),
		logger:  logger.With().Str("handler", "auth").Logger(),
	}
}

// LoginURL handles GET /api/auth/login
func (h *AuthHandler) LoginURL(ctx *fasthttp.RequestCtx) {
	httputil.WriteResponse(ctx, dto.LoginURLResponse{URL: h.useCase.LoginURL()})
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(ctx *fasthttp.RequestCtx) {
	var req dto.LoginRequest
	if err := httputil.DecodeJSON(ctx, &req); err != nil {
		h.handleError(ctx, err)
		return
	}

	sess, err := h.useCase.Login(ctx, req.Code)
	if err != nil {
		h.handleError(ctx, err)
		return
	}

	h.cookies.SetTokens(ctx, sess.Tokens)
	httputil.WriteResponse(ctx, sess.User)
}

// Refresh handles POST /api/auth/refresh
func (h *AuthHandler) Refresh(ctx *fasthttp.RequestCtx) {
	_, refresh := Tokens(ctx)

	sess, err := h.useCase.Refresh(ctx, refresh)
	if err != nil {
		h.handleError(ctx, err)
		return
	}

	h.cookies.SetTokens(ctx, sess.Tokens)
	httputil.WriteResponse(ctx, httputil.MessageResponse{Message: "Tokens refreshed successfully"})
}

// Logout handles POST /api/auth/logout
func (h *AuthHandler) Logout(ctx *fasthttp.RequestCtx) {
	h.cookies.Clear(ctx)
	httputil.WriteNoContent(ctx)
}

// Check handles GET /api/auth/check behind the authentication middleware
func (h *AuthHandler) Check(ctx *fasthttp.RequestCtx) {
	user, err := session.User(ctx)
	if err != nil {
		h.handleError(ctx, err)
		return
	}
	httputil.WriteResponse(ctx, user)
}

func (h *AuthHandler) handleError(ctx *fasthttp.RequestCtx, err error) {
	status, message := h.mapper.MapErrorToHTTP(err)
	httputil.WriteErrorResponse(ctx, message, status)
}
