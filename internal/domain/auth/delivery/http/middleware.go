package http

import (
	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"

	"github.com/hm-yang2/board-share/internal/domain/auth/deps"
	"github.com/hm-yang2/board-share/internal/domain/auth/session"
	pkgerrors "github.com/hm-yang2/board-share/pkg/errors"
	"github.com/hm-yang2/board-share/pkg/httputil"
)

// Authenticate resolves the session cookies into a user before the handler runs.
// Rotated tokens are written back on the same response.
func Authenticate(useCase deps.AuthUseCase, cookies *CookieWriter, logger zerolog.Logger) httputil.Middleware {
	mapper := pkgerrors.NewMapper(logger)
	log := logger.With().Str("middleware", "auth").Logger()

	return func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
		return func(ctx *fasthttp.RequestCtx) {
			access, refresh := Tokens(ctx)

			sess, err := useCase.Authenticate(ctx, access, refresh)
			if err != nil {
				log.Debug().Err(err).Str("path", string(ctx.Path())).Msg("request not authenticated")
				status, message := mapper.MapErrorToHTTP(err)
				httputil.WriteErrorResponse(ctx, message, status)
				return
			}

			if sess.Tokens != nil {
				cookies.SetTokens(ctx, sess.Tokens)
			}
			session.SetUser(ctx, sess.User)
			next(ctx)
		}
	}
}
