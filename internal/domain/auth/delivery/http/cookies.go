package http

import (
	"time"

	"github.com/valyala/fasthttp"

	"github.com/hm-yang2/board-share/internal/domain/auth/entities"
)

// Session cookie names read by the dashboard
const (
	AccessCookie  = "token"
	RefreshCookie = "refreshToken"
)

// CookieWriter writes session tokens as HttpOnly cookies
type CookieWriter struct {
	secure bool
}

// NewCookieWriter creates a cookie writer; secure marks cookies HTTPS only
func NewCookieWriter(secure bool) *CookieWriter {
	return &CookieWriter{secure: secure}
}

// Tokens reads the access and refresh cookies of a request
func Tokens(ctx *fasthttp.RequestCtx) (access, refresh string) {
	return string(ctx.Request.Header.Cookie(AccessCookie)), string(ctx.Request.Header.Cookie(RefreshCookie))
}

// SetTokens sends both tokens back with max-age equal to their lifetimes
func (w *CookieWriter) SetTokens(ctx *fasthttp.RequestCtx, pair *entities.TokenPair) {
	w.set(ctx, AccessCookie, pair.AccessToken, pair.AccessExpiresIn)
	w.set(ctx, RefreshCookie, pair.RefreshToken, pair.RefreshExpiresIn)
}

// Clear expires both session cookies
func (w *CookieWriter) Clear(ctx *fasthttp.RequestCtx) {
	for _, name := range []string{AccessCookie, RefreshCookie} {
		c := w.base(name, "")
		c.SetExpire(fasthttp.CookieExpireDelete)
		ctx.Response.Header.SetCookie(c)
		fasthttp.ReleaseCookie(c)
	}
}

func (w *CookieWriter) set(ctx *fasthttp.RequestCtx, name, value string, maxAge time.Duration) {
	c := w.base(name, value)
	defer fasthttp.ReleaseCookie(c)
	c.SetMaxAge(int(maxAge.Seconds()))
	ctx.Response.Header.SetCookie(c)
}

func (w *CookieWriter) base(name, value string) *fasthttp.Cookie {
	c := fasthttp.AcquireCookie()
	c.SetKey(name)
	c.SetValue(value)
	c.SetPath("/")
	c.SetHTTPOnly(true)
	c.SetSecure(w.secure)
	c.SetSameSite(fasthttp.CookieSameSiteLaxMode)
	return c
}
