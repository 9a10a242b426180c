package http

import (
	"context"
	"testing"
	"time"

	"github.com/fasthttp/router"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	"github.com/hm-yang2/board-share/internal/domain/auth/entities"
	autherrors "github.com/hm-yang2/board-share/internal/domain/auth/errors"
	"github.com/hm-yang2/board-share/internal/domain/auth/session"
	userentities "github.com/hm-yang2/board-share/internal/domain/user/entities"
	"github.com/hm-yang2/board-share/pkg/httputil"
)

var testUser = &userentities.User{ID: 1, Email: "ada@example.com"}

func newPair() *entities.TokenPair {
	return &entities.TokenPair{
		AccessToken:      "new-access",
		RefreshToken:     "new-refresh",
		AccessExpiresIn:  15 * time.Minute,
		RefreshExpiresIn: 24 * time.Hour,
	}
}

// mockAuthUseCase is a mock implementation of deps.AuthUseCase
type mockAuthUseCase struct {
	code        string
	access      string
	refresh     string
	loginErr    error
	refreshErr  error
	authErr     error
	authRotates bool
}

func (m *mockAuthUseCase) LoginURL() string {
	return "https://login.example/authorize"
}

func (m *mockAuthUseCase) Login(_ context.Context, code string) (*entities.Session, error) {
	m.code = code
	if m.loginErr != nil {
		return nil, m.loginErr
	}
	return &entities.Session{User: testUser, Tokens: newPair()}, nil
}

func (m *mockAuthUseCase) Refresh(_ context.Context, refresh string) (*entities.Session, error) {
	m.refresh = refresh
	if m.refreshErr != nil {
		return nil, m.refreshErr
	}
	return &entities.Session{User: testUser, Tokens: newPair()}, nil
}

func (m *mockAuthUseCase) Authenticate(_ context.Context, access, refresh string) (*entities.Session, error) {
	m.access, m.refresh = access, refresh
	if m.authErr != nil {
		return nil, m.authErr
	}
	if m.authRotates {
		return &entities.Session{User: testUser, Tokens: newPair()}, nil
	}
	return &entities.Session{User: testUser}, nil
}

func newTestRouter(useCase *mockAuthUseCase) *router.Router {
	r := router.New()
	cookies := NewCookieWriter(true)
	public := httputil.NewMiddlewareGroup(r.Group("/api"))
	api := httputil.NewMiddlewareGroup(r.Group("/api")).Use(Authenticate(useCase, cookies, zerolog.Nop()))

	NewRouter(NewAuthHandler(useCase, cookies, zerolog.Nop()), zerolog.Nop()).RegisterRoutes(public, api)
	api.GET("/ping", func(ctx *fasthttp.RequestCtx) {
		user, err := session.User(ctx)
		if err != nil {
			ctx.SetStatusCode(fasthttp.StatusInternalServerError)
			return
		}
		ctx.SetBodyString(user.Email)
	})
	return r
}

func serve(r *router.Router, method, uri, body string, cookies map[string]string) *fasthttp.RequestCtx {
	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.SetMethod(method)
	ctx.Request.SetRequestURI(uri)
	for name, value := range cookies {
		ctx.Request.Header.SetCookie(name, value)
	}
	if body != "" {
		ctx.Request.SetBodyString(body)
	}
	r.Handler(ctx)
	return ctx
}

func responseCookie(t *testing.T, ctx *fasthttp.RequestCtx, name string) *fasthttp.Cookie {
	t.Helper()
	c := &fasthttp.Cookie{}
	c.SetKey(name)
	require.True(t, ctx.Response.Header.Cookie(c), "cookie %s not set", name)
	return c
}

func TestAuthRoutes_LoginURL(t *testing.T) {
	r := newTestRouter(&mockAuthUseCase{})

	ctx := serve(r, fasthttp.MethodGet, "/api/auth/login", "", nil)

	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.JSONEq(t, `{"url":"https://login.example/authorize"}`, string(ctx.Response.Body()))
}

func TestAuthRoutes_LoginSetsCookies(t *testing.T) {
	useCase := &mockAuthUseCase{}
	r := newTestRouter(useCase)

	ctx := serve(r, fasthttp.MethodPost, "/api/auth/login", `{"code":"abc"}`, nil)

	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.Equal(t, "abc", useCase.code)

	access := responseCookie(t, ctx, AccessCookie)
	assert.Equal(t, "new-access", string(access.Value()))
	assert.Equal(t, "/", string(access.Path()))
	assert.True(t, access.HTTPOnly())
	assert.True(t, access.Secure())
	assert.Equal(t, 900, access.MaxAge())

	refresh := responseCookie(t, ctx, RefreshCookie)
	assert.Equal(t, "new-refresh", string(refresh.Value()))
	assert.Equal(t, 86400, refresh.MaxAge())
}

func TestAuthRoutes_LoginWithoutEmail(t *testing.T) {
	r := newTestRouter(&mockAuthUseCase{loginErr: autherrors.ErrNoEmail})

	ctx := serve(r, fasthttp.MethodPost, "/api/auth/login", `{"code":"abc"}`, nil)

	assert.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())
	assert.JSONEq(t, `{"error":"No email found in token"}`, string(ctx.Response.Body()))
}

func TestAuthRoutes_Refresh(t *testing.T) {
	useCase := &mockAuthUseCase{}
	r := newTestRouter(useCase)

	ctx := serve(r, fasthttp.MethodPost, "/api/auth/refresh", "", map[string]string{RefreshCookie: "old-refresh"})

	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.Equal(t, "old-refresh", useCase.refresh)
	assert.JSONEq(t, `{"message":"Tokens refreshed successfully"}`, string(ctx.Response.Body()))
	assert.Equal(t, "new-refresh", string(responseCookie(t, ctx, RefreshCookie).Value()))
}

func TestAuthRoutes_RefreshRejected(t *testing.T) {
	r := newTestRouter(&mockAuthUseCase{refreshErr: autherrors.ErrInvalidRefreshToken})

	ctx := serve(r, fasthttp.MethodPost, "/api/auth/refresh", "", nil)

	assert.Equal(t, fasthttp.StatusUnauthorized, ctx.Response.StatusCode())
}

func TestAuthRoutes_Logout(t *testing.T) {
	r := newTestRouter(&mockAuthUseCase{})

	ctx := serve(r, fasthttp.MethodPost, "/api/auth/logout", "", nil)

	assert.Equal(t, fasthttp.StatusNoContent, ctx.Response.StatusCode())
	access := responseCookie(t, ctx, AccessCookie)
	assert.Empty(t, access.Value())
	assert.True(t, access.Expire().Before(time.Now()))
}

func TestAuthRoutes_Check(t *testing.T) {
	useCase := &mockAuthUseCase{}
	r := newTestRouter(useCase)

	ctx := serve(r, fasthttp.MethodGet, "/api/auth/check", "", map[string]string{AccessCookie: "valid"})

	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.Equal(t, "valid", useCase.access)
	assert.Contains(t, string(ctx.Response.Body()), `"email":"ada@example.com"`)
}

func TestAuthenticate_RejectsAnonymous(t *testing.T) {
	r := newTestRouter(&mockAuthUseCase{authErr: autherrors.ErrNotAuthenticated})

	ctx := serve(r, fasthttp.MethodGet, "/api/ping", "", nil)

	assert.Equal(t, fasthttp.StatusUnauthorized, ctx.Response.StatusCode())
	assert.JSONEq(t, `{"error":"Not authenticated"}`, string(ctx.Response.Body()))
}

func TestAuthenticate_AttachesUser(t *testing.T) {
	r := newTestRouter(&mockAuthUseCase{})

	ctx := serve(r, fasthttp.MethodGet, "/api/ping", "", map[string]string{AccessCookie: "valid"})

	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.Equal(t, "ada@example.com", string(ctx.Response.Body()))
	c := &fasthttp.Cookie{}
	c.SetKey(AccessCookie)
	assert.False(t, ctx.Response.Header.Cookie(c))
}

func TestAuthenticate_WritesRotatedTokens(t *testing.T) {
	useCase := &mockAuthUseCase{authRotates: true}
	r := newTestRouter(useCase)

	ctx := serve(r, fasthttp.MethodGet, "/api/ping", "", map[string]string{RefreshCookie: "old-refresh"})

	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.Equal(t, "old-refresh", useCase.refresh)
	assert.Equal(t, "new-access", string(responseCookie(t, ctx, AccessCookie).Value()))
}
