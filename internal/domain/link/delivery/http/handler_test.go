package http

import (
	"context"
	"testing"

	"github.com/fasthttp/router"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	"github.com/hm-yang2/board-share/internal/domain/auth/session"
	"github.com/hm-yang2/board-share/internal/domain/link/dto"
	"github.com/hm-yang2/board-share/internal/domain/link/entities"
	linkerrors "github.com/hm-yang2/board-share/internal/domain/link/errors"
	userentities "github.com/hm-yang2/board-share/internal/domain/user/entities"
	"github.com/hm-yang2/board-share/pkg/httputil"
)

// mockLinkUseCase is a mock implementation of deps.LinkUseCase
type mockLinkUseCase struct {
	search  string
	request dto.LinkRequest
	err     error
}

func (m *mockLinkUseCase) ListLinks(_ context.Context, _ *userentities.User, search string) ([]entities.Link, error) {
	m.search = search
	return []entities.Link{{ID: 1, Title: "golang"}}, m.err
}

func (m *mockLinkUseCase) GetLink(_ context.Context, actor *userentities.User, id uint) (*entities.Link, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &entities.Link{ID: id, UserID: actor.ID, Title: "golang"}, nil
}

func (m *mockLinkUseCase) CreateLink(_ context.Context, _ *userentities.User, req dto.LinkRequest) (*entities.Link, error) {
	m.request = req
	if m.err != nil {
		return nil, m.err
	}
	return &entities.Link{ID: 7, Title: req.Title, URL: req.Link}, nil
}

func (m *mockLinkUseCase) UpdateLink(_ context.Context, _ *userentities.User, req dto.LinkRequest) (*entities.Link, error) {
	m.request = req
	if m.err != nil {
		return nil, m.err
	}
	return &entities.Link{ID: *req.ID, Title: req.Title, URL: req.Link}, nil
}

func (m *mockLinkUseCase) DeleteLink(context.Context, *userentities.User, uint) error {
	return m.err
}

// mockChannelLinkUseCase records the channel and ids it was called with
type mockChannelLinkUseCase struct {
	channelID uint
	id        uint
	request   dto.ChannelLinkRequest
	err       error
}

func (m *mockChannelLinkUseCase) ListChannelLinks(_ context.Context, _ *userentities.User, channelID uint) ([]entities.ChannelLink, error) {
	m.channelID = channelID
	return []entities.ChannelLink{}, m.err
}

func (m *mockChannelLinkUseCase) GetChannelLink(_ context.Context, _ *userentities.User, channelID, id uint) (*entities.ChannelLink, error) {
	m.channelID, m.id = channelID, id
	if m.err != nil {
		return nil, m.err
	}
	return &entities.ChannelLink{ID: id, ChannelID: channelID, Title: "posted"}, nil
}

func (m *mockChannelLinkUseCase) CreateChannelLink(_ context.Context, _ *userentities.User, channelID uint, req dto.ChannelLinkRequest) (*entities.ChannelLink, error) {
	m.channelID, m.request = channelID, req
	if m.err != nil {
		return nil, m.err
	}
	return &entities.ChannelLink{ID: 1, ChannelID: channelID, LinkID: req.LinkID, Title: req.Title}, nil
}

func (m *mockChannelLinkUseCase) UpdateChannelLink(_ context.Context, _ *userentities.User, channelID uint, req dto.ChannelLinkRequest) (*entities.ChannelLink, error) {
	m.channelID, m.request = channelID, req
	return nil, m.err
}

func (m *mockChannelLinkUseCase) DeleteChannelLink(_ context.Context, _ *userentities.User, channelID, id uint) error {
	m.channelID, m.id = channelID, id
	return m.err
}

func newTestRouter(links *mockLinkUseCase, channelLinks *mockChannelLinkUseCase) *router.Router {
	r := router.New()
	api := httputil.NewMiddlewareGroup(r.Group("/api")).Use(func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
		return func(ctx *fasthttp.RequestCtx) {
			session.SetUser(ctx, &userentities.User{ID: 1, Email: "me@example.com"})
			next(ctx)
		}
	})
	NewRouter(
		NewLinkHandler(links, zerolog.Nop()),
		NewChannelLinkHandler(channelLinks, zerolog.Nop()),
		zerolog.Nop(),
	).RegisterRoutes(api)
	return r
}

func serve(r *router.Router, method, uri, body string) *fasthttp.RequestCtx {
	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.SetMethod(method)
	ctx.Request.SetRequestURI(uri)
	if body != "" {
		ctx.Request.SetBodyString(body)
	}
	r.Handler(ctx)
	return ctx
}

func TestLinkRoutes_ListPassesSearch(t *testing.T) {
	links := &mockLinkUseCase{}
	r := newTestRouter(links, &mockChannelLinkUseCase{})

	ctx := serve(r, fasthttp.MethodGet, "/api/link?search=go", "")

	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.Equal(t, "go", links.search)
	assert.Contains(t, string(ctx.Response.Body()), `"title":"golang"`)
}

func TestLinkRoutes_Create(t *testing.T) {
	links := &mockLinkUseCase{}
	r := newTestRouter(links, &mockChannelLinkUseCase{})

	ctx := serve(r, fasthttp.MethodPut, "/api/link", `{"title":"Go docs","description":"","link":"https://go.dev"}`)

	assert.Equal(t, fasthttp.StatusCreated, ctx.Response.StatusCode())
	assert.Equal(t, "https://go.dev", links.request.Link)
	assert.Contains(t, string(ctx.Response.Body()), `"link":"https://go.dev"`)
}

func TestLinkRoutes_CreateValidationError(t *testing.T) {
	r := newTestRouter(&mockLinkUseCase{err: linkerrors.ErrInvalidURL}, &mockChannelLinkUseCase{})

	ctx := serve(r, fasthttp.MethodPut, "/api/link", `{"title":"Go docs","link":"nope"}`)

	assert.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())
}

func TestLinkRoutes_Update(t *testing.T) {
	links := &mockLinkUseCase{}
	r := newTestRouter(links, &mockChannelLinkUseCase{})

	ctx := serve(r, fasthttp.MethodPost, "/api/link", `{"id":3,"title":"Go docs","link":"https://go.dev"}`)

	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	require.NotNil(t, links.request.ID)
	assert.Equal(t, uint(3), *links.request.ID)
}

func TestLinkRoutes_GetNotFound(t *testing.T) {
	r := newTestRouter(&mockLinkUseCase{err: linkerrors.ErrLinkNotFound}, &mockChannelLinkUseCase{})

	ctx := serve(r, fasthttp.MethodGet, "/api/link/5", "")

	assert.Equal(t, fasthttp.StatusNotFound, ctx.Response.StatusCode())
	assert.JSONEq(t, `{"error":"Link not found"}`, string(ctx.Response.Body()))
}

func TestLinkRoutes_Delete(t *testing.T) {
	r := newTestRouter(&mockLinkUseCase{}, &mockChannelLinkUseCase{})

	ctx := serve(r, fasthttp.MethodDelete, "/api/link/5", "")

	assert.Equal(t, fasthttp.StatusNoContent, ctx.Response.StatusCode())
}

func TestChannelLinkRoutes_CreateUsesPathChannel(t *testing.T) {
	channelLinks := &mockChannelLinkUseCase{}
	r := newTestRouter(&mockLinkUseCase{}, channelLinks)

	ctx := serve(r, fasthttp.MethodPut, "/api/channellink/4", `{"title":"read this","linkId":2,"channelId":99}`)

	assert.Equal(t, fasthttp.StatusCreated, ctx.Response.StatusCode())
	assert.Equal(t, uint(4), channelLinks.channelID)
	assert.Equal(t, uint(2), channelLinks.request.LinkID)
}

func TestChannelLinkRoutes_Get(t *testing.T) {
	channelLinks := &mockChannelLinkUseCase{}
	r := newTestRouter(&mockLinkUseCase{}, channelLinks)

	ctx := serve(r, fasthttp.MethodGet, "/api/channellink/4/11", "")

	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.Equal(t, uint(4), channelLinks.channelID)
	assert.Equal(t, uint(11), channelLinks.id)
}

func TestChannelLinkRoutes_ListForbidden(t *testing.T) {
	r := newTestRouter(&mockLinkUseCase{}, &mockChannelLinkUseCase{err: linkerrors.ErrViewDenied})

	ctx := serve(r, fasthttp.MethodGet, "/api/channellink/4", "")

	assert.Equal(t, fasthttp.StatusForbidden, ctx.Response.StatusCode())
}

func TestChannelLinkRoutes_UpdateDenied(t *testing.T) {
	channelLinks := &mockChannelLinkUseCase{err: linkerrors.ErrUpdateDenied}
	r := newTestRouter(&mockLinkUseCase{}, channelLinks)

	ctx := serve(r, fasthttp.MethodPost, "/api/channellink/4", `{"id":11,"title":"renamed"}`)

	assert.Equal(t, fasthttp.StatusForbidden, ctx.Response.StatusCode())
	assert.Equal(t, uint(4), channelLinks.channelID)
}

func TestChannelLinkRoutes_Delete(t *testing.T) {
	channelLinks := &mockChannelLinkUseCase{}
	r := newTestRouter(&mockLinkUseCase{}, channelLinks)

	ctx := serve(r, fasthttp.MethodDelete, "/api/channellink/4/11", "")

	assert.Equal(t, fasthttp.StatusNoContent, ctx.Response.StatusCode())
	assert.Equal(t, uint(11), channelLinks.id)
}

func TestChannelLinkRoutes_BadPathParameter(t *testing.T) {
	r := newTestRouter(&mockLinkUseCase{}, &mockChannelLinkUseCase{})

	ctx := serve(r, fasthttp.MethodGet, "/api/channellink/abc", "")

	assert.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())
}
