package http

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/fasthttp/router"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	"github.com/hm-yang2/board-share/internal/domain/auth/session"
	"github.com/hm-yang2/board-share/internal/domain/channel/dto"
	"github.com/hm-yang2/board-share/internal/domain/channel/entities"
	channelerrors "github.com/hm-yang2/board-share/internal/domain/channel/errors"
	permissionentities "github.com/hm-yang2/board-share/internal/domain/permission/entities"
	userentities "github.com/hm-yang2/board-share/internal/domain/user/entities"
	"github.com/hm-yang2/board-share/pkg/httputil"
)

// mockChannelUseCase is a mock implementation of deps.ChannelUseCase
type mockChannelUseCase struct {
	getRoleFunc       func(channelID *uint) (permissionentities.Role, error)
	createChannelFunc func(req dto.ChannelRequest) (*entities.Channel, error)
	deleteChannelFunc func(id uint) error
}

func (m *mockChannelUseCase) ListChannels(context.Context, *userentities.User, string) ([]entities.Channel, error) {
	return []entities.Channel{}, nil
}

func (m *mockChannelUseCase) GetChannel(_ context.Context, _ *userentities.User, id uint) (*entities.Channel, error) {
	return &entities.Channel{ID: id, Name: "general", Visibility: entities.VisibilityPublic}, nil
}

func (m *mockChannelUseCase) GetRole(_ context.Context, _ *userentities.User, channelID *uint) (permissionentities.Role, error) {
	return m.getRoleFunc(channelID)
}

func (m *mockChannelUseCase) CreateChannel(_ context.Context, _ *userentities.User, req dto.ChannelRequest) (*entities.Channel, error) {
	return m.createChannelFunc(req)
}

func (m *mockChannelUseCase) UpdateChannel(context.Context, *userentities.User, dto.ChannelRequest) (*entities.Channel, error) {
	return nil, channelerrors.ErrChannelIDRequired
}

func (m *mockChannelUseCase) DeleteChannel(_ context.Context, _ *userentities.User, id uint) error {
	return m.deleteChannelFunc(id)
}

// mockRosterUseCase records the kind and ids it was called with
type mockRosterUseCase struct {
	kind      entities.RosterKind
	channelID uint
	id        uint
	err       error
}

func (m *mockRosterUseCase) List(_ context.Context, _ *userentities.User, kind entities.RosterKind, channelID uint) ([]entities.RosterEntry, error) {
	m.kind, m.channelID = kind, channelID
	return []entities.RosterEntry{}, m.err
}

func (m *mockRosterUseCase) Add(_ context.Context, _ *userentities.User, kind entities.RosterKind, channelID, userID uint) (*entities.RosterEntry, error) {
	m.kind, m.channelID, m.id = kind, channelID, userID
	if m.err != nil {
		return nil, m.err
	}
	return &entities.RosterEntry{ID: 1, UserID: userID, ChannelID: channelID}, nil
}

func (m *mockRosterUseCase) Remove(_ context.Context, _ *userentities.User, kind entities.RosterKind, channelID, entryID uint) error {
	m.kind, m.channelID, m.id = kind, channelID, entryID
	return m.err
}

func newTestRouter(channels *mockChannelUseCase, roster *mockRosterUseCase) *router.Router {
	r := router.New()
	api := httputil.NewMiddlewareGroup(r.Group("/api")).Use(func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
		return func(ctx *fasthttp.RequestCtx) {
			session.SetUser(ctx, &userentities.User{ID: 1, Email: "me@example.com"})
			next(ctx)
		}
	})
	NewRouter(NewChannelHandler(channels, zerolog.Nop()), roster, zerolog.Nop()).RegisterRoutes(api)
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

func TestChannelRoutes_RoleWithoutChannel(t *testing.T) {
	var got *uint
	r := newTestRouter(&mockChannelUseCase{
		getRoleFunc: func(channelID *uint) (permissionentities.Role, error) {
			got = channelID
			return permissionentities.RoleSuperUser, nil
		},
	}, &mockRosterUseCase{})

	ctx := serve(r, fasthttp.MethodGet, "/api/channel/role", "")

	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.Nil(t, got)
	assert.JSONEq(t, `{"role":"SUPER_USER"}`, string(ctx.Response.Body()))
}

func TestChannelRoutes_RoleWithChannel(t *testing.T) {
	var got *uint
	r := newTestRouter(&mockChannelUseCase{
		getRoleFunc: func(channelID *uint) (permissionentities.Role, error) {
			got = channelID
			return permissionentities.RoleAdmin, nil
		},
	}, &mockRosterUseCase{})

	ctx := serve(r, fasthttp.MethodGet, "/api/channel/role?channelId=12", "")

	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	require.NotNil(t, got)
	assert.Equal(t, uint(12), *got)
}

func TestChannelRoutes_GetByID(t *testing.T) {
	r := newTestRouter(&mockChannelUseCase{}, &mockRosterUseCase{})

	ctx := serve(r, fasthttp.MethodGet, "/api/channel/4", "")

	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	var channel entities.Channel
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &channel))
	assert.Equal(t, uint(4), channel.ID)
}

func TestChannelRoutes_Create(t *testing.T) {
	r := newTestRouter(&mockChannelUseCase{
		createChannelFunc: func(req dto.ChannelRequest) (*entities.Channel, error) {
			return &entities.Channel{ID: 1, Name: req.Name, Visibility: req.Visibility}, nil
		},
	}, &mockRosterUseCase{})

	ctx := serve(r, fasthttp.MethodPut, "/api/channel", `{"name":"general","visibility":"PRIVATE"}`)

	assert.Equal(t, fasthttp.StatusCreated, ctx.Response.StatusCode())
	assert.Contains(t, string(ctx.Response.Body()), `"visibility":"PRIVATE"`)
}

func TestChannelRoutes_UpdateWithoutID(t *testing.T) {
	r := newTestRouter(&mockChannelUseCase{}, &mockRosterUseCase{})

	ctx := serve(r, fasthttp.MethodPost, "/api/channel", `{"name":"general"}`)

	assert.Equal(t, fasthttp.StatusNotFound, ctx.Response.StatusCode())
	assert.JSONEq(t, `{"error":"No Channel Id"}`, string(ctx.Response.Body()))
}

func TestChannelRoutes_Delete(t *testing.T) {
	var got uint
	r := newTestRouter(&mockChannelUseCase{
		deleteChannelFunc: func(id uint) error {
			got = id
			return nil
		},
	}, &mockRosterUseCase{})

	ctx := serve(r, fasthttp.MethodDelete, "/api/channel/9", "")

	assert.Equal(t, fasthttp.StatusNoContent, ctx.Response.StatusCode())
	assert.Equal(t, uint(9), got)
}

func TestRosterRoutes(t *testing.T) {
	tests := []struct {
		method string
		uri    string
		body   string
		kind   entities.RosterKind
		id     uint
		status int
	}{
		{fasthttp.MethodGet, "/api/channelmember/3", "", entities.RosterMember, 0, fasthttp.StatusOK},
		{fasthttp.MethodPut, "/api/channeladmin/3", `{"id":8}`, entities.RosterAdmin, 8, fasthttp.StatusCreated},
		{fasthttp.MethodDelete, "/api/channelowner/3/5", "", entities.RosterOwner, 5, fasthttp.StatusNoContent},
		{fasthttp.MethodDelete, "/api/channelmember/3/6", "", entities.RosterMember, 6, fasthttp.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.uri, func(t *testing.T) {
			roster := &mockRosterUseCase{}
			r := newTestRouter(&mockChannelUseCase{}, roster)

			ctx := serve(r, tt.method, tt.uri, tt.body)

			assert.Equal(t, tt.status, ctx.Response.StatusCode())
			assert.Equal(t, tt.kind, roster.kind)
			assert.Equal(t, uint(3), roster.channelID)
			assert.Equal(t, tt.id, roster.id)
		})
	}
}

func TestRosterRoutes_Conflict(t *testing.T) {
	r := newTestRouter(&mockChannelUseCase{}, &mockRosterUseCase{err: channelerrors.ErrLastOwner})

	ctx := serve(r, fasthttp.MethodDelete, "/api/channelowner/3/5", "")

	assert.Equal(t, fasthttp.StatusConflict, ctx.Response.StatusCode())
	assert.JSONEq(t, `{"error":"At least one owner must remain in the channel."}`, string(ctx.Response.Body()))
}
