package business

import (
	"context"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/hm-yang2/board-share/internal/domain/channel/dto"
	"github.com/hm-yang2/board-share/internal/domain/channel/entities"
	channelerrors "github.com/hm-yang2/board-share/internal/domain/channel/errors"
	"github.com/hm-yang2/board-share/internal/domain/channel/repository/postgres"
	"github.com/hm-yang2/board-share/internal/domain/events"
	permissionentities "github.com/hm-yang2/board-share/internal/domain/permission/entities"
	permissionrepo "github.com/hm-yang2/board-share/internal/domain/permission/repository/postgres"
	permission "github.com/hm-yang2/board-share/internal/domain/permission/usecase/business"
	userentities "github.com/hm-yang2/board-share/internal/domain/user/entities"
	userrepo "github.com/hm-yang2/board-share/internal/domain/user/repository/postgres"
	"github.com/hm-yang2/board-share/internal/testutil"
	"github.com/hm-yang2/board-share/pkg/mapfn"
)

// mockPublisher records published event types
type mockPublisher struct {
	mu    sync.Mutex
	types []string
}

func (m *mockPublisher) Publish(_ context.Context, event events.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.types = append(m.types, event.Type)
	return nil
}

type nopRoleMetrics struct{}

func (nopRoleMetrics) RecordRoleResolution(string) {}

// userFinder adapts the user repository to deps.UserFinder
type userFinder struct {
	repo interface {
		GetByID(ctx context.Context, id uint) (*userentities.User, error)
	}
}

func (f userFinder) GetUser(ctx context.Context, id uint) (*userentities.User, error) {
	return f.repo.GetByID(ctx, id)
}

type fixture struct {
	db        *gorm.DB
	channels  *UseCase
	roster    *RosterUseCase
	publisher *mockPublisher
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.NewDB(t)
	publisher := &mockPublisher{}
	resolver := permission.NewResolver(permissionrepo.NewRepository(db), nopRoleMetrics{}, zerolog.Nop())
	channelRepo := postgres.NewRepository(db)

	return &fixture{
		db:       db,
		channels: NewUseCase(channelRepo, resolver, publisher, zerolog.Nop()),
		roster: NewRosterUseCase(
			channelRepo,
			postgres.NewRosterRepository(db),
			userFinder{repo: userrepo.NewRepository(db)},
			resolver,
			publisher,
			zerolog.Nop(),
		),
		publisher: publisher,
	}
}

func (f *fixture) create(t *testing.T, owner *userentities.User, name string, visibility entities.Visibility) *entities.Channel {
	t.Helper()
	channel, err := f.channels.CreateChannel(context.Background(), owner, dto.ChannelRequest{
		Name:       name,
		Visibility: visibility,
	})
	require.NoError(t, err)
	return channel
}

func TestCreateChannel_Validation(t *testing.T) {
	f := newFixture(t)
	owner := testutil.CreateUser(t, f.db, "owner@example.com")
	ctx := context.Background()

	long := make([]byte, 256)
	for i := range long {
		long[i] = 'a'
	}

	tests := []struct {
		name string
		req  dto.ChannelRequest
		want error
	}{
		{"short name", dto.ChannelRequest{Name: "ab", Visibility: entities.VisibilityPublic}, channelerrors.ErrInvalidName},
		{"blank name", dto.ChannelRequest{Name: "   ", Visibility: entities.VisibilityPublic}, channelerrors.ErrInvalidName},
		{"long name", dto.ChannelRequest{Name: string(long[:51]), Visibility: entities.VisibilityPublic}, channelerrors.ErrInvalidName},
		{"long description", dto.ChannelRequest{Name: "valid", Description: string(long), Visibility: entities.VisibilityPublic}, channelerrors.ErrDescriptionTooLong},
		{"bad visibility", dto.ChannelRequest{Name: "valid", Visibility: "SECRET"}, channelerrors.ErrInvalidVisibility},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.channels.CreateChannel(ctx, owner, tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCreateChannel_OwnerAndUniqueName(t *testing.T) {
	f := newFixture(t)
	owner := testutil.CreateUser(t, f.db, "owner@example.com")
	ctx := context.Background()

	channel := f.create(t, owner, "general", entities.VisibilityPrivate)

	role, err := f.channels.GetRole(ctx, owner, &channel.ID)
	require.NoError(t, err)
	assert.Equal(t, permissionentities.RoleOwner, role)

	_, err = f.channels.CreateChannel(ctx, owner, dto.ChannelRequest{Name: "general", Visibility: entities.VisibilityPublic})
	assert.ErrorIs(t, err, channelerrors.ErrChannelExists)

	assert.Equal(t, []string{events.TypeChannelCreated}, f.publisher.types)
}

func TestListChannels(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	super := testutil.CreateUser(t, f.db, "super@example.com")
	testutil.CreateSuperUser(t, f.db, super)
	alice := testutil.CreateUser(t, f.db, "alice@example.com")
	bob := testutil.CreateUser(t, f.db, "bob@example.com")

	lobby := f.create(t, bob, "lobby", entities.VisibilityPublic)
	alicePrivate := f.create(t, alice, "alice-private", entities.VisibilityPrivate)
	bobPrivate := f.create(t, bob, "bob-private", entities.VisibilityPrivate)

	// alice also joins the public lobby; it must appear once
	testutil.AddRole(t, f.db, entities.RosterMember, alice, lobby)

	channels, err := f.channels.ListChannels(ctx, alice, "")
	require.NoError(t, err)
	require.Len(t, channels, 2)
	assert.Equal(t, alicePrivate.ID, channels[0].ID)
	assert.Equal(t, lobby.ID, channels[1].ID)
	assert.NotContains(t, channelIDs(channels), bobPrivate.ID)

	// bob sees his own private channel
	channels, err = f.channels.ListChannels(ctx, bob, "")
	require.NoError(t, err)
	assert.Contains(t, channelIDs(channels), bobPrivate.ID)
	assert.NotContains(t, channelIDs(channels), alicePrivate.ID)

	channels, err = f.channels.ListChannels(ctx, alice, "LOB")
	require.NoError(t, err)
	require.Len(t, channels, 1)
	assert.Equal(t, lobby.ID, channels[0].ID)

	channels, err = f.channels.ListChannels(ctx, super, "")
	require.NoError(t, err)
	assert.Len(t, channels, 3)
	assert.Contains(t, channelIDs(channels), bobPrivate.ID)
}

func channelIDs(channels []entities.Channel) []uint {
	return mapfn.ConvertSlice(channels, func(c entities.Channel) uint { return c.ID })
}

func TestGetChannel_PrivateAccess(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	owner := testutil.CreateUser(t, f.db, "owner@example.com")
	stranger := testutil.CreateUser(t, f.db, "stranger@example.com")
	private := f.create(t, owner, "private", entities.VisibilityPrivate)
	public := f.create(t, owner, "public", entities.VisibilityPublic)

	_, err := f.channels.GetChannel(ctx, stranger, private.ID)
	assert.ErrorIs(t, err, channelerrors.ErrAccessDenied)

	got, err := f.channels.GetChannel(ctx, stranger, public.ID)
	require.NoError(t, err)
	assert.Equal(t, "public", got.Name)

	got, err = f.channels.GetChannel(ctx, owner, private.ID)
	require.NoError(t, err)
	assert.Equal(t, "private", got.Name)

	_, err = f.channels.GetChannel(ctx, owner, 999)
	assert.ErrorIs(t, err, channelerrors.ErrChannelNotFound)
}

func TestGetRole(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	super := testutil.CreateUser(t, f.db, "super@example.com")
	testutil.CreateSuperUser(t, f.db, super)
	user := testutil.CreateUser(t, f.db, "user@example.com")

	role, err := f.channels.GetRole(ctx, super, nil)
	require.NoError(t, err)
	assert.Equal(t, permissionentities.RoleSuperUser, role)

	role, err = f.channels.GetRole(ctx, user, nil)
	require.NoError(t, err)
	assert.Equal(t, permissionentities.RoleNotAllowed, role)

	missing := uint(999)
	_, err = f.channels.GetRole(ctx, user, &missing)
	assert.ErrorIs(t, err, channelerrors.ErrChannelNotFound)

	channel := f.create(t, super, "general", entities.VisibilityPublic)
	role, err = f.channels.GetRole(ctx, user, &channel.ID)
	require.NoError(t, err)
	assert.Equal(t, permissionentities.RoleNotAllowed, role)
}

func TestUpdateChannel(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	owner := testutil.CreateUser(t, f.db, "owner@example.com")
	admin := testutil.CreateUser(t, f.db, "admin@example.com")
	channel := f.create(t, owner, "general", entities.VisibilityPublic)
	testutil.AddRole(t, f.db, entities.RosterAdmin, admin, channel)
	f.create(t, owner, "taken", entities.VisibilityPublic)

	_, err := f.channels.UpdateChannel(ctx, owner, dto.ChannelRequest{Name: "renamed", Visibility: entities.VisibilityPublic})
	assert.ErrorIs(t, err, channelerrors.ErrChannelIDRequired)

	missing := uint(999)
	_, err = f.channels.UpdateChannel(ctx, owner, dto.ChannelRequest{ID: &missing, Name: "renamed", Visibility: entities.VisibilityPublic})
	assert.ErrorIs(t, err, channelerrors.ErrChannelNotFound)

	_, err = f.channels.UpdateChannel(ctx, admin, dto.ChannelRequest{ID: &channel.ID, Name: "renamed", Visibility: entities.VisibilityPublic})
	assert.ErrorIs(t, err, channelerrors.ErrUpdateDenied)

	_, err = f.channels.UpdateChannel(ctx, owner, dto.ChannelRequest{ID: &channel.ID, Name: "taken", Visibility: entities.VisibilityPublic})
	assert.ErrorIs(t, err, channelerrors.ErrChannelExists)

	updated, err := f.channels.UpdateChannel(ctx, owner, dto.ChannelRequest{
		ID:          &channel.ID,
		Name:        "renamed",
		Description: "new description",
		Visibility:  entities.VisibilityPrivate,
	})
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Name)
	assert.Equal(t, "new description", updated.Description)
	assert.True(t, updated.IsPrivate())
}

func TestDeleteChannel(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	owner := testutil.CreateUser(t, f.db, "owner@example.com")
	member := testutil.CreateUser(t, f.db, "member@example.com")
	channel := f.create(t, owner, "general", entities.VisibilityPublic)
	testutil.AddRole(t, f.db, entities.RosterMember, member, channel)

	assert.ErrorIs(t, f.channels.DeleteChannel(ctx, member, channel.ID), channelerrors.ErrDeleteDenied)
	assert.ErrorIs(t, f.channels.DeleteChannel(ctx, owner, 999), channelerrors.ErrChannelNotFound)

	require.NoError(t, f.channels.DeleteChannel(ctx, owner, channel.ID))
	assert.Equal(t, int64(0), testutil.CountRows(t, f.db, "channel_members"))
	assert.Contains(t, f.publisher.types, events.TypeChannelDeleted)
}
