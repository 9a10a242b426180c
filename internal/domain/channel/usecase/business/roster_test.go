package business

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hm-yang2/board-share/internal/domain/channel/entities"
	channelerrors "github.com/hm-yang2/board-share/internal/domain/channel/errors"
	"github.com/hm-yang2/board-share/internal/domain/events"
	"github.com/hm-yang2/board-share/internal/testutil"
)

func TestRoster_AdminManagesMembers(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	owner := testutil.CreateUser(t, f.db, "owner@example.com")
	admin := testutil.CreateUser(t, f.db, "admin@example.com")
	newcomer := testutil.CreateUser(t, f.db, "newcomer@example.com")
	channel := f.create(t, owner, "general", entities.VisibilityPrivate)
	testutil.AddRole(t, f.db, entities.RosterAdmin, admin, channel)

	entry, err := f.roster.Add(ctx, admin, entities.RosterMember, channel.ID, newcomer.ID)
	require.NoError(t, err)
	require.NotNil(t, entry.User)
	assert.Equal(t, "newcomer@example.com", entry.User.Email)

	_, err = f.roster.Add(ctx, admin, entities.RosterMember, channel.ID, newcomer.ID)
	assert.ErrorIs(t, err, channelerrors.ErrAlreadyMember)

	members, err := f.roster.List(ctx, admin, entities.RosterMember, channel.ID)
	require.NoError(t, err)
	require.Len(t, members, 1)

	// members cannot see or change the roster
	_, err = f.roster.List(ctx, newcomer, entities.RosterMember, channel.ID)
	assert.ErrorIs(t, err, channelerrors.ErrMembersDenied)

	// admins cannot manage owners
	_, err = f.roster.Add(ctx, admin, entities.RosterOwner, channel.ID, newcomer.ID)
	assert.ErrorIs(t, err, channelerrors.ErrOwnersDenied)

	require.NoError(t, f.roster.Remove(ctx, admin, entities.RosterMember, channel.ID, entry.ID))
	assert.ErrorIs(t, f.roster.Remove(ctx, admin, entities.RosterMember, channel.ID, entry.ID), channelerrors.ErrMemberNotFound)

	assert.Contains(t, f.publisher.types, events.TypeMemberAdded)
	assert.Contains(t, f.publisher.types, events.TypeMemberRemoved)
}

func TestRoster_AddValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	owner := testutil.CreateUser(t, f.db, "owner@example.com")
	channel := f.create(t, owner, "general", entities.VisibilityPublic)

	_, err := f.roster.Add(ctx, owner, entities.RosterAdmin, channel.ID, 0)
	assert.ErrorIs(t, err, channelerrors.ErrUserIDRequired)

	_, err = f.roster.Add(ctx, owner, entities.RosterAdmin, channel.ID, 999)
	assert.ErrorIs(t, err, channelerrors.ErrUserNotFound)

	_, err = f.roster.Add(ctx, owner, entities.RosterAdmin, 999, owner.ID)
	assert.ErrorIs(t, err, channelerrors.ErrChannelNotFound)
}

func TestRoster_LastOwnerRemains(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	owner := testutil.CreateUser(t, f.db, "owner@example.com")
	second := testutil.CreateUser(t, f.db, "second@example.com")
	channel := f.create(t, owner, "general", entities.VisibilityPublic)

	owners, err := f.roster.List(ctx, owner, entities.RosterOwner, channel.ID)
	require.NoError(t, err)
	require.Len(t, owners, 1)
	assert.ErrorIs(t, f.roster.Remove(ctx, owner, entities.RosterOwner, channel.ID, owners[0].ID), channelerrors.ErrLastOwner)

	added, err := f.roster.Add(ctx, owner, entities.RosterOwner, channel.ID, second.ID)
	require.NoError(t, err)

	require.NoError(t, f.roster.Remove(ctx, second, entities.RosterOwner, channel.ID, owners[0].ID))
	assert.ErrorIs(t, f.roster.Remove(ctx, second, entities.RosterOwner, channel.ID, added.ID), channelerrors.ErrLastOwner)
}

func TestRoster_RemoveIsScopedToChannel(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	owner := testutil.CreateUser(t, f.db, "owner@example.com")
	member := testutil.CreateUser(t, f.db, "member@example.com")
	general := f.create(t, owner, "general", entities.VisibilityPublic)
	other := f.create(t, owner, "other", entities.VisibilityPublic)
	entry := testutil.AddRole(t, f.db, entities.RosterMember, member, general)

	err := f.roster.Remove(ctx, owner, entities.RosterMember, other.ID, entry.ID)
	assert.ErrorIs(t, err, channelerrors.ErrMemberNotFound)
	assert.Equal(t, int64(1), testutil.CountRows(t, f.db, "channel_members"))
}
