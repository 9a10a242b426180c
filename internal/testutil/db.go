// Package testutil builds throwaway databases and fixtures for repository tests.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	channelentities "github.com/hm-yang2/board-share/internal/domain/channel/entities"
	linkentities "github.com/hm-yang2/board-share/internal/domain/link/entities"
	userentities "github.com/hm-yang2/board-share/internal/domain/user/entities"
	"github.com/hm-yang2/board-share/internal/infrastructure/database"
)

// NewDB opens an in-memory SQLite database with the full schema
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.NewSQLiteDB(":memory:")
	require.NoError(t, err)

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func CreateUser(t *testing.T, db *gorm.DB, email string) *userentities.User {
	t.Helper()
	user := &userentities.User{Email: email}
	require.NoError(t, db.Create(user).Error)
	return user
}

func CreateSuperUser(t *testing.T, db *gorm.DB, user *userentities.User) *userentities.SuperUser {
	t.Helper()
	superUser := &userentities.SuperUser{UserID: user.ID}
	require.NoError(t, db.Create(superUser).Error)
	return superUser
}

func CreateChannel(t *testing.T, db *gorm.DB, name string, visibility channelentities.Visibility) *channelentities.Channel {
	t.Helper()
	channel := &channelentities.Channel{Name: name, Visibility: visibility}
	require.NoError(t, db.Create(channel).Error)
	return channel
}

func AddRole(t *testing.T, db *gorm.DB, kind channelentities.RosterKind, user *userentities.User, channel *channelentities.Channel) *channelentities.RosterEntry {
	t.Helper()
	entry := &channelentities.RosterEntry{UserID: user.ID, ChannelID: channel.ID}
	require.NoError(t, db.Table(kind.Table()).Create(entry).Error)
	return entry
}

func CreateLink(t *testing.T, db *gorm.DB, owner *userentities.User, title string) *linkentities.Link {
	t.Helper()
	link := &linkentities.Link{URL: "https://example.com/" + title, UserID: owner.ID, Title: title}
	require.NoError(t, db.Create(link).Error)
	return link
}

func CreateChannelLink(t *testing.T, db *gorm.DB, link *linkentities.Link, channel *channelentities.Channel, title string) *linkentities.ChannelLink {
	t.Helper()
	channelLink := &linkentities.ChannelLink{Title: title, LinkID: link.ID, ChannelID: channel.ID}
	require.NoError(t, db.Create(channelLink).Error)
	return channelLink
}

// CountRows counts every row of table
func CountRows(t *testing.T, db *gorm.DB, table string) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Table(table).Count(&count).Error)
	return count
}
