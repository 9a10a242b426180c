package entities

import (
	"time"

	userentities "github.com/hm-yang2/board-share/internal/domain/user/entities"
)

// Visibility controls whether non-members can see a channel
type Visibility string

const (
	VisibilityPublic  Visibility = "PUBLIC"
	VisibilityPrivate Visibility = "PRIVATE"
)

// Valid reports whether v is a known visibility
func (v Visibility) Valid() bool {
	return v == VisibilityPublic || v == VisibilityPrivate
}

// Channel groups links and the users allowed to see them
type Channel struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Name        string     `gorm:"size:50;not null;uniqueIndex" json:"name"`
	Description string     `gorm:"size:255;not null;default:''" json:"description"`
	Visibility  Visibility `gorm:"type:varchar(16);not null" json:"visibility"`
	DateCreated time.Time  `gorm:"autoCreateTime" json:"dateCreated"`
}

func (Channel) TableName() string {
	return "channels"
}

// IsPrivate reports whether the channel hides itself from non-members
func (c *Channel) IsPrivate() bool {
	return c.Visibility == VisibilityPrivate
}

// RosterKinds lists every roster table
var RosterKinds = []RosterKind{RosterMember, RosterAdmin, RosterOwner}

// RosterKind selects one of the three role tables of a channel
type RosterKind string

const (
	RosterMember RosterKind = "member"
	RosterAdmin  RosterKind = "admin"
	RosterOwner  RosterKind = "owner"
)

// Table returns the table backing the roster kind
func (k RosterKind) Table() string {
	switch k {
	case RosterAdmin:
		return "channel_admins"
	case RosterOwner:
		return "channel_owners"
	default:
		return "channel_members"
	}
}

// RosterEntry is one member, admin or owner row of a channel.
// It has no table of its own: queries pick one with RosterKind.Table.
type RosterEntry struct {
	ID          uint               `gorm:"primaryKey" json:"id"`
	UserID      uint               `gorm:"not null" json:"-"`
	ChannelID   uint               `gorm:"not null" json:"-"`
	User        *userentities.User `gorm:"foreignKey:UserID" json:"user"`
	Channel     *Channel           `gorm:"foreignKey:ChannelID" json:"channel"`
	DateCreated time.Time          `gorm:"autoCreateTime" json:"dateCreated"`
}
