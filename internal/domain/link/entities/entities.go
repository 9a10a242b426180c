package entities

import (
	"time"

	channelentities "github.com/hm-yang2/board-share/internal/domain/channel/entities"
	userentities "github.com/hm-yang2/board-share/internal/domain/user/entities"
)

// Link is a URL saved by a user
type Link struct {
	ID          uint               `gorm:"primaryKey" json:"id"`
	URL         string             `gorm:"column:link;size:2048;not null" json:"link"`
	UserID      uint               `gorm:"not null;index" json:"-"`
	User        *userentities.User `gorm:"foreignKey:UserID" json:"user"`
	Title       string             `gorm:"size:100;not null" json:"title"`
	Description string             `gorm:"size:255;not null;default:''" json:"description"`
	DateCreated time.Time          `gorm:"autoCreateTime" json:"dateCreated"`
}

func (Link) TableName() string {
	return "links"
}

// ChannelLink is a link posted into a channel under its own title
type ChannelLink struct {
	ID          uint                     `gorm:"primaryKey" json:"id"`
	Title       string                   `gorm:"size:100;not null" json:"title"`
	LinkID      uint                     `gorm:"not null;index" json:"-"`
	Link        *Link                    `gorm:"foreignKey:LinkID" json:"link"`
	ChannelID   uint                     `gorm:"not null;index" json:"-"`
	Channel     *channelentities.Channel `gorm:"foreignKey:ChannelID" json:"channel"`
	DateCreated time.Time                `gorm:"autoCreateTime" json:"dateCreated"`
}

func (ChannelLink) TableName() string {
	return "channel_links"
}
