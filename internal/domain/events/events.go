package events

import (
	"context"
	"strconv"
	"time"
)

// Event types published on the domain events topic
const (
	TypeUserCreated        = "user_created"
	TypeUserDeleted        = "user_deleted"
	TypeSuperUserAdded     = "super_user_added"
	TypeSuperUserRemoved   = "super_user_removed"
	TypeChannelCreated     = "channel_created"
	TypeChannelUpdated     = "channel_updated"
	TypeChannelDeleted     = "channel_deleted"
	TypeMemberAdded        = "member_added"
	TypeMemberRemoved      = "member_removed"
	TypeAdminAdded         = "admin_added"
	TypeAdminRemoved       = "admin_removed"
	TypeOwnerAdded         = "owner_added"
	TypeOwnerRemoved       = "owner_removed"
	TypeChannelLinkCreated = "channel_link_created"
	TypeChannelLinkUpdated = "channel_link_updated"
	TypeChannelLinkDeleted = "channel_link_deleted"
)

// Event describes a state change made through the API
type Event struct {
	Type       string    `json:"type"`
	ActorID    uint      `json:"actor_id"`
	ChannelID  uint      `json:"channel_id,omitempty"`
	UserID     uint      `json:"user_id,omitempty"`
	RecordID   uint      `json:"record_id,omitempty"`
	Name       string    `json:"name,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// New stamps an event with the current time
func New(eventType string, actorID uint) Event {
	return Event{Type: eventType, ActorID: actorID, OccurredAt: time.Now().UTC()}
}

// Key partitions events by channel, falling back to the affected user
func (e Event) Key() string {
	if e.ChannelID != 0 {
		return "channel-" + strconv.FormatUint(uint64(e.ChannelID), 10)
	}
	return "user-" + strconv.FormatUint(uint64(e.UserID), 10)
}

// Publisher delivers domain events; failures must not undo the change
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}
