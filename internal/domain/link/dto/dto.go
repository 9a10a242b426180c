package dto

// LinkRequest is the body of PUT and POST /api/link
type LinkRequest struct {
	ID          *uint  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`
}

// ChannelLinkRequest is the body of PUT and POST /api/channellink/{channelId}.
// The channel always comes from the path.
type ChannelLinkRequest struct {
	ID        *uint  `json:"id"`
	Title     string `json:"title"`
	LinkID    uint   `json:"linkId"`
	ChannelID uint   `json:"channelId"`
}
