package model

// ChannelVideosRequest is the body of POST /api/channel-videos.
type ChannelVideosRequest struct {
	ChannelURL string `json:"channel_url"`
}

// ChannelRef is the nested channel object on each video entry.
type ChannelRef struct {
	Name string `json:"name"`
}

// ChannelVideo is one entry in a channel listing. Position is the
// 1-based index in feed order.
type ChannelVideo struct {
	Position  int        `json:"position"`
	Title     string     `json:"title"`
	Link      string     `json:"link"`
	Thumbnail string     `json:"thumbnail"`
	Channel   ChannelRef `json:"channel"`
}

// ChannelVideosResponse is the API response for a channel lookup.
// Videos keeps feed order; an empty slice is a valid result.
type ChannelVideosResponse struct {
	ChannelName string         `json:"channel_name"`
	Videos      []ChannelVideo `json:"videos"`
}
