package entity

// ChannelStats is the dashboard summary for a channel.
type ChannelStats struct {
	ChannelID   string `json:"channel_id"`
	Videos      int64  `json:"videos"`
	Views       int64  `json:"views"`
	Subscribers int64  `json:"subscribers"`
	Likes       int64  `json:"likes"`
}
