package entity

import "time"

type Subscription struct {
	ID           string    `json:"id"`
	SubscriberID string    `json:"subscriber_id"`
	ChannelID    string    `json:"channel_id"`
	CreatedAt    time.Time `json:"created_at"`
	Channel      *Profile  `json:"channel,omitempty"`
	Subscriber   *Profile  `json:"subscriber,omitempty"`
}
