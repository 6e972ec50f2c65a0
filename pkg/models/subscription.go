package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Subscription is a toggle relation between a subscriber and a channel
// (both users). Hard deleted; the unique index enforces at most one row
// per pair.
type Subscription struct {
	ID           string    `gorm:"type:uuid;primary_key" json:"id"`
	SubscriberID string    `gorm:"type:uuid;not null;uniqueIndex:idx_subscriptions_key" json:"subscriber_id"`
	ChannelID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_subscriptions_key;index" json:"channel_id"`
	CreatedAt    time.Time `json:"created_at"`

	// Foreign keys
	Subscriber User `gorm:"foreignKey:SubscriberID" json:"-"`
	Channel    User `gorm:"foreignKey:ChannelID" json:"-"`
}

func (s *Subscription) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}
