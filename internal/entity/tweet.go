package entity

import "time"

// MaxTweetLength caps tweet content.
const MaxTweetLength = 280

type Tweet struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Owner     *Profile  `json:"owner,omitempty"`
}
