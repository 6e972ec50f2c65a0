package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Like is a toggle relation: row presence means liked. Rows are hard
// deleted so the unique index on (user_id, target_kind, target_id) is
// the single arbiter of concurrent toggles.
type Like struct {
	ID         string    `gorm:"type:uuid;primary_key" json:"id"`
	UserID     string    `gorm:"type:uuid;not null;uniqueIndex:idx_likes_key" json:"user_id"`
	TargetKind string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_likes_key" json:"target_kind"`
	TargetID   string    `gorm:"type:uuid;not null;uniqueIndex:idx_likes_key;index" json:"target_id"`
	CreatedAt  time.Time `json:"created_at"`

	// Foreign keys
	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (l *Like) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return nil
}
