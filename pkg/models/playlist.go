package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Playlist struct {
	ID          string         `gorm:"type:uuid;primary_key" json:"id"`
	OwnerID     string         `gorm:"type:uuid;not null;index" json:"owner_id"`
	Name        string         `gorm:"not null" json:"name"`
	Description string         `json:"description"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Foreign keys
	Owner  User            `gorm:"foreignKey:OwnerID" json:"-"`
	Videos []PlaylistVideo `gorm:"foreignKey:PlaylistID" json:"videos"`
}

func (p *Playlist) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

// PlaylistVideo is a join row; the unique index keeps a playlist's video
// set free of duplicates.
type PlaylistVideo struct {
	ID         string    `gorm:"type:uuid;primary_key" json:"id"`
	PlaylistID string    `gorm:"type:uuid;not null;uniqueIndex:idx_playlist_video" json:"playlist_id"`
	VideoID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_playlist_video" json:"video_id"`
	Position   int       `gorm:"default:0" json:"position"`
	CreatedAt  time.Time `json:"created_at"`

	Video Video `gorm:"foreignKey:VideoID" json:"-"`
}

func (pv *PlaylistVideo) BeforeCreate(tx *gorm.DB) error {
	if pv.ID == "" {
		pv.ID = uuid.New().String()
	}
	return nil
}
