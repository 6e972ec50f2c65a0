package entity

import (
	"fmt"
	"time"
)

type TargetKind string

const (
	TargetVideo   TargetKind = "video"
	TargetComment TargetKind = "comment"
	TargetTweet   TargetKind = "tweet"
)

// LikeTarget is the tagged reference a like points at: exactly one kind,
// one id.
type LikeTarget struct {
	Kind TargetKind `json:"kind"`
	ID   string     `json:"id"`
}

func NewLikeTarget(kind TargetKind, id string) (LikeTarget, error) {
	switch kind {
	case TargetVideo, TargetComment, TargetTweet:
	default:
		return LikeTarget{}, fmt.Errorf("unknown like target kind: %q", kind)
	}
	return LikeTarget{Kind: kind, ID: id}, nil
}

type Like struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id"`
	Target    LikeTarget `json:"target"`
	CreatedAt time.Time  `json:"created_at"`
}
