package usecase

import (
	"context"
	"fmt"
	"strconv"

	"clipstream/internal/entity"
	"clipstream/internal/repo/persistent"
	"clipstream/pkg/apperr"
	"clipstream/pkg/logger"
	"clipstream/pkg/pagination"
	"clipstream/pkg/queue"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type LikeUseCase interface {
	// Toggle flips the actor's like on the target. The returned bool is
	// the state after the call: true means the like now exists.
	Toggle(actorID string, kind entity.TargetKind, targetID string) (bool, *entity.Like, error)
	IsLiked(actorID string, kind entity.TargetKind, targetID string) (bool, error)
	Count(kind entity.TargetKind, targetID string) (int64, error)
	ListLikedVideos(actorID string, p pagination.Params) ([]*entity.Video, pagination.Meta, error)
}

type likeUseCase struct {
	likeRepo    persistent.LikeRepository
	videoRepo   persistent.VideoRepository
	commentRepo persistent.CommentRepository
	tweetRepo   persistent.TweetRepository
	redisClient *redis.Client
	queueClient *queue.Client
	logger      *logger.Logger
}

func NewLikeUseCase(
	likeRepo persistent.LikeRepository,
	videoRepo persistent.VideoRepository,
	commentRepo persistent.CommentRepository,
	tweetRepo persistent.TweetRepository,
	redisClient *redis.Client,
	queueClient *queue.Client,
	logger *logger.Logger,
) LikeUseCase {
	return &likeUseCase{
		likeRepo:    likeRepo,
		videoRepo:   videoRepo,
		commentRepo: commentRepo,
		tweetRepo:   tweetRepo,
		redisClient: redisClient,
		queueClient: queueClient,
		logger:      logger,
	}
}

func likeCountKey(kind entity.TargetKind, targetID string) string {
	return fmt.Sprintf("%s:likes:%s", string(kind), targetID)
}

func (uc *likeUseCase) Toggle(actorID string, kind entity.TargetKind, targetID string) (bool, *entity.Like, error) {
	if actorID == "" {
		return false, nil, apperr.Unauthenticated("authentication required")
	}

	target, err := uc.validTarget(kind, targetID)
	if err != nil {
		return false, nil, err
	}

	active, record, err := uc.likeRepo.Toggle(actorID, target)
	if err != nil {
		uc.logger.Error("Failed to toggle like: %v", err)
		return false, nil, apperr.Internal(err)
	}

	// Invalidate the cached counter instead of adjusting it: an Incr on
	// a cold key would invent a count of 1. The next Count rebuilds it
	// from the database.
	ctx := context.Background()
	if err := uc.redisClient.Del(ctx, likeCountKey(kind, targetID)).Err(); err != nil {
		uc.logger.Error("Failed to invalidate like counter: %v", err)
	}

	if active {
		uc.notifyLike(actorID, target)
	}

	return active, record, nil
}

func (uc *likeUseCase) IsLiked(actorID string, kind entity.TargetKind, targetID string) (bool, error) {
	target, err := entity.NewLikeTarget(kind, targetID)
	if err != nil {
		return false, apperr.Validation("unknown like target kind")
	}

	liked, err := uc.likeRepo.IsLiked(actorID, target)
	if err != nil {
		uc.logger.Error("Failed to check like status: %v", err)
		return false, apperr.Internal(err)
	}
	return liked, nil
}

func (uc *likeUseCase) Count(kind entity.TargetKind, targetID string) (int64, error) {
	target, err := uc.validTarget(kind, targetID)
	if err != nil {
		return 0, err
	}

	ctx := context.Background()
	redisKey := likeCountKey(kind, targetID)

	countStr, err := uc.redisClient.Get(ctx, redisKey).Result()
	if err == nil {
		count, _ := strconv.ParseInt(countStr, 10, 64)
		return count, nil
	}

	count, err := uc.likeRepo.Count(target)
	if err != nil {
		uc.logger.Error("Failed to count likes: %v", err)
		return 0, apperr.Internal(err)
	}

	uc.redisClient.Set(ctx, redisKey, count, 0)
	return count, nil
}

func (uc *likeUseCase) ListLikedVideos(actorID string, p pagination.Params) ([]*entity.Video, pagination.Meta, error) {
	videos, total, err := uc.likeRepo.ListLikedVideos(actorID, p)
	if err != nil {
		uc.logger.Error("Failed to list liked videos: %v", err)
		return nil, pagination.Meta{}, apperr.Internal(err)
	}
	return videos, pagination.NewMeta(total, p), nil
}

// validTarget validates the reference and confirms the target entity
// exists, so no relation row can point at nothing.
func (uc *likeUseCase) validTarget(kind entity.TargetKind, targetID string) (entity.LikeTarget, error) {
	target, err := entity.NewLikeTarget(kind, targetID)
	if err != nil {
		return entity.LikeTarget{}, apperr.Validation("unknown like target kind")
	}
	if _, err := uuid.Parse(targetID); err != nil {
		return entity.LikeTarget{}, apperr.Validation(fmt.Sprintf("invalid %s id", kind))
	}

	var (
		exists   bool
		checkErr error
	)
	switch kind {
	case entity.TargetVideo:
		exists, checkErr = uc.videoRepo.Exists(targetID)
	case entity.TargetComment:
		exists, checkErr = uc.commentRepo.Exists(targetID)
	case entity.TargetTweet:
		exists, checkErr = uc.tweetRepo.Exists(targetID)
	}
	if checkErr != nil {
		uc.logger.Error("Failed to check %s existence: %v", kind, checkErr)
		return entity.LikeTarget{}, apperr.Internal(checkErr)
	}
	if !exists {
		return entity.LikeTarget{}, apperr.NotFound(fmt.Sprintf("%s not found", kind))
	}

	return target, nil
}

func (uc *likeUseCase) notifyLike(actorID string, target entity.LikeTarget) {
	if uc.queueClient == nil || target.Kind != entity.TargetVideo {
		return
	}

	video, err := uc.videoRepo.GetByID(target.ID)
	if err != nil || video.OwnerID == actorID {
		return
	}

	go func() {
		task := map[string]interface{}{
			"type":     "like",
			"user_id":  video.OwnerID,
			"liker_id": actorID,
			"video_id": target.ID,
			"priority": 3,
		}
		if err := uc.queueClient.PublishNotificationTask(task); err != nil {
			uc.logger.Error("Failed to publish like notification: %v", err)
		}
	}()
}
