package usecase

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strconv"

	"clipstream/internal/entity"
	"clipstream/internal/repo/persistent"
	"clipstream/pkg/apperr"
	"clipstream/pkg/logger"
	"clipstream/pkg/pagination"
	"clipstream/pkg/s3"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type VideoUseCase interface {
	Upload(ownerID, title, description string, mediaFile, thumbnailFile *multipart.FileHeader) (*entity.Video, error)
	Get(videoID, viewerID string) (*entity.Video, int64, error)
	List(query string, p pagination.Params) ([]*entity.Video, pagination.Meta, error)
	ListByOwner(ownerID string, actor entity.Actor, p pagination.Params) ([]*entity.Video, pagination.Meta, error)
	Update(videoID string, actor entity.Actor, title, description *string) (*entity.Video, error)
	Delete(videoID string, actor entity.Actor) error
	TogglePublish(videoID string, actor entity.Actor) (*entity.Video, error)
}

type videoUseCase struct {
	videoRepo   persistent.VideoRepository
	likeRepo    persistent.LikeRepository
	s3Client    *s3.Client
	redisClient *redis.Client
	logger      *logger.Logger
}

func NewVideoUseCase(
	videoRepo persistent.VideoRepository,
	likeRepo persistent.LikeRepository,
	s3Client *s3.Client,
	redisClient *redis.Client,
	logger *logger.Logger,
) VideoUseCase {
	return &videoUseCase{
		videoRepo:   videoRepo,
		likeRepo:    likeRepo,
		s3Client:    s3Client,
		redisClient: redisClient,
		logger:      logger,
	}
}

func (uc *videoUseCase) Upload(ownerID, title, description string, mediaFile, thumbnailFile *multipart.FileHeader) (*entity.Video, error) {
	if title == "" {
		return nil, apperr.Validation("title is required")
	}
	if mediaFile == nil {
		return nil, apperr.Validation("video file is required")
	}

	src, err := mediaFile.Open()
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to open video file", err)
	}
	defer src.Close()

	fileKey := fmt.Sprintf("videos/%s/%s%s", ownerID, uuid.New().String(), filepath.Ext(mediaFile.Filename))
	contentType := mediaFile.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "video/mp4"
	}

	videoURL, err := uc.s3Client.UploadFile(fileKey, src, contentType)
	if err != nil {
		uc.logger.Error("Failed to upload video to S3: %v", err)
		return nil, apperr.Internal(err)
	}

	var thumbnailURL string
	if thumbnailFile != nil {
		thumbSrc, err := thumbnailFile.Open()
		if err != nil {
			return nil, apperr.Wrap(apperr.KindInternal, "failed to open thumbnail file", err)
		}
		defer thumbSrc.Close()

		thumbKey := fmt.Sprintf("thumbnails/%s/%s%s", ownerID, uuid.New().String(), filepath.Ext(thumbnailFile.Filename))
		thumbType := thumbnailFile.Header.Get("Content-Type")
		if thumbType == "" {
			thumbType = "image/jpeg"
		}

		thumbnailURL, err = uc.s3Client.UploadFile(thumbKey, thumbSrc, thumbType)
		if err != nil {
			uc.logger.Error("Failed to upload thumbnail to S3: %v", err)
			return nil, apperr.Internal(err)
		}
	}

	video := &entity.Video{
		OwnerID:      ownerID,
		Title:        title,
		Description:  description,
		VideoURL:     videoURL,
		ThumbnailURL: thumbnailURL,
		Published:    true,
	}

	if err := uc.videoRepo.Create(video); err != nil {
		uc.logger.Error("Failed to create video: %v", err)
		return nil, apperr.Internal(err)
	}

	return video, nil
}

// Get returns the video and its like count. A non-empty viewerID counts
// a view at most once per viewer.
func (uc *videoUseCase) Get(videoID, viewerID string) (*entity.Video, int64, error) {
	if _, err := uuid.Parse(videoID); err != nil {
		return nil, 0, apperr.Validation("invalid video id")
	}

	video, err := uc.videoRepo.GetByID(videoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, apperr.NotFound("video not found")
		}
		return nil, 0, apperr.Internal(err)
	}

	if viewerID != "" {
		uc.countView(videoID, viewerID, video)
	}

	likeCount, err := uc.likeCount(videoID)
	if err != nil {
		uc.logger.Error("Failed to get like count: %v", err)
		likeCount = 0
	}

	return video, likeCount, nil
}

func (uc *videoUseCase) countView(videoID, viewerID string, video *entity.Video) {
	ctx := context.Background()
	viewKey := fmt.Sprintf("video_viewed:%s:%s", videoID, viewerID)

	set, err := uc.redisClient.SetNX(ctx, viewKey, "1", 0).Result()
	if err != nil {
		uc.logger.Error("Failed to set view key in Redis: %v", err)
		return
	}
	if !set {
		return
	}

	if err := uc.videoRepo.IncrementViews(videoID); err != nil {
		uc.logger.Error("Failed to increment views: %v", err)
		return
	}
	video.Views++
}

func (uc *videoUseCase) likeCount(videoID string) (int64, error) {
	ctx := context.Background()
	redisKey := fmt.Sprintf("video:likes:%s", videoID)

	countStr, err := uc.redisClient.Get(ctx, redisKey).Result()
	if err == nil {
		count, _ := strconv.ParseInt(countStr, 10, 64)
		return count, nil
	}

	count, err := uc.likeRepo.Count(entity.LikeTarget{Kind: entity.TargetVideo, ID: videoID})
	if err != nil {
		return 0, err
	}

	uc.redisClient.Set(ctx, redisKey, count, 0)
	return count, nil
}

func (uc *videoUseCase) List(query string, p pagination.Params) ([]*entity.Video, pagination.Meta, error) {
	videos, total, err := uc.videoRepo.List(persistent.VideoFilter{
		Query:         query,
		PublishedOnly: true,
	}, p)
	if err != nil {
		uc.logger.Error("Failed to list videos: %v", err)
		return nil, pagination.Meta{}, apperr.Internal(err)
	}
	return videos, pagination.NewMeta(total, p), nil
}

// ListByOwner shows unpublished videos only to the owner (or an admin).
func (uc *videoUseCase) ListByOwner(ownerID string, actor entity.Actor, p pagination.Params) ([]*entity.Video, pagination.Meta, error) {
	if _, err := uuid.Parse(ownerID); err != nil {
		return nil, pagination.Meta{}, apperr.Validation("invalid user id")
	}

	filter := persistent.VideoFilter{
		OwnerID:       ownerID,
		PublishedOnly: !actor.CanModify(ownerID),
	}

	videos, total, err := uc.videoRepo.List(filter, p)
	if err != nil {
		uc.logger.Error("Failed to list videos for owner %s: %v", ownerID, err)
		return nil, pagination.Meta{}, apperr.Internal(err)
	}
	return videos, pagination.NewMeta(total, p), nil
}

func (uc *videoUseCase) Update(videoID string, actor entity.Actor, title, description *string) (*entity.Video, error) {
	video, err := uc.ownedVideo(videoID, actor)
	if err != nil {
		return nil, err
	}

	if title != nil {
		if *title == "" {
			return nil, apperr.Validation("title cannot be empty")
		}
		video.Title = *title
	}
	if description != nil {
		video.Description = *description
	}

	if err := uc.videoRepo.Update(video); err != nil {
		uc.logger.Error("Failed to update video: %v", err)
		return nil, apperr.Internal(err)
	}

	return video, nil
}

func (uc *videoUseCase) Delete(videoID string, actor entity.Actor) error {
	if _, err := uc.ownedVideo(videoID, actor); err != nil {
		return err
	}

	if err := uc.videoRepo.Delete(videoID); err != nil {
		uc.logger.Error("Failed to delete video: %v", err)
		return apperr.Internal(err)
	}

	// Drop relation rows pointing at the removed video.
	if err := uc.likeRepo.DeleteForTarget(entity.LikeTarget{Kind: entity.TargetVideo, ID: videoID}); err != nil {
		uc.logger.Error("Failed to delete likes for video %s: %v", videoID, err)
	}
	uc.redisClient.Del(context.Background(), fmt.Sprintf("video:likes:%s", videoID))

	return nil
}

func (uc *videoUseCase) TogglePublish(videoID string, actor entity.Actor) (*entity.Video, error) {
	video, err := uc.ownedVideo(videoID, actor)
	if err != nil {
		return nil, err
	}

	video.Published = !video.Published
	if err := uc.videoRepo.SetPublished(videoID, video.Published); err != nil {
		uc.logger.Error("Failed to toggle publish flag: %v", err)
		return nil, apperr.Internal(err)
	}

	return video, nil
}

func (uc *videoUseCase) ownedVideo(videoID string, actor entity.Actor) (*entity.Video, error) {
	if _, err := uuid.Parse(videoID); err != nil {
		return nil, apperr.Validation("invalid video id")
	}

	video, err := uc.videoRepo.GetByID(videoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("video not found")
		}
		return nil, apperr.Internal(err)
	}

	if !actor.CanModify(video.OwnerID) {
		return nil, apperr.Forbidden("you do not own this video")
	}

	return video, nil
}
