package usecase

import (
	"errors"

	"clipstream/internal/entity"
	"clipstream/internal/repo/persistent"
	"clipstream/pkg/apperr"
	"clipstream/pkg/logger"
	"clipstream/pkg/pagination"
	"clipstream/pkg/queue"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CommentUseCase interface {
	Add(actorID, videoID, content string) (*entity.Comment, error)
	ListByVideo(videoID string, p pagination.Params) ([]*entity.Comment, pagination.Meta, error)
	Update(commentID string, actor entity.Actor, content string) (*entity.Comment, error)
	Delete(commentID string, actor entity.Actor) error
}

type commentUseCase struct {
	commentRepo persistent.CommentRepository
	videoRepo   persistent.VideoRepository
	likeRepo    persistent.LikeRepository
	queueClient *queue.Client
	logger      *logger.Logger
}

func NewCommentUseCase(
	commentRepo persistent.CommentRepository,
	videoRepo persistent.VideoRepository,
	likeRepo persistent.LikeRepository,
	queueClient *queue.Client,
	logger *logger.Logger,
) CommentUseCase {
	return &commentUseCase{
		commentRepo: commentRepo,
		videoRepo:   videoRepo,
		likeRepo:    likeRepo,
		queueClient: queueClient,
		logger:      logger,
	}
}

func (uc *commentUseCase) Add(actorID, videoID, content string) (*entity.Comment, error) {
	if actorID == "" {
		return nil, apperr.Unauthenticated("authentication required")
	}
	if content == "" {
		return nil, apperr.Validation("content is required")
	}
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

	comment := &entity.Comment{
		OwnerID: actorID,
		VideoID: videoID,
		Content: content,
	}

	if err := uc.commentRepo.Create(comment); err != nil {
		uc.logger.Error("Failed to create comment: %v", err)
		return nil, apperr.Internal(err)
	}

	uc.notifyComment(actorID, video, comment)
	return comment, nil
}

func (uc *commentUseCase) ListByVideo(videoID string, p pagination.Params) ([]*entity.Comment, pagination.Meta, error) {
	if _, err := uuid.Parse(videoID); err != nil {
		return nil, pagination.Meta{}, apperr.Validation("invalid video id")
	}

	exists, err := uc.videoRepo.Exists(videoID)
	if err != nil {
		return nil, pagination.Meta{}, apperr.Internal(err)
	}
	if !exists {
		return nil, pagination.Meta{}, apperr.NotFound("video not found")
	}

	comments, total, err := uc.commentRepo.ListByVideo(videoID, p)
	if err != nil {
		uc.logger.Error("Failed to list comments: %v", err)
		return nil, pagination.Meta{}, apperr.Internal(err)
	}
	return comments, pagination.NewMeta(total, p), nil
}

func (uc *commentUseCase) Update(commentID string, actor entity.Actor, content string) (*entity.Comment, error) {
	if content == "" {
		return nil, apperr.Validation("content is required")
	}

	comment, err := uc.ownedComment(commentID, actor)
	if err != nil {
		return nil, err
	}

	comment.Content = content
	if err := uc.commentRepo.Update(comment); err != nil {
		uc.logger.Error("Failed to update comment: %v", err)
		return nil, apperr.Internal(err)
	}

	return comment, nil
}

func (uc *commentUseCase) Delete(commentID string, actor entity.Actor) error {
	if _, err := uc.ownedComment(commentID, actor); err != nil {
		return err
	}

	if err := uc.commentRepo.Delete(commentID); err != nil {
		uc.logger.Error("Failed to delete comment: %v", err)
		return apperr.Internal(err)
	}

	if err := uc.likeRepo.DeleteForTarget(entity.LikeTarget{Kind: entity.TargetComment, ID: commentID}); err != nil {
		uc.logger.Error("Failed to delete likes for comment %s: %v", commentID, err)
	}

	return nil
}

func (uc *commentUseCase) ownedComment(commentID string, actor entity.Actor) (*entity.Comment, error) {
	if _, err := uuid.Parse(commentID); err != nil {
		return nil, apperr.Validation("invalid comment id")
	}

	comment, err := uc.commentRepo.GetByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("comment not found")
		}
		return nil, apperr.Internal(err)
	}

	if !actor.CanModify(comment.OwnerID) {
		return nil, apperr.Forbidden("you do not own this comment")
	}

	return comment, nil
}

func (uc *commentUseCase) notifyComment(actorID string, video *entity.Video, comment *entity.Comment) {
	if uc.queueClient == nil || video.OwnerID == actorID {
		return
	}

	go func() {
		task := map[string]interface{}{
			"type":         "comment",
			"user_id":      video.OwnerID,
			"commenter_id": actorID,
			"video_id":     video.ID,
			"comment_id":   comment.ID,
			"priority":     2,
		}
		if err := uc.queueClient.PublishNotificationTask(task); err != nil {
			uc.logger.Error("Failed to publish comment notification: %v", err)
		}
	}()
}
