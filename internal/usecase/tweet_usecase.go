package usecase

import (
	"errors"

	"clipstream/internal/entity"
	"clipstream/internal/repo/persistent"
	"clipstream/pkg/apperr"
	"clipstream/pkg/logger"
	"clipstream/pkg/pagination"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TweetUseCase interface {
	Create(actorID, content string) (*entity.Tweet, error)
	List(query string, p pagination.Params) ([]*entity.Tweet, pagination.Meta, error)
	ListByOwner(ownerID string, p pagination.Params) ([]*entity.Tweet, pagination.Meta, error)
	Update(tweetID string, actor entity.Actor, content string) (*entity.Tweet, error)
	Delete(tweetID string, actor entity.Actor) error
}

type tweetUseCase struct {
	tweetRepo persistent.TweetRepository
	userRepo  persistent.UserRepository
	likeRepo  persistent.LikeRepository
	logger    *logger.Logger
}

func NewTweetUseCase(
	tweetRepo persistent.TweetRepository,
	userRepo persistent.UserRepository,
	likeRepo persistent.LikeRepository,
	logger *logger.Logger,
) TweetUseCase {
	return &tweetUseCase{
		tweetRepo: tweetRepo,
		userRepo:  userRepo,
		likeRepo:  likeRepo,
		logger:    logger,
	}
}

func validTweetContent(content string) error {
	if content == "" {
		return apperr.Validation("content is required")
	}
	if len([]rune(content)) > entity.MaxTweetLength {
		return apperr.Validation("content exceeds 280 characters")
	}
	return nil
}

func (uc *tweetUseCase) Create(actorID, content string) (*entity.Tweet, error) {
	if actorID == "" {
		return nil, apperr.Unauthenticated("authentication required")
	}
	if err := validTweetContent(content); err != nil {
		return nil, err
	}

	tweet := &entity.Tweet{
		OwnerID: actorID,
		Content: content,
	}

	if err := uc.tweetRepo.Create(tweet); err != nil {
		uc.logger.Error("Failed to create tweet: %v", err)
		return nil, apperr.Internal(err)
	}

	return tweet, nil
}

func (uc *tweetUseCase) List(query string, p pagination.Params) ([]*entity.Tweet, pagination.Meta, error) {
	tweets, total, err := uc.tweetRepo.List(query, "", p)
	if err != nil {
		uc.logger.Error("Failed to list tweets: %v", err)
		return nil, pagination.Meta{}, apperr.Internal(err)
	}
	return tweets, pagination.NewMeta(total, p), nil
}

func (uc *tweetUseCase) ListByOwner(ownerID string, p pagination.Params) ([]*entity.Tweet, pagination.Meta, error) {
	if _, err := uuid.Parse(ownerID); err != nil {
		return nil, pagination.Meta{}, apperr.Validation("invalid user id")
	}

	exists, err := uc.userRepo.Exists(ownerID)
	if err != nil {
		return nil, pagination.Meta{}, apperr.Internal(err)
	}
	if !exists {
		return nil, pagination.Meta{}, apperr.NotFound("user not found")
	}

	tweets, total, err := uc.tweetRepo.List("", ownerID, p)
	if err != nil {
		uc.logger.Error("Failed to list tweets for user %s: %v", ownerID, err)
		return nil, pagination.Meta{}, apperr.Internal(err)
	}
	return tweets, pagination.NewMeta(total, p), nil
}

func (uc *tweetUseCase) Update(tweetID string, actor entity.Actor, content string) (*entity.Tweet, error) {
	if err := validTweetContent(content); err != nil {
		return nil, err
	}

	tweet, err := uc.ownedTweet(tweetID, actor)
	if err != nil {
		return nil, err
	}

	tweet.Content = content
	if err := uc.tweetRepo.Update(tweet); err != nil {
		uc.logger.Error("Failed to update tweet: %v", err)
		return nil, apperr.Internal(err)
	}

	return tweet, nil
}

func (uc *tweetUseCase) Delete(tweetID string, actor entity.Actor) error {
	if _, err := uc.ownedTweet(tweetID, actor); err != nil {
		return err
	}

	if err := uc.tweetRepo.Delete(tweetID); err != nil {
		uc.logger.Error("Failed to delete tweet: %v", err)
		return apperr.Internal(err)
	}

	if err := uc.likeRepo.DeleteForTarget(entity.LikeTarget{Kind: entity.TargetTweet, ID: tweetID}); err != nil {
		uc.logger.Error("Failed to delete likes for tweet %s: %v", tweetID, err)
	}

	return nil
}

func (uc *tweetUseCase) ownedTweet(tweetID string, actor entity.Actor) (*entity.Tweet, error) {
	if _, err := uuid.Parse(tweetID); err != nil {
		return nil, apperr.Validation("invalid tweet id")
	}

	tweet, err := uc.tweetRepo.GetByID(tweetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("tweet not found")
		}
		return nil, apperr.Internal(err)
	}

	if !actor.CanModify(tweet.OwnerID) {
		return nil, apperr.Forbidden("you do not own this tweet")
	}

	return tweet, nil
}
