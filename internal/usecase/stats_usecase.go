package usecase

import (
	"clipstream/internal/entity"
	"clipstream/internal/repo/persistent"
	"clipstream/pkg/apperr"
	"clipstream/pkg/logger"

	"github.com/google/uuid"
)

type StatsUseCase interface {
	ChannelStats(channelID string) (*entity.ChannelStats, error)
}

type statsUseCase struct {
	userRepo         persistent.UserRepository
	videoRepo        persistent.VideoRepository
	likeRepo         persistent.LikeRepository
	subscriptionRepo persistent.SubscriptionRepository
	logger           *logger.Logger
}

func NewStatsUseCase(
	userRepo persistent.UserRepository,
	videoRepo persistent.VideoRepository,
	likeRepo persistent.LikeRepository,
	subscriptionRepo persistent.SubscriptionRepository,
	logger *logger.Logger,
) StatsUseCase {
	return &statsUseCase{
		userRepo:         userRepo,
		videoRepo:        videoRepo,
		likeRepo:         likeRepo,
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

func (uc *statsUseCase) ChannelStats(channelID string) (*entity.ChannelStats, error) {
	if _, err := uuid.Parse(channelID); err != nil {
		return nil, apperr.Validation("invalid channel id")
	}

	exists, err := uc.userRepo.Exists(channelID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if !exists {
		return nil, apperr.NotFound("channel not found")
	}

	videos, err := uc.videoRepo.CountByOwner(channelID)
	if err != nil {
		uc.logger.Error("Failed to count videos: %v", err)
		return nil, apperr.Internal(err)
	}

	views, err := uc.videoRepo.SumViewsByOwner(channelID)
	if err != nil {
		uc.logger.Error("Failed to sum views: %v", err)
		return nil, apperr.Internal(err)
	}

	subscribers, err := uc.subscriptionRepo.CountSubscribers(channelID)
	if err != nil {
		uc.logger.Error("Failed to count subscribers: %v", err)
		return nil, apperr.Internal(err)
	}

	likes, err := uc.likeRepo.CountForOwnerVideos(channelID)
	if err != nil {
		uc.logger.Error("Failed to count likes: %v", err)
		return nil, apperr.Internal(err)
	}

	return &entity.ChannelStats{
		ChannelID:   channelID,
		Videos:      videos,
		Views:       views,
		Subscribers: subscribers,
		Likes:       likes,
	}, nil
}
