package usecase

import (
	"clipstream/internal/entity"
	"clipstream/internal/repo/persistent"
	"clipstream/pkg/apperr"
	"clipstream/pkg/logger"
	"clipstream/pkg/pagination"
	"clipstream/pkg/queue"

	"github.com/google/uuid"
)

type SubscriptionUseCase interface {
	// Toggle flips the actor's subscription to the channel. Returns the
	// state after the call: true means subscribed.
	Toggle(actorID, channelID string) (bool, *entity.Subscription, error)
	IsSubscribed(actorID, channelID string) (bool, error)
	CountSubscribers(channelID string) (int64, error)
	ListChannels(actorID string, p pagination.Params) ([]*entity.Subscription, pagination.Meta, error)
	ListSubscribers(channelID string, p pagination.Params) ([]*entity.Subscription, pagination.Meta, error)
}

type subscriptionUseCase struct {
	subscriptionRepo persistent.SubscriptionRepository
	userRepo         persistent.UserRepository
	queueClient      *queue.Client
	logger           *logger.Logger
}

func NewSubscriptionUseCase(
	subscriptionRepo persistent.SubscriptionRepository,
	userRepo persistent.UserRepository,
	queueClient *queue.Client,
	logger *logger.Logger,
) SubscriptionUseCase {
	return &subscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		userRepo:         userRepo,
		queueClient:      queueClient,
		logger:           logger,
	}
}

func (uc *subscriptionUseCase) Toggle(actorID, channelID string) (bool, *entity.Subscription, error) {
	if actorID == "" {
		return false, nil, apperr.Unauthenticated("authentication required")
	}
	if _, err := uuid.Parse(channelID); err != nil {
		return false, nil, apperr.Validation("invalid channel id")
	}
	if channelID == actorID {
		return false, nil, apperr.Validation("cannot subscribe to your own channel")
	}

	exists, err := uc.userRepo.Exists(channelID)
	if err != nil {
		uc.logger.Error("Failed to check channel existence: %v", err)
		return false, nil, apperr.Internal(err)
	}
	if !exists {
		return false, nil, apperr.NotFound("channel not found")
	}

	active, record, err := uc.subscriptionRepo.Toggle(actorID, channelID)
	if err != nil {
		uc.logger.Error("Failed to toggle subscription: %v", err)
		return false, nil, apperr.Internal(err)
	}

	if active {
		uc.notifySubscription(actorID, channelID)
	}

	return active, record, nil
}

func (uc *subscriptionUseCase) IsSubscribed(actorID, channelID string) (bool, error) {
	subscribed, err := uc.subscriptionRepo.IsSubscribed(actorID, channelID)
	if err != nil {
		uc.logger.Error("Failed to check subscription status: %v", err)
		return false, apperr.Internal(err)
	}
	return subscribed, nil
}

func (uc *subscriptionUseCase) CountSubscribers(channelID string) (int64, error) {
	if _, err := uuid.Parse(channelID); err != nil {
		return 0, apperr.Validation("invalid channel id")
	}

	count, err := uc.subscriptionRepo.CountSubscribers(channelID)
	if err != nil {
		uc.logger.Error("Failed to count subscribers: %v", err)
		return 0, apperr.Internal(err)
	}
	return count, nil
}

func (uc *subscriptionUseCase) ListChannels(actorID string, p pagination.Params) ([]*entity.Subscription, pagination.Meta, error) {
	subs, total, err := uc.subscriptionRepo.ListChannels(actorID, p)
	if err != nil {
		uc.logger.Error("Failed to list subscribed channels: %v", err)
		return nil, pagination.Meta{}, apperr.Internal(err)
	}
	return subs, pagination.NewMeta(total, p), nil
}

func (uc *subscriptionUseCase) ListSubscribers(channelID string, p pagination.Params) ([]*entity.Subscription, pagination.Meta, error) {
	if _, err := uuid.Parse(channelID); err != nil {
		return nil, pagination.Meta{}, apperr.Validation("invalid channel id")
	}

	exists, err := uc.userRepo.Exists(channelID)
	if err != nil {
		return nil, pagination.Meta{}, apperr.Internal(err)
	}
	if !exists {
		return nil, pagination.Meta{}, apperr.NotFound("channel not found")
	}

	subs, total, err := uc.subscriptionRepo.ListSubscribers(channelID, p)
	if err != nil {
		uc.logger.Error("Failed to list subscribers: %v", err)
		return nil, pagination.Meta{}, apperr.Internal(err)
	}
	return subs, pagination.NewMeta(total, p), nil
}

func (uc *subscriptionUseCase) notifySubscription(actorID, channelID string) {
	if uc.queueClient == nil {
		return
	}

	go func() {
		task := map[string]interface{}{
			"type":          "subscription",
			"user_id":       channelID,
			"subscriber_id": actorID,
			"priority":      4,
		}
		if err := uc.queueClient.PublishNotificationTask(task); err != nil {
			uc.logger.Error("Failed to publish subscription notification: %v", err)
		}
	}()
}
