package persistent

import (
	"clipstream/internal/entity"
	"clipstream/pkg/models"
	"clipstream/pkg/pagination"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SubscriptionRepository interface {
	// Toggle flips the subscription for (subscriberID, channelID) the same
	// way LikeRepository.Toggle does for likes.
	Toggle(subscriberID, channelID string) (bool, *entity.Subscription, error)
	IsSubscribed(subscriberID, channelID string) (bool, error)
	CountSubscribers(channelID string) (int64, error)
	ListChannels(subscriberID string, p pagination.Params) ([]*entity.Subscription, int64, error)
	ListSubscribers(channelID string, p pagination.Params) ([]*entity.Subscription, int64, error)
}

type subscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) Toggle(subscriberID, channelID string) (bool, *entity.Subscription, error) {
	var (
		active bool
		record *entity.Subscription
	)

	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("subscriber_id = ? AND channel_id = ?", subscriberID, channelID).
			Delete(&models.Subscription{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			active = false
			return nil
		}

		subModel := &models.Subscription{
			SubscriberID: subscriberID,
			ChannelID:    channelID,
		}
		ins := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(subModel)
		if ins.Error != nil {
			return ins.Error
		}

		active = true
		if ins.RowsAffected == 0 {
			var existing models.Subscription
			err := tx.Where("subscriber_id = ? AND channel_id = ?", subscriberID, channelID).
				First(&existing).Error
			if err != nil {
				return err
			}
			record = ToSubscriptionEntity(&existing)
			return nil
		}

		record = ToSubscriptionEntity(subModel)
		return nil
	})

	return active, record, err
}

func (r *subscriptionRepository) IsSubscribed(subscriberID, channelID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Subscription{}).
		Where("subscriber_id = ? AND channel_id = ?", subscriberID, channelID).
		Count(&count).Error
	return count > 0, err
}

func (r *subscriptionRepository) CountSubscribers(channelID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Subscription{}).Where("channel_id = ?", channelID).Count(&count).Error
	return count, err
}

func (r *subscriptionRepository) ListChannels(subscriberID string, p pagination.Params) ([]*entity.Subscription, int64, error) {
	var total int64
	if err := r.db.Model(&models.Subscription{}).Where("subscriber_id = ?", subscriberID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var subModels []models.Subscription
	err := r.db.Preload("Channel").
		Where("subscriber_id = ?", subscriberID).
		Order(p.OrderBy(nil)).
		Limit(p.Limit).
		Offset(p.Offset()).
		Find(&subModels).Error
	if err != nil {
		return nil, 0, err
	}

	subs := make([]*entity.Subscription, len(subModels))
	for i := range subModels {
		subs[i] = ToSubscriptionEntity(&subModels[i])
	}
	return subs, total, nil
}

func (r *subscriptionRepository) ListSubscribers(channelID string, p pagination.Params) ([]*entity.Subscription, int64, error) {
	var total int64
	if err := r.db.Model(&models.Subscription{}).Where("channel_id = ?", channelID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var subModels []models.Subscription
	err := r.db.Preload("Subscriber").
		Where("channel_id = ?", channelID).
		Order(p.OrderBy(nil)).
		Limit(p.Limit).
		Offset(p.Offset()).
		Find(&subModels).Error
	if err != nil {
		return nil, 0, err
	}

	subs := make([]*entity.Subscription, len(subModels))
	for i := range subModels {
		subs[i] = ToSubscriptionEntity(&subModels[i])
	}
	return subs, total, nil
}
