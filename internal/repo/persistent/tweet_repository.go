package persistent

import (
	"clipstream/internal/entity"
	"clipstream/pkg/models"
	"clipstream/pkg/pagination"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TweetRepository interface {
	Create(tweet *entity.Tweet) error
	GetByID(id string) (*entity.Tweet, error)
	List(query, ownerID string, p pagination.Params) ([]*entity.Tweet, int64, error)
	Update(tweet *entity.Tweet) error
	Delete(id string) error
	Exists(id string) (bool, error)
}

type tweetRepository struct {
	db *gorm.DB
}

func NewTweetRepository(db *gorm.DB) TweetRepository {
	return &tweetRepository{db: db}
}

func (r *tweetRepository) Create(tweet *entity.Tweet) error {
	tweetModel := ToTweetModel(tweet)
	if tweetModel.ID == "" {
		tweetModel.ID = uuid.New().String()
	}
	if err := r.db.Create(tweetModel).Error; err != nil {
		return err
	}
	*tweet = *ToTweetEntity(tweetModel)
	return nil
}

func (r *tweetRepository) GetByID(id string) (*entity.Tweet, error) {
	var tweetModel models.Tweet
	if err := r.db.Preload("Owner").Where("id = ?", id).First(&tweetModel).Error; err != nil {
		return nil, err
	}
	return ToTweetEntity(&tweetModel), nil
}

func (r *tweetRepository) filtered(query, ownerID string) *gorm.DB {
	q := r.db.Model(&models.Tweet{})
	if ownerID != "" {
		q = q.Where("owner_id = ?", ownerID)
	}
	if query != "" {
		q = q.Where("content ILIKE ?", "%"+query+"%")
	}
	return q
}

func (r *tweetRepository) List(query, ownerID string, p pagination.Params) ([]*entity.Tweet, int64, error) {
	var total int64
	if err := r.filtered(query, ownerID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tweetModels []models.Tweet
	err := r.filtered(query, ownerID).
		Preload("Owner").
		Order(p.OrderBy(nil)).
		Limit(p.Limit).
		Offset(p.Offset()).
		Find(&tweetModels).Error
	if err != nil {
		return nil, 0, err
	}

	tweets := make([]*entity.Tweet, len(tweetModels))
	for i := range tweetModels {
		tweets[i] = ToTweetEntity(&tweetModels[i])
	}
	return tweets, total, nil
}

func (r *tweetRepository) Update(tweet *entity.Tweet) error {
	return r.db.Model(&models.Tweet{}).Where("id = ?", tweet.ID).
		Update("content", tweet.Content).Error
}

func (r *tweetRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&models.Tweet{}).Error
}

func (r *tweetRepository) Exists(id string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Tweet{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
