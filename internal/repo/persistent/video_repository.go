package persistent

import (
	"clipstream/internal/entity"
	"clipstream/pkg/models"
	"clipstream/pkg/pagination"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// VideoFilter narrows video listings. Query is a case-insensitive
// substring match on the title.
type VideoFilter struct {
	Query         string
	OwnerID       string
	PublishedOnly bool
}

type VideoRepository interface {
	Create(video *entity.Video) error
	GetByID(id string) (*entity.Video, error)
	List(filter VideoFilter, p pagination.Params) ([]*entity.Video, int64, error)
	Update(video *entity.Video) error
	Delete(id string) error
	Exists(id string) (bool, error)
	IncrementViews(id string) error
	SetPublished(id string, published bool) error
	CountByOwner(ownerID string) (int64, error)
	SumViewsByOwner(ownerID string) (int64, error)
}

type videoRepository struct {
	db *gorm.DB
}

func NewVideoRepository(db *gorm.DB) VideoRepository {
	return &videoRepository{db: db}
}

var videoSortColumns = map[string]string{
	"views": "views DESC",
}

func (r *videoRepository) Create(video *entity.Video) error {
	videoModel := ToVideoModel(video)
	if videoModel.ID == "" {
		videoModel.ID = uuid.New().String()
	}
	if err := r.db.Create(videoModel).Error; err != nil {
		return err
	}
	*video = *ToVideoEntity(videoModel)
	return nil
}

func (r *videoRepository) GetByID(id string) (*entity.Video, error) {
	var videoModel models.Video
	if err := r.db.Preload("Owner").Where("id = ?", id).First(&videoModel).Error; err != nil {
		return nil, err
	}
	return ToVideoEntity(&videoModel), nil
}

func (r *videoRepository) filtered(filter VideoFilter) *gorm.DB {
	query := r.db.Model(&models.Video{})
	if filter.PublishedOnly {
		query = query.Where("published = ?", true)
	}
	if filter.OwnerID != "" {
		query = query.Where("owner_id = ?", filter.OwnerID)
	}
	if filter.Query != "" {
		query = query.Where("title ILIKE ?", "%"+filter.Query+"%")
	}
	return query
}

func (r *videoRepository) List(filter VideoFilter, p pagination.Params) ([]*entity.Video, int64, error) {
	var total int64
	if err := r.filtered(filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var videoModels []models.Video
	err := r.filtered(filter).
		Preload("Owner").
		Order(p.OrderBy(videoSortColumns)).
		Limit(p.Limit).
		Offset(p.Offset()).
		Find(&videoModels).Error
	if err != nil {
		return nil, 0, err
	}

	videos := make([]*entity.Video, len(videoModels))
	for i := range videoModels {
		videos[i] = ToVideoEntity(&videoModels[i])
	}
	return videos, total, nil
}

func (r *videoRepository) Update(video *entity.Video) error {
	return r.db.Model(&models.Video{}).Where("id = ?", video.ID).Updates(map[string]interface{}{
		"title":         video.Title,
		"description":   video.Description,
		"thumbnail_url": video.ThumbnailURL,
	}).Error
}

func (r *videoRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&models.Video{}).Error
}

func (r *videoRepository) Exists(id string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Video{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *videoRepository) IncrementViews(id string) error {
	return r.db.Model(&models.Video{}).Where("id = ?", id).
		UpdateColumn("views", clause.Expr{SQL: "views + ?", Vars: []interface{}{1}}).Error
}

func (r *videoRepository) SetPublished(id string, published bool) error {
	return r.db.Model(&models.Video{}).Where("id = ?", id).Update("published", published).Error
}

func (r *videoRepository) CountByOwner(ownerID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Video{}).Where("owner_id = ?", ownerID).Count(&count).Error
	return count, err
}

func (r *videoRepository) SumViewsByOwner(ownerID string) (int64, error) {
	var views int64
	err := r.db.Model(&models.Video{}).Where("owner_id = ?", ownerID).
		Select("COALESCE(SUM(views), 0)").Scan(&views).Error
	return views, err
}
