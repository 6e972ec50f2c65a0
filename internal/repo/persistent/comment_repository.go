package persistent

import (
	"clipstream/internal/entity"
	"clipstream/pkg/models"
	"clipstream/pkg/pagination"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(comment *entity.Comment) error
	GetByID(id string) (*entity.Comment, error)
	ListByVideo(videoID string, p pagination.Params) ([]*entity.Comment, int64, error)
	Update(comment *entity.Comment) error
	Delete(id string) error
	Exists(id string) (bool, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(comment *entity.Comment) error {
	commentModel := ToCommentModel(comment)
	if commentModel.ID == "" {
		commentModel.ID = uuid.New().String()
	}
	if err := r.db.Create(commentModel).Error; err != nil {
		return err
	}
	*comment = *ToCommentEntity(commentModel)
	return nil
}

func (r *commentRepository) GetByID(id string) (*entity.Comment, error) {
	var commentModel models.Comment
	if err := r.db.Preload("Owner").Where("id = ?", id).First(&commentModel).Error; err != nil {
		return nil, err
	}
	return ToCommentEntity(&commentModel), nil
}

func (r *commentRepository) ListByVideo(videoID string, p pagination.Params) ([]*entity.Comment, int64, error) {
	var total int64
	if err := r.db.Model(&models.Comment{}).Where("video_id = ?", videoID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var commentModels []models.Comment
	err := r.db.Preload("Owner").
		Where("video_id = ?", videoID).
		Order(p.OrderBy(nil)).
		Limit(p.Limit).
		Offset(p.Offset()).
		Find(&commentModels).Error
	if err != nil {
		return nil, 0, err
	}

	comments := make([]*entity.Comment, len(commentModels))
	for i := range commentModels {
		comments[i] = ToCommentEntity(&commentModels[i])
	}
	return comments, total, nil
}

func (r *commentRepository) Update(comment *entity.Comment) error {
	return r.db.Model(&models.Comment{}).Where("id = ?", comment.ID).
		Update("content", comment.Content).Error
}

func (r *commentRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&models.Comment{}).Error
}

func (r *commentRepository) Exists(id string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Comment{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
