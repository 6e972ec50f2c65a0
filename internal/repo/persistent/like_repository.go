package persistent

import (
	"clipstream/internal/entity"
	"clipstream/pkg/models"
	"clipstream/pkg/pagination"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LikeRepository interface {
	// Toggle flips the like for (userID, target): deletes the row if it
	// exists, inserts it otherwise. Returns whether the like is active
	// after the call and, when active, the relation row.
	Toggle(userID string, target entity.LikeTarget) (bool, *entity.Like, error)
	IsLiked(userID string, target entity.LikeTarget) (bool, error)
	Count(target entity.LikeTarget) (int64, error)
	ListLikedVideos(userID string, p pagination.Params) ([]*entity.Video, int64, error)
	CountForOwnerVideos(ownerID string) (int64, error)
	DeleteForTarget(target entity.LikeTarget) error
}

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) Toggle(userID string, target entity.LikeTarget) (bool, *entity.Like, error) {
	var (
		active bool
		record *entity.Like
	)

	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND target_kind = ? AND target_id = ?",
			userID, string(target.Kind), target.ID).Delete(&models.Like{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			active = false
			return nil
		}

		likeModel := &models.Like{
			UserID:     userID,
			TargetKind: string(target.Kind),
			TargetID:   target.ID,
		}
		ins := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(likeModel)
		if ins.Error != nil {
			return ins.Error
		}

		active = true
		if ins.RowsAffected == 0 {
			// A concurrent toggle inserted the row first; it exists, which
			// is the desired state.
			var existing models.Like
			err := tx.Where("user_id = ? AND target_kind = ? AND target_id = ?",
				userID, string(target.Kind), target.ID).First(&existing).Error
			if err != nil {
				return err
			}
			record = ToLikeEntity(&existing)
			return nil
		}

		record = ToLikeEntity(likeModel)
		return nil
	})

	return active, record, err
}

func (r *likeRepository) IsLiked(userID string, target entity.LikeTarget) (bool, error) {
	var count int64
	err := r.db.Model(&models.Like{}).
		Where("user_id = ? AND target_kind = ? AND target_id = ?", userID, string(target.Kind), target.ID).
		Count(&count).Error
	return count > 0, err
}

func (r *likeRepository) Count(target entity.LikeTarget) (int64, error) {
	var count int64
	err := r.db.Model(&models.Like{}).
		Where("target_kind = ? AND target_id = ?", string(target.Kind), target.ID).
		Count(&count).Error
	return count, err
}

func (r *likeRepository) ListLikedVideos(userID string, p pagination.Params) ([]*entity.Video, int64, error) {
	base := func() *gorm.DB {
		return r.db.Model(&models.Video{}).
			Joins("INNER JOIN likes ON likes.target_id = videos.id AND likes.target_kind = ?", string(entity.TargetVideo)).
			Where("likes.user_id = ?", userID)
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var videoModels []models.Video
	err := base().
		Preload("Owner").
		Order("likes.created_at DESC").
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

func (r *likeRepository) CountForOwnerVideos(ownerID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Like{}).
		Joins("INNER JOIN videos ON videos.id = likes.target_id").
		Where("likes.target_kind = ? AND videos.owner_id = ? AND videos.deleted_at IS NULL", string(entity.TargetVideo), ownerID).
		Count(&count).Error
	return count, err
}

// DeleteForTarget removes all likes pointing at a deleted entity so no
// relation rows are left orphaned.
func (r *likeRepository) DeleteForTarget(target entity.LikeTarget) error {
	return r.db.Where("target_kind = ? AND target_id = ?", string(target.Kind), target.ID).
		Delete(&models.Like{}).Error
}
