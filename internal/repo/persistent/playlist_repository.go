package persistent

import (
	"clipstream/internal/entity"
	"clipstream/pkg/models"
	"clipstream/pkg/pagination"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PlaylistRepository interface {
	Create(playlist *entity.Playlist) error
	GetByID(id string) (*entity.Playlist, error)
	ListByOwner(ownerID string, p pagination.Params) ([]*entity.Playlist, int64, error)
	Update(playlist *entity.Playlist) error
	Delete(id string) error
	Exists(id string) (bool, error)
	// AddVideo returns false when the video was already in the playlist.
	AddVideo(playlistID, videoID string) (bool, error)
	// RemoveVideo returns false when the video was not in the playlist.
	RemoveVideo(playlistID, videoID string) (bool, error)
}

type playlistRepository struct {
	db *gorm.DB
}

func NewPlaylistRepository(db *gorm.DB) PlaylistRepository {
	return &playlistRepository{db: db}
}

func (r *playlistRepository) Create(playlist *entity.Playlist) error {
	playlistModel := ToPlaylistModel(playlist)
	if playlistModel.ID == "" {
		playlistModel.ID = uuid.New().String()
	}
	if err := r.db.Create(playlistModel).Error; err != nil {
		return err
	}
	*playlist = *ToPlaylistEntity(playlistModel)
	return nil
}

func (r *playlistRepository) GetByID(id string) (*entity.Playlist, error) {
	var playlistModel models.Playlist
	err := r.db.Preload("Owner").
		Preload("Videos", func(db *gorm.DB) *gorm.DB {
			return db.Order("playlist_videos.position ASC")
		}).
		Preload("Videos.Video").
		Preload("Videos.Video.Owner").
		Where("id = ?", id).
		First(&playlistModel).Error
	if err != nil {
		return nil, err
	}
	return ToPlaylistEntity(&playlistModel), nil
}

func (r *playlistRepository) ListByOwner(ownerID string, p pagination.Params) ([]*entity.Playlist, int64, error) {
	var total int64
	if err := r.db.Model(&models.Playlist{}).Where("owner_id = ?", ownerID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var playlistModels []models.Playlist
	err := r.db.Preload("Owner").
		Where("owner_id = ?", ownerID).
		Order(p.OrderBy(nil)).
		Limit(p.Limit).
		Offset(p.Offset()).
		Find(&playlistModels).Error
	if err != nil {
		return nil, 0, err
	}

	playlists := make([]*entity.Playlist, len(playlistModels))
	for i := range playlistModels {
		playlists[i] = ToPlaylistEntity(&playlistModels[i])
	}
	return playlists, total, nil
}

func (r *playlistRepository) Update(playlist *entity.Playlist) error {
	return r.db.Model(&models.Playlist{}).Where("id = ?", playlist.ID).Updates(map[string]interface{}{
		"name":        playlist.Name,
		"description": playlist.Description,
	}).Error
}

func (r *playlistRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("playlist_id = ?", id).Delete(&models.PlaylistVideo{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.Playlist{}).Error
	})
}

func (r *playlistRepository) Exists(id string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Playlist{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *playlistRepository) AddVideo(playlistID, videoID string) (bool, error) {
	var added bool
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var position int64
		if err := tx.Model(&models.PlaylistVideo{}).Where("playlist_id = ?", playlistID).Count(&position).Error; err != nil {
			return err
		}

		pvModel := &models.PlaylistVideo{
			PlaylistID: playlistID,
			VideoID:    videoID,
			Position:   int(position),
		}
		ins := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(pvModel)
		if ins.Error != nil {
			return ins.Error
		}
		added = ins.RowsAffected > 0
		return nil
	})
	return added, err
}

func (r *playlistRepository) RemoveVideo(playlistID, videoID string) (bool, error) {
	res := r.db.Where("playlist_id = ? AND video_id = ?", playlistID, videoID).
		Delete(&models.PlaylistVideo{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
