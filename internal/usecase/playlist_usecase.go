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

type PlaylistUseCase interface {
	Create(actorID, name, description string) (*entity.Playlist, error)
	Get(playlistID string) (*entity.Playlist, error)
	ListByOwner(ownerID string, p pagination.Params) ([]*entity.Playlist, pagination.Meta, error)
	Update(playlistID string, actor entity.Actor, name, description *string) (*entity.Playlist, error)
	Delete(playlistID string, actor entity.Actor) error
	AddVideo(playlistID, videoID string, actor entity.Actor) error
	RemoveVideo(playlistID, videoID string, actor entity.Actor) error
}

type playlistUseCase struct {
	playlistRepo persistent.PlaylistRepository
	videoRepo    persistent.VideoRepository
	userRepo     persistent.UserRepository
	logger       *logger.Logger
}

func NewPlaylistUseCase(
	playlistRepo persistent.PlaylistRepository,
	videoRepo persistent.VideoRepository,
	userRepo persistent.UserRepository,
	logger *logger.Logger,
) PlaylistUseCase {
	return &playlistUseCase{
		playlistRepo: playlistRepo,
		videoRepo:    videoRepo,
		userRepo:     userRepo,
		logger:       logger,
	}
}

func (uc *playlistUseCase) Create(actorID, name, description string) (*entity.Playlist, error) {
	if actorID == "" {
		return nil, apperr.Unauthenticated("authentication required")
	}
	if name == "" {
		return nil, apperr.Validation("name is required")
	}

	playlist := &entity.Playlist{
		OwnerID:     actorID,
		Name:        name,
		Description: description,
	}

	if err := uc.playlistRepo.Create(playlist); err != nil {
		uc.logger.Error("Failed to create playlist: %v", err)
		return nil, apperr.Internal(err)
	}

	return playlist, nil
}

func (uc *playlistUseCase) Get(playlistID string) (*entity.Playlist, error) {
	if _, err := uuid.Parse(playlistID); err != nil {
		return nil, apperr.Validation("invalid playlist id")
	}

	playlist, err := uc.playlistRepo.GetByID(playlistID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("playlist not found")
		}
		return nil, apperr.Internal(err)
	}
	return playlist, nil
}

func (uc *playlistUseCase) ListByOwner(ownerID string, p pagination.Params) ([]*entity.Playlist, pagination.Meta, error) {
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

	playlists, total, err := uc.playlistRepo.ListByOwner(ownerID, p)
	if err != nil {
		uc.logger.Error("Failed to list playlists: %v", err)
		return nil, pagination.Meta{}, apperr.Internal(err)
	}
	return playlists, pagination.NewMeta(total, p), nil
}

func (uc *playlistUseCase) Update(playlistID string, actor entity.Actor, name, description *string) (*entity.Playlist, error) {
	playlist, err := uc.ownedPlaylist(playlistID, actor)
	if err != nil {
		return nil, err
	}

	if name != nil {
		if *name == "" {
			return nil, apperr.Validation("name cannot be empty")
		}
		playlist.Name = *name
	}
	if description != nil {
		playlist.Description = *description
	}

	if err := uc.playlistRepo.Update(playlist); err != nil {
		uc.logger.Error("Failed to update playlist: %v", err)
		return nil, apperr.Internal(err)
	}

	return playlist, nil
}

func (uc *playlistUseCase) Delete(playlistID string, actor entity.Actor) error {
	if _, err := uc.ownedPlaylist(playlistID, actor); err != nil {
		return err
	}

	if err := uc.playlistRepo.Delete(playlistID); err != nil {
		uc.logger.Error("Failed to delete playlist: %v", err)
		return apperr.Internal(err)
	}
	return nil
}

func (uc *playlistUseCase) AddVideo(playlistID, videoID string, actor entity.Actor) error {
	if _, err := uuid.Parse(videoID); err != nil {
		return apperr.Validation("invalid video id")
	}

	if _, err := uc.ownedPlaylist(playlistID, actor); err != nil {
		return err
	}

	exists, err := uc.videoRepo.Exists(videoID)
	if err != nil {
		return apperr.Internal(err)
	}
	if !exists {
		return apperr.NotFound("video not found")
	}

	added, err := uc.playlistRepo.AddVideo(playlistID, videoID)
	if err != nil {
		uc.logger.Error("Failed to add video to playlist: %v", err)
		return apperr.Internal(err)
	}
	if !added {
		return apperr.Conflict("video already in playlist")
	}
	return nil
}

func (uc *playlistUseCase) RemoveVideo(playlistID, videoID string, actor entity.Actor) error {
	if _, err := uuid.Parse(videoID); err != nil {
		return apperr.Validation("invalid video id")
	}

	if _, err := uc.ownedPlaylist(playlistID, actor); err != nil {
		return err
	}

	removed, err := uc.playlistRepo.RemoveVideo(playlistID, videoID)
	if err != nil {
		uc.logger.Error("Failed to remove video from playlist: %v", err)
		return apperr.Internal(err)
	}
	if !removed {
		return apperr.NotFound("video not in playlist")
	}
	return nil
}

func (uc *playlistUseCase) ownedPlaylist(playlistID string, actor entity.Actor) (*entity.Playlist, error) {
	if _, err := uuid.Parse(playlistID); err != nil {
		return nil, apperr.Validation("invalid playlist id")
	}

	playlist, err := uc.playlistRepo.GetByID(playlistID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("playlist not found")
		}
		return nil, apperr.Internal(err)
	}

	if !actor.CanModify(playlist.OwnerID) {
		return nil, apperr.Forbidden("you do not own this playlist")
	}

	return playlist, nil
}
