package http

import (
	"net/http"

	"clipstream/internal/usecase"
	"clipstream/pkg/apperr"
	"clipstream/pkg/logger"
	"clipstream/pkg/pagination"
	"clipstream/pkg/response"

	"github.com/gin-gonic/gin"
)

const defaultPlaylistLimit = 10

type PlaylistHandler struct {
	playlistUseCase usecase.PlaylistUseCase
	logger          *logger.Logger
}

func NewPlaylistHandler(playlistUseCase usecase.PlaylistUseCase, logger *logger.Logger) *PlaylistHandler {
	return &PlaylistHandler{
		playlistUseCase: playlistUseCase,
		logger:          logger,
	}
}

type createPlaylistRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description"`
}

type updatePlaylistRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// Create godoc
// @Summary      Create a playlist
// @Tags         playlists
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body createPlaylistRequest true "Playlist data"
// @Success      201  {object}  response.Body
// @Failure      400  {object}  response.Body
// @Router       /playlists [post]
func (h *PlaylistHandler) Create(c *gin.Context) {
	var req createPlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperr.Validation(err.Error()))
		return
	}

	playlist, err := h.playlistUseCase.Create(c.GetString("user_id"), req.Name, req.Description)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "playlist created", gin.H{"playlist": playlist})
}

// Get godoc
// @Summary      Get a playlist
// @Description  Returns the playlist with its videos in position order
// @Tags         playlists
// @Produce      json
// @Param        id path string true "Playlist ID"
// @Success      200  {object}  response.Body
// @Failure      404  {object}  response.Body
// @Router       /playlists/{id} [get]
func (h *PlaylistHandler) Get(c *gin.Context) {
	playlist, err := h.playlistUseCase.Get(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "playlist", gin.H{"playlist": playlist})
}

// ListByOwner godoc
// @Summary      List a user's playlists
// @Tags         playlists
// @Produce      json
// @Param        user_id path string true "User ID"
// @Param        page query int false "Page number (1-based)"
// @Param        limit query int false "Page size (max 100)"
// @Success      200  {object}  response.Body
// @Failure      404  {object}  response.Body
// @Router       /users/{user_id}/playlists [get]
func (h *PlaylistHandler) ListByOwner(c *gin.Context) {
	p := pagination.Parse(c, defaultPlaylistLimit)

	playlists, meta, err := h.playlistUseCase.ListByOwner(c.Param("user_id"), p)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "playlists", listData{Items: playlists, Meta: meta})
}

// Update godoc
// @Summary      Update a playlist
// @Tags         playlists
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Playlist ID"
// @Param        request body updatePlaylistRequest true "Fields to update"
// @Success      200  {object}  response.Body
// @Failure      403  {object}  response.Body
// @Failure      404  {object}  response.Body
// @Router       /playlists/{id} [patch]
func (h *PlaylistHandler) Update(c *gin.Context) {
	var req updatePlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperr.Validation(err.Error()))
		return
	}

	playlist, err := h.playlistUseCase.Update(c.Param("id"), actorFrom(c), req.Name, req.Description)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "playlist updated", gin.H{"playlist": playlist})
}

// Delete godoc
// @Summary      Delete a playlist
// @Tags         playlists
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Playlist ID"
// @Success      200  {object}  response.Body
// @Failure      403  {object}  response.Body
// @Failure      404  {object}  response.Body
// @Router       /playlists/{id} [delete]
func (h *PlaylistHandler) Delete(c *gin.Context) {
	if err := h.playlistUseCase.Delete(c.Param("id"), actorFrom(c)); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "playlist deleted", nil)
}

// AddVideo godoc
// @Summary      Add a video to a playlist
// @Description  Appends the video at the end. Conflict if already present.
// @Tags         playlists
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Playlist ID"
// @Param        video_id path string true "Video ID"
// @Success      201  {object}  response.Body
// @Failure      403  {object}  response.Body
// @Failure      404  {object}  response.Body
// @Failure      409  {object}  response.Body
// @Router       /playlists/{id}/videos/{video_id} [post]
func (h *PlaylistHandler) AddVideo(c *gin.Context) {
	if err := h.playlistUseCase.AddVideo(c.Param("id"), c.Param("video_id"), actorFrom(c)); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "video added to playlist", nil)
}

// RemoveVideo godoc
// @Summary      Remove a video from a playlist
// @Tags         playlists
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Playlist ID"
// @Param        video_id path string true "Video ID"
// @Success      200  {object}  response.Body
// @Failure      403  {object}  response.Body
// @Failure      404  {object}  response.Body
// @Router       /playlists/{id}/videos/{video_id} [delete]
func (h *PlaylistHandler) RemoveVideo(c *gin.Context) {
	if err := h.playlistUseCase.RemoveVideo(c.Param("id"), c.Param("video_id"), actorFrom(c)); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "video removed from playlist", nil)
}
