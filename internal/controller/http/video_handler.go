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

const defaultVideoLimit = 10

type VideoHandler struct {
	videoUseCase usecase.VideoUseCase
	logger       *logger.Logger
}

func NewVideoHandler(videoUseCase usecase.VideoUseCase, logger *logger.Logger) *VideoHandler {
	return &VideoHandler{
		videoUseCase: videoUseCase,
		logger:       logger,
	}
}

type updateVideoRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// Upload godoc
// @Summary      Upload a video
// @Description  Upload a video file with thumbnail and metadata
// @Tags         videos
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        title formData string true "Video title"
// @Param        description formData string false "Video description"
// @Param        video formData file true "Video file"
// @Param        thumbnail formData file true "Thumbnail image"
// @Success      201  {object}  response.Body
// @Failure      400  {object}  response.Body
// @Router       /videos [post]
func (h *VideoHandler) Upload(c *gin.Context) {
	title := c.PostForm("title")
	description := c.PostForm("description")

	mediaFile, err := c.FormFile("video")
	if err != nil {
		response.Error(c, apperr.Validation("video file is required"))
		return
	}
	thumbnailFile, err := c.FormFile("thumbnail")
	if err != nil {
		response.Error(c, apperr.Validation("thumbnail file is required"))
		return
	}

	video, err := h.videoUseCase.Upload(c.GetString("user_id"), title, description, mediaFile, thumbnailFile)
	if err != nil {
		h.logger.Error("Failed to upload video: %v", err)
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "video uploaded", gin.H{"video": video})
}

// Get godoc
// @Summary      Get a video
// @Description  Fetch a single video with its like count; counts a view once per viewer
// @Tags         videos
// @Produce      json
// @Param        id path string true "Video ID"
// @Success      200  {object}  response.Body
// @Failure      404  {object}  response.Body
// @Router       /videos/{id} [get]
func (h *VideoHandler) Get(c *gin.Context) {
	video, likes, err := h.videoUseCase.Get(c.Param("id"), c.GetString("user_id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "video", gin.H{
		"video": video,
		"likes": likes,
	})
}

// List godoc
// @Summary      List published videos
// @Description  Paginated list of published videos, optionally filtered by title substring
// @Tags         videos
// @Produce      json
// @Param        page query int false "Page number (1-based)"
// @Param        limit query int false "Page size (max 100)"
// @Param        sort query string false "Sort order" Enums(newest, oldest, views)
// @Param        q query string false "Title substring filter"
// @Success      200  {object}  response.Body
// @Router       /videos [get]
func (h *VideoHandler) List(c *gin.Context) {
	p := pagination.Parse(c, defaultVideoLimit)

	videos, meta, err := h.videoUseCase.List(c.Query("q"), p)
	if err != nil {
		h.logger.Error("Failed to list videos: %v", err)
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "videos", listData{Items: videos, Meta: meta})
}

// ListByOwner godoc
// @Summary      List a channel's videos
// @Description  Paginated videos of one channel; unpublished ones are visible to the owner only
// @Tags         videos
// @Produce      json
// @Param        user_id path string true "Channel owner ID"
// @Param        page query int false "Page number (1-based)"
// @Param        limit query int false "Page size (max 100)"
// @Success      200  {object}  response.Body
// @Failure      404  {object}  response.Body
// @Router       /users/{user_id}/videos [get]
func (h *VideoHandler) ListByOwner(c *gin.Context) {
	p := pagination.Parse(c, defaultVideoLimit)

	videos, meta, err := h.videoUseCase.ListByOwner(c.Param("user_id"), actorFrom(c), p)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "videos", listData{Items: videos, Meta: meta})
}

// Update godoc
// @Summary      Update a video
// @Tags         videos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Video ID"
// @Param        request body updateVideoRequest true "Fields to update"
// @Success      200  {object}  response.Body
// @Failure      403  {object}  response.Body
// @Failure      404  {object}  response.Body
// @Router       /videos/{id} [patch]
func (h *VideoHandler) Update(c *gin.Context) {
	var req updateVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperr.Validation(err.Error()))
		return
	}

	video, err := h.videoUseCase.Update(c.Param("id"), actorFrom(c), req.Title, req.Description)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "video updated", gin.H{"video": video})
}

// Delete godoc
// @Summary      Delete a video
// @Tags         videos
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Video ID"
// @Success      200  {object}  response.Body
// @Failure      403  {object}  response.Body
// @Failure      404  {object}  response.Body
// @Router       /videos/{id} [delete]
func (h *VideoHandler) Delete(c *gin.Context) {
	if err := h.videoUseCase.Delete(c.Param("id"), actorFrom(c)); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "video deleted", nil)
}

// TogglePublish godoc
// @Summary      Toggle a video's publish status
// @Tags         videos
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Video ID"
// @Success      200  {object}  response.Body
// @Failure      403  {object}  response.Body
// @Failure      404  {object}  response.Body
// @Router       /videos/{id}/publish [patch]
func (h *VideoHandler) TogglePublish(c *gin.Context) {
	video, err := h.videoUseCase.TogglePublish(c.Param("id"), actorFrom(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "publish status toggled", gin.H{"video": video})
}
