package http

import (
	"net/http"

	"clipstream/internal/entity"
	"clipstream/internal/usecase"
	"clipstream/pkg/logger"
	"clipstream/pkg/pagination"
	"clipstream/pkg/response"

	"github.com/gin-gonic/gin"
)

const defaultLikedLimit = 20

type LikeHandler struct {
	likeUseCase usecase.LikeUseCase
	logger      *logger.Logger
}

func NewLikeHandler(likeUseCase usecase.LikeUseCase, logger *logger.Logger) *LikeHandler {
	return &LikeHandler{
		likeUseCase: likeUseCase,
		logger:      logger,
	}
}

// toggle runs the like toggle for one target kind. A toggle that creates
// the like answers 201, one that removes it answers 200.
func (h *LikeHandler) toggle(c *gin.Context, kind entity.TargetKind, targetID string) {
	liked, _, err := h.likeUseCase.Toggle(c.GetString("user_id"), kind, targetID)
	if err != nil {
		response.Error(c, err)
		return
	}

	if liked {
		response.Success(c, http.StatusCreated, "liked", gin.H{"liked": true})
	} else {
		response.Success(c, http.StatusOK, "unliked", gin.H{"liked": false})
	}
}

// ToggleVideoLike godoc
// @Summary      Toggle a like on a video
// @Description  Likes the video if not liked, removes the like otherwise
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Video ID"
// @Success      200  {object}  response.Body "like removed"
// @Success      201  {object}  response.Body "like created"
// @Failure      404  {object}  response.Body
// @Router       /likes/videos/{id} [post]
func (h *LikeHandler) ToggleVideoLike(c *gin.Context) {
	h.toggle(c, entity.TargetVideo, c.Param("id"))
}

// ToggleCommentLike godoc
// @Summary      Toggle a like on a comment
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Comment ID"
// @Success      200  {object}  response.Body "like removed"
// @Success      201  {object}  response.Body "like created"
// @Failure      404  {object}  response.Body
// @Router       /likes/comments/{id} [post]
func (h *LikeHandler) ToggleCommentLike(c *gin.Context) {
	h.toggle(c, entity.TargetComment, c.Param("id"))
}

// ToggleTweetLike godoc
// @Summary      Toggle a like on a tweet
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Tweet ID"
// @Success      200  {object}  response.Body "like removed"
// @Success      201  {object}  response.Body "like created"
// @Failure      404  {object}  response.Body
// @Router       /likes/tweets/{id} [post]
func (h *LikeHandler) ToggleTweetLike(c *gin.Context) {
	h.toggle(c, entity.TargetTweet, c.Param("id"))
}

// VideoLikeCount godoc
// @Summary      Get like count for a video
// @Description  Redis cache first, database fallback
// @Tags         likes
// @Produce      json
// @Param        id path string true "Video ID"
// @Success      200  {object}  response.Body
// @Router       /videos/{id}/likes [get]
func (h *LikeHandler) VideoLikeCount(c *gin.Context) {
	count, err := h.likeUseCase.Count(entity.TargetVideo, c.Param("id"))
	if err != nil {
		h.logger.Error("Failed to get like count: %v", err)
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "like count", gin.H{"likes": count})
}

// IsVideoLiked godoc
// @Summary      Check whether the authenticated user liked a video
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Video ID"
// @Success      200  {object}  response.Body
// @Router       /videos/{id}/liked [get]
func (h *LikeHandler) IsVideoLiked(c *gin.Context) {
	liked, err := h.likeUseCase.IsLiked(c.GetString("user_id"), entity.TargetVideo, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "like status", gin.H{"liked": liked})
}

// ListLikedVideos godoc
// @Summary      List videos liked by the authenticated user
// @Description  Ordered by when the like was created, newest first
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "Page number (1-based)"
// @Param        limit query int false "Page size (max 100)"
// @Success      200  {object}  response.Body
// @Router       /likes/videos [get]
func (h *LikeHandler) ListLikedVideos(c *gin.Context) {
	p := pagination.Parse(c, defaultLikedLimit)

	videos, meta, err := h.likeUseCase.ListLikedVideos(c.GetString("user_id"), p)
	if err != nil {
		h.logger.Error("Failed to list liked videos: %v", err)
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "liked videos", listData{Items: videos, Meta: meta})
}
