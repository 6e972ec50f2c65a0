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

const defaultCommentLimit = 10

type CommentHandler struct {
	commentUseCase usecase.CommentUseCase
	logger         *logger.Logger
}

func NewCommentHandler(commentUseCase usecase.CommentUseCase, logger *logger.Logger) *CommentHandler {
	return &CommentHandler{
		commentUseCase: commentUseCase,
		logger:         logger,
	}
}

type commentRequest struct {
	Content string `json:"content" binding:"required"`
}

// Add godoc
// @Summary      Comment on a video
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Video ID"
// @Param        request body commentRequest true "Comment content"
// @Success      201  {object}  response.Body
// @Failure      400  {object}  response.Body
// @Failure      404  {object}  response.Body
// @Router       /videos/{id}/comments [post]
func (h *CommentHandler) Add(c *gin.Context) {
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperr.Validation(err.Error()))
		return
	}

	comment, err := h.commentUseCase.Add(c.GetString("user_id"), c.Param("id"), req.Content)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "comment added", gin.H{"comment": comment})
}

// ListByVideo godoc
// @Summary      List comments on a video
// @Tags         comments
// @Produce      json
// @Param        id path string true "Video ID"
// @Param        page query int false "Page number (1-based)"
// @Param        limit query int false "Page size (max 100)"
// @Param        sort query string false "Sort order" Enums(newest, oldest)
// @Success      200  {object}  response.Body
// @Failure      404  {object}  response.Body
// @Router       /videos/{id}/comments [get]
func (h *CommentHandler) ListByVideo(c *gin.Context) {
	p := pagination.Parse(c, defaultCommentLimit)

	comments, meta, err := h.commentUseCase.ListByVideo(c.Param("id"), p)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "comments", listData{Items: comments, Meta: meta})
}

// Update godoc
// @Summary      Edit a comment
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Comment ID"
// @Param        request body commentRequest true "New content"
// @Success      200  {object}  response.Body
// @Failure      403  {object}  response.Body
// @Failure      404  {object}  response.Body
// @Router       /comments/{id} [patch]
func (h *CommentHandler) Update(c *gin.Context) {
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperr.Validation(err.Error()))
		return
	}

	comment, err := h.commentUseCase.Update(c.Param("id"), actorFrom(c), req.Content)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "comment updated", gin.H{"comment": comment})
}

// Delete godoc
// @Summary      Delete a comment
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Comment ID"
// @Success      200  {object}  response.Body
// @Failure      403  {object}  response.Body
// @Failure      404  {object}  response.Body
// @Router       /comments/{id} [delete]
func (h *CommentHandler) Delete(c *gin.Context) {
	if err := h.commentUseCase.Delete(c.Param("id"), actorFrom(c)); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "comment deleted", nil)
}
