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

const defaultTweetLimit = 20

type TweetHandler struct {
	tweetUseCase usecase.TweetUseCase
	logger       *logger.Logger
}

func NewTweetHandler(tweetUseCase usecase.TweetUseCase, logger *logger.Logger) *TweetHandler {
	return &TweetHandler{
		tweetUseCase: tweetUseCase,
		logger:       logger,
	}
}

type tweetRequest struct {
	Content string `json:"content" binding:"required"`
}

// Create godoc
// @Summary      Post a tweet
// @Description  Short text post, 280 characters max
// @Tags         tweets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body tweetRequest true "Tweet content"
// @Success      201  {object}  response.Body
// @Failure      400  {object}  response.Body
// @Router       /tweets [post]
func (h *TweetHandler) Create(c *gin.Context) {
	var req tweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperr.Validation(err.Error()))
		return
	}

	tweet, err := h.tweetUseCase.Create(c.GetString("user_id"), req.Content)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "tweet posted", gin.H{"tweet": tweet})
}

// List godoc
// @Summary      List tweets
// @Tags         tweets
// @Produce      json
// @Param        page query int false "Page number (1-based)"
// @Param        limit query int false "Page size (max 100)"
// @Param        sort query string false "Sort order" Enums(newest, oldest)
// @Param        q query string false "Content substring filter"
// @Success      200  {object}  response.Body
// @Router       /tweets [get]
func (h *TweetHandler) List(c *gin.Context) {
	p := pagination.Parse(c, defaultTweetLimit)

	tweets, meta, err := h.tweetUseCase.List(c.Query("q"), p)
	if err != nil {
		h.logger.Error("Failed to list tweets: %v", err)
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "tweets", listData{Items: tweets, Meta: meta})
}

// ListByOwner godoc
// @Summary      List a user's tweets
// @Tags         tweets
// @Produce      json
// @Param        user_id path string true "User ID"
// @Param        page query int false "Page number (1-based)"
// @Param        limit query int false "Page size (max 100)"
// @Success      200  {object}  response.Body
// @Failure      404  {object}  response.Body
// @Router       /users/{user_id}/tweets [get]
func (h *TweetHandler) ListByOwner(c *gin.Context) {
	p := pagination.Parse(c, defaultTweetLimit)

	tweets, meta, err := h.tweetUseCase.ListByOwner(c.Param("user_id"), p)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "tweets", listData{Items: tweets, Meta: meta})
}

// Update godoc
// @Summary      Edit a tweet
// @Tags         tweets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Tweet ID"
// @Param        request body tweetRequest true "New content"
// @Success      200  {object}  response.Body
// @Failure      403  {object}  response.Body
// @Failure      404  {object}  response.Body
// @Router       /tweets/{id} [patch]
func (h *TweetHandler) Update(c *gin.Context) {
	var req tweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperr.Validation(err.Error()))
		return
	}

	tweet, err := h.tweetUseCase.Update(c.Param("id"), actorFrom(c), req.Content)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "tweet updated", gin.H{"tweet": tweet})
}

// Delete godoc
// @Summary      Delete a tweet
// @Tags         tweets
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Tweet ID"
// @Success      200  {object}  response.Body
// @Failure      403  {object}  response.Body
// @Failure      404  {object}  response.Body
// @Router       /tweets/{id} [delete]
func (h *TweetHandler) Delete(c *gin.Context) {
	if err := h.tweetUseCase.Delete(c.Param("id"), actorFrom(c)); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "tweet deleted", nil)
}
