package http

import (
	"net/http"

	"clipstream/internal/usecase"
	"clipstream/pkg/logger"
	"clipstream/pkg/pagination"
	"clipstream/pkg/response"

	"github.com/gin-gonic/gin"
)

const defaultSubscriptionLimit = 20

type SubscriptionHandler struct {
	subscriptionUseCase usecase.SubscriptionUseCase
	logger              *logger.Logger
}

func NewSubscriptionHandler(subscriptionUseCase usecase.SubscriptionUseCase, logger *logger.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionUseCase: subscriptionUseCase,
		logger:              logger,
	}
}

// Toggle godoc
// @Summary      Toggle a subscription to a channel
// @Description  Subscribes if not subscribed, unsubscribes otherwise. Self-subscription is rejected.
// @Tags         subscriptions
// @Produce      json
// @Security     BearerAuth
// @Param        channel_id path string true "Channel (user) ID"
// @Success      200  {object}  response.Body "unsubscribed"
// @Success      201  {object}  response.Body "subscribed"
// @Failure      400  {object}  response.Body
// @Failure      404  {object}  response.Body
// @Router       /subscriptions/{channel_id} [post]
func (h *SubscriptionHandler) Toggle(c *gin.Context) {
	subscribed, _, err := h.subscriptionUseCase.Toggle(c.GetString("user_id"), c.Param("channel_id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	if subscribed {
		response.Success(c, http.StatusCreated, "subscribed", gin.H{"subscribed": true})
	} else {
		response.Success(c, http.StatusOK, "unsubscribed", gin.H{"subscribed": false})
	}
}

// IsSubscribed godoc
// @Summary      Check subscription status
// @Tags         subscriptions
// @Produce      json
// @Security     BearerAuth
// @Param        channel_id path string true "Channel (user) ID"
// @Success      200  {object}  response.Body
// @Router       /subscriptions/{channel_id} [get]
func (h *SubscriptionHandler) IsSubscribed(c *gin.Context) {
	subscribed, err := h.subscriptionUseCase.IsSubscribed(c.GetString("user_id"), c.Param("channel_id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "subscription status", gin.H{"subscribed": subscribed})
}

// CountSubscribers godoc
// @Summary      Get a channel's subscriber count
// @Tags         subscriptions
// @Produce      json
// @Param        channel_id path string true "Channel (user) ID"
// @Success      200  {object}  response.Body
// @Failure      404  {object}  response.Body
// @Router       /channels/{channel_id}/subscribers/count [get]
func (h *SubscriptionHandler) CountSubscribers(c *gin.Context) {
	count, err := h.subscriptionUseCase.CountSubscribers(c.Param("channel_id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "subscriber count", gin.H{"subscribers": count})
}

// ListChannels godoc
// @Summary      List channels the authenticated user subscribes to
// @Tags         subscriptions
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "Page number (1-based)"
// @Param        limit query int false "Page size (max 100)"
// @Success      200  {object}  response.Body
// @Router       /subscriptions [get]
func (h *SubscriptionHandler) ListChannels(c *gin.Context) {
	p := pagination.Parse(c, defaultSubscriptionLimit)

	subs, meta, err := h.subscriptionUseCase.ListChannels(c.GetString("user_id"), p)
	if err != nil {
		h.logger.Error("Failed to list subscribed channels: %v", err)
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "subscriptions", listData{Items: subs, Meta: meta})
}

// ListSubscribers godoc
// @Summary      List a channel's subscribers
// @Tags         subscriptions
// @Produce      json
// @Param        channel_id path string true "Channel (user) ID"
// @Param        page query int false "Page number (1-based)"
// @Param        limit query int false "Page size (max 100)"
// @Success      200  {object}  response.Body
// @Failure      404  {object}  response.Body
// @Router       /channels/{channel_id}/subscribers [get]
func (h *SubscriptionHandler) ListSubscribers(c *gin.Context) {
	p := pagination.Parse(c, defaultSubscriptionLimit)

	subs, meta, err := h.subscriptionUseCase.ListSubscribers(c.Param("channel_id"), p)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "subscribers", listData{Items: subs, Meta: meta})
}
