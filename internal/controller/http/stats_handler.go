package http

import (
	"net/http"

	"clipstream/internal/usecase"
	"clipstream/pkg/logger"
	"clipstream/pkg/response"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	statsUseCase usecase.StatsUseCase
	logger       *logger.Logger
}

func NewStatsHandler(statsUseCase usecase.StatsUseCase, logger *logger.Logger) *StatsHandler {
	return &StatsHandler{
		statsUseCase: statsUseCase,
		logger:       logger,
	}
}

// ChannelStats godoc
// @Summary      Get channel statistics
// @Description  Video count, total views, subscriber count and likes across the channel's videos
// @Tags         channels
// @Produce      json
// @Param        channel_id path string true "Channel (user) ID"
// @Success      200  {object}  response.Body
// @Failure      404  {object}  response.Body
// @Router       /channels/{channel_id}/stats [get]
func (h *StatsHandler) ChannelStats(c *gin.Context) {
	stats, err := h.statsUseCase.ChannelStats(c.Param("channel_id"))
	if err != nil {
		h.logger.Error("Failed to get channel stats: %v", err)
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "channel stats", gin.H{"stats": stats})
}
