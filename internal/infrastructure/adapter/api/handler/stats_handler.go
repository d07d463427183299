package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/ai-marketplace/internal/domain/port/core"
	"github.com/amirhossein-jamali/ai-marketplace/internal/domain/port/usecase"
)

// StatsHandler serves the dashboard figures
type StatsHandler struct {
	statsUseCase usecase.StatsUseCase
	logger       coreport.Logger
}

// NewStatsHandler creates a new stats handler instance
func NewStatsHandler(statsUseCase usecase.StatsUseCase, logger coreport.Logger) *StatsHandler {
	return &StatsHandler{
		statsUseCase: statsUseCase,
		logger:       logger,
	}
}

// GetStats handles the GET /api/stats endpoint
func (h *StatsHandler) GetStats(c *gin.Context) {
	stats, err := h.statsUseCase.GetStats(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "fetch stats", err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
