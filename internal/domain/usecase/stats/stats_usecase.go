package stats

import (
	"context"

	"github.com/amirhossein-jamali/ai-marketplace/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/ai-marketplace/internal/domain/port/core"
	"github.com/amirhossein-jamali/ai-marketplace/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/ai-marketplace/internal/domain/port/usecase"
)

var _ usecase.StatsUseCase = (*StatsUseCase)(nil)

// StatsUseCase serves the dashboard figures
type StatsUseCase struct {
	statsRepo persistence.StatsRepository
	logger    coreport.Logger
}

// NewStatsUseCase creates a new StatsUseCase
func NewStatsUseCase(statsRepo persistence.StatsRepository, logger coreport.Logger) *StatsUseCase {
	return &StatsUseCase{
		statsRepo: statsRepo,
		logger:    logger,
	}
}

// GetStats summarizes active models, inference volume and distributed APT
func (u *StatsUseCase) GetStats(ctx context.Context) (*entity.MarketplaceStats, error) {
	stats, err := u.statsRepo.GetTotalStats(ctx)
	if err != nil {
		u.logger.Error("Failed to compute marketplace stats", map[string]any{
			"error": err.Error(),
		})
		return nil, err
	}
	return stats, nil
}
