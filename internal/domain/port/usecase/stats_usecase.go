package usecase

import (
	"context"

	"github.com/amirhossein-jamali/ai-marketplace/internal/domain/entity"
)

// StatsUseCase exposes the marketplace dashboard figures
type StatsUseCase interface {
	GetStats(ctx context.Context) (*entity.MarketplaceStats, error)
}
