package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	statsUseCase "github.com/amirhossein-jamali/ai-marketplace/internal/domain/usecase/stats"
	"github.com/amirhossein-jamali/ai-marketplace/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/ai-marketplace/internal/infrastructure/adapter/memory"
	timeProvider "github.com/amirhossein-jamali/ai-marketplace/internal/infrastructure/adapter/time"
)

var cmdStats = &cli.Command{
	Name:  "stats",
	Usage: "Print the headline stats of a freshly seeded store",
	Flags: []cli.Flag{
		&cli.Int64Flag{
			Name:  "offset",
			Usage: "inference count offset",
			Value: memory.DefaultInferenceBaseOffset,
		},
	},
	Action: func(cctx *cli.Context) error {
		noop := logger.NewNoopLogger()
		store := memory.NewStore(timeProvider.NewRealTimeProvider(), noop,
			memory.WithInferenceBaseOffset(cctx.Int64("offset")),
		)

		stats, err := statsUseCase.NewStatsUseCase(store, noop).GetStats(cctx.Context)
		if err != nil {
			return fmt.Errorf("compute stats: %w", err)
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(stats)
	},
}
