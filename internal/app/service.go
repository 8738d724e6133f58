package app

import (
	"database/sql"
	"fmt"

	"github.com/guttosm/dexboard/config"
	"github.com/guttosm/dexboard/internal/service"
	"github.com/guttosm/dexboard/internal/storage"
	"github.com/guttosm/dexboard/internal/subgraph"
)

// NewLeaderboardService wires the leaderboard pipeline from cfg.
//
// Behavior:
//   - Loads the embedded network catalogue and resolves subgraph endpoints
//     with the configured API key or SUBGRAPH_URL override.
//   - Applies paging (BATCH_SIZE, TARGET_SWAPS) and the default network.
//   - Records runs in the run log when db is non-nil.
func NewLeaderboardService(cfg config.Config, db *sql.DB) (*service.LeaderboardService, error) {
	cat, err := subgraph.DefaultCatalogue()
	if err != nil {
		return nil, fmt.Errorf("failed to load network catalogue: %w", err)
	}

	resolve := service.SubgraphResolver(cat, cfg.Subgraph.APIKey, cfg.Subgraph.URL, cfg.Subgraph.Timeout)

	opts := []service.Option{
		service.WithDefaultNetwork(cfg.Subgraph.Network),
		service.WithPaging(cfg.Pipeline.BatchSize, cfg.Pipeline.TargetSwaps),
	}
	if db != nil {
		opts = append(opts, service.WithRunLog(storage.NewRunsRepository(db)))
	}

	return service.NewLeaderboardService(resolve, opts...), nil
}
