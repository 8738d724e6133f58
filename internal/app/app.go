package app

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/dexboard/config"
	"github.com/guttosm/dexboard/internal/api"
	"github.com/guttosm/dexboard/internal/logger"
	"github.com/guttosm/dexboard/internal/service"
	"github.com/guttosm/dexboard/internal/tracing"
)

const shutdownTimeout = 5 * time.Second

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Enables tracing when TRACING_ENABLED is set.
//   - Connects to PostgreSQL when the run log is enabled.
//   - Builds the leaderboard service, HTTP handler and router.
//   - Registers health and readiness probes.
//   - Provides a cleanup function to close resources.
func InitializeApp() (*gin.Engine, func(), error) {
	cfg := config.AppConfig

	svc, cleanup, err := InitializeService(cfg)
	if err != nil {
		return nil, nil, err
	}

	handler := api.NewHandler(svc.LeaderboardService, cfg.Pipeline.DefaultLimit)

	router := api.NewRouter(handler, api.RouterOptions{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		RequestTimeout: cfg.Server.RequestTimeout,
		RateLimit:      cfg.Server.RateLimit,
	})

	// Register health and readiness probes
	var ping func(ctx context.Context) error
	if svc.db != nil {
		ping = svc.db.PingContext
	}
	api.NewHealthHandler(ping).Register(router)

	return router, cleanup, nil
}

// Service bundles the pipeline with the resources it owns.
type Service struct {
	*service.LeaderboardService
	db *sql.DB
}

// InitializeService builds the pipeline without the HTTP layer; the CLI uses
// it directly. The returned cleanup closes the run log and flushes spans.
func InitializeService(cfg config.Config) (*Service, func(), error) {
	if err := tracing.Init(cfg.Tracing.Enabled); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize tracing: %w", err)
	}

	db, err := openRunLog(cfg)
	if err != nil {
		return nil, nil, err
	}

	svc, err := NewLeaderboardService(cfg, db)
	if err != nil {
		if db != nil {
			_ = db.Close()
		}
		return nil, nil, err
	}

	logger.L().Info().
		Str("network", cfg.Subgraph.Network).
		Bool("run_log", db != nil).
		Bool("tracing", cfg.Tracing.Enabled).
		Msg("pipeline initialized")

	cleanup := func() {
		if db != nil {
			_ = db.Close()
		}
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = tracing.Shutdown(ctx)
	}

	return &Service{LeaderboardService: svc, db: db}, cleanup, nil
}
