package main

//
//  @title           dexboard API
//  @version         1.0
//  @description     Uniswap v3 trader leaderboards built from recent swaps.
//  @termsOfService  https://github.com/guttosm/dexboard
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/dexboard
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        leaderboard
//  @tag.description Trader leaderboards built from recent Uniswap v3 swaps
//
//  @tag.name        runs
//  @tag.description Audit log of pipeline runs
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/guttosm/dexboard/config"
	_ "github.com/guttosm/dexboard/docs" // swagger docs
	"github.com/guttosm/dexboard/internal/app"
	"github.com/guttosm/dexboard/internal/domain/models"
	"github.com/guttosm/dexboard/internal/logger"
	"github.com/guttosm/dexboard/internal/render"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
//
// Parameters:
//   - router (http.Handler): The HTTP router (Gin Engine) configured with all routes.
//   - addr (string): host:port the server listens on.
//
// Returns:
//   - *http.Server: The initialized HTTP server instance.
func startServer(router http.Handler, addr string) *http.Server {
	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      2 * time.Minute,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("addr", addr).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown gracefully terminates the HTTP server and cleans up resources
// when an OS interrupt signal (SIGINT, SIGTERM) is received.
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// blockFlag is an optional block number flag; nil until set.
type blockFlag struct {
	v *uint64
}

func (b *blockFlag) String() string {
	if b == nil || b.v == nil {
		return ""
	}
	return strconv.FormatUint(*b.v, 10)
}

func (b *blockFlag) Set(s string) error {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid block number %q", s)
	}
	b.v = &v
	return nil
}

// cliOptions are the flags of a one-shot leaderboard run.
type cliOptions struct {
	token      string
	tokens     string
	limit      int
	network    string
	demo       bool
	startBlock blockFlag
	endBlock   blockFlag
	parallel   int
}

// queries expands the flags into one query per token.
func (o cliOptions) queries() ([]models.LeaderboardQuery, error) {
	var tokens []string
	for _, t := range strings.Split(o.tokens, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tokens = append(tokens, t)
		}
	}
	if t := strings.TrimSpace(o.token); t != "" {
		tokens = append([]string{t}, tokens...)
	}

	if len(tokens) == 0 {
		if !o.demo {
			return nil, errors.New("token address is required when not in demo mode; use --token <ADDRESS> or --demo")
		}
		tokens = []string{""}
	}
	if o.limit < 0 {
		return nil, errors.New("--limit must not be negative")
	}
	if s, e := o.startBlock.v, o.endBlock.v; s != nil && e != nil && *s > *e {
		return nil, errors.New("--start-block must not exceed --end-block")
	}

	out := make([]models.LeaderboardQuery, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, models.LeaderboardQuery{
			Token:      t,
			Network:    o.network,
			Limit:      o.limit,
			StartBlock: o.startBlock.v,
			EndBlock:   o.endBlock.v,
			Demo:       o.demo,
		})
	}
	return out, nil
}

// leaderboardBuilder is the part of the pipeline the CLI drives.
type leaderboardBuilder interface {
	Build(ctx context.Context, q models.LeaderboardQuery) (*models.Leaderboard, error)
	BuildMany(ctx context.Context, queries []models.LeaderboardQuery, parallel int) ([]*models.Leaderboard, error)
}

// runCLI builds the requested leaderboards and prints them to w.
func runCLI(ctx context.Context, w io.Writer, b leaderboardBuilder, opts cliOptions) error {
	queries, err := opts.queries()
	if err != nil {
		return err
	}

	var boards []*models.Leaderboard
	if len(queries) == 1 {
		lb, err := b.Build(ctx, queries[0])
		if err != nil {
			return err
		}
		boards = []*models.Leaderboard{lb}
	} else {
		boards, err = b.BuildMany(ctx, queries, opts.parallel)
		if err != nil {
			return err
		}
	}

	for _, lb := range boards {
		if !lb.Demo && lb.Diagnostics.SwapsFetched == 0 {
			if _, err := fmt.Fprintln(w, render.NoSwapsMessage(lb.Network)); err != nil {
				return err
			}
			continue
		}
		if err := render.Leaderboard(w, lb); err != nil {
			return err
		}
	}
	return nil
}

// main is the entry point of the dexboard application.
//
// Modes (selected via --mode flag):
//   - cli: Builds leaderboards for --token/--tokens (or --demo) and prints them.
//   - api: Starts the REST API.
func main() {
	ctx := context.Background()

	// Load configuration from environment or .env file
	config.LoadConfig()
	cfg := config.AppConfig

	// Initialize JSON logger
	logger.Init()

	var opts cliOptions
	mode := flag.String("mode", "cli", "Mode: cli or api")
	flag.StringVar(&opts.token, "token", "", "Token contract address (ERC20); not required with --demo")
	flag.StringVar(&opts.tokens, "tokens", "", "Comma-separated token addresses, built concurrently")
	flag.IntVar(&opts.limit, "limit", cfg.Pipeline.DefaultLimit, "Maximum number of traders to display")
	flag.StringVar(&opts.network, "network", cfg.Subgraph.Network, "Network to query (ethereum, arbitrum, polygon, optimism, base)")
	flag.BoolVar(&opts.demo, "demo", false, "Use built-in sample data instead of the subgraph")
	flag.Var(&opts.startBlock, "start-block", "Lowest block number to include")
	flag.Var(&opts.endBlock, "end-block", "Highest block number to include")
	flag.IntVar(&opts.parallel, "parallel", cfg.Pipeline.Parallel, "How many tokens to build concurrently")
	port := flag.String("port", cfg.Server.Port, "Port for API mode")
	flag.Parse()

	switch *mode {
	case "cli":
		svc, cleanup, err := app.InitializeService(cfg)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("pipeline init error")
		}

		runCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
		err = runCLI(runCtx, os.Stdout, svc, opts)
		stop()
		cleanup()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("leaderboard failed")
		}

	case "api":
		logger.L().Info().Msg("starting API server")

		config.AppConfig.Server.Port = *port
		router, cleanup, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, config.AppConfig.Server.Addr())
		gracefulShutdown(ctx, server, cleanup)

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
