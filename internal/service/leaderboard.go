package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/guttosm/dexboard/internal/address"
	"github.com/guttosm/dexboard/internal/domain/models"
	"github.com/guttosm/dexboard/internal/ingestion"
	"github.com/guttosm/dexboard/internal/logger"
	"github.com/guttosm/dexboard/internal/metrics"
	"github.com/guttosm/dexboard/internal/storage"
	"github.com/guttosm/dexboard/internal/subgraph"
	"github.com/guttosm/dexboard/internal/tracing"
)

// ErrRunLogDisabled is returned by RecentRuns when no run log is configured.
var ErrRunLogDisabled = errors.New("run log disabled")

const runLogTimeout = 5 * time.Second

// SourceResolver returns the swap source for a network and the network's
// canonical key.
type SourceResolver func(network string) (ingestion.SwapSource, string, error)

// SubgraphResolver resolves networks through cat. A non-empty override URL is
// used for every network.
func SubgraphResolver(cat *subgraph.Catalogue, apiKey, override string, timeout time.Duration) SourceResolver {
	return func(network string) (ingestion.SwapSource, string, error) {
		endpoint, n, err := cat.Endpoint(network, apiKey, override)
		if err != nil {
			return nil, "", err
		}
		return subgraph.NewClient(endpoint, subgraph.WithAPIKey(apiKey), subgraph.WithTimeout(timeout)), n.Key, nil
	}
}

// Leaderboards is what the HTTP layer needs from the pipeline.
type Leaderboards interface {
	Build(ctx context.Context, q models.LeaderboardQuery) (*models.Leaderboard, error)
	RecentRuns(ctx context.Context, token string, limit int) ([]models.Run, error)
}

var _ Leaderboards = (*LeaderboardService)(nil)

// LeaderboardService runs the fetch, aggregate and rank pipeline. Each call
// builds its own fetcher and aggregation state; nothing mutable is shared
// between runs.
type LeaderboardService struct {
	resolve        SourceResolver
	runs           storage.RunsRepository
	defaultNetwork string
	pageSize       int
	target         int
	now            func() time.Time
}

// Option configures LeaderboardService.
type Option func(*LeaderboardService)

// WithRunLog records every run in repo.
func WithRunLog(repo storage.RunsRepository) Option {
	return func(s *LeaderboardService) { s.runs = repo }
}

// WithDefaultNetwork sets the network used when a query names none.
func WithDefaultNetwork(network string) Option {
	return func(s *LeaderboardService) {
		if network != "" {
			s.defaultNetwork = network
		}
	}
}

// WithPaging sets the fetcher's page size and record target.
func WithPaging(pageSize, target int) Option {
	return func(s *LeaderboardService) {
		s.pageSize = pageSize
		s.target = target
	}
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *LeaderboardService) { s.now = now }
}

func NewLeaderboardService(resolve SourceResolver, opts ...Option) *LeaderboardService {
	s := &LeaderboardService{
		resolve:        resolve,
		defaultNetwork: "ethereum",
		pageSize:       ingestion.DefaultPageSize,
		target:         ingestion.DefaultTarget,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RunLogEnabled reports whether runs are being recorded.
func (s *LeaderboardService) RunLogEnabled() bool { return s.runs != nil }

// Build runs the pipeline for one query.
func (s *LeaderboardService) Build(ctx context.Context, q models.LeaderboardQuery) (*models.Leaderboard, error) {
	lb, run, err := s.build(ctx, q)
	s.recordRuns(ctx, run)
	return lb, err
}

// BuildMany runs independent pipelines with at most parallel in flight.
// Results keep the order of queries. The first failure cancels the others.
func (s *LeaderboardService) BuildMany(ctx context.Context, queries []models.LeaderboardQuery, parallel int) ([]*models.Leaderboard, error) {
	if parallel < 1 {
		parallel = 1
	}
	logger.L().Info().Int("queries", len(queries)).Int("max_parallel", parallel).Msg("batch start")

	out := make([]*models.Leaderboard, len(queries))
	runs := make([]models.Run, len(queries))

	g, gctx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, parallel)

	for i, q := range queries {
		sem <- struct{}{}
		g.Go(func() error {
			defer func() { <-sem }()
			lb, run, err := s.build(gctx, q)
			runs[i] = run
			if err != nil {
				return fmt.Errorf("token %s: %w", q.Token, err)
			}
			out[i] = lb
			return nil
		})
	}

	err := g.Wait()

	// Queries that never started leave a zero Run behind.
	started := runs[:0]
	for _, r := range runs {
		if r.RunID != "" {
			started = append(started, r)
		}
	}
	s.recordRuns(ctx, started...)

	if err != nil {
		logger.L().Error().Err(err).Msg("batch failed")
		return nil, err
	}
	logger.L().Info().Int("queries", len(queries)).Msg("batch done")
	return out, nil
}

// RecentRuns lists run log entries, newest first.
func (s *LeaderboardService) RecentRuns(ctx context.Context, token string, limit int) ([]models.Run, error) {
	if s.runs == nil {
		return nil, ErrRunLogDisabled
	}
	if token != "" {
		token = address.Normalize(token)
	}
	return s.runs.ListRecentRuns(ctx, token, limit)
}

// build executes one run and describes its outcome as a run log record.
func (s *LeaderboardService) build(ctx context.Context, q models.LeaderboardQuery) (lb *models.Leaderboard, run models.Run, err error) {
	runID := uuid.NewString()
	started := s.now()
	network := q.Network
	if network == "" {
		network = s.defaultNetwork
	}
	token := address.Normalize(q.Token)
	if q.Demo && token == "" {
		token = DemoToken
	}

	log := logger.ForRun(runID, token)
	ctx, span := tracing.StartSpan(ctx, "leaderboard.Build", "run_id", runID, "token", token, "network", network)

	defer func() {
		tracing.End(span, err)
		run = models.Run{
			RunID:          runID,
			Token:          token,
			Network:        network,
			Demo:           q.Demo,
			TotalVolumeUSD: decimal.Zero,
			Status:         models.RunStatusSuccess,
			StartedAt:      started,
			FinishedAt:     s.now(),
		}
		if lb != nil {
			run.SwapsFetched = lb.Diagnostics.SwapsFetched
			run.SwapsSkipped = lb.Diagnostics.SwapsSkipped
			run.TotalTraders = lb.Summary.TotalTraders
			run.TotalVolumeUSD = lb.Summary.TotalVolumeUSD
		}
		if err != nil {
			run.Status = models.RunStatusFailed
			run.Error = err.Error()
			log.Error().Err(err).Msg("run failed")
		}
		metrics.RecordRun(run.Status, run.FinishedAt.Sub(started).Seconds())
	}()

	if q.Demo {
		log.Info().Msg("demo run")
		entries, summary := Rank(DemoStats(), q.Limit)
		return &models.Leaderboard{
			RunID:       runID,
			Token:       token,
			Network:     network,
			Demo:        true,
			Entries:     entries,
			Summary:     summary,
			Diagnostics: models.Diagnostics{SkippedByReason: map[string]int{}},
			GeneratedAt: s.now(),
		}, run, nil
	}

	if err := address.Validate(q.Token); err != nil {
		return nil, run, err
	}

	source, key, err := s.resolve(network)
	if err != nil {
		return nil, run, err
	}
	network = key

	fetcher := ingestion.NewFetcher(source, ingestion.WithPageSize(s.pageSize), ingestion.WithTarget(s.target))
	swaps, err := fetcher.FetchAll(ctx, token)
	if err != nil {
		return nil, run, err
	}

	kept, dropped := FilterByBlockRange(swaps, q.StartBlock, q.EndBlock)
	agg := Aggregate(kept, token)
	entries, summary := Rank(agg.Stats, q.Limit)

	log.Info().
		Int("fetched", len(swaps)).
		Int("filtered", dropped).
		Int("processed", agg.Processed).
		Int("skipped", agg.Skipped).
		Int("traders", summary.TotalTraders).
		Str("volume_usd", summary.TotalVolumeUSD.String()).
		Msg("run done")

	return &models.Leaderboard{
		RunID:   runID,
		Token:   token,
		Network: network,
		Entries: entries,
		Summary: summary,
		Diagnostics: models.Diagnostics{
			SwapsFetched:    len(swaps),
			SwapsFiltered:   dropped,
			SwapsProcessed:  agg.Processed,
			SwapsSkipped:    agg.Skipped,
			SkippedByReason: agg.SkippedByReason,
		},
		GeneratedAt: s.now(),
	}, run, nil
}

// recordRuns writes runs to the run log. Failures are logged, never returned:
// the run log is an audit trail and must not fail a leaderboard request.
func (s *LeaderboardService) recordRuns(ctx context.Context, runs ...models.Run) {
	if s.runs == nil || len(runs) == 0 {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), runLogTimeout)
	defer cancel()

	var err error
	if len(runs) == 1 {
		err = s.runs.InsertRun(ctx, runs[0])
	} else {
		err = s.runs.InsertRuns(ctx, runs)
	}
	if err != nil {
		logger.L().Warn().Err(err).Int("runs", len(runs)).Msg("run log write failed")
	}
}
