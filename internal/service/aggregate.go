package service

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/guttosm/dexboard/internal/domain/models"
	"github.com/guttosm/dexboard/internal/logger"
	"github.com/guttosm/dexboard/internal/metrics"
	"github.com/guttosm/dexboard/internal/numeric"
)

// ErrAggregation is returned by AggregateStrict on the first record that
// cannot be classified.
var ErrAggregation = errors.New("aggregation failed")

// Skip reasons reported in AggregationResult.SkippedByReason and metrics.
const (
	SkipTokenNotInPool = "token_not_in_pool"
	SkipInvalidNumeric = "invalid_numeric"
	SkipOther          = "other"
)

// AggregationResult is the outcome of one aggregation pass.
type AggregationResult struct {
	Stats           map[string]*models.TraderStats
	Processed       int
	Skipped         int
	SkippedByReason map[string]int
}

// Aggregator accumulates per-trader totals keyed by swap sender. It is owned
// by a single run and is not safe for concurrent use.
type Aggregator struct {
	token    string
	stats    map[string]*models.TraderStats
	skipped  map[string]int
	nSkipped int
	nOK      int
	log      zerolog.Logger
}

// NewAggregator returns an empty Aggregator for token.
func NewAggregator(token string) *Aggregator {
	return &Aggregator{
		token:   token,
		stats:   make(map[string]*models.TraderStats),
		skipped: make(map[string]int),
		log:     logger.L().With().Str("token", token).Logger(),
	}
}

// Add classifies swap and folds it into the sender's totals. A swap that
// cannot be classified is counted as skipped and its error returned; the
// aggregator stays usable.
func (a *Aggregator) Add(swap models.Swap) error {
	trade, err := Classify(swap, a.token)
	if err != nil {
		reason := skipReason(err)
		a.nSkipped++
		a.skipped[reason]++
		metrics.RecordSkipped(reason)
		a.log.Warn().Str("swap_id", swap.ID).Str("reason", reason).Err(err).Msg("skipping swap")
		return err
	}

	st, ok := a.stats[swap.Sender]
	if !ok {
		st = models.NewTraderStats(swap.Sender)
		a.stats[swap.Sender] = st
	}
	st.Record(trade)
	a.nOK++
	return nil
}

// Result returns the accumulated totals.
func (a *Aggregator) Result() AggregationResult {
	return AggregationResult{
		Stats:           a.stats,
		Processed:       a.nOK,
		Skipped:         a.nSkipped,
		SkippedByReason: a.skipped,
	}
}

// Aggregate folds swaps into per-trader totals, skipping records that fail
// classification.
func Aggregate(swaps []models.Swap, token string) AggregationResult {
	a := NewAggregator(token)
	for _, s := range swaps {
		_ = a.Add(s)
	}
	res := a.Result()
	metrics.RecordProcessed(res.Processed)
	if res.Skipped > 0 {
		a.log.Info().Int("processed", res.Processed).Int("skipped", res.Skipped).Msg("aggregation finished with skipped swaps")
	}
	return res
}

// AggregateStrict is Aggregate without tolerance: the first unclassifiable
// record aborts with ErrAggregation.
func AggregateStrict(swaps []models.Swap, token string) (AggregationResult, error) {
	a := NewAggregator(token)
	for _, s := range swaps {
		if err := a.Add(s); err != nil {
			return AggregationResult{}, fmt.Errorf("%w: swap %s: %w", ErrAggregation, s.ID, err)
		}
	}
	res := a.Result()
	metrics.RecordProcessed(res.Processed)
	return res, nil
}

func skipReason(err error) string {
	switch {
	case errors.Is(err, ErrTokenNotInPool):
		return SkipTokenNotInPool
	case errors.Is(err, numeric.ErrInvalidFormat):
		return SkipInvalidNumeric
	default:
		return SkipOther
	}
}
