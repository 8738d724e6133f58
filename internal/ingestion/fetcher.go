// Package ingestion pages swap records out of a swap source.
package ingestion

import (
	"context"
	"fmt"
	"time"

	"github.com/guttosm/dexboard/internal/address"
	"github.com/guttosm/dexboard/internal/domain/models"
	"github.com/guttosm/dexboard/internal/logger"
	"github.com/guttosm/dexboard/internal/metrics"
	"github.com/guttosm/dexboard/internal/subgraph"
	"github.com/guttosm/dexboard/internal/tracing"
)

const (
	DefaultPageSize = 1000
	DefaultTarget   = 2000
)

// SwapSource returns one page of swaps for token, newest first.
// *subgraph.Client satisfies it.
type SwapSource interface {
	FetchSwaps(ctx context.Context, token string, skip, first int) ([]models.Swap, error)
}

// Fetcher retrieves the most recent swaps of a token page by page.
// It holds no per-run state and may be shared between goroutines.
type Fetcher struct {
	source   SwapSource
	pageSize int
	target   int
}

// FetcherOption configures Fetcher.
type FetcherOption func(*Fetcher)

// WithPageSize sets the number of records requested per page.
func WithPageSize(n int) FetcherOption {
	return func(f *Fetcher) {
		if n > 0 {
			f.pageSize = n
		}
	}
}

// WithTarget sets the record count at which paging stops.
func WithTarget(n int) FetcherOption {
	return func(f *Fetcher) {
		if n > 0 {
			f.target = n
		}
	}
}

// NewFetcher creates a Fetcher over source.
func NewFetcher(source SwapSource, opts ...FetcherOption) *Fetcher {
	f := &Fetcher{
		source:   source,
		pageSize: DefaultPageSize,
		target:   DefaultTarget,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// PageSize returns the configured page size.
func (f *Fetcher) PageSize() int { return f.pageSize }

// Target returns the configured record target.
func (f *Fetcher) Target() int { return f.target }

// FetchAll pages through the source starting at offset 0.
//
// Paging stops when a page is empty, when the accumulated count reaches the
// target, or when a page is shorter than the page size. Pages are requested
// sequentially in increasing offset order and appended in fetch order.
//
// Any page failure aborts the operation: records from earlier pages are
// discarded and the error is returned as-is. The token is validated before
// any request is issued.
func (f *Fetcher) FetchAll(ctx context.Context, token string) (swaps []models.Swap, err error) {
	if err := address.Validate(token); err != nil {
		return nil, err
	}

	ctx, span := tracing.StartSpan(ctx, "ingestion.FetchAll", "token", token)
	defer func() { tracing.End(span, err) }()

	log := logger.L().With().Str("token", token).Logger()
	log.Info().Int("page_size", f.pageSize).Int("target", f.target).Msg("fetch start")

	var all []models.Swap
	for skip := 0; ; skip += f.pageSize {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("fetch swaps: %w", err)
		}

		start := time.Now()
		page, err := f.source.FetchSwaps(ctx, token, skip, f.pageSize)
		if err != nil {
			metrics.RecordSourceError(subgraph.ErrorKind(err))
			log.Error().Err(err).Int("skip", skip).Int("discarded", len(all)).Msg("page failed")
			return nil, err
		}
		metrics.RecordPage(len(page), time.Since(start).Seconds())

		if len(page) == 0 {
			if len(all) == 0 {
				log.Warn().Msg("no swaps found; the token may have no recent activity or no pools on this network")
			}
			break
		}

		all = append(all, page...)
		log.Debug().Int("skip", skip).Int("page", len(page)).Int("total", len(all)).Msg("page fetched")

		if len(all) >= f.target || len(page) < f.pageSize {
			break
		}
	}

	log.Info().Int("total", len(all)).Msg("fetch done")
	return all, nil
}
