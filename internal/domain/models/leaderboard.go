package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RatioPrecision is the number of decimal places kept for buy/sell ratios.
const RatioPrecision = 4

// Ratio is a buy/sell ratio. When a trader only bought, the ratio has no
// finite value and Unbounded is set.
type Ratio struct {
	Value     decimal.Decimal
	Unbounded bool
}

// NewRatio computes buys/sells.
//   - sells > 0: buys/sells rounded to RatioPrecision places
//   - sells == 0 && buys > 0: unbounded
//   - both zero: 0
func NewRatio(buys, sells int) Ratio {
	switch {
	case sells > 0:
		return Ratio{Value: decimal.NewFromInt(int64(buys)).DivRound(decimal.NewFromInt(int64(sells)), RatioPrecision)}
	case buys > 0:
		return Ratio{Unbounded: true}
	default:
		return Ratio{Value: decimal.Zero}
	}
}

// String renders the ratio; unbounded ratios render as "∞".
func (r Ratio) String() string {
	if r.Unbounded {
		return "∞"
	}
	return r.Value.String()
}

// LeaderboardEntry is one trader's derived, read-only statistics.
type LeaderboardEntry struct {
	Rank                 int
	Address              string
	TotalBuys            int
	TotalSells           int
	TotalBuyVolumeToken  decimal.Decimal
	TotalSellVolumeToken decimal.Decimal
	TotalBuyVolumeUSD    decimal.Decimal
	TotalSellVolumeUSD   decimal.Decimal
	TotalVolumeUSD       decimal.Decimal
	NetVolumeToken       decimal.Decimal
	BuySellRatio         Ratio
}

// RunSummary aggregates the full ranked set of a run, before any display limit.
type RunSummary struct {
	TotalTraders           int
	TotalVolumeUSD         decimal.Decimal
	TotalBuyTransactions   int
	TotalSellTransactions  int
	AverageVolumePerTrader decimal.Decimal
}

// Diagnostics reports what happened to the raw records of a run.
type Diagnostics struct {
	SwapsFetched    int
	SwapsFiltered   int
	SwapsProcessed  int
	SwapsSkipped    int
	SkippedByReason map[string]int
}

// LeaderboardQuery is the input of one pipeline run.
//
// StartBlock/EndBlock are applied to the fetched set after pagination; the
// fetcher itself always pages over the newest swaps.
type LeaderboardQuery struct {
	Token      string
	Network    string
	Limit      int
	StartBlock *uint64
	EndBlock   *uint64
	Demo       bool
}

// Leaderboard is the output of one pipeline run.
type Leaderboard struct {
	RunID       string
	Token       string
	Network     string
	Demo        bool
	Entries     []LeaderboardEntry
	Summary     RunSummary
	Diagnostics Diagnostics
	GeneratedAt time.Time
}
