package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Run status values stored in the run log.
const (
	RunStatusSuccess = "success"
	RunStatusFailed  = "failed"
)

// Run is one row of the run log: an audit record of a pipeline execution.
// It is written after the fact and never read back into a computation.
//
// swagger:model Run
type Run struct {
	RunID          string          `json:"run_id"`
	Token          string          `json:"token"`
	Network        string          `json:"network"`
	Demo           bool            `json:"demo"`
	SwapsFetched   int             `json:"swaps_fetched"`
	SwapsSkipped   int             `json:"swaps_skipped"`
	TotalTraders   int             `json:"total_traders"`
	TotalVolumeUSD decimal.Decimal `json:"total_volume_usd"`
	Status         string          `json:"status"`
	Error          string          `json:"error,omitempty"`
	StartedAt      time.Time       `json:"started_at"`
	FinishedAt     time.Time       `json:"finished_at"`
}
