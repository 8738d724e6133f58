package dto

import (
	"time"

	"github.com/guttosm/dexboard/internal/domain/models"
)

// LeaderboardResponse is the JSON structure returned by the leaderboard endpoints.
//
// Every decimal quantity is an exact decimal string; the API never emits
// binary floats for token or USD amounts.
type LeaderboardResponse struct {
	RunID       string                `json:"run_id"`
	Token       string                `json:"token,omitempty"`
	Network     string                `json:"network,omitempty"`
	Demo        bool                  `json:"demo,omitempty"`
	Traders     []TraderEntryResponse `json:"traders"`
	Summary     SummaryResponse       `json:"summary"`
	Diagnostics DiagnosticsResponse   `json:"diagnostics"`
	GeneratedAt time.Time             `json:"generated_at"`
}

// TraderEntryResponse is one ranked trader.
type TraderEntryResponse struct {
	Rank                 int    `json:"rank" example:"1"`
	Address              string `json:"address" example:"0x5678901234567890123456789012345678901234"`
	TotalBuys            int    `json:"total_buys" example:"89"`
	TotalSells           int    `json:"total_sells" example:"76"`
	TotalBuyVolumeToken  string `json:"total_buy_volume_token" example:"3456.789"`
	TotalSellVolumeToken string `json:"total_sell_volume_token" example:"2345.6789"`
	TotalBuyVolumeUSD    string `json:"total_buy_volume_usd" example:"245000.75"`
	TotalSellVolumeUSD   string `json:"total_sell_volume_usd" example:"198000.25"`
	TotalVolumeUSD       string `json:"total_volume_usd" example:"443001"`
	NetVolumeToken       string `json:"net_volume_token" example:"1111.1101"`
	BuySellRatio         string `json:"buy_sell_ratio" example:"1.1711"`
}

// SummaryResponse describes the whole ranked set, not just the returned page.
type SummaryResponse struct {
	TotalTraders           int    `json:"total_traders" example:"8"`
	TotalVolumeUSD         string `json:"total_volume_usd" example:"1791407.05"`
	TotalBuyTransactions   int    `json:"total_buy_transactions" example:"373"`
	TotalSellTransactions  int    `json:"total_sell_transactions" example:"361"`
	AverageVolumePerTrader string `json:"average_volume_per_trader" example:"223925.88125"`
}

// DiagnosticsResponse exposes how many raw swaps were used or skipped.
type DiagnosticsResponse struct {
	SwapsFetched    int            `json:"swaps_fetched"`
	SwapsFiltered   int            `json:"swaps_filtered"`
	SwapsProcessed  int            `json:"swaps_processed"`
	SwapsSkipped    int            `json:"swaps_skipped"`
	SkippedByReason map[string]int `json:"skipped_by_reason,omitempty"`
}

// NewLeaderboardResponse maps a domain leaderboard into its API shape.
func NewLeaderboardResponse(lb *models.Leaderboard) LeaderboardResponse {
	traders := make([]TraderEntryResponse, 0, len(lb.Entries))
	for _, e := range lb.Entries {
		traders = append(traders, TraderEntryResponse{
			Rank:                 e.Rank,
			Address:              e.Address,
			TotalBuys:            e.TotalBuys,
			TotalSells:           e.TotalSells,
			TotalBuyVolumeToken:  e.TotalBuyVolumeToken.String(),
			TotalSellVolumeToken: e.TotalSellVolumeToken.String(),
			TotalBuyVolumeUSD:    e.TotalBuyVolumeUSD.String(),
			TotalSellVolumeUSD:   e.TotalSellVolumeUSD.String(),
			TotalVolumeUSD:       e.TotalVolumeUSD.String(),
			NetVolumeToken:       e.NetVolumeToken.String(),
			BuySellRatio:         e.BuySellRatio.String(),
		})
	}

	return LeaderboardResponse{
		RunID:   lb.RunID,
		Token:   lb.Token,
		Network: lb.Network,
		Demo:    lb.Demo,
		Traders: traders,
		Summary: SummaryResponse{
			TotalTraders:           lb.Summary.TotalTraders,
			TotalVolumeUSD:         lb.Summary.TotalVolumeUSD.String(),
			TotalBuyTransactions:   lb.Summary.TotalBuyTransactions,
			TotalSellTransactions:  lb.Summary.TotalSellTransactions,
			AverageVolumePerTrader: lb.Summary.AverageVolumePerTrader.String(),
		},
		Diagnostics: DiagnosticsResponse{
			SwapsFetched:    lb.Diagnostics.SwapsFetched,
			SwapsFiltered:   lb.Diagnostics.SwapsFiltered,
			SwapsProcessed:  lb.Diagnostics.SwapsProcessed,
			SwapsSkipped:    lb.Diagnostics.SwapsSkipped,
			SkippedByReason: lb.Diagnostics.SkippedByReason,
		},
		GeneratedAt: lb.GeneratedAt,
	}
}
