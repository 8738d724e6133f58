package models

import "github.com/shopspring/decimal"

// TraderStats holds the running totals for one trader during a single run.
// The zero value (plus Address) is a valid starting point.
type TraderStats struct {
	Address              string
	TotalBuys            int
	TotalSells           int
	TotalBuyVolumeToken  decimal.Decimal
	TotalSellVolumeToken decimal.Decimal
	TotalBuyVolumeUSD    decimal.Decimal
	TotalSellVolumeUSD   decimal.Decimal
}

// NewTraderStats returns zeroed stats for address.
func NewTraderStats(address string) *TraderStats {
	return &TraderStats{
		Address:              address,
		TotalBuyVolumeToken:  decimal.Zero,
		TotalSellVolumeToken: decimal.Zero,
		TotalBuyVolumeUSD:    decimal.Zero,
		TotalSellVolumeUSD:   decimal.Zero,
	}
}

// Record applies one classified trade. Exactly one side is updated.
func (s *TraderStats) Record(t Trade) {
	if t.IsBuy {
		s.TotalBuys++
		s.TotalBuyVolumeToken = s.TotalBuyVolumeToken.Add(t.TokenAmount)
		s.TotalBuyVolumeUSD = s.TotalBuyVolumeUSD.Add(t.USDAmount)
		return
	}
	s.TotalSells++
	s.TotalSellVolumeToken = s.TotalSellVolumeToken.Add(t.TokenAmount)
	s.TotalSellVolumeUSD = s.TotalSellVolumeUSD.Add(t.USDAmount)
}

// TotalVolumeUSD is buy USD + sell USD.
func (s *TraderStats) TotalVolumeUSD() decimal.Decimal {
	return s.TotalBuyVolumeUSD.Add(s.TotalSellVolumeUSD)
}

// NetVolumeToken is buy token volume - sell token volume; may be negative.
func (s *TraderStats) NetVolumeToken() decimal.Decimal {
	return s.TotalBuyVolumeToken.Sub(s.TotalSellVolumeToken)
}
