package service

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/guttosm/dexboard/internal/domain/models"
)

// Rank orders traders by total USD volume (descending, address ascending on
// ties) and keeps the first limit entries. The summary always covers every
// trader, not just the kept ones. A negative limit is treated as 0.
func Rank(stats map[string]*models.TraderStats, limit int) ([]models.LeaderboardEntry, models.RunSummary) {
	entries := make([]models.LeaderboardEntry, 0, len(stats))
	for _, st := range stats {
		entries = append(entries, newEntry(st))
	}

	slices.SortFunc(entries, func(a, b models.LeaderboardEntry) int {
		if c := b.TotalVolumeUSD.Cmp(a.TotalVolumeUSD); c != 0 {
			return c
		}
		return strings.Compare(a.Address, b.Address)
	})

	summary := summarize(entries)

	if limit < 0 {
		limit = 0
	}
	if limit < len(entries) {
		entries = entries[:limit]
	}
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries, summary
}

func newEntry(st *models.TraderStats) models.LeaderboardEntry {
	return models.LeaderboardEntry{
		Address:              st.Address,
		TotalBuys:            st.TotalBuys,
		TotalSells:           st.TotalSells,
		TotalBuyVolumeToken:  st.TotalBuyVolumeToken,
		TotalSellVolumeToken: st.TotalSellVolumeToken,
		TotalBuyVolumeUSD:    st.TotalBuyVolumeUSD,
		TotalSellVolumeUSD:   st.TotalSellVolumeUSD,
		TotalVolumeUSD:       st.TotalVolumeUSD(),
		NetVolumeToken:       st.NetVolumeToken(),
		BuySellRatio:         models.NewRatio(st.TotalBuys, st.TotalSells),
	}
}

func summarize(entries []models.LeaderboardEntry) models.RunSummary {
	s := models.RunSummary{
		TotalTraders:           len(entries),
		TotalVolumeUSD:         decimal.Zero,
		AverageVolumePerTrader: decimal.Zero,
	}
	for _, e := range entries {
		s.TotalVolumeUSD = s.TotalVolumeUSD.Add(e.TotalVolumeUSD)
		s.TotalBuyTransactions += e.TotalBuys
		s.TotalSellTransactions += e.TotalSells
	}
	if s.TotalTraders > 0 {
		s.AverageVolumePerTrader = s.TotalVolumeUSD.Div(decimal.NewFromInt(int64(s.TotalTraders)))
	}
	return s
}
