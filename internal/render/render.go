// Package render prints leaderboards for terminal output.
package render

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/guttosm/dexboard/internal/domain/models"
)

const rule = "═══════════════════════════════════════════════════════════════════════════════════════"

// Leaderboard writes lb as an aligned table followed by the summary and
// diagnostics sections.
func Leaderboard(w io.Writer, lb *models.Leaderboard) error {
	var b strings.Builder

	b.WriteString("\nUNISWAP V3 TRADER LEADERBOARD\n")
	if lb.Demo {
		b.WriteString("(demo data)\n")
	} else {
		fmt.Fprintf(&b, "Token: %s  Network: %s\n", lb.Token, lb.Network)
	}
	b.WriteString(rule + "\n")

	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Rank\tTrader Address\tBuys\tSells\tTotal Vol USD\tNet Token Vol\tBuy/Sell Ratio")
	for _, e := range lb.Entries {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t$%s\t%s\t%s\n",
			e.Rank,
			e.Address,
			e.TotalBuys,
			e.TotalSells,
			e.TotalVolumeUSD.StringFixed(2),
			NetVolume(e),
			Ratio(e),
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	b.WriteString(rule + "\n")

	s := lb.Summary
	b.WriteString("\nSUMMARY STATISTICS\n")
	b.WriteString("─────────────────────\n")
	fmt.Fprintf(&b, "Total Traders: %d\n", s.TotalTraders)
	fmt.Fprintf(&b, "Total Volume (USD): $%s\n", s.TotalVolumeUSD.StringFixed(2))
	fmt.Fprintf(&b, "Total Buy Transactions: %d\n", s.TotalBuyTransactions)
	fmt.Fprintf(&b, "Total Sell Transactions: %d\n", s.TotalSellTransactions)
	fmt.Fprintf(&b, "Average Volume per Trader: $%s\n", s.AverageVolumePerTrader.StringFixed(2))

	if !lb.Demo {
		d := lb.Diagnostics
		fmt.Fprintf(&b, "\nSwaps fetched: %d, outside block range: %d, processed: %d, skipped: %d\n",
			d.SwapsFetched, d.SwapsFiltered, d.SwapsProcessed, d.SwapsSkipped)
		for _, reason := range slices.Sorted(maps.Keys(d.SkippedByReason)) {
			fmt.Fprintf(&b, "  %s: %d\n", reason, d.SkippedByReason[reason])
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// NetVolume renders the net token volume with an explicit sign and 4 places.
func NetVolume(e models.LeaderboardEntry) string {
	s := e.NetVolumeToken.StringFixed(4)
	if !e.NetVolumeToken.IsNegative() {
		return "+" + s
	}
	return s
}

// Ratio renders the buy/sell ratio with 2 places, "∞" for buy-only traders
// and "0" for traders with no trades.
func Ratio(e models.LeaderboardEntry) string {
	switch {
	case e.BuySellRatio.Unbounded:
		return "∞"
	case e.TotalBuys == 0 && e.TotalSells == 0:
		return "0"
	default:
		return e.BuySellRatio.Value.StringFixed(2)
	}
}

// NoSwapsMessage explains an empty live run.
func NoSwapsMessage(network string) string {
	return strings.Join([]string{
		"No swaps found for the specified token and block range.",
		"",
		"Possible reasons:",
		"  - the subgraph gateway requires an API key (GRAPH_API_KEY)",
		"  - no trading activity in the specified block range",
		"  - the token is not traded on Uniswap v3 on " + network,
		"",
		"Try --demo to see sample output.",
	}, "\n")
}
