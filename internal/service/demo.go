package service

import (
	"github.com/guttosm/dexboard/internal/domain/models"
	"github.com/guttosm/dexboard/internal/numeric"
)

// DemoToken is reported as the token of demo runs that did not name one.
const DemoToken = "demo"

var demoTraders = []struct {
	address             string
	buys, sells         int
	buyToken, sellToken string
	buyUSD, sellUSD     string
}{
	{"0x1234567890123456789012345678901234567890", 45, 32, "1234.5678", "987.1234", "125000.50", "98000.25"},
	{"0x2345678901234567890123456789012345678901", 23, 41, "567.8901", "789.2345", "87500.75", "95000.00"},
	{"0x3456789012345678901234567890123456789012", 67, 28, "2345.6789", "456.7890", "156000.25", "45000.80"},
	{"0x4567890123456789012345678901234567890123", 12, 18, "345.6789", "234.5678", "34500.00", "28900.50"},
	{"0x5678901234567890123456789012345678901234", 89, 76, "3456.7890", "2345.6789", "245000.75", "198000.25"},
	{"0x6789012345678901234567890123456789012345", 34, 56, "1234.5678", "1567.8901", "89000.50", "112000.75"},
	{"0x7890123456789012345678901234567890123456", 78, 43, "2789.0123", "1234.5678", "189000.25", "87500.50"},
	{"0x8901234567890123456789012345678901234567", 25, 67, "567.8901", "1890.1234", "56000.75", "145000.25"},
}

// DemoStats returns a fixed set of eight traders for offline runs.
func DemoStats() map[string]*models.TraderStats {
	out := make(map[string]*models.TraderStats, len(demoTraders))
	for _, d := range demoTraders {
		out[d.address] = &models.TraderStats{
			Address:              d.address,
			TotalBuys:            d.buys,
			TotalSells:           d.sells,
			TotalBuyVolumeToken:  numeric.MustParse(d.buyToken),
			TotalSellVolumeToken: numeric.MustParse(d.sellToken),
			TotalBuyVolumeUSD:    numeric.MustParse(d.buyUSD),
			TotalSellVolumeUSD:   numeric.MustParse(d.sellUSD),
		}
	}
	return out
}
