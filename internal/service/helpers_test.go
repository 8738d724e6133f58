package service

import "github.com/guttosm/dexboard/internal/domain/models"

const (
	usdc = "0xa0b86991c6218b36c1d19d4a2e9eb0ce3606eb48"
	weth = "0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2"
	dai  = "0x6b175474e89094c44da98b954eedeac495271d0f"

	traderA = "0x000000000000000000000000000000000000000a"
	traderB = "0x000000000000000000000000000000000000000b"
)

// mkSwap builds a USDC/WETH swap. amount0 is the USDC delta.
func mkSwap(id, sender, amount0, amount1, usd string) models.Swap {
	return models.Swap{
		ID:        id,
		Sender:    sender,
		Recipient: sender,
		Amount0:   amount0,
		Amount1:   amount1,
		AmountUSD: usd,
		Pool: models.Pool{
			ID:     "0xpool",
			Token0: models.Token{ID: usdc, Symbol: "USDC", Decimals: "6"},
			Token1: models.Token{ID: weth, Symbol: "WETH", Decimals: "18"},
		},
		Transaction: models.Transaction{BlockNumber: "18500000"},
	}
}

// abSwaps is A buys 10 ($50), A sells 4 ($20), B buys 1 ($5).
func abSwaps() []models.Swap {
	return []models.Swap{
		mkSwap("1", traderA, "-10", "0.02", "50"),
		mkSwap("2", traderA, "4", "-0.008", "20"),
		mkSwap("3", traderB, "-1", "0.002", "5"),
	}
}
