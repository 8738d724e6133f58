// Package service turns fetched swaps into a ranked trader leaderboard.
package service

import (
	"errors"
	"fmt"

	"github.com/guttosm/dexboard/internal/address"
	"github.com/guttosm/dexboard/internal/domain/models"
	"github.com/guttosm/dexboard/internal/numeric"
)

// ErrTokenNotInPool is returned when the target token is neither side of a swap's pool.
var ErrTokenNotInPool = errors.New("token not in pool")

// Classify decides the direction and magnitudes of swap relative to target.
//
// The delta of whichever pool side matches target decides direction: a
// negative delta is a buy, zero or positive is a sell. TokenAmount is the
// absolute delta and USDAmount the absolute USD notional.
func Classify(swap models.Swap, target string) (models.Trade, error) {
	target = address.Normalize(target)

	var raw string
	switch target {
	case address.Normalize(swap.Pool.Token0.ID):
		raw = swap.Amount0
	case address.Normalize(swap.Pool.Token1.ID):
		raw = swap.Amount1
	default:
		return models.Trade{}, fmt.Errorf("%w: %s not in pool %s", ErrTokenNotInPool, target, swap.Pool.ID)
	}

	delta, err := numeric.Parse(raw)
	if err != nil {
		return models.Trade{}, fmt.Errorf("token amount: %w", err)
	}
	usd, err := numeric.Parse(swap.AmountUSD)
	if err != nil {
		return models.Trade{}, fmt.Errorf("usd amount: %w", err)
	}

	return models.Trade{
		IsBuy:       delta.IsNegative(),
		TokenAmount: delta.Abs(),
		USDAmount:   usd.Abs(),
	}, nil
}
