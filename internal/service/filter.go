package service

import (
	"strconv"

	"github.com/guttosm/dexboard/internal/domain/models"
)

// FilterByBlockRange keeps swaps whose block lies in [start, end]. Either
// bound may be nil. Swaps with an unparseable block number are kept. It
// returns the kept swaps and how many were dropped.
func FilterByBlockRange(swaps []models.Swap, start, end *uint64) ([]models.Swap, int) {
	if start == nil && end == nil {
		return swaps, 0
	}

	out := make([]models.Swap, 0, len(swaps))
	for _, s := range swaps {
		block, err := strconv.ParseUint(s.Transaction.BlockNumber, 10, 64)
		if err == nil {
			if start != nil && block < *start {
				continue
			}
			if end != nil && block > *end {
				continue
			}
		}
		out = append(out, s)
	}
	return out, len(swaps) - len(out)
}
