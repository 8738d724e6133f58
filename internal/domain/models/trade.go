package models

import "github.com/shopspring/decimal"

// Trade is a swap classified relative to a target token.
//
// Fields:
//   - IsBuy: true when the trader acquired the target token.
//   - TokenAmount: absolute amount of the target token moved (>= 0).
//   - USDAmount: absolute USD notional of the swap (>= 0).
type Trade struct {
	IsBuy       bool
	TokenAmount decimal.Decimal
	USDAmount   decimal.Decimal
}
