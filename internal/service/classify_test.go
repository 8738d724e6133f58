package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/guttosm/dexboard/internal/numeric"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name      string
		target    string
		amount0   string
		amount1   string
		usd       string
		wantBuy   bool
		wantToken string
		wantUSD   string
	}{
		{name: "token0 negative is buy", target: usdc, amount0: "-5", amount1: "0.002", usd: "100", wantBuy: true, wantToken: "5", wantUSD: "100"},
		{name: "token0 positive is sell", target: usdc, amount0: "7.25", amount1: "-0.003", usd: "7.3", wantBuy: false, wantToken: "7.25", wantUSD: "7.3"},
		{name: "token1 positive is sell", target: weth, amount0: "-6000", amount1: "3", usd: "6000", wantBuy: false, wantToken: "3", wantUSD: "6000"},
		{name: "token1 negative is buy", target: weth, amount0: "2000", amount1: "-1", usd: "2000", wantBuy: true, wantToken: "1", wantUSD: "2000"},
		{name: "zero delta is sell", target: usdc, amount0: "0", amount1: "0", usd: "0", wantBuy: false, wantToken: "0", wantUSD: "0"},
		{name: "negative usd is absolute", target: usdc, amount0: "-1", amount1: "1", usd: "-12.5", wantBuy: true, wantToken: "1", wantUSD: "12.5"},
		{name: "target case-insensitive", target: strings.ToUpper("0x" + usdc[2:]), amount0: "-1", amount1: "1", usd: "1", wantBuy: true, wantToken: "1", wantUSD: "1"},
		{name: "full precision kept", target: usdc, amount0: "-0.000000000000000001", amount1: "1", usd: "0.01", wantBuy: true, wantToken: "0.000000000000000001", wantUSD: "0.01"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			trade, err := Classify(mkSwap("x", traderA, tc.amount0, tc.amount1, tc.usd), tc.target)
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if trade.IsBuy != tc.wantBuy {
				t.Fatalf("IsBuy=%v, want %v", trade.IsBuy, tc.wantBuy)
			}
			if !trade.TokenAmount.Equal(decimal.RequireFromString(tc.wantToken)) {
				t.Fatalf("token=%s, want %s", trade.TokenAmount, tc.wantToken)
			}
			if !trade.USDAmount.Equal(decimal.RequireFromString(tc.wantUSD)) {
				t.Fatalf("usd=%s, want %s", trade.USDAmount, tc.wantUSD)
			}
		})
	}
}

func TestClassify_PoolIDCaseInsensitive(t *testing.T) {
	s := mkSwap("x", traderA, "-1", "1", "1")
	s.Pool.Token0.ID = "0xA0B86991C6218B36C1D19D4A2E9EB0CE3606EB48"
	trade, err := Classify(s, usdc)
	if err != nil || !trade.IsBuy {
		t.Fatalf("expected buy, got %+v err=%v", trade, err)
	}
}

func TestClassify_Errors(t *testing.T) {
	cases := []struct {
		name    string
		target  string
		amount0 string
		usd     string
		want    error
	}{
		{name: "token not in pool", target: dai, amount0: "-1", usd: "1", want: ErrTokenNotInPool},
		{name: "bad amount", target: usdc, amount0: "1e5", usd: "1", want: numeric.ErrInvalidFormat},
		{name: "bad usd", target: usdc, amount0: "-1", usd: "NaN", want: numeric.ErrInvalidFormat},
		{name: "empty amount", target: usdc, amount0: "", usd: "1", want: numeric.ErrInvalidFormat},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Classify(mkSwap("x", traderA, tc.amount0, "1", tc.usd), tc.target)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}
