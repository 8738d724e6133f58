package models

// Swap is a single swap event as returned by the subgraph.
// All quantities are kept as the decimal strings the source sent; they are
// parsed only when the swap is classified.
//
// swagger:model Swap
type Swap struct {
	ID          string      `json:"id"`
	Timestamp   string      `json:"timestamp"`
	Sender      string      `json:"sender"`
	Recipient   string      `json:"recipient"`
	Amount0     string      `json:"amount0"`
	Amount1     string      `json:"amount1"`
	AmountUSD   string      `json:"amountUSD"`
	Pool        Pool        `json:"pool"`
	Transaction Transaction `json:"transaction"`
}

// Pool is the token0/token1 pair the swap executed against, with its state at
// swap time.
type Pool struct {
	ID        string  `json:"id"`
	Token0    Token   `json:"token0"`
	Token1    Token   `json:"token1"`
	Tick      *string `json:"tick"`
	SqrtPrice string  `json:"sqrtPrice"`
}

// Token describes one member of a pool.
type Token struct {
	ID       string `json:"id"`
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Decimals string `json:"decimals"`
}

// Transaction carries the block the swap was mined in (string-encoded integer).
type Transaction struct {
	BlockNumber string `json:"blockNumber"`
}
