package dto

// LeaderboardRequest is the JSON body accepted by POST /api/v1/leaderboard.
//
// TokenAddress is required unless Demo is true. Limit defaults to the configured
// DEFAULT_LIMIT when omitted; Network defaults to the configured NETWORK.
type LeaderboardRequest struct {
	TokenAddress string  `json:"token_address" example:"0xa0b86991c6218b36c1d19d4a2e9eb0ce3606eb48"`
	StartBlock   *uint64 `json:"start_block,omitempty" example:"18284000"`
	EndBlock     *uint64 `json:"end_block,omitempty"`
	Limit        *int    `json:"limit,omitempty" example:"20"`
	Demo         bool    `json:"demo,omitempty"`
	Network      string  `json:"network,omitempty" example:"ethereum"`
}
