package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/dexboard/internal/domain/dto"
	"github.com/guttosm/dexboard/internal/domain/models"
	"github.com/guttosm/dexboard/internal/middleware"
	"github.com/guttosm/dexboard/internal/service"
)

// MaxLimit caps the number of traders a single request may ask for.
const MaxLimit = 1000

// Handler provides HTTP handlers for the leaderboard endpoints.
//
// Responsibilities:
//   - Validate request bodies and query parameters
//   - Run the leaderboard pipeline with the request context
//   - Translate pipeline errors into status codes and dto.ErrorResponse
type Handler struct {
	svc          service.Leaderboards
	defaultLimit int
}

// NewHandler constructs a Handler. defaultLimit applies when a request omits
// limit.
func NewHandler(svc service.Leaderboards, defaultLimit int) *Handler {
	if defaultLimit <= 0 {
		defaultLimit = 20
	}
	return &Handler{svc: svc, defaultLimit: defaultLimit}
}

// PostLeaderboard handles POST /api/v1/leaderboard.
//
// PostLeaderboard godoc
// @Summary      Build a trader leaderboard
// @Description  Fetches the most recent swaps of a token, classifies them as buys or sells and ranks traders by USD volume
// @Tags         leaderboard
// @Accept       json
// @Produce      json
// @Param        request  body      dto.LeaderboardRequest   true  "Leaderboard request"
// @Success      200      {object}  dto.LeaderboardResponse  "Success"
// @Failure      400      {object}  dto.ErrorResponse        "Bad Request"
// @Failure      404      {object}  dto.ErrorResponse        "Token has no pools"
// @Failure      502      {object}  dto.ErrorResponse        "Upstream error"
// @Failure      503      {object}  dto.ErrorResponse        "Upstream unavailable"
// @Failure      504      {object}  dto.ErrorResponse        "Timeout"
// @Router       /api/v1/leaderboard [post]
func (h *Handler) PostLeaderboard(c *gin.Context) {
	var req dto.LeaderboardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}
	h.build(c, req)
}

// GetLeaderboard handles GET /api/v1/leaderboard.
//
// GetLeaderboard godoc
// @Summary      Build a trader leaderboard (query form)
// @Description  Same as the POST form, with parameters in the query string
// @Tags         leaderboard
// @Produce      json
// @Param        token        query     string  false  "Token address (required unless demo)" example(0xa0b86991c6218b36c1d19d4a2e9eb0ce3606eb48)
// @Param        limit        query     int     false  "Number of traders to return" example(20)
// @Param        network      query     string  false  "Network key" example(ethereum)
// @Param        start_block  query     int     false  "Lowest block to include"
// @Param        end_block    query     int     false  "Highest block to include"
// @Param        demo         query     bool    false  "Use demo data"
// @Success      200          {object}  dto.LeaderboardResponse  "Success"
// @Failure      400          {object}  dto.ErrorResponse        "Bad Request"
// @Failure      404          {object}  dto.ErrorResponse        "Token has no pools"
// @Failure      502          {object}  dto.ErrorResponse        "Upstream error"
// @Failure      503          {object}  dto.ErrorResponse        "Upstream unavailable"
// @Failure      504          {object}  dto.ErrorResponse        "Timeout"
// @Router       /api/v1/leaderboard [get]
func (h *Handler) GetLeaderboard(c *gin.Context) {
	req := dto.LeaderboardRequest{
		TokenAddress: strings.TrimSpace(c.Query("token")),
		Network:      strings.TrimSpace(c.Query("network")),
	}

	if s := c.Query("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			middleware.AbortWithError(c, http.StatusBadRequest, "invalid limit", err)
			return
		}
		req.Limit = &n
	}
	var err error
	if req.StartBlock, err = queryBlock(c, "start_block"); err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid start_block", err)
		return
	}
	if req.EndBlock, err = queryBlock(c, "end_block"); err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid end_block", err)
		return
	}
	if s := c.Query("demo"); s != "" {
		b, err := strconv.ParseBool(s)
		if err != nil {
			middleware.AbortWithError(c, http.StatusBadRequest, "invalid demo", err)
			return
		}
		req.Demo = b
	}

	h.build(c, req)
}

func queryBlock(c *gin.Context, name string) (*uint64, error) {
	s := c.Query(name)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (h *Handler) build(c *gin.Context, req dto.LeaderboardRequest) {
	q, resp, ok := h.toQuery(req)
	if !ok {
		middleware.AbortWithResponse(c, http.StatusBadRequest, resp, nil)
		return
	}

	lb, err := h.svc.Build(c.Request.Context(), q)
	if err != nil {
		status, resp := errorResponse(err)
		middleware.AbortWithResponse(c, status, resp, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewLeaderboardResponse(lb))
}

// toQuery validates req. Token format is checked by the pipeline itself.
func (h *Handler) toQuery(req dto.LeaderboardRequest) (models.LeaderboardQuery, dto.ErrorResponse, bool) {
	q := models.LeaderboardQuery{
		Token:      req.TokenAddress,
		Network:    req.Network,
		Limit:      h.defaultLimit,
		StartBlock: req.StartBlock,
		EndBlock:   req.EndBlock,
		Demo:       req.Demo,
	}

	if req.Limit != nil {
		if *req.Limit < 0 || *req.Limit > MaxLimit {
			return q, dto.NewErrorResponse("limit must be between 0 and "+strconv.Itoa(MaxLimit), nil), false
		}
		q.Limit = *req.Limit
	}
	if !q.Demo && strings.TrimSpace(q.Token) == "" {
		return q, dto.NewErrorResponse("token_address is required unless demo is true", nil), false
	}
	if q.StartBlock != nil && q.EndBlock != nil && *q.StartBlock > *q.EndBlock {
		return q, dto.NewErrorResponse("start_block must not exceed end_block", nil), false
	}
	return q, dto.ErrorResponse{}, true
}

// ListRuns handles GET /api/v1/runs.
//
// ListRuns godoc
// @Summary      List recent pipeline runs
// @Description  Returns the run log, newest first. Available only when the run log is enabled.
// @Tags         runs
// @Produce      json
// @Param        token  query     string  false  "Filter by token address"
// @Param        limit  query     int     false  "Maximum number of runs" example(20)
// @Success      200    {object}  dto.RunsResponse   "Success"
// @Failure      400    {object}  dto.ErrorResponse  "Bad Request"
// @Failure      503    {object}  dto.ErrorResponse  "Run log disabled"
// @Failure      500    {object}  dto.ErrorResponse  "Internal Error"
// @Router       /api/v1/runs [get]
func (h *Handler) ListRuns(c *gin.Context) {
	limit := h.defaultLimit
	if s := c.Query("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 || n > MaxLimit {
			middleware.AbortWithError(c, http.StatusBadRequest, "invalid limit", err)
			return
		}
		limit = n
	}

	runs, err := h.svc.RecentRuns(c.Request.Context(), strings.TrimSpace(c.Query("token")), limit)
	if err != nil {
		status, resp := errorResponse(err)
		middleware.AbortWithResponse(c, status, resp, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewRunsResponse(runs))
}
