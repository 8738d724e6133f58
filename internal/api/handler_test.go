package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/guttosm/dexboard/internal/address"
	"github.com/guttosm/dexboard/internal/domain/dto"
	"github.com/guttosm/dexboard/internal/domain/models"
	"github.com/guttosm/dexboard/internal/service"
	"github.com/guttosm/dexboard/internal/subgraph"
)

const usdc = "0xa0b86991c6218b36c1d19d4a2e9eb0ce3606eb48"

type mockLeaderboards struct {
	lb      *models.Leaderboard
	err     error
	runs    []models.Run
	runsErr error

	gotQuery models.LeaderboardQuery
	gotToken string
	gotLimit int
}

func (m *mockLeaderboards) Build(_ context.Context, q models.LeaderboardQuery) (*models.Leaderboard, error) {
	m.gotQuery = q
	return m.lb, m.err
}

func (m *mockLeaderboards) RecentRuns(_ context.Context, token string, limit int) ([]models.Run, error) {
	m.gotToken, m.gotLimit = token, limit
	return m.runs, m.runsErr
}

var _ service.Leaderboards = (*mockLeaderboards)(nil)

func sampleLeaderboard() *models.Leaderboard {
	return &models.Leaderboard{
		RunID:   "run-1",
		Token:   usdc,
		Network: "ethereum",
		Entries: []models.LeaderboardEntry{{
			Rank:                 1,
			Address:              "0x000000000000000000000000000000000000000a",
			TotalBuys:            1,
			TotalBuyVolumeToken:  decimal.RequireFromString("10.000000000000000001"),
			TotalSellVolumeToken: decimal.Zero,
			TotalBuyVolumeUSD:    decimal.NewFromInt(50),
			TotalSellVolumeUSD:   decimal.Zero,
			TotalVolumeUSD:       decimal.NewFromInt(50),
			NetVolumeToken:       decimal.RequireFromString("10.000000000000000001"),
			BuySellRatio:         models.NewRatio(1, 0),
		}},
		Summary: models.RunSummary{
			TotalTraders:           1,
			TotalVolumeUSD:         decimal.NewFromInt(50),
			TotalBuyTransactions:   1,
			AverageVolumePerTrader: decimal.NewFromInt(50),
		},
		Diagnostics: models.Diagnostics{SwapsFetched: 1, SwapsProcessed: 1},
		GeneratedAt: time.Now().UTC(),
	}
}

func setupRouterWithMock(m *mockLeaderboards) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(m, 20)
	r := gin.New()
	v1 := r.Group("/api/v1")
	v1.POST("/leaderboard", h.PostLeaderboard)
	v1.GET("/leaderboard", h.GetLeaderboard)
	v1.GET("/runs", h.ListRuns)
	return r
}

func TestPostLeaderboard_TableDriven(t *testing.T) {
	cases := []struct {
		name   string
		svc    *mockLeaderboards
		body   string
		status int
		assert func(t *testing.T, m *mockLeaderboards, body []byte)
	}{
		{
			name:   "success",
			svc:    &mockLeaderboards{lb: sampleLeaderboard()},
			body:   `{"token_address":"` + usdc + `"}`,
			status: http.StatusOK,
			assert: func(t *testing.T, m *mockLeaderboards, body []byte) {
				if m.gotQuery.Limit != 20 || m.gotQuery.Token != usdc {
					t.Fatalf("query not defaulted: %+v", m.gotQuery)
				}
				var resp dto.LeaderboardResponse
				if err := json.Unmarshal(body, &resp); err != nil {
					t.Fatalf("json: %v", err)
				}
				tr := resp.Traders[0]
				if tr.TotalBuyVolumeToken != "10.000000000000000001" || tr.BuySellRatio != "∞" || tr.TotalVolumeUSD != "50" {
					t.Fatalf("unexpected trader: %+v", tr)
				}
				if resp.Summary.AverageVolumePerTrader != "50" || resp.RunID != "run-1" {
					t.Fatalf("unexpected summary: %+v", resp)
				}
			},
		},
		{
			name:   "explicit params",
			svc:    &mockLeaderboards{lb: sampleLeaderboard()},
			body:   `{"token_address":"` + usdc + `","limit":0,"network":"arbitrum","start_block":10,"end_block":20}`,
			status: http.StatusOK,
			assert: func(t *testing.T, m *mockLeaderboards, _ []byte) {
				q := m.gotQuery
				if q.Limit != 0 || q.Network != "arbitrum" || *q.StartBlock != 10 || *q.EndBlock != 20 {
					t.Fatalf("unexpected query: %+v", q)
				}
			},
		},
		{
			name:   "demo without token",
			svc:    &mockLeaderboards{lb: sampleLeaderboard()},
			body:   `{"demo":true}`,
			status: http.StatusOK,
			assert: func(t *testing.T, m *mockLeaderboards, _ []byte) {
				if !m.gotQuery.Demo {
					t.Fatalf("demo not forwarded")
				}
			},
		},
		{name: "bad json", svc: &mockLeaderboards{}, body: `{`, status: http.StatusBadRequest},
		{name: "missing token", svc: &mockLeaderboards{}, body: `{}`, status: http.StatusBadRequest},
		{name: "negative limit", svc: &mockLeaderboards{}, body: `{"token_address":"` + usdc + `","limit":-1}`, status: http.StatusBadRequest},
		{name: "huge limit", svc: &mockLeaderboards{}, body: `{"token_address":"` + usdc + `","limit":100000}`, status: http.StatusBadRequest},
		{name: "inverted range", svc: &mockLeaderboards{}, body: `{"token_address":"` + usdc + `","start_block":20,"end_block":10}`, status: http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := setupRouterWithMock(tc.svc)
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/leaderboard", bytes.NewBufferString(tc.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)
			if w.Code != tc.status {
				t.Fatalf("status=%d, want %d, body=%s", w.Code, tc.status, w.Body.String())
			}
			if tc.assert != nil {
				tc.assert(t, tc.svc, w.Body.Bytes())
			}
		})
	}
}

func TestPostLeaderboard_ErrorMapping(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		status   int
		wantHint bool
	}{
		{name: "invalid address", err: fmt.Errorf("%w: %q", address.ErrInvalidTokenAddress, "0x1"), status: http.StatusBadRequest},
		{name: "unknown network", err: fmt.Errorf("%w: solana", subgraph.ErrUnknownNetwork), status: http.StatusBadRequest},
		{name: "html payload", err: &subgraph.HTMLPayloadError{Token: usdc}, status: http.StatusNotFound, wantHint: true},
		{name: "malformed", err: fmt.Errorf("%w: eof", subgraph.ErrMalformedResponse), status: http.StatusBadGateway},
		{name: "source status", err: &subgraph.SourceError{Status: 500, Body: "x"}, status: http.StatusBadGateway},
		{name: "query error", err: &subgraph.QueryError{Messages: []string{"boom"}}, status: http.StatusBadGateway},
		{name: "unavailable", err: fmt.Errorf("%w: dial", subgraph.ErrSourceUnavailable), status: http.StatusServiceUnavailable},
		{name: "deadline", err: fmt.Errorf("%w: %w", subgraph.ErrSourceUnavailable, context.DeadlineExceeded), status: http.StatusGatewayTimeout},
		{name: "other", err: errors.New("boom"), status: http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := setupRouterWithMock(&mockLeaderboards{err: tc.err})
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/leaderboard", bytes.NewBufferString(`{"token_address":"`+usdc+`"}`))
			r.ServeHTTP(w, req)
			if w.Code != tc.status {
				t.Fatalf("status=%d, want %d", w.Code, tc.status)
			}
			var body dto.ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("json: %v", err)
			}
			if body.ErrorDetails == "" {
				t.Fatalf("missing error details")
			}
			if (body.Hint != "") != tc.wantHint {
				t.Fatalf("hint=%q, wantHint=%v", body.Hint, tc.wantHint)
			}
		})
	}
}

func TestGetLeaderboard_Query(t *testing.T) {
	cases := []struct {
		name   string
		query  string
		status int
	}{
		{name: "ok", query: "?token=" + usdc + "&limit=5&network=base&start_block=1&end_block=2&demo=false", status: http.StatusOK},
		{name: "demo only", query: "?demo=true", status: http.StatusOK},
		{name: "bad limit", query: "?token=" + usdc + "&limit=abc", status: http.StatusBadRequest},
		{name: "bad block", query: "?token=" + usdc + "&start_block=-5", status: http.StatusBadRequest},
		{name: "bad demo", query: "?demo=maybe", status: http.StatusBadRequest},
		{name: "missing token", query: "", status: http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := &mockLeaderboards{lb: sampleLeaderboard()}
			r := setupRouterWithMock(m)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/leaderboard"+tc.query, nil))
			if w.Code != tc.status {
				t.Fatalf("status=%d, want %d, body=%s", w.Code, tc.status, w.Body.String())
			}
			if tc.name == "ok" {
				q := m.gotQuery
				if q.Limit != 5 || q.Network != "base" || *q.StartBlock != 1 || *q.EndBlock != 2 {
					t.Fatalf("unexpected query: %+v", q)
				}
			}
		})
	}
}

func TestListRuns(t *testing.T) {
	cases := []struct {
		name   string
		svc    *mockLeaderboards
		query  string
		status int
	}{
		{name: "ok", svc: &mockLeaderboards{runs: []models.Run{{RunID: "r1"}}}, query: "?token=" + usdc + "&limit=5", status: http.StatusOK},
		{name: "empty", svc: &mockLeaderboards{}, query: "", status: http.StatusOK},
		{name: "bad limit", svc: &mockLeaderboards{}, query: "?limit=0", status: http.StatusBadRequest},
		{name: "disabled", svc: &mockLeaderboards{runsErr: service.ErrRunLogDisabled}, query: "", status: http.StatusServiceUnavailable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := setupRouterWithMock(tc.svc)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/runs"+tc.query, nil))
			if w.Code != tc.status {
				t.Fatalf("status=%d, want %d", w.Code, tc.status)
			}
			if tc.status != http.StatusOK {
				return
			}
			var resp dto.RunsResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("json: %v", err)
			}
			if resp.Runs == nil || resp.Count != len(tc.svc.runs) {
				t.Fatalf("unexpected body: %s", w.Body.String())
			}
		})
	}
}
