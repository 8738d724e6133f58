// Package subgraph implements the swap source on top of a Uniswap v3 subgraph
// GraphQL endpoint.
package subgraph

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/guttosm/dexboard/internal/address"
	"github.com/guttosm/dexboard/internal/domain/models"
	"github.com/guttosm/dexboard/internal/logger"
	"github.com/guttosm/dexboard/internal/tracing"
)

// Default configuration values.
const (
	DefaultTimeout = 30 * time.Second
	maxErrorBody   = 2048
	maxLoggedBody  = 500
)

// swapsQuery selects the newest swaps of pools that contain $token on either side.
const swapsQuery = `query GetSwaps($skip: Int!, $first: Int!, $token: String!) {
  swaps(
    skip: $skip
    first: $first
    orderBy: timestamp
    orderDirection: desc
    where: { or: [{ pool_: { token0: $token } }, { pool_: { token1: $token } }] }
  ) {
    id
    timestamp
    sender
    recipient
    amount0
    amount1
    amountUSD
    pool {
      id
      token0 { id symbol name decimals }
      token1 { id symbol name decimals }
      tick
      sqrtPrice
    }
    transaction { blockNumber }
  }
}`

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

// Client fetches swap pages from a subgraph endpoint.
type Client struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

// ClientOption configures Client.
type ClientOption func(*Client)

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.client.Timeout = d
	}
}

// WithHTTPClient sets a custom http.Client.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Client) {
		c.client = client
	}
}

// WithAPIKey sends key as a bearer token.
func WithAPIKey(key string) ClientOption {
	return func(c *Client) {
		c.apiKey = key
	}
}

// NewClient creates a subgraph client for endpoint.
func NewClient(endpoint string, opts ...ClientOption) *Client {
	c := &Client{
		endpoint: endpoint,
		client:   &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Endpoint returns the URL this client queries.
func (c *Client) Endpoint() string { return c.endpoint }

// FetchSwaps requests one page of swaps for token, newest first.
func (c *Client) FetchSwaps(ctx context.Context, token string, skip, first int) (swaps []models.Swap, err error) {
	if err := address.Validate(token); err != nil {
		return nil, err
	}
	token = address.Normalize(token)

	ctx, span := tracing.StartSpan(ctx, "subgraph.FetchSwaps", "token", token, "skip", fmt.Sprint(skip))
	defer func() { tracing.End(span, err) }()

	payload, err := json.Marshal(graphQLRequest{
		Query: swapsQuery,
		Variables: map[string]any{
			"skip":  skip,
			"first": first,
			"token": token,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("encode query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", ErrSourceUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &SourceError{Status: resp.StatusCode, Body: truncate(string(body), maxErrorBody)}
	}

	if looksLikeHTML(body) {
		logger.L().Warn().Str("token", token).Str("body", truncate(string(body), maxLoggedBody)).Msg("source returned HTML instead of JSON")
		return nil, &HTMLPayloadError{Token: token, Title: htmlTitle(body)}
	}

	result, err := decodeEnvelope(body)
	if err != nil {
		logger.L().Warn().Str("token", token).Err(err).Str("body", truncate(string(body), maxLoggedBody)).Msg("failed to parse source response")
		return nil, fmt.Errorf("token %s: %w", token, err)
	}

	switch r := result.(type) {
	case DataResult:
		return r.Swaps, nil
	case ErrorResult:
		return nil, newQueryError(r.Messages)
	default:
		return nil, fmt.Errorf("%w: unexpected result %T", ErrMalformedResponse, result)
	}
}

// looksLikeHTML applies the DOCTYPE/<html> prefix heuristic.
func looksLikeHTML(body []byte) bool {
	s := strings.ToLower(strings.TrimSpace(string(body)))
	return strings.HasPrefix(s, "<!doctype html") || strings.HasPrefix(s, "<html")
}

// htmlTitle extracts the document title for diagnostics; "" when absent.
func htmlTitle(body []byte) string {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(doc.Find("title").First().Text())
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
