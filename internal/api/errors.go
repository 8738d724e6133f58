package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/guttosm/dexboard/internal/address"
	"github.com/guttosm/dexboard/internal/domain/dto"
	"github.com/guttosm/dexboard/internal/service"
	"github.com/guttosm/dexboard/internal/storage"
	"github.com/guttosm/dexboard/internal/subgraph"
)

// hinter is implemented by errors that carry remediation advice.
type hinter interface {
	Hint() string
}

// errorResponse maps a pipeline error to a status code and response body.
func errorResponse(err error) (int, dto.ErrorResponse) {
	var status int
	var msg string

	switch {
	case errors.Is(err, address.ErrInvalidTokenAddress):
		status, msg = http.StatusBadRequest, "invalid token address"
	case errors.Is(err, subgraph.ErrUnknownNetwork):
		status, msg = http.StatusBadRequest, "unsupported network"
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		status, msg = http.StatusGatewayTimeout, "request timed out"
	case errors.Is(err, subgraph.ErrUnexpectedHTMLPayload):
		status, msg = http.StatusNotFound, "no data for token on this network"
	case errors.Is(err, subgraph.ErrMalformedResponse):
		status, msg = http.StatusBadGateway, "malformed response from swap source"
	case errors.Is(err, subgraph.ErrSourceError):
		status, msg = http.StatusBadGateway, "swap source returned an error"
	case errors.Is(err, subgraph.ErrSourceUnavailable):
		status, msg = http.StatusServiceUnavailable, "swap source unavailable"
	case errors.Is(err, service.ErrRunLogDisabled):
		status, msg = http.StatusServiceUnavailable, "run log is disabled"
	case errors.Is(err, storage.ErrRunLogNotMigrated):
		status, msg = http.StatusServiceUnavailable, "run log is not migrated"
	default:
		status, msg = http.StatusInternalServerError, "failed to build leaderboard"
	}

	resp := dto.NewErrorResponse(msg, err)
	var h hinter
	if errors.As(err, &h) && h.Hint() != "" {
		resp = resp.WithHint(h.Hint())
	}
	return status, resp
}
