package subgraph

import (
	"errors"
	"fmt"
	"strings"

	"github.com/guttosm/dexboard/internal/address"
)

// Failure taxonomy of the swap source. Callers match with errors.Is.
var (
	// ErrSourceUnavailable wraps transport-level failures (dial, TLS, timeouts, body reads).
	ErrSourceUnavailable = errors.New("swap source unavailable")

	// ErrSourceError matches *SourceError (non-2xx) and *QueryError (GraphQL errors).
	ErrSourceError = errors.New("swap source returned an error")

	// ErrMalformedResponse is returned when the body does not match the expected schema.
	ErrMalformedResponse = errors.New("malformed swap source response")

	// ErrUnexpectedHTMLPayload matches *HTMLPayloadError, a sub-case of ErrMalformedResponse.
	ErrUnexpectedHTMLPayload = errors.New("unexpected HTML payload")
)

// NoPoolsHint is attached to HTML payload errors.
const NoPoolsHint = "token likely has no pools on this venue"

// SourceError is a non-success HTTP status from the source.
type SourceError struct {
	Status int
	Body   string
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("swap source returned HTTP %d: %s", e.Status, e.Body)
}

// Is matches ErrSourceError.
func (e *SourceError) Is(target error) bool { return target == ErrSourceError }

// HTMLPayloadError is returned when the source answered with an HTML document,
// which the gateway does for tokens it cannot resolve.
type HTMLPayloadError struct {
	Token string
	Title string
}

func (e *HTMLPayloadError) Error() string {
	msg := "received HTML page instead of JSON for token " + e.Token
	if e.Title != "" {
		msg += fmt.Sprintf(" (title %q)", e.Title)
	}
	return msg + ": " + NoPoolsHint
}

// Hint returns the remediation hint for the caller.
func (e *HTMLPayloadError) Hint() string { return NoPoolsHint }

// Is matches ErrUnexpectedHTMLPayload and ErrMalformedResponse.
func (e *HTMLPayloadError) Is(target error) bool {
	return target == ErrUnexpectedHTMLPayload || target == ErrMalformedResponse
}

// QueryError carries the GraphQL "errors" branch of a response.
type QueryError struct {
	Messages []string
	hint     string
}

func newQueryError(messages []string) *QueryError {
	joined := strings.ToLower(strings.Join(messages, ", "))
	e := &QueryError{Messages: messages}
	switch {
	case strings.Contains(joined, "auth"):
		e.hint = "authentication with the subgraph gateway failed; the API key may be invalid, expired or rate limited (try --demo)"
	case strings.Contains(joined, "subgraph not found"):
		e.hint = "the subgraph id may be outdated for this network (try --demo or another --network)"
	}
	return e
}

func (e *QueryError) Error() string {
	msg := "GraphQL errors: " + strings.Join(e.Messages, ", ")
	if e.hint != "" {
		msg += " (" + e.hint + ")"
	}
	return msg
}

// Hint returns remediation guidance for known error messages, or "".
func (e *QueryError) Hint() string { return e.hint }

// Is matches ErrSourceError.
func (e *QueryError) Is(target error) bool { return target == ErrSourceError }

// ErrorKind classifies err into a short label for metrics and logs.
func ErrorKind(err error) string {
	var qe *QueryError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, address.ErrInvalidTokenAddress):
		return "invalid_token"
	case errors.Is(err, ErrUnexpectedHTMLPayload):
		return "html"
	case errors.Is(err, ErrMalformedResponse):
		return "malformed"
	case errors.As(err, &qe):
		return "query"
	case errors.Is(err, ErrSourceError):
		return "status"
	case errors.Is(err, ErrSourceUnavailable):
		return "unavailable"
	default:
		return "other"
	}
}
