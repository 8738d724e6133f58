package dto

import "time"

// ErrorResponse is the standard error body returned by every endpoint.
//
// Fields:
//   - Message: short, client-facing description.
//   - ErrorDetails: underlying error text, if any.
//   - Hint: optional remediation hint (e.g. "token likely has no pools on this venue").
//   - Timestamp: when the error was produced (UTC).
type ErrorResponse struct {
	Message      string    `json:"message" example:"invalid token address"`
	ErrorDetails string    `json:"error,omitempty" example:"invalid token address: \"0x12\""`
	Hint         string    `json:"hint,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

// NewErrorResponse builds an ErrorResponse with the current UTC timestamp.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}

// WithHint returns a copy of e carrying hint.
func (e ErrorResponse) WithHint(hint string) ErrorResponse {
	e.Hint = hint
	return e
}

// Error implements the error interface.
func (e ErrorResponse) Error() string {
	if e.ErrorDetails == "" {
		return e.Message
	}
	return e.Message + ": " + e.ErrorDetails
}
