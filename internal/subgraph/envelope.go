package subgraph

import (
	"encoding/json"
	"fmt"

	"github.com/guttosm/dexboard/internal/domain/models"
)

// Result is the decoded outcome of a GraphQL response: either DataResult or
// ErrorResult. Callers switch on the concrete type.
type Result interface {
	isResult()
}

// DataResult is a response carrying swaps.
type DataResult struct {
	Swaps []models.Swap
}

// ErrorResult is a response carrying GraphQL errors. It takes precedence over
// partial data.
type ErrorResult struct {
	Messages []string
}

func (DataResult) isResult()  {}
func (ErrorResult) isResult() {}

type envelope struct {
	Data   *swapsData `json:"data"`
	Errors []gqlError `json:"errors"`
}

type swapsData struct {
	Swaps *[]models.Swap `json:"swaps"`
}

type gqlError struct {
	Message string `json:"message"`
}

// decodeEnvelope parses body into a Result. Invalid JSON or a response with
// neither data nor errors is ErrMalformedResponse.
func decodeEnvelope(body []byte) (Result, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	if len(env.Errors) > 0 {
		msgs := make([]string, 0, len(env.Errors))
		for _, e := range env.Errors {
			msgs = append(msgs, e.Message)
		}
		return ErrorResult{Messages: msgs}, nil
	}

	if env.Data == nil || env.Data.Swaps == nil {
		return nil, fmt.Errorf("%w: response has neither data.swaps nor errors", ErrMalformedResponse)
	}
	return DataResult{Swaps: *env.Data.Swaps}, nil
}
