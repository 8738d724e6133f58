// Package numeric parses decimal strings coming from the subgraph into exact
// decimal values. Token and USD quantities never go through float64.
package numeric

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrInvalidFormat is returned when a string is not a plain decimal literal.
var ErrInvalidFormat = errors.New("invalid numeric format")

// Zero is the additive identity, exported for readability at call sites.
var Zero = decimal.Zero

// Parse converts a decimal literal into an exact decimal value.
//
// Accepted grammar: an optional leading sign, digits and at most one decimal
// point, with at least one digit. Exponent notation is rejected even though
// the underlying library would accept it.
func Parse(s string) (decimal.Decimal, error) {
	if !isDecimalLiteral(s) {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q: %v", ErrInvalidFormat, s, err)
	}
	return d, nil
}

// MustParse is Parse for literals known to be valid. It panics otherwise.
func MustParse(s string) decimal.Decimal {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Format renders d as an exact decimal string.
func Format(d decimal.Decimal) string {
	return d.String()
}

func isDecimalLiteral(s string) bool {
	if s == "" {
		return false
	}
	i := 0
	if s[0] == '+' || s[0] == '-' {
		i++
	}
	digits, dots := 0, 0
	for ; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			digits++
		case c == '.':
			dots++
			if dots > 1 {
				return false
			}
		default:
			return false
		}
	}
	return digits > 0
}
