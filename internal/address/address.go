// Package address validates and canonicalises EVM token and trader addresses.
package address

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// ErrInvalidTokenAddress is returned for anything that is not "0x" followed by
// exactly 40 hexadecimal digits.
var ErrInvalidTokenAddress = errors.New("invalid token address: expected 42-character hex string starting with 0x")

// Validate checks the strict address form used by the subgraph.
// common.IsHexAddress alone also accepts un-prefixed input, so the prefix and
// length are checked first.
func Validate(addr string) error {
	if len(addr) != 2+2*common.AddressLength || !strings.HasPrefix(addr, "0x") {
		return fmt.Errorf("%w: %q", ErrInvalidTokenAddress, addr)
	}
	if !common.IsHexAddress(addr) {
		return fmt.Errorf("%w: %q contains non-hexadecimal characters", ErrInvalidTokenAddress, addr)
	}
	return nil
}

// Normalize returns the canonical lowercase form used for comparisons.
func Normalize(addr string) string {
	return strings.ToLower(strings.TrimSpace(addr))
}

// Equal reports whether two identifiers refer to the same address.
func Equal(a, b string) bool {
	return Normalize(a) == Normalize(b)
}
