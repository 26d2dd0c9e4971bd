package alliance

import (
	"fmt"
	"regexp"
	"strings"

	"cosmossdk.io/math"

	"github.com/terra-money/alliance-sdk-go/pkg/shared"
)

// Coin is an integer-amount coin, JSON-compatible with the Cosmos SDK coin
// encoding (amount serialized as a decimal string).
type Coin struct {
	Denom  string   `json:"denom"`
	Amount math.Int `json:"amount"`
}

// DecCoin is a decimal-amount coin used in validator share accounting.
type DecCoin struct {
	Denom  string         `json:"denom,omitempty"`
	Amount math.LegacyDec `json:"amount"`
}

var coinPattern = regexp.MustCompile(`^(\d+)([a-zA-Z][a-zA-Z0-9/:._-]{2,127})$`)

// NewCoin constructs a Coin from a denom and an int64 amount.
func NewCoin(denom string, amount int64) Coin {
	return Coin{Denom: denom, Amount: math.NewInt(amount)}
}

// ParseCoin parses a coin string of the form "1000uluna".
func ParseCoin(value string) (Coin, error) {
	trimmed := strings.TrimSpace(value)
	matches := coinPattern.FindStringSubmatch(trimmed)
	if matches == nil {
		return Coin{}, fmt.Errorf("invalid coin %q, expected <amount><denom>", value)
	}

	amount, ok := math.NewIntFromString(matches[1])
	if !ok {
		return Coin{}, fmt.Errorf("invalid coin amount %q", matches[1])
	}

	return Coin{Denom: matches[2], Amount: amount}, nil
}

// Validate checks that the coin has a well-formed denom and a positive
// amount.
func (coin Coin) Validate() error {
	if err := shared.ValidateDenom(coin.Denom); err != nil {
		return NewInvalidDenomError(coin.Denom)
	}
	if coin.Amount.IsNil() || !coin.Amount.IsPositive() {
		return NewInvalidAmountError(coin.Denom, coin.AmountString())
	}
	return nil
}

// AmountString returns the amount as a decimal string, "0" when unset.
func (coin Coin) AmountString() string {
	if coin.Amount.IsNil() {
		return "0"
	}
	return coin.Amount.String()
}

// String renders the coin in the canonical <amount><denom> form.
func (coin Coin) String() string {
	return coin.AmountString() + coin.Denom
}
