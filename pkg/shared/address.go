package shared

import (
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil/bech32"
)

const (
	Bech32PrefixAccAddr = "terra"
	Bech32PrefixValAddr = "terravaloper"
)

// Address payloads are 20 bytes for ordinary accounts and 32 bytes for
// module-derived accounts.
const (
	addressLenShort = 20
	addressLenLong  = 32
)

// ValidateAccAddress checks that address is a well-formed bech32 account
// address with the expected prefix.
func ValidateAccAddress(address string) error {
	_, err := DecodeAddress(address, Bech32PrefixAccAddr)
	return err
}

// ValidateValAddress checks that address is a well-formed bech32 validator
// operator address with the expected prefix.
func ValidateValAddress(address string) error {
	_, err := DecodeAddress(address, Bech32PrefixValAddr)
	return err
}

// DecodeAddress decodes a bech32 address, verifies its human-readable prefix,
// and returns the raw address bytes.
func DecodeAddress(address string, expectedPrefix string) ([]byte, error) {
	trimmed := strings.TrimSpace(address)
	if trimmed == "" {
		return nil, fmt.Errorf("address cannot be empty")
	}

	prefix, data, err := bech32.Decode(trimmed)
	if err != nil {
		return nil, fmt.Errorf("invalid bech32 address %q: %w", trimmed, err)
	}
	if prefix != expectedPrefix {
		return nil, fmt.Errorf("address %q has prefix %q, expected %q", trimmed, prefix, expectedPrefix)
	}

	converted, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return nil, fmt.Errorf("invalid bech32 address payload: %w", err)
	}
	if len(converted) != addressLenShort && len(converted) != addressLenLong {
		return nil, fmt.Errorf("address %q has payload length %d, expected %d or %d",
			trimmed, len(converted), addressLenShort, addressLenLong)
	}

	return converted, nil
}
