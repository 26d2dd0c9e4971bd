package shared

import (
	"fmt"
	"regexp"
	"strings"
)

// Denom rules follow the Cosmos SDK: a letter followed by 2 to 127 characters
// drawn from alphanumerics and /:._- (the slash and colon cover IBC and
// factory denoms).
var denomPattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9/:._-]{2,127}$`)

// ValidateDenom checks that denom is a well-formed coin denomination.
func ValidateDenom(denom string) error {
	trimmed := strings.TrimSpace(denom)
	if trimmed == "" {
		return fmt.Errorf("denom cannot be empty")
	}
	if !denomPattern.MatchString(trimmed) {
		return fmt.Errorf("invalid denom %q", denom)
	}
	return nil
}
