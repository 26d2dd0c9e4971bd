package alliance

import (
	"fmt"
	"strings"
)

type AllianceError struct {
	Message string
}

func (errorValue AllianceError) Error() string {
	return errorValue.Message
}

type EmptyEnvelopeError struct {
	AllianceError
	Kind string
}

func NewEmptyEnvelopeError(kind string) error {
	return EmptyEnvelopeError{
		AllianceError: AllianceError{Message: fmt.Sprintf("%s envelope has no variant set", kind)},
		Kind:          kind,
	}
}

type AmbiguousEnvelopeError struct {
	AllianceError
	Kind     string
	Variants []string
}

func NewAmbiguousEnvelopeError(kind string, variants []string) error {
	return AmbiguousEnvelopeError{
		AllianceError: AllianceError{
			Message: fmt.Sprintf("%s envelope sets multiple variants: %s", kind, strings.Join(variants, ", ")),
		},
		Kind:     kind,
		Variants: append([]string{}, variants...),
	}
}

type InvalidAddressError struct {
	AllianceError
	Address string
}

func NewInvalidAddressError(field string, address string, cause error) error {
	return InvalidAddressError{
		AllianceError: AllianceError{Message: fmt.Sprintf("invalid %s %q: %v", field, address, cause)},
		Address:       address,
	}
}

type InvalidDenomError struct {
	AllianceError
	Denom string
}

func NewInvalidDenomError(denom string) error {
	return InvalidDenomError{
		AllianceError: AllianceError{Message: fmt.Sprintf("invalid denom %q", denom)},
		Denom:         denom,
	}
}

type InvalidAmountError struct {
	AllianceError
	Denom  string
	Amount string
}

func NewInvalidAmountError(denom string, amount string) error {
	return InvalidAmountError{
		AllianceError: AllianceError{Message: fmt.Sprintf("invalid amount %s for denom %q, expected a positive integer", amount, denom)},
		Denom:         denom,
		Amount:        amount,
	}
}

type PageLimitError struct {
	AllianceError
	Limit uint64
}

func NewPageLimitError(limit uint64) error {
	return PageLimitError{
		AllianceError: AllianceError{Message: fmt.Sprintf("pagination limit %d exceeds maximum %d", limit, MaxPageLimit)},
		Limit:         limit,
	}
}

type AssetNotFoundError struct {
	AllianceError
	Denom string
}

func NewAssetNotFoundError(denom string) error {
	return AssetNotFoundError{
		AllianceError: AllianceError{Message: fmt.Sprintf("alliance asset with denom %q not found", denom)},
		Denom:         denom,
	}
}

type ValidatorNotFoundError struct {
	AllianceError
	ValidatorAddr string
}

func NewValidatorNotFoundError(validatorAddr string) error {
	return ValidatorNotFoundError{
		AllianceError: AllianceError{Message: fmt.Sprintf("alliance validator %q not found", validatorAddr)},
		ValidatorAddr: validatorAddr,
	}
}
