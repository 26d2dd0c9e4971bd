package alliance

import (
	"github.com/terra-money/alliance-sdk-go/pkg/shared"
)

// MaxPageLimit bounds the page size accepted by query validation.
const MaxPageLimit = 1000

// ValidateMsg checks that exactly one message variant is set and that its
// fields are well formed.
func ValidateMsg(msg Msg) error {
	variants := make([]string, 0, 1)
	if msg.Delegate != nil {
		variants = append(variants, "delegate")
	}
	if msg.Undelegate != nil {
		variants = append(variants, "undelegate")
	}
	if msg.Redelegate != nil {
		variants = append(variants, "redelegate")
	}
	if msg.ClaimDelegationRewards != nil {
		variants = append(variants, "claim_delegation_rewards")
	}

	if len(variants) == 0 {
		return NewEmptyEnvelopeError("message")
	}
	if len(variants) > 1 {
		return NewAmbiguousEnvelopeError("message", variants)
	}

	switch {
	case msg.Delegate != nil:
		return validateStakeFields(
			msg.Delegate.DelegatorAddress,
			msg.Delegate.ValidatorAddress,
			msg.Delegate.Amount,
		)
	case msg.Undelegate != nil:
		return validateStakeFields(
			msg.Undelegate.DelegatorAddress,
			msg.Undelegate.ValidatorAddress,
			msg.Undelegate.Amount,
		)
	case msg.Redelegate != nil:
		if err := validateAccAddress(msg.Redelegate.DelegatorAddress); err != nil {
			return err
		}
		if err := validateValAddress("validator_src_address", msg.Redelegate.ValidatorSrcAddress); err != nil {
			return err
		}
		if err := validateValAddress("validator_dst_address", msg.Redelegate.ValidatorDstAddress); err != nil {
			return err
		}
		return msg.Redelegate.Amount.Validate()
	default:
		if err := validateAccAddress(msg.ClaimDelegationRewards.DelegatorAddress); err != nil {
			return err
		}
		if err := validateValAddress("validator_address", msg.ClaimDelegationRewards.ValidatorAddress); err != nil {
			return err
		}
		if err := shared.ValidateDenom(msg.ClaimDelegationRewards.Denom); err != nil {
			return NewInvalidDenomError(msg.ClaimDelegationRewards.Denom)
		}
		return nil
	}
}

// ValidateQuery checks that exactly one query variant is set and that its
// fields are well formed.
func ValidateQuery(query Query) error {
	variants := make([]string, 0, 1)
	if query.Alliance != nil {
		variants = append(variants, "alliance")
	}
	if query.Alliances != nil {
		variants = append(variants, "alliances")
	}
	if query.AlliancesDelegations != nil {
		variants = append(variants, "alliances_delegations")
	}
	if query.AlliancesDelegationByValidator != nil {
		variants = append(variants, "alliances_delegation_by_validator")
	}
	if query.Delegation != nil {
		variants = append(variants, "delegation")
	}
	if query.DelegationRewards != nil {
		variants = append(variants, "delegation_rewards")
	}
	if query.Params != nil {
		variants = append(variants, "params")
	}
	if query.Validator != nil {
		variants = append(variants, "validator")
	}
	if query.Validators != nil {
		variants = append(variants, "validators")
	}

	if len(variants) == 0 {
		return NewEmptyEnvelopeError("query")
	}
	if len(variants) > 1 {
		return NewAmbiguousEnvelopeError("query", variants)
	}

	switch {
	case query.Alliance != nil:
		if err := shared.ValidateDenom(query.Alliance.Denom); err != nil {
			return NewInvalidDenomError(query.Alliance.Denom)
		}
		return nil
	case query.Alliances != nil:
		return validatePagination(query.Alliances.Pagination)
	case query.AlliancesDelegations != nil:
		return validatePagination(query.AlliancesDelegations.Pagination)
	case query.AlliancesDelegationByValidator != nil:
		if err := validateAccAddress(query.AlliancesDelegationByValidator.DelegatorAddr); err != nil {
			return err
		}
		if err := validateValAddress("validator_addr", query.AlliancesDelegationByValidator.ValidatorAddr); err != nil {
			return err
		}
		return validatePagination(query.AlliancesDelegationByValidator.Pagination)
	case query.Delegation != nil:
		return validateDelegationTriple(
			query.Delegation.DelegatorAddr,
			query.Delegation.ValidatorAddr,
			query.Delegation.Denom,
		)
	case query.DelegationRewards != nil:
		return validateDelegationTriple(
			query.DelegationRewards.DelegatorAddr,
			query.DelegationRewards.ValidatorAddr,
			query.DelegationRewards.Denom,
		)
	case query.Validator != nil:
		return validateValAddress("validator_addr", query.Validator.ValidatorAddr)
	case query.Validators != nil:
		return validatePagination(query.Validators.Pagination)
	default:
		return nil
	}
}

func validateStakeFields(delegatorAddress string, validatorAddress string, amount Coin) error {
	if err := validateAccAddress(delegatorAddress); err != nil {
		return err
	}
	if err := validateValAddress("validator_address", validatorAddress); err != nil {
		return err
	}
	return amount.Validate()
}

func validateDelegationTriple(delegatorAddr string, validatorAddr string, denom string) error {
	if err := validateAccAddress(delegatorAddr); err != nil {
		return err
	}
	if err := validateValAddress("validator_addr", validatorAddr); err != nil {
		return err
	}
	if err := shared.ValidateDenom(denom); err != nil {
		return NewInvalidDenomError(denom)
	}
	return nil
}

func validateAccAddress(address string) error {
	if err := shared.ValidateAccAddress(address); err != nil {
		return NewInvalidAddressError("delegator address", address, err)
	}
	return nil
}

func validateValAddress(field string, address string) error {
	if err := shared.ValidateValAddress(address); err != nil {
		return NewInvalidAddressError(field, address, err)
	}
	return nil
}

func validatePagination(pagination *PageRequest) error {
	if pagination == nil {
		return nil
	}
	if pagination.Limit > MaxPageLimit {
		return NewPageLimitError(pagination.Limit)
	}
	return nil
}
