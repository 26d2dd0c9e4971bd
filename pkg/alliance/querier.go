package alliance

import "context"

// Querier is the Alliance module query surface. pkg/lcd implements it over a
// chain's REST endpoint; contract test harnesses can implement it in memory.
type Querier interface {
	// Alliance returns a single alliance asset by denom.
	Alliance(ctx context.Context, denom string) (*AllianceResponse, error)

	// Alliances lists alliance assets, one page at a time.
	Alliances(ctx context.Context, pagination *PageRequest) (*AlliancesResponse, error)

	// AlliancesDelegations lists all alliance delegations.
	AlliancesDelegations(ctx context.Context, pagination *PageRequest) (*DelegationsResponse, error)

	// AlliancesDelegationByValidator lists a delegator's delegations with one
	// validator.
	AlliancesDelegationByValidator(
		ctx context.Context,
		delegatorAddr string,
		validatorAddr string,
		pagination *PageRequest,
	) (*DelegationsResponse, error)

	// Delegation returns one delegator/validator/denom delegation.
	Delegation(ctx context.Context, delegatorAddr string, validatorAddr string, denom string) (*SingleDelegationResponse, error)

	// DelegationRewards returns the pending rewards of one delegation.
	DelegationRewards(ctx context.Context, delegatorAddr string, validatorAddr string, denom string) (*RewardsResponse, error)

	// Params returns the module parameters.
	Params(ctx context.Context) (*ParamsResponse, error)

	// Validator returns one alliance validator's share accounting.
	Validator(ctx context.Context, validatorAddr string) (*ValidatorResponse, error)

	// Validators lists alliance validators, one page at a time.
	Validators(ctx context.Context, pagination *PageRequest) (*ValidatorsResponse, error)
}
