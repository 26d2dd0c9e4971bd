package alliance

// NewAllianceQuery builds a query for a single alliance asset by denom.
func NewAllianceQuery(denom string) Query {
	return Query{Alliance: &QueryAlliance{Denom: denom}}
}

// NewAlliancesQuery builds a query listing all alliance assets.
func NewAlliancesQuery(pagination *PageRequest) Query {
	return Query{Alliances: &QueryAlliances{Pagination: pagination}}
}

// NewAlliancesDelegationsQuery builds a query listing all alliance
// delegations.
func NewAlliancesDelegationsQuery(pagination *PageRequest) Query {
	return Query{AlliancesDelegations: &QueryAlliancesDelegations{Pagination: pagination}}
}

// NewAlliancesDelegationByValidatorQuery builds a query listing a
// delegator's delegations with one validator.
func NewAlliancesDelegationByValidatorQuery(
	delegatorAddr string,
	validatorAddr string,
	pagination *PageRequest,
) Query {
	return Query{
		AlliancesDelegationByValidator: &QueryAlliancesDelegationByValidator{
			DelegatorAddr: delegatorAddr,
			ValidatorAddr: validatorAddr,
			Pagination:    pagination,
		},
	}
}

// NewDelegationQuery builds a query for one delegator/validator/denom
// delegation.
func NewDelegationQuery(delegatorAddr string, validatorAddr string, denom string) Query {
	return Query{
		Delegation: &QueryDelegation{
			DelegatorAddr: delegatorAddr,
			ValidatorAddr: validatorAddr,
			Denom:         denom,
		},
	}
}

// NewDelegationRewardsQuery builds a query for the pending rewards of one
// delegation.
func NewDelegationRewardsQuery(delegatorAddr string, validatorAddr string, denom string) Query {
	return Query{
		DelegationRewards: &QueryDelegationRewards{
			DelegatorAddr: delegatorAddr,
			ValidatorAddr: validatorAddr,
			Denom:         denom,
		},
	}
}

// NewParamsQuery builds a query for the module parameters.
func NewParamsQuery() Query {
	return Query{Params: &QueryParams{}}
}

// NewValidatorQuery builds a query for one alliance validator.
func NewValidatorQuery(validatorAddr string) Query {
	return Query{Validator: &QueryValidator{ValidatorAddr: validatorAddr}}
}

// NewValidatorsQuery builds a query listing all alliance validators.
func NewValidatorsQuery(pagination *PageRequest) Query {
	return Query{Validators: &QueryValidators{Pagination: pagination}}
}
