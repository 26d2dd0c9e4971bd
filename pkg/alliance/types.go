package alliance

import (
	"cosmossdk.io/math"
)

// Msg is the custom-message envelope understood by Alliance-enabled chains.
// Exactly one variant field must be set.
type Msg struct {
	Delegate               *MsgDelegate               `json:"delegate,omitempty"`
	Undelegate             *MsgUndelegate             `json:"undelegate,omitempty"`
	Redelegate             *MsgRedelegate             `json:"redelegate,omitempty"`
	ClaimDelegationRewards *MsgClaimDelegationRewards `json:"claim_delegation_rewards,omitempty"`
}

type MsgDelegate struct {
	DelegatorAddress string `json:"delegator_address"`
	ValidatorAddress string `json:"validator_address"`
	Amount           Coin   `json:"amount"`
}

type MsgUndelegate struct {
	DelegatorAddress string `json:"delegator_address"`
	ValidatorAddress string `json:"validator_address"`
	Amount           Coin   `json:"amount"`
}

type MsgRedelegate struct {
	DelegatorAddress    string `json:"delegator_address"`
	ValidatorSrcAddress string `json:"validator_src_address"`
	ValidatorDstAddress string `json:"validator_dst_address"`
	Amount              Coin   `json:"amount"`
}

type MsgClaimDelegationRewards struct {
	DelegatorAddress string `json:"delegator_address"`
	ValidatorAddress string `json:"validator_address"`
	Denom            string `json:"denom"`
}

// Query is the custom-query envelope understood by Alliance-enabled chains.
// Exactly one variant field must be set.
type Query struct {
	Alliance                       *QueryAlliance                       `json:"alliance,omitempty"`
	Alliances                      *QueryAlliances                      `json:"alliances,omitempty"`
	AlliancesDelegations           *QueryAlliancesDelegations           `json:"alliances_delegations,omitempty"`
	AlliancesDelegationByValidator *QueryAlliancesDelegationByValidator `json:"alliances_delegation_by_validator,omitempty"`
	Delegation                     *QueryDelegation                     `json:"delegation,omitempty"`
	DelegationRewards              *QueryDelegationRewards              `json:"delegation_rewards,omitempty"`
	Params                         *QueryParams                         `json:"params,omitempty"`
	Validator                      *QueryValidator                      `json:"validator,omitempty"`
	Validators                     *QueryValidators                     `json:"validators,omitempty"`
}

type QueryAlliance struct {
	Denom string `json:"denom"`
}

type QueryAlliances struct {
	Pagination *PageRequest `json:"pagination,omitempty"`
}

type QueryAlliancesDelegations struct {
	Pagination *PageRequest `json:"pagination,omitempty"`
}

type QueryAlliancesDelegationByValidator struct {
	DelegatorAddr string       `json:"delegator_addr"`
	ValidatorAddr string       `json:"validator_addr"`
	Pagination    *PageRequest `json:"pagination,omitempty"`
}

type QueryDelegation struct {
	DelegatorAddr string `json:"delegator_addr"`
	ValidatorAddr string `json:"validator_addr"`
	Denom         string `json:"denom"`
}

type QueryDelegationRewards struct {
	DelegatorAddr string `json:"delegator_addr"`
	ValidatorAddr string `json:"validator_addr"`
	Denom         string `json:"denom"`
}

type QueryParams struct{}

type QueryValidator struct {
	ValidatorAddr string `json:"validator_addr"`
}

type QueryValidators struct {
	Pagination *PageRequest `json:"pagination,omitempty"`
}

// PageRequest mirrors the Cosmos SDK pagination request. Key is carried
// opaquely between pages; it takes precedence over Offset when both are set.
type PageRequest struct {
	Key        []byte `json:"key,omitempty"`
	Offset     uint64 `json:"offset,omitempty"`
	Limit      uint64 `json:"limit,omitempty"`
	CountTotal bool   `json:"count_total,omitempty"`
	Reverse    bool   `json:"reverse,omitempty"`
}

// PageResponse mirrors the Cosmos SDK pagination response. An empty NextKey
// means the final page has been reached.
type PageResponse struct {
	NextKey []byte `json:"next_key,omitempty"`
	Total   uint64 `json:"total,omitempty"`
}

// Params holds the Alliance module parameters. The delay and interval values
// are durations in nanoseconds.
type Params struct {
	RewardDelayTime       uint64 `json:"reward_delay_time"`
	TakeRateClaimInterval uint64 `json:"take_rate_claim_interval"`
	LastTakeRateClaimTime string `json:"last_take_rate_claim_time"`
}

type WeightRange struct {
	Min math.LegacyDec `json:"min"`
	Max math.LegacyDec `json:"max"`
}

// AllianceAsset describes one whitelisted alliance denom and its staking
// economics.
type AllianceAsset struct {
	Denom                string         `json:"denom"`
	RewardWeight         math.LegacyDec `json:"reward_weight"`
	ConsensusWeight      math.LegacyDec `json:"consensus_weight"`
	TakeRate             math.LegacyDec `json:"take_rate"`
	TotalTokens          math.LegacyDec `json:"total_tokens"`
	TotalValidatorShares math.LegacyDec `json:"total_validator_shares"`
	RewardStartTime      Timestamp      `json:"reward_start_time"`
	RewardChangeRate     math.LegacyDec `json:"reward_change_rate"`
	RewardChangeInterval uint64         `json:"reward_change_interval"`
	LastRewardChangeTime string         `json:"last_reward_change_time"`
	RewardWeightRange    WeightRange    `json:"reward_weight_range"`
	IsInitialized        *bool          `json:"is_initialized,omitempty"`
}

// Delegation is the module's record of one delegator/validator/denom triple.
type Delegation struct {
	DelegatorAddress      string         `json:"delegator_address,omitempty"`
	ValidatorAddress      string         `json:"validator_address,omitempty"`
	Denom                 string         `json:"denom,omitempty"`
	Shares                math.LegacyDec `json:"shares"`
	RewardHistory         []RewardIndex  `json:"reward_history,omitempty"`
	LastRewardClaimHeight uint64         `json:"last_reward_claim_height,omitempty"`
}

type RewardIndex struct {
	Denom string         `json:"denom,omitempty"`
	Index math.LegacyDec `json:"index"`
}

// DelegationEntry pairs a delegation record with its current token balance.
type DelegationEntry struct {
	Delegation Delegation `json:"delegation"`
	Balance    Coin       `json:"balance"`
}

type AllianceResponse struct {
	Alliance AllianceAsset `json:"alliance"`
}

type AlliancesResponse struct {
	Alliances  []AllianceAsset `json:"alliances"`
	Pagination *PageResponse   `json:"pagination,omitempty"`
}

type DelegationsResponse struct {
	Delegations []DelegationEntry `json:"delegations,omitempty"`
	Pagination  *PageResponse     `json:"pagination,omitempty"`
}

type SingleDelegationResponse struct {
	Delegation DelegationEntry `json:"delegation"`
}

type RewardsResponse struct {
	Rewards []Coin `json:"rewards"`
}

type ParamsResponse struct {
	Params Params `json:"params"`
}

type ValidatorResponse struct {
	ValidatorAddr         string    `json:"validator_addr"`
	TotalDelegationShares []DecCoin `json:"total_delegation_shares"`
	ValidatorShares       []DecCoin `json:"validator_shares"`
	TotalStaked           []DecCoin `json:"total_staked"`
}

type ValidatorsResponse struct {
	Validators []ValidatorResponse `json:"validators"`
	Pagination *PageResponse       `json:"pagination,omitempty"`
}
