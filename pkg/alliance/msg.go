package alliance

import (
	"encoding/json"
	"fmt"
)

// NewDelegateMsg builds a delegate message envelope.
func NewDelegateMsg(delegatorAddress string, validatorAddress string, amount Coin) Msg {
	return Msg{
		Delegate: &MsgDelegate{
			DelegatorAddress: delegatorAddress,
			ValidatorAddress: validatorAddress,
			Amount:           amount,
		},
	}
}

// NewUndelegateMsg builds an undelegate message envelope.
func NewUndelegateMsg(delegatorAddress string, validatorAddress string, amount Coin) Msg {
	return Msg{
		Undelegate: &MsgUndelegate{
			DelegatorAddress: delegatorAddress,
			ValidatorAddress: validatorAddress,
			Amount:           amount,
		},
	}
}

// NewRedelegateMsg builds a redelegate message envelope moving a delegation
// from the source validator to the destination validator.
func NewRedelegateMsg(
	delegatorAddress string,
	validatorSrcAddress string,
	validatorDstAddress string,
	amount Coin,
) Msg {
	return Msg{
		Redelegate: &MsgRedelegate{
			DelegatorAddress:    delegatorAddress,
			ValidatorSrcAddress: validatorSrcAddress,
			ValidatorDstAddress: validatorDstAddress,
			Amount:              amount,
		},
	}
}

// NewClaimDelegationRewardsMsg builds a claim-rewards message envelope for
// one delegator/validator/denom triple.
func NewClaimDelegationRewardsMsg(delegatorAddress string, validatorAddress string, denom string) Msg {
	return Msg{
		ClaimDelegationRewards: &MsgClaimDelegationRewards{
			DelegatorAddress: delegatorAddress,
			ValidatorAddress: validatorAddress,
			Denom:            denom,
		},
	}
}

type customEnvelope struct {
	Custom json.RawMessage `json:"custom"`
}

// EncodeMsg validates the message and wraps it in the {"custom": ...}
// envelope a CosmWasm contract embeds in its response messages.
func EncodeMsg(msg Msg) (json.RawMessage, error) {
	if err := ValidateMsg(msg); err != nil {
		return nil, err
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal alliance message: %w", err)
	}

	wrapped, err := json.Marshal(customEnvelope{Custom: payload})
	if err != nil {
		return nil, fmt.Errorf("failed to wrap alliance message: %w", err)
	}
	return wrapped, nil
}

// EncodeQuery validates the query and wraps it in the {"custom": ...}
// envelope used for custom query requests.
func EncodeQuery(query Query) (json.RawMessage, error) {
	if err := ValidateQuery(query); err != nil {
		return nil, err
	}

	payload, err := json.Marshal(query)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal alliance query: %w", err)
	}

	wrapped, err := json.Marshal(customEnvelope{Custom: payload})
	if err != nil {
		return nil, fmt.Errorf("failed to wrap alliance query: %w", err)
	}
	return wrapped, nil
}
