package alliance

import (
	"encoding/json"
	"testing"
)

const (
	testDelegator    = "terra1qypqxpq9qcrsszg2pvxq6rs0zqg3yyc5exk7yu"
	testDelegator2   = "terra1qurswpc8qurswpc8qurswpc8qurswpc84ha6zp"
	testValidator    = "terravaloper1v4nxw6rfdf4kcmtwdac8zunnw36hvamce3gaee"
	testValidatorDst = "terravaloper1v4nxw6rfdf4kcmtwdac8zunnw36hvamce3gaee"
)

func TestNewDelegateMsgEncoding(t *testing.T) {
	msg := NewDelegateMsg(testDelegator, testValidator, NewCoin("uluna", 1000))

	encoded, err := json.Marshal(msg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := `{"delegate":{"delegator_address":"` + testDelegator +
		`","validator_address":"` + testValidator +
		`","amount":{"denom":"uluna","amount":"1000"}}}`
	if string(encoded) != expected {
		t.Fatalf("unexpected encoding:\n got %s\nwant %s", encoded, expected)
	}
}

func TestNewUndelegateMsgEncoding(t *testing.T) {
	msg := NewUndelegateMsg(testDelegator, testValidator, NewCoin("uluna", 5))

	encoded, err := json.Marshal(msg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(encoded) == "{}" {
		t.Fatal("expected undelegate variant to be set")
	}

	var decoded Msg
	if err := json.Unmarshal(encoded, &decoded); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decoded.Undelegate == nil {
		t.Fatal("expected undelegate variant after round trip")
	}
	if decoded.Delegate != nil || decoded.Redelegate != nil || decoded.ClaimDelegationRewards != nil {
		t.Fatal("expected only undelegate variant to be set")
	}
}

func TestNewRedelegateMsgEncoding(t *testing.T) {
	msg := NewRedelegateMsg(testDelegator, testValidator, testValidatorDst, NewCoin("uluna", 7))

	encoded, err := json.Marshal(msg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var raw map[string]map[string]any
	if err := json.Unmarshal(encoded, &raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fields, ok := raw["redelegate"]
	if !ok {
		t.Fatal("expected redelegate variant")
	}
	if fields["validator_src_address"] != testValidator {
		t.Fatalf("unexpected src validator: %v", fields["validator_src_address"])
	}
	if fields["validator_dst_address"] != testValidatorDst {
		t.Fatalf("unexpected dst validator: %v", fields["validator_dst_address"])
	}
}

func TestNewClaimDelegationRewardsMsgEncoding(t *testing.T) {
	msg := NewClaimDelegationRewardsMsg(testDelegator, testValidator, "uluna")

	encoded, err := json.Marshal(msg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := `{"claim_delegation_rewards":{"delegator_address":"` + testDelegator +
		`","validator_address":"` + testValidator + `","denom":"uluna"}}`
	if string(encoded) != expected {
		t.Fatalf("unexpected encoding:\n got %s\nwant %s", encoded, expected)
	}
}

func TestEncodeMsgWrapsInCustomEnvelope(t *testing.T) {
	payload, err := EncodeMsg(NewDelegateMsg(testDelegator, testValidator, NewCoin("uluna", 1000)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var envelope struct {
		Custom *Msg `json:"custom"`
	}
	if err := json.Unmarshal(payload, &envelope); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if envelope.Custom == nil || envelope.Custom.Delegate == nil {
		t.Fatalf("expected custom delegate payload, got %s", payload)
	}
	if envelope.Custom.Delegate.DelegatorAddress != testDelegator {
		t.Fatalf("unexpected delegator: %s", envelope.Custom.Delegate.DelegatorAddress)
	}
}

func TestEncodeMsgRejectsInvalid(t *testing.T) {
	if _, err := EncodeMsg(Msg{}); err == nil {
		t.Fatal("expected error for empty envelope")
	}
	if _, err := EncodeMsg(NewDelegateMsg("not-an-address", testValidator, NewCoin("uluna", 1))); err == nil {
		t.Fatal("expected error for invalid delegator")
	}
}

func TestEncodeQueryWrapsInCustomEnvelope(t *testing.T) {
	payload, err := EncodeQuery(NewParamsQuery())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(payload) != `{"custom":{"params":{}}}` {
		t.Fatalf("unexpected encoding: %s", payload)
	}
}
