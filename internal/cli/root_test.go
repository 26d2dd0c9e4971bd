package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

const (
	testDelegator = "terra1qypqxpq9qcrsszg2pvxq6rs0zqg3yyc5exk7yu"
	testValidator = "terravaloper1v4nxw6rfdf4kcmtwdac8zunnw36hvamce3gaee"
)

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := newRootCmd()

	expected := map[string]bool{"query": false, "msg": false}
	for _, cmd := range root.Commands() {
		if _, ok := expected[cmd.Name()]; ok {
			expected[cmd.Name()] = true
		}
	}
	for name, found := range expected {
		if !found {
			t.Fatalf("expected %q subcommand", name)
		}
	}
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()

	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), err
}

func TestMsgDelegateCommand(t *testing.T) {
	output, err := runCommand(t,
		"msg", "delegate",
		"--delegator", testDelegator,
		"--validator", testValidator,
		"--amount", "1000000uluna",
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var envelope struct {
		Custom map[string]json.RawMessage `json:"custom"`
	}
	if err := json.Unmarshal([]byte(output), &envelope); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, output)
	}
	if _, ok := envelope.Custom["delegate"]; !ok {
		t.Fatalf("expected delegate variant in output:\n%s", output)
	}
}

func TestMsgClaimRewardsCommand(t *testing.T) {
	output, err := runCommand(t,
		"msg", "claim-rewards",
		"--delegator", testDelegator,
		"--validator", testValidator,
		"--denom", "uluna",
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(output, "claim_delegation_rewards") {
		t.Fatalf("expected claim_delegation_rewards in output:\n%s", output)
	}
}

func TestMsgDelegateRejectsInvalidCoin(t *testing.T) {
	_, err := runCommand(t,
		"msg", "delegate",
		"--delegator", testDelegator,
		"--validator", testValidator,
		"--amount", "not-a-coin",
	)
	if err == nil {
		t.Fatal("expected error for malformed coin")
	}
}

func TestMsgDelegateRejectsInvalidAddress(t *testing.T) {
	_, err := runCommand(t,
		"msg", "delegate",
		"--delegator", "junk",
		"--validator", testValidator,
		"--amount", "100uluna",
	)
	if err == nil {
		t.Fatal("expected error for invalid delegator address")
	}
}
