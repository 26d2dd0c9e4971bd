package shared

import "testing"

const (
	testAccAddress = "terra1qypqxpq9qcrsszg2pvxq6rs0zqg3yyc5exk7yu"
	testValAddress = "terravaloper1v4nxw6rfdf4kcmtwdac8zunnw36hvamce3gaee"
)

func TestValidateAccAddress(t *testing.T) {
	if err := ValidateAccAddress(testAccAddress); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateAccAddressTrimsWhitespace(t *testing.T) {
	if err := ValidateAccAddress("  " + testAccAddress + "  "); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateValAddress(t *testing.T) {
	if err := ValidateValAddress(testValAddress); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateAccAddressRejectsEmpty(t *testing.T) {
	if err := ValidateAccAddress(""); err == nil {
		t.Fatal("expected error for empty address")
	}
}

func TestValidateAccAddressRejectsWrongPrefix(t *testing.T) {
	if err := ValidateAccAddress("osmo1qypqxpq9qcrsszg2pvxq6rs0zqg3yyc5helwsw"); err == nil {
		t.Fatal("expected error for wrong prefix")
	}
}

func TestValidateAccAddressRejectsValidatorAddress(t *testing.T) {
	if err := ValidateAccAddress(testValAddress); err == nil {
		t.Fatal("expected error for validator address as account address")
	}
}

func TestValidateAccAddressRejectsBadChecksum(t *testing.T) {
	corrupted := testAccAddress[:len(testAccAddress)-1] + "x"
	if err := ValidateAccAddress(corrupted); err == nil {
		t.Fatal("expected error for corrupted checksum")
	}
}

func TestDecodeAddressReturnsPayload(t *testing.T) {
	payload, err := DecodeAddress(testAccAddress, Bech32PrefixAccAddr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(payload) != 20 {
		t.Fatalf("expected 20-byte payload, got %d", len(payload))
	}
	if payload[0] != 0x01 || payload[19] != 0x14 {
		t.Fatalf("unexpected payload bytes: %x", payload)
	}
}
