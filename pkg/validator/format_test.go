package validator

import "testing"

const defaultSignature = "SIG_K1_KfqBXGdSRnVgZbAXyL9hEYbAvrZjcaxUCenD7Z3aX6yzf6MEyc4Cy3ywToD4j3SKkzSg7L1uvRUirEPHwAwrbg5c9z27Z3"

func TestValidateName(t *testing.T) {
	for _, name := range []string{"wharfkittest", "test", "eosio.token", "a1b2c3d4e5", "abcdefghijklj"} {
		if err := ValidateName(name); err != nil {
			t.Fatalf("name %q should be valid: %v", name, err)
		}
	}
	for _, name := range []string{"", "Alice", "alice6", "abcdefghijklmn", "abcdefghijklz", "alice."} {
		if err := ValidateName(name); err == nil {
			t.Fatalf("expected error for name %q", name)
		}
	}
}

func TestValidatePermissionLevel(t *testing.T) {
	if err := ValidatePermissionLevel("wharfkittest@test"); err != nil {
		t.Fatalf("permission should be valid: %v", err)
	}
	if err := ValidatePermissionLevel("wharfkittest"); err == nil {
		t.Fatal("expected error for missing @")
	}
	if err := ValidatePermissionLevel("Bad@test"); err == nil {
		t.Fatal("expected error for invalid actor")
	}
	if err := ValidatePermissionLevel("alice@"); err == nil {
		t.Fatal("expected error for empty permission")
	}
}

func TestDecodeSignature(t *testing.T) {
	curve, payload, err := DecodeSignature(defaultSignature)
	if err != nil {
		t.Fatalf("default signature should decode: %v", err)
	}
	if curve != SignatureCurveK1 {
		t.Fatalf("curve=%s, want K1", curve)
	}
	if len(payload) != fixedSignatureLen {
		t.Fatalf("payload len=%d, want %d", len(payload), fixedSignatureLen)
	}

	if err := ValidateSignature("PUB_K1_abc"); err == nil {
		t.Fatal("expected error for wrong prefix")
	}
	if err := ValidateSignature("SIG_K1_"); err == nil {
		t.Fatal("expected error for empty payload")
	}
	if err := ValidateSignature("SIG_XX_" + defaultSignature[7:]); err == nil {
		t.Fatal("expected error for unknown curve")
	}
	if err := ValidateSignature("SIG_K1_0OIl"); err == nil {
		t.Fatal("expected error for non base58 payload")
	}
	if err := ValidateSignature("SIG_K1_" + defaultSignature[7:40]); err == nil {
		t.Fatal("expected error for truncated payload")
	}
	if err := ValidateSignature("SIG_WA_3yZe7d"); err != nil {
		t.Fatalf("WA signature has no fixed length: %v", err)
	}

	if _, err := NormalizeCurve("k1"); err != nil {
		t.Fatalf("normalize lowercase failed: %v", err)
	}
}
