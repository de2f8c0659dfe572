package domain_test

import (
	"testing"

	"go.trai.ch/vouch/internal/core/domain"
)

func TestDigest_HexRoundTrip(t *testing.T) {
	d := domain.NewDigest([]byte("payload"))

	parsed, err := domain.ParseDigest(d.Hex())
	if err != nil {
		t.Fatalf("ParseDigest failed: %v", err)
	}
	if parsed != d {
		t.Errorf("round trip mismatch: %s vs %s", parsed.Hex(), d.Hex())
	}
}

func TestParseDigest_Invalid(t *testing.T) {
	if _, err := domain.ParseDigest("zz"); err == nil {
		t.Error("expected error for non-hex input")
	}
	if _, err := domain.ParseDigest("abcd"); err == nil {
		t.Error("expected error for short input")
	}
}

func TestDigest_IsZero(t *testing.T) {
	var zero domain.Digest
	if !zero.IsZero() {
		t.Error("zero value must report IsZero")
	}
	if domain.NewDigest(nil).IsZero() {
		t.Error("digest of empty input must not be the zero value")
	}
}

func TestDigestOfEnv_Deterministic(t *testing.T) {
	a := domain.DigestOfEnv(map[string]string{"PATH": "/usr/bin", "LANG": "C", "HOME": "/root"})
	b := domain.DigestOfEnv(map[string]string{"HOME": "/root", "LANG": "C", "PATH": "/usr/bin"})
	if a != b {
		t.Errorf("same variables must digest identically: %s vs %s", a.Hex(), b.Hex())
	}
}

func TestDigestOfEnv_SensitiveToValues(t *testing.T) {
	base := domain.DigestOfEnv(map[string]string{"PATH": "/usr/bin"})
	if domain.DigestOfEnv(map[string]string{"PATH": "/bin"}) == base {
		t.Error("expected different digest for different value")
	}
	if domain.DigestOfEnv(map[string]string{"GOPATH": "/usr/bin"}) == base {
		t.Error("expected different digest for different key")
	}
	if domain.DigestOfEnv(nil) == base {
		t.Error("expected different digest for empty environment")
	}
}
