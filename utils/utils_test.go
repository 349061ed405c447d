package utils

import (
	"bytes"
	"io"
	"math/big"
	"testing"
)

func TestSecureRandomBytes(t *testing.T) {
	b1, err := SecureRandomBytes(32)
	if err != nil {
		t.Fatalf("SecureRandomBytes failed: %v", err)
	}
	if len(b1) != 32 {
		t.Errorf("length = %d, want 32", len(b1))
	}

	b2, err := SecureRandomBytes(32)
	if err != nil {
		t.Fatalf("SecureRandomBytes failed: %v", err)
	}
	if bytes.Equal(b1, b2) {
		t.Error("two 32-byte draws are identical")
	}
}

func TestZeroize(t *testing.T) {
	b := []byte{1, 2, 3, 4}
	Zeroize(b)
	for i, v := range b {
		if v != 0 {
			t.Errorf("byte %d not zeroed: %d", i, v)
		}
	}
}

func TestValidateSeedEntropy(t *testing.T) {
	good := []byte("a perfectly serviceable seed value, 32+ bytes long")
	if err := ValidateSeedEntropy(good); err != nil {
		t.Errorf("good seed rejected: %v", err)
	}

	bad := [][]byte{
		make([]byte, 16), // too short
		make([]byte, 32), // all zeros
		bytes.Repeat([]byte{0xAB}, 32),
	}
	ascending := make([]byte, 32)
	for i := range ascending {
		ascending[i] = byte(i)
	}
	bad = append(bad, ascending)

	for i, seed := range bad {
		if err := ValidateSeedEntropy(seed); err == nil {
			t.Errorf("weak seed %d accepted", i)
		}
	}
}

func TestNewSeedReader(t *testing.T) {
	seed := []byte("seed reader determinism test seed value")

	read := func(domain string) []byte {
		out := make([]byte, 64)
		if _, err := io.ReadFull(NewSeedReader(domain, seed), out); err != nil {
			t.Fatalf("reading stream: %v", err)
		}
		return out
	}

	if !bytes.Equal(read("domain-a"), read("domain-a")) {
		t.Error("same domain and seed gave different streams")
	}
	if bytes.Equal(read("domain-a"), read("domain-b")) {
		t.Error("different domains gave the same stream")
	}
}

func TestShake256WithDomain(t *testing.T) {
	out := Shake256WithDomain("test-domain", []byte("data"), 32)
	if len(out) != 32 {
		t.Errorf("length = %d, want 32", len(out))
	}
	again := Shake256WithDomain("test-domain", []byte("data"), 32)
	if !bytes.Equal(out, again) {
		t.Error("Shake256WithDomain is not deterministic")
	}
}

func TestGCD(t *testing.T) {
	cases := []struct{ a, b, want int64 }{
		{12, 18, 6},
		{17, 5, 1},
		{0, 9, 9},
		{9, 0, 9},
		{0, 0, 0},
		{-12, 18, 6},
		{12, -18, 6},
	}
	for _, tc := range cases {
		got := GCD(big.NewInt(tc.a), big.NewInt(tc.b))
		if got.Cmp(big.NewInt(tc.want)) != 0 {
			t.Errorf("GCD(%d, %d) = %s, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestGCDDoesNotMutateInputs(t *testing.T) {
	a := big.NewInt(48)
	b := big.NewInt(36)
	GCD(a, b)
	if a.Int64() != 48 || b.Int64() != 36 {
		t.Error("GCD mutated its inputs")
	}
}
