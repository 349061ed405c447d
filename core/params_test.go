package core

import (
	"testing"

	rabin "github.com/BackendStack21/rabin-go"
)

func TestGetParams(t *testing.T) {
	for _, level := range []rabin.SecurityLevel{rabin.RAB512, rabin.RAB1024, rabin.RAB2048} {
		params, err := GetParams(level)
		if err != nil {
			t.Fatalf("GetParams(%s) failed: %v", level, err)
		}
		if params.Level != level {
			t.Errorf("GetParams(%s) returned level %s", level, params.Level)
		}
		if err := ValidateParams(params); err != nil {
			t.Errorf("preset %s does not validate: %v", level, err)
		}
	}

	if _, err := GetParams("RAB-123"); err == nil {
		t.Error("GetParams should fail for an unknown level")
	}
}

func TestParamsForBits(t *testing.T) {
	params := ParamsForBits(768)
	if params.Bits != 768 {
		t.Errorf("Bits = %d, want 768", params.Bits)
	}
	if params.Level != "RAB-768" {
		t.Errorf("Level = %s, want RAB-768", params.Level)
	}
	if err := ValidateParams(params); err != nil {
		t.Errorf("ParamsForBits(768) does not validate: %v", err)
	}
}

func TestValidateParams(t *testing.T) {
	cases := []struct {
		name   string
		params rabin.KeyParams
		ok     bool
	}{
		{"valid", rabin.KeyParams{Bits: 64, MaxPrimeAttempts: 10, MaxEqualRetries: 1}, true},
		{"bits too small", rabin.KeyParams{Bits: 8, MaxPrimeAttempts: 10, MaxEqualRetries: 1}, false},
		{"zero attempts", rabin.KeyParams{Bits: 64, MaxPrimeAttempts: 0, MaxEqualRetries: 1}, false},
		{"negative retries", rabin.KeyParams{Bits: 64, MaxPrimeAttempts: 10, MaxEqualRetries: -1}, false},
	}

	for _, tc := range cases {
		err := ValidateParams(tc.params)
		if tc.ok && err != nil {
			t.Errorf("%s: unexpected error: %v", tc.name, err)
		}
		if !tc.ok && err == nil {
			t.Errorf("%s: expected an error", tc.name)
		}
	}
}
