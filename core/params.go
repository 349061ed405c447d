// Package core provides parameter sets and validation for rabin-go.
package core

import (
	"errors"
	"fmt"

	rabin "github.com/BackendStack21/rabin-go"
)

const (
	// MinPrimeBits is the smallest accepted prime size. Anything below this
	// leaves no room for a meaningful message space.
	MinPrimeBits = 16

	// DefaultMaxEqualRetries bounds redraws of a second prime that collided
	// with the first. A collision is astronomically unlikely at real sizes.
	DefaultMaxEqualRetries = 4
)

// DefaultMaxPrimeAttempts returns the candidate cap for a prime draw of the
// given bit length. A draw tests fixed-width candidates one by one and about
// 0.35*bits of them are expected before a prime appears, so the cap must
// grow with the size; 64*bits leaves a margin that only a broken entropy
// source can exhaust.
func DefaultMaxPrimeAttempts(bits int) int {
	return 64 * bits
}

// RAB512Params is the parameter set for 512-bit primes. Demonstration strength.
var RAB512Params = rabin.KeyParams{
	Level:            rabin.RAB512,
	Bits:             512,
	MaxPrimeAttempts: DefaultMaxPrimeAttempts(512),
	MaxEqualRetries:  DefaultMaxEqualRetries,
}

// RAB1024Params is the parameter set for 1024-bit primes.
var RAB1024Params = rabin.KeyParams{
	Level:            rabin.RAB1024,
	Bits:             1024,
	MaxPrimeAttempts: DefaultMaxPrimeAttempts(1024),
	MaxEqualRetries:  DefaultMaxEqualRetries,
}

// RAB2048Params is the parameter set for 2048-bit primes.
var RAB2048Params = rabin.KeyParams{
	Level:            rabin.RAB2048,
	Bits:             2048,
	MaxPrimeAttempts: DefaultMaxPrimeAttempts(2048),
	MaxEqualRetries:  DefaultMaxEqualRetries,
}

// GetParams returns the parameter set for the given security level.
func GetParams(level rabin.SecurityLevel) (rabin.KeyParams, error) {
	switch level {
	case rabin.RAB512:
		return RAB512Params, nil
	case rabin.RAB1024:
		return RAB1024Params, nil
	case rabin.RAB2048:
		return RAB2048Params, nil
	default:
		return rabin.KeyParams{}, fmt.Errorf("unknown security level: %s", level)
	}
}

// ParamsForBits builds a parameter set for an arbitrary prime bit length
// with the default retry caps.
func ParamsForBits(bits int) rabin.KeyParams {
	return rabin.KeyParams{
		Level:            rabin.SecurityLevel(fmt.Sprintf("RAB-%d", bits)),
		Bits:             bits,
		MaxPrimeAttempts: DefaultMaxPrimeAttempts(bits),
		MaxEqualRetries:  DefaultMaxEqualRetries,
	}
}

// ValidateParams validates the parameter set for consistency.
func ValidateParams(params rabin.KeyParams) error {
	if params.Bits < MinPrimeBits {
		return fmt.Errorf("prime bit length must be at least %d", MinPrimeBits)
	}
	if params.MaxPrimeAttempts <= 0 {
		return errors.New("max prime attempts must be positive")
	}
	if params.MaxEqualRetries < 0 {
		return errors.New("max equal retries must not be negative")
	}
	return nil
}
