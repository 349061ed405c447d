// Package prime draws the Blum primes used for Rabin moduli.
package prime

import (
	"errors"
	"fmt"
	"io"
	"math/big"
)

var (
	three = big.NewInt(3)
	four  = big.NewInt(4)
)

// ErrAttemptsExceeded is returned when the candidate loop hits its attempt
// cap without finding a prime. With a sound entropy source and the default
// cap this is effectively unreachable: about 0.35*bits candidates are
// expected at a given size.
var ErrAttemptsExceeded = errors.New("prime: attempt cap exceeded while searching for a prime ≡ 3 (mod 4)")

// GenerateBlum returns a probable prime with exactly bits bits satisfying
// p ≡ 3 (mod 4), reading entropy from r. Every candidate consumes exactly
// (bits+7)/8 bytes from r, so a deterministic reader always yields the same
// prime. (crypto/rand.Prime is unusable here: it consumes a random number
// of bytes per call, by design.)
//
// Each candidate is shaped before testing: the top two bits are set, so the
// product of two such primes reaches the full modulus length, and the low
// two bits are set, making every candidate ≡ 3 (mod 4) by construction.
// Candidates are checked with ProbablyPrime(20) — a Baillie-PSW test plus
// 20 Miller-Rabin rounds, leaving the probability of returning a composite
// far below 2^-40 — and redrawn on failure, at most maxAttempts times.
// A maxAttempts of zero or less selects a default cap of 64*bits.
func GenerateBlum(r io.Reader, bits, maxAttempts int) (*big.Int, error) {
	if bits < 2 {
		return nil, errors.New("prime: bit length must be at least 2")
	}
	if maxAttempts <= 0 {
		maxAttempts = 64 * bits
	}

	buf := make([]byte, (bits+7)/8)
	excess := len(buf)*8 - bits
	p := new(big.Int)

	for i := 0; i < maxAttempts; i++ {
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, fmt.Errorf("prime: reading candidate: %w", err)
		}
		buf[0] &= 0xFF >> excess
		p.SetBytes(buf)
		p.SetBit(p, bits-1, 1)
		p.SetBit(p, bits-2, 1)
		p.SetBit(p, 1, 1)
		p.SetBit(p, 0, 1)
		if p.ProbablyPrime(20) {
			return p, nil
		}
	}
	return nil, ErrAttemptsExceeded
}

// IsBlum reports whether p ≡ 3 (mod 4).
func IsBlum(p *big.Int) bool {
	return new(big.Int).Mod(p, four).Cmp(three) == 0
}
