package rabin

import "math/big"

// SecurityLevel names a Rabin parameter set.
type SecurityLevel string

const (
	// RAB512 uses 512-bit primes (1024-bit modulus). Demonstration strength.
	RAB512 SecurityLevel = "RAB-512"
	// RAB1024 uses 1024-bit primes (2048-bit modulus).
	RAB1024 SecurityLevel = "RAB-1024"
	// RAB2048 uses 2048-bit primes (4096-bit modulus).
	RAB2048 SecurityLevel = "RAB-2048"
)

// KeyParams contains the parameters for keypair generation.
type KeyParams struct {
	Level SecurityLevel `json:"level"`
	Bits  int           `json:"bits"` // Bit length of each prime

	// MaxPrimeAttempts caps the congruence resampling loop of a single prime
	// draw. Exhaustion is reported as an error, never silently ignored.
	MaxPrimeAttempts int `json:"max_prime_attempts"`

	// MaxEqualRetries caps how often a colliding second prime is redrawn.
	MaxEqualRetries int `json:"max_equal_retries"`
}

// Keypair is a Rabin keypair. N = P * Q is the public key; P and Q are the
// private key. Both primes satisfy p ≡ 3 (mod 4), making N a Blum integer so
// that every quadratic residue mod N has exactly four square roots.
//
// Private key material is not zeroed on scope exit; big.Int offers no
// reliable wiping.
type Keypair struct {
	N *big.Int // public modulus
	P *big.Int // private prime
	Q *big.Int // private prime
}

// CandidateSet holds the four square-root candidates produced by decryption,
// each in [0, n). Generically all four are pairwise distinct; degenerate
// ciphertexts such as 0 may collapse some candidates to equal values.
type CandidateSet [4]*big.Int
