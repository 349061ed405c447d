// Package keypair composes two independent Blum prime draws into a Rabin keypair.
package keypair

import (
	"errors"
	"fmt"
	"io"
	"math/big"
	"sync"

	rabin "github.com/BackendStack21/rabin-go"
	"github.com/BackendStack21/rabin-go/core"
	"github.com/BackendStack21/rabin-go/prime"
	"github.com/BackendStack21/rabin-go/utils"
)

const (
	DomainPrimeP = "rabin-prime-p-v1"
	DomainPrimeQ = "rabin-prime-q-v1"
)

// ErrEqualPrimes is returned when the second prime kept colliding with the
// first past the configured retry cap. A single collision is already
// astronomically unlikely at real key sizes.
var ErrEqualPrimes = errors.New("keypair: prime draws kept colliding")

// Generate draws a fresh keypair with primes of exactly bits bits each,
// using the process-wide entropy source and the default retry caps.
func Generate(bits int) (*rabin.Keypair, error) {
	seed, err := utils.SecureRandomBytes(32)
	if err != nil {
		return nil, err
	}
	kp, err := GenerateFromSeed(bits, seed)
	utils.Zeroize(seed)
	return kp, err
}

// GenerateFromSeed deterministically derives a keypair from seed. The seed
// must be at least 32 bytes and pass basic entropy checks. The two prime
// draws consume independent domain-separated SHAKE256 streams, so the same
// seed always yields the same keypair.
func GenerateFromSeed(bits int, seed []byte) (*rabin.Keypair, error) {
	if err := utils.ValidateSeedEntropy(seed); err != nil {
		return nil, err
	}
	params := core.ParamsForBits(bits)
	return GenerateParams(params,
		utils.NewSeedReader(DomainPrimeP, seed),
		utils.NewSeedReader(DomainPrimeQ, seed))
}

// GenerateParams generates a keypair with explicit parameters, reading the
// entropy for each prime from its own reader. The two draws have no shared
// state and run concurrently; they are joined before n is computed. If the
// draws collide, q is redrawn from the continuation of its stream, at most
// params.MaxEqualRetries times.
func GenerateParams(params rabin.KeyParams, pr, qr io.Reader) (*rabin.Keypair, error) {
	if err := core.ValidateParams(params); err != nil {
		return nil, err
	}

	var wg sync.WaitGroup
	var p, q *big.Int
	var pErr, qErr error

	wg.Add(2)
	go func() {
		defer wg.Done()
		p, pErr = prime.GenerateBlum(pr, params.Bits, params.MaxPrimeAttempts)
	}()
	go func() {
		defer wg.Done()
		q, qErr = prime.GenerateBlum(qr, params.Bits, params.MaxPrimeAttempts)
	}()
	wg.Wait()

	if pErr != nil {
		return nil, fmt.Errorf("keypair: drawing p: %w", pErr)
	}
	if qErr != nil {
		return nil, fmt.Errorf("keypair: drawing q: %w", qErr)
	}

	// n must factor into two distinct primes.
	for retry := 0; p.Cmp(q) == 0; retry++ {
		if retry >= params.MaxEqualRetries {
			return nil, ErrEqualPrimes
		}
		q, qErr = prime.GenerateBlum(qr, params.Bits, params.MaxPrimeAttempts)
		if qErr != nil {
			return nil, fmt.Errorf("keypair: redrawing q: %w", qErr)
		}
	}

	return &rabin.Keypair{
		N: new(big.Int).Mul(p, q),
		P: p,
		Q: q,
	}, nil
}
