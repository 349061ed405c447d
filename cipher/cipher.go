// Package cipher implements Rabin encryption and CRT-based decryption.
package cipher

import (
	"errors"
	"math/big"

	rabin "github.com/BackendStack21/rabin-go"
)

// ErrInvalidModulus is returned when a modulus or prime factor is not positive.
var ErrInvalidModulus = errors.New("cipher: modulus must be positive")

var (
	one  = big.NewInt(1)
	two  = big.NewInt(2)
	four = big.NewInt(4)
)

// Encrypt computes message^2 mod n. It is a pure, deterministic transform:
// there is no padding or randomization, so equal messages yield equal
// ciphertexts. The message is not checked against n; a message >= n is
// implicitly reduced by the squaring and aliases another plaintext.
func Encrypt(message, n *big.Int) (*big.Int, error) {
	if n == nil || n.Sign() <= 0 {
		return nil, ErrInvalidModulus
	}
	c := new(big.Int).Mul(message, message)
	return c.Mod(c, n), nil
}

// Decrypt recovers the four square-root candidates of ciphertext modulo
// n = p*q via the Chinese Remainder Theorem, valid because p ≡ q ≡ 3 (mod 4).
// Each candidate c satisfies c^2 ≡ ciphertext (mod n) whenever the inputs
// are well-formed.
//
// Beyond positivity of p and q, nothing is validated: a composite factor or
// a ciphertext that is not a quadratic residue produces arithmetically
// well-defined but meaningless candidates rather than an error. No attempt
// is made to pick the right plaintext among the four; that is the caller's
// problem. The ciphertext must be a non-nil integer; like math/big itself,
// Decrypt panics on a nil operand.
func Decrypt(ciphertext, p, q *big.Int) (rabin.CandidateSet, error) {
	if p == nil || p.Sign() <= 0 || q == nil || q.Sign() <= 0 {
		return rabin.CandidateSet{}, ErrInvalidModulus
	}
	n := new(big.Int).Mul(p, q)

	// One square root of the ciphertext modulo each prime:
	// c^((p+1)/4) mod p squares to c when c is a residue and p ≡ 3 (mod 4).
	pExp := new(big.Int).Add(p, one)
	pExp.Div(pExp, four)
	mp := new(big.Int).Exp(ciphertext, pExp, p)

	qExp := new(big.Int).Add(q, one)
	qExp.Div(qExp, four)
	mq := new(big.Int).Exp(ciphertext, qExp, q)

	// Modular inverses via Fermat's little theorem:
	// yp = q^(p-2) mod p, yq = p^(q-2) mod q.
	yp := new(big.Int).Exp(q, new(big.Int).Sub(p, two), p)
	yq := new(big.Int).Exp(p, new(big.Int).Sub(q, two), q)

	ypq := new(big.Int).Mul(yp, q)
	yqp := new(big.Int).Mul(yq, p)

	// Combine the per-prime roots into the four global candidates:
	// (mp, mq), (-mp, -mq), (mp, -mq), (-mp, mq). Negating both roots at
	// once would merely reproduce n - r1, leaving two of the four roots
	// unreachable. big.Int.Mod is Euclidean, so every result lands in
	// [0, n) even when the difference goes negative.
	r1 := new(big.Int).Mul(ypq, mp)
	r1.Add(r1, new(big.Int).Mul(yqp, mq))
	r1.Mod(r1, n)

	r2 := new(big.Int).Sub(n, r1)
	r2.Mod(r2, n)

	r3 := new(big.Int).Mul(ypq, mp)
	r3.Sub(r3, new(big.Int).Mul(yqp, mq))
	r3.Mod(r3, n)

	r4 := new(big.Int).Sub(n, r3)
	r4.Mod(r4, n)

	return rabin.CandidateSet{r1, r2, r3, r4}, nil
}
