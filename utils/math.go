package utils

import "math/big"

// GCD returns the greatest common divisor of a and b using iterative
// Euclidean reduction. The inputs are not modified; the result is always
// non-negative. GCD(0, 0) is 0.
func GCD(a, b *big.Int) *big.Int {
	x := new(big.Int).Abs(a)
	y := new(big.Int).Abs(b)
	for y.Sign() != 0 {
		x.Mod(x, y)
		x, y = y, x
	}
	return x
}
