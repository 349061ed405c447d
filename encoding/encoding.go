// Package encoding converts text to arbitrary-precision integers and back,
// treating the text as digits of a positional numeral system over a
// configurable symbol alphabet.
package encoding

import (
	"errors"
	"fmt"
	"math/big"
)

// DefaultAlphabet is the standard 82-symbol digit string: decimal digits,
// upper- and lowercase letters, a fixed punctuation set, and a trailing
// space. Its length is the numeral base; the index of a symbol is its digit
// value.
const DefaultAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz(.,;:!?)[<+-*/=>]@| "

// InvalidCharacterError reports a character in the input text that is
// absent from the alphabet.
type InvalidCharacterError struct {
	Char     rune
	Position int
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("encoding: invalid character %q at position %d", e.Char, e.Position)
}

// Alphabet is an ordered sequence of unique symbols with its reverse lookup
// table built once, keeping encoding near-linear in text length.
type Alphabet struct {
	symbols []rune
	index   map[rune]int
	base    *big.Int
}

// NewAlphabet builds an Alphabet from the given symbol string. It fails on
// an empty string or duplicate symbols, which would make the digit mapping
// ambiguous.
func NewAlphabet(symbols string) (*Alphabet, error) {
	runes := []rune(symbols)
	if len(runes) == 0 {
		return nil, errors.New("encoding: alphabet must not be empty")
	}
	index := make(map[rune]int, len(runes))
	for i, r := range runes {
		if _, dup := index[r]; dup {
			return nil, fmt.Errorf("encoding: duplicate symbol %q in alphabet", r)
		}
		index[r] = i
	}
	return &Alphabet{
		symbols: runes,
		index:   index,
		base:    big.NewInt(int64(len(runes))),
	}, nil
}

// Len returns the numeral base, the number of symbols in the alphabet.
func (a *Alphabet) Len() int {
	return len(a.symbols)
}

// Encode folds text into an integer, most-significant digit first:
// result = result*base + digit for each character. A character missing from
// the alphabet yields an InvalidCharacterError carrying the character and
// its position.
//
// Leading symbols with digit value 0 do not survive a round trip: they
// contribute nothing to the integer, exactly as "007" and "7" denote the
// same decimal number. This is inherent to the numeral scheme.
func (a *Alphabet) Encode(text string) (*big.Int, error) {
	num := new(big.Int)
	digit := new(big.Int)
	for i, r := range []rune(text) {
		v, ok := a.index[r]
		if !ok {
			return nil, &InvalidCharacterError{Char: r, Position: i}
		}
		num.Mul(num, a.base)
		num.Add(num, digit.SetInt64(int64(v)))
	}
	return num, nil
}

// Decode expands an integer back into text by repeated division, collecting
// digits least-significant first and reversing. Zero decodes to the single
// symbol at index 0, since the division loop would otherwise produce an
// empty string. A negative input decodes to the text of its absolute value
// prefixed with '-'.
func (a *Alphabet) Decode(number *big.Int) string {
	if number.Sign() == 0 {
		return string(a.symbols[0])
	}

	current := new(big.Int).Set(number)
	negative := current.Sign() < 0
	if negative {
		current.Neg(current)
	}

	rem := new(big.Int)
	var digits []rune
	for current.Sign() > 0 {
		current.DivMod(current, a.base, rem)
		digits = append(digits, a.symbols[rem.Int64()])
	}
	if negative {
		digits = append(digits, '-')
	}

	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return string(digits)
}

// Encode is a convenience wrapper building the alphabet per call. Callers
// encoding repeatedly should construct an Alphabet once instead.
func Encode(text, alphabet string) (*big.Int, error) {
	a, err := NewAlphabet(alphabet)
	if err != nil {
		return nil, err
	}
	return a.Encode(text)
}

// Decode is the convenience counterpart of Encode.
func Decode(number *big.Int, alphabet string) (string, error) {
	a, err := NewAlphabet(alphabet)
	if err != nil {
		return "", err
	}
	return a.Decode(number), nil
}
