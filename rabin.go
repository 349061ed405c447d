// Package rabin implements the core mathematics of the Rabin public-key
// cryptosystem: Blum-prime keypair generation, modular-squaring encryption,
// and Chinese-Remainder-Theorem decryption yielding all four square-root
// candidates, together with a reversible text-to-integer codec.
//
// WARNING: this is a naive, textbook construction. There is no padding
// scheme, so identical messages produce identical ciphertexts, and no
// candidate-selection logic: decryption returns all four square roots and
// leaves disambiguation to the caller. DO NOT use it to protect real data.
package rabin

// Version of the rabin-go implementation.
const Version = "1.0.0"

// API summary:
//
// Key generation:
//   - keypair.Generate(bits) - Draw a fresh keypair with primes of the given bit length
//   - keypair.GenerateFromSeed(bits, seed) - Deterministic keypair from a 32-byte seed
//
// Encryption:
//   - cipher.Encrypt(message, n) - Compute message^2 mod n
//   - cipher.Decrypt(ciphertext, p, q) - Recover the four square-root candidates
//
// Text codec:
//   - encoding.NewAlphabet(symbols) - Build an alphabet with its reverse lookup table
//   - encoding.Encode(text, alphabet) - Text to integer, most-significant digit first
//   - encoding.Decode(number, alphabet) - Integer back to text
//
// Parameters:
//   - core.GetParams(level) - Get parameters for a named security level
//   - core.ParamsForBits(bits) - Build parameters for an arbitrary prime size
//   - RAB512, RAB1024, RAB2048 - Preset levels
