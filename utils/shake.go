package utils

import (
	"io"

	"golang.org/x/crypto/sha3"
)

// NewSeedReader returns a deterministic byte stream derived from seed via
// SHAKE256. The domain string is length-prefixed before absorption so that
// distinct domains yield independent streams from the same seed; this is
// what lets the two prime draws of a keypair share one seed without sharing
// entropy. Panics if domain is longer than 255 bytes.
func NewSeedReader(domain string, seed []byte) io.Reader {
	domainBytes := []byte(domain)
	if len(domainBytes) > 255 {
		panic("domain string must be at most 255 bytes")
	}
	h := sha3.NewShake256()
	h.Write([]byte{byte(len(domainBytes))})
	h.Write(domainBytes)
	h.Write(seed)
	return h
}

// Shake256WithDomain computes a domain-separated SHAKE256 output of the
// given length. It uses the same domain framing as NewSeedReader.
func Shake256WithDomain(domain string, data []byte, outputLen int) []byte {
	output := make([]byte, outputLen)
	_, _ = io.ReadFull(NewSeedReader(domain, data), output)
	return output
}
