// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"

	"pantry/internal/domain/service"
)

// sha3Digester is a concrete implementation of the Digester interface using SHA3-256.
// Unlike a salted hash, the output is deterministic, which the credential
// store relies on: login compares the stored digest with a freshly computed
// one byte for byte.
type sha3Digester struct{}

// NewSHA3Digester is the constructor for sha3Digester.
// It returns the implementation as a service.Digester interface.
func NewSHA3Digester() service.Digester {
	return &sha3Digester{}
}

// Digest computes the hex-encoded SHA3-256 digest of a secret.
// Output is always 64 characters, for any input including the empty string.
func (d *sha3Digester) Digest(secret string) string {
	sum := sha3.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:])
}
