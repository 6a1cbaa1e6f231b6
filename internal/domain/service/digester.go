// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// Digester turns a plaintext secret into a fixed-length one-way digest.
// Digest must be pure and deterministic: the same input always yields the
// same output, for any input including the empty string. Stored credentials
// are compared digest-to-digest, so a salted scheme does not fit here.
type Digester interface {
	// Digest computes the fixed-length digest of a secret.
	Digest(secret string) string
}
