// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by CredentialStore.Get when the key has never been written.
var ErrKeyNotFound = errors.New("key not found")

// Well-known credential store keys. The store holds exactly one account.
const (
	KeyUserEmail    = "user_email"
	KeyUserPassword = "user_password"
)

// CredentialStore is the device's secure key-value facility. Implementations
// must provide at-least-once durability on the local device; any I/O failure
// is surfaced as an error, never a panic.
type CredentialStore interface {
	// Get retrieves the value for a key, or ErrKeyNotFound if absent.
	Get(ctx context.Context, key string) (string, error)

	// Set writes the value for a key, overwriting any previous value.
	Set(ctx context.Context, key, value string) error

	// SetMany writes several keys in one durable operation. Registration
	// uses it so the email and digest keys never go out of step.
	SetMany(ctx context.Context, values map[string]string) error
}
