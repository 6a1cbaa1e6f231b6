package repository

import (
	"context"
	"errors"

	"pantry/internal/domain/entity"
)

// ErrProductNotFound is a domain-specific error returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the standard operations for the product collection.
// The application layer depends on this interface, not the concrete implementation.
// The collection preserves insertion order.
type ProductRepository interface {
	// Insert appends a new product to the collection.
	Insert(ctx context.Context, product *entity.Product) error

	// Replace overwrites the product with the same ID in place,
	// or returns ErrProductNotFound.
	Replace(ctx context.Context, product *entity.Product) error

	// Delete removes the product with the given ID. Deleting an unknown
	// ID is a no-op.
	Delete(ctx context.Context, id string) error

	// FindByID retrieves a single product, or ErrProductNotFound.
	FindByID(ctx context.Context, id string) (*entity.Product, error)

	// List returns a copy of the collection in insertion order.
	List(ctx context.Context) ([]entity.Product, error)
}
