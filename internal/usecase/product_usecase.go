package usecase

import (
	"context"

	"pantry/internal/domain/entity"
)

// ProductDraft carries the raw form fields as the user typed them, before
// any type coercion. Numeric fields that fail to parse fall back to zero.
type ProductDraft struct {
	Name       string `json:"name"`
	Quantity   string `json:"quantity"`
	ExpiryDate string `json:"expiry_date"`
	Exits      string `json:"exits"`
	Price      string `json:"price"`
}

// RemoveOutput reports whether the product was actually deleted. Removed is
// false when the user cancelled the confirmation or the ID was unknown.
type RemoveOutput struct {
	Removed bool `json:"removed"`
}

// ProductUsecase defines the interface for product-related business operations.
type ProductUsecase interface {
	// Add coerces and validates the draft, stores a new product, and fires
	// the haptic pulse and creation notification.
	Add(ctx context.Context, draft *ProductDraft) (*entity.Product, error)

	// Update coerces and validates the draft and replaces the identified
	// product in place. No side effects.
	Update(ctx context.Context, id string, draft *ProductDraft) (*entity.Product, error)

	// Remove asks for confirmation, then deletes the identified product.
	// Removing an unknown ID is an idempotent no-op.
	Remove(ctx context.Context, id string) (*RemoveOutput, error)

	// List returns a stable-sorted projection of the collection.
	List(ctx context.Context, key entity.SortKey) ([]entity.Product, error)
}
