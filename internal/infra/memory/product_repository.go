// Package memory provides in-memory repository implementations. The product
// collection is session-scoped: it lives for the process and is gone on
// restart, matching the app's single-session model.
package memory

import (
	"context"
	"sync"

	"pantry/internal/domain/entity"
	"pantry/internal/domain/repository"
)

// productRepository keeps products in a slice so insertion order is the
// collection order. A mutex guards it because the HTTP layer serves
// requests concurrently.
type productRepository struct {
	mu       sync.Mutex
	products []entity.Product
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository() repository.ProductRepository {
	return &productRepository{}
}

// Insert appends a new product to the collection.
func (r *productRepository) Insert(_ context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.products = append(r.products, *product)
	return nil
}

// Replace overwrites the product with the same ID in place.
func (r *productRepository) Replace(_ context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.products {
		if r.products[i].ID == product.ID {
			r.products[i] = *product
			return nil
		}
	}
	return repository.ErrProductNotFound
}

// Delete removes the product with the given ID. Unknown IDs are a no-op.
func (r *productRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.products {
		if r.products[i].ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return nil
}

// FindByID retrieves a single product, or repository.ErrProductNotFound.
func (r *productRepository) FindByID(_ context.Context, id string) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.products {
		if r.products[i].ID == id {
			found := r.products[i]
			return &found, nil
		}
	}
	return nil, repository.ErrProductNotFound
}

// List returns a copy of the collection in insertion order.
func (r *productRepository) List(_ context.Context) ([]entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]entity.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}
