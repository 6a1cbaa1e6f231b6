package memory

import (
	"context"
	"testing"

	"pantry/internal/domain/entity"
	"pantry/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductRepository_InsertPreservesOrder(t *testing.T) {
	repo := NewProductRepository()
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, &entity.Product{ID: "1", Name: "Arroz", Price: 5.5}))
	require.NoError(t, repo.Insert(ctx, &entity.Product{ID: "2", Name: "Feijão", Price: 7.2}))

	products, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Arroz", products[0].Name)
	assert.Equal(t, "Feijão", products[1].Name)
}

func TestProductRepository_Replace(t *testing.T) {
	repo := NewProductRepository()
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, &entity.Product{ID: "1", Name: "Arroz", Quantity: 1, Price: 5.5}))
	require.NoError(t, repo.Replace(ctx, &entity.Product{ID: "1", Name: "Arroz", Quantity: 9, Price: 6.0}))

	got, err := repo.FindByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, 9, got.Quantity)
	assert.Equal(t, 6.0, got.Price)
}

func TestProductRepository_ReplaceUnknownID(t *testing.T) {
	repo := NewProductRepository()

	err := repo.Replace(context.Background(), &entity.Product{ID: "missing", Name: "X", Price: 1})
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestProductRepository_DeleteIsIdempotent(t *testing.T) {
	repo := NewProductRepository()
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, &entity.Product{ID: "1", Name: "Arroz", Price: 5.5}))

	require.NoError(t, repo.Delete(ctx, "1"))
	require.NoError(t, repo.Delete(ctx, "1"))
	require.NoError(t, repo.Delete(ctx, "never-existed"))

	products, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestProductRepository_ListReturnsCopy(t *testing.T) {
	repo := NewProductRepository()
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, &entity.Product{ID: "1", Name: "Arroz", Price: 5.5}))

	products, err := repo.List(ctx)
	require.NoError(t, err)
	products[0].Name = "mutated"

	again, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Arroz", again[0].Name)
}
