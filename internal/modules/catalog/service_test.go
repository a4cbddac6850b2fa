package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sunspire/solarmart-backend/internal/store"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	s, err := store.Open("")
	require.NoError(t, err)
	return NewService(NewMemoryRepository(s))
}

func TestCreateProduct(t *testing.T) {
	svc := newTestService(t)

	p, err := svc.CreateProduct(context.Background(), CreateProductRequest{
		Name:     "Solar Cable 10m",
		Price:    2999,
		Category: "accessory",
		Stock:    100,
		SKU:      "CBL-10M-001",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, 0, p.Sold)
	assert.True(t, p.InStock)

	fetched, err := svc.GetProduct(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Solar Cable 10m", fetched.Name)
}

func TestCreateProductValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateProduct(ctx, CreateProductRequest{Price: 1, Category: "panel"})
	assert.Error(t, err, "missing name")

	_, err = svc.CreateProduct(ctx, CreateProductRequest{Name: "x", Price: 0, Category: "panel"})
	assert.Error(t, err, "zero price")

	_, err = svc.CreateProduct(ctx, CreateProductRequest{Name: "x", Price: 1, Category: "widget"})
	assert.Error(t, err, "unknown category")
}

func TestCreateProductWithZeroStockIsNotInStock(t *testing.T) {
	svc := newTestService(t)

	p, err := svc.CreateProduct(context.Background(), CreateProductRequest{
		Name:     "Preorder Panel",
		Price:    9999,
		Category: "panel",
		Stock:    0,
	})
	require.NoError(t, err)
	assert.False(t, p.InStock)
}

func TestUpdateProductPartialMerge(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	newStock := 0
	p, err := svc.UpdateProduct(ctx, "p1", UpdateProductRequest{Stock: &newStock})
	require.NoError(t, err)

	// Only stock changed; in_stock is re-derived from it.
	assert.Equal(t, "Solar Panel 450W Mono", p.Name)
	assert.Equal(t, 0, p.Stock)
	assert.False(t, p.InStock)
	assert.Equal(t, 23, p.Sold)

	restocked := 5
	p, err = svc.UpdateProduct(ctx, "p1", UpdateProductRequest{Stock: &restocked})
	require.NoError(t, err)
	assert.True(t, p.InStock)
}

func TestUpdateProductUnknownID(t *testing.T) {
	svc := newTestService(t)
	name := "renamed"
	_, err := svc.UpdateProduct(context.Background(), "nope", UpdateProductRequest{Name: &name})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestDeleteProduct(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	deleted, err := svc.DeleteProduct(ctx, "p5")
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = svc.GetProduct(ctx, "p5")
	assert.ErrorIs(t, err, store.ErrNotFound)

	// Deleting again is a no-op reporting false.
	deleted, err = svc.DeleteProduct(ctx, "p5")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestListProductsFilters(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	panels, err := svc.ListProducts(ctx, ListFilter{Category: store.CategoryPanel})
	require.NoError(t, err)
	assert.Len(t, panels, 2)

	featured := true
	hot, err := svc.ListProducts(ctx, ListFilter{Featured: &featured})
	require.NoError(t, err)
	assert.Len(t, hot, 2)

	all, err := svc.ListProducts(ctx, ListFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestListReturnsDetachedCopies(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	first, err := svc.GetProduct(ctx, "p1")
	require.NoError(t, err)
	first.Stock = 0

	again, err := svc.GetProduct(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 45, again.Stock, "mutating a returned product must not touch the store")
}
