package catalog

import (
	"context"

	"github.com/sunspire/solarmart-backend/internal/store"
)

// Repository defines the interface for product data storage. Returned
// products are always detached copies, never live store references.
type Repository interface {
	Create(ctx context.Context, p *store.Product) error
	GetByID(ctx context.Context, id string) (*store.Product, error)
	List(ctx context.Context, filter ListFilter) ([]*store.Product, error)

	// Update replaces the stored product with the same id.
	Update(ctx context.Context, p *store.Product) error

	// Delete removes the product if present and reports whether it did.
	Delete(ctx context.Context, id string) (bool, error)
}
