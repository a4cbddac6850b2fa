package cart

import (
	"context"

	"github.com/sunspire/solarmart-backend/internal/store"
)

// Repository defines data access for carts.
type Repository interface {
	// Items returns a detached copy of the user's cart lines.
	Items(ctx context.Context, userID string) ([]store.CartItem, error)

	// UpsertItem sets the quantity for a product, appending a new line if
	// the product is not in the cart yet.
	UpsertItem(ctx context.Context, userID, productID string, quantity int) error

	// RemoveItem drops the product's line if present; no-op otherwise.
	RemoveItem(ctx context.Context, userID, productID string) error

	// Clear empties the user's cart unconditionally.
	Clear(ctx context.Context, userID string) error

	// GetProduct fetches the current price and stock for a catalog product.
	GetProduct(ctx context.Context, id string) (*store.Product, error)
}
