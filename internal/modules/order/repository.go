package order

import (
	"context"

	"github.com/sunspire/solarmart-backend/internal/store"
)

// Repository defines data access for orders, their payments and shipment
// tracking.
type Repository interface {
	// CommitOrder applies an order placement as one atomic step: it
	// re-validates stock for every line, decrements stock and increments
	// sold counters, appends the order and its payment, and clears the
	// user's cart. On any validation failure nothing is mutated.
	CommitOrder(ctx context.Context, userID string, o *store.Order, p *store.Payment) error

	GetOrderByID(ctx context.Context, id string) (*store.Order, error)

	// ListOrders returns all orders, or only one user's when userID is
	// non-empty.
	ListOrders(ctx context.Context, userID string) ([]*store.Order, error)

	// UpdateOrder replaces the stored order with the same id.
	UpdateOrder(ctx context.Context, o *store.Order) error

	GetTracking(ctx context.Context, orderID string) (*store.Tracking, error)
	CreateTracking(ctx context.Context, t *store.Tracking) error
	UpdateTracking(ctx context.Context, t *store.Tracking) error

	// GetUser and CartItems feed order placement preconditions.
	GetUser(ctx context.Context, id string) (*store.User, error)
	CartItems(ctx context.Context, userID string) ([]store.CartItem, error)

	// GetProduct fetches current pricing and stock for a cart line.
	GetProduct(ctx context.Context, id string) (*store.Product, error)
}
