package payment

import (
	"context"

	"github.com/sunspire/solarmart-backend/internal/store"
)

// Repository defines data access for payment records. Records for orders
// are written by the order module at placement time; this module reads
// them and owns standalone records (installations, subscriptions).
type Repository interface {
	Create(ctx context.Context, p *store.Payment) error
	GetByID(ctx context.Context, id string) (*store.Payment, error)

	// List returns all payments, or only one user's when userID is
	// non-empty.
	List(ctx context.Context, userID string) ([]*store.Payment, error)
}
