package ticket

import (
	"context"

	"github.com/sunspire/solarmart-backend/internal/store"
)

// Repository defines data access for support tickets.
type Repository interface {
	Create(ctx context.Context, t *store.Ticket) error
	GetByID(ctx context.Context, id string) (*store.Ticket, error)

	// List returns all tickets, or only one user's when userID is
	// non-empty.
	List(ctx context.Context, userID string) ([]*store.Ticket, error)

	// Update replaces the stored ticket with the same id.
	Update(ctx context.Context, t *store.Ticket) error
}
