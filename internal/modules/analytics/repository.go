package analytics

import (
	"context"

	"github.com/sunspire/solarmart-backend/internal/store"
)

// Repository defines the read-only data access analytics needs.
type Repository interface {
	Orders(ctx context.Context) ([]*store.Order, error)
	Products(ctx context.Context) ([]*store.Product, error)
	EnergySeries(ctx context.Context, userID string) ([]store.EnergyReading, error)
}
