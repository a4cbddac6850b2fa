package analytics

import (
	"context"

	"github.com/sunspire/solarmart-backend/internal/store"
)

type memoryRepository struct {
	store *store.Store
}

// NewMemoryRepository creates a Repository backed by the shared store.
func NewMemoryRepository(s *store.Store) Repository {
	return &memoryRepository{store: s}
}

func (r *memoryRepository) Orders(_ context.Context) ([]*store.Order, error) {
	var out []*store.Order
	r.store.View(func(d *store.Data) {
		for _, o := range d.Orders {
			cp := *o
			cp.Items = append([]store.CartItem(nil), o.Items...)
			out = append(out, &cp)
		}
	})
	return out, nil
}

func (r *memoryRepository) Products(_ context.Context) ([]*store.Product, error) {
	var out []*store.Product
	r.store.View(func(d *store.Data) {
		for _, p := range d.Products {
			cp := *p
			out = append(out, &cp)
		}
	})
	return out, nil
}

func (r *memoryRepository) EnergySeries(_ context.Context, userID string) ([]store.EnergyReading, error) {
	var out []store.EnergyReading
	r.store.View(func(d *store.Data) {
		out = append(out, d.EnergyData[userID]...)
	})
	return out, nil
}
