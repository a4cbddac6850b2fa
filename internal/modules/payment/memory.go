package payment

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

func (r *memoryRepository) Create(_ context.Context, p *store.Payment) error {
	return r.store.Update(func(d *store.Data) error {
		cp := *p
		d.Payments = append(d.Payments, &cp)
		return nil
	})
}

func (r *memoryRepository) GetByID(_ context.Context, id string) (*store.Payment, error) {
	var found *store.Payment
	r.store.View(func(d *store.Data) {
		for _, p := range d.Payments {
			if p.ID == id {
				cp := *p
				found = &cp
				return
			}
		}
	})
	if found == nil {
		return nil, store.ErrNotFound
	}
	return found, nil
}

func (r *memoryRepository) List(_ context.Context, userID string) ([]*store.Payment, error) {
	var out []*store.Payment
	r.store.View(func(d *store.Data) {
		for _, p := range d.Payments {
			if userID != "" && p.UserID != userID {
				continue
			}
			cp := *p
			out = append(out, &cp)
		}
	})
	return out, nil
}
