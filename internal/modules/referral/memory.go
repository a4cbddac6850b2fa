package referral

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

func (r *memoryRepository) Create(_ context.Context, ref *store.Referral) error {
	return r.store.Update(func(d *store.Data) error {
		d.Referrals = append(d.Referrals, cloneReferral(ref))
		return nil
	})
}

func (r *memoryRepository) GetByID(_ context.Context, id string) (*store.Referral, error) {
	var found *store.Referral
	r.store.View(func(d *store.Data) {
		for _, ref := range d.Referrals {
			if ref.ID == id {
				found = cloneReferral(ref)
				return
			}
		}
	})
	if found == nil {
		return nil, store.ErrNotFound
	}
	return found, nil
}

func (r *memoryRepository) List(_ context.Context, referrerID string) ([]*store.Referral, error) {
	var out []*store.Referral
	r.store.View(func(d *store.Data) {
		for _, ref := range d.Referrals {
			if referrerID != "" && ref.ReferrerID != referrerID {
				continue
			}
			out = append(out, cloneReferral(ref))
		}
	})
	return out, nil
}

func (r *memoryRepository) Update(_ context.Context, ref *store.Referral) error {
	return r.store.Update(func(d *store.Data) error {
		for _, existing := range d.Referrals {
			if existing.ID == ref.ID {
				*existing = *cloneReferral(ref)
				return nil
			}
		}
		return store.ErrNotFound
	})
}

func cloneReferral(ref *store.Referral) *store.Referral {
	cp := *ref
	if ref.ConvertedOn != nil {
		t := *ref.ConvertedOn
		cp.ConvertedOn = &t
	}
	return &cp
}
