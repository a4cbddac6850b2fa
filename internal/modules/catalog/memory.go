package catalog

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

func (r *memoryRepository) Create(_ context.Context, p *store.Product) error {
	return r.store.Update(func(d *store.Data) error {
		d.Products = append(d.Products, cloneProduct(p))
		return nil
	})
}

func (r *memoryRepository) GetByID(_ context.Context, id string) (*store.Product, error) {
	var found *store.Product
	r.store.View(func(d *store.Data) {
		if p := d.FindProduct(id); p != nil {
			found = cloneProduct(p)
		}
	})
	if found == nil {
		return nil, store.ErrNotFound
	}
	return found, nil
}

func (r *memoryRepository) List(_ context.Context, filter ListFilter) ([]*store.Product, error) {
	var out []*store.Product
	r.store.View(func(d *store.Data) {
		for _, p := range d.Products {
			if filter.Category != "" && p.Category != filter.Category {
				continue
			}
			if filter.Featured != nil && p.Featured != *filter.Featured {
				continue
			}
			out = append(out, cloneProduct(p))
		}
	})
	return out, nil
}

func (r *memoryRepository) Update(_ context.Context, p *store.Product) error {
	return r.store.Update(func(d *store.Data) error {
		existing := d.FindProduct(p.ID)
		if existing == nil {
			return store.ErrNotFound
		}
		*existing = *cloneProduct(p)
		return nil
	})
}

func (r *memoryRepository) Delete(_ context.Context, id string) (bool, error) {
	deleted := false
	err := r.store.Update(func(d *store.Data) error {
		for i, p := range d.Products {
			if p.ID == id {
				d.Products = append(d.Products[:i], d.Products[i+1:]...)
				deleted = true
				return nil
			}
		}
		return nil
	})
	return deleted, err
}

func cloneProduct(p *store.Product) *store.Product {
	cp := *p
	if p.DiscountPrice != nil {
		v := *p.DiscountPrice
		cp.DiscountPrice = &v
	}
	if p.Specs != nil {
		cp.Specs = make(map[string]string, len(p.Specs))
		for k, v := range p.Specs {
			cp.Specs[k] = v
		}
	}
	return &cp
}
