package cart

import (
	"context"
	"errors"

	"github.com/sunspire/solarmart-backend/internal/store"
)

// Service defines cart business logic. Stock preconditions are checked
// against the catalog at call time; the single-writer store makes each
// individual mutation atomic, but the check itself is optimistic.
type Service interface {
	// AddItem puts quantity units in the cart, merging with an existing
	// line. Fails if the product is unknown, out of stock, or the merged
	// quantity would exceed the current stock.
	AddItem(ctx context.Context, userID, productID string, quantity int) error

	// UpdateItem overwrites an existing line's quantity.
	UpdateItem(ctx context.Context, userID, productID string, quantity int) error

	// RemoveItem drops a line; removing an absent product is a no-op.
	RemoveItem(ctx context.Context, userID, productID string) error

	// Clear empties the cart.
	Clear(ctx context.Context, userID string) error

	// Summary returns the cart lines with derived total and count.
	Summary(ctx context.Context, userID string) (*Summary, error)
}

type service struct{ repo Repository }

// NewService creates a new cart service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) AddItem(ctx context.Context, userID, productID string, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	p, err := s.repo.GetProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrProductNotFound
		}
		return err
	}
	if !p.InStock {
		return ErrProductUnavailable
	}

	target := quantity
	items, err := s.repo.Items(ctx, userID)
	if err != nil {
		return err
	}
	for _, item := range items {
		if item.ProductID == productID {
			target += item.Quantity
			break
		}
	}
	if target > p.Stock {
		return ErrInsufficientStock
	}
	return s.repo.UpsertItem(ctx, userID, productID, target)
}

func (s *service) UpdateItem(ctx context.Context, userID, productID string, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	p, err := s.repo.GetProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrProductNotFound
		}
		return err
	}
	if quantity > p.Stock {
		return ErrInsufficientStock
	}

	items, err := s.repo.Items(ctx, userID)
	if err != nil {
		return err
	}
	for _, item := range items {
		if item.ProductID == productID {
			return s.repo.UpsertItem(ctx, userID, productID, quantity)
		}
	}
	return ErrItemNotFound
}

func (s *service) RemoveItem(ctx context.Context, userID, productID string) error {
	return s.repo.RemoveItem(ctx, userID, productID)
}

func (s *service) Clear(ctx context.Context, userID string) error {
	return s.repo.Clear(ctx, userID)
}

func (s *service) Summary(ctx context.Context, userID string) (*Summary, error) {
	items, err := s.repo.Items(ctx, userID)
	if err != nil {
		return nil, err
	}
	summary := &Summary{Items: items}
	for _, item := range items {
		p, err := s.repo.GetProduct(ctx, item.ProductID)
		if err != nil {
			// Product deleted since it was added; the line contributes
			// nothing to the totals.
			continue
		}
		summary.Total += p.EffectivePrice() * int64(item.Quantity)
		summary.Count += item.Quantity
	}
	if summary.Items == nil {
		summary.Items = []store.CartItem{}
	}
	return summary, nil
}
