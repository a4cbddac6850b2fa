package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sunspire/solarmart-backend/internal/store"
)

// Service defines catalog business logic. Every mutation keeps the
// in-stock flag derived from the stock count.
type Service interface {
	CreateProduct(ctx context.Context, req CreateProductRequest) (*store.Product, error)
	GetProduct(ctx context.Context, id string) (*store.Product, error)
	ListProducts(ctx context.Context, filter ListFilter) ([]*store.Product, error)
	UpdateProduct(ctx context.Context, id string, req UpdateProductRequest) (*store.Product, error)
	DeleteProduct(ctx context.Context, id string) (bool, error)
}

type service struct{ repo Repository }

// NewService creates a new catalog service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) CreateProduct(ctx context.Context, req CreateProductRequest) (*store.Product, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if req.Price <= 0 {
		return nil, fmt.Errorf("price must be > 0")
	}
	if req.Stock < 0 {
		return nil, fmt.Errorf("stock must be >= 0")
	}
	category, err := parseCategory(req.Category)
	if err != nil {
		return nil, err
	}

	p := &store.Product{
		ID:            uuid.NewString(),
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		DiscountPrice: req.DiscountPrice,
		Category:      category,
		ImageURL:      req.ImageURL,
		Rating:        req.Rating,
		Featured:      req.Featured,
		Stock:         req.Stock,
		SKU:           req.SKU,
		Sold:          0,
		Specs:         req.Specs,
	}
	p.SyncStock()

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) GetProduct(ctx context.Context, id string) (*store.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListProducts(ctx context.Context, filter ListFilter) ([]*store.Product, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) UpdateProduct(ctx context.Context, id string, req UpdateProductRequest) (*store.Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Price != nil {
		if *req.Price <= 0 {
			return nil, fmt.Errorf("price must be > 0")
		}
		p.Price = *req.Price
	}
	if req.DiscountPrice != nil {
		p.DiscountPrice = req.DiscountPrice
	}
	if req.Category != nil {
		category, err := parseCategory(*req.Category)
		if err != nil {
			return nil, err
		}
		p.Category = category
	}
	if req.ImageURL != nil {
		p.ImageURL = *req.ImageURL
	}
	if req.Rating != nil {
		p.Rating = *req.Rating
	}
	if req.Featured != nil {
		p.Featured = *req.Featured
	}
	if req.Stock != nil {
		if *req.Stock < 0 {
			return nil, fmt.Errorf("stock must be >= 0")
		}
		p.Stock = *req.Stock
	}
	if req.SKU != nil {
		p.SKU = *req.SKU
	}
	if req.Specs != nil {
		p.Specs = req.Specs
	}
	p.SyncStock()

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) DeleteProduct(ctx context.Context, id string) (bool, error) {
	return s.repo.Delete(ctx, id)
}

func parseCategory(raw string) (store.ProductCategory, error) {
	c := store.ProductCategory(raw)
	switch c {
	case store.CategoryPanel, store.CategoryBattery, store.CategoryInverter, store.CategoryAccessory:
		return c, nil
	}
	return "", fmt.Errorf("invalid category %q", raw)
}
