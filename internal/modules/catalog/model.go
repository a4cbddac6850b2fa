package catalog

import "github.com/sunspire/solarmart-backend/internal/store"

// CreateProductRequest holds the data for adding a product to the catalog.
type CreateProductRequest struct {
	Name          string            `json:"name"`
	Description   string            `json:"description"`
	Price         int64             `json:"price"`
	DiscountPrice *int64            `json:"discount_price,omitempty"`
	Category      string            `json:"category"`
	ImageURL      string            `json:"image_url,omitempty"`
	Rating        float64           `json:"rating,omitempty"`
	Featured      bool              `json:"featured,omitempty"`
	Stock         int               `json:"stock"`
	SKU           string            `json:"sku"`
	Specs         map[string]string `json:"specs,omitempty"`
}

// UpdateProductRequest is a partial update; nil fields are left untouched.
type UpdateProductRequest struct {
	Name          *string           `json:"name,omitempty"`
	Description   *string           `json:"description,omitempty"`
	Price         *int64            `json:"price,omitempty"`
	DiscountPrice *int64            `json:"discount_price,omitempty"`
	Category      *string           `json:"category,omitempty"`
	ImageURL      *string           `json:"image_url,omitempty"`
	Rating        *float64          `json:"rating,omitempty"`
	Featured      *bool             `json:"featured,omitempty"`
	Stock         *int              `json:"stock,omitempty"`
	SKU           *string           `json:"sku,omitempty"`
	Specs         map[string]string `json:"specs,omitempty"`
}

// ListFilter narrows ListProducts results. Zero values mean no filtering.
type ListFilter struct {
	Category store.ProductCategory
	Featured *bool
}
