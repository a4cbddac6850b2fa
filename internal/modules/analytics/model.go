package analytics

import "github.com/sunspire/solarmart-backend/internal/store"

// SalesPoint is one month's revenue across all orders.
type SalesPoint struct {
	Date    string `json:"date"`
	Revenue int64  `json:"revenue"`
}

// ProductPerformance is the lifetime sales picture for one product,
// valued at its current effective price.
type ProductPerformance struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Sold      int    `json:"sold"`
	Revenue   int64  `json:"revenue"`
}

// StatusCount is the number of orders in one lifecycle status.
type StatusCount struct {
	Status store.OrderStatus `json:"status"`
	Count  int               `json:"count"`
}
