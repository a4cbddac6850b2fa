package analytics

import (
	"context"

	"github.com/sunspire/solarmart-backend/internal/store"
)

// Service exposes the admin dashboard's derived reads. Nothing here owns
// state; every call recomputes from the current collections.
type Service interface {
	// SalesByMonth groups order revenue by the month the order was
	// created, in first-order-seen order.
	SalesByMonth(ctx context.Context) ([]SalesPoint, error)

	// ProductPerformance values every product's lifetime sold count at
	// its current effective price.
	ProductPerformance(ctx context.Context) ([]ProductPerformance, error)

	// OrderStatistics counts orders per status, including zero counts,
	// in fixed display order.
	OrderStatistics(ctx context.Context) ([]StatusCount, error)

	// EnergyProduction returns a user's monthly production series.
	EnergyProduction(ctx context.Context, userID string) ([]store.EnergyReading, error)
}

type service struct{ repo Repository }

// NewService creates a new analytics service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) SalesByMonth(ctx context.Context) ([]SalesPoint, error) {
	orders, err := s.repo.Orders(ctx)
	if err != nil {
		return nil, err
	}
	totals := map[string]int64{}
	var labels []string
	for _, o := range orders {
		label := o.CreatedAt.Format("Jan 2006")
		if _, seen := totals[label]; !seen {
			labels = append(labels, label)
		}
		totals[label] += o.TotalAmount
	}
	points := make([]SalesPoint, 0, len(labels))
	for _, label := range labels {
		points = append(points, SalesPoint{Date: label, Revenue: totals[label]})
	}
	return points, nil
}

func (s *service) ProductPerformance(ctx context.Context) ([]ProductPerformance, error) {
	products, err := s.repo.Products(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ProductPerformance, 0, len(products))
	for _, p := range products {
		out = append(out, ProductPerformance{
			ProductID: p.ID,
			Name:      p.Name,
			Sold:      p.Sold,
			Revenue:   int64(p.Sold) * p.EffectivePrice(),
		})
	}
	return out, nil
}

func (s *service) OrderStatistics(ctx context.Context) ([]StatusCount, error) {
	orders, err := s.repo.Orders(ctx)
	if err != nil {
		return nil, err
	}
	counts := map[store.OrderStatus]int{}
	for _, o := range orders {
		counts[o.Status]++
	}
	out := make([]StatusCount, 0, len(store.OrderStatuses))
	for _, status := range store.OrderStatuses {
		out = append(out, StatusCount{Status: status, Count: counts[status]})
	}
	return out, nil
}

func (s *service) EnergyProduction(ctx context.Context, userID string) ([]store.EnergyReading, error) {
	return s.repo.EnergySeries(ctx, userID)
}
