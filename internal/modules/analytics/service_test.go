package analytics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sunspire/solarmart-backend/internal/store"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	s, err := store.Open("")
	require.NoError(t, err)
	return NewService(NewMemoryRepository(s))
}

func TestSalesByMonth(t *testing.T) {
	svc := newTestService(t)

	points, err := svc.SalesByMonth(context.Background())
	require.NoError(t, err)

	// Two April orders collapse into one bucket; May keeps its own.
	require.Len(t, points, 2)
	assert.Equal(t, "Apr 2025", points[0].Date)
	assert.Equal(t, int64(259990+699999), points[0].Revenue)
	assert.Equal(t, "May 2025", points[1].Date)
	assert.Equal(t, int64(359984), points[1].Revenue)
}

func TestProductPerformance(t *testing.T) {
	svc := newTestService(t)

	perf, err := svc.ProductPerformance(context.Background())
	require.NoError(t, err)
	require.Len(t, perf, 5)

	byID := map[string]ProductPerformance{}
	for _, p := range perf {
		byID[p.ProductID] = p
	}

	// Discounted products are valued at the discount price.
	assert.Equal(t, int64(23*22999), byID["p1"].Revenue)
	// Undiscounted products at the list price.
	assert.Equal(t, int64(8*699999), byID["p2"].Revenue)
	assert.Equal(t, 32, byID["p4"].Sold)
}

func TestOrderStatistics(t *testing.T) {
	svc := newTestService(t)

	stats, err := svc.OrderStatistics(context.Background())
	require.NoError(t, err)
	require.Len(t, stats, len(store.OrderStatuses))

	byStatus := map[store.OrderStatus]int{}
	for i, sc := range stats {
		assert.Equal(t, store.OrderStatuses[i], sc.Status, "fixed display order")
		byStatus[sc.Status] = sc.Count
	}

	assert.Equal(t, 1, byStatus[store.OrderProcessing])
	assert.Equal(t, 1, byStatus[store.OrderShipped])
	assert.Equal(t, 1, byStatus[store.OrderDelivered])
	assert.Equal(t, 0, byStatus[store.OrderPending], "empty statuses still appear")
	assert.Equal(t, 0, byStatus[store.OrderCancelled])
}

func TestEnergyProduction(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	series, err := svc.EnergyProduction(ctx, "2")
	require.NoError(t, err)
	require.Len(t, series, 7)
	assert.Equal(t, "Jan", series[0].Date)
	assert.Equal(t, 130.0, series[0].Value)

	empty, err := svc.EnergyProduction(ctx, "1")
	require.NoError(t, err)
	assert.Empty(t, empty)
}
