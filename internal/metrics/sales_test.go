package metrics

import (
	"testing"
	"time"

	"github.com/jekabolt/organic-reports/internal/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func order(id string, at time.Time, amount int64) entity.Order {
	return entity.Order{ID: id, CreatedAt: at, Amount: decimal.NewFromInt(amount)}
}

func TestAggregateDaily(t *testing.T) {
	orders := []entity.Order{
		order("3", time.Date(2024, 1, 16, 9, 0, 0, 0, time.UTC), 30),
		order("1", time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC), 100),
		order("2", time.Date(2024, 1, 15, 22, 30, 0, 0, time.UTC), 50),
	}

	points := AggregateDaily(orders, time.UTC)
	require.Len(t, points, 2)

	assert.Equal(t, "2024-01-15", points[0].Label)
	assert.True(t, decimal.NewFromInt(150).Equal(points[0].Revenue))
	assert.Equal(t, 2, points[0].Orders)
	assert.Equal(t, 2, points[0].Customers)

	assert.Equal(t, "2024-01-16", points[1].Label)
	assert.True(t, decimal.NewFromInt(30).Equal(points[1].Revenue))
	assert.Equal(t, 1, points[1].Orders)
	assert.Equal(t, 1, points[1].Customers)
}

func TestAggregateDaily_Location(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	// 22:30 UTC is already the next day at UTC+3
	orders := []entity.Order{
		order("1", time.Date(2024, 1, 15, 22, 30, 0, 0, time.UTC), 10),
		order("2", time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC), 10),
	}
	points := AggregateDaily(orders, loc)
	require.Len(t, points, 2)
	assert.Equal(t, "2024-01-15", points[0].Label)
	assert.Equal(t, "2024-01-16", points[1].Label)
}

func TestAggregateDaily_KeepsMostRecentBuckets(t *testing.T) {
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	var orders []entity.Order
	for i := 0; i < 45; i++ {
		orders = append(orders, order("o", start.AddDate(0, 0, i), int64(i)))
	}

	points := AggregateDaily(orders, time.UTC)
	require.Len(t, points, MaxSalesBuckets)
	assert.Equal(t, start.AddDate(0, 0, 15).Format(DateLayout), points[0].Label)
	assert.Equal(t, start.AddDate(0, 0, 44).Format(DateLayout), points[len(points)-1].Label)
	for i := 1; i < len(points); i++ {
		assert.True(t, points[i-1].Date.Before(points[i].Date))
	}
}

func TestAggregateDaily_OrderCountIsPreserved(t *testing.T) {
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	var orders []entity.Order
	for i := 0; i < 100; i++ {
		orders = append(orders, order("o", start.Add(time.Duration(i)*7*time.Hour), 1))
	}

	total := 0
	for _, p := range AggregateDaily(orders, time.UTC) {
		total += p.Orders
	}
	assert.Equal(t, len(orders), total)
}

func TestAggregateDaily_Empty(t *testing.T) {
	points := AggregateDaily(nil, nil)
	assert.NotNil(t, points)
	assert.Empty(t, points)
}

func TestMeanRevenue(t *testing.T) {
	assert.True(t, decimal.Zero.Equal(MeanRevenue(nil)))

	points := []entity.DailySalesPoint{
		{Revenue: decimal.NewFromInt(100)},
		{Revenue: decimal.NewFromInt(200)},
		{Revenue: decimal.NewFromInt(300)},
	}
	assert.True(t, decimal.NewFromInt(200).Equal(MeanRevenue(points)))
}
