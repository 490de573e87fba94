package metrics

import (
	"sort"
	"time"

	"github.com/jekabolt/organic-reports/internal/entity"
	"github.com/shopspring/decimal"
)

// MaxSalesBuckets is how many of the most recent days AggregateDaily keeps.
const MaxSalesBuckets = 30

// AggregateDaily buckets orders by calendar day in loc and returns the most
// recent MaxSalesBuckets days in chronological order. Every order counts as
// one customer; customers are not deduplicated.
func AggregateDaily(orders []entity.Order, loc *time.Location) []entity.DailySalesPoint {
	if loc == nil {
		loc = time.UTC
	}
	buckets := make(map[string]*entity.DailySalesPoint)
	for _, o := range orders {
		day := Day(o.CreatedAt.In(loc))
		key := day.Format(DateLayout)
		p, ok := buckets[key]
		if !ok {
			p = &entity.DailySalesPoint{
				Date:    day,
				Label:   key,
				Revenue: decimal.Zero,
			}
			buckets[key] = p
		}
		p.Revenue = p.Revenue.Add(o.Amount)
		p.Orders++
		p.Customers++
	}

	points := make([]entity.DailySalesPoint, 0, len(buckets))
	for _, p := range buckets {
		points = append(points, *p)
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})
	if len(points) > MaxSalesBuckets {
		points = points[len(points)-MaxSalesBuckets:]
	}
	return points
}

// MeanRevenue returns the average daily revenue of the series, or zero for
// an empty series.
func MeanRevenue(points []entity.DailySalesPoint) decimal.Decimal {
	if len(points) == 0 {
		return decimal.Zero
	}
	sum := decimal.Zero
	for _, p := range points {
		sum = sum.Add(p.Revenue)
	}
	return sum.Div(decimal.NewFromInt(int64(len(points))))
}
