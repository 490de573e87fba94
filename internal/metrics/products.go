package metrics

import (
	"sort"

	"github.com/jekabolt/organic-reports/internal/entity"
	"github.com/shopspring/decimal"
)

const (
	// UnknownProductName is used when neither the catalog nor the order line
	// names the product.
	UnknownProductName = "Unknown product"
	// DefaultTopProducts is the ranking size used by the fallback path.
	DefaultTopProducts = 10
)

// RankProducts accumulates units and revenue per product over all order
// lines and returns the top limit products by revenue. Equal revenues keep
// first-seen order.
func RankProducts(orders []entity.Order, products []entity.Product, limit int) []entity.ProductPerformance {
	if limit <= 0 {
		return []entity.ProductPerformance{}
	}
	catalog := make(map[string]string, len(products))
	for _, p := range products {
		catalog[p.ID] = p.Name
	}

	var ranked []*entity.ProductPerformance
	byID := make(map[string]*entity.ProductPerformance)
	for _, o := range orders {
		for _, item := range o.Items {
			pp, ok := byID[item.ProductID]
			if !ok {
				pp = &entity.ProductPerformance{
					ProductID: item.ProductID,
					Name:      productName(item, catalog),
					Revenue:   decimal.Zero,
				}
				byID[item.ProductID] = pp
				ranked = append(ranked, pp)
			}
			pp.UnitsSold += item.EffectiveQuantity()
			pp.Revenue = pp.Revenue.Add(item.Revenue())
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Revenue.GreaterThan(ranked[j].Revenue)
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	res := make([]entity.ProductPerformance, 0, len(ranked))
	for _, pp := range ranked {
		res = append(res, *pp)
	}
	return res
}

func productName(item entity.OrderItem, catalog map[string]string) string {
	if name, ok := catalog[item.ProductID]; ok && name != "" {
		return name
	}
	if item.ProductName != "" {
		return item.ProductName
	}
	return UnknownProductName
}
