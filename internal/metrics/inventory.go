package metrics

import "github.com/jekabolt/organic-reports/internal/entity"

// LowStockThreshold is the highest stock still reported as low.
const LowStockThreshold = 10

// StockStatusFor classifies a stock level.
func StockStatusFor(stock int) entity.StockStatus {
	switch {
	case stock > LowStockThreshold:
		return entity.StockGood
	case stock > 0:
		return entity.StockLow
	default:
		return entity.StockOut
	}
}

// ClassifyInventory returns one status record per product in input order.
func ClassifyInventory(products []entity.Product) []entity.InventoryStatus {
	res := make([]entity.InventoryStatus, 0, len(products))
	for _, p := range products {
		category := p.Category
		if category == "" {
			category = entity.UnknownCategory
		}
		res = append(res, entity.InventoryStatus{
			ProductID: p.ID,
			Name:      p.Name,
			Stock:     p.Stock,
			Status:    StockStatusFor(p.Stock),
			Category:  category,
		})
	}
	return res
}
