package dto

import (
	"github.com/jekabolt/organic-reports/internal/entity"
	"github.com/shopspring/decimal"
)

// Order is the storefront order as returned by GET /orders. The amount has
// been published under two names over time; TotalAmount wins when both are
// present.
type Order struct {
	ID          ID          `json:"id"`
	MongoID     ID          `json:"_id"`
	CreatedAt   *Time       `json:"createdAt"`
	Date        *Time       `json:"date"`
	TotalAmount Number      `json:"totalAmount"`
	Total       Number      `json:"total"`
	Items       []OrderItem `json:"items"`
}

type OrderItem struct {
	ProductID   ID     `json:"productId"`
	Product     ID     `json:"product"`
	Name        string `json:"name"`
	ProductName string `json:"productName"`
	Quantity    Int    `json:"quantity"`
	Price       Number `json:"price"`
}

type OrdersResponse struct {
	Orders []Order `json:"orders"`
}

// ConvertOrderToEntity normalizes a wire order. Missing or malformed amounts
// and prices become zero and quantity is left for entity defaults.
func ConvertOrderToEntity(o Order) entity.Order {
	eo := entity.Order{
		ID:     firstID(o.ID, o.MongoID),
		Amount: firstDecimal(o.TotalAmount, o.Total),
		Items:  make([]entity.OrderItem, 0, len(o.Items)),
	}
	switch {
	case o.CreatedAt != nil && !o.CreatedAt.IsZero():
		eo.CreatedAt = o.CreatedAt.Time
	case o.Date != nil:
		eo.CreatedAt = o.Date.Time
	}
	for _, it := range o.Items {
		ei := entity.OrderItem{
			ProductID:   firstID(it.ProductID, it.Product),
			ProductName: it.ProductName,
			UnitPrice:   firstDecimal(it.Price),
		}
		if ei.ProductName == "" {
			ei.ProductName = it.Name
		}
		if it.Quantity.Valid {
			ei.Quantity = it.Quantity.Value
		}
		eo.Items = append(eo.Items, ei)
	}
	return eo
}

func ConvertOrdersToEntity(orders []Order) []entity.Order {
	res := make([]entity.Order, 0, len(orders))
	for _, o := range orders {
		res = append(res, ConvertOrderToEntity(o))
	}
	return res
}

func firstDecimal(ns ...Number) decimal.Decimal {
	for _, n := range ns {
		if n.Valid {
			return n.Value
		}
	}
	return decimal.Zero
}
