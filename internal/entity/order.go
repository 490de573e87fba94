package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is an order as seen by the reporting engine, after normalization
// of the storefront's wire shapes.
type Order struct {
	ID        string
	CreatedAt time.Time
	Amount    decimal.Decimal
	Items     []OrderItem
}

// OrderItem is a single order line. Zero Quantity means the source did not
// provide one.
type OrderItem struct {
	ProductID   string
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
}

// EffectiveQuantity returns the line quantity, defaulting to 1 when absent.
func (oi OrderItem) EffectiveQuantity() int {
	if oi.Quantity <= 0 {
		return 1
	}
	return oi.Quantity
}

// Revenue returns unit price times effective quantity.
func (oi OrderItem) Revenue() decimal.Decimal {
	return oi.UnitPrice.Mul(decimal.NewFromInt(int64(oi.EffectiveQuantity())))
}
