package entity

// UnknownCategory is used when a product carries no category.
const UnknownCategory = "Unknown"

// Product is a catalog entry. Category is always a plain name here,
// regardless of how the source encoded it.
type Product struct {
	ID       string
	Name     string
	Stock    int
	Category string
}

type StockStatus string

const (
	StockGood StockStatus = "good"
	StockLow  StockStatus = "low"
	StockOut  StockStatus = "out"
)

func (s StockStatus) String() string {
	return string(s)
}

// InventoryStatus is the classified stock level of a product.
type InventoryStatus struct {
	ProductID string
	Name      string
	Stock     int
	Status    StockStatus
	Category  string
}
