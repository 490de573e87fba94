package metrics

import (
	"time"

	"github.com/jekabolt/organic-reports/internal/entity"
)

// Input is a frozen snapshot of the raw collections.
type Input struct {
	Orders   []entity.Order
	Products []entity.Product
	Users    []entity.User
}

// Options tunes Build. Zero values fall back to defaults.
type Options struct {
	TopProducts int
	Location    *time.Location
	Now         time.Time
}

// Build derives the full report dataset from raw collections. It is pure:
// identical input and Now give identical output.
func Build(in Input, opt Options) entity.ReportDataset {
	if opt.TopProducts <= 0 {
		opt.TopProducts = DefaultTopProducts
	}
	if opt.Location == nil {
		opt.Location = time.UTC
	}
	if opt.Now.IsZero() {
		opt.Now = time.Now()
	}
	return entity.ReportDataset{
		Sales:       AggregateDaily(in.Orders, opt.Location),
		TopProducts: RankProducts(in.Orders, in.Products, opt.TopProducts),
		Customers:   SynthesizeCustomers(in.Users, opt.Now),
		Inventory:   ClassifyInventory(in.Products),
	}
}
