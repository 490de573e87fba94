package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Period is a named reporting window.
type Period string

const (
	Period7Days  Period = "7days"
	Period30Days Period = "30days"
	Period90Days Period = "90days"
	PeriodCustom Period = "custom"
)

func (p Period) String() string {
	return string(p)
}

// DateRange is an inclusive day range. Only the date part of From and To is
// meaningful.
type DateRange struct {
	Period Period
	From   time.Time
	To     time.Time
}

// ReportType selects which tabular report is exported.
type ReportType string

const (
	ReportSales     ReportType = "sales"
	ReportRevenue   ReportType = "revenue"
	ReportProducts  ReportType = "products"
	ReportInventory ReportType = "inventory"
)

var ReportTypes = []ReportType{ReportSales, ReportRevenue, ReportProducts, ReportInventory}

func (rt ReportType) String() string {
	return string(rt)
}

func (rt ReportType) Valid() bool {
	for _, t := range ReportTypes {
		if t == rt {
			return true
		}
	}
	return false
}

// DailySalesPoint is one day bucket of the sales series.
type DailySalesPoint struct {
	Date      time.Time
	Label     string
	Revenue   decimal.Decimal
	Orders    int
	Customers int
}

// ProductPerformance is the accumulated sales of one product.
type ProductPerformance struct {
	ProductID string
	Name      string
	UnitsSold int
	Revenue   decimal.Decimal
}

// ReportDataset is everything the reports screen renders.
type ReportDataset struct {
	Sales       []DailySalesPoint
	TopProducts []ProductPerformance
	Customers   CustomerAnalytics
	Inventory   []InventoryStatus
}

// EmptyDataset returns a dataset with empty, non-nil collections.
func EmptyDataset() ReportDataset {
	return ReportDataset{
		Sales:       []DailySalesPoint{},
		TopProducts: []ProductPerformance{},
		Inventory:   []InventoryStatus{},
		Customers: CustomerAnalytics{
			Segments:           []CustomerSegment{},
			MostViewedProducts: []ViewedProduct{},
			NavigationPaths:    []NavigationPath{},
			AgePreferences:     []Preference{},
			RegionPreferences:  []Preference{},
			Demographics: Demographics{
				AgeGroups: []Share{},
				Regions:   []Share{},
			},
		},
	}
}
