package dto

import (
	"github.com/jekabolt/organic-reports/internal/entity"
	"github.com/shopspring/decimal"
)

// Responses of the primary analytics source. They are taken as is; no
// recomputation happens on the live path.

type SalesPoint struct {
	Date      string          `json:"date"`
	Revenue   decimal.Decimal `json:"revenue"`
	Orders    int             `json:"orders"`
	Customers int             `json:"customers"`
}

type SalesReportResponse struct {
	Sales []SalesPoint `json:"sales"`
}

type TopProduct struct {
	ID      ID              `json:"id"`
	Name    string          `json:"name"`
	Sales   int             `json:"sales"`
	Revenue decimal.Decimal `json:"revenue"`
}

type TopProductsResponse struct {
	Products []TopProduct `json:"products"`
}

type InventoryItem struct {
	ID       ID       `json:"id"`
	Name     string   `json:"name"`
	Stock    int      `json:"stock"`
	Status   string   `json:"status"`
	Category Category `json:"category"`
}

type InventoryReportResponse struct {
	Inventory []InventoryItem `json:"inventory"`
}

type CustomerSegment struct {
	Name       string          `json:"name"`
	Count      int             `json:"count"`
	Percentage decimal.Decimal `json:"percentage"`
}

type Share struct {
	Label      string          `json:"label"`
	Percentage decimal.Decimal `json:"percentage"`
}

type Demographics struct {
	AgeGroups []Share `json:"ageGroups"`
	Regions   []Share `json:"regions"`
}

type ViewedProduct struct {
	Name  string `json:"name"`
	Views int    `json:"views"`
}

type NavigationPath struct {
	Path  string `json:"path"`
	Count int    `json:"count"`
}

type Preference struct {
	Group    string `json:"group"`
	Category string `json:"category"`
}

type CustomerAnalytics struct {
	TotalCustomers     int               `json:"totalCustomers"`
	ActiveCustomers    int               `json:"activeCustomers"`
	NewCustomers       int               `json:"newCustomers"`
	CustomerGrowth     decimal.Decimal   `json:"customerGrowth"`
	Segments           []CustomerSegment `json:"segments"`
	Demographics       Demographics      `json:"demographics"`
	MostViewedProducts []ViewedProduct   `json:"mostViewedProducts"`
	NavigationPaths    []NavigationPath  `json:"navigationPaths"`
	AgePreferences     []Preference      `json:"agePreferences"`
	RegionPreferences  []Preference      `json:"regionPreferences"`
	Illustrative       bool              `json:"illustrative"`
}

func ConvertSalesReportToEntity(r *SalesReportResponse) []entity.DailySalesPoint {
	res := make([]entity.DailySalesPoint, 0)
	if r == nil {
		return res
	}
	for _, p := range r.Sales {
		sp := entity.DailySalesPoint{
			Label:     p.Date,
			Revenue:   p.Revenue,
			Orders:    p.Orders,
			Customers: p.Customers,
		}
		if t, ok := parseTime(p.Date); ok {
			sp.Date = t
		}
		res = append(res, sp)
	}
	return res
}

func ConvertTopProductsToEntity(r *TopProductsResponse) []entity.ProductPerformance {
	res := make([]entity.ProductPerformance, 0)
	if r == nil {
		return res
	}
	for _, p := range r.Products {
		res = append(res, entity.ProductPerformance{
			ProductID: string(p.ID),
			Name:      p.Name,
			UnitsSold: p.Sales,
			Revenue:   p.Revenue,
		})
	}
	return res
}

func ConvertInventoryReportToEntity(r *InventoryReportResponse) []entity.InventoryStatus {
	res := make([]entity.InventoryStatus, 0)
	if r == nil {
		return res
	}
	for _, it := range r.Inventory {
		res = append(res, entity.InventoryStatus{
			ProductID: string(it.ID),
			Name:      it.Name,
			Stock:     it.Stock,
			Status:    entity.StockStatus(it.Status),
			Category:  string(it.Category),
		})
	}
	return res
}

func ConvertCustomerAnalyticsToEntity(c *CustomerAnalytics) entity.CustomerAnalytics {
	if c == nil {
		return entity.EmptyDataset().Customers
	}
	ca := entity.CustomerAnalytics{
		TotalCustomers:  c.TotalCustomers,
		ActiveCustomers: c.ActiveCustomers,
		NewCustomers:    c.NewCustomers,
		GrowthRate:      c.CustomerGrowth,
		Illustrative:    c.Illustrative,
		Demographics: entity.Demographics{
			AgeGroups: sharesToEntity(c.Demographics.AgeGroups),
			Regions:   sharesToEntity(c.Demographics.Regions),
		},
		Segments:           make([]entity.CustomerSegment, 0, len(c.Segments)),
		MostViewedProducts: make([]entity.ViewedProduct, 0, len(c.MostViewedProducts)),
		NavigationPaths:    make([]entity.NavigationPath, 0, len(c.NavigationPaths)),
		AgePreferences:     preferencesToEntity(c.AgePreferences),
		RegionPreferences:  preferencesToEntity(c.RegionPreferences),
	}
	for _, s := range c.Segments {
		ca.Segments = append(ca.Segments, entity.CustomerSegment{Name: s.Name, Count: s.Count, Percentage: s.Percentage})
	}
	for _, v := range c.MostViewedProducts {
		ca.MostViewedProducts = append(ca.MostViewedProducts, entity.ViewedProduct{Name: v.Name, Views: v.Views})
	}
	for _, n := range c.NavigationPaths {
		ca.NavigationPaths = append(ca.NavigationPaths, entity.NavigationPath{Path: n.Path, Count: n.Count})
	}
	return ca
}

func ConvertEntityCustomerAnalytics(ca entity.CustomerAnalytics) CustomerAnalytics {
	c := CustomerAnalytics{
		TotalCustomers:  ca.TotalCustomers,
		ActiveCustomers: ca.ActiveCustomers,
		NewCustomers:    ca.NewCustomers,
		CustomerGrowth:  ca.GrowthRate,
		Illustrative:    ca.Illustrative,
		Demographics: Demographics{
			AgeGroups: sharesFromEntity(ca.Demographics.AgeGroups),
			Regions:   sharesFromEntity(ca.Demographics.Regions),
		},
		Segments:           make([]CustomerSegment, 0, len(ca.Segments)),
		MostViewedProducts: make([]ViewedProduct, 0, len(ca.MostViewedProducts)),
		NavigationPaths:    make([]NavigationPath, 0, len(ca.NavigationPaths)),
		AgePreferences:     make([]Preference, 0, len(ca.AgePreferences)),
		RegionPreferences:  make([]Preference, 0, len(ca.RegionPreferences)),
	}
	for _, s := range ca.Segments {
		c.Segments = append(c.Segments, CustomerSegment{Name: s.Name, Count: s.Count, Percentage: s.Percentage})
	}
	for _, v := range ca.MostViewedProducts {
		c.MostViewedProducts = append(c.MostViewedProducts, ViewedProduct{Name: v.Name, Views: v.Views})
	}
	for _, n := range ca.NavigationPaths {
		c.NavigationPaths = append(c.NavigationPaths, NavigationPath{Path: n.Path, Count: n.Count})
	}
	for _, p := range ca.AgePreferences {
		c.AgePreferences = append(c.AgePreferences, Preference{Group: p.Group, Category: p.Category})
	}
	for _, p := range ca.RegionPreferences {
		c.RegionPreferences = append(c.RegionPreferences, Preference{Group: p.Group, Category: p.Category})
	}
	return c
}

func sharesToEntity(ss []Share) []entity.Share {
	res := make([]entity.Share, 0, len(ss))
	for _, s := range ss {
		res = append(res, entity.Share{Label: s.Label, Percentage: s.Percentage})
	}
	return res
}

func sharesFromEntity(ss []entity.Share) []Share {
	res := make([]Share, 0, len(ss))
	for _, s := range ss {
		res = append(res, Share{Label: s.Label, Percentage: s.Percentage})
	}
	return res
}

func preferencesToEntity(ps []Preference) []entity.Preference {
	res := make([]entity.Preference, 0, len(ps))
	for _, p := range ps {
		res = append(res, entity.Preference{Group: p.Group, Category: p.Category})
	}
	return res
}
