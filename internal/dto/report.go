package dto

import "github.com/jekabolt/organic-reports/internal/entity"

// ReportDataset is the JSON body of GET /api/reports.
type ReportDataset struct {
	LiveData    bool              `json:"liveData"`
	Outcome     string            `json:"outcome"`
	Period      string            `json:"period"`
	DateFrom    string            `json:"dateFrom,omitempty"`
	DateTo      string            `json:"dateTo,omitempty"`
	Sales       []SalesPoint      `json:"sales"`
	TopProducts []TopProduct      `json:"topProducts"`
	Customers   CustomerAnalytics `json:"customers"`
	Inventory   []InventoryItem   `json:"inventory"`
}

func ConvertEntityDatasetToJSON(ds entity.ReportDataset, dr entity.DateRange, liveData bool, outcome string) ReportDataset {
	res := ReportDataset{
		LiveData:    liveData,
		Outcome:     outcome,
		Period:      dr.Period.String(),
		Sales:       make([]SalesPoint, 0, len(ds.Sales)),
		TopProducts: make([]TopProduct, 0, len(ds.TopProducts)),
		Customers:   ConvertEntityCustomerAnalytics(ds.Customers),
		Inventory:   make([]InventoryItem, 0, len(ds.Inventory)),
	}
	if !dr.From.IsZero() {
		res.DateFrom = dr.From.Format("2006-01-02")
	}
	if !dr.To.IsZero() {
		res.DateTo = dr.To.Format("2006-01-02")
	}
	for _, p := range ds.Sales {
		res.Sales = append(res.Sales, SalesPoint{
			Date:      p.Label,
			Revenue:   p.Revenue,
			Orders:    p.Orders,
			Customers: p.Customers,
		})
	}
	for _, p := range ds.TopProducts {
		res.TopProducts = append(res.TopProducts, TopProduct{
			ID:      ID(p.ProductID),
			Name:    p.Name,
			Sales:   p.UnitsSold,
			Revenue: p.Revenue,
		})
	}
	for _, it := range ds.Inventory {
		res.Inventory = append(res.Inventory, InventoryItem{
			ID:       ID(it.ProductID),
			Name:     it.Name,
			Stock:    it.Stock,
			Status:   it.Status.String(),
			Category: Category(it.Category),
		})
	}
	return res
}
