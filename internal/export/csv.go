package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/jekabolt/organic-reports/internal/entity"
	gerr "github.com/jekabolt/organic-reports/internal/errors"
	"github.com/jekabolt/organic-reports/internal/metrics"
)

const (
	PerformanceAbove = "Above Average"
	PerformanceBelow = "Below Average"
)

var headers = map[entity.ReportType][]string{
	entity.ReportSales:     {"Date", "Revenue", "Orders", "Customers"},
	entity.ReportRevenue:   {"Date", "Revenue", "Average Revenue", "Performance"},
	entity.ReportProducts:  {"Product Name", "Sales", "Revenue"},
	entity.ReportInventory: {"Product Name", "Stock", "Status", "Category"},
}

// BuildCSV renders one report of the dataset. Output depends only on the
// dataset, so equal datasets render to identical bytes.
func BuildCSV(rt entity.ReportType, ds entity.ReportDataset) ([]byte, error) {
	header, ok := headers[rt]
	if !ok {
		return nil, fmt.Errorf("%w: %q", gerr.ErrUnknownReportType, rt)
	}

	var rows [][]string
	switch rt {
	case entity.ReportSales:
		rows = salesRows(ds.Sales)
	case entity.ReportRevenue:
		rows = revenueRows(ds.Sales)
	case entity.ReportProducts:
		rows = productRows(ds.TopProducts)
	case entity.ReportInventory:
		rows = inventoryRows(ds.Inventory)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("can't write header: %w", err)
	}
	if err := w.WriteAll(rows); err != nil {
		return nil, fmt.Errorf("can't write rows: %w", err)
	}
	return buf.Bytes(), nil
}

func salesRows(points []entity.DailySalesPoint) [][]string {
	rows := make([][]string, 0, len(points))
	for _, p := range points {
		rows = append(rows, []string{
			p.Label,
			p.Revenue.String(),
			strconv.Itoa(p.Orders),
			strconv.Itoa(p.Customers),
		})
	}
	return rows
}

// revenueRows compares each day against the series mean. A day equal to
// the mean is below average.
func revenueRows(points []entity.DailySalesPoint) [][]string {
	mean := metrics.MeanRevenue(points)
	avg := mean.Round(2).String()
	rows := make([][]string, 0, len(points))
	for _, p := range points {
		perf := PerformanceBelow
		if p.Revenue.GreaterThan(mean) {
			perf = PerformanceAbove
		}
		rows = append(rows, []string{p.Label, p.Revenue.String(), avg, perf})
	}
	return rows
}

func productRows(products []entity.ProductPerformance) [][]string {
	rows := make([][]string, 0, len(products))
	for _, p := range products {
		rows = append(rows, []string{p.Name, strconv.Itoa(p.UnitsSold), p.Revenue.String()})
	}
	return rows
}

func inventoryRows(items []entity.InventoryStatus) [][]string {
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		rows = append(rows, []string{it.Name, strconv.Itoa(it.Stock), it.Status.String(), it.Category})
	}
	return rows
}
