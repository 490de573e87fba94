// Package analytics is the client of the primary reporting service.
package analytics

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/jekabolt/organic-reports/internal/dto"
	"github.com/jekabolt/organic-reports/internal/entity"
	"github.com/jekabolt/organic-reports/internal/metrics"
	"github.com/jekabolt/organic-reports/internal/source/rest"
)

type Config struct {
	BaseURL string        `mapstructure:"base_url"`
	Token   string        `mapstructure:"token"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// Enabled reports whether a primary source is configured at all.
func (c *Config) Enabled() bool {
	return c != nil && c.BaseURL != ""
}

type Client struct {
	cli *rest.Client
}

func New(c *Config) *Client {
	return &Client{cli: rest.New(c.BaseURL, c.Token, c.Timeout)}
}

func (c *Client) GetSalesReport(ctx context.Context, dr entity.DateRange) (*dto.SalesReportResponse, error) {
	var res dto.SalesReportResponse
	if err := c.cli.GetJSON(ctx, "/reports/sales", rangeParams(dr), &res); err != nil {
		return nil, fmt.Errorf("sales report: %w", err)
	}
	return &res, nil
}

func (c *Client) GetTopProducts(ctx context.Context, limit int) (*dto.TopProductsResponse, error) {
	var res dto.TopProductsResponse
	params := map[string]string{"limit": strconv.Itoa(limit)}
	if err := c.cli.GetJSON(ctx, "/reports/top-products", params, &res); err != nil {
		return nil, fmt.Errorf("top products: %w", err)
	}
	return &res, nil
}

func (c *Client) GetCustomerAnalytics(ctx context.Context) (*dto.CustomerAnalytics, error) {
	var res dto.CustomerAnalytics
	if err := c.cli.GetJSON(ctx, "/reports/customers", nil, &res); err != nil {
		return nil, fmt.Errorf("customer analytics: %w", err)
	}
	return &res, nil
}

func (c *Client) GetInventoryReport(ctx context.Context) (*dto.InventoryReportResponse, error) {
	var res dto.InventoryReportResponse
	if err := c.cli.GetJSON(ctx, "/reports/inventory", nil, &res); err != nil {
		return nil, fmt.Errorf("inventory report: %w", err)
	}
	return &res, nil
}

// DownloadReport returns the rendered report body untouched.
func (c *Client) DownloadReport(ctx context.Context, rt entity.ReportType, dr entity.DateRange) ([]byte, error) {
	params := rangeParams(dr)
	params["type"] = rt.String()
	body, err := c.cli.GetRaw(ctx, "/reports/download", params, "text/csv")
	if err != nil {
		return nil, fmt.Errorf("download report: %w", err)
	}
	return body, nil
}

func rangeParams(dr entity.DateRange) map[string]string {
	params := map[string]string{"period": dr.Period.String()}
	if !dr.From.IsZero() {
		params["dateFrom"] = dr.From.Format(metrics.DateLayout)
	}
	if !dr.To.IsZero() {
		params["dateTo"] = dr.To.Format(metrics.DateLayout)
	}
	return params
}
