package dependency

import (
	"context"
	"database/sql"

	"github.com/jekabolt/organic-reports/internal/dto"
	"github.com/jekabolt/organic-reports/internal/entity"
	"github.com/jmoiron/sqlx"
)

//go:generate mockery --with-expecter --case underscore --all --output=./mocks
type (
	// Analytics is the primary reporting source. Its responses are
	// authoritative and passed through untouched.
	Analytics interface {
		// GetSalesReport returns daily sales for the resolved range.
		GetSalesReport(ctx context.Context, dr entity.DateRange) (*dto.SalesReportResponse, error)
		// GetTopProducts returns at most limit best selling products.
		GetTopProducts(ctx context.Context, limit int) (*dto.TopProductsResponse, error)
		GetCustomerAnalytics(ctx context.Context) (*dto.CustomerAnalytics, error)
		GetInventoryReport(ctx context.Context) (*dto.InventoryReportResponse, error)
	}

	// ReportDownloader renders a report server-side.
	ReportDownloader interface {
		DownloadReport(ctx context.Context, rt entity.ReportType, dr entity.DateRange) ([]byte, error)
	}

	// Primary is the full surface of the analytics service.
	Primary interface {
		Analytics
		ReportDownloader
	}

	// RawSource exposes the raw storefront records the fallback pipeline
	// computes reports from.
	RawSource interface {
		GetOrders(ctx context.Context) ([]entity.Order, error)
		GetProducts(ctx context.Context, limit int) ([]entity.Product, error)
		GetUsers(ctx context.Context) ([]entity.User, error)
	}

	// ReportStore archives rendered reports.
	ReportStore interface {
		// PutReport stores body under key and returns the object URL.
		PutReport(ctx context.Context, key string, body []byte, contentType string) (string, error)
	}

	DB interface {
		ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)

		// sqlx methods
		GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
		QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
		QueryxContext(ctx context.Context, query string, args ...interface{}) (*sqlx.Rows, error)
		SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	}
)
