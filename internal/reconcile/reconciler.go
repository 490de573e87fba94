// Package reconcile decides where report data comes from. The primary
// analytics source wins when every call succeeds; otherwise the dataset is
// rebuilt from raw storefront collections.
package reconcile

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jekabolt/organic-reports/internal/dependency"
	"github.com/jekabolt/organic-reports/internal/dto"
	"github.com/jekabolt/organic-reports/internal/entity"
	gerr "github.com/jekabolt/organic-reports/internal/errors"
	"github.com/jekabolt/organic-reports/internal/metrics"
	"golang.org/x/sync/errgroup"
)

// Outcome tags where a dataset came from.
type Outcome string

const (
	OutcomeLive     Outcome = "live"
	OutcomeDegraded Outcome = "degraded"
	OutcomeFailed   Outcome = "failed"
)

func (o Outcome) String() string {
	return string(o)
}

type Config struct {
	Timeout       time.Duration `mapstructure:"timeout"`
	TopProducts   int           `mapstructure:"top_products"`
	ProductsLimit int           `mapstructure:"products_limit"`
}

func DefaultConfig() Config {
	return Config{
		Timeout:       10 * time.Second,
		TopProducts:   metrics.DefaultTopProducts,
		ProductsLimit: 1000,
	}
}

// Result is the outcome of one reconciliation. Dataset is always usable.
type Result struct {
	Outcome Outcome
	Dataset entity.ReportDataset
	Cause   error
	RunID   string
}

// LiveData reports whether the dataset came from the primary source.
func (r Result) LiveData() bool {
	return r.Outcome == OutcomeLive
}

type Reconciler struct {
	primary dependency.Analytics
	raw     dependency.RawSource
	c       *Config
	loc     *time.Location
	now     func() time.Time
}

// New creates a reconciler. primary may be nil, in which case every
// reconciliation goes straight to the raw source.
func New(primary dependency.Analytics, raw dependency.RawSource, c *Config, loc *time.Location) *Reconciler {
	if c == nil {
		dc := DefaultConfig()
		c = &dc
	}
	if c.Timeout <= 0 {
		c.Timeout = 10 * time.Second
	}
	if c.TopProducts <= 0 {
		c.TopProducts = metrics.DefaultTopProducts
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Reconciler{
		primary: primary,
		raw:     raw,
		c:       c,
		loc:     loc,
		now:     time.Now,
	}
}

// Reconcile never fails: a broken primary degrades to the raw source and a
// broken raw source degrades to an empty dataset.
func (r *Reconciler) Reconcile(ctx context.Context, dr entity.DateRange) Result {
	res := Result{RunID: uuid.New().String()}
	log := slog.Default().With(slog.String("run_id", res.RunID), slog.String("period", dr.Period.String()))

	if r.primary != nil {
		ds, err := r.fetchPrimary(ctx, dr)
		if err == nil {
			res.Outcome = OutcomeLive
			res.Dataset = ds
			return res
		}
		res.Cause = fmt.Errorf("%w: %w", gerr.ErrSourceUnavailable, err)
		log.WarnContext(ctx, "primary analytics unavailable, using fallback",
			slog.String("err", err.Error()),
		)
	}

	ds, err := r.fetchFallback(ctx)
	if err != nil {
		res.Outcome = OutcomeFailed
		res.Dataset = entity.EmptyDataset()
		res.Cause = fmt.Errorf("%w: %w", gerr.ErrFallbackUnavailable, err)
		log.ErrorContext(ctx, "fallback data source unavailable",
			slog.String("err", err.Error()),
		)
		return res
	}
	res.Outcome = OutcomeDegraded
	res.Dataset = ds
	return res
}

func (r *Reconciler) fetchPrimary(ctx context.Context, dr entity.DateRange) (entity.ReportDataset, error) {
	ctx, cancel := context.WithTimeout(ctx, r.c.Timeout)
	defer cancel()

	var (
		sales     *dto.SalesReportResponse
		top       *dto.TopProductsResponse
		customers *dto.CustomerAnalytics
		inventory *dto.InventoryReportResponse
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		sales, err = r.primary.GetSalesReport(ctx, dr)
		if err != nil {
			return fmt.Errorf("get sales report: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		top, err = r.primary.GetTopProducts(ctx, r.c.TopProducts)
		if err != nil {
			return fmt.Errorf("get top products: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		customers, err = r.primary.GetCustomerAnalytics(ctx)
		if err != nil {
			return fmt.Errorf("get customer analytics: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		inventory, err = r.primary.GetInventoryReport(ctx)
		if err != nil {
			return fmt.Errorf("get inventory report: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return entity.ReportDataset{}, err
	}

	return entity.ReportDataset{
		Sales:       dto.ConvertSalesReportToEntity(sales),
		TopProducts: dto.ConvertTopProductsToEntity(top),
		Customers:   dto.ConvertCustomerAnalyticsToEntity(customers),
		Inventory:   dto.ConvertInventoryReportToEntity(inventory),
	}, nil
}

func (r *Reconciler) fetchFallback(ctx context.Context) (entity.ReportDataset, error) {
	if r.raw == nil {
		return entity.ReportDataset{}, fmt.Errorf("no raw source configured")
	}

	var in metrics.Input
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		in.Orders, err = r.raw.GetOrders(ctx)
		if err != nil {
			return fmt.Errorf("get orders: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		in.Products, err = r.raw.GetProducts(ctx, r.c.ProductsLimit)
		if err != nil {
			return fmt.Errorf("get products: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		in.Users, err = r.raw.GetUsers(ctx)
		if err != nil {
			return fmt.Errorf("get users: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return entity.ReportDataset{}, err
	}

	return metrics.Build(in, metrics.Options{
		TopProducts: r.c.TopProducts,
		Location:    r.loc,
		Now:         r.now(),
	}), nil
}
