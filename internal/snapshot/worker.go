// Package snapshot periodically archives every report to object storage.
package snapshot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path"
	"time"

	"github.com/jekabolt/organic-reports/internal/dependency"
	"github.com/jekabolt/organic-reports/internal/entity"
	gerr "github.com/jekabolt/organic-reports/internal/errors"
	"github.com/jekabolt/organic-reports/internal/export"
	"github.com/jekabolt/organic-reports/internal/metrics"
	"github.com/jekabolt/organic-reports/internal/reconcile"
)

type Reconciler interface {
	Reconcile(ctx context.Context, dr entity.DateRange) reconcile.Result
}

type Exporter interface {
	Export(ctx context.Context, rt entity.ReportType, ds entity.ReportDataset, dr entity.DateRange, liveData bool) (*export.Artifact, error)
}

// Config holds configuration for the snapshot worker.
type Config struct {
	Enabled        bool          `mapstructure:"enabled"`
	WorkerInterval time.Duration `mapstructure:"worker_interval"`
	Period         string        `mapstructure:"period"`
}

// DefaultConfig returns default configuration values.
func DefaultConfig() Config {
	return Config{
		Enabled:        false,
		WorkerInterval: 24 * time.Hour,
		Period:         entity.Period30Days.String(),
	}
}

// Worker periodically reconciles the configured period and uploads every
// report type to the archive.
type Worker struct {
	rec     Reconciler
	exp     Exporter
	archive dependency.ReportStore
	c       *Config
	loc     *time.Location
	now     func() time.Time
	ctx     context.Context
	stop    context.CancelFunc
}

// New creates a new snapshot worker.
func New(rec Reconciler, exp Exporter, archive dependency.ReportStore, c *Config, loc *time.Location) *Worker {
	if c == nil {
		dc := DefaultConfig()
		c = &dc
	}
	if c.WorkerInterval <= 0 {
		c.WorkerInterval = 24 * time.Hour
	}
	if c.Period == "" {
		c.Period = entity.Period30Days.String()
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Worker{
		rec:     rec,
		exp:     exp,
		archive: archive,
		c:       c,
		loc:     loc,
		now:     time.Now,
	}
}

// Start starts the worker.
func (w *Worker) Start(ctx context.Context) error {
	if w.ctx != nil && w.stop != nil {
		return fmt.Errorf("snapshot worker already started")
	}
	if _, err := w.period(); err != nil {
		return fmt.Errorf("snapshot worker: %w", err)
	}
	w.ctx, w.stop = context.WithCancel(ctx)
	go w.worker(w.ctx)
	return nil
}

// Stop stops the worker gracefully.
func (w *Worker) Stop() error {
	if w.stop == nil {
		return fmt.Errorf("snapshot worker already stopped or not started")
	}
	w.stop()
	w.stop = nil
	return nil
}

func (w *Worker) worker(ctx context.Context) {
	w.run(ctx)

	ticker := time.NewTicker(w.c.WorkerInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.run(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (w *Worker) run(ctx context.Context) {
	urls, err := w.SnapshotAll(ctx)
	if err != nil {
		slog.Default().ErrorContext(ctx, "report snapshot failed",
			slog.String("err", err.Error()))
		return
	}
	slog.Default().InfoContext(ctx, "report snapshot uploaded",
		slog.Int("count", len(urls)))
}

// SnapshotAll renders every report type once and uploads it under
// {date}/{run id}/{filename}. A failing report does not stop the others.
func (w *Worker) SnapshotAll(ctx context.Context) ([]string, error) {
	period, err := w.period()
	if err != nil {
		return nil, err
	}
	now := w.now().In(w.loc)
	dr := metrics.ResolveDateRange(period, entity.DateRange{}, now)

	res := w.rec.Reconcile(ctx, dr)
	if res.Outcome == reconcile.OutcomeFailed {
		return nil, fmt.Errorf("no report data: %w", res.Cause)
	}

	var (
		urls []string
		errs []error
	)
	for _, rt := range entity.ReportTypes {
		a, err := w.exp.Export(ctx, rt, res.Dataset, dr, res.LiveData())
		if err != nil {
			errs = append(errs, err)
			continue
		}
		key := path.Join(now.Format(metrics.DateLayout), res.RunID, a.Filename)
		url, err := w.archive.PutReport(ctx, key, a.Body, a.ContentType)
		if err != nil {
			errs = append(errs, fmt.Errorf("upload %s report: %w", rt, err))
			continue
		}
		urls = append(urls, url)
	}
	return urls, errors.Join(errs...)
}

// period returns the configured rolling period. Custom ranges have no
// meaning for a recurring snapshot.
func (w *Worker) period() (entity.Period, error) {
	p, err := metrics.ParsePeriod(w.c.Period)
	if err != nil {
		return "", err
	}
	if p == entity.PeriodCustom {
		return "", fmt.Errorf("%w: snapshot period must be rolling", gerr.ErrUnknownPeriod)
	}
	return p, nil
}
