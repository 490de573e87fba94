package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jekabolt/organic-reports/config"
	httpapi "github.com/jekabolt/organic-reports/internal/api/http"
	"github.com/jekabolt/organic-reports/internal/auth/jwt"
	"github.com/jekabolt/organic-reports/internal/bucket"
	"github.com/jekabolt/organic-reports/internal/dependency"
	"github.com/jekabolt/organic-reports/internal/export"
	"github.com/jekabolt/organic-reports/internal/ratelimit"
	"github.com/jekabolt/organic-reports/internal/reconcile"
	"github.com/jekabolt/organic-reports/internal/snapshot"
	"github.com/jekabolt/organic-reports/internal/source/analytics"
	"github.com/jekabolt/organic-reports/internal/source/backend"
	"github.com/jekabolt/organic-reports/internal/store"
)

// Engine is the reporting core shared by the server and the CLI.
type Engine struct {
	Reconciler *reconcile.Reconciler
	Exporter   *export.Exporter
	Location   *time.Location
	db         *store.MYSQLStore
}

// Close releases the resources held by the engine.
func (e *Engine) Close() {
	if e.db != nil {
		e.db.Close()
	}
}

// NewEngine wires the data sources, reconciler and exporter from config.
// The analytics service is optional; without it every request is served
// from the fallback source.
func NewEngine(ctx context.Context, c *config.Config) (*Engine, error) {
	loc, err := c.Reports.Location()
	if err != nil {
		return nil, err
	}

	var (
		primary    dependency.Analytics
		downloader dependency.ReportDownloader
	)
	if c.Analytics.Enabled() {
		var ac dependency.Primary = analytics.New(&c.Analytics)
		primary, downloader = ac, ac
	} else {
		slog.Default().WarnContext(ctx, "analytics service not configured, reports are built from raw data")
	}

	e := &Engine{Location: loc}

	var raw dependency.RawSource
	switch c.Fallback.Source {
	case config.FallbackMySQL:
		e.db, err = store.New(ctx, c.DB)
		if err != nil {
			slog.Default().ErrorContext(ctx, "couldn't connect to mysql",
				slog.String("err", err.Error()),
			)
			return nil, err
		}
		raw = e.db
	default:
		raw = backend.New(&c.Backend)
	}

	e.Reconciler = reconcile.New(primary, raw, &c.Reconcile, loc)
	e.Exporter = export.New(downloader, loc)
	return e, nil
}

// App is the main application
type App struct {
	hs       *httpapi.Server
	engine   *Engine
	snapshot *snapshot.Worker
	c        *config.Config
	cancel   context.CancelFunc
	once     sync.Once
	done     chan struct{}
}

// New returns a new instance of App
func New(c *config.Config) *App {
	return &App{
		c:    c,
		done: make(chan struct{}),
	}
}

// Start starts the app
func (a *App) Start(ctx context.Context) error {
	var err error
	slog.Default().InfoContext(ctx, "starting report engine")

	ctx, a.cancel = context.WithCancel(ctx)

	a.engine, err = NewEngine(ctx, a.c)
	if err != nil {
		return err
	}

	var jwtAuth *jwtauth.JWTAuth
	if a.c.Auth.Enabled() {
		jwtAuth = jwt.New(&a.c.Auth)
	} else {
		slog.Default().WarnContext(ctx, "auth secret not set, report api is unauthenticated")
	}

	var limiter *ratelimit.Limiter
	if a.c.RateLimit.Max > 0 {
		limiter = ratelimit.NewLimiter(ctx, a.c.RateLimit.Window, a.c.RateLimit.Max)
	}

	if a.c.Snapshot.Enabled {
		b, err := bucket.New(&a.c.Bucket)
		if err != nil {
			slog.Default().ErrorContext(ctx, "failed create new bucket",
				slog.String("err", err.Error()),
			)
			return err
		}
		a.snapshot = snapshot.New(a.engine.Reconciler, a.engine.Exporter, b, &a.c.Snapshot, a.engine.Location)
		if err := a.snapshot.Start(ctx); err != nil {
			slog.Default().ErrorContext(ctx, "cannot start snapshot worker",
				slog.String("err", err.Error()),
			)
			return err
		}
	}

	a.hs = httpapi.New(&a.c.HTTP, a.engine.Reconciler, a.engine.Exporter, jwtAuth, limiter, a.engine.Location)
	if err = a.hs.Start(ctx); err != nil {
		slog.Default().ErrorContext(ctx, "cannot start http server",
			slog.String("err", err.Error()),
		)
		return fmt.Errorf("start http server: %w", err)
	}

	go func() {
		<-a.hs.Done()
		a.close()
	}()

	return nil
}

// Stop stops the application and waits for all services to exit
func (a *App) Stop(ctx context.Context) {
	if a.snapshot != nil {
		if err := a.snapshot.Stop(); err != nil {
			slog.Default().ErrorContext(ctx, "failed to stop snapshot worker",
				slog.String("err", err.Error()),
			)
		}
	}
	if a.hs != nil {
		if err := a.hs.Stop(ctx); err != nil {
			slog.Default().ErrorContext(ctx, "failed to stop http server",
				slog.String("err", err.Error()),
			)
		}
		<-a.hs.Done()
	}
	a.close()
}

func (a *App) close() {
	a.once.Do(func() {
		if a.cancel != nil {
			a.cancel()
		}
		if a.engine != nil {
			a.engine.Close()
		}
		close(a.done)
	})
}

// Done returns a channel that is closed after the application has exited
func (a *App) Done() chan struct{} {
	return a.done
}
