package httpapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jekabolt/organic-reports/internal/auth/jwt"
	"github.com/jekabolt/organic-reports/internal/entity"
	"github.com/jekabolt/organic-reports/internal/export"
	"github.com/jekabolt/organic-reports/internal/middleware"
	"github.com/jekabolt/organic-reports/internal/ratelimit"
	"github.com/jekabolt/organic-reports/internal/reconcile"
)

// Config is the configuration for the http server
type Config struct {
	Port           string        `mapstructure:"port"`
	Address        string        `mapstructure:"address"`
	AllowedOrigins []string      `mapstructure:"allowed_origins"`
	DefaultPeriod  string        `mapstructure:"default_period"`
	ReadTimeout    time.Duration `mapstructure:"read_timeout"`
	WriteTimeout   time.Duration `mapstructure:"write_timeout"`
}

type Reconciler interface {
	Reconcile(ctx context.Context, dr entity.DateRange) reconcile.Result
}

type Exporter interface {
	Export(ctx context.Context, rt entity.ReportType, ds entity.ReportDataset, dr entity.DateRange, liveData bool) (*export.Artifact, error)
}

// Server is the http server
type Server struct {
	hs      *http.Server
	c       *Config
	rec     Reconciler
	exp     Exporter
	jwtAuth *jwtauth.JWTAuth
	limiter *ratelimit.Limiter
	loc     *time.Location
	now     func() time.Time
	done    chan struct{}
}

// New creates a new server. jwtAuth and limiter are optional.
func New(c *Config, rec Reconciler, exp Exporter, jwtAuth *jwtauth.JWTAuth, limiter *ratelimit.Limiter, loc *time.Location) *Server {
	if loc == nil {
		loc = time.UTC
	}
	return &Server{
		c:       c,
		rec:     rec,
		exp:     exp,
		jwtAuth: jwtAuth,
		limiter: limiter,
		loc:     loc,
		now:     time.Now,
		done:    make(chan struct{}),
	}
}

// Done returns a channel that is closed when the http server exits
func (s *Server) Done() <-chan struct{} {
	return s.done
}

// Handler returns the report API router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowOriginFunc: func(_ *http.Request, origin string) bool {
			return isOriginAllowed(origin, s.c.AllowedOrigins)
		},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders: []string{"Content-Disposition", "Retry-After"},
		MaxAge:         300,
	}))
	r.Use(middleware.ClientIdentifier)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/reports", func(r chi.Router) {
		if s.jwtAuth != nil {
			r.Use(jwt.WithAuth(s.jwtAuth))
		}
		r.Get("/", s.getReports)
		if s.limiter != nil {
			r.With(s.limiter.Middleware).Get("/download", s.downloadReport)
		} else {
			r.Get("/download", s.downloadReport)
		}
	})

	return r
}

// Start starts the server
func (s *Server) Start(ctx context.Context) error {
	listenerAddr := fmt.Sprintf("%s:%s", s.c.Address, s.c.Port)
	s.hs = &http.Server{
		Addr:         listenerAddr,
		Handler:      s.Handler(),
		ReadTimeout:  s.c.ReadTimeout,
		WriteTimeout: s.c.WriteTimeout,
	}

	go func() {
		defer close(s.done)
		slog.Default().InfoContext(ctx, "report api listening",
			slog.String("addr", "http://"+listenerAddr),
		)
		err := s.hs.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			slog.Default().InfoContext(ctx, "http server returned")
			return
		}
		slog.Default().ErrorContext(ctx, "http server exited with an error",
			slog.String("err", err.Error()),
		)
	}()
	return nil
}

// Stop gracefully shuts the server down
func (s *Server) Stop(ctx context.Context) error {
	if s.hs == nil {
		return nil
	}
	return s.hs.Shutdown(ctx)
}

func isOriginAllowed(origin string, allowedOrigins []string) bool {
	// Always allow localhost origins
	if strings.HasPrefix(origin, "http://localhost:") || strings.HasPrefix(origin, "https://localhost:") {
		return true
	}
	for _, allowedOrigin := range allowedOrigins {
		if origin == allowedOrigin || allowedOrigin == "*" {
			return true
		}
	}
	return false
}
