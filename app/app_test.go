package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jekabolt/organic-reports/config"
	httpapi "github.com/jekabolt/organic-reports/internal/api/http"
	"github.com/jekabolt/organic-reports/internal/entity"
	"github.com/jekabolt/organic-reports/internal/reconcile"
	"github.com/jekabolt/organic-reports/internal/source/backend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBackend(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/orders", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"orders":[{"id":"o1","createdAt":"2024-01-15T09:00:00Z","totalAmount":40,"items":[{"productId":"p1","quantity":2,"price":20}]}]}`))
	})
	mux.HandleFunc("/products", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"products":[{"id":"p1","name":"Honey","stock":3}]}`))
	})
	mux.HandleFunc("/users", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"users":[]}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func testConfig(backendURL string) *config.Config {
	return &config.Config{
		HTTP: httpapi.Config{
			Address:       "127.0.0.1",
			Port:          "0",
			DefaultPeriod: "30days",
		},
		Backend:   backend.Config{BaseURL: backendURL, Timeout: time.Second},
		Fallback:  config.FallbackConfig{Source: config.FallbackBackend},
		Reconcile: reconcile.DefaultConfig(),
	}
}

func TestNewEngine_BackendFallback(t *testing.T) {
	srv := newBackend(t)
	ctx := context.Background()

	e, err := NewEngine(ctx, testConfig(srv.URL))
	require.NoError(t, err)
	defer e.Close()
	assert.Equal(t, time.UTC, e.Location)

	res := e.Reconciler.Reconcile(ctx, entity.DateRange{Period: entity.Period30Days})
	assert.Equal(t, reconcile.OutcomeDegraded, res.Outcome)
	assert.False(t, res.LiveData())
	require.Len(t, res.Dataset.TopProducts, 1)
	assert.Equal(t, "Honey", res.Dataset.TopProducts[0].Name)
	assert.Equal(t, 2, res.Dataset.TopProducts[0].UnitsSold)

	art, err := e.Exporter.Export(ctx, entity.ReportInventory, res.Dataset, entity.DateRange{}, res.LiveData())
	require.NoError(t, err)
	assert.Contains(t, string(art.Body), "Honey")
}

func TestNewEngine_BadTimezone(t *testing.T) {
	c := testConfig("http://127.0.0.1:1")
	c.Reports.Timezone = "Nowhere/Land"
	_, err := NewEngine(context.Background(), c)
	assert.Error(t, err)
}

func TestApp_StartStop(t *testing.T) {
	srv := newBackend(t)
	a := New(testConfig(srv.URL))
	ctx := context.Background()

	require.NoError(t, a.Start(ctx))
	a.Stop(ctx)

	select {
	case <-a.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("app did not exit")
	}
}
