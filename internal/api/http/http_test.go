package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jekabolt/organic-reports/internal/auth/jwt"
	"github.com/jekabolt/organic-reports/internal/dependency/mocks"
	"github.com/jekabolt/organic-reports/internal/dto"
	"github.com/jekabolt/organic-reports/internal/entity"
	gerr "github.com/jekabolt/organic-reports/internal/errors"
	"github.com/jekabolt/organic-reports/internal/export"
	"github.com/jekabolt/organic-reports/internal/ratelimit"
	"github.com/jekabolt/organic-reports/internal/reconcile"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 1, 20, 15, 0, 0, 0, time.UTC)

type fakeReconciler struct {
	res    reconcile.Result
	ranges []entity.DateRange
}

func (f *fakeReconciler) Reconcile(_ context.Context, dr entity.DateRange) reconcile.Result {
	f.ranges = append(f.ranges, dr)
	return f.res
}

func degradedResult() reconcile.Result {
	ds := entity.EmptyDataset()
	ds.Sales = []entity.DailySalesPoint{
		{Label: "2024-01-15", Revenue: decimal.NewFromInt(150), Orders: 2, Customers: 2},
		{Label: "2024-01-16", Revenue: decimal.NewFromInt(30), Orders: 1, Customers: 1},
	}
	ds.Inventory = []entity.InventoryStatus{{ProductID: "p1", Name: "Honey", Stock: 0, Status: entity.StockOut, Category: "Pantry"}}
	return reconcile.Result{Outcome: reconcile.OutcomeDegraded, Dataset: ds, RunID: "run-1"}
}

func newTestServer(rec Reconciler, exp Exporter, opts ...func(*Server)) http.Handler {
	s := New(&Config{AllowedOrigins: []string{"https://admin.example.com"}}, rec, exp, nil, nil, time.UTC)
	s.now = func() time.Time { return testNow }
	for _, o := range opts {
		o(s)
	}
	return s.Handler()
}

func newLocalExporter() *export.Exporter {
	return export.New(nil, time.UTC)
}

func get(h http.Handler, target string, headers ...string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodGet, target, nil)
	for i := 0; i+1 < len(headers); i += 2 {
		r.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}

func TestGetReports(t *testing.T) {
	rec := &fakeReconciler{res: degradedResult()}
	h := newTestServer(rec, newLocalExporter())

	w := get(h, "/api/reports?period=7days")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var body dto.ReportDataset
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.LiveData)
	assert.Equal(t, "degraded", body.Outcome)
	assert.Equal(t, "7days", body.Period)
	assert.Equal(t, "2024-01-13", body.DateFrom)
	assert.Equal(t, "2024-01-20", body.DateTo)
	require.Len(t, body.Sales, 2)
	assert.Equal(t, "2024-01-15", body.Sales[0].Date)
	require.Len(t, body.Inventory, 1)
	assert.Equal(t, "out", body.Inventory[0].Status)
	assert.NotNil(t, body.TopProducts)

	require.Len(t, rec.ranges, 1)
	assert.Equal(t, entity.Period7Days, rec.ranges[0].Period)
}

func TestGetReports_DefaultsAndCustom(t *testing.T) {
	rec := &fakeReconciler{res: degradedResult()}
	h := newTestServer(rec, newLocalExporter())

	require.Equal(t, http.StatusOK, get(h, "/api/reports").Code)
	assert.Equal(t, entity.Period30Days, rec.ranges[0].Period)

	require.Equal(t, http.StatusOK, get(h, "/api/reports?period=custom&dateFrom=2024-01-01&dateTo=2024-01-31").Code)
	assert.Equal(t, entity.DateRange{
		Period: entity.PeriodCustom,
		From:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		To:     time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
	}, rec.ranges[1])
}

func TestGetReports_BadQuery(t *testing.T) {
	rec := &fakeReconciler{res: degradedResult()}
	h := newTestServer(rec, newLocalExporter())

	for _, target := range []string{
		"/api/reports?period=weekly",
		"/api/reports?period=custom&dateFrom=2024-01-31",
		"/api/reports?period=custom&dateFrom=2024-02-01&dateTo=2024-01-01",
		"/api/reports?period=custom&dateFrom=01/02/2024&dateTo=2024-01-05",
	} {
		w := get(h, target)
		assert.Equal(t, http.StatusBadRequest, w.Code, target)
	}
	assert.Empty(t, rec.ranges)
}

func TestDownloadReport(t *testing.T) {
	h := newTestServer(&fakeReconciler{res: degradedResult()}, newLocalExporter())

	w := get(h, "/api/reports/download?type=sales&period=30days")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, export.ContentTypeCSV, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "sales-report-")
	assert.Equal(t, "Date,Revenue,Orders,Customers\n2024-01-15,150,2,2\n2024-01-16,30,1,1\n", w.Body.String())
}

func TestDownloadReport_Live(t *testing.T) {
	d := mocks.NewReportDownloader(t)
	d.EXPECT().DownloadReport(mock.Anything, entity.ReportProducts, mock.Anything).Return([]byte("from primary"), nil)

	res := degradedResult()
	res.Outcome = reconcile.OutcomeLive
	h := newTestServer(&fakeReconciler{res: res}, export.New(d, time.UTC))

	w := get(h, "/api/reports/download?type=products")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "from primary", w.Body.String())
}

func TestDownloadReport_Errors(t *testing.T) {
	d := mocks.NewReportDownloader(t)
	d.EXPECT().DownloadReport(mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("primary down"))

	res := degradedResult()
	res.Outcome = reconcile.OutcomeLive
	h := newTestServer(&fakeReconciler{res: res}, export.New(d, time.UTC))

	w := get(h, "/api/reports/download?type=inventory")
	assert.Equal(t, http.StatusBadGateway, w.Code)
	var body errorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body.Error, gerr.ErrExportFailure.Error())

	assert.Equal(t, http.StatusBadRequest, get(h, "/api/reports/download?type=weekly").Code)
	assert.Equal(t, http.StatusBadRequest, get(h, "/api/reports/download").Code)
}

func TestDownloadReport_RateLimited(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	limiter := ratelimit.NewLimiter(ctx, time.Minute, 1)
	h := newTestServer(&fakeReconciler{res: degradedResult()}, newLocalExporter(), func(s *Server) {
		s.limiter = limiter
	})

	assert.Equal(t, http.StatusOK, get(h, "/api/reports/download?type=sales", "X-Forwarded-For", "203.0.113.5").Code)
	assert.Equal(t, http.StatusTooManyRequests, get(h, "/api/reports/download?type=sales", "X-Forwarded-For", "203.0.113.5").Code)
	// the dataset endpoint is not limited
	assert.Equal(t, http.StatusOK, get(h, "/api/reports", "X-Forwarded-For", "203.0.113.5").Code)
}

func TestAuth(t *testing.T) {
	ja := jwt.New(&jwt.Config{Secret: "secret"})
	h := newTestServer(&fakeReconciler{res: degradedResult()}, newLocalExporter(), func(s *Server) {
		s.jwtAuth = ja
	})

	assert.Equal(t, http.StatusUnauthorized, get(h, "/api/reports").Code)
	assert.Equal(t, http.StatusOK, get(h, "/healthz").Code)

	tok, err := jwt.NewTokenWithSubject(ja, time.Hour, "admin")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, get(h, "/api/reports", "Authorization", "Bearer "+tok).Code)
}

func TestCORS(t *testing.T) {
	h := newTestServer(&fakeReconciler{res: degradedResult()}, newLocalExporter())

	w := get(h, "/api/reports", "Origin", "https://admin.example.com")
	assert.Equal(t, "https://admin.example.com", w.Header().Get("Access-Control-Allow-Origin"))

	w = get(h, "/api/reports", "Origin", "https://evil.example.com")
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))

	w = get(h, "/api/reports", "Origin", "http://localhost:3000")
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}
