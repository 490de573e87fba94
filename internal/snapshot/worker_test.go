package snapshot

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jekabolt/organic-reports/internal/dependency/mocks"
	"github.com/jekabolt/organic-reports/internal/entity"
	gerr "github.com/jekabolt/organic-reports/internal/errors"
	"github.com/jekabolt/organic-reports/internal/export"
	"github.com/jekabolt/organic-reports/internal/reconcile"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 1, 20, 6, 0, 0, 0, time.UTC)

type fakeReconciler struct {
	res    reconcile.Result
	ranges []entity.DateRange
}

func (f *fakeReconciler) Reconcile(_ context.Context, dr entity.DateRange) reconcile.Result {
	f.ranges = append(f.ranges, dr)
	return f.res
}

func degraded() reconcile.Result {
	ds := entity.EmptyDataset()
	ds.Sales = []entity.DailySalesPoint{{Label: "2024-01-15", Revenue: decimal.NewFromInt(150), Orders: 2, Customers: 2}}
	return reconcile.Result{Outcome: reconcile.OutcomeDegraded, Dataset: ds, RunID: "run-1"}
}

func newTestWorker(rec Reconciler, archive *mocks.ReportStore, c *Config) *Worker {
	w := New(rec, export.New(nil, time.UTC), archive, c, time.UTC)
	w.now = func() time.Time { return testNow }
	return w
}

func TestSnapshotAll(t *testing.T) {
	archive := mocks.NewReportStore(t)
	rec := &fakeReconciler{res: degraded()}

	var keys []string
	archive.EXPECT().PutReport(mock.Anything, mock.Anything, mock.Anything, export.ContentTypeCSV).
		RunAndReturn(func(_ context.Context, key string, body []byte, _ string) (string, error) {
			keys = append(keys, key)
			return "https://files.example.com/" + key, nil
		}).Times(len(entity.ReportTypes))

	urls, err := newTestWorker(rec, archive, nil).SnapshotAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, urls, 4)
	assert.Equal(t, []string{
		"2024-01-20/run-1/sales-report-2024-01-20.csv",
		"2024-01-20/run-1/revenue-report-2024-01-20.csv",
		"2024-01-20/run-1/products-report-2024-01-20.csv",
		"2024-01-20/run-1/inventory-report-2024-01-20.csv",
	}, keys)

	require.Len(t, rec.ranges, 1)
	assert.Equal(t, entity.Period30Days, rec.ranges[0].Period)
	assert.Equal(t, time.Date(2023, 12, 21, 0, 0, 0, 0, time.UTC), rec.ranges[0].From)
	assert.Equal(t, time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC), rec.ranges[0].To)
}

func TestSnapshotAll_UploadErrorDoesNotStopOthers(t *testing.T) {
	archive := mocks.NewReportStore(t)
	archive.EXPECT().PutReport(mock.Anything, mock.MatchedBy(func(key string) bool {
		return key == "2024-01-20/run-1/revenue-report-2024-01-20.csv"
	}), mock.Anything, mock.Anything).Return("", errors.New("access denied")).Once()
	archive.EXPECT().PutReport(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("url", nil).Times(3)

	urls, err := newTestWorker(&fakeReconciler{res: degraded()}, archive, nil).SnapshotAll(context.Background())
	assert.ErrorContains(t, err, "upload revenue report")
	assert.Len(t, urls, 3)
}

func TestSnapshotAll_NoData(t *testing.T) {
	archive := mocks.NewReportStore(t)
	rec := &fakeReconciler{res: reconcile.Result{
		Outcome: reconcile.OutcomeFailed,
		Dataset: entity.EmptyDataset(),
		Cause:   gerr.ErrFallbackUnavailable,
	}}

	_, err := newTestWorker(rec, archive, nil).SnapshotAll(context.Background())
	assert.ErrorIs(t, err, gerr.ErrFallbackUnavailable)
}

func TestStartStop(t *testing.T) {
	archive := mocks.NewReportStore(t)
	uploaded := make(chan struct{}, len(entity.ReportTypes))
	archive.EXPECT().PutReport(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, string, []byte, string) (string, error) {
			uploaded <- struct{}{}
			return "url", nil
		}).Times(len(entity.ReportTypes))

	c := DefaultConfig()
	c.Enabled = true
	c.WorkerInterval = time.Hour
	w := newTestWorker(&fakeReconciler{res: degraded()}, archive, &c)

	require.NoError(t, w.Start(context.Background()))
	assert.Error(t, w.Start(context.Background()))

	for range entity.ReportTypes {
		select {
		case <-uploaded:
		case <-time.After(5 * time.Second):
			t.Fatal("snapshot was not uploaded on start")
		}
	}

	require.NoError(t, w.Stop())
	assert.Error(t, w.Stop())
}

func TestStart_RejectsCustomPeriod(t *testing.T) {
	c := DefaultConfig()
	c.Period = entity.PeriodCustom.String()
	w := New(&fakeReconciler{}, export.New(nil, time.UTC), mocks.NewReportStore(t), &c, nil)
	assert.ErrorIs(t, w.Start(context.Background()), gerr.ErrUnknownPeriod)
}

func TestNew_NonPositiveIntervalUsesDefault(t *testing.T) {
	for _, interval := range []time.Duration{0, -time.Minute} {
		c := DefaultConfig()
		c.WorkerInterval = interval
		w := New(&fakeReconciler{}, export.New(nil, time.UTC), mocks.NewReportStore(t), &c, nil)
		assert.Equal(t, 24*time.Hour, w.c.WorkerInterval, "interval %s", interval)
	}
}
