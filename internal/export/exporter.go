// Package export turns report datasets into downloadable CSV artifacts.
package export

import (
	"context"
	"fmt"
	"time"

	"github.com/jekabolt/organic-reports/internal/dependency"
	"github.com/jekabolt/organic-reports/internal/entity"
	gerr "github.com/jekabolt/organic-reports/internal/errors"
	"github.com/jekabolt/organic-reports/internal/metrics"
)

const ContentTypeCSV = "text/csv"

// Artifact is a rendered report ready to be sent to the user.
type Artifact struct {
	Filename    string
	ContentType string
	Body        []byte
}

type Exporter struct {
	downloader dependency.ReportDownloader
	loc        *time.Location
	now        func() time.Time
}

// New creates an exporter. downloader serves live exports and may be nil
// when no primary source is configured.
func New(downloader dependency.ReportDownloader, loc *time.Location) *Exporter {
	if loc == nil {
		loc = time.UTC
	}
	return &Exporter{
		downloader: downloader,
		loc:        loc,
		now:        time.Now,
	}
}

// Filename returns the suggested file name for a report exported today.
func (e *Exporter) Filename(rt entity.ReportType) string {
	return fmt.Sprintf("%s-report-%s.csv", rt, e.now().In(e.loc).Format(metrics.DateLayout))
}

// Export renders a report. Live datasets are downloaded from the primary
// source as is, everything else is rendered locally. Every error wraps
// ErrExportFailure and no artifact is returned with it.
func (e *Exporter) Export(ctx context.Context, rt entity.ReportType, ds entity.ReportDataset, dr entity.DateRange, liveData bool) (*Artifact, error) {
	if !rt.Valid() {
		return nil, fmt.Errorf("%w: %w: %q", gerr.ErrExportFailure, gerr.ErrUnknownReportType, rt)
	}

	var (
		body []byte
		err  error
	)
	if liveData {
		body, err = e.download(ctx, rt, dr)
	} else {
		body, err = BuildCSV(rt, ds)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s report: %w", gerr.ErrExportFailure, rt, err)
	}

	return &Artifact{
		Filename:    e.Filename(rt),
		ContentType: ContentTypeCSV,
		Body:        body,
	}, nil
}

func (e *Exporter) download(ctx context.Context, rt entity.ReportType, dr entity.DateRange) ([]byte, error) {
	if e.downloader == nil {
		return nil, fmt.Errorf("no report downloader configured")
	}
	body, err := e.downloader.DownloadReport(ctx, rt, dr)
	if err != nil {
		return nil, fmt.Errorf("download: %w", err)
	}
	return body, nil
}
