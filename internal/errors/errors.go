package gerr

import "errors"

var (
	// ErrSourceUnavailable means a primary analytics call failed. The
	// reconciler recovers from it by falling back to raw collections.
	ErrSourceUnavailable = errors.New("primary analytics source unavailable")
	// ErrFallbackUnavailable means the raw collections could not be fetched
	// either; the report degrades to an empty dataset.
	ErrFallbackUnavailable = errors.New("fallback data source unavailable")
	// ErrExportFailure is the only failure surfaced to the end user.
	ErrExportFailure = errors.New("report export failed")

	ErrUnknownReportType = errors.New("unknown report type")
	ErrUnknownPeriod     = errors.New("unknown report period")
	ErrInvalidDateRange  = errors.New("invalid date range")
)
