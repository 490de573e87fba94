package httpapi

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/jekabolt/organic-reports/internal/entity"
	gerr "github.com/jekabolt/organic-reports/internal/errors"
	"github.com/jekabolt/organic-reports/internal/metrics"
)

var periods = []string{
	entity.Period7Days.String(),
	entity.Period30Days.String(),
	entity.Period90Days.String(),
	entity.PeriodCustom.String(),
}

// parseDateRange reads period, dateFrom and dateTo. Dates are days in loc.
func parseDateRange(r *http.Request, loc *time.Location, now time.Time, defaultPeriod entity.Period) (entity.DateRange, error) {
	q := r.URL.Query()

	period := strings.TrimSpace(q.Get("period"))
	if period == "" {
		period = defaultPeriod.String()
	}
	if !govalidator.IsIn(period, periods...) {
		return entity.DateRange{}, fmt.Errorf("%w: %q", gerr.ErrUnknownPeriod, period)
	}

	var custom entity.DateRange
	for _, p := range []struct {
		name string
		dst  *time.Time
	}{
		{"dateFrom", &custom.From},
		{"dateTo", &custom.To},
	} {
		v := strings.TrimSpace(q.Get(p.name))
		if v == "" {
			continue
		}
		if !govalidator.IsTime(v, metrics.DateLayout) {
			return entity.DateRange{}, fmt.Errorf("%w: %s must be YYYY-MM-DD", gerr.ErrInvalidDateRange, p.name)
		}
		t, err := time.ParseInLocation(metrics.DateLayout, v, loc)
		if err != nil {
			return entity.DateRange{}, fmt.Errorf("%w: %s: %v", gerr.ErrInvalidDateRange, p.name, err)
		}
		*p.dst = t
	}

	dr := metrics.ResolveDateRange(entity.Period(period), custom, now.In(loc))
	if err := metrics.ValidateDateRange(dr); err != nil {
		return entity.DateRange{}, err
	}
	return dr, nil
}

func parseReportType(r *http.Request) (entity.ReportType, error) {
	rt := strings.TrimSpace(r.URL.Query().Get("type"))
	types := make([]string, 0, len(entity.ReportTypes))
	for _, t := range entity.ReportTypes {
		types = append(types, t.String())
	}
	if !govalidator.IsIn(rt, types...) {
		return "", fmt.Errorf("%w: %q", gerr.ErrUnknownReportType, rt)
	}
	return entity.ReportType(rt), nil
}
