package metrics

import (
	"fmt"
	"time"

	"github.com/jekabolt/organic-reports/internal/entity"
	gerr "github.com/jekabolt/organic-reports/internal/errors"
)

// DateLayout is the day format used for labels, query parameters and
// export filenames.
const DateLayout = "2006-01-02"

var periodDays = map[entity.Period]int{
	entity.Period7Days:  7,
	entity.Period30Days: 30,
	entity.Period90Days: 90,
}

// ParsePeriod validates a period tag.
func ParsePeriod(s string) (entity.Period, error) {
	p := entity.Period(s)
	if _, ok := periodDays[p]; ok || p == entity.PeriodCustom {
		return p, nil
	}
	return "", fmt.Errorf("%w: %q", gerr.ErrUnknownPeriod, s)
}

// ResolveDateRange turns a period tag into a concrete range ending today.
// Custom ranges are returned as supplied, and unknown tags leave the given
// range untouched.
func ResolveDateRange(period entity.Period, dr entity.DateRange, now time.Time) entity.DateRange {
	if period == entity.PeriodCustom {
		return entity.DateRange{Period: entity.PeriodCustom, From: dr.From, To: dr.To}
	}
	n, ok := periodDays[period]
	if !ok {
		return dr
	}
	to := Day(now)
	return entity.DateRange{
		Period: period,
		From:   to.AddDate(0, 0, -n),
		To:     to,
	}
}

// ValidateDateRange checks the invariants of a resolved range: custom
// ranges need both bounds and From must not be after To.
func ValidateDateRange(dr entity.DateRange) error {
	if dr.Period == entity.PeriodCustom && (dr.From.IsZero() || dr.To.IsZero()) {
		return fmt.Errorf("%w: custom period requires both dateFrom and dateTo", gerr.ErrInvalidDateRange)
	}
	if !dr.From.IsZero() && !dr.To.IsZero() && Day(dr.From).After(Day(dr.To)) {
		return fmt.Errorf("%w: dateFrom %s is after dateTo %s", gerr.ErrInvalidDateRange,
			dr.From.Format(DateLayout), dr.To.Format(DateLayout))
	}
	return nil
}

// Day truncates t to midnight in its own location.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
