package report

import (
	"time"

	reporterrors "go-kafe/internal/report/errors"
)

const (
	KindDay   = "day"
	KindMonth = "month"
)

// Period is an inclusive [Start, End] window in the report time zone.
type Period struct {
	Kind  string
	Label string
	Start time.Time
	End   time.Time
}

// End is the last representable instant before the next period. Postgres
// keeps microseconds.
func lastInstantBefore(t time.Time) time.Time {
	return t.Add(-time.Microsecond)
}

func DayOf(t time.Time, loc *time.Location) Period {
	t = t.In(loc)
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	return Period{
		Kind:  KindDay,
		Label: start.Format(time.DateOnly),
		Start: start,
		End:   lastInstantBefore(start.AddDate(0, 0, 1)),
	}
}

func MonthOf(t time.Time, loc *time.Location) Period {
	t = t.In(loc)
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, loc)
	return Period{
		Kind:  KindMonth,
		Label: start.Format("2006-01"),
		Start: start,
		End:   lastInstantBefore(start.AddDate(0, 1, 0)),
	}
}

// ParsePeriod reads exactly one of date (YYYY-MM-DD) or month (YYYY-MM).
func ParsePeriod(date, month string, loc *time.Location) (Period, error) {
	switch {
	case date != "" && month == "":
		d, err := time.ParseInLocation(time.DateOnly, date, loc)
		if err != nil {
			return Period{}, reporterrors.ErrInvalidPeriod
		}
		return DayOf(d, loc), nil
	case month != "" && date == "":
		m, err := time.ParseInLocation("2006-01", month, loc)
		if err != nil {
			return Period{}, reporterrors.ErrInvalidPeriod
		}
		return MonthOf(m, loc), nil
	default:
		return Period{}, reporterrors.ErrInvalidPeriod
	}
}
