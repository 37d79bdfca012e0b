package aggregation

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar-day format used for record dates and bucket keys.
const DateLayout = "2006-01-02"

// labelLayout renders a bucket as en-US month/day, e.g. "01/02".
const labelLayout = "01/02"

// ErrInvalidWindow is returned for a non-positive day count.
var ErrInvalidWindow = errors.New("window must cover at least one day")

// DayWindow is an inclusive range of calendar days in a fixed location.
type DayWindow struct {
	Start time.Time // midnight of the first day, in Location
	End   time.Time // midnight of the last day (today), in Location
	Days  int
	Loc   *time.Location
}

// NewDayWindow covers [today-(days-1), today], where today is now's calendar
// day in loc. A nil loc means UTC.
func NewDayWindow(now time.Time, days int, loc *time.Location) (DayWindow, error) {
	if days <= 0 {
		return DayWindow{}, fmt.Errorf("%w: got %d", ErrInvalidWindow, days)
	}
	if loc == nil {
		loc = time.UTC
	}
	end := DayOf(now, loc)
	start := time.Date(end.Year(), end.Month(), end.Day()-(days-1), 0, 0, 0, 0, loc)
	return DayWindow{Start: start, End: end, Days: days, Loc: loc}, nil
}

// Day returns midnight of the i-th day of the window (0 = oldest).
// Calendar arithmetic keeps day boundaries correct across DST changes.
func (w DayWindow) Day(i int) time.Time {
	return time.Date(w.Start.Year(), w.Start.Month(), w.Start.Day()+i, 0, 0, 0, 0, w.Loc)
}

// Contains reports whether day (a midnight in the window's location) lies in the window.
func (w DayWindow) Contains(day time.Time) bool {
	return !day.Before(w.Start) && !day.After(w.End)
}

// StartDate and EndDate render the bounds for date-typed store queries.
func (w DayWindow) StartDate() string { return w.Start.Format(DateLayout) }
func (w DayWindow) EndDate() string   { return w.End.Format(DateLayout) }

// InstantRange returns [start, end) instants for timestamp-typed store queries.
func (w DayWindow) InstantRange() (time.Time, time.Time) {
	return w.Start, w.Day(w.Days)
}

// DayOf truncates t to midnight of its calendar day in loc.
func DayOf(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// ParseRecordDate reads a "2006-01-02" date, or the date part of an RFC3339
// value, as a calendar day in loc. The time part is ignored, not converted.
func ParseRecordDate(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errors.New("date is empty")
	}
	if i := strings.IndexByte(s, 'T'); i >= 0 {
		s = s[:i]
	}
	return time.ParseInLocation(DateLayout, s, loc)
}

// ParseSpan parses a duration string. It accepts Go duration syntax
// ("10s", "1h") plus "Xd" for days.
func ParseSpan(s string) (time.Duration, error) {
	if s == "" {
		return 0, fmt.Errorf("span must not be empty")
	}

	// "d" suffix is not supported by time.ParseDuration.
	if len(s) > 1 && s[len(s)-1] == 'd' {
		var days int
		if _, err := fmt.Sscanf(s, "%dd", &days); err != nil {
			return 0, fmt.Errorf("invalid span %q: %w", s, err)
		}
		if days <= 0 {
			return 0, fmt.Errorf("span must be positive, got %q", s)
		}
		return time.Duration(days) * 24 * time.Hour, nil
	}

	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid span %q: %w", s, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("span must be positive, got %q", s)
	}
	return d, nil
}
