// Package series holds the weekly calendar math behind recurring visits.
// Every function is pure; callers pass "now" and the location explicitly.
package series

import (
	"errors"
	"fmt"
	"scoop/shared/constant"
	"time"
)

var ErrInvalidWindow = errors.New("invalid window, expected HH:MM")

// Window is a time of day with minute precision.
type Window struct {
	Hour   int
	Minute int
}

func ParseWindow(value string) (Window, error) {
	if len(value) != len(constant.WindowFormat) {
		return Window{}, fmt.Errorf("%w: %q", ErrInvalidWindow, value)
	}

	parsed, err := time.Parse(constant.WindowFormat, value)
	if err != nil {
		return Window{}, fmt.Errorf("%w: %q", ErrInvalidWindow, value)
	}

	return Window{Hour: parsed.Hour(), Minute: parsed.Minute()}, nil
}

func (w Window) String() string {
	return fmt.Sprintf("%02d:%02d", w.Hour, w.Minute)
}

// AtWindow keeps the calendar day of date as seen in loc and sets its clock to w.
func AtWindow(date time.Time, w Window, loc *time.Location) time.Time {
	local := date.In(loc)
	year, month, day := local.Date()

	return time.Date(year, month, day, w.Hour, w.Minute, 0, 0, loc)
}

// OnDay combines a calendar date, read in UTC as the store returns DATE
// columns, with a window in loc.
func OnDay(date time.Time, w Window, loc *time.Location) time.Time {
	year, month, day := date.UTC().Date()

	return time.Date(year, month, day, w.Hour, w.Minute, 0, 0, loc)
}

// NextOccurrence returns the next weekday at window w strictly after now.
// Today qualifies only while its window start is still ahead.
func NextOccurrence(now time.Time, weekday time.Weekday, w Window) time.Time {
	days := (int(weekday) - int(now.Weekday()) + constant.DaysPerWeek) % constant.DaysPerWeek
	candidate := AtWindow(now.AddDate(0, 0, days), w, now.Location())

	if !candidate.After(now) {
		candidate = candidate.AddDate(0, 0, constant.DaysPerWeek)
	}

	return candidate
}

// Weekly returns count dates starting at start, one week apart, wall clock preserved.
func Weekly(start time.Time, offset, count int) []time.Time {
	dates := make([]time.Time, 0, max(count, 0))

	for i := range count {
		dates = append(dates, start.AddDate(0, 0, constant.DaysPerWeek*(offset+i)))
	}

	return dates
}
