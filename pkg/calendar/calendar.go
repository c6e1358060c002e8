// Package calendar decomposes intervals along local calendar
// boundaries. The splits are a convenience on top of the interval
// algebra; they add no invariant of their own and their output feeds
// straight back into timespan.NewSet.
package calendar

import (
	"time"

	"github.com/henderiw/timeset/pkg/timespan"
)

// Days splits in at local midnights in loc. The first and last
// sub-interval are truncated to the bounds of in. Degenerate input
// yields nil.
func Days(in timespan.Interval, loc *time.Location) []timespan.Interval {
	return split(in, func(t time.Time) time.Time {
		t = t.In(loc)
		return time.Date(t.Year(), t.Month(), t.Day()+1, 0, 0, 0, 0, loc)
	})
}

// Months splits in at local first-of-month boundaries in loc.
func Months(in timespan.Interval, loc *time.Location) []timespan.Interval {
	return split(in, func(t time.Time) time.Time {
		t = t.In(loc)
		return time.Date(t.Year(), t.Month()+1, 1, 0, 0, 0, 0, loc)
	})
}

// Years splits in at local first-of-year boundaries in loc.
func Years(in timespan.Interval, loc *time.Location) []timespan.Interval {
	return split(in, func(t time.Time) time.Time {
		t = t.In(loc)
		return time.Date(t.Year()+1, time.January, 1, 0, 0, 0, 0, loc)
	})
}

// split walks from the start of in to its end, cutting at each boundary
// returned by next. next must return an instant strictly after its
// argument.
func split(in timespan.Interval, next func(time.Time) time.Time) []timespan.Interval {
	if !in.Start().Before(in.End()) {
		return nil
	}
	var out []timespan.Interval
	cur := in.Start()
	for cur.Before(in.End()) {
		bound := next(cur)
		if bound.After(in.End()) {
			bound = in.End()
		}
		out = append(out, timespan.New(cur, bound))
		cur = bound
	}
	return out
}
