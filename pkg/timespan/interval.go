package timespan

import (
	"fmt"
	"time"
)

var (
	// MinTime marks the unbounded past. It is the zero time so that an
	// interval built from an unset start is naturally open-ended.
	MinTime = time.Time{}

	// MaxTime marks the unbounded future. Chosen because it is effectively
	// infinitely far in the future but UnixNano only works through 2262.
	MaxTime = time.Date(2200, 1, 1, 0, 0, 0, 0, time.UTC)
)

// Interval is a directed range between two instants on the timeline.
// It is a value: constructed once, never mutated.
type Interval struct {
	start time.Time
	end   time.Time
}

func New(start, end time.Time) Interval {
	return Interval{
		start: start,
		end:   end,
	}
}

// NewWithDuration builds the interval starting at start and lasting d.
func NewWithDuration(start time.Time, d time.Duration) Interval {
	return Interval{
		start: start,
		end:   start.Add(d),
	}
}

// All returns the interval covering the whole timeline.
func All() Interval {
	return Interval{
		start: MinTime,
		end:   MaxTime,
	}
}

// Start returns the lower bound of i.
func (i Interval) Start() time.Time { return i.start }

// End returns the upper bound of i.
func (i Interval) End() time.Time { return i.end }

func (i Interval) Duration() time.Duration {
	return i.end.Sub(i.start)
}

func (i Interval) IsReversed() bool {
	return i.start.After(i.end)
}

func (i Interval) IsZero() bool {
	return i.start.IsZero() && i.end.IsZero()
}

// isDegenerate reports whether i carries no information for a set of
// periods: zero length or reversed.
func (i Interval) isDegenerate() bool {
	return !i.start.Before(i.end)
}

// IsWithin reports whether i is entirely contained within outer.
// Defined for non-reversed operands only; callers must not rely on the
// result when either side is reversed.
func (i Interval) IsWithin(outer Interval) bool {
	return !i.start.Before(outer.start) && !i.end.After(outer.end)
}

// Intersects reports whether the open interiors of i and other overlap.
// Intervals that merely touch at an endpoint do not intersect.
func (i Interval) Intersects(other Interval) bool {
	return i.start.Before(other.end) && i.end.After(other.start)
}

// Includes reports whether t lies in i, both endpoints included.
func (i Interval) Includes(t time.Time) bool {
	return !t.Before(i.start) && !t.After(i.end)
}

// Inverse returns the complement of i against the MinTime/MaxTime
// sentinels: zero intervals when i already covers the whole timeline,
// one when a single bound is open, two otherwise.
func (i Interval) Inverse() []Interval {
	startOpen := i.start.Equal(MinTime)
	endOpen := i.end.Equal(MaxTime)
	switch {
	case startOpen && endOpen:
		return nil
	case startOpen:
		return []Interval{{start: i.end, end: MaxTime}}
	case endOpen:
		return []Interval{{start: MinTime, end: i.start}}
	default:
		return []Interval{
			{start: MinTime, end: i.start},
			{start: i.end, end: MaxTime},
		}
	}
}

// Compare orders intervals by start, ties broken by end.
func (i Interval) Compare(other Interval) int {
	if c := i.start.Compare(other.start); c != 0 {
		return c
	}
	return i.end.Compare(other.end)
}

func (i Interval) Less(other Interval) bool {
	return i.Compare(other) < 0
}

func (i Interval) Equal(other Interval) bool {
	return i.start.Equal(other.start) && i.end.Equal(other.end)
}

func (i Interval) String() string {
	return fmt.Sprintf("%s-%s", formatBound(i.start), formatBound(i.end))
}

func formatBound(t time.Time) string {
	switch {
	case t.Equal(MinTime):
		return "min"
	case t.Equal(MaxTime):
		return "max"
	default:
		return t.Format(time.RFC3339)
	}
}
