package zoned

import (
	"time"

	"github.com/henderiw/timeset/pkg/timespan"
)

// Time pairs a point in time with the zone it is observed in. It is a
// value: every operation returns a new Time, comparisons work on the
// absolute instant regardless of zone.
type Time struct {
	t time.Time
}

// New attaches loc to the instant t. The instant is unchanged, only the
// wall-clock reading moves.
func New(t time.Time, loc *time.Location) Time {
	return Time{t: t.In(loc)}
}

// FromWall reinterprets the naive wall-clock reading of t in loc,
// changing the instant it denotes.
func FromWall(t time.Time, loc *time.Location) Time {
	return Time{t: time.Date(
		t.Year(), t.Month(), t.Day(),
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(),
		loc,
	)}
}

// Instant returns the absolute point in time z denotes.
func (z Time) Instant() time.Time { return z.t }

func (z Time) Location() *time.Location { return z.t.Location() }

// In returns z observed in loc, denoting the same instant.
func (z Time) In(loc *time.Location) Time {
	return Time{t: z.t.In(loc)}
}

func (z Time) IsAfter(other Time) bool {
	return z.t.After(other.t)
}

func (z Time) IsBefore(other Time) bool {
	return z.t.Before(other.t)
}

func (z Time) Equal(other Time) bool {
	return z.t.Equal(other.t)
}

func (z Time) Compare(other Time) int {
	return z.t.Compare(other.t)
}

func (z Time) AddDuration(d time.Duration) Time {
	return Time{t: z.t.Add(d)}
}

func (z Time) SubtractDuration(d time.Duration) Time {
	return Time{t: z.t.Add(-d)}
}

// DifferenceFrom returns the duration from other to z.
func (z Time) DifferenceFrom(other Time) time.Duration {
	return z.t.Sub(other.t)
}

// Until returns the interval from z to other on the timeline.
func (z Time) Until(other Time) timespan.Interval {
	return timespan.New(z.t, other.t)
}

func (z Time) IsZero() bool {
	return z.t.IsZero()
}

func (z Time) String() string {
	return z.t.Format(time.RFC3339)
}
