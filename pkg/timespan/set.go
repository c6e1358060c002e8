package timespan

import (
	"sort"
	"strings"
	"time"
)

// Set is an arbitrary, possibly disconnected, subset of the timeline,
// held as the minimal sorted sequence of intervals. The spans are
// normalized according to normalize, meaning they are strictly
// increasing, pairwise disjoint and never touching. The implementation
// of every method relies on this property.
type Set struct {
	spans []Interval
}

// NewSet builds a set from arbitrary intervals: degenerate entries are
// dropped, duplicates collapse, overlapping and touching entries merge.
func NewSet(spans ...Interval) *Set {
	return &Set{spans: normalize(spans)}
}

// newNormalized wraps spans that already satisfy the set invariant.
func newNormalized(spans []Interval) *Set {
	return &Set{spans: spans}
}

// Empty returns the canonical empty set.
func Empty() *Set {
	return &Set{}
}

// normalize returns the minimal sorted set of intervals that covers the
// input. The result never aliases the input slice.
func normalize(spans []Interval) []Interval {
	in := make([]Interval, 0, len(spans))
	for _, s := range spans {
		// A zero-length or reversed interval carries no information
		// for a set of periods, drop it.
		if s.isDegenerate() {
			continue
		}
		in = append(in, s)
	}
	if len(in) == 0 {
		return nil
	}
	sort.Slice(in, func(i, j int) bool { return in[i].Less(in[j]) })

	out := make([]Interval, 1, len(in))
	out[0] = in[0]
	for _, s := range in[1:] {
		prev := &out[len(out)-1]
		switch {
		case prev.end.Before(s.start):
			// No overlap and not touching, no merging possible.
			//
			//   prev       s
			// f------t  f-----t
			out = append(out, s)
		case prev.end.Before(s.end):
			// Touching or partial overlap, extend prev.
			//
			//   prev     s
			// f------t
			//     f-----t
			prev.end = s.end
		default:
			// s entirely contained in prev, nothing to do.
			//
			//    prev
			// f--------t
			//  f-----t
			//     s
		}
	}
	return out
}

// Spans returns the minimal and sorted sequence of intervals that
// covers s.
func (s *Set) Spans() []Interval {
	return append([]Interval{}, s.spans...)
}

func (s *Set) Len() int {
	return len(s.spans)
}

func (s *Set) IsEmpty() bool {
	return len(s.spans) == 0
}

// Equal reports whether s and other cover the same instants. Both sets
// are normalized, so this is sequence equality of their spans.
func (s *Set) Equal(other *Set) bool {
	if len(s.spans) != len(other.spans) {
		return false
	}
	for i := range s.spans {
		if !s.spans[i].Equal(other.spans[i]) {
			return false
		}
	}
	return true
}

// Union returns the set of instants present in s, other or both.
func (s *Set) Union(other *Set) *Set {
	merged := make([]Interval, 0, len(s.spans)+len(other.spans))
	merged = append(merged, s.spans...)
	merged = append(merged, other.spans...)
	return &Set{spans: normalize(merged)}
}

// Intersect returns the set of instants present in both s and other.
func (s *Set) Intersect(other *Set) *Set {
	var out []Interval
	a, b := s.spans, other.spans
	for i, j := 0, 0; i < len(a) && j < len(b); {
		start := maxTime(a[i].start, b[j].start)
		end := minTime(a[i].end, b[j].end)
		if start.Before(end) {
			out = append(out, Interval{start: start, end: end})
		}
		// Only advance the span that ends first: the other span may
		// still overlap the next span on the exhausted side.
		if a[i].end.Before(b[j].end) {
			i++
		} else {
			j++
		}
	}
	// Sorted disjoint inputs produce sorted, non-touching overlaps, so
	// out already satisfies the set invariant.
	return newNormalized(out)
}

// Inverse returns the complement of s against the MinTime/MaxTime
// sentinels. Applying it twice restores s.
func (s *Set) Inverse() *Set {
	out := make([]Interval, 0, len(s.spans)+1)
	prev := MinTime
	for _, sp := range s.spans {
		if prev.Before(sp.start) {
			out = append(out, Interval{start: prev, end: sp.start})
		}
		prev = sp.end
	}
	if prev.Before(MaxTime) {
		out = append(out, Interval{start: prev, end: MaxTime})
	}
	return newNormalized(out)
}

// Includes reports whether any span of s includes t, endpoints included.
func (s *Set) Includes(t time.Time) bool {
	i := sort.Search(len(s.spans), func(i int) bool {
		return s.spans[i].start.After(t)
	})
	return i > 0 && s.spans[i-1].Includes(t)
}

// Extent returns the interval between the minimum and maximum instants
// of s, or the zero interval when s is empty.
func (s *Set) Extent() Interval {
	if len(s.spans) == 0 {
		return Interval{}
	}
	return Interval{
		start: s.spans[0].start,
		end:   s.spans[len(s.spans)-1].end,
	}
}

// TotalDuration returns the summed length of all spans of s.
func (s *Set) TotalDuration() time.Duration {
	var total time.Duration
	for _, sp := range s.spans {
		total += sp.Duration()
	}
	return total
}

func (s *Set) String() string {
	ss := make([]string, 0, len(s.spans))
	for _, sp := range s.spans {
		ss = append(ss, sp.String())
	}
	return "[" + strings.Join(ss, " ") + "]"
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}

func maxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}
