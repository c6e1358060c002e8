package timespan_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"

	"github.com/henderiw/timeset/pkg/timespan"
)

var cmpIntervals = cmp.Options{
	cmp.Comparer(func(a, b timespan.Interval) bool {
		return a.Equal(b)
	}),
	cmpopts.EquateEmpty(),
}

// checkInvariant asserts the set invariant: spans strictly increasing,
// pairwise disjoint and never touching.
func checkInvariant(t *testing.T, s *timespan.Set) {
	t.Helper()
	spans := s.Spans()
	for i := 1; i < len(spans); i++ {
		if !spans[i-1].End().Before(spans[i].Start()) {
			t.Errorf("spans %s and %s overlap or touch", spans[i-1], spans[i])
		}
	}
	for _, sp := range spans {
		if !sp.Start().Before(sp.End()) {
			t.Errorf("span %s is degenerate", sp)
		}
	}
}

func TestNewSet(t *testing.T) {
	cases := map[string]struct {
		in       []timespan.Interval
		expected []timespan.Interval
	}{
		"Empty": {
			in:       nil,
			expected: nil,
		},
		"DropsZeroLength": {
			in: []timespan.Interval{
				timespan.New(day(0), day(0)),
				timespan.New(day(1), day(1)),
				timespan.New(day(1), day(2)),
			},
			expected: []timespan.Interval{
				timespan.New(day(1), day(2)),
			},
		},
		"DropsReversed": {
			in: []timespan.Interval{
				timespan.New(day(3), day(1)),
				timespan.New(day(4), day(5)),
			},
			expected: []timespan.Interval{
				timespan.New(day(4), day(5)),
			},
		},
		"MergesTouching": {
			in: []timespan.Interval{
				timespan.New(day(0), day(0)),
				timespan.New(day(2), day(3)),
				timespan.New(day(1), day(2)),
			},
			expected: []timespan.Interval{
				timespan.New(day(1), day(3)),
			},
		},
		"MergesOverlapping": {
			in: []timespan.Interval{
				timespan.New(day(0), day(2)),
				timespan.New(day(1), day(4)),
			},
			expected: []timespan.Interval{
				timespan.New(day(0), day(4)),
			},
		},
		"DropsDuplicates": {
			in: []timespan.Interval{
				timespan.New(day(0), day(1)),
				timespan.New(day(0), day(1)),
			},
			expected: []timespan.Interval{
				timespan.New(day(0), day(1)),
			},
		},
		"KeepsGaps": {
			in: []timespan.Interval{
				timespan.New(day(2), day(3)),
				timespan.New(day(0), day(1)),
			},
			expected: []timespan.Interval{
				timespan.New(day(0), day(1)),
				timespan.New(day(2), day(3)),
			},
		},
		"ContainedSpan": {
			in: []timespan.Interval{
				timespan.New(day(0), day(5)),
				timespan.New(day(1), day(2)),
			},
			expected: []timespan.Interval{
				timespan.New(day(0), day(5)),
			},
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got := timespan.NewSet(tc.in...)
			checkInvariant(t, got)
			if diff := cmp.Diff(tc.expected, got.Spans(), cmpIntervals); diff != "" {
				t.Errorf("-want +got:\n%s", diff)
			}
		})
	}
}

func TestNewSetOrderInvariance(t *testing.T) {
	spans := []timespan.Interval{
		timespan.New(day(4), day(6)),
		timespan.New(day(0), day(1)),
		timespan.New(day(1), day(2)),
		timespan.New(day(5), day(7)),
		timespan.New(day(3), day(3)),
	}
	want := timespan.NewSet(spans...)
	// Rotate through every cyclic permutation of the input.
	for i := 1; i < len(spans); i++ {
		rotated := append(append([]timespan.Interval{}, spans[i:]...), spans[:i]...)
		got := timespan.NewSet(rotated...)
		assert.True(t, got.Equal(want), "rotation %d: want %s, got %s", i, want, got)
	}
}

func TestNewSetIdempotence(t *testing.T) {
	s := timespan.NewSet(
		timespan.New(day(0), day(2)),
		timespan.New(day(1), day(3)),
		timespan.New(day(5), day(6)),
	)
	again := timespan.NewSet(s.Spans()...)
	assert.True(t, s.Equal(again))
}

func TestUnion(t *testing.T) {
	cases := map[string]struct {
		a        *timespan.Set
		b        *timespan.Set
		expected *timespan.Set
	}{
		"TouchingMerge": {
			a:        timespan.NewSet(timespan.New(day(0), day(1))),
			b:        timespan.NewSet(timespan.New(day(1), day(2))),
			expected: timespan.NewSet(timespan.New(day(0), day(2))),
		},
		"GapKept": {
			a: timespan.NewSet(timespan.New(day(0), day(1))),
			b: timespan.NewSet(timespan.New(day(2), day(3))),
			expected: timespan.NewSet(
				timespan.New(day(0), day(1)),
				timespan.New(day(2), day(3)),
			),
		},
		"EmptyIdentity": {
			a:        timespan.NewSet(timespan.New(day(0), day(1))),
			b:        timespan.Empty(),
			expected: timespan.NewSet(timespan.New(day(0), day(1))),
		},
		"Interleaved": {
			a: timespan.NewSet(
				timespan.New(day(0), day(2)),
				timespan.New(day(4), day(6)),
			),
			b: timespan.NewSet(timespan.New(day(1), day(5))),
			expected: timespan.NewSet(
				timespan.New(day(0), day(6)),
			),
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got := tc.a.Union(tc.b)
			checkInvariant(t, got)
			assert.True(t, got.Equal(tc.expected), "want %s, got %s", tc.expected, got)
			// Commutative.
			assert.True(t, tc.b.Union(tc.a).Equal(tc.expected))
		})
	}
}

func TestUnionIdempotence(t *testing.T) {
	s := timespan.NewSet(
		timespan.New(day(0), day(1)),
		timespan.New(day(3), day(4)),
	)
	assert.True(t, s.Union(s).Equal(s))
}

func TestIntersect(t *testing.T) {
	cases := map[string]struct {
		a        *timespan.Set
		b        *timespan.Set
		expected *timespan.Set
	}{
		// Neither side fully contains the other: the sweep must advance
		// the cursor whose span ends first or it never terminates.
		"PartialOverlapBothSides": {
			a: timespan.NewSet(
				timespan.New(day(0), day(2)),
				timespan.New(day(4), day(6)),
			),
			b: timespan.NewSet(timespan.New(day(1), day(5))),
			expected: timespan.NewSet(
				timespan.New(day(1), day(2)),
				timespan.New(day(4), day(5)),
			),
		},
		"EmptyAbsorbs": {
			a:        timespan.Empty(),
			b:        timespan.NewSet(timespan.New(day(2), day(3))),
			expected: timespan.Empty(),
		},
		"TouchingIsEmpty": {
			a:        timespan.NewSet(timespan.New(day(0), day(1))),
			b:        timespan.NewSet(timespan.New(day(1), day(2))),
			expected: timespan.Empty(),
		},
		"Contained": {
			a:        timespan.NewSet(timespan.New(day(0), day(5))),
			b:        timespan.NewSet(timespan.New(day(1), day(2))),
			expected: timespan.NewSet(timespan.New(day(1), day(2))),
		},
		"ManyAgainstOne": {
			a: timespan.NewSet(
				timespan.New(day(0), day(1)),
				timespan.New(day(2), day(3)),
				timespan.New(day(4), day(5)),
			),
			b: timespan.NewSet(timespan.New(day(0), day(9))),
			expected: timespan.NewSet(
				timespan.New(day(0), day(1)),
				timespan.New(day(2), day(3)),
				timespan.New(day(4), day(5)),
			),
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got := tc.a.Intersect(tc.b)
			checkInvariant(t, got)
			assert.True(t, got.Equal(tc.expected), "want %s, got %s", tc.expected, got)
			// Commutative.
			assert.True(t, tc.b.Intersect(tc.a).Equal(tc.expected))
		})
	}
}

func TestInverse(t *testing.T) {
	cases := map[string]struct {
		in       *timespan.Set
		expected *timespan.Set
	}{
		"EmptyIsAllTime": {
			in:       timespan.Empty(),
			expected: timespan.NewSet(timespan.All()),
		},
		"SingleSpan": {
			in: timespan.NewSet(timespan.New(day(1), day(2))),
			expected: timespan.NewSet(
				timespan.New(timespan.MinTime, day(1)),
				timespan.New(day(2), timespan.MaxTime),
			),
		},
		"TouchesMin": {
			in: timespan.NewSet(timespan.New(timespan.MinTime, day(1))),
			expected: timespan.NewSet(
				timespan.New(day(1), timespan.MaxTime),
			),
		},
		"TouchesMax": {
			in: timespan.NewSet(timespan.New(day(1), timespan.MaxTime)),
			expected: timespan.NewSet(
				timespan.New(timespan.MinTime, day(1)),
			),
		},
		"TwoSpans": {
			in: timespan.NewSet(
				timespan.New(day(1), day(2)),
				timespan.New(day(3), day(4)),
			),
			expected: timespan.NewSet(
				timespan.New(timespan.MinTime, day(1)),
				timespan.New(day(2), day(3)),
				timespan.New(day(4), timespan.MaxTime),
			),
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got := tc.in.Inverse()
			checkInvariant(t, got)
			assert.True(t, got.Equal(tc.expected), "want %s, got %s", tc.expected, got)
			// Double complement restores the input.
			assert.True(t, got.Inverse().Equal(tc.in))
		})
	}
}

func TestDeMorgan(t *testing.T) {
	a := timespan.NewSet(
		timespan.New(day(0), day(2)),
		timespan.New(day(4), day(6)),
	)
	b := timespan.NewSet(timespan.New(day(1), day(5)))

	got := a.Inverse().Union(b.Inverse()).Inverse()
	want := a.Intersect(b)
	assert.True(t, got.Equal(want), "want %s, got %s", want, got)
}

func TestSetIncludes(t *testing.T) {
	s := timespan.NewSet(
		timespan.New(day(0), day(1)),
		timespan.New(day(3), day(5)),
	)
	cases := map[string]struct {
		at       time.Time
		expected bool
	}{
		"FirstSpanStart": {at: day(0), expected: true},
		"FirstSpanEnd":   {at: day(1), expected: true},
		"InGap":          {at: day(2), expected: false},
		"SecondSpan":     {at: day(4), expected: true},
		"AfterAll":       {at: day(6), expected: false},
		"BeforeAll":      {at: day(0).Add(-time.Hour), expected: false},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, s.Includes(tc.at))
		})
	}
}

func TestExtentAndDuration(t *testing.T) {
	s := timespan.NewSet(
		timespan.New(day(0), day(1)),
		timespan.New(day(3), day(5)),
	)
	assert.True(t, s.Extent().Equal(timespan.New(day(0), day(5))))
	assert.Equal(t, 72*time.Hour, s.TotalDuration())

	assert.True(t, timespan.Empty().Extent().IsZero())
	assert.Equal(t, time.Duration(0), timespan.Empty().TotalDuration())
}
