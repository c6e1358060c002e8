package timespan

import (
	"errors"
	"fmt"
)

// SetBuilder accumulates additions and removals of intervals and
// produces a normalized Set. The zero value is ready for use.
type SetBuilder struct {
	in   []Interval
	out  []Interval
	errs error
}

// Add adds all instants of i to the builder. Reversed intervals are
// recorded as an error and ignored.
func (b *SetBuilder) Add(i Interval) {
	if i.IsReversed() {
		b.errs = errors.Join(b.errs, fmt.Errorf("add(%s): reversed interval", i))
		return
	}
	b.in = append(b.in, i)
}

// Remove removes all instants of i from the builder. Reversed intervals
// are recorded as an error and ignored.
func (b *SetBuilder) Remove(i Interval) {
	if i.IsReversed() {
		b.errs = errors.Join(b.errs, fmt.Errorf("remove(%s): reversed interval", i))
		return
	}
	b.out = append(b.out, i)
}

// AddSet adds all instants of s to the builder.
func (b *SetBuilder) AddSet(s *Set) {
	if s == nil {
		return
	}
	for _, sp := range s.spans {
		b.Add(sp)
	}
}

// RemoveSet removes all instants of s from the builder.
func (b *SetBuilder) RemoveSet(s *Set) {
	if s == nil {
		return
	}
	for _, sp := range s.spans {
		b.Remove(sp)
	}
}

// Set returns the normalized set described by the builder together with
// any error accumulated while building it. The builder keeps its state
// and may continue to be used; the accumulated error is reset.
func (b *SetBuilder) Set() (*Set, error) {
	set := NewSet(b.in...)
	if len(b.out) > 0 {
		// Subtraction is intersection with the complement of the
		// removals.
		set = set.Intersect(NewSet(b.out...).Inverse())
	}
	errs := b.errs
	b.errs = nil
	return set, errs
}
