package timetable

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/henderiw/timeset/pkg/timespan"
	"k8s.io/apimachinery/pkg/labels"
)

// TimeTable is a claimable table of labeled time slots inside a
// bounding interval. Claims never overlap; touching slots are allowed.
// Slots are keyed by their start instant.
type TimeTable interface {
	Get(start time.Time) (Entry, error)
	Claim(in timespan.Interval, d labels.Set) error
	ClaimFree(d time.Duration, data labels.Set) (timespan.Interval, error)
	Release(start time.Time) error
	Update(start time.Time, d labels.Set) error

	Iterate() *Iterator

	Count() int
	Has(start time.Time) bool
	Covering(at time.Time) (Entry, bool)

	IsFree(in timespan.Interval) bool
	FindFree(d time.Duration) (timespan.Interval, error)
	Free() *timespan.Set
	Claimed() *timespan.Set

	GetAll() Entries
	GetByLabel(selector labels.Selector) Entries
}

// ValidationFn vets a slot before it is claimed. It runs after the
// structural checks (non-degenerate, within bounds, no overlap).
type ValidationFn func(in timespan.Interval) error

func New(bounds timespan.Interval, initEntries Entries, v ValidationFn) (TimeTable, error) {
	if bounds.IsReversed() {
		return nil, fmt.Errorf("bounds %s is reversed", bounds)
	}
	r := &timeTable{
		m:          new(sync.RWMutex),
		entries:    map[int64]Entry{},
		bounds:     bounds,
		validateFn: v,
	}

	var errm error
	for _, e := range initEntries {
		if err := r.add(e.in, e.data, true); err != nil {
			errm = errors.Join(errm, err)
		}
	}
	if errm != nil {
		return nil, errm
	}
	return r, nil
}

type timeTable struct {
	m          *sync.RWMutex
	entries    map[int64]Entry
	bounds     timespan.Interval
	validateFn ValidationFn
}

func key(start time.Time) int64 {
	return start.UnixNano()
}

func (r *timeTable) validate(in timespan.Interval, init bool) error {
	if !in.Start().Before(in.End()) {
		return fmt.Errorf("slot %s is empty or reversed", in)
	}
	if !in.IsWithin(r.bounds) {
		return fmt.Errorf("slot %s does not fit in bounds %s", in, r.bounds)
	}
	for _, e := range r.entries {
		if in.Intersects(e.in) {
			return fmt.Errorf("slot %s overlaps claimed slot %s", in, e.in)
		}
	}
	if r.validateFn != nil && !init {
		if err := r.validateFn(in); err != nil {
			return err
		}
	}
	return nil
}

func (r *timeTable) Get(start time.Time) (Entry, error) {
	r.m.RLock()
	defer r.m.RUnlock()

	e, ok := r.entries[key(start)]
	if !ok {
		return Entry{}, fmt.Errorf("no slot claimed at %s", start.Format(time.RFC3339))
	}
	return e, nil
}

func (r *timeTable) Claim(in timespan.Interval, d labels.Set) error {
	r.m.Lock()
	defer r.m.Unlock()

	return r.add(in, d, false)
}

func (r *timeTable) ClaimFree(d time.Duration, data labels.Set) (timespan.Interval, error) {
	r.m.Lock()
	defer r.m.Unlock()

	in, err := r.findFree(d)
	if err != nil {
		return timespan.Interval{}, err
	}
	// getting an error is unlikely as we have a lock
	if err := r.add(in, data, false); err != nil {
		return timespan.Interval{}, err
	}
	return in, nil
}

func (r *timeTable) Release(start time.Time) error {
	r.m.Lock()
	defer r.m.Unlock()

	k := key(start)
	if _, ok := r.entries[k]; !ok {
		return fmt.Errorf("no slot claimed at %s", start.Format(time.RFC3339))
	}
	delete(r.entries, k)
	return nil
}

func (r *timeTable) Update(start time.Time, d labels.Set) error {
	r.m.Lock()
	defer r.m.Unlock()

	k := key(start)
	e, ok := r.entries[k]
	if !ok {
		return fmt.Errorf("no slot claimed at %s", start.Format(time.RFC3339))
	}
	e.data = d
	r.entries[k] = e
	return nil
}

func (r *timeTable) Iterate() *Iterator {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.iterate()
}

func (r *timeTable) iterate() *Iterator {
	keys := make([]int64, 0, len(r.entries))
	for k := range r.entries {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})

	return &Iterator{current: -1, keys: keys, entries: r.entries}
}

func (r *timeTable) Count() int {
	r.m.RLock()
	defer r.m.RUnlock()

	return len(r.entries)
}

func (r *timeTable) Has(start time.Time) bool {
	r.m.RLock()
	defer r.m.RUnlock()

	_, ok := r.entries[key(start)]
	return ok
}

// Covering returns the claim whose slot includes at, endpoints
// included. When at sits on the boundary of two touching slots the
// earlier one wins.
func (r *timeTable) Covering(at time.Time) (Entry, bool) {
	r.m.RLock()
	defer r.m.RUnlock()

	iter := r.iterate()
	for iter.Next() {
		if iter.Entry().in.Includes(at) {
			return iter.Entry(), true
		}
	}
	return Entry{}, false
}

func (r *timeTable) IsFree(in timespan.Interval) bool {
	r.m.RLock()
	defer r.m.RUnlock()

	if !in.Start().Before(in.End()) || !in.IsWithin(r.bounds) {
		return false
	}
	for _, e := range r.entries {
		if in.Intersects(e.in) {
			return false
		}
	}
	return true
}

func (r *timeTable) FindFree(d time.Duration) (timespan.Interval, error) {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.findFree(d)
}

// findFree returns the earliest unclaimed sub-interval of length d.
func (r *timeTable) findFree(d time.Duration) (timespan.Interval, error) {
	if d <= 0 {
		return timespan.Interval{}, fmt.Errorf("duration %s is not positive", d)
	}
	for _, sp := range r.free().Spans() {
		if sp.Duration() >= d {
			return timespan.NewWithDuration(sp.Start(), d), nil
		}
	}
	return timespan.Interval{}, fmt.Errorf("no free slot of %s found", d)
}

func (r *timeTable) Free() *timespan.Set {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.free()
}

// free is the bounding interval minus all claimed slots.
func (r *timeTable) free() *timespan.Set {
	return timespan.NewSet(r.bounds).Intersect(r.claimed().Inverse())
}

func (r *timeTable) Claimed() *timespan.Set {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.claimed()
}

func (r *timeTable) claimed() *timespan.Set {
	spans := make([]timespan.Interval, 0, len(r.entries))
	for _, e := range r.entries {
		spans = append(spans, e.in)
	}
	return timespan.NewSet(spans...)
}

func (r *timeTable) GetAll() Entries {
	r.m.RLock()
	defer r.m.RUnlock()

	entries := make(Entries, 0, len(r.entries))
	iter := r.iterate()
	for iter.Next() {
		entries = append(entries, iter.Entry())
	}
	return entries
}

func (r *timeTable) GetByLabel(selector labels.Selector) Entries {
	r.m.RLock()
	defer r.m.RUnlock()

	var entries Entries
	iter := r.iterate()
	for iter.Next() {
		if selector.Matches(iter.Entry().Labels()) {
			entries = append(entries, iter.Entry())
		}
	}
	return entries
}

func (r *timeTable) add(in timespan.Interval, d labels.Set, init bool) error {
	if err := r.validate(in, init); err != nil {
		return err
	}
	r.entries[key(in.Start())] = NewEntry(in, d)
	return nil
}
