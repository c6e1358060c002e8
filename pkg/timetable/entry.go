package timetable

import (
	"fmt"

	"github.com/henderiw/timeset/pkg/timespan"
	"k8s.io/apimachinery/pkg/labels"
)

// Entry is one claimed slot: an interval plus the labels attached to
// the claim.
type Entry struct {
	in   timespan.Interval
	data labels.Set
}

type Entries []Entry

func NewEntry(in timespan.Interval, d labels.Set) Entry {
	return Entry{
		in:   in,
		data: d,
	}
}

func (e Entry) Interval() timespan.Interval { return e.in }

func (e Entry) Labels() labels.Set { return e.data }

func (e Entry) String() string {
	return fmt.Sprintf("%s %s", e.in, e.data)
}
