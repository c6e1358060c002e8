package timetable

// Iterator walks the claimed slots in ascending start order.
type Iterator struct {
	current int
	keys    []int64
	entries map[int64]Entry
}

func (r *Iterator) Entry() Entry {
	return r.entries[r.keys[r.current]]
}

func (r *Iterator) Next() bool {
	r.current++
	return r.current < len(r.keys)
}
