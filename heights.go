package tablegrid

import "sort"

// RowDescriptor identifies one visible row for windowing purposes.
//
// Estimated is the height assumed before the row has ever been rendered.
// Measured, once known, is authoritative and retained for the row's
// lifetime by the caller (keyed by ID, so it survives sorting and
// filtering). A zero Measured means not measured yet.
type RowDescriptor struct {
	ID        string
	Estimated int
	Measured  int
}

// Height returns the measured height when known, the estimate otherwise.
func (r RowDescriptor) Height() int {
	if r.Measured > 0 {
		return r.Measured
	}
	return r.Estimated
}

// HeightIndex maintains a prefix-sum structure over row heights so the row
// window can binary-search a scroll offset instead of scanning linearly.
//
// The index is owned by the windowing caller and must be mutated only
// through Reset and SetMeasured; both invalidate the affected prefix range
// and bump the version so memoized windows recompute.
//
// Usage:
//
//	idx := tablegrid.NewHeightIndex(rows)
//	win := tablegrid.ComputeWindow(idx, viewport, scroll, overscan)
//	// after first render of row i:
//	idx.SetMeasured(i, actualHeight)
type HeightIndex struct {
	rows   []RowDescriptor
	prefix []int // prefix[i] = summed height of rows [0, i)
	valid  int   // prefix entries [0, valid] are current

	version uint64
}

// NewHeightIndex builds an index over the given rows. The slice is copied.
func NewHeightIndex(rows []RowDescriptor) *HeightIndex {
	idx := &HeightIndex{}
	idx.Reset(rows)
	return idx
}

// Reset replaces the rows, discarding all prefix sums.
func (x *HeightIndex) Reset(rows []RowDescriptor) {
	x.rows = append(x.rows[:0], rows...)
	if cap(x.prefix) < len(rows)+1 {
		x.prefix = make([]int, len(rows)+1)
	} else {
		x.prefix = x.prefix[:len(rows)+1]
	}
	x.prefix[0] = 0
	x.valid = 0
	x.version++
}

// Len returns the row count.
func (x *HeightIndex) Len() int { return len(x.rows) }

// Row returns the descriptor at index i.
func (x *HeightIndex) Row(i int) RowDescriptor { return x.rows[i] }

// Version increments whenever the index contents change. Callers memoizing
// window results key on it.
func (x *HeightIndex) Version() uint64 { return x.version }

// SetMeasured records the real rendered height of row i. Prefix sums at or
// after i are invalidated and rebuilt lazily before the next query, so
// stale sums can never produce wrong paddings or scroll jumps.
func (x *HeightIndex) SetMeasured(i, height int) {
	if i < 0 || i >= len(x.rows) || height <= 0 {
		return
	}
	if x.rows[i].Measured == height {
		return
	}
	x.rows[i].Measured = height
	if x.valid > i {
		x.valid = i
	}
	x.version++
}

// ensure extends the valid prefix range through entry i.
func (x *HeightIndex) ensure(i int) {
	for x.valid < i {
		x.prefix[x.valid+1] = x.prefix[x.valid] + x.rows[x.valid].Height()
		x.valid++
	}
}

// OffsetOf returns the summed height of all rows before index i, i.e. the
// top edge of row i. OffsetOf(Len()) is the total content height.
func (x *HeightIndex) OffsetOf(i int) int {
	if i < 0 {
		return 0
	}
	if i > len(x.rows) {
		i = len(x.rows)
	}
	x.ensure(i)
	return x.prefix[i]
}

// TotalHeight returns the grand total content height.
func (x *HeightIndex) TotalHeight() int { return x.OffsetOf(len(x.rows)) }

// MaxScroll returns the largest meaningful scroll offset for the given
// viewport height. Zero when the content fits.
func (x *HeightIndex) MaxScroll(viewport int) int {
	max := x.TotalHeight() - viewport
	if max < 0 {
		return 0
	}
	return max
}

// findRow returns the smallest index whose cumulative height exceeds
// offset: the row under the scroll position. Binary search over the prefix
// sums keeps scroll recomputation sub-linear at 10k+ rows.
func (x *HeightIndex) findRow(offset int) int {
	n := len(x.rows)
	x.ensure(n)
	i := sort.Search(n, func(i int) bool { return x.prefix[i+1] > offset })
	return i
}
