package tablegrid

// Offsets holds cumulative sticky offsets for pinned columns, keyed by
// column id. Left offsets are measured from the left edge, right offsets
// from the right edge. Columns pinned to neither side have no entry.
type Offsets struct {
	Left  map[string]int
	Right map[string]int
}

// PinnedOffsets converts resolved widths plus pin assignment into sticky
// offsets. The first left-pinned column sits at offset 0; each subsequent
// left-pinned column sits after the widths of the left-pinned columns
// preceding it in declaration order. The right side accumulates the same
// way in reverse.
//
// Header and body cells computed from the same widths and column set yield
// identical offsets: the function is pure and reads nothing but its two
// arguments. Any divergence between header and body is a misalignment bug
// in the caller, not here.
func PinnedOffsets(set *ColumnSet, widths ResolvedWidths) Offsets {
	off := Offsets{
		Left:  make(map[string]int),
		Right: make(map[string]int),
	}

	sum := 0
	for _, c := range set.cols {
		if c.Pin != PinLeft {
			continue
		}
		off.Left[c.ID] = sum
		sum += widths[c.ID]
	}

	sum = 0
	for i := len(set.cols) - 1; i >= 0; i-- {
		c := set.cols[i]
		if c.Pin != PinRight {
			continue
		}
		off.Right[c.ID] = sum
		sum += widths[c.ID]
	}

	return off
}
