package tablegrid

// WindowResult is the contiguous index range of rows that must be rendered,
// plus the padding heights standing in for everything outside the range.
//
// Invariant: LeadingPadding + the heights of rows [Start, End) +
// TrailingPadding equals the total content height. Hosts rely on that
// equality to keep the scrollbar stable while rows materialize and vanish.
type WindowResult struct {
	Start int // first row to render (inclusive)
	End   int // one past the last row to render

	LeadingPadding  int // summed height of rows before Start
	TrailingPadding int // summed height of rows from End onward
}

// Count returns the number of rows in the window.
func (w WindowResult) Count() int { return w.End - w.Start }

// Contains reports whether row i falls inside the window.
func (w WindowResult) Contains(i int) bool { return i >= w.Start && i < w.End }

// ComputeWindow determines which rows must be rendered for the given
// viewport height and scroll offset, expanding both bounds by overscan rows
// to reduce flicker during fast scrolling.
//
// A host that cannot report real metrics (viewport <= 0) gets the entire
// row set back with zero paddings: in a host that cannot measure,
// under-rendering is worse than over-rendering. Scroll offsets outside the
// valid range are clamped rather than rejected.
func ComputeWindow(idx *HeightIndex, viewport, scroll, overscan int) WindowResult {
	n := idx.Len()
	if n == 0 {
		return WindowResult{}
	}

	// Degraded host: no usable viewport, render everything.
	if viewport <= 0 {
		return WindowResult{Start: 0, End: n}
	}

	if scroll < 0 {
		scroll = 0
	}
	if max := idx.MaxScroll(viewport); scroll > max {
		scroll = max
	}
	if overscan < 0 {
		overscan = 0
	}

	first := idx.findRow(scroll)

	// Extend until the next row's top edge leaves the viewport.
	end := first + 1
	for end < n && idx.OffsetOf(end) < scroll+viewport {
		end++
	}

	start := first - overscan
	if start < 0 {
		start = 0
	}
	end += overscan
	if end > n {
		end = n
	}

	return WindowResult{
		Start:           start,
		End:             end,
		LeadingPadding:  idx.OffsetOf(start),
		TrailingPadding: idx.TotalHeight() - idx.OffsetOf(end),
	}
}

// ScrollToRow returns the minimal scroll adjustment that brings row i fully
// into the viewport. If the row is already visible the current scroll is
// returned unchanged.
func ScrollToRow(idx *HeightIndex, i, viewport, scroll int) int {
	if i < 0 || i >= idx.Len() {
		return scroll
	}

	top := idx.OffsetOf(i)
	bottom := idx.OffsetOf(i + 1)

	if top < scroll {
		return top
	}
	if bottom > scroll+viewport {
		return bottom - viewport
	}
	return scroll
}
