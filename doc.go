/*
Package tablegrid is a column layout and row windowing engine for large
tabular views: network or console history with thousands of rows, a mix of
fixed-width and weighted-flexible columns, and a subset of columns pinned to
an edge.

The engine is pure computation. It renders nothing, owns no event loop and
performs no I/O; a rendering layer feeds it measurements and draws whatever
it returns. The package splits into four parts:

  - ResolveWidths turns column specs plus a measured container width into
    exact pixel widths, with a documented overflow policy when space runs
    out. Fixed columns keep their declared size on every code path.
  - PinnedOffsets turns resolved widths plus pin assignment into cumulative
    sticky offsets, identical for header and body by construction.
  - ComputeWindow turns per-row height estimates or measurements plus a
    scroll offset into the contiguous row range worth rendering, with
    overscan and leading/trailing paddings that preserve total content
    height exactly.
  - Coordinator manages sort, filter, selection and expansion state and
    derives the visible, ordered row list the window operates over.

# Quick Start

	columns := tablegrid.MustColumnSet([]tablegrid.ColumnSpec{
	    {ID: "select", Sizing: tablegrid.SizingFixed, Size: 32, Pin: tablegrid.PinLeft},
	    {ID: "method", Sizing: tablegrid.SizingFixed, Size: 100},
	    {ID: "url", Sizing: tablegrid.SizingFlex, Size: 1, MinWidth: 150},
	})

	coord := tablegrid.NewCoordinator(func(r Request) string { return r.ID })
	coord.SetRows(requests)

	layout := tablegrid.ResolveWidths(containerWidth, columns)
	offsets := tablegrid.PinnedOffsets(columns, layout.Widths)

	idx := tablegrid.NewHeightIndex(coord.Descriptors(rowHeight, nil))
	win := tablegrid.ComputeWindow(idx, viewportHeight, scrollOffset, 5)

	for i := win.Start; i < win.End; i++ {
	    // draw coord.VisibleRows()[i] using layout.Widths and offsets
	}

Every entry point is a pure function of its arguments (the Coordinator and
the caches mutate only their own state), so recomputation is driven entirely
by the host: re-resolve on resize, re-window on scroll, re-derive on state
change. LayoutCache and WindowCache memoize the two hot paths so a burst of
resize or scroll events costs one recomputation for the latest measurement.

The tui subpackage is a terminal adapter that wires the engine into a
Bubble Tea program; example/ runs it over a request-history dataset.
*/
package tablegrid
