package tablegrid

// The caches below re-express the source pattern of "recompute on every
// render, memoized by the framework" as explicit input comparison: a result
// is rebuilt only when one of its inputs changed since the previous call.
// They also give hosts the coalescing behavior resize and scroll streams
// need: however many stale measurements arrived, only the latest one is
// ever computed against.

// LayoutCache memoizes ResolveWidths over (column set, container width).
// Options are fixed at construction so they cannot silently change the key.
//
// Usage:
//
//	cache := tablegrid.NewLayoutCache(tablegrid.WithGap(1))
//	layout := cache.Resolve(containerWidth, columns) // recomputes only on change
type LayoutCache struct {
	opts []Option

	set    *ColumnSet
	width  int
	layout Layout
	valid  bool
}

// NewLayoutCache creates a cache that resolves widths with the given
// options.
func NewLayoutCache(opts ...Option) *LayoutCache {
	return &LayoutCache{opts: opts}
}

// Resolve returns the layout for the inputs, recomputing only when the
// column set or container width differs from the previous call.
func (c *LayoutCache) Resolve(containerWidth int, set *ColumnSet) Layout {
	if c.valid && c.set == set && c.width == containerWidth {
		return c.layout
	}
	c.layout = ResolveWidths(containerWidth, set, c.opts...)
	c.set = set
	c.width = containerWidth
	c.valid = true
	return c.layout
}

// Invalidate drops the memoized layout.
func (c *LayoutCache) Invalidate() { c.valid = false }

// WindowCache memoizes ComputeWindow over (index version, viewport, scroll,
// overscan). HeightIndex bumps its version on every mutation, so measured
// height updates and row replacement invalidate automatically.
type WindowCache struct {
	idx      *HeightIndex
	version  uint64
	viewport int
	scroll   int
	overscan int
	window   WindowResult
	valid    bool
}

// Compute returns the window for the inputs, recomputing only on change.
func (c *WindowCache) Compute(idx *HeightIndex, viewport, scroll, overscan int) WindowResult {
	if c.valid && c.idx == idx && c.version == idx.Version() &&
		c.viewport == viewport && c.scroll == scroll && c.overscan == overscan {
		return c.window
	}
	c.window = ComputeWindow(idx, viewport, scroll, overscan)
	c.idx = idx
	c.version = idx.Version()
	c.viewport = viewport
	c.scroll = scroll
	c.overscan = overscan
	c.valid = true

	gridLogger.Debug("window recomputed",
		"start", c.window.Start,
		"end", c.window.End,
		"scroll", scroll,
		"viewport", viewport)
	return c.window
}

// Invalidate drops the memoized window.
func (c *WindowCache) Invalidate() { c.valid = false }
