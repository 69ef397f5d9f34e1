package tablegrid

// ResolvedWidths maps column id to a pixel width.
//
// Invariant: for every fixed column the resolved width equals its spec size,
// regardless of container width, overflow state or any other column. This is
// the load-bearing contract of the resolver; every code path upholds it.
type ResolvedWidths map[string]int

// Layout is the result of resolving a column set against a container width.
type Layout struct {
	Widths ResolvedWidths

	// Ready is false when the container had no measured width yet. The
	// widths are then provisional (fixed sizes plus a placeholder per flex
	// column) and must not be treated as load-bearing for real layout.
	Ready bool

	// Overflow reports that minimum required widths exceed the container.
	// The host should allow horizontal scrolling; widths are not compressed
	// below their minimums.
	Overflow bool

	// Total is the sum of all widths plus inter-column gaps. When Ready and
	// not Overflow it equals the container width exactly.
	Total int
}

// ResolveWidths converts column specs plus a measured container width into
// exact pixel widths.
//
// The algorithm is two-pass: fixed columns take their declared size, then
// the remaining space (minus gaps) is split across flex columns by weight,
// floor-divided and clamped to per-column minimums. If the clamped result no
// longer fits, the layout is in overflow: minimums are authoritative, no
// further compression is attempted, and flex columns with a DefaultWidth
// revert to it instead of staying pinned at the squeezed ideal. When there
// is no overflow, integer rounding drift is folded into the last flex column
// so the total matches the container exactly and no trailing 1px gap or
// overlap survives.
//
// ResolveWidths is a pure function of its inputs. Configuration errors are
// impossible here; NewColumnSet already rejected them.
func ResolveWidths(containerWidth int, set *ColumnSet, opts ...Option) Layout {
	o := applyOptions(opts)
	gap := GetOpt(o, OptGap)
	minDefault := GetOpt(o, OptMinWidth)
	placeholder := GetOpt(o, OptPlaceholderWidth)

	n := set.Len()
	widths := make(ResolvedWidths, n)

	gapTotal := 0
	if n > 1 {
		gapTotal = gap * (n - 1)
	}

	// Unmeasured container: provisional layout, flagged not ready.
	if containerWidth <= 0 {
		total := gapTotal
		for _, c := range set.cols {
			w := c.Size
			if c.Sizing == SizingFlex {
				w = placeholder
			}
			widths[c.ID] = w
			total += w
		}
		return Layout{Widths: widths, Ready: false, Total: total}
	}

	availableForFlex := containerWidth - set.fixedTotal - gapTotal
	if availableForFlex < 0 {
		availableForFlex = 0
	}

	// First pass: fixed columns are exact, flex columns get their weighted
	// share floor-divided and clamped up to their minimum.
	total := gapTotal
	lastFlex := ""
	for _, c := range set.cols {
		if c.Sizing == SizingFixed {
			widths[c.ID] = c.Size
			total += c.Size
			continue
		}
		min := c.MinWidth
		if min == 0 {
			min = minDefault
		}
		w := availableForFlex * c.Size / set.flexWeight
		if w < min {
			w = min
		}
		widths[c.ID] = w
		total += w
		lastFlex = c.ID
	}

	if total > containerWidth {
		// Overflow: clamped minimums stand; columns with a declared natural
		// width revert to it for horizontal-scroll hosts.
		total = gapTotal
		for _, c := range set.cols {
			if c.Sizing == SizingFlex && c.DefaultWidth > 0 {
				min := c.MinWidth
				if min == 0 {
					min = minDefault
				}
				w := c.DefaultWidth
				if w < min {
					w = min
				}
				widths[c.ID] = w
			}
			total += widths[c.ID]
		}
		return Layout{Widths: widths, Ready: true, Overflow: true, Total: total}
	}

	// No overflow: fold rounding drift into the last flex column so the
	// total reports the container width exactly. With zero flex columns
	// there is nothing to absorb the drift and the total simply stays.
	if lastFlex != "" {
		if drift := containerWidth - total; drift != 0 {
			widths[lastFlex] += drift
			total += drift
		}
	}

	return Layout{Widths: widths, Ready: true, Total: total}
}
