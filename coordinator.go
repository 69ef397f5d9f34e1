package tablegrid

import "sort"

// SortSpec is one entry of an ordered sort specification.
type SortSpec struct {
	ColumnID   string
	Descending bool
}

// Coordinator holds sort, filter, selection and expansion state for a table
// and derives the visible, ordered row list that the row window operates
// over. T is the caller's row type; identity comes from the rowID function
// supplied at construction.
//
// All methods are synchronous and must be called from a single goroutine
// (the host's event loop). Derived state is recomputed eagerly inside the
// mutator that changed it, so between any two calls selection never
// references a hidden row and at most one row is expanded in
// single-expansion mode. There is no intermediate frame where those
// guarantees are violated.
//
// Duplicate row ids are a caller contract violation. The coordinator does
// not detect them and will not crash: id-keyed state (selection, expansion)
// is last-wins, and both rows stay in the visible list.
type Coordinator[T any] struct {
	rowID func(T) string
	less  func(a, b T, columnID string) bool
	match func(row T, query string) bool

	multiSort   bool
	multiExpand bool

	rows    []T
	sorts   []SortSpec
	filters map[string]func(T) bool
	query   string

	selected map[string]struct{}
	expanded map[string]struct{}

	visible    []T
	visibleIDs map[string]struct{}
}

// NewCoordinator creates a coordinator for rows of type T. rowID must
// return a stable, unique id per row and must not be nil.
func NewCoordinator[T any](rowID func(T) string, opts ...Option) *Coordinator[T] {
	if rowID == nil {
		panic("tablegrid: NewCoordinator requires a rowID function")
	}
	o := applyOptions(opts)
	return &Coordinator[T]{
		rowID:       rowID,
		multiSort:   GetOpt(o, OptMultiSort),
		multiExpand: GetOpt(o, OptMultiExpand),
		filters:     make(map[string]func(T) bool),
		selected:    make(map[string]struct{}),
		expanded:    make(map[string]struct{}),
		visibleIDs:  make(map[string]struct{}),
	}
}

// SetSorter supplies the per-column comparison used when a sort is active.
// Without one, sort specs are tracked but the row order stays as ingested.
func (c *Coordinator[T]) SetSorter(less func(a, b T, columnID string) bool) {
	c.less = less
	c.recompute(false)
}

// SetMatcher supplies the free-text predicate used by the quick filter.
func (c *Coordinator[T]) SetMatcher(match func(row T, query string) bool) {
	c.match = match
	if c.query != "" {
		c.recompute(true)
	}
}

// SetRows replaces the source rows. Selection and expansion entries whose
// rows no longer exist are dropped.
func (c *Coordinator[T]) SetRows(rows []T) {
	c.rows = append(c.rows[:0], rows...)
	c.recompute(true)
}

// Len returns the total (unfiltered) row count.
func (c *Coordinator[T]) Len() int { return len(c.rows) }

// RowID returns the identity of a row, as computed by the function supplied
// at construction.
func (c *Coordinator[T]) RowID(row T) string { return c.rowID(row) }

// =============================================================================
// Sort
// =============================================================================

// ToggleSort advances the sort state of a column through the tri-state
// cycle unsorted - ascending - descending - unsorted. In single-column mode
// (the default) toggling a different column replaces the current sort; with
// WithMultiSort it appends an additional sort key instead.
func (c *Coordinator[T]) ToggleSort(columnID string) {
	if c.multiSort {
		for i, s := range c.sorts {
			if s.ColumnID != columnID {
				continue
			}
			if !s.Descending {
				c.sorts[i].Descending = true
			} else {
				c.sorts = append(c.sorts[:i], c.sorts[i+1:]...)
			}
			c.recompute(false)
			return
		}
		c.sorts = append(c.sorts, SortSpec{ColumnID: columnID})
		c.recompute(false)
		return
	}

	switch {
	case len(c.sorts) == 0 || c.sorts[0].ColumnID != columnID:
		c.sorts = []SortSpec{{ColumnID: columnID}}
	case !c.sorts[0].Descending:
		c.sorts[0].Descending = true
	default:
		c.sorts = nil
	}
	c.recompute(false)
}

// SortSpecs returns the active sort keys in priority order.
func (c *Coordinator[T]) SortSpecs() []SortSpec {
	out := make([]SortSpec, len(c.sorts))
	copy(out, c.sorts)
	return out
}

// ClearSort removes all sort keys.
func (c *Coordinator[T]) ClearSort() {
	if len(c.sorts) == 0 {
		return
	}
	c.sorts = nil
	c.recompute(false)
}

// =============================================================================
// Filter
// =============================================================================

// SetFilter installs a per-column predicate; a row is visible only if every
// installed predicate accepts it. A nil predicate clears the column's
// filter. Selection and expansion entries hidden by the change are dropped
// in the same update.
func (c *Coordinator[T]) SetFilter(columnID string, pred func(T) bool) {
	if pred == nil {
		if _, ok := c.filters[columnID]; !ok {
			return
		}
		delete(c.filters, columnID)
	} else {
		c.filters[columnID] = pred
	}
	c.recompute(true)
}

// SetQuickFilter sets the free-text filter query. Rows pass when the
// matcher accepts them; with no matcher installed the query is ignored.
func (c *Coordinator[T]) SetQuickFilter(query string) {
	if c.query == query {
		return
	}
	c.query = query
	c.recompute(true)
}

// QuickFilter returns the current free-text query.
func (c *Coordinator[T]) QuickFilter() string { return c.query }

// =============================================================================
// Selection
// =============================================================================

// Select marks a row id as selected. A direct user action: it never
// triggers visibility reconciliation.
func (c *Coordinator[T]) Select(id string) { c.selected[id] = struct{}{} }

// Deselect removes a row id from the selection.
func (c *Coordinator[T]) Deselect(id string) { delete(c.selected, id) }

// ToggleSelect flips the selection state of a row id.
func (c *Coordinator[T]) ToggleSelect(id string) {
	if _, ok := c.selected[id]; ok {
		delete(c.selected, id)
	} else {
		c.selected[id] = struct{}{}
	}
}

// ClearSelection deselects everything.
func (c *Coordinator[T]) ClearSelection() { clear(c.selected) }

// IsSelected reports whether the row id is selected.
func (c *Coordinator[T]) IsSelected(id string) bool {
	_, ok := c.selected[id]
	return ok
}

// SelectedIDs returns the selected row ids in lexical order.
func (c *Coordinator[T]) SelectedIDs() []string {
	ids := make([]string, 0, len(c.selected))
	for id := range c.selected {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// SelectionCount returns the number of selected rows.
func (c *Coordinator[T]) SelectionCount() int { return len(c.selected) }

// =============================================================================
// Expansion
// =============================================================================

// Expand marks a row id as expanded. In single-expansion mode the
// previously expanded row is evicted in the same transition; there is never
// a state where two rows are expanded at once.
func (c *Coordinator[T]) Expand(id string) {
	if !c.multiExpand {
		clear(c.expanded)
	}
	c.expanded[id] = struct{}{}
}

// Collapse removes a row id from the expansion set. A plain removal with no
// side effects on other ids.
func (c *Coordinator[T]) Collapse(id string) { delete(c.expanded, id) }

// ToggleExpand expands the row if collapsed and collapses it if expanded.
func (c *Coordinator[T]) ToggleExpand(id string) {
	if _, ok := c.expanded[id]; ok {
		delete(c.expanded, id)
	} else {
		c.Expand(id)
	}
}

// IsExpanded reports whether the row id is expanded.
func (c *Coordinator[T]) IsExpanded(id string) bool {
	_, ok := c.expanded[id]
	return ok
}

// ExpandedIDs returns the expanded row ids in lexical order.
func (c *Coordinator[T]) ExpandedIDs() []string {
	ids := make([]string, 0, len(c.expanded))
	for id := range c.expanded {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// =============================================================================
// Derived state
// =============================================================================

// VisibleRows returns the post-filter, post-sort row list in render order.
// The returned slice is shared; treat it as read-only.
func (c *Coordinator[T]) VisibleRows() []T { return c.visible }

// VisibleLen returns the number of visible rows.
func (c *Coordinator[T]) VisibleLen() int { return len(c.visible) }

// IsVisible reports whether the row id survived filtering.
func (c *Coordinator[T]) IsVisible(id string) bool {
	_, ok := c.visibleIDs[id]
	return ok
}

// Descriptors derives windowing descriptors for the visible rows. estimate
// supplies the per-row height estimate; measured, when non-nil, reports a
// previously measured height for a row id (zero if none). Keying measured
// heights by id keeps them attached to their rows across sorting and
// filtering.
func (c *Coordinator[T]) Descriptors(estimate func(T) int, measured func(id string) int) []RowDescriptor {
	out := make([]RowDescriptor, len(c.visible))
	for i, row := range c.visible {
		id := c.rowID(row)
		d := RowDescriptor{ID: id, Estimated: estimate(row)}
		if measured != nil {
			d.Measured = measured(id)
		}
		out[i] = d
	}
	return out
}

// passes reports whether a row survives all installed filters.
func (c *Coordinator[T]) passes(row T) bool {
	for _, pred := range c.filters {
		if !pred(row) {
			return false
		}
	}
	if c.query != "" && c.match != nil && !c.match(row, c.query) {
		return false
	}
	return true
}

// recompute rebuilds the visible row list. prune is true for filter-driven
// (and row-replacement) changes, which must drop selection and expansion
// entries that are no longer visible; sort-only changes leave both alone.
// Keeping the two paths distinct is what lets a user selection made in the
// same update cycle survive.
func (c *Coordinator[T]) recompute(prune bool) {
	c.visible = c.visible[:0]
	for _, row := range c.rows {
		if c.passes(row) {
			c.visible = append(c.visible, row)
		}
	}

	if len(c.sorts) > 0 && c.less != nil {
		sorts := c.sorts
		sort.SliceStable(c.visible, func(i, j int) bool {
			a, b := c.visible[i], c.visible[j]
			for _, s := range sorts {
				if c.less(a, b, s.ColumnID) {
					return !s.Descending
				}
				if c.less(b, a, s.ColumnID) {
					return s.Descending
				}
			}
			return false
		})
	}

	clear(c.visibleIDs)
	for _, row := range c.visible {
		c.visibleIDs[c.rowID(row)] = struct{}{}
	}

	if prune {
		for id := range c.selected {
			if _, ok := c.visibleIDs[id]; !ok {
				gridLogger.Debug("dropping hidden row from selection", "id", id)
				delete(c.selected, id)
			}
		}
		for id := range c.expanded {
			if _, ok := c.visibleIDs[id]; !ok {
				gridLogger.Debug("dropping hidden row from expansion", "id", id)
				delete(c.expanded, id)
			}
		}
	}
}
