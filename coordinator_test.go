package tablegrid_test

import (
	"strings"
	"testing"

	"github.com/reqview/tablegrid"
)

// request is the row type used by coordinator tests: one entry of a
// request-history table.
type request struct {
	ID     string
	Method string
	URL    string
	Status int
}

func requestID(r request) string { return r.ID }

func requestLess(a, b request, columnID string) bool {
	switch columnID {
	case "method":
		return a.Method < b.Method
	case "url":
		return a.URL < b.URL
	case "status":
		return a.Status < b.Status
	}
	return false
}

func requestMatch(r request, query string) bool {
	return strings.Contains(r.URL, query) || strings.Contains(r.Method, query)
}

func sampleRequests() []request {
	return []request{
		{ID: "r1", Method: "GET", URL: "/users", Status: 200},
		{ID: "r2", Method: "POST", URL: "/users", Status: 201},
		{ID: "r3", Method: "GET", URL: "/orders", Status: 404},
		{ID: "r4", Method: "DELETE", URL: "/orders/7", Status: 204},
		{ID: "r5", Method: "GET", URL: "/health", Status: 500},
	}
}

func newTestCoordinator(opts ...tablegrid.Option) *tablegrid.Coordinator[request] {
	c := tablegrid.NewCoordinator(requestID, opts...)
	c.SetSorter(requestLess)
	c.SetMatcher(requestMatch)
	c.SetRows(sampleRequests())
	return c
}

func visibleIDs(c *tablegrid.Coordinator[request]) []string {
	rows := c.VisibleRows()
	ids := make([]string, len(rows))
	for i, r := range rows {
		ids[i] = r.ID
	}
	return ids
}

func TestCoordinatorVisibleRowsUnfiltered(t *testing.T) {
	c := newTestCoordinator()
	if c.VisibleLen() != 5 {
		t.Fatalf("VisibleLen = %d, want 5", c.VisibleLen())
	}
	// Ingestion order is preserved until a sort is active.
	ids := visibleIDs(c)
	for i, want := range []string{"r1", "r2", "r3", "r4", "r5"} {
		if ids[i] != want {
			t.Fatalf("row %d = %s, want %s", i, ids[i], want)
		}
	}
}

func TestCoordinatorSortCycle(t *testing.T) {
	c := newTestCoordinator()

	c.ToggleSort("status")
	specs := c.SortSpecs()
	if len(specs) != 1 || specs[0] != (tablegrid.SortSpec{ColumnID: "status"}) {
		t.Fatalf("after first toggle: %+v", specs)
	}
	if ids := visibleIDs(c); ids[0] != "r1" || ids[4] != "r5" {
		t.Errorf("ascending status order wrong: %v", ids)
	}

	c.ToggleSort("status")
	specs = c.SortSpecs()
	if len(specs) != 1 || !specs[0].Descending {
		t.Fatalf("after second toggle: %+v", specs)
	}
	if ids := visibleIDs(c); ids[0] != "r5" {
		t.Errorf("descending status order wrong: %v", ids)
	}

	c.ToggleSort("status")
	if len(c.SortSpecs()) != 0 {
		t.Fatalf("third toggle should return to unsorted: %+v", c.SortSpecs())
	}
	if ids := visibleIDs(c); ids[0] != "r1" {
		t.Errorf("unsorted should restore ingestion order: %v", ids)
	}
}

func TestCoordinatorSingleSortReplaces(t *testing.T) {
	c := newTestCoordinator()

	c.ToggleSort("status")
	c.ToggleSort("method")

	specs := c.SortSpecs()
	if len(specs) != 1 || specs[0].ColumnID != "method" || specs[0].Descending {
		t.Fatalf("toggling another column should replace the sort: %+v", specs)
	}
}

func TestCoordinatorMultiSortAppends(t *testing.T) {
	c := newTestCoordinator(tablegrid.WithMultiSort())

	c.ToggleSort("method")
	c.ToggleSort("url")
	specs := c.SortSpecs()
	if len(specs) != 2 || specs[0].ColumnID != "method" || specs[1].ColumnID != "url" {
		t.Fatalf("multi-sort should append: %+v", specs)
	}

	// Secondary key breaks the tie between the three GETs.
	ids := visibleIDs(c)
	if ids[0] != "r4" { // DELETE first
		t.Errorf("expected DELETE first, got %v", ids)
	}
	if ids[1] != "r5" || ids[2] != "r3" || ids[3] != "r1" { // GETs by url
		t.Errorf("secondary url sort wrong: %v", ids)
	}

	// Cycling a multi-sort column through descending removes it.
	c.ToggleSort("method")
	if specs := c.SortSpecs(); !specs[0].Descending {
		t.Fatalf("expected method descending: %+v", specs)
	}
	c.ToggleSort("method")
	specs = c.SortSpecs()
	if len(specs) != 1 || specs[0].ColumnID != "url" {
		t.Fatalf("expected method removed, url kept: %+v", specs)
	}
}

func TestCoordinatorFilterPrunesSelection(t *testing.T) {
	c := newTestCoordinator()

	c.Select("r3")
	c.Select("r1")
	if !c.IsSelected("r3") {
		t.Fatal("r3 should be selected before the filter")
	}

	// Hide everything that is not a GET. r3 survives, nothing changes for
	// it; then hide the orders too and it must be dropped, not masked.
	c.SetFilter("method", func(r request) bool { return r.Method == "GET" })
	if !c.IsSelected("r3") {
		t.Error("r3 is still visible and must stay selected")
	}

	c.SetFilter("url", func(r request) bool { return !strings.HasPrefix(r.URL, "/orders") })
	if c.IsSelected("r3") {
		t.Error("r3 was hidden by the filter and must leave the selection")
	}
	if !c.IsSelected("r1") {
		t.Error("r1 is still visible and must stay selected")
	}

	// Clearing the filter brings the row back but not its selection.
	c.SetFilter("url", nil)
	if c.IsSelected("r3") {
		t.Error("pruned selection must not resurrect when the filter clears")
	}
}

func TestCoordinatorSortDoesNotPruneSelection(t *testing.T) {
	c := newTestCoordinator()

	c.Select("r2")
	c.ToggleSort("url")
	c.ToggleSort("url")
	if !c.IsSelected("r2") {
		t.Error("sort changes must leave the selection alone")
	}
}

func TestCoordinatorSetRowsPrunesVanished(t *testing.T) {
	c := newTestCoordinator()

	c.Select("r5")
	c.SetRows(sampleRequests()[:3])
	if c.IsSelected("r5") {
		t.Error("selection must drop rows that no longer exist")
	}
}

func TestCoordinatorSetRowsPrunesExpansion(t *testing.T) {
	c := newTestCoordinator()

	c.Expand("r5")
	c.Select("r5")
	c.SetRows(sampleRequests()[:3])
	if c.IsExpanded("r5") {
		t.Error("expansion must drop rows that no longer exist")
	}
	if c.IsSelected("r5") {
		t.Error("selection must drop rows that no longer exist")
	}

	// A returning row comes back collapsed.
	c.SetRows(sampleRequests())
	if c.IsExpanded("r5") {
		t.Error("re-added row must not silently re-expand")
	}
}

func TestCoordinatorFilterPrunesExpansion(t *testing.T) {
	c := newTestCoordinator()

	c.Expand("r2")
	c.SetFilter("method", func(r request) bool { return r.Method == "GET" })
	if c.IsExpanded("r2") {
		t.Error("expansion must drop rows hidden by a filter")
	}
	if got := c.ExpandedIDs(); len(got) != 0 {
		t.Errorf("ExpandedIDs = %v, want none", got)
	}
}

func TestCoordinatorQuickFilter(t *testing.T) {
	c := newTestCoordinator()

	c.SetQuickFilter("orders")
	if got := visibleIDs(c); len(got) != 2 || got[0] != "r3" || got[1] != "r4" {
		t.Fatalf("quick filter wrong: %v", got)
	}
	if c.QuickFilter() != "orders" {
		t.Errorf("QuickFilter = %q", c.QuickFilter())
	}

	c.SetQuickFilter("")
	if c.VisibleLen() != 5 {
		t.Errorf("clearing the query should restore all rows, got %d", c.VisibleLen())
	}

	// Without a matcher the query is inert.
	bare := tablegrid.NewCoordinator(requestID)
	bare.SetRows(sampleRequests())
	bare.SetQuickFilter("orders")
	if bare.VisibleLen() != 5 {
		t.Errorf("query without matcher should not filter, got %d", bare.VisibleLen())
	}
}

func TestCoordinatorExpansionExclusive(t *testing.T) {
	c := newTestCoordinator()

	c.Expand("r1")
	c.Expand("r2")

	if c.IsExpanded("r1") {
		t.Error("single-expansion mode must evict the previous row")
	}
	if !c.IsExpanded("r2") {
		t.Error("the newly expanded row must be present")
	}
	if got := c.ExpandedIDs(); len(got) != 1 {
		t.Errorf("exactly one row may be expanded, got %v", got)
	}

	// Collapsing is a plain removal.
	c.Collapse("r2")
	if len(c.ExpandedIDs()) != 0 {
		t.Errorf("collapse left stragglers: %v", c.ExpandedIDs())
	}
}

func TestCoordinatorMultiExpand(t *testing.T) {
	c := newTestCoordinator(tablegrid.WithMultiExpand())

	c.Expand("r1")
	c.Expand("r2")
	if got := c.ExpandedIDs(); len(got) != 2 {
		t.Errorf("multi-expansion should keep both, got %v", got)
	}

	c.ToggleExpand("r1")
	if c.IsExpanded("r1") || !c.IsExpanded("r2") {
		t.Error("toggle should collapse only r1")
	}
}

func TestCoordinatorSelectionAPI(t *testing.T) {
	c := newTestCoordinator()

	c.ToggleSelect("r1")
	c.ToggleSelect("r4")
	c.ToggleSelect("r1")
	if got := c.SelectedIDs(); len(got) != 1 || got[0] != "r4" {
		t.Errorf("SelectedIDs = %v, want [r4]", got)
	}
	if c.SelectionCount() != 1 {
		t.Errorf("SelectionCount = %d", c.SelectionCount())
	}

	c.ClearSelection()
	if c.SelectionCount() != 0 {
		t.Error("ClearSelection left entries behind")
	}
}

func TestCoordinatorDuplicateIDsLastWins(t *testing.T) {
	c := tablegrid.NewCoordinator(requestID)
	c.SetRows([]request{
		{ID: "dup", Method: "GET", URL: "/a"},
		{ID: "dup", Method: "POST", URL: "/b"},
	})

	// Both rows stay in the visible list; id-keyed state is last-wins and
	// nothing crashes.
	if c.VisibleLen() != 2 {
		t.Errorf("VisibleLen = %d, want 2", c.VisibleLen())
	}
	c.Select("dup")
	if !c.IsSelected("dup") {
		t.Error("duplicate id should still be selectable")
	}
	if !c.IsVisible("dup") {
		t.Error("duplicate id should be visible")
	}
}

func TestCoordinatorDescriptors(t *testing.T) {
	c := newTestCoordinator()

	measured := map[string]int{"r2": 3}
	desc := c.Descriptors(
		func(r request) int { return 1 },
		func(id string) int { return measured[id] },
	)

	if len(desc) != 5 {
		t.Fatalf("expected 5 descriptors, got %d", len(desc))
	}
	if desc[0].ID != "r1" || desc[0].Height() != 1 {
		t.Errorf("descriptor 0 = %+v", desc[0])
	}
	if desc[1].ID != "r2" || desc[1].Height() != 3 {
		t.Errorf("measured height should win: %+v", desc[1])
	}

	// Measured heights follow their rows through a sort because they are
	// keyed by id, not position.
	c.ToggleSort("url")
	desc = c.Descriptors(func(r request) int { return 1 }, func(id string) int { return measured[id] })
	for _, d := range desc {
		want := 1
		if d.ID == "r2" {
			want = 3
		}
		if d.Height() != want {
			t.Errorf("descriptor %s height = %d, want %d", d.ID, d.Height(), want)
		}
	}
}

func TestCoordinatorWindowIntegration(t *testing.T) {
	c := newTestCoordinator()

	idx := tablegrid.NewHeightIndex(c.Descriptors(func(request) int { return 40 }, nil))
	win := tablegrid.ComputeWindow(idx, 80, 40, 0)
	if win.Start != 1 || win.End != 3 {
		t.Errorf("window = [%d, %d), want [1, 3)", win.Start, win.End)
	}
	checkCoverage(t, idx, win)
}
