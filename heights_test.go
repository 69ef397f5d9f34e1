package tablegrid_test

import (
	"fmt"
	"testing"

	"github.com/reqview/tablegrid"
)

func uniformRows(n, height int) []tablegrid.RowDescriptor {
	rows := make([]tablegrid.RowDescriptor, n)
	for i := range rows {
		rows[i] = tablegrid.RowDescriptor{ID: fmt.Sprintf("row-%d", i), Estimated: height}
	}
	return rows
}

func TestHeightIndexOffsets(t *testing.T) {
	idx := tablegrid.NewHeightIndex(uniformRows(10, 40))

	if idx.Len() != 10 {
		t.Fatalf("Len = %d, want 10", idx.Len())
	}
	if got := idx.OffsetOf(0); got != 0 {
		t.Errorf("OffsetOf(0) = %d, want 0", got)
	}
	if got := idx.OffsetOf(3); got != 120 {
		t.Errorf("OffsetOf(3) = %d, want 120", got)
	}
	if got := idx.TotalHeight(); got != 400 {
		t.Errorf("TotalHeight = %d, want 400", got)
	}
	// Out-of-range queries clamp instead of panicking.
	if got := idx.OffsetOf(99); got != 400 {
		t.Errorf("OffsetOf(99) = %d, want 400", got)
	}
	if got := idx.OffsetOf(-1); got != 0 {
		t.Errorf("OffsetOf(-1) = %d, want 0", got)
	}
}

func TestHeightIndexMeasuredOverridesEstimate(t *testing.T) {
	rows := uniformRows(5, 40)
	rows[2].Measured = 100
	idx := tablegrid.NewHeightIndex(rows)

	if got := idx.TotalHeight(); got != 260 {
		t.Errorf("TotalHeight = %d, want 260", got)
	}
	if got := idx.OffsetOf(3); got != 180 {
		t.Errorf("OffsetOf(3) = %d, want 180", got)
	}
}

func TestHeightIndexSetMeasuredInvalidates(t *testing.T) {
	idx := tablegrid.NewHeightIndex(uniformRows(100, 40))

	// Warm the prefix sums, then patch a row in the middle.
	before := idx.TotalHeight()
	if before != 4000 {
		t.Fatalf("TotalHeight = %d, want 4000", before)
	}

	v := idx.Version()
	idx.SetMeasured(50, 90)
	if idx.Version() == v {
		t.Error("SetMeasured must bump the version")
	}
	if got := idx.TotalHeight(); got != 4050 {
		t.Errorf("TotalHeight after measure = %d, want 4050", got)
	}
	if got := idx.OffsetOf(51); got != 2090 {
		t.Errorf("OffsetOf(51) = %d, want 2090", got)
	}
	// Offsets before the patched row are untouched.
	if got := idx.OffsetOf(50); got != 2000 {
		t.Errorf("OffsetOf(50) = %d, want 2000", got)
	}

	// Re-recording the same measurement is a no-op.
	v = idx.Version()
	idx.SetMeasured(50, 90)
	if idx.Version() != v {
		t.Error("recording an unchanged measurement must not bump the version")
	}
}

func TestHeightIndexSetMeasuredIgnoresBadInput(t *testing.T) {
	idx := tablegrid.NewHeightIndex(uniformRows(3, 40))
	idx.SetMeasured(-1, 90)
	idx.SetMeasured(3, 90)
	idx.SetMeasured(1, 0)
	if got := idx.TotalHeight(); got != 120 {
		t.Errorf("TotalHeight = %d, want 120", got)
	}
}

func TestHeightIndexMaxScroll(t *testing.T) {
	idx := tablegrid.NewHeightIndex(uniformRows(10, 40))

	if got := idx.MaxScroll(100); got != 300 {
		t.Errorf("MaxScroll(100) = %d, want 300", got)
	}
	if got := idx.MaxScroll(1000); got != 0 {
		t.Errorf("MaxScroll(1000) = %d, want 0 when content fits", got)
	}
}

func TestHeightIndexReset(t *testing.T) {
	idx := tablegrid.NewHeightIndex(uniformRows(10, 40))
	idx.TotalHeight() // warm

	v := idx.Version()
	idx.Reset(uniformRows(3, 20))
	if idx.Version() == v {
		t.Error("Reset must bump the version")
	}
	if idx.Len() != 3 {
		t.Errorf("Len = %d, want 3", idx.Len())
	}
	if got := idx.TotalHeight(); got != 60 {
		t.Errorf("TotalHeight = %d, want 60", got)
	}
}
