package tablegrid_test

import (
	"errors"
	"testing"

	"github.com/reqview/tablegrid"
)

func TestNewColumnSetValid(t *testing.T) {
	set, err := tablegrid.NewColumnSet([]tablegrid.ColumnSpec{
		{ID: "select", Sizing: tablegrid.SizingFixed, Size: 32, Pin: tablegrid.PinLeft},
		{ID: "method", Sizing: tablegrid.SizingFixed, Size: 100},
		{ID: "url", Sizing: tablegrid.SizingFlex, Size: 1, MinWidth: 150},
	})
	if err != nil {
		t.Fatalf("NewColumnSet returned error: %v", err)
	}
	if set.Len() != 3 {
		t.Errorf("expected 3 columns, got %d", set.Len())
	}
	if set.FixedTotal() != 132 {
		t.Errorf("expected fixed total 132, got %d", set.FixedTotal())
	}
	if ids := set.IDs(); ids[0] != "select" || ids[2] != "url" {
		t.Errorf("unexpected id order: %v", ids)
	}
	if _, ok := set.Column("method"); !ok {
		t.Error("Column(method) not found")
	}
	if _, ok := set.Column("nope"); ok {
		t.Error("Column(nope) should not be found")
	}
}

func TestNewColumnSetRejectsBadSpecs(t *testing.T) {
	cases := []struct {
		name  string
		specs []tablegrid.ColumnSpec
		want  error
	}{
		{
			name: "duplicate id",
			specs: []tablegrid.ColumnSpec{
				{ID: "a", Sizing: tablegrid.SizingFixed, Size: 10},
				{ID: "a", Sizing: tablegrid.SizingFixed, Size: 20},
			},
			want: tablegrid.ErrDuplicateColumn,
		},
		{
			name:  "empty id",
			specs: []tablegrid.ColumnSpec{{Sizing: tablegrid.SizingFixed, Size: 10}},
			want:  tablegrid.ErrEmptyColumnID,
		},
		{
			name:  "zero fixed size",
			specs: []tablegrid.ColumnSpec{{ID: "a", Sizing: tablegrid.SizingFixed}},
			want:  tablegrid.ErrFixedSize,
		},
		{
			name:  "zero flex weight",
			specs: []tablegrid.ColumnSpec{{ID: "a", Sizing: tablegrid.SizingFlex}},
			want:  tablegrid.ErrFlexWeight,
		},
		{
			name:  "negative flex weight",
			specs: []tablegrid.ColumnSpec{{ID: "a", Sizing: tablegrid.SizingFlex, Size: -3}},
			want:  tablegrid.ErrFlexWeight,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tablegrid.NewColumnSet(tc.specs)
			if !errors.Is(err, tc.want) {
				t.Errorf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestMustColumnSetPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustColumnSet should panic on invalid specs")
		}
	}()
	tablegrid.MustColumnSet([]tablegrid.ColumnSpec{{ID: "", Sizing: tablegrid.SizingFixed, Size: 1}})
}
