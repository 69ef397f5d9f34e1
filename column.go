package tablegrid

import "fmt"

// Sizing selects how the width resolver treats a column.
type Sizing uint8

const (
	// SizingFixed columns resolve to exactly Size pixels, unconditionally.
	// Neither container width, other columns, nor overflow may change it.
	SizingFixed Sizing = iota

	// SizingFlex columns share the space left over after fixed columns and
	// gaps, proportionally to Size (a relative weight).
	SizingFlex
)

// Pin assigns a column to a sticky edge.
type Pin uint8

const (
	PinNone  Pin = iota // Normal column, scrolls with content
	PinLeft             // Sticky offset from the left edge
	PinRight            // Sticky offset from the right edge
)

// ColumnSpec declares a single column.
//
// ID must be unique within a ColumnSet and stable across renders; it is the
// key for every derived map (widths, offsets). For SizingFixed, Size is the
// exact pixel width. For SizingFlex, Size is a relative weight and must be
// positive; MinWidth (0 = DefaultMinWidth) bounds compression, and
// DefaultWidth, when set, is the preferred width under overflow so the
// column reverts to a natural size for horizontal-scroll hosts instead of
// being squeezed to its minimum.
type ColumnSpec struct {
	ID           string
	Sizing       Sizing
	Size         int
	MinWidth     int // Flex only; 0 means DefaultMinWidth
	DefaultWidth int // Flex only; 0 means none
	Pin          Pin
}

// ColumnSet is a validated, ordered collection of columns.
//
// Construction is the fail-fast boundary: NewColumnSet rejects duplicate or
// empty ids, non-positive fixed sizes and non-positive flex weights, so the
// per-frame algorithms (ResolveWidths, PinnedOffsets) stay total and never
// have to report configuration errors mid-layout.
type ColumnSet struct {
	cols       []ColumnSpec
	index      map[string]int
	fixedTotal int
	flexWeight int
	flexCount  int
}

// NewColumnSet validates specs and builds an immutable column set.
// The input slice is copied; callers may reuse it.
func NewColumnSet(specs []ColumnSpec) (*ColumnSet, error) {
	set := &ColumnSet{
		cols:  make([]ColumnSpec, len(specs)),
		index: make(map[string]int, len(specs)),
	}
	copy(set.cols, specs)

	for i, c := range set.cols {
		if c.ID == "" {
			return nil, fmt.Errorf("column %d: %w", i, ErrEmptyColumnID)
		}
		if _, dup := set.index[c.ID]; dup {
			return nil, fmt.Errorf("column %q: %w", c.ID, ErrDuplicateColumn)
		}
		set.index[c.ID] = i

		switch c.Sizing {
		case SizingFixed:
			if c.Size <= 0 {
				return nil, fmt.Errorf("column %q: %w", c.ID, ErrFixedSize)
			}
			set.fixedTotal += c.Size
		case SizingFlex:
			if c.Size <= 0 {
				return nil, fmt.Errorf("column %q: %w", c.ID, ErrFlexWeight)
			}
			set.flexWeight += c.Size
			set.flexCount++
		default:
			return nil, fmt.Errorf("column %q: unknown sizing %d", c.ID, c.Sizing)
		}

		if c.MinWidth < 0 || c.DefaultWidth < 0 {
			return nil, fmt.Errorf("column %q: negative width bound", c.ID)
		}
	}

	return set, nil
}

// MustColumnSet is NewColumnSet that panics on invalid specs.
// Intended for static column definitions in callers.
func MustColumnSet(specs []ColumnSpec) *ColumnSet {
	set, err := NewColumnSet(specs)
	if err != nil {
		panic(err)
	}
	return set
}

// Len returns the number of columns.
func (s *ColumnSet) Len() int { return len(s.cols) }

// Columns returns the columns in declaration order.
// The returned slice is shared; treat it as read-only.
func (s *ColumnSet) Columns() []ColumnSpec { return s.cols }

// Column returns the spec for id, if present.
func (s *ColumnSet) Column(id string) (ColumnSpec, bool) {
	i, ok := s.index[id]
	if !ok {
		return ColumnSpec{}, false
	}
	return s.cols[i], true
}

// IDs returns the column ids in declaration order.
func (s *ColumnSet) IDs() []string {
	ids := make([]string, len(s.cols))
	for i, c := range s.cols {
		ids[i] = c.ID
	}
	return ids
}

// FixedTotal returns the summed width of all fixed columns.
func (s *ColumnSet) FixedTotal() int { return s.fixedTotal }
