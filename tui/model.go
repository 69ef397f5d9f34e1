// Package tui renders a tablegrid-driven table in the terminal.
//
// It is the rendering layer the engine itself deliberately lacks: a Bubble
// Tea model feeds window size and key events into the coordinator, resolves
// column widths against the terminal width (one cell = one pixel), and
// draws only the rows the window computation asks for.
package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/reqview/tablegrid"
)

// OptOverscan sets how many extra rows the view renders beyond the strictly
// visible range. Defined through the engine's option extension point.
var OptOverscan = tablegrid.NewOptKey("tui.overscan", 4)

// CellFunc produces the text of one cell.
type CellFunc[T any] func(row T, columnID string) string

// DetailFunc produces the extra line shown under an expanded row.
type DetailFunc[T any] func(row T) string

// chrome is the number of non-body lines: header, filter and status.
const chrome = 3

// Model is a Bubble Tea model around a tablegrid Coordinator.
type Model[T any] struct {
	coord *tablegrid.Coordinator[T]
	set   *tablegrid.ColumnSet
	cell  CellFunc[T]

	detail DetailFunc[T]
	header func(columnID string) string

	layouts  *tablegrid.LayoutCache
	windows  tablegrid.WindowCache
	heights  *tablegrid.HeightIndex
	measured map[string]int

	width, height int
	scroll        int
	cursor        int // index into the visible row list
	cursorCol     int
	overscan      int

	filtering bool
	filter    textinput.Model

	keys   KeyMap
	styles Styles
}

// New creates a table view over an already-configured coordinator and
// column set. Engine options (WithGap, OptOverscan, ...) are applied to the
// width resolution and windowing of this view.
func New[T any](coord *tablegrid.Coordinator[T], set *tablegrid.ColumnSet, cell CellFunc[T], opts ...tablegrid.Option) *Model[T] {
	input := textinput.New()
	input.Placeholder = "filter rows"
	input.Prompt = "/"

	m := &Model[T]{
		coord:    coord,
		set:      set,
		cell:     cell,
		header:   func(columnID string) string { return columnID },
		layouts:  tablegrid.NewLayoutCache(append([]tablegrid.Option{tablegrid.WithGap(1)}, opts...)...),
		heights:  tablegrid.NewHeightIndex(nil),
		measured: make(map[string]int),
		overscan: tablegrid.ApplyAndGet(opts, OptOverscan),
		filter:   input,
		keys:     DefaultKeyMap(),
		styles:   DefaultStyles(),
	}
	m.refresh()
	return m
}

// SetDetail installs the renderer for expanded rows. Expanded rows occupy
// two lines once a detail renderer exists.
func (m *Model[T]) SetDetail(f DetailFunc[T]) { m.detail = f }

// SetHeader overrides the header text per column (default: the column id).
func (m *Model[T]) SetHeader(f func(columnID string) string) { m.header = f }

// SetStyles replaces the view's styles.
func (m *Model[T]) SetStyles(s Styles) { m.styles = s }

// Coordinator exposes the underlying coordinator for host-driven mutations.
func (m *Model[T]) Coordinator() *tablegrid.Coordinator[T] { return m.coord }

// refresh re-derives the height index from the coordinator's visible rows.
// Call after any coordinator mutation that can change the visible list or
// a row's rendered height.
func (m *Model[T]) refresh() {
	m.heights.Reset(m.coord.Descriptors(
		func(row T) int {
			if m.detail != nil && m.coord.IsExpanded(m.coord.RowID(row)) {
				return 2
			}
			return 1
		},
		func(id string) int { return m.measured[id] },
	))
	if n := m.coord.VisibleLen(); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.clampScroll()
}

func (m *Model[T]) bodyHeight() int {
	h := m.height - chrome
	if h < 0 {
		h = 0
	}
	return h
}

func (m *Model[T]) clampScroll() {
	if max := m.heights.MaxScroll(m.bodyHeight()); m.scroll > max {
		m.scroll = max
	}
	if m.scroll < 0 {
		m.scroll = 0
	}
}

// Init implements tea.Model.
func (m *Model[T]) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m *Model[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.filter.Width = msg.Width - 4
		m.clampScroll()
		return m, nil

	case tea.KeyMsg:
		if m.filtering {
			return m.updateFilter(msg)
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m *Model[T]) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		m.filtering = false
		m.filter.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.coord.SetQuickFilter(m.filter.Value())
	m.refresh()
	return m, cmd
}

func (m *Model[T]) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.PageUp):
		m.scroll -= m.bodyHeight()
		m.clampScroll()
	case key.Matches(msg, m.keys.PageDown):
		m.scroll += m.bodyHeight()
		m.clampScroll()
	case key.Matches(msg, m.keys.Home):
		m.cursor = 0
		m.scroll = 0
	case key.Matches(msg, m.keys.End):
		if n := m.coord.VisibleLen(); n > 0 {
			m.cursor = n - 1
		}
		m.scroll = m.heights.MaxScroll(m.bodyHeight())

	case key.Matches(msg, m.keys.Left):
		if m.cursorCol > 0 {
			m.cursorCol--
		}
	case key.Matches(msg, m.keys.Right):
		if m.cursorCol < m.set.Len()-1 {
			m.cursorCol++
		}

	case key.Matches(msg, m.keys.Sort):
		m.coord.ToggleSort(m.set.IDs()[m.cursorCol])
		m.refresh()
	case key.Matches(msg, m.keys.Select):
		if id, ok := m.cursorID(); ok {
			m.coord.ToggleSelect(id)
		}
	case key.Matches(msg, m.keys.Expand):
		if id, ok := m.cursorID(); ok {
			m.coord.ToggleExpand(id)
			m.refresh()
		}
	case key.Matches(msg, m.keys.Filter):
		m.filtering = true
		m.filter.Focus()
	}
	return m, nil
}

func (m *Model[T]) moveCursor(delta int) {
	n := m.coord.VisibleLen()
	if n == 0 {
		return
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= n {
		m.cursor = n - 1
	}
	m.scroll = tablegrid.ScrollToRow(m.heights, m.cursor, m.bodyHeight(), m.scroll)
}

func (m *Model[T]) cursorID() (string, bool) {
	rows := m.coord.VisibleRows()
	if m.cursor < 0 || m.cursor >= len(rows) {
		return "", false
	}
	return m.coord.RowID(rows[m.cursor]), true
}

// renderOrder returns the columns in draw order: left-pinned by offset,
// then unpinned in declaration order, then right-pinned from the inside
// out. The sticky offsets decide the order, so header and body agree by
// construction.
func renderOrder(set *tablegrid.ColumnSet, off tablegrid.Offsets) []tablegrid.ColumnSpec {
	var left, mid, right []tablegrid.ColumnSpec
	for _, c := range set.Columns() {
		switch c.Pin {
		case tablegrid.PinLeft:
			left = append(left, c)
		case tablegrid.PinRight:
			right = append(right, c)
		default:
			mid = append(mid, c)
		}
	}
	sort.SliceStable(left, func(i, j int) bool { return off.Left[left[i].ID] < off.Left[left[j].ID] })
	sort.SliceStable(right, func(i, j int) bool { return off.Right[right[i].ID] > off.Right[right[j].ID] })
	out := make([]tablegrid.ColumnSpec, 0, set.Len())
	out = append(out, left...)
	out = append(out, mid...)
	out = append(out, right...)
	return out
}

// styleCells renders the fitted cells with the base style, substituting the
// pinned style for pinned columns, and joins them clipped to the terminal
// width. Highlighted rows do not come through here; they are styled as one
// line so the highlight spans the gaps too.
func (m *Model[T]) styleCells(parts []string, cols []tablegrid.ColumnSpec, base lipgloss.Style) string {
	remaining := m.width
	var b strings.Builder
	for j, c := range cols {
		if j > 0 {
			if remaining < 1 {
				break
			}
			b.WriteString(" ")
			remaining--
		}
		cell := parts[j]
		if runewidth.StringWidth(cell) > remaining {
			cell = runewidth.Truncate(cell, remaining, "…")
		}
		st := base
		if c.Pin != tablegrid.PinNone {
			st = m.styles.Pinned
		}
		b.WriteString(st.Render(cell))
		remaining -= runewidth.StringWidth(cell)
		if remaining <= 0 {
			break
		}
	}
	if remaining > 0 {
		b.WriteString(base.Render(strings.Repeat(" ", remaining)))
	}
	return b.String()
}

// fitCell truncates or pads text to exactly w display cells.
func fitCell(s string, w int) string {
	if w <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) > w {
		s = runewidth.Truncate(s, w, "…")
	}
	return runewidth.FillRight(s, w)
}

// View implements tea.Model.
func (m *Model[T]) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	layout := m.layouts.Resolve(m.width, m.set)
	off := tablegrid.PinnedOffsets(m.set, layout.Widths)
	cols := renderOrder(m.set, off)

	var b strings.Builder
	b.WriteString(m.renderHeader(cols, layout))
	b.WriteByte('\n')
	m.renderBody(&b, cols, layout)
	b.WriteString(m.renderFilterLine())
	b.WriteByte('\n')
	b.WriteString(m.renderStatus(layout))
	return b.String()
}

func (m *Model[T]) renderHeader(cols []tablegrid.ColumnSpec, layout tablegrid.Layout) string {
	arrows := make(map[string]string)
	for _, s := range m.coord.SortSpecs() {
		if s.Descending {
			arrows[s.ColumnID] = "▼"
		} else {
			arrows[s.ColumnID] = "▲"
		}
	}

	parts := make([]string, len(cols))
	for i, c := range cols {
		label := m.header(c.ID)
		if a, ok := arrows[c.ID]; ok {
			label += a
		}
		parts[i] = fitCell(label, layout.Widths[c.ID])
	}
	return m.styles.Header.Render(fitCell(strings.Join(parts, " "), m.width))
}

// renderBody draws the windowed rows into b, clipping to the viewport and
// blank-filling whatever the window does not cover.
func (m *Model[T]) renderBody(b *strings.Builder, cols []tablegrid.ColumnSpec, layout tablegrid.Layout) {
	bodyHeight := m.bodyHeight()
	rows := m.coord.VisibleRows()
	win := m.windows.Compute(m.heights, bodyHeight, m.scroll, m.overscan)

	lines := make([]string, bodyHeight)
	for i := win.Start; i < win.End && i < len(rows); i++ {
		top := m.heights.OffsetOf(i) - m.scroll
		rendered := m.renderRow(rows[i], i, cols, layout)

		// Record the real height once rendered; the index invalidates its
		// prefix sums from this row on.
		if id := m.coord.RowID(rows[i]); m.measured[id] != len(rendered) {
			m.measured[id] = len(rendered)
			m.heights.SetMeasured(i, len(rendered))
		}

		for j, line := range rendered {
			y := top + j
			if y >= 0 && y < bodyHeight {
				lines[y] = line
			}
		}
	}
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
}

func (m *Model[T]) renderRow(row T, i int, cols []tablegrid.ColumnSpec, layout tablegrid.Layout) []string {
	id := m.coord.RowID(row)

	parts := make([]string, len(cols))
	for j, c := range cols {
		parts[j] = fitCell(m.cell(row, c.ID), layout.Widths[c.ID])
	}

	var line string
	switch {
	case i == m.cursor:
		line = m.styles.Cursor.Render(fitCell(strings.Join(parts, " "), m.width))
	case m.coord.IsSelected(id):
		line = m.styles.Selected.Render(fitCell(strings.Join(parts, " "), m.width))
	default:
		line = m.styleCells(parts, cols, m.styles.Cell)
	}
	out := []string{line}

	if m.detail != nil && m.coord.IsExpanded(id) {
		out = append(out, m.styles.Detail.Render(fitCell("  "+m.detail(row), m.width)))
	}
	return out
}

func (m *Model[T]) renderFilterLine() string {
	if m.filtering {
		return m.styles.Filter.Render(m.filter.View())
	}
	if q := m.coord.QuickFilter(); q != "" {
		return m.styles.Filter.Render("/" + q)
	}
	return m.styles.Status.Render("press / to filter · s to sort · space to select · enter to expand")
}

func (m *Model[T]) renderStatus(layout tablegrid.Layout) string {
	status := fmt.Sprintf("%d/%d rows · %d selected",
		m.coord.VisibleLen(), m.coord.Len(), m.coord.SelectionCount())
	if layout.Overflow {
		status += " · columns overflow →"
	}
	if !layout.Ready {
		status += " · measuring…"
	}
	ids := m.set.IDs()
	if m.cursorCol >= 0 && m.cursorCol < len(ids) {
		status += " · col: " + ids[m.cursorCol]
	}
	return m.styles.Status.Render(fitCell(status, m.width))
}
