// Example renders a request-history table with a few thousand rows in the
// terminal: pinned select/method columns on the left, a pinned duration
// column on the right, and a flexible URL column in between.
//
//	go run ./example/
//
// Keys: j/k scroll, space select, enter expand, s sort the current column,
// / filter, q quit.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/reqview/tablegrid"
	"github.com/reqview/tablegrid/tui"
)

const rowCount = 5000

type request struct {
	ID       string
	Method   string
	URL      string
	Status   int
	Duration int // milliseconds
}

var (
	methods = []string{"GET", "GET", "GET", "POST", "PUT", "DELETE", "PATCH"}
	paths   = []string{"/users", "/orders", "/products", "/sessions", "/health", "/metrics", "/search"}
	states  = []int{200, 200, 200, 201, 204, 301, 400, 404, 500, 502}
)

func generate(n int) []request {
	rng := rand.New(rand.NewSource(42))
	rows := make([]request, n)
	for i := range rows {
		rows[i] = request{
			ID:       fmt.Sprintf("req-%05d", i),
			Method:   methods[rng.Intn(len(methods))],
			URL:      fmt.Sprintf("%s/%d", paths[rng.Intn(len(paths))], rng.Intn(10000)),
			Status:   states[rng.Intn(len(states))],
			Duration: 1 + rng.Intn(2500),
		}
	}
	return rows
}

func main() {
	columns := tablegrid.MustColumnSet([]tablegrid.ColumnSpec{
		{ID: "sel", Sizing: tablegrid.SizingFixed, Size: 3, Pin: tablegrid.PinLeft},
		{ID: "method", Sizing: tablegrid.SizingFixed, Size: 7, Pin: tablegrid.PinLeft},
		{ID: "url", Sizing: tablegrid.SizingFlex, Size: 3, MinWidth: 16, DefaultWidth: 40},
		{ID: "status", Sizing: tablegrid.SizingFixed, Size: 6},
		{ID: "time", Sizing: tablegrid.SizingFixed, Size: 8, Pin: tablegrid.PinRight},
	})

	coord := tablegrid.NewCoordinator(func(r request) string { return r.ID })
	coord.SetSorter(func(a, b request, columnID string) bool {
		switch columnID {
		case "method":
			return a.Method < b.Method
		case "url":
			return a.URL < b.URL
		case "status":
			return a.Status < b.Status
		case "time":
			return a.Duration < b.Duration
		}
		return false
	})
	coord.SetMatcher(func(r request, q string) bool {
		return strings.Contains(r.URL, q) ||
			strings.Contains(strings.ToLower(r.Method), strings.ToLower(q)) ||
			strings.Contains(fmt.Sprint(r.Status), q)
	})
	coord.SetRows(generate(rowCount))

	view := tui.New(coord, columns, func(r request, columnID string) string {
		switch columnID {
		case "sel":
			if coord.IsSelected(r.ID) {
				return "[x]"
			}
			return "[ ]"
		case "method":
			return r.Method
		case "url":
			return r.URL
		case "status":
			return fmt.Sprint(r.Status)
		case "time":
			return fmt.Sprintf("%dms", r.Duration)
		}
		return ""
	})
	view.SetDetail(func(r request) string {
		return fmt.Sprintf("curl -X %s 'https://api.example.com%s'  → %d in %dms",
			r.Method, r.URL, r.Status, r.Duration)
	})
	view.SetHeader(func(columnID string) string {
		switch columnID {
		case "sel":
			return ""
		case "time":
			return "elapsed"
		}
		return columnID
	})

	if _, err := tea.NewProgram(view, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
