package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/marquee/internal/tui/styles"
)

// TabLabels are the tabs of the popular block in order
var TabLabels = []string{"Populaire", "Séries", "À venir"}

// TabHeight is the rendered height of the tab bar
const TabHeight = 2

const tabGap = 1

// Tabs is a tablist with an underline indicator matching the active tab
type Tabs struct {
	labels     []string
	active     int
	width      int
	indicatorX int
	indicatorW int
}

// NewTabs creates a tab bar with the first tab active
func NewTabs(labels ...string) Tabs {
	if len(labels) == 0 {
		labels = TabLabels
	}
	t := Tabs{labels: labels}
	t.measure()
	return t
}

// Active returns the index of the active tab
func (t Tabs) Active() int {
	return t.active
}

// Len returns the number of tabs
func (t Tabs) Len() int {
	return len(t.labels)
}

// Select activates tab i when it exists
func (t *Tabs) Select(i int) bool {
	if i < 0 || i >= len(t.labels) || i == t.active {
		return false
	}
	t.active = i
	t.measure()
	return true
}

// Next activates the following tab, wrapping
func (t *Tabs) Next() {
	t.Select((t.active + 1) % len(t.labels))
}

// Prev activates the preceding tab, wrapping
func (t *Tabs) Prev() {
	t.Select((t.active - 1 + len(t.labels)) % len(t.labels))
}

// SetWidth records the available width and recomputes the indicator
func (t *Tabs) SetWidth(width int) {
	t.width = width
	t.measure()
}

// Indicator returns the x offset and width of the underline
func (t Tabs) Indicator() (x, w int) {
	return t.indicatorX, t.indicatorW
}

func tabWidth(label string) int {
	return lipgloss.Width(label) + 2 // TabStyle padding
}

func (t *Tabs) measure() {
	x := 0
	for i, label := range t.labels {
		w := tabWidth(label)
		if i == t.active {
			t.indicatorX = x
			t.indicatorW = w
		}
		x += w + tabGap
	}
	if t.width > 0 && t.indicatorX+t.indicatorW > t.width {
		t.indicatorW = max(t.width-t.indicatorX, 0)
	}
}

// Click returns the tab at column x of the label line, or -1
func (t Tabs) Click(x int) int {
	left := 0
	for i, label := range t.labels {
		w := tabWidth(label)
		if x >= left && x < left+w {
			return i
		}
		left += w + tabGap
	}
	return -1
}

// View renders the labels and the indicator line
func (t Tabs) View() string {
	parts := make([]string, len(t.labels))
	for i, label := range t.labels {
		style := styles.TabStyle
		if i == t.active {
			style = styles.TabActiveStyle
		}
		parts[i] = style.Render(label)
	}
	bar := strings.Join(parts, strings.Repeat(" ", tabGap))

	indicator := strings.Repeat(" ", t.indicatorX) + styles.IndicatorStyle.Render(strings.Repeat("━", t.indicatorW))
	return bar + "\n" + indicator
}
