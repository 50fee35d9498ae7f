package tui

import (
	"github.com/mmcdole/marquee/internal/tui/components"
)

// blockKind identifies what a page block renders
type blockKind int

const (
	blockHero blockKind = iota
	blockTabs
	blockRow
)

// Block heights, including the blank line that separates blocks
const (
	heroBlockHeight = components.HeroHeight + 1
	tabsBlockHeight = components.TabHeight + components.CarouselHeight + 1
	rowBlockHeight  = components.CarouselHeight + 1

	// StatusHeight is the single status line at the bottom
	StatusHeight = 1

	wheelStep = 3
)

// block is one vertically stacked part of the page
type block struct {
	kind   blockKind
	id     string // section ID for rows
	top    int    // first line in page coordinates
	height int
}

// blocks lays out the page: hero, tabs, then the search and genre rows
func (m Model) blocks() []block {
	out := make([]block, 0, 2+m.Rows.Len())
	top := 0
	add := func(kind blockKind, id string, h int) {
		out = append(out, block{kind: kind, id: id, top: top, height: h})
		top += h
	}

	add(blockHero, components.NavHome, heroBlockHeight)
	add(blockTabs, "tabs", tabsBlockHeight)
	for _, id := range m.Rows.IDs() {
		add(blockRow, id, rowBlockHeight)
	}
	return out
}

// pageHeight returns the total height of the page in lines
func (m Model) pageHeight() int {
	bs := m.blocks()
	if len(bs) == 0 {
		return 0
	}
	last := bs[len(bs)-1]
	return last.top + last.height
}

// bodyHeight returns the number of page lines visible under the header
func (m Model) bodyHeight() int {
	return max(m.Height-m.Header.Height()-StatusHeight, 1)
}

// maxScroll returns the largest useful scroll position
func (m Model) maxScroll() int {
	return max(m.pageHeight()-m.bodyHeight(), 0)
}

// scrollTo moves the page, clamped, and refreshes the header state
func (m *Model) scrollTo(y int) {
	m.ScrollY = min(max(y, 0), m.maxScroll())
	m.Header.SetScroll(m.ScrollY)
	// Shrinking the header grows the body, which can lower the maximum
	m.ScrollY = min(m.ScrollY, m.maxScroll())
	m.Header.SetActive(m.spyTarget())
}

// ensureFocusVisible scrolls so the focused block is fully on screen
func (m *Model) ensureFocusVisible() {
	bs := m.blocks()
	if m.Focus < 0 || m.Focus >= len(bs) {
		return
	}
	b := bs[m.Focus]
	y := m.ScrollY
	if b.top < y {
		y = b.top
	}
	if b.top+b.height > y+m.bodyHeight() {
		y = b.top + b.height - m.bodyHeight()
	}
	m.scrollTo(y)
}

// visibleLines returns how many lines of b are inside the body window
func (m Model) visibleLines(b block) int {
	lo := max(b.top, m.ScrollY)
	hi := min(b.top+b.height, m.ScrollY+m.bodyHeight())
	return max(hi-lo, 0)
}

// spyTarget returns the nav target of the block with the most visible lines.
// Ties go to the block higher on the page.
func (m Model) spyTarget() string {
	best, bestLines := -1, 0
	bs := m.blocks()
	for i, b := range bs {
		if n := m.visibleLines(b); n > bestLines {
			best, bestLines = i, n
		}
	}
	if best < 0 {
		return components.NavHome
	}
	return m.navTargetOf(bs[best])
}

// navTargetOf maps a block to the header link that represents it
func (m Model) navTargetOf(b block) string {
	switch b.kind {
	case blockTabs:
		switch m.Tabs.Active() {
		case 1:
			return components.NavSeries
		case 2:
			return components.NavUpcoming
		}
		return components.NavHome
	case blockRow:
		return components.NavGenres
	}
	return components.NavHome
}

// blockAt returns the block under page line y
func (m Model) blockAt(y int) (block, int, bool) {
	for i, b := range m.blocks() {
		if y >= b.top && y < b.top+b.height {
			return b, i, true
		}
	}
	return block{}, -1, false
}

// updateLayout updates component sizes based on window size
func (m *Model) updateLayout() {
	if m.Width == 0 || m.Height == 0 {
		return
	}

	m.Header.SetWidth(m.Width)
	m.Search.SetWidth(min(m.Width/3, 40))
	m.Hero.SetSize(m.Width)
	m.Tabs.SetWidth(m.Width)
	m.Panels.SetSizes(m.Width)
	m.Rows.SetSizes(m.Width)
	m.Detail.SetSize(m.Width, m.Height)
	m.Omnibar.SetSize(m.Width, m.Height)
	m.scrollTo(m.ScrollY)
}
