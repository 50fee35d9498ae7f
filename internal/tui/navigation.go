package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/marquee/internal/service"
	"github.com/mmcdole/marquee/internal/tui/components"
)

// firstRowBlock is the index of the first search or genre row
const firstRowBlock = 2

// focusedBlock returns the focused block
func (m Model) focusedBlock() block {
	bs := m.blocks()
	if m.Focus < 0 || m.Focus >= len(bs) {
		return block{kind: blockHero}
	}
	return bs[m.Focus]
}

// activePanelID returns the section shown by the active tab
func (m Model) activePanelID() string {
	ids := service.FixedSections()
	return ids[m.Tabs.Active()%len(ids)]
}

// focusedCarousel returns the row that has keyboard focus, or nil on the hero
func (m Model) focusedCarousel() *components.Carousel {
	b := m.focusedBlock()
	switch b.kind {
	case blockTabs:
		return m.Panels.Get(m.activePanelID())
	case blockRow:
		return m.Rows.Get(b.id)
	}
	return nil
}

// setFocus moves keyboard focus to block i, clamped, and scrolls it into view
func (m *Model) setFocus(i int) {
	n := len(m.blocks())
	m.Focus = min(max(i, 0), n-1)

	m.Hero.Blur()
	m.Panels.BlurAll()
	m.Rows.BlurAll()

	switch b := m.focusedBlock(); b.kind {
	case blockHero:
		m.Hero.Focus()
	default:
		if row := m.focusedCarousel(); row != nil {
			row.Focus()
		}
	}
	m.ensureFocusVisible()
}

// selectTab activates tab i (wrapping) and moves row focus along with it
func (m *Model) selectTab(i int) {
	n := m.Tabs.Len()
	m.Tabs.Select(((i % n) + n) % n)
	if m.focusedBlock().kind == blockTabs {
		m.setFocus(m.Focus)
	}
	m.Header.SetActive(m.spyTarget())
}

// jumpTo focuses the block a header link points at and scrolls it to the top
func (m *Model) jumpTo(target string) tea.Cmd {
	switch target {
	case components.NavHome:
		m.setFocus(0)
	case components.NavSeries:
		m.selectTab(1)
		m.setFocus(1)
	case components.NavUpcoming:
		m.selectTab(2)
		m.setFocus(1)
	case components.NavGenres:
		if m.Rows.Len() == 0 {
			return m.setStatus("Les genres sont en cours de chargement…", false)
		}
		m.setFocus(firstRowBlock)
	default:
		return nil
	}

	m.scrollTo(m.focusedBlock().top)
	m.Header.SetActive(target)
	return nil
}

// revealSection focuses the block that holds a section's cards
func (m *Model) revealSection(sectionID string) {
	if sectionID == components.NavHome {
		m.setFocus(0)
		return
	}
	for i, id := range service.FixedSections() {
		if id == sectionID {
			m.selectTab(i)
			m.setFocus(1)
			return
		}
	}
	if idx := m.Rows.Index(sectionID); idx >= 0 {
		m.setFocus(firstRowBlock + idx)
	}
}

// ensureSearchRow returns the search row, creating it above the genre rows.
// Its title follows the query and it is reset to the loading state.
func (m *Model) ensureSearchRow(query string) *components.Carousel {
	title := service.SearchTitle(query)
	row := m.Rows.Get(service.SectionSearch)
	if row == nil {
		c := components.NewCarousel(service.SectionSearch, title, m.opts.SmoothScroll)
		row = m.Rows.Insert(0, &c)
		row.SetSize(m.Width)
		if m.Focus >= firstRowBlock {
			m.Focus++
		}
		m.setFocus(m.Focus)
	}
	if row.Title() != title {
		row.SetTitle(title)
		row.SetLoading()
	}
	return row
}

// removeSearchRow drops the search row and keeps focus on the same block
func (m *Model) removeSearchRow() {
	idx := m.Rows.Index(service.SectionSearch)
	if idx < 0 {
		return
	}
	m.Rows.Remove(service.SectionSearch)
	if m.Focus > firstRowBlock+idx {
		m.Focus--
	}
	m.setFocus(m.Focus)
	m.scrollTo(m.ScrollY)
}

// handleMouseMsg handles wheel scrolling, hero hover and clicks
func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.Detail.Visible() || m.Omnibar.IsVisible() || m.State == StateHelp {
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.scrollTo(m.ScrollY - wheelStep)
		return m, nil
	case tea.MouseButtonWheelDown:
		m.scrollTo(m.ScrollY + wheelStep)
		return m, nil
	}

	headerH := m.Header.Height()
	b, idx, relY := block{}, -1, 0
	if msg.Y >= headerH && msg.Y < headerH+m.bodyHeight() {
		pageY := msg.Y - headerH + m.ScrollY
		b, idx, _ = m.blockAt(pageY)
		relY = pageY - b.top
	}

	// Pointer enter and leave on the hero
	hoverCmd := m.Hero.Hover(idx >= 0 && b.kind == blockHero)

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, hoverCmd
	}

	if msg.Y < headerH {
		if link, ok := m.Header.Click(msg.X, msg.Y); ok {
			return m, tea.Batch(hoverCmd, m.jumpTo(link.Target))
		}
		return m, hoverCmd
	}
	if idx < 0 {
		return m, hoverCmd
	}

	if m.Search.Focused() {
		m.Search.Blur()
	}
	if idx != m.Focus {
		m.setFocus(idx)
	}

	var cmd tea.Cmd
	switch b.kind {
	case blockHero:
		cmd = m.Hero.Click(msg.X, relY)
	case blockTabs:
		if relY == 0 {
			if tab := m.Tabs.Click(msg.X); tab >= 0 {
				m.selectTab(tab)
			}
		} else if relY >= components.TabHeight {
			cmd = m.Panels.Get(m.activePanelID()).Click(msg.X, relY-components.TabHeight)
		}
	case blockRow:
		if row := m.Rows.Get(b.id); row != nil {
			cmd = row.Click(msg.X, relY)
		}
	}
	return m, tea.Batch(hoverCmd, cmd)
}
