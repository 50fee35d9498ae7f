package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/marquee/internal/service"
	"github.com/mmcdole/marquee/internal/tui/components"
)

// handleKeyMsg handles keyboard input. Overlays take keys first, then the
// search input, then the focused block, then the page.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.State == StateHelp {
		if key.Matches(msg, Keys.Escape, Keys.Help, Keys.Quit) {
			m.State = StateBrowsing
		}
		return m, nil
	}

	// Route to active overlay if any
	if handled, newModel, cmd := m.routeToOverlay(msg); handled {
		return newModel, cmd
	}

	// The search input swallows every key, arrows included
	if m.Search.Focused() {
		var cmd tea.Cmd
		m.Search, cmd = m.Search.Update(msg)
		return m, cmd
	}

	// Focused block
	if handled, newModel, cmd := m.routeToFocused(msg); handled {
		return newModel, cmd
	}

	// Global keys
	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, Keys.Help):
		m.State = StateHelp
		return m, nil

	case key.Matches(msg, Keys.Search):
		return m, m.Search.Focus()

	case key.Matches(msg, Keys.Filter):
		m.Omnibar.SetSize(m.Width, m.Height)
		return m, m.Omnibar.Show()

	case key.Matches(msg, Keys.Theme):
		return m, ToggleThemeCmd(m.Themes)

	case key.Matches(msg, Keys.Escape):
		if m.Rows.Get(service.SectionSearch) != nil {
			m.removeSearchRow()
		}
		return m, nil

	case key.Matches(msg, Keys.Up):
		m.setFocus(m.Focus - 1)
		return m, nil

	case key.Matches(msg, Keys.Down):
		m.setFocus(m.Focus + 1)
		return m, nil

	case key.Matches(msg, Keys.PageUp):
		m.scrollTo(m.ScrollY - m.bodyHeight())
		return m, nil

	case key.Matches(msg, Keys.PageDown):
		m.scrollTo(m.ScrollY + m.bodyHeight())
		return m, nil

	case key.Matches(msg, Keys.Home):
		m.setFocus(0)
		m.scrollTo(0)
		return m, nil

	case key.Matches(msg, Keys.End):
		m.setFocus(len(m.blocks()) - 1)
		m.scrollTo(m.maxScroll())
		return m, nil

	case key.Matches(msg, Keys.NextTab):
		if m.focusedBlock().kind == blockTabs {
			m.selectTab(m.Tabs.Active() + 1)
		}
		return m, nil

	case key.Matches(msg, Keys.Nav):
		n := int(msg.Runes[0] - '1')
		if n >= 0 && n < len(components.NavLinks) {
			return m, m.jumpTo(components.NavLinks[n].Target)
		}
		return m, nil

	case key.Matches(msg, Keys.Play):
		if row := m.focusedCarousel(); row != nil {
			if item, ok := row.Selected(); ok && item.ID != 0 {
				return m.Update(components.PlayRequestedMsg{Item: item})
			}
		}
		return m, nil
	}

	return m, nil
}

// routeToOverlay routes keys to the detail overlay or the omnibar.
// Returns (handled, model, cmd).
func (m Model) routeToOverlay(msg tea.KeyMsg) (bool, Model, tea.Cmd) {
	if m.Detail.Visible() {
		var cmd tea.Cmd
		m.Detail, cmd, _ = m.Detail.Update(msg)
		return true, m, cmd
	}

	if m.Omnibar.IsVisible() {
		var cmd tea.Cmd
		var chosen bool
		m.Omnibar, cmd, chosen = m.Omnibar.Update(msg)

		if chosen {
			result, ok := m.Omnibar.Selected()
			m.Omnibar.Hide()
			if !ok {
				return true, m, nil
			}
			m.revealSection(result.SectionID)
			next, detailsCmd := m.openDetails(result.Item.Kind, result.Item.ID, result.Item.Title)
			return true, next.(Model), detailsCmd
		}

		if m.Omnibar.IsVisible() && m.Omnibar.QueryChanged() {
			m.updateFilterResults()
		}
		return true, m, cmd
	}

	return false, m, nil
}

// routeToFocused gives the focused hero or row a chance to consume the key
func (m Model) routeToFocused(msg tea.KeyMsg) (bool, Model, tea.Cmd) {
	switch m.focusedBlock().kind {
	case blockHero:
		var cmd tea.Cmd
		var handled bool
		m.Hero, cmd, handled = m.Hero.Update(msg)
		return handled, m, cmd
	default:
		row := m.focusedCarousel()
		if row == nil {
			return false, m, nil
		}
		updated, cmd, handled := row.Update(msg)
		*row = updated
		return handled, m, cmd
	}
}
