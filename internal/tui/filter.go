package tui

import (
	"github.com/mmcdole/marquee/internal/domain"
)

// indexSection adds a section's cards to the local title filter
func (m *Model) indexSection(section domain.Section) {
	m.Filter.Index(section)
	m.Logger.Debug("section indexed", "section", section.ID, "items", len(section.Items), "indexed", m.Filter.Len())
}

// updateFilterResults re-runs the filter for the omnibar query
func (m *Model) updateFilterResults() {
	m.Omnibar.SetResults(m.Filter.Find(m.Omnibar.Query(), filterLimit))
}
