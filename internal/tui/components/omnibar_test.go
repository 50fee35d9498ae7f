package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/marquee/internal/domain"
	"github.com/mmcdole/marquee/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filterResults(titles ...string) []service.FilterResult {
	out := make([]service.FilterResult, len(titles))
	for i, title := range titles {
		out[i] = service.FilterResult{FilterItem: service.FilterItem{
			Item:      domain.MediaItem{ID: i + 1, Kind: domain.KindMovie, Title: title},
			SectionID: "popular",
		}}
	}
	return out
}

func TestOmnibar_TypingChangesQuery(t *testing.T) {
	o := NewOmnibar()
	o.SetSize(120, 40)
	o.Show()

	o, _, _ = o.Update(runeKey("d"))
	o, _, _ = o.Update(runeKey("u"))
	assert.Equal(t, "du", o.Query())
	assert.True(t, o.QueryChanged())
	assert.False(t, o.QueryChanged())
}

func TestOmnibar_CursorAndSelect(t *testing.T) {
	o := NewOmnibar()
	o.SetSize(120, 40)
	o.Show()
	o.SetResults(filterResults("Dune", "Dunkerque"))

	o, _, _ = o.Update(tea.KeyMsg{Type: tea.KeyDown})
	o, _, _ = o.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, o.Cursor(), "clamped to the last result")

	o, _, chosen := o.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, chosen)
	sel, ok := o.Selected()
	require.True(t, ok)
	assert.Equal(t, "Dunkerque", sel.Item.Title)

	o, _, _ = o.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, o.Cursor())
}

func TestOmnibar_EnterWithoutResults(t *testing.T) {
	o := NewOmnibar()
	o.Show()
	_, _, chosen := o.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, chosen)
}

func TestOmnibar_EscHides(t *testing.T) {
	o := NewOmnibar()
	o.Show()
	o, _, _ = o.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, o.IsVisible())
	assert.Empty(t, o.View())
}

func TestOmnibar_ViewListsMatches(t *testing.T) {
	o := NewOmnibar()
	o.SetSize(120, 40)
	o.Show()
	o.SetResults(filterResults("Dune"))
	assert.Contains(t, o.View(), "Film")

	o.SetResults(nil)
	o, _, _ = o.Update(runeKey("z"))
	assert.Contains(t, o.View(), "Aucun titre ne correspond")
}
