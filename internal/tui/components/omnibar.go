package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/marquee/internal/service"
	"github.com/mmcdole/marquee/internal/tui/styles"
)

// OmnibarMaxResults is the number of matches listed at once
const OmnibarMaxResults = 10

// Omnibar is the fuzzy filter modal over every loaded card
type Omnibar struct {
	input     textinput.Model
	results   []service.FilterResult
	cursor    int
	visible   bool
	width     int
	height    int
	prevQuery string // Track query changes for real-time filtering
	keys      FilterKeyMap
}

// NewOmnibar creates a hidden omnibar
func NewOmnibar() Omnibar {
	ti := textinput.New()
	ti.Placeholder = "Filtrer les titres affichés…"
	ti.CharLimit = 100
	ti.Width = 40
	ti.Prompt = "› "
	ti.PromptStyle = styles.FilterPromptStyle
	ti.PlaceholderStyle = styles.DimStyle

	return Omnibar{input: ti, keys: DefaultFilterKeyMap()}
}

// Show makes the omnibar visible with an empty query
func (o *Omnibar) Show() tea.Cmd {
	o.visible = true
	o.input.SetValue("")
	o.input.PromptStyle = styles.FilterPromptStyle
	o.input.PlaceholderStyle = styles.DimStyle
	o.results = nil
	o.cursor = 0
	o.prevQuery = ""
	return o.input.Focus()
}

// Hide hides the omnibar
func (o *Omnibar) Hide() {
	o.visible = false
	o.input.Blur()
}

// IsVisible returns true if the omnibar is visible
func (o Omnibar) IsVisible() bool {
	return o.visible
}

// SetResults replaces the matches
func (o *Omnibar) SetResults(results []service.FilterResult) {
	o.results = results
	o.cursor = 0
}

// Results returns the current matches
func (o Omnibar) Results() []service.FilterResult {
	return o.results
}

// SetSize updates the component dimensions
func (o *Omnibar) SetSize(width, height int) {
	o.width = width
	o.height = height
	o.input.Width = max(o.modalWidth()-10, 10)
}

// Query returns the current filter query
func (o Omnibar) Query() string {
	return o.input.Value()
}

// QueryChanged returns true if the query changed since last check and updates prevQuery
func (o *Omnibar) QueryChanged() bool {
	current := o.input.Value()
	if current != o.prevQuery {
		o.prevQuery = current
		return true
	}
	return false
}

// Selected returns the highlighted match
func (o Omnibar) Selected() (service.FilterResult, bool) {
	if o.cursor < 0 || o.cursor >= len(o.results) {
		return service.FilterResult{}, false
	}
	return o.results[o.cursor], true
}

// Cursor returns the highlighted row
func (o Omnibar) Cursor() int {
	return o.cursor
}

// Update handles keys while visible. The bool reports that a match was chosen.
func (o Omnibar) Update(msg tea.Msg) (Omnibar, tea.Cmd, bool) {
	if !o.visible {
		return o, nil, false
	}

	var cmd tea.Cmd
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, o.keys.Escape):
			o.Hide()
			return o, nil, false
		case key.Matches(msg, o.keys.Enter):
			return o, nil, len(o.results) > 0
		case key.Matches(msg, o.keys.Down):
			if o.cursor < min(len(o.results), OmnibarMaxResults)-1 {
				o.cursor++
			}
			return o, nil, false
		case key.Matches(msg, o.keys.Up):
			if o.cursor > 0 {
				o.cursor--
			}
			return o, nil, false
		}
	}

	o.input, cmd = o.input.Update(msg)
	return o, cmd, false
}

func (o Omnibar) modalWidth() int {
	return min(max(o.width*2/3, 40), 80)
}

// View renders the modal centered in its area
func (o Omnibar) View() string {
	if !o.visible {
		return ""
	}
	modalWidth := o.modalWidth()

	var b strings.Builder
	b.WriteString(styles.ModalTitleStyle.Render("Filtrer"))
	b.WriteString("\n\n")
	b.WriteString(o.input.View())
	b.WriteString("\n\n")
	o.renderResults(&b, modalWidth)

	content := lipgloss.NewStyle().Width(modalWidth - 4).Render(b.String())
	modal := styles.ModalStyle.Width(modalWidth).Render(content)

	return lipgloss.Place(o.width, o.height, lipgloss.Center, lipgloss.Center, modal)
}

func (o Omnibar) renderResults(b *strings.Builder, modalWidth int) {
	if len(o.results) == 0 {
		if strings.TrimSpace(o.input.Value()) != "" {
			b.WriteString(styles.DimStyle.Render("Aucun titre ne correspond"))
		}
		return
	}

	count := min(len(o.results), OmnibarMaxResults)
	for i := 0; i < count; i++ {
		r := o.results[i]

		style := styles.NormalItemStyle
		if i == o.cursor {
			style = styles.SelectedItemStyle
		}

		title := r.Item.Title
		matched := r.MatchedIndexes
		if limit := modalWidth - 25; len([]rune(title)) > limit {
			title = styles.Truncate(title, limit)
			matched = nil
		}

		b.WriteString(styles.DimBadgeStyle.Render(r.Item.Kind.Label()))
		b.WriteString(" ")
		bare := style.Padding(0)
		b.WriteString(bare.Render(" ") + styles.RenderHighlighted(title, matched, bare) + bare.Render(" "))
		b.WriteString(styles.DimStyle.Render(" (" + r.Item.YearOrDash() + ")"))
		b.WriteString("\n")
	}

	if len(o.results) > OmnibarMaxResults {
		b.WriteString(styles.DimStyle.Render(fmt.Sprintf("… et %d de plus", len(o.results)-OmnibarMaxResults)))
	}
}
