package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/marquee/internal/domain"
	"github.com/mmcdole/marquee/internal/tui/styles"
)

// OverviewFallback is shown when an item has no overview
const OverviewFallback = "Pas de résumé disponible en français."

// CastLimit is the number of cast members listed in the overlay
const CastLimit = 5

// Layout constants for the overlay
const (
	detailMinWidth  = 40
	detailMaxWidth  = 90
	detailMinHeight = 8
	detailChrome    = 4 // border and vertical padding
	detailHeader    = 3 // title, meta, blank
)

// Detail is the modal overlay showing one title's details.
// The header stays fixed and the body scrolls in a viewport.
type Detail struct {
	viewport viewport.Model
	details  *domain.Details
	title    string
	errText  string
	loading  bool
	visible  bool
	width    int
	height   int
	keys     DetailKeyMap
}

// NewDetail creates a hidden overlay
func NewDetail() Detail {
	return Detail{
		viewport: viewport.New(detailMinWidth, detailMinHeight),
		keys:     DefaultDetailKeyMap(),
	}
}

// SetLoading opens the overlay in its loading state
func (d *Detail) SetLoading(title string) {
	d.visible = true
	d.loading = true
	d.details = nil
	d.errText = ""
	d.title = title
	d.refresh()
}

// Show opens the overlay with loaded details
func (d *Detail) Show(details *domain.Details) {
	d.visible = true
	d.loading = false
	d.errText = ""
	d.details = details
	if details != nil {
		d.title = details.Title
	}
	d.refresh()
	d.viewport.GotoTop()
}

// ShowError keeps the overlay open with an error message
func (d *Detail) ShowError(text string) {
	d.visible = true
	d.loading = false
	d.details = nil
	d.errText = text
	d.refresh()
}

// Close hides the overlay and forgets its content
func (d *Detail) Close() {
	d.visible = false
	d.loading = false
	d.details = nil
	d.errText = ""
	d.title = ""
}

// Visible reports whether the overlay is open
func (d Detail) Visible() bool {
	return d.visible
}

// Loading reports whether details are being fetched
func (d Detail) Loading() bool {
	return d.loading
}

// Details returns the shown details, or nil
func (d Detail) Details() *domain.Details {
	return d.details
}

// SetSize sets the size of the area the overlay is centered in
func (d *Detail) SetSize(width, height int) {
	d.width = width
	d.height = height
	d.refresh()
}

func (d Detail) modalWidth() int {
	return min(max(d.width*3/4, detailMinWidth), detailMaxWidth)
}

func (d Detail) contentWidth() int {
	return d.modalWidth() - detailChrome - 2
}

func (d *Detail) refresh() {
	w := d.contentWidth()
	h := max(d.height-detailChrome-detailHeader-2, detailMinHeight-detailHeader)
	d.viewport.Width = w
	d.viewport.Height = h
	d.viewport.SetContent(d.body(w))
}

// Update handles keys while the overlay is open. Unknown keys scroll the body.
func (d Detail) Update(msg tea.Msg) (Detail, tea.Cmd, bool) {
	if !d.visible {
		return d, nil, false
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, d.keys.Close):
			d.Close()
			return d, emit(CloseOverlayMsg{}), true
		case key.Matches(msg, d.keys.Trailer):
			if d.details == nil {
				return d, nil, true
			}
			url := d.details.TrailerURL()
			if url == "" {
				return d, nil, true
			}
			return d, emit(TrailerRequestedMsg{Title: d.details.Title, URL: url}), true
		}
	}

	var cmd tea.Cmd
	d.viewport, cmd = d.viewport.Update(msg)
	return d, cmd, true
}

// Meta returns "year • genres • rating" with dash fallbacks for year and rating
func Meta(details domain.Details) string {
	rating := details.FormattedRating()
	if rating == "" {
		rating = "—"
	}
	parts := []string{details.YearOrDash()}
	if g := details.GenreNames(); g != "" {
		parts = append(parts, g)
	}
	parts = append(parts, rating)
	return strings.Join(parts, " • ")
}

// Pills returns the runtime, seasons and cast labels that apply to details
func Pills(details domain.Details) []string {
	var pills []string
	if rt := details.FormattedRuntime(); rt != "" {
		pills = append(pills, "Durée : "+rt)
	}
	if details.Kind == domain.KindTV && details.NumberOfSeasons > 0 {
		pills = append(pills, fmt.Sprintf("Saisons : %d", details.NumberOfSeasons))
	}
	if cast := details.TopCast(CastLimit); len(cast) > 0 {
		pills = append(pills, "Casting : "+strings.Join(cast, ", "))
	}
	return pills
}

func (d Detail) body(width int) string {
	switch {
	case d.loading:
		return styles.DimStyle.Render("Chargement…")
	case d.errText != "":
		return styles.ErrorStyle.Render(d.errText)
	case d.details == nil:
		return ""
	}

	wrap := lipgloss.NewStyle().Width(width)
	overview := d.details.Overview
	if overview == "" {
		overview = OverviewFallback
	}

	var b strings.Builder
	b.WriteString(wrap.Render(overview))
	b.WriteString("\n\n")

	for _, p := range Pills(*d.details) {
		b.WriteString(wrap.Render(styles.PillStyle.Render(p)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if d.details.TrailerURL() != "" {
		b.WriteString(styles.AccentStyle.Render("▶ Bande-annonce disponible"))
		b.WriteString(styles.DimStyle.Render("  (p pour lancer)"))
	} else {
		b.WriteString(styles.DimStyle.Render("Pas de bande-annonce."))
	}
	return b.String()
}

// View renders the overlay centered in its area
func (d Detail) View() string {
	if !d.visible {
		return ""
	}
	width := d.contentWidth()

	meta := ""
	if d.details != nil {
		meta = Meta(*d.details)
	}

	var b strings.Builder
	b.WriteString(styles.ModalTitleStyle.Render(styles.Truncate(d.title, width)))
	b.WriteString("\n")
	b.WriteString(styles.SubtitleStyle.Render(styles.Truncate(meta, width)))
	b.WriteString("\n\n")
	b.WriteString(d.viewport.View())

	hint := "esc fermer"
	if !d.viewport.AtBottom() {
		hint = "↓ plus  ·  " + hint
	}
	b.WriteString("\n")
	b.WriteString(styles.DimStyle.Render(hint))

	modal := styles.ModalStyle.Width(d.modalWidth()).Render(b.String())
	return lipgloss.Place(d.width, d.height, lipgloss.Center, lipgloss.Center, modal)
}
