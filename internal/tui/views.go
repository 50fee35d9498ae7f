package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/marquee/internal/tui/components"
	"github.com/mmcdole/marquee/internal/tui/styles"
)

// View renders the header, the visible window of the page and the status line
func (m Model) View() string {
	if !m.Ready {
		return "Chargement…"
	}

	if m.State == StateHelp {
		return m.renderHelp()
	}

	// Overlays replace the page
	if m.Detail.Visible() {
		return m.Detail.View()
	}
	if m.Omnibar.IsVisible() {
		return m.Omnibar.View()
	}

	header := m.Header.View(m.Search.View(), m.Themes.Current())
	return lipgloss.JoinVertical(lipgloss.Left, header, m.renderBody(), m.renderFooter())
}

// renderBody renders the page and cuts the scrolled window out of it
func (m Model) renderBody() string {
	var lines []string
	for _, b := range m.blocks() {
		lines = append(lines, fitLines(m.renderBlock(b), b.height)...)
	}

	height := m.bodyHeight()
	start := min(m.ScrollY, len(lines))
	end := min(start+height, len(lines))
	window := lines[start:end]
	for len(window) < height {
		window = append(window, "")
	}
	return strings.Join(window, "\n")
}

// renderBlock renders one block without its trailing blank line
func (m Model) renderBlock(b block) string {
	switch b.kind {
	case blockHero:
		if m.Hero.Len() == 0 {
			return styles.DimStyle.Render("Chargement de l'affiche…")
		}
		return m.Hero.View()
	case blockTabs:
		panel := ""
		if row := m.Panels.Get(m.activePanelID()); row != nil {
			panel = row.View()
		}
		return m.Tabs.View() + "\n" + panel
	case blockRow:
		if row := m.Rows.Get(b.id); row != nil {
			return row.View()
		}
	}
	return ""
}

// fitLines splits s into exactly n lines, cutting or padding with blanks
func fitLines(s string, n int) []string {
	lines := strings.Split(s, "\n")
	if len(lines) > n {
		return lines[:n]
	}
	for len(lines) < n {
		lines = append(lines, "")
	}
	return lines
}

// renderFooter renders a single-line minimal footer
func (m Model) renderFooter() string {
	var left string
	if m.StatusMsg != "" {
		if m.StatusIsErr {
			left = styles.ErrorStyle.Render(m.StatusMsg)
		} else {
			left = styles.DimStyle.Render(m.StatusMsg)
		}
	}

	// Center section: hints for the focused block
	var center string
	switch m.focusedBlock().kind {
	case blockHero:
		center = hint("←/→", "diapositive") + "  " + hint("enter", "lecture") + "  " + hint("i", "infos")
	case blockTabs:
		center = hint("tab", "onglet") + "  " + hint("←/→", "défiler") + "  " + hint("enter", "fiche")
	default:
		center = hint("h/l", "carte") + "  " + hint("←/→", "défiler") + "  " + hint("enter", "fiche")
	}

	// Right side: "? help" hint
	right := hint("?", "aide")

	leftWidth := lipgloss.Width(left)
	centerWidth := lipgloss.Width(center)
	rightWidth := lipgloss.Width(right)

	if leftWidth+centerWidth+rightWidth >= m.Width {
		gap := max(m.Width-leftWidth-rightWidth, 0)
		return left + strings.Repeat(" ", gap) + right
	}

	available := m.Width - leftWidth - rightWidth
	leftPad := (available - centerWidth) / 2
	rightPad := available - centerWidth - leftPad

	return left + strings.Repeat(" ", leftPad) + center + strings.Repeat(" ", rightPad) + right
}

func hint(k, desc string) string {
	return styles.HelpKeyStyle.Render(k) + styles.HelpDescStyle.Render(" "+desc)
}

// renderHelp renders the help screen
func (m Model) renderHelp() string {
	help := `
NAVIGATION                         RANGÉES
  j/k        Section suivante/préc.  ←/→    Page précédente/suivante
  PgUp/PgDn  Défiler la page         h/l    Carte précédente/suivante
  g/G        Haut/bas de page        enter  Ouvrir la fiche
  1-4        ` + navHelp() + `
  tab        Onglet suivant          p      Bande-annonce

RECHERCHE                          AUTRES
  /          Rechercher              t      Changer de thème
  f          Filtrer les titres      esc    Fermer / effacer
                                     q      Quitter

Appuyez sur esc pour revenir...
`

	return lipgloss.Place(m.Width, m.Height,
		lipgloss.Center, lipgloss.Center,
		styles.ModalStyle.Render(help))
}

func navHelp() string {
	labels := make([]string, len(components.NavLinks))
	for i, l := range components.NavLinks {
		labels[i] = l.Label
	}
	return strings.Join(labels, ", ")
}
