package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/marquee/internal/domain"
	"github.com/mmcdole/marquee/internal/tui/styles"
)

// Brand is the application name shown in the header
const Brand = "MARQUEE"

// Header heights
const (
	HeaderHeight       = 3
	HeaderShrunkHeight = 1
)

// Navigation targets
const (
	NavHome     = "hero"
	NavSeries   = "series"
	NavUpcoming = "upcoming"
	NavGenres   = "genres"
)

// NavLink is one header link and the page block it scrolls to
type NavLink struct {
	Label  string
	Target string
}

// NavLinks are the header links in order. Keys 1 to 4 select them.
var NavLinks = []NavLink{
	{Label: "Accueil", Target: NavHome},
	{Label: "Séries", Target: NavSeries},
	{Label: "Nouveautés", Target: NavUpcoming},
	{Label: "Genres", Target: NavGenres},
}

const navGap = 2

// Header is the top bar. It shrinks to one line once the page is scrolled.
type Header struct {
	active int
	shrunk bool
	width  int
}

// NewHeader creates an expanded header with the first link active
func NewHeader() Header {
	return Header{}
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetScroll shrinks the header when the page scroll is past the top
func (h *Header) SetScroll(scrollY int) {
	h.shrunk = scrollY > 0
}

// Shrunk reports whether the header is in its compact form
func (h Header) Shrunk() bool {
	return h.shrunk
}

// Height returns the rendered height
func (h Header) Height() int {
	if h.shrunk {
		return HeaderShrunkHeight
	}
	return HeaderHeight
}

// SetActive marks the link for target as active. Unknown targets are ignored.
func (h *Header) SetActive(target string) {
	for i, l := range NavLinks {
		if l.Target == target {
			h.active = i
			return
		}
	}
}

// Active returns the active link
func (h Header) Active() NavLink {
	return NavLinks[h.active]
}

func (h Header) navStart() int {
	return lipgloss.Width(Brand) + 3
}

// Click returns the link under column x of the first line
func (h Header) Click(x, y int) (NavLink, bool) {
	if y != 0 {
		return NavLink{}, false
	}
	left := h.navStart()
	for _, l := range NavLinks {
		w := lipgloss.Width(l.Label)
		if x >= left && x < left+w {
			return l, true
		}
		left += w + navGap
	}
	return NavLink{}, false
}

func (h Header) nav() string {
	parts := make([]string, len(NavLinks))
	for i, l := range NavLinks {
		style := styles.NavLinkStyle
		if i == h.active {
			style = styles.NavLinkActiveStyle
		}
		parts[i] = style.Render(l.Label)
	}
	return strings.Join(parts, strings.Repeat(" ", navGap))
}

// View renders the header with the search input on the right
func (h Header) View(search string, theme domain.Theme) string {
	left := styles.BrandStyle.Render(Brand) + "   " + h.nav()
	right := search
	if !h.shrunk {
		right += "  " + styles.DimStyle.Render("◐ "+string(theme))
	}

	gap := h.width - lipgloss.Width(left) - lipgloss.Width(right)
	first := left + strings.Repeat(" ", max(gap, 1)) + right
	if h.shrunk {
		return first
	}

	tagline := styles.SubtitleStyle.Render("Films et séries à l'affiche")
	rule := styles.DimStyle.Render(strings.Repeat("─", max(h.width, 0)))
	return first + "\n" + tagline + "\n" + rule
}
