package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/marquee/internal/domain"
)

// Palette is the colour set of one theme
type Palette struct {
	Accent     lipgloss.Color
	Surface    lipgloss.Color
	SurfaceAlt lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Dim        lipgloss.Color
	Error      lipgloss.Color
	Success    lipgloss.Color
}

var palettes = map[domain.Theme]Palette{
	domain.ThemeDark: {
		Accent:     lipgloss.Color("#E50914"),
		Surface:    lipgloss.Color("#141414"),
		SurfaceAlt: lipgloss.Color("#2A2A2A"),
		Text:       lipgloss.Color("#F5F5F1"),
		Muted:      lipgloss.Color("#B3B3B3"),
		Dim:        lipgloss.Color("#6B6B6B"),
		Error:      lipgloss.Color("#EF4444"),
		Success:    lipgloss.Color("#10B981"),
	},
	domain.ThemeLight: {
		Accent:     lipgloss.Color("#C40812"),
		Surface:    lipgloss.Color("#FAFAFA"),
		SurfaceAlt: lipgloss.Color("#E5E7EB"),
		Text:       lipgloss.Color("#111827"),
		Muted:      lipgloss.Color("#4B5563"),
		Dim:        lipgloss.Color("#9CA3AF"),
		Error:      lipgloss.Color("#B91C1C"),
		Success:    lipgloss.Color("#047857"),
	},
	domain.ThemeSepia: {
		Accent:     lipgloss.Color("#A0522D"),
		Surface:    lipgloss.Color("#F4ECD8"),
		SurfaceAlt: lipgloss.Color("#E4D5B7"),
		Text:       lipgloss.Color("#433422"),
		Muted:      lipgloss.Color("#6F5B40"),
		Dim:        lipgloss.Color("#A08C6E"),
		Error:      lipgloss.Color("#9B2C2C"),
		Success:    lipgloss.Color("#556B2F"),
	},
}

// Colors of the active theme
var (
	Accent     lipgloss.Color
	Surface    lipgloss.Color
	SurfaceAlt lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Dim        lipgloss.Color
	Red        lipgloss.Color
	Green      lipgloss.Color
)

// Text styles
var (
	BrandStyle     lipgloss.Style
	HeroTitleStyle lipgloss.Style
	TitleStyle     lipgloss.Style
	SubtitleStyle  lipgloss.Style
	DimStyle       lipgloss.Style
	AccentStyle    lipgloss.Style
	ErrorStyle     lipgloss.Style
	SuccessStyle   lipgloss.Style
	HighlightStyle lipgloss.Style
)

// Chrome styles
var (
	NavLinkStyle       lipgloss.Style
	NavLinkActiveStyle lipgloss.Style
	ButtonStyle        lipgloss.Style
	ButtonAltStyle     lipgloss.Style
	ControlStyle       lipgloss.Style
	ControlOffStyle    lipgloss.Style
	TabStyle           lipgloss.Style
	TabActiveStyle     lipgloss.Style
	IndicatorStyle     lipgloss.Style
	FocusMarkStyle     lipgloss.Style
)

// Card styles
var (
	CardTitleStyle         lipgloss.Style
	CardSubStyle           lipgloss.Style
	CardSelectedTitleStyle lipgloss.Style
	CardSelectedSubStyle   lipgloss.Style
)

// Modal styles
var (
	ModalStyle      lipgloss.Style
	ModalTitleStyle lipgloss.Style
	PillStyle       lipgloss.Style
)

// Help and filter styles
var (
	HelpKeyStyle      lipgloss.Style
	HelpDescStyle     lipgloss.Style
	FilterPromptStyle lipgloss.Style
	SelectedItemStyle lipgloss.Style
	NormalItemStyle   lipgloss.Style
	MatchStyle        lipgloss.Style
	DimBadgeStyle     lipgloss.Style
)

var current domain.Theme

func init() {
	Apply(domain.ThemeDark)
}

// Current returns the applied theme
func Current() domain.Theme {
	return current
}

// PaletteFor returns the palette of t, dark for unknown themes
func PaletteFor(t domain.Theme) Palette {
	if p, ok := palettes[t]; ok {
		return p
	}
	return palettes[domain.ThemeDark]
}

// Apply rebuilds every style from the palette of t
func Apply(t domain.Theme) {
	p := PaletteFor(t)
	if _, ok := palettes[t]; !ok {
		t = domain.ThemeDark
	}
	current = t

	Accent, Surface, SurfaceAlt = p.Accent, p.Surface, p.SurfaceAlt
	Text, Muted, Dim = p.Text, p.Muted, p.Dim
	Red, Green = p.Error, p.Success

	BrandStyle = lipgloss.NewStyle().Foreground(Accent).Bold(true)
	HeroTitleStyle = lipgloss.NewStyle().Foreground(Text).Bold(true)
	TitleStyle = lipgloss.NewStyle().Foreground(Text).Bold(true)
	SubtitleStyle = lipgloss.NewStyle().Foreground(Muted)
	DimStyle = lipgloss.NewStyle().Foreground(Dim)
	AccentStyle = lipgloss.NewStyle().Foreground(Accent)
	ErrorStyle = lipgloss.NewStyle().Foreground(Red)
	SuccessStyle = lipgloss.NewStyle().Foreground(Green)
	HighlightStyle = lipgloss.NewStyle().Foreground(Surface).Background(Accent).Padding(0, 1)

	NavLinkStyle = lipgloss.NewStyle().Foreground(Muted)
	NavLinkActiveStyle = lipgloss.NewStyle().Foreground(Text).Bold(true).Underline(true)
	ButtonStyle = lipgloss.NewStyle().Foreground(Surface).Background(Text).Bold(true).Padding(0, 1)
	ButtonAltStyle = lipgloss.NewStyle().Foreground(Text).Background(SurfaceAlt).Padding(0, 1)
	ControlStyle = lipgloss.NewStyle().Foreground(Text).Bold(true)
	ControlOffStyle = lipgloss.NewStyle().Foreground(Dim)
	TabStyle = lipgloss.NewStyle().Foreground(Muted).Padding(0, 1)
	TabActiveStyle = lipgloss.NewStyle().Foreground(Text).Bold(true).Padding(0, 1)
	IndicatorStyle = lipgloss.NewStyle().Foreground(Accent)
	FocusMarkStyle = lipgloss.NewStyle().Foreground(Accent).Bold(true)

	CardTitleStyle = lipgloss.NewStyle().Foreground(Text)
	CardSubStyle = lipgloss.NewStyle().Foreground(Dim)
	CardSelectedTitleStyle = lipgloss.NewStyle().Foreground(Surface).Background(Accent).Bold(true)
	CardSelectedSubStyle = lipgloss.NewStyle().Foreground(Surface).Background(Accent)

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Accent).
		Padding(1, 2)
	ModalTitleStyle = lipgloss.NewStyle().Foreground(Text).Bold(true)
	PillStyle = lipgloss.NewStyle().Foreground(Text).Background(SurfaceAlt).Padding(0, 1)

	HelpKeyStyle = lipgloss.NewStyle().Foreground(Accent)
	HelpDescStyle = lipgloss.NewStyle().Foreground(Dim)
	FilterPromptStyle = lipgloss.NewStyle().Foreground(Accent).Bold(true)
	SelectedItemStyle = lipgloss.NewStyle().Foreground(Text).Background(SurfaceAlt).Padding(0, 1)
	NormalItemStyle = lipgloss.NewStyle().Foreground(Muted).Padding(0, 1)
	MatchStyle = lipgloss.NewStyle().Foreground(Accent).Bold(true)
	DimBadgeStyle = lipgloss.NewStyle().Foreground(Muted).Background(SurfaceAlt).Padding(0, 1)
}

// Helper functions

// Truncate shortens s to width runes, ending with an ellipsis when cut
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(r[:width-1]) + "…"
}

// Pad pads or cuts s to exactly width runes
func Pad(s string, width int) string {
	if width <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}

// Slice returns the runes of s in [from, to), padding with spaces past its end
func Slice(s string, from, to int) string {
	if to <= from {
		return ""
	}
	r := []rune(Pad(s, to))
	if from < 0 {
		from = 0
	}
	return string(r[from:to])
}

// RenderHighlighted styles the runes starting at the matched byte offsets with MatchStyle
func RenderHighlighted(s string, matched []int, base lipgloss.Style) string {
	if len(matched) == 0 {
		return base.Render(s)
	}
	set := make(map[int]bool, len(matched))
	for _, i := range matched {
		set[i] = true
	}

	var b strings.Builder
	for i, r := range s {
		if set[i] {
			b.WriteString(MatchStyle.Render(string(r)))
		} else {
			b.WriteString(base.Render(string(r)))
		}
	}
	return b.String()
}
