package components

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/marquee/internal/domain"
	"github.com/mmcdole/marquee/internal/tui/styles"
)

const (
	// HeroHeight is the number of lines the hero renders
	HeroHeight = 9

	heroOverviewLines = 3
	heroOverviewMax   = 220
	heroOverviewCut   = 217

	heroButtonsLine = 6
	heroDotsLine    = 8
)

// Hero rotates a set of featured slides on a timer
type Hero struct {
	slides  []domain.MediaItem
	active  int
	gen     int
	playing bool
	hovered bool
	focused bool

	interval time.Duration // interval used by automatic (re)starts
	running  time.Duration // interval of the armed timer
	width    int

	keys HeroKeyMap
}

// NewHero creates an idle hero that rotates every interval once loaded
func NewHero(interval time.Duration) Hero {
	return Hero{interval: interval, keys: DefaultHeroKeyMap()}
}

// Load replaces the slides. An empty set leaves the hero idle. Slides loaded
// under the pointer stay paused until it leaves.
func (h *Hero) Load(slides []domain.MediaItem) tea.Cmd {
	h.slides = append([]domain.MediaItem(nil), slides...)
	h.active = 0
	if len(h.slides) == 0 {
		h.Stop()
		return nil
	}
	h.Show(0)
	if h.hovered {
		h.Stop()
		return nil
	}
	return h.Start(h.interval)
}

// Len returns the number of slides
func (h Hero) Len() int { return len(h.slides) }

// Active returns the index of the shown slide
func (h Hero) Active() int { return h.active }

// Playing reports whether the rotation timer is armed
func (h Hero) Playing() bool { return h.playing }

// Interval returns the default rotation interval
func (h Hero) Interval() time.Duration { return h.interval }

// Focused reports whether the hero receives keys
func (h Hero) Focused() bool { return h.focused }

// Focus gives the hero keyboard focus
func (h *Hero) Focus() { h.focused = true }

// Blur removes keyboard focus
func (h *Hero) Blur() { h.focused = false }

// SetSize sets the render width
func (h *Hero) SetSize(width int) { h.width = width }

// Current returns the shown slide
func (h Hero) Current() (domain.MediaItem, bool) {
	if len(h.slides) == 0 {
		return domain.MediaItem{}, false
	}
	return h.slides[h.active], true
}

// Show activates slide i, wrapping in both directions
func (h *Hero) Show(i int) {
	n := len(h.slides)
	if n == 0 {
		return
	}
	h.active = ((i % n) + n) % n
}

// Next shows the following slide
func (h *Hero) Next() { h.Show(h.active + 1) }

// Prev shows the preceding slide
func (h *Hero) Prev() { h.Show(h.active - 1) }

// Start disarms any pending timer and arms a new one firing every d
func (h *Hero) Start(d time.Duration) tea.Cmd {
	h.Stop()
	if len(h.slides) == 0 || d <= 0 {
		return nil
	}
	h.playing = true
	h.running = d
	return h.tick()
}

// Stop disarms the timer. Ticks already in flight become stale.
func (h *Hero) Stop() {
	h.gen++
	h.playing = false
}

func (h Hero) tick() tea.Cmd {
	return tickAfter(h.running, HeroTickMsg{Gen: h.gen})
}

// Hover reports the pointer entering or leaving the hero region
func (h *Hero) Hover(inside bool) tea.Cmd {
	if inside == h.hovered {
		return nil
	}
	h.hovered = inside
	if inside {
		h.Stop()
		return nil
	}
	return h.Start(h.interval)
}

// Hovered reports whether the pointer is over the hero
func (h Hero) Hovered() bool { return h.hovered }

// navigate moves by delta and restarts the timer
func (h *Hero) navigate(delta int) tea.Cmd {
	if len(h.slides) == 0 {
		return nil
	}
	h.Show(h.active + delta)
	return h.restart()
}

// restart re-arms the timer with the default interval
func (h *Hero) restart() tea.Cmd {
	return h.Start(h.interval)
}

// play emits PlayRequestedMsg for the slide shown when invoked
func (h Hero) play() tea.Cmd {
	item, ok := h.Current()
	if !ok || item.ID == 0 {
		return nil
	}
	return emit(PlayRequestedMsg{Item: item})
}

// moreInfo emits OpenDetailsMsg for the slide shown when invoked
func (h Hero) moreInfo() tea.Cmd {
	item, ok := h.Current()
	if !ok || item.ID == 0 {
		return nil
	}
	return emit(OpenDetailsMsg{Kind: item.Kind, ID: item.ID})
}

// Update handles timer ticks and, while focused, keys.
// The bool reports whether the message was consumed.
func (h Hero) Update(msg tea.Msg) (Hero, tea.Cmd, bool) {
	switch msg := msg.(type) {
	case HeroTickMsg:
		if msg.Gen != h.gen || !h.playing {
			return h, nil, true
		}
		h.Next()
		return h, h.tick(), true

	case tea.KeyMsg:
		if !h.focused {
			return h, nil, false
		}
		switch {
		case key.Matches(msg, h.keys.Prev):
			return h, h.navigate(-1), true
		case key.Matches(msg, h.keys.Next):
			return h, h.navigate(1), true
		case key.Matches(msg, h.keys.Play):
			return h, h.play(), true
		case key.Matches(msg, h.keys.MoreInfo):
			return h, h.moreInfo(), true
		}
	}
	return h, nil, false
}

// heroHit identifies the clickable part under a point
type heroHit int

const (
	hitNone heroHit = iota
	hitPlay
	hitInfo
	hitPrev
	hitNext
	hitDot
)

const (
	playLabel = "▶ Lecture"
	infoLabel = "ⓘ Plus d'infos"
)

// hitTest maps (x, y) relative to the hero to a control and, for dots, its index
func (h Hero) hitTest(x, y int) (heroHit, int) {
	switch y {
	case heroButtonsLine:
		playW := lipgloss.Width(playLabel) + 2
		infoStart := 2 + playW + 2
		infoW := lipgloss.Width(infoLabel) + 2
		switch {
		case x >= 2 && x < 2+playW:
			return hitPlay, 0
		case x >= infoStart && x < infoStart+infoW:
			return hitInfo, 0
		}
	case heroDotsLine:
		// "  ‹ ● ○ ○ ›"
		if x == 2 {
			return hitPrev, 0
		}
		dotsStart := 4
		if x >= dotsStart && (x-dotsStart)%2 == 0 {
			if i := (x - dotsStart) / 2; i < len(h.slides) {
				return hitDot, i
			}
		}
		if x == dotsStart+2*len(h.slides) {
			return hitNext, 0
		}
	}
	return hitNone, 0
}

// Click handles a mouse press at (x, y) relative to the hero's top left corner
func (h *Hero) Click(x, y int) tea.Cmd {
	if len(h.slides) == 0 {
		return nil
	}
	hit, idx := h.hitTest(x, y)
	switch hit {
	case hitPlay:
		return h.play()
	case hitInfo:
		return h.moreInfo()
	case hitPrev:
		return h.navigate(-1)
	case hitNext:
		return h.navigate(1)
	case hitDot:
		h.Show(idx)
		return h.restart()
	}
	return nil
}

// Overview returns the synopsis of the shown slide, shortened past 220 characters
func (h Hero) Overview() string {
	item, ok := h.Current()
	if !ok {
		return ""
	}
	return TruncateOverview(item.Overview)
}

// TruncateOverview cuts text longer than 220 characters to 217 plus an ellipsis
func TruncateOverview(text string) string {
	r := []rune(text)
	if len(r) > heroOverviewMax {
		return string(r[:heroOverviewCut]) + "…"
	}
	return text
}

// View renders the hero. An idle hero renders nothing.
func (h Hero) View() string {
	item, ok := h.Current()
	if !ok {
		return ""
	}
	width := max(h.width, 20)

	lines := make([]string, 0, HeroHeight)
	label := "À l'affiche"
	if h.focused {
		label = styles.FocusMarkStyle.Render("▌") + styles.AccentStyle.Render(label)
	} else {
		label = styles.AccentStyle.Render(label)
	}
	lines = append(lines, "  "+label)
	lines = append(lines, "  "+styles.HeroTitleStyle.Render(styles.Truncate(strings.ToUpper(item.Title), width-4)))

	overview := lipgloss.NewStyle().Width(min(width-4, 80)).Render(h.Overview())
	ovLines := strings.Split(overview, "\n")
	for i := 0; i < heroOverviewLines; i++ {
		text := ""
		if i < len(ovLines) {
			text = ovLines[i]
		}
		lines = append(lines, "  "+styles.SubtitleStyle.Render(text))
	}

	lines = append(lines, "")
	lines = append(lines, "  "+styles.ButtonStyle.Render(playLabel)+"  "+styles.ButtonAltStyle.Render(infoLabel))
	lines = append(lines, "")

	var dots strings.Builder
	dots.WriteString("  " + styles.ControlStyle.Render("‹") + " ")
	for i := range h.slides {
		if i == h.active {
			dots.WriteString(styles.AccentStyle.Render("●") + " ")
		} else {
			dots.WriteString(styles.DimStyle.Render("○") + " ")
		}
	}
	dots.WriteString(styles.ControlStyle.Render("›"))
	if !h.playing {
		dots.WriteString("  " + styles.DimStyle.Render("⏸"))
	}
	lines = append(lines, dots.String())

	return strings.Join(lines, "\n")
}
