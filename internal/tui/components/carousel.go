package components

import (
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/marquee/internal/domain"
	"github.com/mmcdole/marquee/internal/tui/styles"
)

// Track geometry, in terminal cells
const (
	CardWidth  = 18
	CardGap    = 2
	CardHeight = 3

	// EdgeEpsilon is how close to the start the track must be for "prev" to disable
	EdgeEpsilon = 4
	// EndSlack is how close to the end the track must be for "next" to disable
	EndSlack = 1
	// PageRatio is the share of the visible width moved per page
	PageRatio = 0.9

	controlWidth  = 2 // "‹ " and " ›"
	frameInterval = 16 * time.Millisecond
)

// CarouselHeight is the number of lines a row renders
const CarouselHeight = 1 + CardHeight + 1

// Carousel is a horizontally scrolling row of cards
type Carousel struct {
	id    string
	title string
	items []domain.MediaItem

	offset      int // current scroll position
	target      int // where a smooth scroll is heading
	scrollWidth int
	clientWidth int
	width       int
	prevEnabled bool
	nextEnabled bool

	cursor      int
	focused     bool
	smooth      bool
	frameGen    int
	loading     bool
	placeholder string

	keys CarouselKeyMap
}

// NewCarousel creates an empty, loading row
func NewCarousel(id, title string, smooth bool) Carousel {
	c := Carousel{
		id:      id,
		title:   title,
		smooth:  smooth,
		loading: true,
		keys:    DefaultCarouselKeyMap(),
	}
	c.evaluate()
	return c
}

// ID returns the section ID this row renders
func (c Carousel) ID() string { return c.id }

// Title returns the row heading
func (c Carousel) Title() string { return c.title }

// SetTitle replaces the row heading
func (c *Carousel) SetTitle(title string) { c.title = title }

// Items returns the attached cards
func (c Carousel) Items() []domain.MediaItem { return c.items }

// Len returns the number of cards
func (c Carousel) Len() int { return len(c.items) }

// Loading reports whether the row is waiting for data
func (c Carousel) Loading() bool { return c.loading }

// Placeholder returns the message shown instead of cards, if any
func (c Carousel) Placeholder() string { return c.placeholder }

// Offset returns the scroll position in cells
func (c Carousel) Offset() int { return c.offset }

// ScrollWidth returns the full track width in cells
func (c Carousel) ScrollWidth() int { return c.scrollWidth }

// ClientWidth returns the visible track width in cells
func (c Carousel) ClientWidth() int { return c.clientWidth }

// PrevEnabled reports whether the back control is active
func (c Carousel) PrevEnabled() bool { return c.prevEnabled }

// NextEnabled reports whether the forward control is active
func (c Carousel) NextEnabled() bool { return c.nextEnabled }

// Cursor returns the index of the selected card
func (c Carousel) Cursor() int { return c.cursor }

// Focused reports whether the row receives keys
func (c Carousel) Focused() bool { return c.focused }

// Focus gives the row keyboard focus
func (c *Carousel) Focus() { c.focused = true }

// Blur removes keyboard focus
func (c *Carousel) Blur() { c.focused = false }

// Selected returns the card under the cursor
func (c Carousel) Selected() (domain.MediaItem, bool) {
	if c.cursor < 0 || c.cursor >= len(c.items) {
		return domain.MediaItem{}, false
	}
	return c.items[c.cursor], true
}

// Attach replaces the cards, rewinds the track and re-evaluates the controls
func (c *Carousel) Attach(items []domain.MediaItem) {
	c.items = items
	c.loading = false
	c.placeholder = ""
	if len(items) == 0 {
		c.placeholder = "Aucun résultat."
	}
	c.offset, c.target, c.cursor = 0, 0, 0
	c.frameGen++
	c.measure()
	c.evaluate()
}

// SetPlaceholder empties the row and shows text in place of the cards
func (c *Carousel) SetPlaceholder(text string) {
	c.Attach(nil)
	c.placeholder = text
}

// SetLoading empties the row and marks it busy
func (c *Carousel) SetLoading() {
	c.Attach(nil)
	c.placeholder = ""
	c.loading = true
}

// SetSize sets the row width including its controls
func (c *Carousel) SetSize(width int) {
	c.width = width
	c.clientWidth = max(0, width-2*controlWidth)
	c.measure()
	c.offset = c.clamp(c.offset)
	c.target = c.clamp(c.target)
	c.evaluate()
}

func (c *Carousel) measure() {
	n := len(c.items)
	if n == 0 {
		c.scrollWidth = 0
		return
	}
	c.scrollWidth = n*CardWidth + (n-1)*CardGap
}

// MaxOffset returns the largest reachable scroll position
func (c Carousel) MaxOffset() int {
	return max(0, c.scrollWidth-c.clientWidth)
}

func (c Carousel) clamp(x int) int {
	return min(max(x, 0), c.MaxOffset())
}

// evaluate recomputes the enabled state of both controls
func (c *Carousel) evaluate() {
	c.prevEnabled = c.offset > EdgeEpsilon
	c.nextEnabled = c.offset < c.scrollWidth-c.clientWidth-EndSlack
}

// Step returns the distance moved by one page
func (c Carousel) Step() int {
	return int(math.Round(float64(c.clientWidth) * PageRatio))
}

func (c Carousel) usable() bool {
	return len(c.items) > 0 && c.clientWidth > 0
}

// PageBy scrolls one page backwards (dir < 0) or forwards (dir > 0)
func (c *Carousel) PageBy(dir int) tea.Cmd {
	if !c.usable() || dir == 0 {
		return nil
	}
	if dir < 0 {
		dir = -1
	} else {
		dir = 1
	}
	return c.ScrollTo(c.target + dir*c.Step())
}

// ScrollTo moves the track to x, clamped, animating when smooth scrolling is on
func (c *Carousel) ScrollTo(x int) tea.Cmd {
	if !c.usable() {
		return nil
	}
	c.target = c.clamp(x)
	c.frameGen++
	if !c.smooth || c.target == c.offset {
		c.offset = c.target
		c.evaluate()
		return nil
	}
	return c.frame()
}

func (c Carousel) frame() tea.Cmd {
	return tickAfter(frameInterval, CarouselFrameMsg{ID: c.id, Gen: c.frameGen})
}

// advance applies one animation frame and reports whether more are needed
func (c *Carousel) advance() bool {
	remaining := c.target - c.offset
	if remaining == 0 {
		return false
	}
	step := remaining / 3
	if step == 0 {
		if remaining > 0 {
			step = 1
		} else {
			step = -1
		}
	}
	c.offset += step
	c.evaluate()
	return c.offset != c.target
}

// MoveCursor moves the selection by delta cards and scrolls it into view
func (c *Carousel) MoveCursor(delta int) tea.Cmd {
	if len(c.items) == 0 {
		return nil
	}
	c.cursor = min(max(c.cursor+delta, 0), len(c.items)-1)
	return c.revealCursor()
}

func (c *Carousel) revealCursor() tea.Cmd {
	if !c.usable() {
		return nil
	}
	x := c.cursor * (CardWidth + CardGap)
	switch {
	case x < c.target:
		return c.ScrollTo(x)
	case x+CardWidth > c.target+c.clientWidth:
		return c.ScrollTo(x + CardWidth - c.clientWidth)
	}
	return nil
}

// openSelected emits OpenDetailsMsg for the selected card
func (c Carousel) openSelected() tea.Cmd {
	item, ok := c.Selected()
	if !ok || item.ID == 0 {
		return nil
	}
	return emit(OpenDetailsMsg{Kind: item.Kind, ID: item.ID})
}

// Update handles frames for this row and keys while focused.
// The bool reports whether the message was consumed.
func (c Carousel) Update(msg tea.Msg) (Carousel, tea.Cmd, bool) {
	switch msg := msg.(type) {
	case CarouselFrameMsg:
		if msg.ID != c.id {
			return c, nil, false
		}
		if msg.Gen != c.frameGen {
			return c, nil, true
		}
		if c.advance() {
			return c, c.frame(), true
		}
		return c, nil, true

	case tea.KeyMsg:
		if !c.focused {
			return c, nil, false
		}
		switch {
		case key.Matches(msg, c.keys.PagePrev):
			return c, c.PageBy(-1), true
		case key.Matches(msg, c.keys.PageNext):
			return c, c.PageBy(1), true
		case key.Matches(msg, c.keys.CardPrev):
			return c, c.MoveCursor(-1), true
		case key.Matches(msg, c.keys.CardNext):
			return c, c.MoveCursor(1), true
		case key.Matches(msg, c.keys.Open):
			return c, c.openSelected(), true
		}
	}
	return c, nil, false
}

// Click handles a mouse press at (x, y) relative to the row's top left corner
func (c *Carousel) Click(x, y int) tea.Cmd {
	if y < 1 || y > CardHeight {
		return nil
	}
	switch {
	case x < controlWidth:
		if c.prevEnabled {
			return c.PageBy(-1)
		}
		return nil
	case x >= c.width-controlWidth:
		if c.nextEnabled {
			return c.PageBy(1)
		}
		return nil
	}

	trackX := c.offset + x - controlWidth
	idx := trackX / (CardWidth + CardGap)
	if trackX%(CardWidth+CardGap) >= CardWidth || idx >= len(c.items) {
		return nil
	}
	c.cursor = idx
	return c.openSelected()
}

// View renders the heading, the visible window of the track and the controls
func (c Carousel) View() string {
	var b strings.Builder

	heading := styles.TitleStyle.Render(c.title)
	if c.focused {
		heading = styles.FocusMarkStyle.Render("▌") + heading
	}
	b.WriteString(heading)
	b.WriteString("\n")

	if c.loading || len(c.items) == 0 {
		text := c.placeholder
		if c.loading {
			text = "Chargement…"
		}
		b.WriteString(styles.DimStyle.Render("  " + text))
		b.WriteString(strings.Repeat("\n", CardHeight))
		return b.String()
	}

	prev := styles.ControlOffStyle.Render("‹")
	if c.prevEnabled {
		prev = styles.ControlStyle.Render("‹")
	}
	next := styles.ControlOffStyle.Render("›")
	if c.nextEnabled {
		next = styles.ControlStyle.Render("›")
	}

	for line := 0; line < CardHeight; line++ {
		if line == 1 {
			b.WriteString(prev + " ")
		} else {
			b.WriteString("  ")
		}
		b.WriteString(c.renderTrackLine(line))
		if line == 1 {
			b.WriteString(" " + next)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// renderTrackLine renders one text line of the visible track window
func (c Carousel) renderTrackLine(line int) string {
	var b strings.Builder
	from, to := c.offset, c.offset+c.clientWidth
	pitch := CardWidth + CardGap

	x := from
	for x < to {
		idx, within := x/pitch, x%pitch
		end := min(to, idx*pitch+pitch)
		if within >= CardWidth || idx >= len(c.items) {
			// gap or past the last card
			b.WriteString(strings.Repeat(" ", end-x))
			x = end
			continue
		}
		cardEnd := min(to, idx*pitch+CardWidth)
		text := styles.Slice(cardLine(c.items[idx], line), within, within+cardEnd-x)
		b.WriteString(cardStyle(line, c.focused && idx == c.cursor).Render(text))
		x = cardEnd
	}
	return b.String()
}

func cardLine(item domain.MediaItem, line int) string {
	switch line {
	case 0:
		return " " + styles.Truncate(item.Title, CardWidth-2)
	case 1:
		sub := item.YearOrDash()
		if r := item.FormattedRating(); r != "" {
			sub += " · " + r
		}
		return " " + sub
	default:
		return " " + item.Kind.Label()
	}
}

func cardStyle(line int, selected bool) lipgloss.Style {
	switch {
	case selected && line == 0:
		return styles.CardSelectedTitleStyle
	case selected:
		return styles.CardSelectedSubStyle
	case line == 0:
		return styles.CardTitleStyle
	}
	return styles.CardSubStyle
}
