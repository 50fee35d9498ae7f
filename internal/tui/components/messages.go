package components

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/marquee/internal/domain"
)

// OpenDetailsMsg asks the application to fetch and show an item's details
type OpenDetailsMsg struct {
	Kind domain.MediaKind
	ID   int
}

// PlayRequestedMsg asks the application to play the trailer of an item
type PlayRequestedMsg struct {
	Item domain.MediaItem
}

// HeroTickMsg advances the hero. Stale generations are ignored.
type HeroTickMsg struct {
	Gen int
}

// CarouselFrameMsg applies one frame of a smooth row scroll
type CarouselFrameMsg struct {
	ID  string
	Gen int
}

// SearchDebounceMsg fires when typing has paused. Only the latest generation counts.
type SearchDebounceMsg struct {
	Gen int
}

// CloseOverlayMsg signals the detail overlay was dismissed
type CloseOverlayMsg struct{}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

func tickAfter(d time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return msg })
}

// TrailerRequestedMsg asks the application to launch a trailer URL
type TrailerRequestedMsg struct {
	Title string
	URL   string
}
