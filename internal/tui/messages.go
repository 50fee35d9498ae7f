package tui

import (
	"github.com/mmcdole/marquee/internal/domain"
	"github.com/mmcdole/marquee/internal/service"
)

// Message types for the TUI

// ErrMsg represents an error
type ErrMsg struct {
	Err     error
	Context string
}

// Error implements the error interface
func (e ErrMsg) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// SectionLoadedMsg carries one fixed section or genre row. Err is set when
// the fetch failed; Section still holds the ID and title.
type SectionLoadedMsg struct {
	Section domain.Section
	Err     error
}

// GenresLoadedMsg signals that the genre rows to build are known
type GenresLoadedMsg struct {
	Genres []domain.Genre
}

// HeroLoadedMsg carries the hero slides and where they came from
type HeroLoadedMsg struct {
	Slides []domain.MediaItem
	Source service.HeroSource
}

// SearchResultsMsg carries the response to the search tagged Seq
type SearchResultsMsg struct {
	Seq     int
	Query   string
	Section domain.Section
	Err     error
}

// DetailsLoadedMsg carries the details of one item. Play is set when the
// details were fetched to launch the trailer rather than to show the overlay.
type DetailsLoadedMsg struct {
	Kind    domain.MediaKind
	ID      int
	Details *domain.Details
	Err     error
	Play    bool
}

// TrailerLaunchedMsg signals that the player was started
type TrailerLaunchedMsg struct {
	Title string
}

// ThemeChangedMsg signals that the theme was switched. Err is set when the
// preference could not be saved; the theme is applied regardless.
type ThemeChangedMsg struct {
	Theme domain.Theme
	Err   error
}

// StatusMsg shows a message in the status line
type StatusMsg struct {
	Message string
	IsError bool
}

// ClearStatusMsg clears the status line if it is still the one numbered Gen
type ClearStatusMsg struct {
	Gen int
}
