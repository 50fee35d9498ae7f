package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/marquee/internal/domain"
	"github.com/mmcdole/marquee/internal/service"
)

// Request timeouts
const (
	sectionTimeout = 20 * time.Second
	detailsTimeout = 15 * time.Second
)

// Launcher starts an external player on a URL
type Launcher interface {
	Launch(url string) error
}

// Command factories for async operations

// LoadSectionCmd loads one of the fixed sections
func LoadSectionCmd(svc *service.CatalogService, id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), sectionTimeout)
		defer cancel()

		section, err := svc.LoadSection(ctx, id)
		return SectionLoadedMsg{Section: section, Err: err}
	}
}

// LoadGenresCmd resolves the configured genre names
func LoadGenresCmd(svc *service.CatalogService) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), sectionTimeout)
		defer cancel()

		genres, err := svc.PickGenres(ctx)
		if err != nil {
			return ErrMsg{Err: err, Context: "chargement des genres"}
		}
		return GenresLoadedMsg{Genres: genres}
	}
}

// LoadGenreRowCmd loads the cards of one genre row
func LoadGenreRowCmd(svc *service.CatalogService, genre domain.Genre) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), sectionTimeout)
		defer cancel()

		section, err := svc.LoadGenreRow(ctx, genre)
		return SectionLoadedMsg{Section: section, Err: err}
	}
}

// BuildHeroCmd builds the hero slides. It never fails.
func BuildHeroCmd(svc *service.CatalogService) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), sectionTimeout)
		defer cancel()

		slides, source := svc.BuildHero(ctx)
		return HeroLoadedMsg{Slides: slides, Source: source}
	}
}

// SearchCmd runs the search tagged seq
func SearchCmd(svc *service.CatalogService, query string, seq int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), sectionTimeout)
		defer cancel()

		section, err := svc.Search(ctx, query)
		return SearchResultsMsg{Seq: seq, Query: query, Section: section, Err: err}
	}
}

// LoadDetailsCmd fetches the details of an item
func LoadDetailsCmd(svc *service.CatalogService, kind domain.MediaKind, id int, play bool) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), detailsTimeout)
		defer cancel()

		details, err := svc.Details(ctx, kind, id)
		return DetailsLoadedMsg{Kind: kind, ID: id, Details: details, Err: err, Play: play}
	}
}

// LaunchTrailerCmd starts the player on a trailer URL
func LaunchTrailerCmd(l Launcher, title, url string) tea.Cmd {
	return func() tea.Msg {
		if err := l.Launch(url); err != nil {
			return ErrMsg{Err: err, Context: fmt.Sprintf("bande-annonce de %s", title)}
		}
		return TrailerLaunchedMsg{Title: title}
	}
}

// ToggleThemeCmd advances to the next theme and persists it
func ToggleThemeCmd(svc *service.ThemeService) tea.Cmd {
	return func() tea.Msg {
		theme, err := svc.Toggle()
		return ThemeChangedMsg{Theme: theme, Err: err}
	}
}

// ClearStatusCmd clears status number gen after delay
func ClearStatusCmd(gen int, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return ClearStatusMsg{Gen: gen}
	})
}
