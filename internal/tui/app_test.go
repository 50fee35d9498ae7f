package tui

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/marquee/internal/domain"
	"github.com/mmcdole/marquee/internal/service"
	"github.com/mmcdole/marquee/internal/store"
	"github.com/mmcdole/marquee/internal/tui/components"
	"github.com/mmcdole/marquee/internal/tui/styles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSource serves fixed data for every endpoint
type stubSource struct {
	mu      sync.Mutex
	queries []string
}

func items(kind domain.MediaKind, ids ...int) []domain.MediaItem {
	out := make([]domain.MediaItem, len(ids))
	for i, id := range ids {
		out[i] = domain.MediaItem{ID: id, Kind: kind, Title: "Titre", ReleaseYear: "2024"}
	}
	return out
}

func (s *stubSource) Popular(_ context.Context, kind domain.MediaKind, _ int) ([]domain.MediaItem, error) {
	return items(kind, 1, 2, 3), nil
}

func (s *stubSource) NowPlaying(context.Context, int) ([]domain.MediaItem, error) {
	return items(domain.KindMovie, 10, 11, 12), nil
}

func (s *stubSource) Upcoming(context.Context, int) ([]domain.MediaItem, error) {
	return items(domain.KindMovie, 20, 21), nil
}

func (s *stubSource) MovieGenres(context.Context) ([]domain.Genre, error) {
	return []domain.Genre{{ID: 28, Name: "Action"}, {ID: 35, Name: "Comédie"}}, nil
}

func (s *stubSource) DiscoverByGenre(_ context.Context, genreID, _ int) ([]domain.MediaItem, error) {
	return items(domain.KindMovie, genreID*100+1, genreID*100+2), nil
}

func (s *stubSource) SearchMulti(_ context.Context, query string, _ int) ([]domain.MediaItem, error) {
	s.mu.Lock()
	s.queries = append(s.queries, query)
	s.mu.Unlock()
	return []domain.MediaItem{{ID: 268, Kind: domain.KindMovie, Title: "Batman"}}, nil
}

func (s *stubSource) Details(_ context.Context, kind domain.MediaKind, id int) (*domain.Details, error) {
	return &domain.Details{
		MediaItem: domain.MediaItem{ID: id, Kind: kind, Title: "Matrix"},
		Videos:    []domain.Video{{Site: "YouTube", Type: "Trailer", Key: "abc"}},
	}, nil
}

func (s *stubSource) ImageURL(string, string) string { return "" }

type stubLauncher struct {
	urls []string
	err  error
}

func (l *stubLauncher) Launch(url string) error {
	l.urls = append(l.urls, url)
	return l.err
}

type fixture struct {
	src      *stubSource
	prefs    *store.PreferenceStore
	launcher *stubLauncher
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestModel(t *testing.T, width, height int) (Model, *fixture) {
	t.Helper()
	t.Cleanup(func() { styles.Apply(domain.ThemeDark) })

	f := &fixture{src: &stubSource{}, launcher: &stubLauncher{}}
	prefs, err := store.NewPreferenceStore("")
	require.NoError(t, err)
	f.prefs = prefs

	catalog := service.NewCatalogService(f.src, service.CatalogOptions{Genres: []string{"Action", "Comédie"}}, discardLogger())
	themes := service.NewThemeService(prefs, discardLogger())
	m := NewModel(catalog, themes, f.launcher, discardLogger(), Options{SearchDebounce: time.Millisecond})
	m = update(t, m, tea.WindowSizeMsg{Width: width, Height: height})
	return m, f
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func updateCmd(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func withGenres(t *testing.T, m Model, genres ...domain.Genre) Model {
	t.Helper()
	m, cmd := updateCmd(t, m, GenresLoadedMsg{Genres: genres})
	require.NotNil(t, cmd)
	return m
}

func TestModel_SectionLoadedFillsPanel(t *testing.T) {
	m, _ := newTestModel(t, 120, 40)

	m = update(t, m, SectionLoadedMsg{Section: domain.Section{
		ID: service.SectionPopular, Title: "Populaire", Items: items(domain.KindMovie, 1, 2),
	}})
	assert.Equal(t, 2, m.Panels.Get(service.SectionPopular).Len())
	assert.Equal(t, 2, m.Filter.Len())
}

func TestModel_SectionErrorShowsPlaceholder(t *testing.T) {
	m, _ := newTestModel(t, 120, 40)

	m = update(t, m, SectionLoadedMsg{
		Section: domain.Section{ID: service.SectionSeries, Title: "Séries populaires"},
		Err:     errors.New("TMDB error 500"),
	})
	assert.Equal(t, "Impossible de charger « Séries populaires ».", m.Panels.Get(service.SectionSeries).Placeholder())

	m = withGenres(t, m, domain.Genre{ID: 28, Name: "Action"})
	m = update(t, m, SectionLoadedMsg{
		Section: domain.Section{ID: "genre-28", Title: "Action"},
		Err:     errors.New("TMDB error 500"),
	})
	assert.Equal(t, "Impossible de charger les films pour Action.", m.Rows.Get("genre-28").Placeholder())
}

func TestModel_GenreRowsInOrder(t *testing.T) {
	m, _ := newTestModel(t, 120, 40)
	m = withGenres(t, m, domain.Genre{ID: 28, Name: "Action"}, domain.Genre{ID: 35, Name: "Comédie"})

	assert.Equal(t, []string{"genre-28", "genre-35"}, m.Rows.IDs())
	assert.True(t, m.Rows.Get("genre-28").Loading())
	assert.Equal(t, 116, m.Rows.Get("genre-28").ClientWidth(), "new rows are sized to the window")
}

func TestModel_SearchDebounceAndSequence(t *testing.T) {
	m, f := newTestModel(t, 120, 40)

	m = update(t, m, runeKey("/"))
	require.True(t, m.Search.Focused())

	for _, r := range "bat" {
		m = update(t, m, runeKey(string(r)))
	}
	assert.Equal(t, "bat", m.Search.Value())

	// Earlier generations fire nothing
	m, cmd := updateCmd(t, m, components.SearchDebounceMsg{Gen: m.Search.Gen() - 1})
	assert.Nil(t, cmd)
	assert.Nil(t, m.Rows.Get(service.SectionSearch))

	m, cmd = updateCmd(t, m, components.SearchDebounceMsg{Gen: m.Search.Gen()})
	require.NotNil(t, cmd)
	row := m.Rows.Get(service.SectionSearch)
	require.NotNil(t, row)
	assert.Equal(t, "Résultats pour “bat”", row.Title())

	res, ok := cmd().(SearchResultsMsg)
	require.True(t, ok)
	assert.Equal(t, []string{"bat"}, f.src.queries)

	// A late response from an older request is dropped
	m = update(t, m, SearchResultsMsg{Seq: res.Seq - 1, Query: "ba", Section: domain.Section{Items: items(domain.KindMovie, 1, 2, 3)}})
	assert.Equal(t, 0, m.Rows.Get(service.SectionSearch).Len())

	m = update(t, m, res)
	assert.Equal(t, 1, m.Rows.Get(service.SectionSearch).Len())
}

func TestModel_SearchRowKeepsFocusedBlock(t *testing.T) {
	m, _ := newTestModel(t, 120, 40)
	m = withGenres(t, m, domain.Genre{ID: 28, Name: "Action"})

	m = update(t, m, runeKey("4"))
	require.Equal(t, "genre-28", m.focusedBlock().id)

	m.ensureSearchRow("dune")
	assert.Equal(t, "genre-28", m.focusedBlock().id)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, m.Rows.Get(service.SectionSearch))
	assert.Equal(t, "genre-28", m.focusedBlock().id)
}

func TestModel_ArrowsSuppressedWhileSearching(t *testing.T) {
	m, _ := newTestModel(t, 120, 40)
	m = update(t, m, HeroLoadedMsg{Slides: items(domain.KindMovie, 1, 2, 3)})

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 1, m.Hero.Active())

	m = update(t, m, runeKey("/"))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 1, m.Hero.Active(), "the search input owns the arrows")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.Search.Focused())
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 2, m.Hero.Active())
}

func TestModel_ShortQueryShowsInlineError(t *testing.T) {
	m, f := newTestModel(t, 120, 40)
	m = update(t, m, runeKey("/"))
	m = update(t, m, runeKey("a"))

	m, cmd := updateCmd(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Equal(t, "Au moins 2 caractères.", m.Search.Error())

	m, cmd = updateCmd(t, m, components.SearchDebounceMsg{Gen: m.Search.Gen()})
	assert.Nil(t, cmd)
	assert.Empty(t, f.src.queries)
}

func TestModel_DetailsOverlay(t *testing.T) {
	m, f := newTestModel(t, 120, 40)

	m, cmd := updateCmd(t, m, components.OpenDetailsMsg{Kind: domain.KindMovie, ID: 603})
	require.NotNil(t, cmd)
	assert.True(t, m.Detail.Visible())
	assert.True(t, m.Detail.Loading())

	m = update(t, m, cmd())
	require.NotNil(t, m.Detail.Details())
	assert.Equal(t, "Matrix", m.Detail.Details().Title)

	m, cmd = updateCmd(t, m, runeKey("p"))
	require.NotNil(t, cmd)
	m, cmd = updateCmd(t, m, cmd())
	require.NotNil(t, cmd)
	launched, ok := cmd().(TrailerLaunchedMsg)
	require.True(t, ok)
	assert.Equal(t, "Matrix", launched.Title)
	assert.Equal(t, []string{"https://www.youtube.com/watch?v=abc"}, f.launcher.urls)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.Detail.Visible())
}

func TestModel_DetailsAfterCloseAreDropped(t *testing.T) {
	m, _ := newTestModel(t, 120, 40)

	m, cmd := updateCmd(t, m, components.OpenDetailsMsg{Kind: domain.KindMovie, ID: 603})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m = update(t, m, components.CloseOverlayMsg{})

	m = update(t, m, cmd())
	assert.False(t, m.Detail.Visible())
}

func TestModel_PlayWithoutTrailer(t *testing.T) {
	m, f := newTestModel(t, 120, 40)
	m = update(t, m, DetailsLoadedMsg{
		Kind: domain.KindMovie, ID: 1, Play: true,
		Details: &domain.Details{MediaItem: domain.MediaItem{ID: 1, Title: "Sans"}},
	})
	assert.Equal(t, "Pas de bande-annonce pour Sans", m.StatusMsg)
	assert.Empty(t, f.launcher.urls)
}

func TestModel_ThemeToggle(t *testing.T) {
	m, f := newTestModel(t, 120, 40)

	m, cmd := updateCmd(t, m, runeKey("t"))
	require.NotNil(t, cmd)
	m = update(t, m, cmd())

	assert.Equal(t, domain.ThemeLight, styles.Current())
	assert.Equal(t, domain.ThemeLight, m.Themes.Current())
	saved, ok := f.prefs.GetPreference(domain.ThemePreferenceKey)
	require.True(t, ok)
	assert.Equal(t, "light", saved)
}

func TestModel_StatusClearsOnlyLatest(t *testing.T) {
	m, _ := newTestModel(t, 120, 40)
	m = update(t, m, StatusMsg{Message: "un"})
	m = update(t, m, StatusMsg{Message: "deux"})

	m = update(t, m, ClearStatusMsg{Gen: m.statusGen - 1})
	assert.Equal(t, "deux", m.StatusMsg)

	m = update(t, m, ClearStatusMsg{Gen: m.statusGen})
	assert.Empty(t, m.StatusMsg)
}

func TestModel_HeaderShrinksAndSpies(t *testing.T) {
	m, _ := newTestModel(t, 120, 20)
	m = withGenres(t, m,
		domain.Genre{ID: 28, Name: "Action"}, domain.Genre{ID: 35, Name: "Comédie"},
		domain.Genre{ID: 18, Name: "Drame"}, domain.Genre{ID: 27, Name: "Horreur"},
	)
	assert.Equal(t, components.NavHome, m.Header.Active().Target)

	m = update(t, m, tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	assert.Equal(t, wheelStep, m.ScrollY)
	assert.True(t, m.Header.Shrunk())

	m.selectTab(1)
	m.scrollTo(10)
	assert.Equal(t, components.NavSeries, m.Header.Active().Target)

	m.scrollTo(m.maxScroll())
	assert.Equal(t, components.NavGenres, m.Header.Active().Target)

	m.scrollTo(0)
	assert.False(t, m.Header.Shrunk())
	assert.Equal(t, components.NavHome, m.Header.Active().Target, "the hero holds the most lines")
}

func TestModel_NavKeys(t *testing.T) {
	m, _ := newTestModel(t, 120, 40)

	m = update(t, m, runeKey("2"))
	assert.Equal(t, 1, m.Tabs.Active())
	assert.Equal(t, blockTabs, m.focusedBlock().kind)
	assert.Equal(t, components.NavSeries, m.Header.Active().Target)

	m = update(t, m, runeKey("3"))
	assert.Equal(t, 2, m.Tabs.Active())

	m = update(t, m, runeKey("1"))
	assert.Equal(t, blockHero, m.focusedBlock().kind)
	assert.True(t, m.Hero.Focused())

	m = update(t, m, runeKey("4"))
	assert.Equal(t, blockHero, m.focusedBlock().kind, "no genre rows yet")
	assert.NotEmpty(t, m.StatusMsg)
}

func TestModel_HeroHover(t *testing.T) {
	m, _ := newTestModel(t, 120, 40)
	m = update(t, m, HeroLoadedMsg{Slides: items(domain.KindMovie, 1, 2)})
	require.True(t, m.Hero.Playing())

	headerH := m.Header.Height()
	m = update(t, m, tea.MouseMsg{X: 5, Y: headerH + 2, Action: tea.MouseActionMotion})
	assert.True(t, m.Hero.Hovered())
	assert.False(t, m.Hero.Playing())

	m = update(t, m, tea.MouseMsg{X: 5, Y: headerH + heroBlockHeight + 1, Action: tea.MouseActionMotion})
	assert.False(t, m.Hero.Hovered())
	assert.True(t, m.Hero.Playing())
}

func TestModel_FilterChoosesAndOpens(t *testing.T) {
	m, _ := newTestModel(t, 120, 40)
	m = update(t, m, SectionLoadedMsg{Section: domain.Section{
		ID: service.SectionUpcoming, Title: "Nouveautés",
		Items: []domain.MediaItem{{ID: 438631, Kind: domain.KindMovie, Title: "Dune"}},
	}})

	m = update(t, m, runeKey("f"))
	require.True(t, m.Omnibar.IsVisible())
	m = update(t, m, runeKey("d"))
	m = update(t, m, runeKey("n"))
	require.Len(t, m.Omnibar.Results(), 1)

	m, cmd := updateCmd(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.False(t, m.Omnibar.IsVisible())
	assert.True(t, m.Detail.Visible())
	assert.Equal(t, 2, m.Tabs.Active(), "the upcoming tab is revealed")
}

func TestModel_ViewFitsWindow(t *testing.T) {
	m, _ := newTestModel(t, 100, 30)
	m = update(t, m, HeroLoadedMsg{Slides: items(domain.KindMovie, 1)})
	lines := len(strings.Split(m.View(), "\n"))
	assert.Equal(t, 30, lines)
}
