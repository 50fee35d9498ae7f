package tui

import (
	"errors"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/marquee/internal/domain"
	"github.com/mmcdole/marquee/internal/service"
	"github.com/mmcdole/marquee/internal/tui/components"
	"github.com/mmcdole/marquee/internal/tui/styles"
)

// ApplicationState represents the current state of the application
type ApplicationState int

const (
	StateBrowsing ApplicationState = iota
	StateHelp
)

// StatusTimeout is how long a status message stays on screen
const StatusTimeout = 5 * time.Second

// filterLimit caps the matches kept for the omnibar
const filterLimit = 50

// Options tunes the page behaviour
type Options struct {
	HeroInterval   time.Duration
	SearchDebounce time.Duration
	SmoothScroll   bool
}

// Model is the main Bubble Tea model for the application
type Model struct {
	// Application state
	State ApplicationState
	Ready bool

	// Services
	Catalog  *service.CatalogService
	Themes   *service.ThemeService
	Filter   *service.Filter
	Launcher Launcher
	Logger   *slog.Logger

	opts Options

	// UI Components
	Header  components.Header
	Search  components.SearchBar
	Hero    components.Hero
	Tabs    components.Tabs
	Panels  *RowSet // carousels behind the tabs, one per fixed section
	Rows    *RowSet // search and genre rows below the tabs
	Detail  components.Detail
	Omnibar components.Omnibar

	// Data
	Genres []domain.Genre

	// Page state
	Focus   int // index of the focused block
	ScrollY int

	// Dimensions
	Width  int
	Height int

	// UI state
	StatusMsg   string
	StatusIsErr bool
	statusGen   int

	// key of the item whose details the overlay is waiting for
	pendingDetails string
}

// NewModel creates a new application model
func NewModel(
	catalog *service.CatalogService,
	themes *service.ThemeService,
	launcher Launcher,
	logger *slog.Logger,
	opts Options,
) Model {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.HeroInterval <= 0 {
		opts.HeroInterval = 3 * time.Second
	}
	if opts.SearchDebounce <= 0 {
		opts.SearchDebounce = 250 * time.Millisecond
	}

	styles.Apply(themes.Current())

	panels := NewRowSet()
	for _, id := range service.FixedSections() {
		row := components.NewCarousel(id, service.SectionTitle(id), opts.SmoothScroll)
		panels.Append(&row)
	}

	m := Model{
		State:    StateBrowsing,
		Catalog:  catalog,
		Themes:   themes,
		Filter:   service.NewFilter(),
		Launcher: launcher,
		Logger:   logger,
		opts:     opts,
		Header:   components.NewHeader(),
		Search:   components.NewSearchBar(opts.SearchDebounce),
		Hero:     components.NewHero(opts.HeroInterval),
		Tabs:     components.NewTabs(),
		Panels:   panels,
		Rows:     NewRowSet(),
		Detail:   components.NewDetail(),
		Omnibar:  components.NewOmnibar(),
	}
	m.Hero.Focus()
	return m
}

// Init issues the independent page loads. They complete in any order.
func (m Model) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, 5)
	for _, id := range service.FixedSections() {
		cmds = append(cmds, LoadSectionCmd(m.Catalog, id))
	}
	cmds = append(cmds, LoadGenresCmd(m.Catalog), BuildHeroCmd(m.Catalog))
	return tea.Batch(cmds...)
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.updateLayout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case components.HeroTickMsg:
		var cmd tea.Cmd
		m.Hero, cmd, _ = m.Hero.Update(msg)
		return m, cmd

	case components.CarouselFrameMsg:
		row := m.Panels.Get(msg.ID)
		if row == nil {
			row = m.Rows.Get(msg.ID)
		}
		if row == nil {
			return m, nil
		}
		updated, cmd, _ := row.Update(msg)
		*row = updated
		return m, cmd

	case components.SearchDebounceMsg:
		query, seq, ok := m.Search.Fire(msg.Gen)
		if !ok {
			return m, nil
		}
		m.ensureSearchRow(query)
		m.Logger.Debug("search issued", "query", query, "seq", seq)
		return m, SearchCmd(m.Catalog, query, seq)

	case SearchResultsMsg:
		if !m.Search.Accept(msg.Seq) {
			m.Logger.Debug("stale search response dropped", "query", msg.Query, "seq", msg.Seq)
			return m, nil
		}
		row := m.ensureSearchRow(msg.Query)
		if msg.Err != nil {
			row.SetPlaceholder("Aucun résultat.")
			return m, nil
		}
		row.Attach(msg.Section.Items)
		m.indexSection(msg.Section)
		return m, nil

	case SectionLoadedMsg:
		return m.handleSectionLoaded(msg)

	case GenresLoadedMsg:
		return m.handleGenresLoaded(msg)

	case HeroLoadedMsg:
		m.Logger.Info("hero loaded", "source", msg.Source, "slides", len(msg.Slides))
		m.indexSection(domain.Section{ID: components.NavHome, Items: msg.Slides})
		return m, m.Hero.Load(msg.Slides)

	case components.OpenDetailsMsg:
		return m.openDetails(msg.Kind, msg.ID, "")

	case components.PlayRequestedMsg:
		cmd := m.setStatus("Recherche de la bande-annonce de "+msg.Item.Title+"…", false)
		return m, tea.Batch(cmd, LoadDetailsCmd(m.Catalog, msg.Item.Kind, msg.Item.ID, true))

	case DetailsLoadedMsg:
		return m.handleDetailsLoaded(msg)

	case components.TrailerRequestedMsg:
		return m, LaunchTrailerCmd(m.Launcher, msg.Title, msg.URL)

	case TrailerLaunchedMsg:
		return m, m.setStatus("Lecture : "+msg.Title, false)

	case components.CloseOverlayMsg:
		m.pendingDetails = ""
		return m, nil

	case ThemeChangedMsg:
		styles.Apply(msg.Theme)
		m.Search.SetStyles()
		if msg.Err != nil {
			m.Logger.Error("theme not saved", "theme", msg.Theme, "error", msg.Err)
			return m, m.setStatus("Thème "+string(msg.Theme)+" (non enregistré)", true)
		}
		return m, m.setStatus("Thème : "+string(msg.Theme), false)

	case ErrMsg:
		m.Logger.Error("command failed", "context", msg.Context, "error", msg.Err)
		return m, m.setStatus(msg.Error(), true)

	case StatusMsg:
		return m, m.setStatus(msg.Message, msg.IsError)

	case ClearStatusMsg:
		if msg.Gen == m.statusGen {
			m.StatusMsg = ""
			m.StatusIsErr = false
		}
		return m, nil
	}

	// Cursor blink and other input messages
	var cmd tea.Cmd
	if m.Omnibar.IsVisible() {
		m.Omnibar, cmd, _ = m.Omnibar.Update(msg)
	} else if m.Search.Focused() {
		m.Search, cmd = m.Search.Update(msg)
	}
	return m, cmd
}

// handleSectionLoaded fills a tab panel or genre row
func (m Model) handleSectionLoaded(msg SectionLoadedMsg) (tea.Model, tea.Cmd) {
	row := m.Panels.Get(msg.Section.ID)
	if row == nil {
		row = m.Rows.Get(msg.Section.ID)
	}
	if row == nil {
		m.Logger.Warn("section loaded for unknown row", "section", msg.Section.ID)
		return m, nil
	}

	if msg.Err != nil {
		row.SetPlaceholder(loadErrorText(msg.Section))
		return m, nil
	}
	row.Attach(msg.Section.Items)
	m.indexSection(msg.Section)
	return m, nil
}

// loadErrorText is the placeholder shown in a row that failed to load
func loadErrorText(section domain.Section) string {
	if strings.HasPrefix(section.ID, "genre-") {
		return "Impossible de charger les films pour " + section.Title + "."
	}
	return "Impossible de charger « " + section.Title + " »."
}

// handleGenresLoaded creates one loading row per genre and fetches them
func (m Model) handleGenresLoaded(msg GenresLoadedMsg) (tea.Model, tea.Cmd) {
	m.Genres = msg.Genres
	if len(msg.Genres) == 0 {
		return m, m.setStatus("Aucun genre disponible", false)
	}

	cmds := make([]tea.Cmd, 0, len(msg.Genres))
	for _, g := range msg.Genres {
		c := components.NewCarousel(service.GenreSectionID(g.ID), g.Name, m.opts.SmoothScroll)
		row := m.Rows.Append(&c)
		row.SetSize(m.Width)
		cmds = append(cmds, LoadGenreRowCmd(m.Catalog, g))
	}
	m.Header.SetActive(m.spyTarget())
	return m, tea.Batch(cmds...)
}

// openDetails shows the overlay in its loading state and fetches the item
func (m Model) openDetails(kind domain.MediaKind, id int, title string) (tea.Model, tea.Cmd) {
	if id <= 0 {
		return m, nil
	}
	m.Detail.SetLoading(title)
	m.pendingDetails = domain.MediaItem{Kind: kind, ID: id}.Key()
	return m, LoadDetailsCmd(m.Catalog, kind, id, false)
}

// handleDetailsLoaded fills the overlay or launches the trailer
func (m Model) handleDetailsLoaded(msg DetailsLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Play {
		if msg.Err != nil {
			return m.Update(ErrMsg{Err: msg.Err, Context: "bande-annonce"})
		}
		url := msg.Details.TrailerURL()
		if url == "" {
			return m, m.setStatus("Pas de bande-annonce pour "+msg.Details.Title, false)
		}
		return m, LaunchTrailerCmd(m.Launcher, msg.Details.Title, url)
	}

	key := domain.MediaItem{Kind: msg.Kind, ID: msg.ID}.Key()
	if !m.Detail.Visible() || m.pendingDetails != key {
		m.Logger.Debug("details arrived after overlay changed", "item", key)
		return m, nil
	}
	m.pendingDetails = ""

	if msg.Err != nil {
		m.Logger.Error("details failed", "item", key, "error", msg.Err)
		text := "Impossible de charger la fiche."
		var remote *domain.RemoteServiceError
		if errors.As(msg.Err, &remote) {
			text = remote.Error()
		}
		m.Detail.ShowError(text)
		return m, nil
	}
	m.Detail.Show(msg.Details)
	return m, nil
}

// setStatus shows a message and schedules its removal
func (m *Model) setStatus(text string, isErr bool) tea.Cmd {
	m.statusGen++
	m.StatusMsg = text
	m.StatusIsErr = isErr
	return ClearStatusCmd(m.statusGen, StatusTimeout)
}
