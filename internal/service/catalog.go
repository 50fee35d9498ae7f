package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/mmcdole/marquee/internal/domain"
)

// Section IDs of the fixed home page rows
const (
	SectionPopular  = "popular"
	SectionSeries   = "series"
	SectionUpcoming = "upcoming"
	SectionSearch   = "search"
)

// Defaults used when CatalogOptions leaves a limit at zero
const (
	defaultSectionLimit = 12
	defaultRowLimit     = 20
	defaultHeroLimit    = 6
)

// GenreSectionID returns the section ID of a genre row
func GenreSectionID(genreID int) string {
	return fmt.Sprintf("genre-%d", genreID)
}

// SearchTitle returns the heading of the search results row
func SearchTitle(query string) string {
	return "Résultats pour “" + query + "”"
}

// CatalogOptions bounds how much of each endpoint is shown
type CatalogOptions struct {
	SectionLimit int      // fixed sections (series, upcoming, popular)
	RowLimit     int      // genre and search rows
	HeroLimit    int      // hero slides
	Genres       []string // wanted genre rows, in display order
}

// CatalogService assembles home page sections from a catalogue source
type CatalogService struct {
	src    domain.CatalogSource
	opts   CatalogOptions
	logger *slog.Logger
}

// NewCatalogService creates a new catalogue service
func NewCatalogService(src domain.CatalogSource, opts CatalogOptions, logger *slog.Logger) *CatalogService {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.SectionLimit <= 0 {
		opts.SectionLimit = defaultSectionLimit
	}
	if opts.RowLimit <= 0 {
		opts.RowLimit = defaultRowLimit
	}
	if opts.HeroLimit <= 0 {
		opts.HeroLimit = defaultHeroLimit
	}
	return &CatalogService{src: src, opts: opts, logger: logger}
}

// ImageURL resolves a poster or backdrop path at the given size, "" when path is empty
func (s *CatalogService) ImageURL(path, size string) string {
	return s.src.ImageURL(path, size)
}

// FixedSections lists the fixed section IDs in page order
func FixedSections() []string {
	return []string{SectionPopular, SectionSeries, SectionUpcoming}
}

// SectionTitle returns the display title of a fixed section
func SectionTitle(id string) string {
	switch id {
	case SectionPopular:
		return "Populaire"
	case SectionSeries:
		return "Séries populaires"
	case SectionUpcoming:
		return "Nouveautés"
	}
	return id
}

// LoadSection fetches one of the fixed sections
func (s *CatalogService) LoadSection(ctx context.Context, id string) (domain.Section, error) {
	var items []domain.MediaItem
	var err error

	switch id {
	case SectionPopular:
		items, err = s.src.Popular(ctx, domain.KindMovie, 1)
	case SectionSeries:
		items, err = s.src.Popular(ctx, domain.KindTV, 1)
	case SectionUpcoming:
		items, err = s.src.Upcoming(ctx, 1)
	default:
		return domain.Section{}, fmt.Errorf("unknown section %q", id)
	}
	if err != nil {
		s.logger.Error("section load failed", "section", id, "error", err)
		return domain.Section{ID: id, Title: SectionTitle(id)}, err
	}

	return domain.Section{ID: id, Title: SectionTitle(id), Items: limit(items, s.opts.SectionLimit)}, nil
}

// PickGenres fetches the genre list and resolves the wanted names against it
func (s *CatalogService) PickGenres(ctx context.Context) ([]domain.Genre, error) {
	all, err := s.src.MovieGenres(ctx)
	if err != nil {
		return nil, err
	}
	picked := MatchGenres(s.opts.Genres, all)
	s.logger.Debug("genres picked", "wanted", len(s.opts.Genres), "available", len(all), "picked", len(picked))
	return picked, nil
}

// MatchGenres resolves wanted names in order. Exact names win, then the
// closest accent and case insensitive subsequence match. Unmatched names are skipped.
func MatchGenres(wanted []string, all []domain.Genre) []domain.Genre {
	names := make([]string, len(all))
	for i, g := range all {
		names[i] = g.Name
	}

	seen := make(map[int]bool)
	var picked []domain.Genre
	for _, w := range wanted {
		idx := indexOf(names, w)
		if idx < 0 {
			ranks := fuzzy.RankFindNormalizedFold(strings.TrimSpace(w), names)
			if len(ranks) == 0 {
				continue
			}
			sort.Sort(ranks)
			idx = ranks[0].OriginalIndex
		}
		if g := all[idx]; !seen[g.ID] {
			seen[g.ID] = true
			picked = append(picked, g)
		}
	}
	return picked
}

func indexOf(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return -1
}

// LoadGenreRow fetches the most popular movies of a genre
func (s *CatalogService) LoadGenreRow(ctx context.Context, g domain.Genre) (domain.Section, error) {
	section := domain.Section{ID: GenreSectionID(g.ID), Title: g.Name}
	items, err := s.src.DiscoverByGenre(ctx, g.ID, 1)
	if err != nil {
		s.logger.Error("genre row failed", "genre", g.Name, "error", err)
		return section, err
	}
	section.Items = limit(items, s.opts.RowLimit)
	return section, nil
}

// HeroSource records which step of the fallback chain produced the slides
type HeroSource string

const (
	HeroFromNowPlaying HeroSource = "now_playing"
	HeroFromPopular    HeroSource = "popular"
	HeroFromBuiltin    HeroSource = "builtin"
)

// BuildHero returns the hero slides. It tries movies now playing, then
// popular movies, then the built-in placeholders, so it never fails.
func (s *CatalogService) BuildHero(ctx context.Context) ([]domain.MediaItem, HeroSource) {
	items, err := s.src.NowPlaying(ctx, 1)
	if err == nil && len(items) > 0 {
		return limit(items, s.opts.HeroLimit), HeroFromNowPlaying
	}
	s.logger.Warn("hero now playing unavailable", "error", err)

	items, err = s.src.Popular(ctx, domain.KindMovie, 1)
	if err == nil && len(items) > 0 {
		return limit(items, s.opts.HeroLimit), HeroFromPopular
	}
	s.logger.Warn("hero popular unavailable, using placeholders", "error", err)

	return PlaceholderSlides(), HeroFromBuiltin
}

// PlaceholderSlides are shown when the API provides nothing for the hero.
// They have no ID, so details and playback ignore them.
func PlaceholderSlides() []domain.MediaItem {
	return []domain.MediaItem{
		{Kind: domain.KindMovie, Title: "Bienvenue sur marquee", Overview: "Films et séries populaires, nouveautés et genres, directement dans votre terminal."},
		{Kind: domain.KindMovie, Title: "Parcourez par genre", Overview: "Action, Comédie, Drame, Science-Fiction... chaque genre a sa rangée."},
		{Kind: domain.KindTV, Title: "Cherchez un titre", Overview: "Appuyez sur / pour rechercher un film ou une série."},
	}
}

// ValidateQuery trims q and rejects it when shorter than domain.MinQueryLength
func ValidateQuery(q string) (string, error) {
	q = strings.TrimSpace(q)
	if len([]rune(q)) < domain.MinQueryLength {
		return q, domain.ErrQueryTooShort
	}
	return q, nil
}

// Search runs a multi search and returns it as the search row.
// Short queries fail with domain.ErrQueryTooShort before any request.
func (s *CatalogService) Search(ctx context.Context, query string) (domain.Section, error) {
	q, err := ValidateQuery(query)
	if err != nil {
		return domain.Section{}, err
	}

	section := domain.Section{ID: SectionSearch, Title: SearchTitle(q)}
	items, err := s.src.SearchMulti(ctx, q, 1)
	if err != nil {
		s.logger.Error("search failed", "query", q, "error", err)
		return section, err
	}
	section.Items = limit(items, s.opts.RowLimit)
	s.logger.Debug("search complete", "query", q, "results", len(section.Items))
	return section, nil
}

// Details fetches the full record of an item. Placeholder items have no details.
func (s *CatalogService) Details(ctx context.Context, kind domain.MediaKind, id int) (*domain.Details, error) {
	if id <= 0 {
		return nil, &domain.MalformedInputError{Field: "id", Reason: "no details for this item"}
	}
	d, err := s.src.Details(ctx, kind, id)
	if err != nil {
		var remote *domain.RemoteServiceError
		if errors.As(err, &remote) {
			s.logger.Warn("details unavailable", "kind", kind, "id", id, "status", remote.StatusCode)
		}
		return nil, err
	}
	return d, nil
}

func limit(items []domain.MediaItem, n int) []domain.MediaItem {
	if n > 0 && len(items) > n {
		return items[:n]
	}
	return items
}
