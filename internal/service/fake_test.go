package service

import (
	"context"
	"sync"

	"github.com/mmcdole/marquee/internal/domain"
)

// fakeSource is an in-memory domain.CatalogSource that records calls
type fakeSource struct {
	mu    sync.Mutex
	calls []string

	popular    map[domain.MediaKind][]domain.MediaItem
	nowPlaying []domain.MediaItem
	upcoming   []domain.MediaItem
	genres     []domain.Genre
	byGenre    map[int][]domain.MediaItem
	search     []domain.MediaItem
	details    *domain.Details

	errs map[string]error // keyed by method name
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		popular: make(map[domain.MediaKind][]domain.MediaItem),
		byGenre: make(map[int][]domain.MediaItem),
		errs:    make(map[string]error),
	}
}

func (f *fakeSource) record(name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, name)
	return f.errs[name]
}

func (f *fakeSource) count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c == name {
			n++
		}
	}
	return n
}

func (f *fakeSource) Popular(_ context.Context, kind domain.MediaKind, _ int) ([]domain.MediaItem, error) {
	if err := f.record("Popular"); err != nil {
		return nil, err
	}
	return f.popular[kind], nil
}

func (f *fakeSource) NowPlaying(context.Context, int) ([]domain.MediaItem, error) {
	if err := f.record("NowPlaying"); err != nil {
		return nil, err
	}
	return f.nowPlaying, nil
}

func (f *fakeSource) Upcoming(context.Context, int) ([]domain.MediaItem, error) {
	if err := f.record("Upcoming"); err != nil {
		return nil, err
	}
	return f.upcoming, nil
}

func (f *fakeSource) MovieGenres(context.Context) ([]domain.Genre, error) {
	if err := f.record("MovieGenres"); err != nil {
		return nil, err
	}
	return f.genres, nil
}

func (f *fakeSource) DiscoverByGenre(_ context.Context, genreID, _ int) ([]domain.MediaItem, error) {
	if err := f.record("DiscoverByGenre"); err != nil {
		return nil, err
	}
	return f.byGenre[genreID], nil
}

func (f *fakeSource) SearchMulti(context.Context, string, int) ([]domain.MediaItem, error) {
	if err := f.record("SearchMulti"); err != nil {
		return nil, err
	}
	return f.search, nil
}

func (f *fakeSource) Details(context.Context, domain.MediaKind, int) (*domain.Details, error) {
	if err := f.record("Details"); err != nil {
		return nil, err
	}
	return f.details, nil
}

func (f *fakeSource) ImageURL(path, size string) string {
	if path == "" {
		return ""
	}
	return "img/" + size + path
}

func movies(n int) []domain.MediaItem {
	items := make([]domain.MediaItem, n)
	for i := range items {
		items[i] = domain.MediaItem{ID: i + 1, Kind: domain.KindMovie, Title: "Movie"}
	}
	return items
}
