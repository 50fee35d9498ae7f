package domain

import "context"

// CatalogSource is the typed catalogue API consumed by the service layer.
// The TMDB client implements it; tests substitute fakes.
type CatalogSource interface {
	Popular(ctx context.Context, kind MediaKind, page int) ([]MediaItem, error)
	NowPlaying(ctx context.Context, page int) ([]MediaItem, error)
	Upcoming(ctx context.Context, page int) ([]MediaItem, error)
	MovieGenres(ctx context.Context) ([]Genre, error)
	DiscoverByGenre(ctx context.Context, genreID, page int) ([]MediaItem, error)
	SearchMulti(ctx context.Context, query string, page int) ([]MediaItem, error)
	Details(ctx context.Context, kind MediaKind, id int) (*Details, error)

	// ImageURL resolves a relative image path, "" when path is empty
	ImageURL(path, size string) string
}

// PreferenceStore persists small string preferences across sessions.
type PreferenceStore interface {
	// GetPreference returns the stored value and whether it exists
	GetPreference(key string) (string, bool)
	SetPreference(key, value string) error
	// DeletePreference removes key. Missing keys are not an error.
	DeletePreference(key string) error

	// === Lifecycle ===
	Close() error
}
