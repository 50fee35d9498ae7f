package tmdb

import (
	"context"
	"fmt"
	"strings"

	"github.com/mmcdole/marquee/internal/domain"
)

// Image sizes
const (
	PosterSize   = "w342"
	BackdropSize = "w1280"
)

// Client implements domain.CatalogSource over a Gateway
type Client struct {
	gw        *Gateway
	imageBase string
}

var _ domain.CatalogSource = (*Client)(nil)

// NewClient creates a catalogue client sharing gw's cache
func NewClient(gw *Gateway, imageBaseURL string) *Client {
	return &Client{gw: gw, imageBase: strings.TrimRight(imageBaseURL, "/")}
}

func (c *Client) list(ctx context.Context, endpoint string, params Params) ([]itemDTO, error) {
	var resp pagedResponse
	if err := c.gw.Get(ctx, endpoint, params, &resp); err != nil {
		return nil, fmt.Errorf("%s: %w", endpoint, err)
	}
	return resp.Results, nil
}

// Popular returns popular movies or series
func (c *Client) Popular(ctx context.Context, kind domain.MediaKind, page int) ([]domain.MediaItem, error) {
	dtos, err := c.list(ctx, "/"+string(kind)+"/popular", Params{"page": page})
	if err != nil {
		return nil, err
	}
	return MapItems(withKind(dtos, kind)), nil
}

// NowPlaying returns movies currently in theatres
func (c *Client) NowPlaying(ctx context.Context, page int) ([]domain.MediaItem, error) {
	dtos, err := c.list(ctx, "/movie/now_playing", Params{"page": page})
	if err != nil {
		return nil, err
	}
	return MapItems(withKind(dtos, domain.KindMovie)), nil
}

// Upcoming returns movies about to be released
func (c *Client) Upcoming(ctx context.Context, page int) ([]domain.MediaItem, error) {
	dtos, err := c.list(ctx, "/movie/upcoming", Params{"page": page})
	if err != nil {
		return nil, err
	}
	return MapItems(withKind(dtos, domain.KindMovie)), nil
}

// MovieGenres returns the vendor's movie genre list
func (c *Client) MovieGenres(ctx context.Context) ([]domain.Genre, error) {
	var resp genreListResponse
	if err := c.gw.Get(ctx, "/genre/movie/list", nil, &resp); err != nil {
		return nil, fmt.Errorf("/genre/movie/list: %w", err)
	}
	return mapGenres(resp.Genres), nil
}

// DiscoverByGenre returns the most popular movies of a genre
func (c *Client) DiscoverByGenre(ctx context.Context, genreID, page int) ([]domain.MediaItem, error) {
	dtos, err := c.list(ctx, "/discover/movie", Params{
		"sort_by":       "popularity.desc",
		"include_adult": false,
		"with_genres":   genreID,
		"page":          page,
	})
	if err != nil {
		return nil, err
	}
	return MapItems(withKind(dtos, domain.KindMovie)), nil
}

// SearchMulti searches movies and series. People and other result types are dropped.
func (c *Client) SearchMulti(ctx context.Context, query string, page int) ([]domain.MediaItem, error) {
	dtos, err := c.list(ctx, "/search/multi", Params{"query": query, "page": page})
	if err != nil {
		return nil, err
	}
	kept := dtos[:0]
	for _, d := range dtos {
		if d.MediaType == "movie" || d.MediaType == "tv" {
			kept = append(kept, d)
		}
	}
	return MapItems(kept), nil
}

// Details returns the full record with credits and videos inlined
func (c *Client) Details(ctx context.Context, kind domain.MediaKind, id int) (*domain.Details, error) {
	endpoint := fmt.Sprintf("/%s/%d", kind, id)
	var resp detailsDTO
	if err := c.gw.Get(ctx, endpoint, Params{"append_to_response": "credits,videos"}, &resp); err != nil {
		return nil, fmt.Errorf("%s: %w", endpoint, err)
	}
	return MapDetails(resp, kind), nil
}

// ImageURL returns the absolute image URL, or "" when path is empty
func (c *Client) ImageURL(path, size string) string {
	if path == "" {
		return ""
	}
	return c.imageBase + "/" + size + path
}
