package tmdb

import (
	"github.com/mmcdole/marquee/internal/domain"
)

// untitled is shown for records carrying neither title nor name
const untitled = "Sans titre"

// MapItem converts a list entry to a domain item
func MapItem(d itemDTO) domain.MediaItem {
	title := d.Title
	if title == "" {
		title = d.Name
	}
	if title == "" {
		title = untitled
	}

	return domain.MediaItem{
		ID:           d.ID,
		Kind:         inferKind(d),
		Title:        title,
		ReleaseYear:  releaseYear(d),
		PosterPath:   d.PosterPath,
		BackdropPath: d.BackdropPath,
		Overview:     d.Overview,
		Rating:       d.VoteAverage,
		GenreIDs:     d.GenreIDs,
	}
}

// MapItems converts a slice of list entries, keeping order
func MapItems(dtos []itemDTO) []domain.MediaItem {
	items := make([]domain.MediaItem, 0, len(dtos))
	for _, d := range dtos {
		items = append(items, MapItem(d))
	}
	return items
}

// inferKind uses media_type when present, else movies carry a title and tv a name
func inferKind(d itemDTO) domain.MediaKind {
	switch d.MediaType {
	case "movie":
		return domain.KindMovie
	case "tv":
		return domain.KindTV
	}
	if d.Title != "" {
		return domain.KindMovie
	}
	return domain.KindTV
}

func releaseYear(d itemDTO) string {
	date := d.ReleaseDate
	if date == "" {
		date = d.FirstAirDate
	}
	if len(date) < 4 {
		return ""
	}
	return date[:4]
}

// withKind forces the media type of entries from single-kind endpoints
func withKind(dtos []itemDTO, kind domain.MediaKind) []itemDTO {
	for i := range dtos {
		dtos[i].MediaType = string(kind)
	}
	return dtos
}

func mapGenres(dtos []genreDTO) []domain.Genre {
	genres := make([]domain.Genre, 0, len(dtos))
	for _, g := range dtos {
		genres = append(genres, domain.Genre{ID: g.ID, Name: g.Name})
	}
	return genres
}

// MapDetails converts a detail response. kind is authoritative since detail
// payloads carry no media_type.
func MapDetails(d detailsDTO, kind domain.MediaKind) *domain.Details {
	d.MediaType = string(kind)
	details := &domain.Details{
		MediaItem:       MapItem(d.itemDTO),
		Genres:          mapGenres(d.Genres),
		Runtime:         d.Runtime,
		EpisodeRunTime:  d.EpisodeRunTime,
		NumberOfSeasons: d.NumberOfSeasons,
	}
	for _, c := range d.Credits.Cast {
		details.Cast = append(details.Cast, domain.CastMember{Name: c.Name, Character: c.Character})
	}
	for _, v := range d.Videos.Results {
		details.Videos = append(details.Videos, domain.Video{Key: v.Key, Site: v.Site, Type: v.Type, Name: v.Name})
	}
	return details
}
