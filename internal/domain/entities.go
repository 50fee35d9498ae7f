package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// MediaKind distinguishes catalogue content types. Values match the API path segment.
type MediaKind string

const (
	KindMovie MediaKind = "movie"
	KindTV    MediaKind = "tv"
)

// ParseMediaKind accepts the API spelling plus a few common aliases
func ParseMediaKind(s string) (MediaKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "movie", "film":
		return KindMovie, nil
	case "tv", "show", "series", "serie":
		return KindTV, nil
	default:
		return "", &MalformedInputError{Field: "kind", Reason: fmt.Sprintf("unknown media kind %q", s)}
	}
}

// Label returns the display label for the kind
func (k MediaKind) Label() string {
	if k == KindTV {
		return "Série"
	}
	return "Film"
}

// MediaItem is a catalogue record as returned by list endpoints
type MediaItem struct {
	ID           int       // Vendor identifier (unique per kind)
	Kind         MediaKind // movie or tv
	Title        string    // Display title
	ReleaseYear  string    // 4-digit year or empty
	PosterPath   string    // Relative poster path, empty if none
	BackdropPath string    // Relative backdrop path, empty if none
	Overview     string    // Plot synopsis
	Rating       float64   // Vote average, 0-10
	GenreIDs     []int
}

// Key returns the identity of the item ("movie:603")
func (m MediaItem) Key() string {
	return string(m.Kind) + ":" + strconv.Itoa(m.ID)
}

// YearOrDash returns the release year or an em dash placeholder
func (m MediaItem) YearOrDash() string {
	if m.ReleaseYear == "" {
		return "—"
	}
	return m.ReleaseYear
}

// FormattedRating returns "7.8 ★", or "" when unrated
func (m MediaItem) FormattedRating() string {
	if m.Rating <= 0 {
		return ""
	}
	return strconv.FormatFloat(float64(int(m.Rating*10+0.5))/10, 'f', -1, 64) + " ★"
}

// Genre is a vendor genre
type Genre struct {
	ID   int
	Name string
}

// CastMember is one credited performer
type CastMember struct {
	Name      string
	Character string
}

// Video is a related video listing (trailers, teasers)
type Video struct {
	Key  string
	Site string
	Type string
	Name string
}

// Details is the full record returned by detail endpoints with related data inlined
type Details struct {
	MediaItem
	Genres          []Genre
	Runtime         int   // Minutes (movies)
	EpisodeRunTime  []int // Minutes (tv)
	NumberOfSeasons int
	Cast            []CastMember
	Videos          []Video
}

// Trailer returns the first YouTube trailer, if any
func (d Details) Trailer() (Video, bool) {
	for _, v := range d.Videos {
		if v.Site == "YouTube" && v.Type == "Trailer" && v.Key != "" {
			return v, true
		}
	}
	return Video{}, false
}

// TrailerURL returns a watchable URL for the trailer, or "" when there is none
func (d Details) TrailerURL() string {
	v, ok := d.Trailer()
	if !ok {
		return ""
	}
	return "https://www.youtube.com/watch?v=" + v.Key
}

// GenreNames joins the genre names with a middle dot
func (d Details) GenreNames() string {
	names := make([]string, 0, len(d.Genres))
	for _, g := range d.Genres {
		names = append(names, g.Name)
	}
	return strings.Join(names, " · ")
}

// TopCast returns up to n cast names
func (d Details) TopCast(n int) []string {
	var names []string
	for _, c := range d.Cast {
		if len(names) == n {
			break
		}
		names = append(names, c.Name)
	}
	return names
}

// FormattedRuntime returns "2 h 16 min" for movies and "45 min/épisode" for tv
func (d Details) FormattedRuntime() string {
	if d.Kind == KindTV {
		if len(d.EpisodeRunTime) > 0 && d.EpisodeRunTime[0] > 0 {
			return fmt.Sprintf("%d min/épisode", d.EpisodeRunTime[0])
		}
		return ""
	}
	return FormatMinutes(d.Runtime)
}

// FormatMinutes renders a minute count as "1 h 05 min" style text
func FormatMinutes(min int) string {
	if min <= 0 {
		return ""
	}
	h, m := min/60, min%60
	if h > 0 {
		return fmt.Sprintf("%d h %d min", h, m)
	}
	return fmt.Sprintf("%d min", m)
}

// Section is a titled group of cards rendered into one row
type Section struct {
	ID    string
	Title string
	Items []MediaItem
}
