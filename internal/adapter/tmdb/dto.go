package tmdb

// pagedResponse is the envelope of every list endpoint
type pagedResponse struct {
	Page         int       `json:"page"`
	Results      []itemDTO `json:"results"`
	TotalPages   int       `json:"total_pages"`
	TotalResults int       `json:"total_results"`
}

// itemDTO covers movie, tv and multi-search list entries
type itemDTO struct {
	ID           int     `json:"id"`
	MediaType    string  `json:"media_type"`
	Title        string  `json:"title"`
	Name         string  `json:"name"`
	ReleaseDate  string  `json:"release_date"`
	FirstAirDate string  `json:"first_air_date"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`
	Overview     string  `json:"overview"`
	VoteAverage  float64 `json:"vote_average"`
	GenreIDs     []int   `json:"genre_ids"`
}

type genreDTO struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type genreListResponse struct {
	Genres []genreDTO `json:"genres"`
}

type castDTO struct {
	Name      string `json:"name"`
	Character string `json:"character"`
	Order     int    `json:"order"`
}

type videoDTO struct {
	Key  string `json:"key"`
	Site string `json:"site"`
	Type string `json:"type"`
	Name string `json:"name"`
}

// detailsDTO is /movie/{id} or /tv/{id} with credits and videos appended
type detailsDTO struct {
	itemDTO
	Genres          []genreDTO `json:"genres"`
	Runtime         int        `json:"runtime"`
	EpisodeRunTime  []int      `json:"episode_run_time"`
	NumberOfSeasons int        `json:"number_of_seasons"`
	Credits         struct {
		Cast []castDTO `json:"cast"`
	} `json:"credits"`
	Videos struct {
		Results []videoDTO `json:"results"`
	} `json:"videos"`
}
