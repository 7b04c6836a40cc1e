package entity

// Catalog types mirror the metadata provider's JSON so the gateway can pass
// them through without a second mapping layer.

// CatalogItem is a list entry returned by trending, discover, search and recommendations.
type CatalogItem struct {
	ID           int64   `json:"id"`
	MediaType    string  `json:"media_type,omitempty"`
	Title        string  `json:"title,omitempty"`
	Name         string  `json:"name,omitempty"`
	Overview     string  `json:"overview,omitempty"`
	PosterPath   string  `json:"poster_path,omitempty"`
	BackdropPath string  `json:"backdrop_path,omitempty"`
	ProfilePath  string  `json:"profile_path,omitempty"`
	ReleaseDate  string  `json:"release_date,omitempty"`
	FirstAirDate string  `json:"first_air_date,omitempty"`
	VoteAverage  float64 `json:"vote_average,omitempty"`
	Popularity   float64 `json:"popularity,omitempty"`
	GenreIDs     []int   `json:"genre_ids,omitempty"`
}

// CatalogPage is one page of catalog results.
type CatalogPage struct {
	Page         int           `json:"page"`
	TotalPages   int           `json:"total_pages"`
	TotalResults int           `json:"total_results"`
	Results      []CatalogItem `json:"results"`
}

type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// TitleDetails is the full record of a movie or tv show.
type TitleDetails struct {
	ID               int64     `json:"id"`
	MediaType        MediaKind `json:"media_type"`
	Title            string    `json:"title,omitempty"`
	Name             string    `json:"name,omitempty"`
	Tagline          string    `json:"tagline,omitempty"`
	Overview         string    `json:"overview"`
	Status           string    `json:"status,omitempty"`
	PosterPath       string    `json:"poster_path,omitempty"`
	BackdropPath     string    `json:"backdrop_path,omitempty"`
	ReleaseDate      string    `json:"release_date,omitempty"`
	FirstAirDate     string    `json:"first_air_date,omitempty"`
	Runtime          int       `json:"runtime,omitempty"`
	NumberOfSeasons  int       `json:"number_of_seasons,omitempty"`
	NumberOfEpisodes int       `json:"number_of_episodes,omitempty"`
	VoteAverage      float64   `json:"vote_average"`
	Genres           []Genre   `json:"genres"`
	CreatedBy        []Person  `json:"created_by,omitempty"`
}

// DisplayTitle returns the title for movies and the name for tv shows.
func (d *TitleDetails) DisplayTitle() string {
	if d.Title != "" {
		return d.Title
	}

	return d.Name
}

// DisplayDate returns the release date for movies and the first air date for tv shows.
func (d *TitleDetails) DisplayDate() string {
	if d.ReleaseDate != "" {
		return d.ReleaseDate
	}

	return d.FirstAirDate
}

type Person struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Character   string `json:"character,omitempty"`
	Job         string `json:"job,omitempty"`
	Department  string `json:"department,omitempty"`
	ProfilePath string `json:"profile_path,omitempty"`
	Order       int    `json:"order,omitempty"`
}

type Credits struct {
	Cast []Person `json:"cast"`
	Crew []Person `json:"crew"`
}

// Director returns the first crew member credited as Director, or "" when none is listed.
func (c *Credits) Director() string {
	for _, p := range c.Crew {
		if p.Job == "Director" {
			return p.Name
		}
	}

	return ""
}

type Video struct {
	Key      string `json:"key"`
	Name     string `json:"name"`
	Site     string `json:"site"`
	Type     string `json:"type"`
	Official bool   `json:"official"`
	Language string `json:"iso_639_1,omitempty"`
}

// Provider is a streaming service offering a title in one region.
type Provider struct {
	ProviderID      int    `json:"provider_id"`
	ProviderName    string `json:"provider_name"`
	LogoPath        string `json:"logo_path,omitempty"`
	DisplayPriority int    `json:"display_priority"`
	Quality         string `json:"quality,omitempty"`
}

// RegionProviders groups availability for a single country.
type RegionProviders struct {
	Link     string     `json:"link,omitempty"`
	Flatrate []Provider `json:"flatrate"`
	Rent     []Provider `json:"rent"`
	Buy      []Provider `json:"buy"`
}

// TitleBundle is everything the detail page needs for a title.
type TitleBundle struct {
	Details         *TitleDetails    `json:"details"`
	Credits         *Credits         `json:"credits"`
	Videos          []Video          `json:"videos"`
	Providers       *RegionProviders `json:"providers"`
	Recommendations []CatalogItem    `json:"recommendations"`
}
