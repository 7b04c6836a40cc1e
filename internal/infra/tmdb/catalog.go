package tmdb

import (
	"context"
	"net/url"
	"strconv"

	"ondeta/internal/domain/entity"
	"ondeta/internal/domain/service"
)

const fallbackVideoLanguage = "en-US"

type listResponse struct {
	Results []entity.CatalogItem `json:"results"`
}

type genresResponse struct {
	Genres []entity.Genre `json:"genres"`
}

type videosResponse struct {
	Results []entity.Video `json:"results"`
}

type providersResponse struct {
	Results map[string]entity.RegionProviders `json:"results"`
}

func (c *Client) list(ctx context.Context, path string, params url.Values) ([]entity.CatalogItem, error) {
	var resp listResponse
	if err := c.get(ctx, path, params, &resp); err != nil {
		return nil, err
	}
	if resp.Results == nil {
		return []entity.CatalogItem{}, nil
	}

	return resp.Results, nil
}

func titlePath(kind entity.MediaKind, id string, suffix string) string {
	return "/" + string(kind) + "/" + url.PathEscape(id) + suffix
}

// Trending lists the trending titles for mediaType (movie, tv or all) over window (day or week).
func (c *Client) Trending(ctx context.Context, mediaType, window string) ([]entity.CatalogItem, error) {
	if window != "day" {
		window = "week"
	}

	return c.list(ctx, "/trending/"+url.PathEscape(mediaType)+"/"+window, nil)
}

func (c *Client) TopRated(ctx context.Context, kind entity.MediaKind) ([]entity.CatalogItem, error) {
	return c.list(ctx, "/"+string(kind)+"/top_rated", nil)
}

// Upcoming lists upcoming movie releases for the configured region.
func (c *Client) Upcoming(ctx context.Context) ([]entity.CatalogItem, error) {
	params := url.Values{}
	if c.region != "" {
		params.Set("region", c.region)
	}

	return c.list(ctx, "/movie/upcoming", params)
}

// Discover filters the catalog by genre and year. The year filter targets the
// release date for movies and the first air date for tv.
func (c *Client) Discover(ctx context.Context, kind entity.MediaKind, q service.DiscoverQuery) (*entity.CatalogPage, error) {
	params := url.Values{}
	params.Set("sort_by", q.SortBy)
	if q.SortBy == "" {
		params.Set("sort_by", "popularity.desc")
	}
	params.Set("page", strconv.Itoa(max(1, q.Page)))
	params.Set("include_adult", "false")
	if q.GenreID != "" {
		params.Set("with_genres", q.GenreID)
	}
	if q.Year != "" {
		params.Set(yearParam(kind), q.Year)
	}

	var page entity.CatalogPage
	if err := c.get(ctx, "/discover/"+string(kind), params, &page); err != nil {
		return nil, err
	}
	if page.Results == nil {
		page.Results = []entity.CatalogItem{}
	}

	return &page, nil
}

func (c *Client) Genres(ctx context.Context, kind entity.MediaKind) ([]entity.Genre, error) {
	var resp genresResponse
	if err := c.get(ctx, "/genre/"+string(kind)+"/list", nil, &resp); err != nil {
		return nil, err
	}
	if resp.Genres == nil {
		return []entity.Genre{}, nil
	}

	return resp.Genres, nil
}

// Search picks the endpoint from q.Type: movies, tv and people narrow it, anything else searches all kinds.
func (c *Client) Search(ctx context.Context, q service.SearchQuery) ([]entity.CatalogItem, error) {
	path := "/search/multi"
	switch q.Type {
	case "movies":
		path = "/search/movie"
	case "tv":
		path = "/search/tv"
	case "people":
		path = "/search/person"
	}

	params := url.Values{}
	params.Set("query", q.Query)
	if q.Genre != "" {
		params.Set("with_genres", q.Genre)
	}
	if q.Year != "" {
		kind := entity.MediaKindMovie
		if q.Type == "tv" {
			kind = entity.MediaKindTV
		}
		params.Set(yearParam(kind), q.Year)
	}

	return c.list(ctx, path, params)
}

func (c *Client) Details(ctx context.Context, kind entity.MediaKind, id string) (*entity.TitleDetails, error) {
	var details entity.TitleDetails
	if err := c.get(ctx, titlePath(kind, id, ""), nil, &details); err != nil {
		return nil, err
	}
	details.MediaType = kind
	if details.Genres == nil {
		details.Genres = []entity.Genre{}
	}

	return &details, nil
}

func (c *Client) Credits(ctx context.Context, kind entity.MediaKind, id string) (*entity.Credits, error) {
	var credits entity.Credits
	if err := c.get(ctx, titlePath(kind, id, "/credits"), nil, &credits); err != nil {
		return nil, err
	}
	if credits.Cast == nil {
		credits.Cast = []entity.Person{}
	}
	if credits.Crew == nil {
		credits.Crew = []entity.Person{}
	}

	return &credits, nil
}

// Videos asks for the configured language first and falls back to English when it has none.
func (c *Client) Videos(ctx context.Context, kind entity.MediaKind, id string) ([]entity.Video, error) {
	path := titlePath(kind, id, "/videos")

	var resp videosResponse
	if err := c.get(ctx, path, nil, &resp); err != nil {
		return nil, err
	}
	if len(resp.Results) > 0 || c.language == fallbackVideoLanguage {
		return nonNil(resp.Results), nil
	}

	params := url.Values{}
	params.Set("language", fallbackVideoLanguage)
	resp = videosResponse{}
	if err := c.get(ctx, path, params, &resp); err != nil {
		return nil, err
	}

	return nonNil(resp.Results), nil
}

// WatchProviders returns availability keyed by ISO 3166-1 country code.
func (c *Client) WatchProviders(ctx context.Context, kind entity.MediaKind, id string) (map[string]entity.RegionProviders, error) {
	var resp providersResponse
	if err := c.get(ctx, titlePath(kind, id, "/watch/providers"), nil, &resp); err != nil {
		return nil, err
	}
	if resp.Results == nil {
		return map[string]entity.RegionProviders{}, nil
	}

	return resp.Results, nil
}

func (c *Client) Recommendations(ctx context.Context, kind entity.MediaKind, id string) ([]entity.CatalogItem, error) {
	return c.list(ctx, titlePath(kind, id, "/recommendations"), nil)
}

func yearParam(kind entity.MediaKind) string {
	if kind == entity.MediaKindTV {
		return "first_air_date_year"
	}

	return "primary_release_year"
}

func nonNil(videos []entity.Video) []entity.Video {
	if videos == nil {
		return []entity.Video{}
	}

	return videos
}
