package service

import (
	"context"

	"ondeta/internal/domain/entity"
)

// DiscoverQuery filters a discover listing.
type DiscoverQuery struct {
	GenreID string
	SortBy  string
	Year    string
	Page    int
}

// SearchQuery drives a catalog search. Type is one of all, movies, tv, people.
type SearchQuery struct {
	Query string
	Type  string
	Genre string
	Year  string
}

// CatalogProvider is the metadata provider as seen by the use cases.
type CatalogProvider interface {
	Trending(ctx context.Context, mediaType, window string) ([]entity.CatalogItem, error)
	TopRated(ctx context.Context, kind entity.MediaKind) ([]entity.CatalogItem, error)
	Upcoming(ctx context.Context) ([]entity.CatalogItem, error)
	Discover(ctx context.Context, kind entity.MediaKind, q DiscoverQuery) (*entity.CatalogPage, error)
	Genres(ctx context.Context, kind entity.MediaKind) ([]entity.Genre, error)
	Search(ctx context.Context, q SearchQuery) ([]entity.CatalogItem, error)
	Details(ctx context.Context, kind entity.MediaKind, id string) (*entity.TitleDetails, error)
	Credits(ctx context.Context, kind entity.MediaKind, id string) (*entity.Credits, error)
	// Videos falls back to English when nothing exists in the configured language.
	Videos(ctx context.Context, kind entity.MediaKind, id string) ([]entity.Video, error)
	WatchProviders(ctx context.Context, kind entity.MediaKind, id string) (map[string]entity.RegionProviders, error)
	Recommendations(ctx context.Context, kind entity.MediaKind, id string) ([]entity.CatalogItem, error)
}
