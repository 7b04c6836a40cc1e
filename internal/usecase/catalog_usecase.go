package usecase

import (
	"context"

	"ondeta/internal/domain/entity"
	"ondeta/internal/domain/service"
)

// CatalogUsecase validates browse and search requests before they reach the metadata provider.
type CatalogUsecase interface {
	// Trending accepts movie, tv or all, and a day or week window.
	Trending(ctx context.Context, mediaType, window string) ([]entity.CatalogItem, error)
	TopRated(ctx context.Context, mediaType string) ([]entity.CatalogItem, error)
	Upcoming(ctx context.Context) ([]entity.CatalogItem, error)
	Discover(ctx context.Context, mediaType string, query service.DiscoverQuery) (*entity.CatalogPage, error)
	Genres(ctx context.Context, mediaType string) ([]entity.Genre, error)
	Search(ctx context.Context, query service.SearchQuery) ([]entity.CatalogItem, error)

	// Suggestions is the typeahead list: multi search restricted to movies and tv shows.
	Suggestions(ctx context.Context, query string) ([]entity.CatalogItem, error)

	// Title loads details, credits, videos, providers and recommendations concurrently.
	Title(ctx context.Context, mediaType, id string) (*entity.TitleBundle, error)

	// Providers returns one region's availability with quality labels filled in.
	Providers(ctx context.Context, mediaType, id, region string) (*entity.RegionProviders, error)
}
