package impl

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"ondeta/config"
	deliverycontext "ondeta/internal/delivery/context"
	"ondeta/internal/domain/entity"
	domainerrors "ondeta/internal/domain/errors"
	"ondeta/internal/domain/service"
	"ondeta/internal/usecase"

	"github.com/pkg/errors"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/fx"
)

// providerQuality is the best stream quality each streaming service offers, keyed by provider id.
var providerQuality = map[int]string{
	8:   "4K UHD",
	119: "4K UHD",
	337: "4K HDR",
	384: "4K HDR",
	350: "4K Dolby Vision",
	283: "Full HD",
	531: "Full HD",
	619: "Full HD",
	307: "Full HD",
	100: "HD",
	2:   "HD",
	3:   "4K HDR",
	167: "HD",
	613: "Full HD",
	47:  "HD",
	546: "Full HD",
}

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	provider service.CatalogProvider
	region   string
	logger   *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	Provider service.CatalogProvider
	Config   *config.Config
	Logger   *slog.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		provider: params.Provider,
		region:   params.Config.TMDB.Region,
		logger:   params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *catalogService) Trending(ctx context.Context, mediaType, window string) ([]entity.CatalogItem, error) {
	if mediaType != "all" {
		if _, err := entity.ParseMediaKind(mediaType); err != nil {
			return nil, err
		}
	}

	return srv.provider.Trending(ctx, mediaType, window)
}

func (srv *catalogService) TopRated(ctx context.Context, mediaType string) ([]entity.CatalogItem, error) {
	kind, err := entity.ParseMediaKind(mediaType)
	if err != nil {
		return nil, err
	}

	return srv.provider.TopRated(ctx, kind)
}

func (srv *catalogService) Upcoming(ctx context.Context) ([]entity.CatalogItem, error) {
	return srv.provider.Upcoming(ctx)
}

func (srv *catalogService) Discover(ctx context.Context, mediaType string, query service.DiscoverQuery) (*entity.CatalogPage, error) {
	kind, err := entity.ParseMediaKind(mediaType)
	if err != nil {
		return nil, err
	}
	if query.Page < 1 {
		query.Page = 1
	}

	return srv.provider.Discover(ctx, kind, query)
}

func (srv *catalogService) Genres(ctx context.Context, mediaType string) ([]entity.Genre, error) {
	kind, err := entity.ParseMediaKind(mediaType)
	if err != nil {
		return nil, err
	}

	return srv.provider.Genres(ctx, kind)
}

func (srv *catalogService) Search(ctx context.Context, query service.SearchQuery) ([]entity.CatalogItem, error) {
	query.Query = strings.TrimSpace(query.Query)
	if query.Query == "" {
		return nil, domainerrors.ErrMissingQuery
	}
	if query.Type == "" {
		query.Type = "all"
	}

	return srv.provider.Search(ctx, query)
}

func (srv *catalogService) Suggestions(ctx context.Context, query string) ([]entity.CatalogItem, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domainerrors.ErrMissingQuery
	}

	items, err := srv.provider.Search(ctx, service.SearchQuery{Query: query, Type: "all"})
	if err != nil {
		return nil, err
	}

	suggestions := make([]entity.CatalogItem, 0, len(items))
	for _, item := range items {
		if item.MediaType == string(entity.MediaKindMovie) || item.MediaType == string(entity.MediaKindTV) {
			suggestions = append(suggestions, item)
		}
	}

	return suggestions, nil
}

// Title fans out the five detail-page calls. Details is required; the
// other parts degrade to empty values so one failing endpoint does not
// blank the page.
func (srv *catalogService) Title(ctx context.Context, mediaType, id string) (*entity.TitleBundle, error) {
	kind, err := parseTitleRef(mediaType, id)
	if err != nil {
		return nil, err
	}

	bundle := &entity.TitleBundle{
		Credits:         &entity.Credits{Cast: []entity.Person{}, Crew: []entity.Person{}},
		Videos:          []entity.Video{},
		Providers:       emptyRegionProviders(),
		Recommendations: []entity.CatalogItem{},
	}

	p := pool.New().WithContext(ctx)

	p.Go(func(ctx context.Context) error {
		details, err := srv.provider.Details(ctx, kind, id)
		if err != nil {
			return err
		}
		bundle.Details = details

		return nil
	})
	p.Go(func(ctx context.Context) error {
		if credits, err := srv.provider.Credits(ctx, kind, id); err != nil {
			srv.log(ctx).Warn("Credits unavailable", slog.String("id", id), slog.Any("error", err))
		} else {
			bundle.Credits = credits
		}

		return nil
	})
	p.Go(func(ctx context.Context) error {
		if videos, err := srv.provider.Videos(ctx, kind, id); err != nil {
			srv.log(ctx).Warn("Videos unavailable", slog.String("id", id), slog.Any("error", err))
		} else {
			bundle.Videos = videos
		}

		return nil
	})
	p.Go(func(ctx context.Context) error {
		if providers, err := srv.regionProviders(ctx, kind, id, srv.region); err != nil {
			srv.log(ctx).Warn("Watch providers unavailable", slog.String("id", id), slog.Any("error", err))
		} else {
			bundle.Providers = providers
		}

		return nil
	})
	p.Go(func(ctx context.Context) error {
		if recs, err := srv.provider.Recommendations(ctx, kind, id); err != nil {
			srv.log(ctx).Warn("Recommendations unavailable", slog.String("id", id), slog.Any("error", err))
		} else {
			bundle.Recommendations = recs
		}

		return nil
	})

	if err := p.Wait(); err != nil {
		return nil, err
	}

	return bundle, nil
}

func (srv *catalogService) Providers(ctx context.Context, mediaType, id, region string) (*entity.RegionProviders, error) {
	kind, err := parseTitleRef(mediaType, id)
	if err != nil {
		return nil, err
	}
	if region == "" {
		region = srv.region
	}

	return srv.regionProviders(ctx, kind, id, strings.ToUpper(region))
}

func (srv *catalogService) regionProviders(ctx context.Context, kind entity.MediaKind, id, region string) (*entity.RegionProviders, error) {
	all, err := srv.provider.WatchProviders(ctx, kind, id)
	if err != nil {
		return nil, err
	}

	regional, ok := all[region]
	if !ok {
		return emptyRegionProviders(), nil
	}

	return &entity.RegionProviders{
		Link:     regional.Link,
		Flatrate: withQuality(regional.Flatrate),
		Rent:     withQuality(regional.Rent),
		Buy:      withQuality(regional.Buy),
	}, nil
}

func withQuality(providers []entity.Provider) []entity.Provider {
	out := make([]entity.Provider, 0, len(providers))
	for _, p := range providers {
		if q, ok := providerQuality[p.ProviderID]; ok {
			p.Quality = q
		}
		out = append(out, p)
	}

	return out
}

func emptyRegionProviders() *entity.RegionProviders {
	return &entity.RegionProviders{
		Flatrate: []entity.Provider{},
		Rent:     []entity.Provider{},
		Buy:      []entity.Provider{},
	}
}

func parseTitleRef(mediaType, id string) (entity.MediaKind, error) {
	kind, err := entity.ParseMediaKind(mediaType)
	if err != nil {
		return "", err
	}
	if n, err := strconv.ParseInt(id, 10, 64); err != nil || n <= 0 {
		return "", errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("id must be a positive integer"))
	}

	return kind, nil
}
