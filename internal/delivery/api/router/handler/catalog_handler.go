package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"ondeta/internal/delivery/api/response"
	"ondeta/internal/domain/service"
	"ondeta/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler exposes the metadata gateway. All routes are public.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler.
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// Trending handles GET /api/catalog/trending/:mediaType?window=day|week.
func (h *CatalogHandler) Trending(c echo.Context) error {
	items, err := h.catalogUC.Trending(c.Request().Context(), c.Param("mediaType"), c.QueryParam("window"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, items)
}

func (h *CatalogHandler) TopRated(c echo.Context) error {
	items, err := h.catalogUC.TopRated(c.Request().Context(), c.Param("mediaType"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, items)
}

func (h *CatalogHandler) Upcoming(c echo.Context) error {
	items, err := h.catalogUC.Upcoming(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, items)
}

// Discover handles GET /api/catalog/discover/:mediaType?genre&sort&year&page.
func (h *CatalogHandler) Discover(c echo.Context) error {
	// A malformed page falls back to the first one.
	page, _ := strconv.Atoi(c.QueryParam("page"))

	result, err := h.catalogUC.Discover(c.Request().Context(), c.Param("mediaType"), service.DiscoverQuery{
		GenreID: c.QueryParam("genre"),
		SortBy:  c.QueryParam("sort"),
		Year:    c.QueryParam("year"),
		Page:    page,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

func (h *CatalogHandler) Genres(c echo.Context) error {
	genres, err := h.catalogUC.Genres(c.Request().Context(), c.Param("mediaType"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, genres)
}

// Search handles GET /api/catalog/search?q&type&genre&year.
func (h *CatalogHandler) Search(c echo.Context) error {
	items, err := h.catalogUC.Search(c.Request().Context(), service.SearchQuery{
		Query: c.QueryParam("q"),
		Type:  c.QueryParam("type"),
		Genre: c.QueryParam("genre"),
		Year:  c.QueryParam("year"),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, items)
}

// Suggestions handles GET /api/catalog/search-suggestions?q.
func (h *CatalogHandler) Suggestions(c echo.Context) error {
	items, err := h.catalogUC.Suggestions(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, items)
}

// Title handles GET /api/catalog/:mediaType/:id.
func (h *CatalogHandler) Title(c echo.Context) error {
	bundle, err := h.catalogUC.Title(c.Request().Context(), c.Param("mediaType"), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, bundle)
}

// Providers handles GET /api/catalog/:mediaType/:id/providers?region=BR.
func (h *CatalogHandler) Providers(c echo.Context) error {
	providers, err := h.catalogUC.Providers(c.Request().Context(), c.Param("mediaType"), c.Param("id"), c.QueryParam("region"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, providers)
}
