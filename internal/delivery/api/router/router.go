// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"ondeta/config"
	"ondeta/internal/delivery/api/middleware"
	"ondeta/internal/delivery/api/router/handler"
	"ondeta/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UploadPath is the only route allowed past the default body limit.
const UploadPath = "/api/users/profile-image"

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	UserHandler       *handler.UserHandler
	CollectionHandler *handler.CollectionHandler
	CatalogHandler    *handler.CatalogHandler
	ChatHandler       *handler.ChatHandler
	MediaHandler      *handler.MediaHandler
	HealthHandler     *handler.HealthHandler
	AuthMiddleware    *middleware.AuthMiddleware
	RateLimiter       *middleware.RateLimiter
	Config            *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	userHandler       *handler.UserHandler
	collectionHandler *handler.CollectionHandler
	catalogHandler    *handler.CatalogHandler
	chatHandler       *handler.ChatHandler
	mediaHandler      *handler.MediaHandler
	healthHandler     *handler.HealthHandler
	authMiddleware    *middleware.AuthMiddleware
	rateLimiter       *middleware.RateLimiter
	config            *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		userHandler:       params.UserHandler,
		collectionHandler: params.CollectionHandler,
		catalogHandler:    params.CatalogHandler,
		chatHandler:       params.ChatHandler,
		mediaHandler:      params.MediaHandler,
		healthHandler:     params.HealthHandler,
		authMiddleware:    params.AuthMiddleware,
		rateLimiter:       params.RateLimiter,
		config:            params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.Check)

	if r.config.Storage.ServeLocal {
		e.GET("/media/profile_images/:name", r.mediaHandler.ProfileImage)
	}

	api := e.Group("/api")

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register, r.rateLimiter.Limit)
		authGroup.POST("/login", r.authHandler.Login, r.rateLimiter.Limit)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
	}

	// Everything under /users acts on the token's subject
	usersGroup := api.Group("/users")
	usersGroup.Use(r.authMiddleware.Authenticate)
	{
		usersGroup.PUT("/profile", r.userHandler.UpdateProfile)
		usersGroup.POST("/profile-image", r.userHandler.UploadProfileImage)

		for _, name := range entity.CollectionNames {
			routes := r.collectionHandler.For(name)
			base := "/" + string(name)
			usersGroup.POST(base, routes.Add)
			usersGroup.GET(base, routes.List)
			usersGroup.DELETE(base+"/:mediaType/:id", routes.Remove)
		}
	}

	// Public catalog gateway. Static segments win over the :mediaType/:id pattern.
	catalogGroup := api.Group("/catalog")
	{
		catalogGroup.GET("/trending/:mediaType", r.catalogHandler.Trending)
		catalogGroup.GET("/top-rated/:mediaType", r.catalogHandler.TopRated)
		catalogGroup.GET("/upcoming", r.catalogHandler.Upcoming)
		catalogGroup.GET("/discover/:mediaType", r.catalogHandler.Discover)
		catalogGroup.GET("/genres/:mediaType", r.catalogHandler.Genres)
		catalogGroup.GET("/search", r.catalogHandler.Search)
		catalogGroup.GET("/search-suggestions", r.catalogHandler.Suggestions)
		catalogGroup.GET("/:mediaType/:id", r.catalogHandler.Title)
		catalogGroup.GET("/:mediaType/:id/providers", r.catalogHandler.Providers)
	}

	chatGroup := api.Group("/chat")
	chatGroup.Use(r.authMiddleware.Authenticate)
	{
		chatGroup.GET("/:mediaType/:id/starter", r.chatHandler.Starter)
		chatGroup.POST("/:mediaType/:id", r.chatHandler.Reply)
	}
}
