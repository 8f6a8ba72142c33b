package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sweetshop/sweetshop-api/internal/api/handler"
	"github.com/sweetshop/sweetshop-api/internal/api/middleware"
	"github.com/sweetshop/sweetshop-api/internal/core/domain"
	"github.com/sweetshop/sweetshop-api/internal/core/ports"
	"github.com/sweetshop/sweetshop-api/internal/infrastructure/http/handlers"
)

// Dependencies carries everything the router needs. Services are injected
// explicitly so tests can swap stubs without touching global state.
type Dependencies struct {
	Auth    ports.AuthService
	Catalog ports.CatalogService
	Tokens  ports.TokenService
	Mongo   *mongo.Database
	Redis   *redis.Client
	Logger  zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("sweetshop"))

	authHandler := handler.NewAuthHandler(deps.Auth)
	sweetHandler := handler.NewSweetHandler(deps.Catalog)

	authRequired := middleware.Auth(deps.Tokens)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/profile", authHandler.Profile, authRequired)
	e.POST("/auth/refresh", authHandler.Refresh)

	// --- Catalog routes: reads are public, writes are admin-gated ---
	e.GET("/sweets/", sweetHandler.List)
	e.GET("/sweets/:id", sweetHandler.Get)
	e.POST("/sweets/create", sweetHandler.Create, authRequired, adminOnly)
	e.PUT("/sweets/:id/update", sweetHandler.Update, authRequired, adminOnly)
	e.DELETE("/sweets/:id/delete", sweetHandler.Delete, authRequired, adminOnly)
	e.GET("/categories/", sweetHandler.Categories)

	// --- Observability ---
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	return e
}
