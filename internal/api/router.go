package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/promostore/catalog-api/internal/api/handler"
	"github.com/promostore/catalog-api/internal/api/middleware"
	"github.com/promostore/catalog-api/internal/core/service"
	mongostore "github.com/promostore/catalog-api/internal/infrastructure/db/mongo"
	redisstore "github.com/promostore/catalog-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("catalog"))

	// --- Dependencies ---
	authRepo := mongostore.NewAuthRepository(db)
	authService := service.NewAuthService(authRepo, jwtSecret, tokenTTL)
	authHandler := handler.NewAuthHandler(authService)

	productRepo := mongostore.NewProductRepository(db)
	campaignRepo := mongostore.NewCampaignRepository(db)
	idempotency := redisstore.NewIdempotencyStore(rdb)
	catalogService := service.NewCatalogService(productRepo, campaignRepo, idempotency, log)
	catalogHandler := handler.NewCatalogHandler(catalogService)

	authMiddleware := middleware.Auth(jwtSecret)

	// --- Auth routes ---
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)

	protectedHandler := handler.NewProtectedHandler()
	e.GET("/protected", protectedHandler.Show, authMiddleware)

	// --- Product routes ---
	products := e.Group("/products", authMiddleware)
	products.POST("", catalogHandler.Create)
	products.GET("", catalogHandler.List)
	products.GET("/:id", catalogHandler.Get)
	products.PUT("/:id", catalogHandler.Update)
	products.DELETE("/:id", catalogHandler.Delete)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
