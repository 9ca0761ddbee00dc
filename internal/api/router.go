package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/tripwise/travel-planner/docs"
	"github.com/tripwise/travel-planner/internal/api/handler"
	"github.com/tripwise/travel-planner/internal/api/middleware"
	"github.com/tripwise/travel-planner/internal/core/service"
	mongodb "github.com/tripwise/travel-planner/internal/infrastructure/db/mongo"
	redisdb "github.com/tripwise/travel-planner/internal/infrastructure/db/redis"
	"github.com/tripwise/travel-planner/internal/infrastructure/maps"
	"github.com/tripwise/travel-planner/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("travelplanner"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	travelRepo := mongodb.NewTravelRepository(db)
	distanceCache := redisdb.NewDistanceCache(rdb)
	geo := maps.NewClient(maps.Config{APIKey: cfg.Maps.APIKey, BaseURL: cfg.Maps.BaseURL}, log)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, time.Hour)
	travelService := service.NewTravelService(travelRepo, userRepo, geo, distanceCache, log)

	authHandler := handler.NewAuthHandler(authService)
	travelHandler := handler.NewTravelHandler(travelService, geo)
	authMiddleware := middleware.Auth(cfg.JWTSecret)

	// --- Public routes ---
	e.POST("/signup", authHandler.Signup)
	e.POST("/login", authHandler.Login)
	e.POST("/calculate-budget", travelHandler.CalculateBudget)
	e.POST("/get-places", travelHandler.GetPlaces)

	// --- Protected routes ---
	e.POST("/save-travel", travelHandler.SaveTravel, authMiddleware)
	e.GET("/travel-history", travelHandler.TravelHistory, authMiddleware)
	e.GET("/user-data", travelHandler.UserData, authMiddleware)

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
