package api

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"

	"github.com/everafter/planner-api/internal/api/handler"
	"github.com/everafter/planner-api/internal/api/middleware"
	"github.com/everafter/planner-api/internal/core/ports"
	"github.com/everafter/planner-api/internal/core/service"
	"github.com/everafter/planner-api/internal/infrastructure/config"
	"github.com/everafter/planner-api/internal/infrastructure/db/postgres"
	"github.com/everafter/planner-api/internal/infrastructure/db/redis"
	"github.com/everafter/planner-api/pkg/logger"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil, which disables the content cache and its readiness check.
func NewRouter(pool *pgxpool.Pool, rdb *goredis.Client, cfg *config.Config) *echo.Echo {
	log := logger.Get()

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{cfg.FrontendURL},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
	}))
	e.Use(echoprometheus.NewMiddleware("planner"))
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Repositories ---
	organizerRepo := postgres.NewOrganizerRepository(pool)
	guestRepo := postgres.NewGuestRepository(pool)
	taskRepo := postgres.NewTaskRepository(pool)
	costRepo := postgres.NewCostRepository(pool)
	contentRepo := postgres.NewContentRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)

	var contentCache ports.ContentCache
	if rdb != nil {
		contentCache = redis.NewContentCache(rdb, log)
	}

	// --- Services ---
	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(organizerRepo, tokens, log)
	guestAuthService := service.NewGuestAuthService(guestRepo, tokens, log)
	guestService := service.NewGuestService(guestRepo, log)
	taskService := service.NewTaskService(taskRepo, log)
	costService := service.NewCostService(costRepo, log)
	contentService := service.NewContentService(contentRepo, contentCache, log)
	analyticsService := service.NewAnalyticsService(analyticsRepo)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	guestAuthHandler := handler.NewGuestAuthHandler(guestAuthService)
	guestHandler := handler.NewGuestHandler(guestService)
	taskHandler := handler.NewTaskHandler(taskService)
	costHandler := handler.NewCostHandler(costService)
	contentHandler := handler.NewContentHandler(contentService)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService)
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(pool, rdb)

	requireOrganizer := middleware.RequireOrganizer(tokens, organizerRepo)
	optionalOrganizer := middleware.OptionalOrganizer(tokens, organizerRepo)
	requireGuest := middleware.RequireGuest(tokens, guestRepo)

	api := e.Group("/api")

	// --- Organizer auth ---
	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.GET("/profile", authHandler.Profile, requireOrganizer)
	auth.PUT("/profile", authHandler.UpdateProfile, requireOrganizer)

	// --- Guest auth ---
	guestAuth := api.Group("/guest-auth")
	guestAuth.POST("/login", guestAuthHandler.Login)
	guestAuth.POST("/register", guestAuthHandler.Register)
	guestAuth.GET("/me", guestAuthHandler.Me, requireGuest)

	// --- Guests ---
	guests := api.Group("/guests")
	guests.POST("/register", guestHandler.RegisterPublic)
	guests.GET("", guestHandler.List, requireOrganizer)
	guests.GET("/:id", guestHandler.Get, requireOrganizer)
	guests.PUT("/:id", guestHandler.Update, requireOrganizer)
	guests.DELETE("/:id", guestHandler.Delete, requireOrganizer)

	// --- Tasks ---
	tasks := api.Group("/tasks", requireOrganizer)
	tasks.GET("", taskHandler.List)
	tasks.POST("", taskHandler.Create)
	tasks.PUT("/:id", taskHandler.Update)
	tasks.DELETE("/:id", taskHandler.Delete)

	// --- Costs ---
	costs := api.Group("/costs", requireOrganizer)
	costs.GET("", costHandler.List)
	costs.POST("", costHandler.Create)
	costs.PUT("/:id", costHandler.Update)
	costs.DELETE("/:id", costHandler.Delete)

	// --- Content ---
	content := api.Group("/content")
	content.GET("", contentHandler.List, optionalOrganizer)
	content.GET("/:key", contentHandler.GetByKey, optionalOrganizer)
	content.POST("", contentHandler.Create, requireOrganizer)
	content.PUT("/:id", contentHandler.Update, requireOrganizer)
	content.DELETE("/:id", contentHandler.Delete, requireOrganizer)

	// --- Analytics ---
	analytics := api.Group("/analytics", requireOrganizer)
	analytics.GET("/overview", analyticsHandler.Overview)
	analytics.GET("/dietary", analyticsHandler.Dietary)
	analytics.GET("/attendance", analyticsHandler.Attendance)
	analytics.GET("/budget", analyticsHandler.Budget)

	// --- Health probes (no auth required) ---
	api.GET("/health", healthHandler.Liveness)          // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	return e
}
