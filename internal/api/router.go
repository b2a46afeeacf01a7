package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sparkling-solutions/turnover-api/internal/api/handler"
	"github.com/sparkling-solutions/turnover-api/internal/api/middleware"
	"github.com/sparkling-solutions/turnover-api/internal/core/domain"
	"github.com/sparkling-solutions/turnover-api/internal/core/ports"
	"github.com/sparkling-solutions/turnover-api/internal/core/service"
	"github.com/sparkling-solutions/turnover-api/internal/core/state"
	"github.com/sparkling-solutions/turnover-api/internal/infrastructure/config"
	"github.com/sparkling-solutions/turnover-api/pkg/logger"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// db and rdb may be nil depending on the configured backends; the readiness
// probe skips absent dependencies.
func NewRouter(store *state.Store, tokens ports.TokenCache, db *mongo.Database, rdb *redis.Client, cfg *config.Config) *echo.Echo {
	log := logger.Get()

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("turnover"))

	// --- Dependencies ---
	identityService := service.NewIdentityService(store, tokens, service.NewPasswordHasher(cfg.Auth.HashScheme), log)
	propertyService := service.NewPropertyService(store, log)
	bookingService := service.NewBookingService(store, log, cfg.Booking.ConfirmOverridesCancel)
	queryService := service.NewQueryService(bookingService, propertyService, log)

	authHandler := handler.NewAuthHandler(identityService)
	propertyHandler := handler.NewPropertyHandler(propertyService)
	bookingHandler := handler.NewBookingHandler(bookingService, propertyService)
	dashboardHandler := handler.NewDashboardHandler(queryService)

	authMiddleware := middleware.Auth(identityService)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Authenticated API ---
	v1 := e.Group("/v1", authMiddleware)

	v1.GET("/properties", propertyHandler.List)
	v1.POST("/properties", propertyHandler.Create, middleware.RBAC(domain.RoleHost, domain.RoleAdmin))
	v1.GET("/properties/:id", propertyHandler.Get)

	v1.GET("/bookings", bookingHandler.List)
	v1.POST("/bookings", bookingHandler.Create)
	v1.POST("/bookings/:id/confirm", bookingHandler.Confirm)
	v1.PATCH("/bookings/:id/status", bookingHandler.UpdateStatus, middleware.RBAC(domain.RoleHost, domain.RoleCleaner, domain.RoleAdmin))
	v1.DELETE("/bookings/:id", bookingHandler.Cancel)

	v1.GET("/dashboard/stats", dashboardHandler.Stats)
	v1.GET("/dashboard/calendar", dashboardHandler.Calendar)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
