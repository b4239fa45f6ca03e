package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/animationlms/platform-api/internal/api/handler"
	"github.com/animationlms/platform-api/internal/api/middleware"
	"github.com/animationlms/platform-api/internal/core/domain"
	"github.com/animationlms/platform-api/internal/core/ports"
)

// RouterConfig carries the assembled dependencies for route registration.
type RouterConfig struct {
	AuthService    ports.AuthService
	SignupService  ports.SignupService
	CatalogService ports.CatalogService
	Credentials    ports.CredentialRepository

	Mongo     *mongo.Database
	Redis     *redis.Client // nil when sessions are kept in memory
	JWTSecret string
	Logger    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(cfg.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("animationlms"))
	e.Use(middleware.Identity(cfg.AuthService, cfg.JWTSecret))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(cfg.AuthService)
	notifyHandler := handler.NewNotifyHandler(cfg.SignupService)
	sheetsHandler := handler.NewSheetsHandler(cfg.SignupService)
	catalogHandler := handler.NewCatalogHandler(cfg.CatalogService)
	adminHandler := handler.NewAdminHandler(cfg.Credentials, cfg.SignupService)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout)
	e.GET("/auth/me", authHandler.Me)

	// --- Notification signup routes (public) ---
	e.POST("/notify", notifyHandler.Create)
	e.GET("/notify", notifyHandler.List)
	e.GET("/sheets-setup", sheetsHandler.List)
	e.POST("/sheets-setup", sheetsHandler.BulkInsert)

	// --- Course catalog (public) ---
	e.GET("/courses", catalogHandler.List)
	e.GET("/courses/categories", catalogHandler.Categories)
	e.GET("/courses/:id", catalogHandler.Get)

	// --- Admin routes (super_user only) ---
	admin := e.Group("/admin", middleware.RequireRole(domain.RoleSuperUser))
	admin.GET("/users", adminHandler.ListUsers)
	admin.GET("/notifications/export", adminHandler.ExportSignups)

	// --- Health probes, metrics, API docs ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(cfg.Mongo, cfg.Redis)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
