package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/gct/report-admin/internal/api/handler"
	"github.com/gct/report-admin/internal/api/middleware"
	"github.com/gct/report-admin/internal/core/ports"
	"github.com/gct/report-admin/internal/core/service"
	"github.com/gct/report-admin/internal/infrastructure/config"
	mongorepo "github.com/gct/report-admin/internal/infrastructure/db/mongo"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// Everything except login, logout, health probes, metrics and the API docs
// sits behind the session gate.
func NewRouter(cfg *config.Config, log zerolog.Logger, db *mongo.Database, rdb *redis.Client, sessions ports.SessionStore) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("report_admin"))

	// --- Dependencies ---
	userRepo := mongorepo.NewUserRepository(db)
	reportRepo := mongorepo.NewReportRepository(db)

	authService := service.NewAuthService(userRepo, sessions, log)
	userService := service.NewUserService(userRepo, log)
	reportService := service.NewReportService(reportRepo, log)

	authHandler := handler.NewAuthHandler(authService, cfg.Session.CookieName, cfg.Session.TTL)
	userHandler := handler.NewUserHandler(userService)
	reportHandler := handler.NewReportHandler(reportService)

	gate := middleware.Session(sessions, cfg.Session.CookieName)

	// --- Open routes (gate allow-list) ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout)

	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Protected routes ---
	auth := e.Group("/auth", gate)
	auth.GET("/current", authHandler.Current)
	auth.POST("/change-password", authHandler.ChangePassword)

	users := e.Group("/users", gate)
	users.GET("", userHandler.List)
	users.POST("", userHandler.Create)
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)
	users.PATCH("/:id/status", userHandler.SetStatus)

	e.GET("/reports/check-name", reportHandler.CheckName, gate)

	return e
}
