package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/travelnotes/backoffice/internal/api/handler"
	"github.com/travelnotes/backoffice/internal/api/middleware"
	"github.com/travelnotes/backoffice/internal/core/domain"
	"github.com/travelnotes/backoffice/internal/core/service"
	mongodb "github.com/travelnotes/backoffice/internal/infrastructure/db/mongo"
	redisdb "github.com/travelnotes/backoffice/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, sessionTTL time.Duration, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("backoffice"))

	// --- Dependencies ---
	sessions := redisdb.NewSessionStore(rdb, sessionTTL)
	identityRepo := mongodb.NewIdentityRepository(db)
	submissionRepo := mongodb.NewSubmissionRepository(db)
	eventRepo := mongodb.NewReviewEventRepository(db)

	authService := service.NewAuthService(identityRepo, sessions, log)
	moderationService := service.NewModerationService(submissionRepo, eventRepo, log)
	listingService := service.NewListingService(submissionRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	submissionHandler := handler.NewSubmissionHandler(listingService, moderationService)

	requireSession := middleware.Auth(sessions)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout, requireSession)

	// --- Submission routes (moderator-gated; admin satisfies moderator) ---
	v1 := e.Group("/v1", requireSession, middleware.RequireRole(domain.RoleModerator))
	v1.GET("/submissions", submissionHandler.List)
	v1.GET("/submissions/:id", submissionHandler.Get)
	v1.POST("/submissions/:id/review", submissionHandler.Review)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
