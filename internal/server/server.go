package server

import (
	"context"
	"log/slog"

	"accubooks/internal/config"
	"accubooks/internal/handlers"
	"accubooks/internal/middleware"
	"accubooks/internal/repositories"
	"accubooks/internal/services"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

// Server wraps the Echo instance with its configuration
type Server struct {
	echo   *echo.Echo
	config *config.Config
	logger *slog.Logger
}

// New builds the HTTP server with all repositories, services, handlers and
// routes wired up
func New(cfg *config.Config, db *gorm.DB, logger *slog.Logger) *Server {
	userRepo := repositories.NewUserRepository(db)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(db)
	blacklistedTokenRepo := repositories.NewBlacklistedTokenRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	incomeRepo := repositories.NewIncomeRepository(db)
	purchaseRepo := repositories.NewPurchaseRepository(db)

	metrics := services.NewPrometheusMetrics()
	tokenService := services.NewTokenService(&cfg.JWT)
	passwordService := services.NewPasswordService(userRepo)
	authService := services.NewAuthService(
		userRepo,
		refreshTokenRepo,
		blacklistedTokenRepo,
		passwordService,
		tokenService,
		&cfg.OAuth,
		metrics,
		logger,
	)
	categoryService := services.NewCategoryService(categoryRepo, metrics, logger)
	incomeService := services.NewIncomeService(incomeRepo, categoryRepo, metrics, logger)
	purchaseService := services.NewPurchaseService(purchaseRepo, categoryRepo, metrics, logger)
	reportingService := services.NewReportingService()
	analyticsService := services.NewAnalyticsService(incomeRepo, purchaseRepo, reportingService, metrics, logger)

	authHandler := handlers.NewAuthHandler(authService, passwordService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	incomeHandler := handlers.NewIncomeHandler(incomeService)
	purchaseHandler := handlers.NewPurchaseHandler(purchaseService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	healthHandler := handlers.NewHealthCheckHandler(db)

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler
	e.Validator = handlers.NewValidator()

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RateLimiterWithConfig(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitPerSecond*2))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{echo.GET, echo.POST, echo.PUT, echo.DELETE, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/signup", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.RefreshToken)
	auth.POST("/logout", authHandler.Logout)
	auth.GET("/oauth/google", authHandler.GoogleAuthURL)

	requireAuth := middleware.RequireAuth(tokenService, blacklistedTokenRepo)

	auth.PUT("/password", authHandler.UpdatePassword, requireAuth)

	categories := api.Group("/categories", requireAuth)
	categories.POST("", categoryHandler.Create)
	categories.GET("", categoryHandler.List)
	categories.GET("/:id", categoryHandler.Get)
	categories.PUT("/:id", categoryHandler.Update)
	categories.DELETE("/:id", categoryHandler.Delete)

	income := api.Group("/income", requireAuth)
	income.POST("", incomeHandler.Create)
	income.GET("", incomeHandler.List)
	income.GET("/:id", incomeHandler.Get)
	income.PUT("/:id", incomeHandler.Update)
	income.DELETE("/:id", incomeHandler.Delete)

	purchases := api.Group("/purchases", requireAuth)
	purchases.POST("", purchaseHandler.Create)
	purchases.GET("", purchaseHandler.List)
	purchases.GET("/:id", purchaseHandler.Get)
	purchases.PUT("/:id", purchaseHandler.Update)
	purchases.DELETE("/:id", purchaseHandler.Delete)

	analytics := api.Group("/analytics", requireAuth)
	analytics.GET("/summary", analyticsHandler.Summary)
	analytics.GET("/by-category", analyticsHandler.CategoryBreakdown)
	analytics.GET("/trends", analyticsHandler.MonthlyTrends)

	return &Server{
		echo:   e,
		config: cfg,
		logger: logger,
	}
}

// Start begins listening on the configured port. Blocks until the server
// stops or fails.
func (s *Server) Start() error {
	s.logger.Info("starting server",
		"port", s.config.Server.Port,
		"environment", s.config.Server.Environment)

	return s.echo.Start(":" + s.config.Server.Port)
}

// Shutdown gracefully stops the server, draining in-flight requests
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// Echo exposes the underlying Echo instance for tests
func (s *Server) Echo() *echo.Echo {
	return s.echo
}
