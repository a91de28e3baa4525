package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fintrack/internal/config"
	"fintrack/internal/database"
	"fintrack/internal/graph"
	"fintrack/internal/handlers"
	custommiddleware "fintrack/internal/middleware"
	"fintrack/internal/repositories"
	"fintrack/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	cfg := config.Load()

	logLevel := slog.LevelInfo
	if cfg.IsDevelopment() {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	db, err := database.Initialize(cfg)
	if err != nil {
		logger.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	transactionRepo := repositories.NewTransactionRepository(db)

	// Services
	passwordService := services.NewPasswordService(&cfg.Security)
	tokenService := services.NewTokenService(&cfg.JWT)
	authService := services.NewAuthService(userRepo, passwordService, tokenService, logger)
	categoryService := services.NewCategoryService(categoryRepo, transactionRepo, logger)
	transactionService := services.NewTransactionService(transactionRepo, categoryRepo, logger)
	metrics := services.NewPrometheusMetrics()

	schema, err := graph.NewSchema(&graph.Resolver{
		Categories:   categoryService,
		Transactions: transactionService,
		Auth:         authService,
		Logger:       logger,
	})
	if err != nil {
		logger.Error("Failed to build GraphQL schema", "error", err)
		os.Exit(1)
	}

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	graphqlHandler := handlers.NewGraphQLHandler(schema, metrics)
	healthHandler := handlers.NewHealthCheckHandler(db)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = custommiddleware.CustomHTTPErrorHandler

	e.Use(custommiddleware.RequestID())
	e.Use(custommiddleware.PanicRecovery())
	e.Use(custommiddleware.SecurityHeaders())
	e.Use(custommiddleware.RateLimiterWithConfig(
		cfg.Security.RateLimitPerSecond,
		cfg.Security.RateLimitBurst,
	))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization, custommiddleware.TraceIDHeader},
	}))

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	auth := e.Group("/api/v1/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	e.POST("/graphql", graphqlHandler.Execute, custommiddleware.RequireAuth(tokenService))

	server := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info("Starting server", "addr", server.Addr, "environment", cfg.Server.Environment)
		if err := e.StartServer(server); err != nil && err != http.ErrServerClosed {
			logger.Error("Server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
