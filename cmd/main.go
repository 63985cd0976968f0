package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"ai_dashboard_server/config"
	"ai_dashboard_server/internal/api"
	"ai_dashboard_server/internal/app"
	"ai_dashboard_server/internal/logger"
	"ai_dashboard_server/internal/tracing"
)

func main() {
	// --- Load .env file ---
	// Must happen before viper reads the environment.
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		}
	}

	// --- Configuration Loading ---
	cfg, warnings, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Cannot load config: %v", err)
	}

	zapLog, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("Cannot build logger: %v", err)
	}
	defer zapLog.Sync()
	for _, w := range warnings {
		zapLog.Warn(w)
	}

	// --- Dependency Initialization ---
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	application, err := app.New(ctx, cfg, zapLog)
	if err != nil {
		zapLog.Fatal("Failed to initialize application", zap.Error(err))
	}

	// --- Start API Server ---
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()
	router.Use(logger.RequestID())
	router.Use(logger.Gin(zapLog))
	router.Use(tracing.Middleware(nil))
	router.Use(logger.Recovery(zapLog))

	api.RegisterRoutes(router, application.Handler())

	server := &http.Server{
		Addr:        cfg.ServerAddress,
		Handler:     router,
		ReadTimeout: 15 * time.Second,
		// Video generation polls the provider for minutes before responding.
		WriteTimeout: 6 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		zapLog.Info("Starting API server", zap.String("address", cfg.ServerAddress), zap.String("env", cfg.AppEnv))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLog.Fatal("API server listen error", zap.Error(err))
		}
		zapLog.Info("API server has stopped listening")
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	zapLog.Info("Shutting down server", zap.String("signal", sig.String()))

	cancel()

	shutdownCtx, serverCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer serverCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("API server forced shutdown", zap.Error(err))
	} else {
		zapLog.Info("API server gracefully stopped")
	}
	if err := application.Close(shutdownCtx); err != nil {
		zapLog.Warn("Error releasing dependencies", zap.Error(err))
	}
	zapLog.Info("Application exiting")
}
