package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Bhargavmupparisetty/Trackable-pages/internal/config"
	"github.com/Bhargavmupparisetty/Trackable-pages/internal/handlers"
	"github.com/Bhargavmupparisetty/Trackable-pages/internal/repository"
	"github.com/Bhargavmupparisetty/Trackable-pages/internal/services"
	"github.com/Bhargavmupparisetty/Trackable-pages/internal/store"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func Run(ctx context.Context) error {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// 2. Setup Logger
	var handler slog.Handler
	if cfg.AppEnv == "production" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	// 3. Initialize the Tracking Store
	var trackingStore store.Store
	if cfg.DatabaseURL == "" || cfg.DatabaseURL == "memory" {
		trackingStore = store.NewMemoryStore()
		logger.Info("Using in-memory tracking store")
	} else {
		db, err := repository.InitDB(cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		if strings.HasPrefix(cfg.DatabaseURL, "postgres") {
			logger.Info("Running database migrations...")
			if err := repository.RunMigrations(cfg.DatabaseURL, ""); err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}
		}
		trackingStore = store.NewGormStore(db, logger)
		logger.Info("Using database tracking store")
	}

	// 4. Initialize Redis (optional QR cache)
	rdb, err := repository.InitRedis(cfg.RedisURL, cfg.RedisPassword, 0)
	if err != nil {
		logger.Warn("Failed to connect to Redis", "error", err)
		rdb = nil
	}

	// 5. Initialize Services
	geoIPService := services.NewGeoIPService(cfg, logger)
	collectorService := services.NewCollectorService(geoIPService)
	trackerService := services.NewTrackerService(trackingStore, collectorService, logger)
	qrService := services.NewQRService()

	// 6. Initialize Handler
	h := handlers.NewHandler(cfg, logger, rdb, trackerService, qrService)

	// 7. Setup Router
	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := h.SetupRouter("web/templates/*", "./web/static")

	// 8. Start Server with Graceful Shutdown
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	// Background Context for workers
	workerCtx, workerCancel := context.WithCancel(context.Background())
	defer workerCancel()

	go geoIPService.Init()
	go geoIPService.StartUpdater(workerCtx)

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Starting server", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Wait for context cancellation or server error
	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		logger.Info("Shutting down server...")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}

	workerCancel()
	// Wait a tiny bit for workers
	time.Sleep(100 * time.Millisecond)

	logger.Info("Server exiting")
	return nil
}
