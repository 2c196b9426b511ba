package handlers

import (
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/Bhargavmupparisetty/Trackable-pages/internal/config"
	"github.com/Bhargavmupparisetty/Trackable-pages/internal/services"
	"github.com/Bhargavmupparisetty/Trackable-pages/internal/store"
)

func setupTestHandler() (*Handler, store.Store) {
	s := store.NewMemoryStore()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	cfg := config.Config{}

	geoIP := services.NewGeoIPService(cfg, logger)
	collector := services.NewCollectorService(geoIP)
	tracker := services.NewTrackerService(s, collector, logger)
	qr := services.NewQRService()

	// Use a dummy redis client (not connected) with no retries
	rdb := redis.NewClient(&redis.Options{
		Addr:       "localhost:1",
		MaxRetries: -1,
	})

	h := NewHandler(cfg, logger, rdb, tracker, qr)
	return h, s
}

func setupTestRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return h.SetupRouter("../../web/templates/*", "../../web/static")
}
