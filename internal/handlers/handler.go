package handlers

import (
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/Bhargavmupparisetty/Trackable-pages/internal/config"
	"github.com/Bhargavmupparisetty/Trackable-pages/internal/services"
)

type Handler struct {
	cfg     config.Config
	logger  *slog.Logger
	rdb     *redis.Client
	tracker *services.TrackerService
	qr      *services.QRService
}

func NewHandler(
	cfg config.Config,
	logger *slog.Logger,
	rdb *redis.Client,
	tracker *services.TrackerService,
	qr *services.QRService,
) *Handler {
	return &Handler{
		cfg:     cfg,
		logger:  logger,
		rdb:     rdb,
		tracker: tracker,
		qr:      qr,
	}
}
