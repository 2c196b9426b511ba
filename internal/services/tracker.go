package services

import (
	"log/slog"
	"net/http"

	"github.com/Bhargavmupparisetty/Trackable-pages/internal/models"
	"github.com/Bhargavmupparisetty/Trackable-pages/internal/store"
)

// TrackerService drives the per-visit recording sequence. A visit against a
// known id produces one immediate server-side record, then optionally a
// second record when the browser posts its telemetry before navigating away.
// The two phases append independent records; they are never merged.
type TrackerService struct {
	store     store.Store
	collector *CollectorService
	logger    *slog.Logger
}

func NewTrackerService(store store.Store, collector *CollectorService, logger *slog.Logger) *TrackerService {
	return &TrackerService{
		store:     store,
		collector: collector,
		logger:    logger,
	}
}

// CreateTracking registers a new tracking entry for a target URL.
func (s *TrackerService) CreateTracking(targetURL string) (*models.TrackingEntry, error) {
	entry, err := s.store.Create(targetURL)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Tracking link created", "id", entry.ID, "target", targetURL)
	return entry, nil
}

// RecordVisit handles the redirect-time phase: it appends a basic record
// built from server-observed data only and returns the entry so the caller
// can render the collection page. Unknown ids mutate nothing.
func (s *TrackerService) RecordVisit(id string, r *http.Request) (*models.TrackingEntry, bool) {
	entry, ok := s.store.Get(id)
	if !ok {
		return nil, false
	}

	click := s.collector.Collect(r, nil)
	if !s.store.Append(id, &click) {
		// Entries are never deleted, so a vanished id here means a store
		// backend failure; the visitor still gets redirected.
		s.logger.Error("Failed to record visit", "id", id)
	}

	return entry, true
}

// RecordEvent handles the enrichment phase: the deferred client POST. The
// payload may carry any subset of telemetry fields. Reports false for
// unknown ids.
func (s *TrackerService) RecordEvent(id string, r *http.Request, payload *TelemetryPayload) bool {
	click := s.collector.Collect(r, payload)
	return s.store.Append(id, &click)
}

// Get exposes a store snapshot for stats computation.
func (s *TrackerService) Get(id string) (*models.TrackingEntry, bool) {
	return s.store.Get(id)
}

// ListAll enumerates every tracking entry as a summary.
func (s *TrackerService) ListAll() ([]models.TrackingSummary, error) {
	return s.store.ListAll()
}
