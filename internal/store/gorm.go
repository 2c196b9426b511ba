package store

import (
	"errors"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/Bhargavmupparisetty/Trackable-pages/internal/models"
	"github.com/Bhargavmupparisetty/Trackable-pages/pkg/utils"
)

// GormStore is the pluggable persistent backend, keeping entries and clicks
// as relational rows. Click ordering relies on the monotonic row id, which
// matches arrival order because appends are single inserts.
type GormStore struct {
	db          *gorm.DB
	logger      *slog.Logger
	idGenerator func() string
}

func NewGormStore(db *gorm.DB, logger *slog.Logger) *GormStore {
	return &GormStore{
		db:          db,
		logger:      logger,
		idGenerator: utils.GenerateTrackingID,
	}
}

func (s *GormStore) Create(targetURL string) (*models.TrackingEntry, error) {
	entry := models.TrackingEntry{
		ID:        s.idGenerator(),
		TargetURL: targetURL,
		CreatedAt: time.Now().UTC(),
		Clicks:    []models.ClickRecord{},
	}
	if err := s.db.Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *GormStore) Append(id string, click *models.ClickRecord) bool {
	var entry models.TrackingEntry
	if err := s.db.Select("id").Where("id = ?", id).First(&entry).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("Failed to look up tracking entry", "id", id, "error", err)
		}
		return false
	}

	row := *click
	row.RowID = 0
	row.TrackingID = id
	if err := s.db.Create(&row).Error; err != nil {
		s.logger.Error("Failed to append click record", "id", id, "error", err)
		return false
	}
	return true
}

func (s *GormStore) Get(id string) (*models.TrackingEntry, bool) {
	var entry models.TrackingEntry
	err := s.db.Preload("Clicks", func(db *gorm.DB) *gorm.DB {
		return db.Order("row_id ASC")
	}).Where("id = ?", id).First(&entry).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("Failed to load tracking entry", "id", id, "error", err)
		}
		return nil, false
	}
	if entry.Clicks == nil {
		entry.Clicks = []models.ClickRecord{}
	}
	return &entry, true
}

func (s *GormStore) ListAll() ([]models.TrackingSummary, error) {
	var rows []struct {
		ID         string
		TargetURL  string
		CreatedAt  time.Time
		ClickCount int
	}
	err := s.db.Model(&models.TrackingEntry{}).
		Select("tracking_entries.id, tracking_entries.target_url, tracking_entries.created_at, count(click_records.row_id) as click_count").
		Joins("LEFT JOIN click_records ON click_records.tracking_id = tracking_entries.id").
		Group("tracking_entries.id, tracking_entries.target_url, tracking_entries.created_at").
		Order("tracking_entries.created_at ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	summaries := make([]models.TrackingSummary, 0, len(rows))
	for _, r := range rows {
		summaries = append(summaries, models.TrackingSummary{
			ID:         r.ID,
			TargetURL:  r.TargetURL,
			CreatedAt:  r.CreatedAt,
			ClickCount: r.ClickCount,
		})
	}
	return summaries, nil
}
