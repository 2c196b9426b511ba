package store

import (
	"sync"
	"time"

	"github.com/Bhargavmupparisetty/Trackable-pages/internal/models"
	"github.com/Bhargavmupparisetty/Trackable-pages/pkg/utils"
)

// MemoryStore keeps all tracking entries in a mutex-guarded map for the
// lifetime of the process. It is the default backend: no persistence, no
// expiry, no startup recovery.
type MemoryStore struct {
	mu          sync.RWMutex
	entries     map[string]*models.TrackingEntry
	order       []string // creation order for ListAll
	idGenerator func() string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries:     make(map[string]*models.TrackingEntry),
		idGenerator: utils.GenerateTrackingID,
	}
}

func (s *MemoryStore) Create(targetURL string) (*models.TrackingEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.idGenerator()
	entry := &models.TrackingEntry{
		ID:        id,
		TargetURL: targetURL,
		CreatedAt: time.Now().UTC(),
		Clicks:    []models.ClickRecord{},
	}
	s.entries[id] = entry
	s.order = append(s.order, id)

	return snapshot(entry), nil
}

func (s *MemoryStore) Append(id string, click *models.ClickRecord) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[id]
	if !ok {
		return false
	}
	entry.Clicks = append(entry.Clicks, *click)
	return true
}

func (s *MemoryStore) Get(id string) (*models.TrackingEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[id]
	if !ok {
		return nil, false
	}
	return snapshot(entry), true
}

func (s *MemoryStore) ListAll() ([]models.TrackingSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	summaries := make([]models.TrackingSummary, 0, len(s.order))
	for _, id := range s.order {
		entry := s.entries[id]
		summaries = append(summaries, models.TrackingSummary{
			ID:         entry.ID,
			TargetURL:  entry.TargetURL,
			CreatedAt:  entry.CreatedAt,
			ClickCount: len(entry.Clicks),
		})
	}
	return summaries, nil
}

// snapshot copies an entry so readers never observe a concurrent append.
func snapshot(entry *models.TrackingEntry) *models.TrackingEntry {
	out := *entry
	out.Clicks = make([]models.ClickRecord, len(entry.Clicks))
	copy(out.Clicks, entry.Clicks)
	return &out
}
