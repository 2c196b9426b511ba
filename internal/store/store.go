package store

import (
	"github.com/Bhargavmupparisetty/Trackable-pages/internal/models"
)

// Store is the single source of truth for tracking entries. Implementations
// must serialize appends per entry: two concurrent Append calls for the same
// id may interleave in any order but never lose a record.
type Store interface {
	// Create allocates a fresh tracking id and stores a new entry with an
	// empty click sequence. The target URL is taken as-is, unvalidated.
	Create(targetURL string) (*models.TrackingEntry, error)

	// Append adds a click record to an entry. Unknown ids are a silent
	// no-op: it reports false and mutates nothing.
	Append(id string, click *models.ClickRecord) bool

	// Get returns a snapshot of an entry. Mutating the returned value does
	// not affect the stored entry.
	Get(id string) (*models.TrackingEntry, bool)

	// ListAll enumerates every entry as a summary row, oldest first.
	ListAll() ([]models.TrackingSummary, error)
}
