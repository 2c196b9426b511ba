package utils

import (
	"github.com/google/uuid"
)

// GenerateTrackingID returns a fresh opaque tracking identifier. A v4 UUID
// carries 122 random bits, so collisions are negligible without a uniqueness
// check against the store.
func GenerateTrackingID() string {
	return uuid.NewString()
}
