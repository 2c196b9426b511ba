package models

import (
	"time"
)

// TrackingEntry is one generated tracking link and everything observed
// through it. Entries are append-only: clicks are added, never rewritten,
// and an entry is never deleted within the process lifetime.
type TrackingEntry struct {
	ID        string        `gorm:"primaryKey;size:36" json:"id"`
	TargetURL string        `gorm:"not null;type:text" json:"targetUrl"`
	CreatedAt time.Time     `gorm:"default:CURRENT_TIMESTAMP" json:"createdAt"`
	Clicks    []ClickRecord `gorm:"foreignKey:TrackingID;constraint:OnDelete:CASCADE" json:"clicks,omitempty"`
}

func (TrackingEntry) TableName() string {
	return "tracking_entries"
}

// ClickRecord is a single observation of a visit. Timestamp and IP are
// always server-populated; every client-supplied field is optional and
// stays nil when the browser never reported it.
type ClickRecord struct {
	RowID      uint   `gorm:"primaryKey" json:"-"`
	TrackingID string `gorm:"size:36;not null;index" json:"-"`

	UserAgent string    `gorm:"type:text" json:"userAgent"`
	Platform  string    `gorm:"size:100" json:"platform"`
	Browser   string    `gorm:"size:100" json:"browser"`
	Version   string    `gorm:"size:50" json:"version"`
	OS        string    `gorm:"size:100" json:"os"`
	IsMobile  bool      `json:"isMobile"`
	IsDesktop bool      `json:"isDesktop"`
	IsBot     bool      `json:"isBot"`
	Referer   string    `gorm:"size:255;default:'Direct'" json:"referer"`
	Language  string    `gorm:"size:50" json:"language"`
	IP        string    `gorm:"size:45" json:"ip"`
	Timestamp time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"timestamp"`
	Country   string    `gorm:"size:100;default:'Unknown'" json:"country"`
	Region    string    `gorm:"size:100" json:"region"`
	City      string    `gorm:"size:100" json:"city"`
	Timezone  string    `gorm:"size:100" json:"timezone"`

	BatteryPercentage *float64         `json:"batteryPercentage,omitempty"`
	BatteryCharging   *bool            `json:"batteryCharging,omitempty"`
	PreciseLocation   *PreciseLocation `gorm:"embedded;embeddedPrefix:loc_" json:"preciseLocation,omitempty"`
	ScreenResolution  *string          `gorm:"size:50" json:"screenResolution,omitempty"`
	ConnectionType    *string          `gorm:"size:50" json:"connectionType,omitempty"`
	MemoryUsage       *float64         `json:"memoryUsage,omitempty"`
	TimeOnPage        *float64         `json:"timeOnPage,omitempty"`
	DeviceOrientation *string          `gorm:"size:50" json:"deviceOrientation,omitempty"`
}

func (ClickRecord) TableName() string {
	return "click_records"
}

// PreciseLocation is the browser-reported GPS fix, present only when the
// visitor granted the geolocation permission before the collection window
// closed.
type PreciseLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Accuracy  float64 `json:"accuracy"`
}

// TrackingSummary is the admin-facing enumeration row.
type TrackingSummary struct {
	ID         string    `json:"id"`
	TargetURL  string    `json:"targetUrl"`
	CreatedAt  time.Time `json:"createdAt"`
	ClickCount int       `json:"clickCount"`
}
