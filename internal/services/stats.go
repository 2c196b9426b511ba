package services

import (
	"time"

	"github.com/Bhargavmupparisetty/Trackable-pages/internal/models"
)

// StatsReport is the on-demand rollup over one entry's click records.
type StatsReport struct {
	PageID        string               `json:"pageId"`
	TargetURL     string               `json:"targetUrl"`
	CreatedAt     time.Time            `json:"createdAt"`
	TotalClicks   int                  `json:"totalClicks"`
	LastClickAt   *time.Time           `json:"lastClickAt,omitempty"`
	PlatformStats map[string]int       `json:"platformStats"`
	BrowserStats  map[string]int       `json:"browserStats"`
	CountryStats  map[string]int       `json:"countryStats"`
	DeviceStats   DeviceStats          `json:"deviceStats"`
	BatteryStats  BatteryStats         `json:"batteryStats"`
	ClickDetails  []models.ClickRecord `json:"clickDetails"`
}

// DeviceStats tallies each click into exactly one class, first match wins:
// mobile before desktop before bot.
type DeviceStats struct {
	Mobile  int `json:"mobile"`
	Desktop int `json:"desktop"`
	Bot     int `json:"bot"`
	Other   int `json:"other"`
}

type BatteryStats struct {
	Charging    int           `json:"charging"`
	NotCharging int           `json:"notCharging"`
	Unknown     int           `json:"unknown"`
	Levels      BatteryLevels `json:"levels"`
}

// BatteryLevels buckets reported percentages: low below 20, medium 20-49,
// high 50 and up. Missing percentages land in unknown.
type BatteryLevels struct {
	Low     int `json:"low"`
	Medium  int `json:"medium"`
	High    int `json:"high"`
	Unknown int `json:"unknown"`
}

// ComputeStats scans the click sequence once and builds the full report.
// It recomputes from scratch on every call; nothing is cached or maintained
// incrementally.
func ComputeStats(entry *models.TrackingEntry) StatsReport {
	report := StatsReport{
		PageID:        entry.ID,
		TargetURL:     entry.TargetURL,
		CreatedAt:     entry.CreatedAt,
		TotalClicks:   len(entry.Clicks),
		PlatformStats: make(map[string]int),
		BrowserStats:  make(map[string]int),
		CountryStats:  make(map[string]int),
		ClickDetails:  entry.Clicks,
	}
	if report.ClickDetails == nil {
		report.ClickDetails = []models.ClickRecord{}
	}

	if n := len(entry.Clicks); n > 0 {
		last := entry.Clicks[n-1].Timestamp
		report.LastClickAt = &last
	}

	for i := range entry.Clicks {
		click := &entry.Clicks[i]

		report.PlatformStats[click.Platform]++
		report.BrowserStats[click.Browser]++
		report.CountryStats[click.Country]++

		switch {
		case click.IsMobile:
			report.DeviceStats.Mobile++
		case click.IsDesktop:
			report.DeviceStats.Desktop++
		case click.IsBot:
			report.DeviceStats.Bot++
		default:
			report.DeviceStats.Other++
		}

		switch {
		case click.BatteryCharging == nil:
			report.BatteryStats.Unknown++
		case *click.BatteryCharging:
			report.BatteryStats.Charging++
		default:
			report.BatteryStats.NotCharging++
		}

		switch {
		case click.BatteryPercentage == nil:
			report.BatteryStats.Levels.Unknown++
		case *click.BatteryPercentage < 20:
			report.BatteryStats.Levels.Low++
		case *click.BatteryPercentage < 50:
			report.BatteryStats.Levels.Medium++
		default:
			report.BatteryStats.Levels.High++
		}
	}

	return report
}
