package services

import (
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/mssola/user_agent"

	"github.com/Bhargavmupparisetty/Trackable-pages/internal/models"
)

// TelemetryPayload is the free-form body of a client report. Every field is
// optional; the browser sends whichever subset its APIs yielded before the
// collection window closed.
type TelemetryPayload struct {
	BatteryPercentage *float64                `json:"batteryPercentage"`
	BatteryCharging   *bool                   `json:"batteryCharging"`
	PreciseLocation   *models.PreciseLocation `json:"preciseLocation"`
	ScreenResolution  *string                 `json:"screenResolution"`
	ConnectionType    *string                 `json:"connectionType"`
	MemoryUsage       *float64                `json:"memoryUsage"`
	TimeOnPage        *float64                `json:"timeOnPage"`
	DeviceOrientation *string                 `json:"deviceOrientation"`
}

// CollectorService turns one inbound request into a click record. It only
// reads its inputs: all shared state stays untouched, so a collect can run
// on any request goroutine without coordination.
type CollectorService struct {
	geoIP *GeoIPService
}

func NewCollectorService(geoIP *GeoIPService) *CollectorService {
	return &CollectorService{geoIP: geoIP}
}

// Collect derives the server-observed fields from the request and, when a
// payload is present, copies the client-reported fields verbatim. A nil
// payload yields a basic redirect-time record.
func (s *CollectorService) Collect(r *http.Request, payload *TelemetryPayload) models.ClickRecord {
	ip := clientIP(r)
	loc := s.geoIP.Lookup(ip)

	uaString := r.UserAgent()
	ua := user_agent.New(uaString)
	browser, version := ua.Browser()

	platform := ua.Platform()
	if platform == "" {
		platform = "Unknown"
	}

	isMobile := ua.Mobile()
	isBot := ua.Bot()

	click := models.ClickRecord{
		UserAgent: uaString,
		Platform:  platform,
		Browser:   browser,
		Version:   version,
		OS:        ua.OS(),
		IsMobile:  isMobile,
		IsBot:     isBot,
		IsDesktop: !isMobile && !isBot,
		Referer:   referer(r),
		Language:  language(r),
		IP:        ip,
		Timestamp: time.Now().UTC(),
		Country:   loc.Country,
		Region:    loc.Region,
		City:      loc.City,
		Timezone:  loc.Timezone,
	}

	if payload != nil {
		click.BatteryPercentage = payload.BatteryPercentage
		click.BatteryCharging = payload.BatteryCharging
		click.PreciseLocation = payload.PreciseLocation
		click.ScreenResolution = payload.ScreenResolution
		click.ConnectionType = payload.ConnectionType
		click.MemoryUsage = payload.MemoryUsage
		click.TimeOnPage = payload.TimeOnPage
		click.DeviceOrientation = payload.DeviceOrientation
	}

	return click
}

// clientIP prefers the first X-Forwarded-For hop, falling back to the raw
// peer address.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return strings.TrimSpace(strings.Split(fwd, ",")[0])
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

func referer(r *http.Request) string {
	if ref := r.Referer(); ref != "" {
		return ref
	}
	return "Direct"
}

func language(r *http.Request) string {
	if accept := r.Header.Get("Accept-Language"); accept != "" {
		return strings.TrimSpace(strings.Split(accept, ",")[0])
	}
	return "Unknown"
}
