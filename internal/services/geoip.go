package services

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"time"

	"github.com/oschwald/geoip2-golang"
	"github.com/oschwald/maxminddb-golang"

	"github.com/Bhargavmupparisetty/Trackable-pages/internal/config"
)

const unknownLocation = "Unknown"

// GeoLocation is the best-effort result of an offline IP lookup. Every
// field that cannot be resolved holds "Unknown"; a lookup never fails.
type GeoLocation struct {
	Country  string
	Region   string
	City     string
	Timezone string
}

type geoReader interface {
	City(ip net.IP) (*geoip2.City, error)
	Metadata() maxminddb.Metadata
	Close() error
}

type GeoIPService struct {
	cfg       config.Config
	logger    *slog.Logger
	geoReader geoReader
	geoLock   sync.RWMutex
}

func NewGeoIPService(cfg config.Config, logger *slog.Logger) *GeoIPService {
	return &GeoIPService{
		cfg:    cfg,
		logger: logger,
	}
}

// Init opens the local MaxMind database. When the file is absent and
// credentials are configured, it downloads a fresh copy first. Lookups stay
// disabled (all fields "Unknown") if neither is available.
func (s *GeoIPService) Init() {
	dbPath := s.cfg.MaxMindDBPath

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		if s.cfg.MaxMindAccountID == "" || s.cfg.MaxMindLicenseKey == "" {
			s.logger.Warn("GeoIP: No database and no MaxMind credentials. Lookups will be disabled.")
			return
		}

		if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
			s.logger.Error("GeoIP: Failed to create directory", "dir", filepath.Dir(dbPath), "error", err)
			return
		}

		s.logger.Info("GeoIP: Database missing, downloading...")
		if err := s.updateGeoDB(); err != nil {
			s.logger.Error("GeoIP: Initial download failed", "error", err)
			return
		}
	}

	s.reloadReader(dbPath)
}

func (s *GeoIPService) StartUpdater(ctx context.Context) {
	s.StartUpdaterWithInterval(ctx, 24*time.Hour)
}

func (s *GeoIPService) StartUpdaterWithInterval(ctx context.Context, interval time.Duration) {
	if s.cfg.MaxMindAccountID == "" {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.logger.Info("GeoIP: Running scheduled update...")
			if err := s.updateGeoDB(); err != nil {
				s.logger.Error("GeoIP: Update failed", "error", err)
				continue
			}
			s.reloadReader(s.cfg.MaxMindDBPath)
		case <-ctx.Done():
			s.logger.Info("GeoIP: Updater stopping")
			return
		}
	}
}

func (s *GeoIPService) updateGeoDB() error {
	dbDir := filepath.Dir(s.cfg.MaxMindDBPath)
	confPath := filepath.Join(dbDir, "GeoIP.conf")

	content := fmt.Sprintf("AccountID %s\nLicenseKey %s\nEditionIDs %s\nDatabaseDirectory %s\n",
		s.cfg.MaxMindAccountID, s.cfg.MaxMindLicenseKey, s.cfg.MaxMindEditionIDs, dbDir)

	if err := os.WriteFile(confPath, []byte(content), 0600); err != nil {
		return fmt.Errorf("failed to write GeoIP.conf: %w", err)
	}
	defer os.Remove(confPath)

	cmd := exec.Command("geoipupdate", "-v", "-f", confPath, "-d", dbDir)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("geoipupdate failed: %w, output: %s", err, string(output))
	}

	s.logger.Info("GeoIP: Database updated successfully")
	return nil
}

func (s *GeoIPService) reloadReader(path string) {
	s.geoLock.Lock()
	defer s.geoLock.Unlock()

	if s.geoReader != nil {
		s.geoReader.Close()
	}
	s.geoReader = nil

	reader, err := geoip2.Open(path)
	if err != nil {
		s.logger.Error("GeoIP: Failed to open database", "path", path, "error", err)
		return
	}
	s.geoReader = reader

	meta := reader.Metadata()
	s.logger.Info("GeoIP: Loaded database", "epoch", meta.BuildEpoch)
}

// Lookup resolves an IP to a location. It never fails and never blocks on
// the network: any miss, parse error, or missing database yields "Unknown"
// fields.
func (s *GeoIPService) Lookup(ipStr string) GeoLocation {
	loc := GeoLocation{
		Country:  unknownLocation,
		Region:   unknownLocation,
		City:     unknownLocation,
		Timezone: unknownLocation,
	}

	ip := net.ParseIP(ipStr)
	if ip == nil || ip.IsLoopback() || ip.IsPrivate() {
		return loc
	}

	s.geoLock.RLock()
	reader := s.geoReader
	s.geoLock.RUnlock()

	if reader == nil {
		return loc
	}

	record, err := reader.City(ip)
	if err != nil {
		s.logger.Error("GeoIP: Lookup error", "ip", ipStr, "error", err)
		return loc
	}

	if name, ok := record.Country.Names["en"]; ok && name != "" {
		loc.Country = name
	} else if record.Country.IsoCode != "" {
		loc.Country = record.Country.IsoCode
	}

	if len(record.Subdivisions) > 0 {
		if name, ok := record.Subdivisions[0].Names["en"]; ok && name != "" {
			loc.Region = name
		}
	}

	if name, ok := record.City.Names["en"]; ok && name != "" {
		loc.City = name
	}

	if record.Location.TimeZone != "" {
		loc.Timezone = record.Location.TimeZone
	}

	return loc
}
