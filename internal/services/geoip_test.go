package services

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/oschwald/geoip2-golang"
	"github.com/oschwald/maxminddb-golang"
	"github.com/stretchr/testify/assert"

	"github.com/Bhargavmupparisetty/Trackable-pages/internal/config"
)

type mockGeoIPReader struct {
	cityFunc     func(ip net.IP) (*geoip2.City, error)
	metadataFunc func() maxminddb.Metadata
	closeFunc    func() error
}

func (m *mockGeoIPReader) City(ip net.IP) (*geoip2.City, error) { return m.cityFunc(ip) }
func (m *mockGeoIPReader) Metadata() maxminddb.Metadata {
	if m.metadataFunc != nil {
		return m.metadataFunc()
	}
	return maxminddb.Metadata{}
}
func (m *mockGeoIPReader) Close() error {
	if m.closeFunc != nil {
		return m.closeFunc()
	}
	return nil
}

func unknownEverywhere() GeoLocation {
	return GeoLocation{Country: "Unknown", Region: "Unknown", City: "Unknown", Timezone: "Unknown"}
}

func TestGeoIPService_Init_NoDatabaseNoCredentials(t *testing.T) {
	cfg := config.Config{
		MaxMindDBPath: filepath.Join(t.TempDir(), "missing.mmdb"),
	}
	service := NewGeoIPService(cfg, slog.Default())
	service.Init()
	assert.Nil(t, service.geoReader)
}

func TestGeoIPService_Lookup(t *testing.T) {
	service := NewGeoIPService(config.Config{}, slog.Default())

	t.Run("Nil Reader", func(t *testing.T) {
		assert.Equal(t, unknownEverywhere(), service.Lookup("8.8.8.8"))
	})

	t.Run("Invalid IP", func(t *testing.T) {
		assert.Equal(t, unknownEverywhere(), service.Lookup("not-an-ip"))
	})

	t.Run("Loopback", func(t *testing.T) {
		assert.Equal(t, unknownEverywhere(), service.Lookup("127.0.0.1"))
		assert.Equal(t, unknownEverywhere(), service.Lookup("::1"))
	})

	t.Run("Private Address", func(t *testing.T) {
		assert.Equal(t, unknownEverywhere(), service.Lookup("192.168.1.50"))
	})

	t.Run("Reader Success", func(t *testing.T) {
		mock := &mockGeoIPReader{
			cityFunc: func(ip net.IP) (*geoip2.City, error) {
				var record geoip2.City
				record.Country.Names = map[string]string{"en": "United States"}
				record.Country.IsoCode = "US"
				record.City.Names = map[string]string{"en": "New York"}
				record.Location.TimeZone = "America/New_York"
				return &record, nil
			},
		}
		service.geoReader = mock
		defer func() { service.geoReader = nil }()

		loc := service.Lookup("8.8.8.8")
		assert.Equal(t, "United States", loc.Country)
		assert.Equal(t, "New York", loc.City)
		assert.Equal(t, "America/New_York", loc.Timezone)
		assert.Equal(t, "Unknown", loc.Region)
	})

	t.Run("Country IsoCode fallback", func(t *testing.T) {
		mock := &mockGeoIPReader{
			cityFunc: func(ip net.IP) (*geoip2.City, error) {
				var record geoip2.City
				record.Country.IsoCode = "FR"
				return &record, nil
			},
		}
		service.geoReader = mock
		defer func() { service.geoReader = nil }()

		loc := service.Lookup("8.8.8.8")
		assert.Equal(t, "FR", loc.Country)
		assert.Equal(t, "Unknown", loc.City)
	})

	t.Run("Empty record resolves Unknown", func(t *testing.T) {
		mock := &mockGeoIPReader{
			cityFunc: func(ip net.IP) (*geoip2.City, error) {
				return &geoip2.City{}, nil
			},
		}
		service.geoReader = mock
		defer func() { service.geoReader = nil }()

		assert.Equal(t, unknownEverywhere(), service.Lookup("8.8.8.8"))
	})

	t.Run("Reader Error absorbed", func(t *testing.T) {
		mock := &mockGeoIPReader{
			cityFunc: func(ip net.IP) (*geoip2.City, error) {
				return nil, errors.New("db error")
			},
		}
		service.geoReader = mock
		defer func() { service.geoReader = nil }()

		assert.Equal(t, unknownEverywhere(), service.Lookup("8.8.8.8"))
	})
}

func TestGeoIPService_StartUpdater_Disabled(t *testing.T) {
	service := NewGeoIPService(config.Config{}, slog.Default())
	service.StartUpdater(context.Background()) // Should return immediately
}

func TestGeoIPService_StartUpdater_Stop(t *testing.T) {
	cfg := config.Config{
		MaxMindAccountID: "test",
		MaxMindDBPath:    "invalid",
	}
	service := NewGeoIPService(cfg, slog.Default())
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		service.StartUpdaterWithInterval(ctx, 10*time.Millisecond)
		close(done)
	}()

	time.Sleep(25 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("updater did not stop")
	}
}

func TestGeoIPService_ReloadReader(t *testing.T) {
	t.Run("Open error leaves reader nil", func(t *testing.T) {
		service := NewGeoIPService(config.Config{}, slog.Default())
		service.reloadReader("non-existent-file")
		assert.Nil(t, service.geoReader)
	})

	t.Run("Previous reader closed", func(t *testing.T) {
		service := NewGeoIPService(config.Config{}, slog.Default())
		closed := false
		service.geoReader = &mockGeoIPReader{
			closeFunc: func() error {
				closed = true
				return nil
			},
		}

		service.reloadReader("non-existent")
		assert.True(t, closed)
		assert.Nil(t, service.geoReader)
	})
}

func TestGeoIPService_UpdateGeoDB_WriteError(t *testing.T) {
	tempFile, err := os.CreateTemp("", "geoip-file")
	assert.NoError(t, err)
	defer os.Remove(tempFile.Name())
	tempFile.Close()

	// Use the file as a directory path so the conf write fails
	cfg := config.Config{
		MaxMindDBPath: filepath.Join(tempFile.Name(), "db.mmdb"),
	}
	service := NewGeoIPService(cfg, slog.Default())
	err = service.updateGeoDB()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write GeoIP.conf")
}
