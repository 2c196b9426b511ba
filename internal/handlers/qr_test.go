package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrackingQR(t *testing.T) {
	h, s := setupTestHandler()
	r := setupTestRouter(h)

	t.Run("404 Unknown id", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/qr/doesnotexist", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("PNG for known id", func(t *testing.T) {
		entry, _ := s.Create("https://example.com")

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/qr/"+entry.ID, nil)
		req.Host = "tracker.test"
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
		assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, w.Body.Bytes()[:4])
	})

	t.Run("Custom size and colors", func(t *testing.T) {
		entry, _ := s.Create("https://example.com")

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/qr/"+entry.ID+"?size=128&fg=%23000080&bg=%23FFFFFF", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	})
}
