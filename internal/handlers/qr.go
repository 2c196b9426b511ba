package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Bhargavmupparisetty/Trackable-pages/internal/services"
)

// TrackingQR renders a QR code pointing at the tracking URL. The PNG for an
// id with default options is immutable, so it is cached in redis when one
// is configured.
func (h *Handler) TrackingQR(c *gin.Context) {
	id := c.Param("id")

	if _, ok := h.tracker.Get(id); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Invalid tracking ID"})
		return
	}

	size, _ := strconv.Atoi(c.DefaultQuery("size", "256"))
	fg := c.Query("fg")
	bg := c.Query("bg")
	customized := fg != "" || bg != "" || size != 256

	cacheKey := "qr:" + id
	if h.rdb != nil && !customized {
		if cached, err := h.rdb.Get(c.Request.Context(), cacheKey).Bytes(); err == nil {
			c.Data(http.StatusOK, "image/png", cached)
			return
		}
	}

	png, err := h.qr.GeneratePNG(services.QROptions{
		Content: h.trackingURL(c, id),
		Size:    size,
		FgColor: fg,
		BgColor: bg,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if h.rdb != nil && !customized {
		h.rdb.Set(c.Request.Context(), cacheKey, png, 10*time.Minute)
	}

	c.Data(http.StatusOK, "image/png", png)
}
