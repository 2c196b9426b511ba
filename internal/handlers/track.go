package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Bhargavmupparisetty/Trackable-pages/internal/services"
)

// TrackVisit handles the redirect-time phase of a visit. The response is a
// 200 HTML page rather than an HTTP redirect: the page runs the client-side
// collection script first and only then navigates to the target URL.
func (h *Handler) TrackVisit(c *gin.Context) {
	id := c.Param("id")

	entry, ok := h.tracker.RecordVisit(id, c.Request)
	if !ok {
		c.String(http.StatusNotFound, "Invalid URL")
		return
	}

	c.HTML(http.StatusOK, "track.html", gin.H{
		"TrackingID": entry.ID,
		"TargetURL":  entry.TargetURL,
	})
}

// TrackEvent receives the deferred client telemetry POST. The body may hold
// any subset of fields; only unparsable JSON is rejected.
func (h *Handler) TrackEvent(c *gin.Context) {
	id := c.Param("id")

	var payload services.TelemetryPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}

	if !h.tracker.RecordEvent(id, c.Request, &payload) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Invalid tracking ID"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
