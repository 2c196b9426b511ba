package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Bhargavmupparisetty/Trackable-pages/internal/services"
)

// TrackingData returns the rollup report for one tracking entry, recomputed
// from the full click sequence on every call.
func (h *Handler) TrackingData(c *gin.Context) {
	id := c.Param("id")

	entry, ok := h.tracker.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Invalid tracking ID"})
		return
	}

	c.JSON(http.StatusOK, services.ComputeStats(entry))
}

// AllTrackingIDs enumerates every entry for the admin panel.
func (h *Handler) AllTrackingIDs(c *gin.Context) {
	summaries, err := h.tracker.ListAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summaries)
}
