package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type GenerateRequest struct {
	TargetURL string `json:"target_url" form:"target_url" binding:"required"`
}

// GenerateTracking issues a fresh tracking URL for an operator-supplied
// target. The target itself is stored as-is, unvalidated.
func (h *Handler) GenerateTracking(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "target_url is required"})
		return
	}
	if strings.TrimSpace(req.TargetURL) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "target_url is required"})
		return
	}

	entry, err := h.tracker.CreateTracking(req.TargetURL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"trackingUrl": h.trackingURL(c, entry.ID),
		"trackingId":  entry.ID,
	})
}

// trackingURL builds the public URL for an id, preferring the configured
// base URL so links survive reverse proxies.
func (h *Handler) trackingURL(c *gin.Context, id string) string {
	base := h.cfg.BaseURL
	if base == "" {
		scheme := "http"
		if c.Request.TLS != nil {
			scheme = "https"
		}
		base = scheme + "://" + c.Request.Host
	}
	return strings.TrimSuffix(base, "/") + "/track/" + id
}
