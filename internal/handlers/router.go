package handlers

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func (h *Handler) SetupRouter(templatePath string, staticPath string) *gin.Engine {
	r := gin.Default()

	if templatePath != "" {
		r.LoadHTMLGlob(templatePath)
	}
	if staticPath != "" {
		r.Static("/static", staticPath)
	}

	// Middleware
	r.Use(cors.Default())
	r.Use(h.RequestLogger())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy"})
	})

	// Operator UI
	r.GET("/", h.ShowIndex)

	// Tracking API
	r.POST("/generate", h.GenerateTracking)
	r.GET("/track/:id", h.TrackVisit)
	r.POST("/track-event/:id", h.TrackEvent)
	r.GET("/tracking-data/:id", h.TrackingData)
	r.GET("/all-tracking-ids", h.AllTrackingIDs)
	r.GET("/qr/:id", h.TrackingQR)

	return r
}
