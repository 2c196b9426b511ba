package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ShowIndex(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", nil)
}
