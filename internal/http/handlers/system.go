package handlers

import (
	"net/http"

	"lakbay/internal/refdata"

	"github.com/gin-gonic/gin"
)

// SystemHandler serves health and introspection endpoints.
type SystemHandler struct {
	Store *refdata.Store
}

func (h SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"refdata": gin.H{
			"airports":  len(h.Store.Airports()),
			"routes":    len(h.Store.Routes()),
			"corridors": len(h.Store.Corridors()),
		},
	})
}
