package handlers

import (
	"net/http"
	"strings"

	"lakbay/internal/domain"
	"lakbay/internal/http/middleware"
	"lakbay/internal/refdata"
	"lakbay/internal/services"

	"github.com/gin-gonic/gin"
)

// AirportsHandler serves airport lookups and reference listings.
type AirportsHandler struct {
	Store   *refdata.Store
	Locator services.AirportLocator
	Matcher services.RouteMatcher
}

// Nearest answers GET /api/airports/nearest?city=.
func (h AirportsHandler) Nearest(c *gin.Context) {
	city := strings.TrimSpace(c.Query("city"))
	if city == "" {
		RespondError(c, http.StatusBadRequest, "query parameter city is required", nil)
		return
	}

	locator := h.Locator
	locator.RequestID = middleware.GetRequestID(c)

	c.JSON(http.StatusOK, gin.H{
		"city":       city,
		"match":      locator.FindNearest(c.Request.Context(), city),
		"request_id": locator.RequestID,
	})
}

// List answers GET /api/airports with the full registry.
func (h AirportsHandler) List(c *gin.Context) {
	airports := h.Store.Airports()
	c.JSON(http.StatusOK, gin.H{
		"airports": airports,
		"count":    len(airports),
	})
}

// Routes answers GET /api/routes with the documented ground routes.
// With from/to query params it looks a single pair up instead; an
// undocumented pair is a 404.
func (h AirportsHandler) Routes(c *gin.Context) {
	from := strings.TrimSpace(c.Query("from"))
	to := strings.TrimSpace(c.Query("to"))
	if from != "" || to != "" {
		route, ok := h.Matcher.Find(from, to)
		if !ok {
			RespondDomainError(c, domain.LookupMissError{Kind: "ground route", Name: from + " - " + to})
			return
		}
		c.JSON(http.StatusOK, gin.H{"route": route})
		return
	}

	routes := h.Store.Routes()
	c.JSON(http.StatusOK, gin.H{
		"routes": routes,
		"count":  len(routes),
	})
}
