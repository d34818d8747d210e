package handlers

import (
	"net/http"

	"lakbay/internal/http/middleware"
	"lakbay/internal/services"

	"github.com/gin-gonic/gin"
)

// TransportHandler serves the decision-engine endpoint.
type TransportHandler struct {
	Service services.TransportService
}

type recommendRequest struct {
	DepartureCity   string `json:"departureCity"`
	DestinationCity string `json:"destinationCity"`
	// IncludeFlights defaults to true when omitted.
	IncludeFlights *bool `json:"includeFlights"`
}

func (h TransportHandler) Recommend(c *gin.Context) {
	var req recommendRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	includeFlights := true
	if req.IncludeFlights != nil {
		includeFlights = *req.IncludeFlights
	}

	svc := h.Service
	svc.RequestID = middleware.GetRequestID(c)

	rec := svc.Recommend(c.Request.Context(), req.DepartureCity, req.DestinationCity, includeFlights)
	c.JSON(http.StatusOK, gin.H{
		"recommendation": rec,
		"request_id":     svc.RequestID,
	})
}
