package handlers

import (
	"net/http"

	"lakbay/internal/http/middleware"
	"lakbay/internal/services"

	"github.com/gin-gonic/gin"
)

// BudgetHandler serves the trip budget estimator.
type BudgetHandler struct {
	Service services.BudgetService
}

type estimateRequest struct {
	Destination    string `json:"destination"`
	Departure      string `json:"departure"`
	DurationDays   int    `json:"durationDays"`
	Travelers      int    `json:"travelers"`
	IncludeFlights *bool  `json:"includeFlights"`
	StartDate      string `json:"startDate"`
}

func (h BudgetHandler) Estimate(c *gin.Context) {
	var req estimateRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	includeFlights := true
	if req.IncludeFlights != nil {
		includeFlights = *req.IncludeFlights
	}

	svc := h.Service
	svc.RequestID = middleware.GetRequestID(c)

	tiers, err := svc.Estimate(c.Request.Context(), services.BudgetParams{
		Destination:    req.Destination,
		Departure:      req.Departure,
		DurationDays:   req.DurationDays,
		Travelers:      req.Travelers,
		IncludeFlights: includeFlights,
		StartDate:      req.StartDate,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tiers":      tiers,
		"request_id": svc.RequestID,
	})
}
