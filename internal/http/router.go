package api

import (
	"log"
	stdhttp "net/http"

	"lakbay/internal/http/handlers"
	"lakbay/internal/http/middleware"
	"lakbay/internal/refdata"
	"lakbay/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Deps carries the wired services the router exposes.
type Deps struct {
	Store     *refdata.Store
	Transport services.TransportService
	Budget    services.BudgetService
	Locator   services.AirportLocator
}

func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS())

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	transport := handlers.TransportHandler{Service: d.Transport}
	budget := handlers.BudgetHandler{Service: d.Budget}
	airports := handlers.AirportsHandler{Store: d.Store, Locator: d.Locator, Matcher: d.Transport.Routes}
	system := handlers.SystemHandler{Store: d.Store}

	api := r.Group("/api")
	{
		api.GET("/health", system.Health)

		api.POST("/transport/recommend", transport.Recommend)
		api.POST("/budget/estimate", budget.Estimate)

		api.GET("/airports", airports.List)
		api.GET("/airports/nearest", airports.Nearest)
		api.GET("/routes", airports.Routes)
	}

	return r
}
