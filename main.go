package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lakbay/internal/cache"
	intconfig "lakbay/internal/config"
	router "lakbay/internal/http"
	"lakbay/internal/refdata"
	"lakbay/internal/services"

	"github.com/gin-gonic/gin"
)

func main() {
	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	tunables, err := intconfig.LoadTunables(env.EngineConfigPath)
	if err != nil {
		log.Fatalf("engine config: %v", err)
	}

	store, err := refdata.NewStore()
	if err != nil {
		log.Fatalf("reference data: %v", err)
	}

	if env.RefdataDSN != "" {
		if db, err := intconfig.OpenRefdataDB(env.RefdataDSN); err != nil {
			log.Printf("warning: reference database unavailable, using embedded tables: %v", err)
		} else {
			if err := refdata.LoadOverrides(context.Background(), db, store); err != nil {
				log.Printf("warning: reference overrides not applied: %v", err)
			}
			_ = db.Close()
		}
	}

	var results cache.Store
	if env.CacheRedisAddr != "" {
		results = cache.NewRedis(env.CacheRedisAddr)
		log.Printf("result cache: redis at %s", env.CacheRedisAddr)
	} else {
		results = cache.NewMemory(env.CacheCapacity)
	}

	var geocoder *services.GeocoderClient
	if env.GeocoderURL != "" {
		geocoder = services.NewGeocoderClient(env.GeocoderURL, env.RemoteTimeout)
	}
	var authority *services.AuthorityClient
	if env.TransportAuthorityURL != "" {
		authority = services.NewAuthorityClient(env.TransportAuthorityURL, env.RemoteTimeout)
	}

	resolver := services.LocationResolver{Store: store, Geocoder: geocoder}
	locator := services.AirportLocator{Store: store, Resolver: resolver, Tunables: tunables}
	transport := services.TransportService{
		Store:     store,
		Resolver:  resolver,
		Locator:   locator,
		Routes:    services.RouteMatcher{Store: store},
		Regional:  services.RegionalClassifier{Store: store},
		Authority: authority,
		Cache:     results,
		CacheTTL:  env.CacheTTL,
		Tunables:  tunables,
	}
	budget := services.BudgetService{
		Store:     store,
		Transport: transport,
		Pricing:   services.PricingAdjuster{Flight: tunables.Flight},
		Cache:     results,
		CacheTTL:  env.CacheTTL,
		Tunables:  tunables,
	}

	r := router.NewRouter(router.Deps{
		Store:     store,
		Transport: transport,
		Budget:    budget,
		Locator:   locator,
	})

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("listening on http://localhost%s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("shutdown: %v", err)
	}

	log.Println("server stopped cleanly.")
}
