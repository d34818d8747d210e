package services

import (
	"testing"

	"lakbay/internal/config"
	"lakbay/internal/refdata"
)

func newTestStore(t *testing.T) *refdata.Store {
	t.Helper()
	store, err := refdata.NewStore()
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return store
}

func newTestResolver(store *refdata.Store) LocationResolver {
	return LocationResolver{Store: store, RequestID: "test"}
}

func newTestLocator(store *refdata.Store) AirportLocator {
	return AirportLocator{
		Store:     store,
		Resolver:  newTestResolver(store),
		Tunables:  config.DefaultTunables(),
		RequestID: "test",
	}
}

func newTestTransport(store *refdata.Store) TransportService {
	return TransportService{
		Store:     store,
		Resolver:  newTestResolver(store),
		Locator:   newTestLocator(store),
		Routes:    RouteMatcher{Store: store},
		Regional:  RegionalClassifier{Store: store},
		Tunables:  config.DefaultTunables(),
		RequestID: "test",
	}
}
