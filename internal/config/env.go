package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Env struct {
	AppAddr string
	GinMode string

	// TransportAuthorityURL enables the remote decision service when
	// non-empty. Any failure falls back to local evaluation.
	TransportAuthorityURL string
	// GeocoderURL enables remote geocoding of gazetteer misses.
	GeocoderURL   string
	RemoteTimeout time.Duration

	// RefdataDSN enables the MySQL reference-data loader. Empty means
	// the embedded tables are used as-is.
	RefdataDSN string

	// CacheRedisAddr switches the result cache to Redis when set.
	CacheRedisAddr string
	CacheCapacity  int
	CacheTTL       time.Duration

	// EngineConfigPath points at the YAML tunables file; empty keeps
	// compiled-in defaults.
	EngineConfigPath string
}

func LoadEnv() Env {
	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	return Env{
		AppAddr:               appAddr,
		GinMode:               strings.TrimSpace(os.Getenv("GIN_MODE")),
		TransportAuthorityURL: strings.TrimSpace(os.Getenv("TRANSPORT_AUTHORITY_URL")),
		GeocoderURL:           strings.TrimSpace(os.Getenv("GEOCODER_URL")),
		RemoteTimeout:         envDuration("REMOTE_TIMEOUT", 3*time.Second),
		RefdataDSN:            strings.TrimSpace(os.Getenv("REFDATA_DSN")),
		CacheRedisAddr:        strings.TrimSpace(os.Getenv("CACHE_REDIS_ADDR")),
		CacheCapacity:         envInt("CACHE_CAPACITY", 512),
		CacheTTL:              envDuration("CACHE_TTL", 30*time.Minute),
		EngineConfigPath:      strings.TrimSpace(os.Getenv("ENGINE_CONFIG")),
	}
}

func envInt(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
