package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds environment-driven configuration.
type Config struct {
	Addr string

	// EngineURL is the base address of the recommendation engine. It is
	// external configuration, never compiled in.
	EngineURL string

	// EngineTimeout bounds each call to the engine.
	EngineTimeout time.Duration

	// CatalogPath points at the exported products.json. When the file is
	// missing and no DatabaseURL is set, the built-in seed catalog is used.
	CatalogPath string

	// DatabaseURL enables the Postgres catalog source when set.
	DatabaseURL string

	JWTSecret string
}

// Load reads configuration from environment variables.
func Load() Config {
	addr := os.Getenv("OUTFIT_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	engineURL := os.Getenv("ENGINE_URL")
	if engineURL == "" {
		engineURL = "http://127.0.0.1:8000"
	}

	timeout := 15 * time.Second
	if v := os.Getenv("ENGINE_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			timeout = time.Duration(n) * time.Second
		}
	}

	catalogPath := os.Getenv("CATALOG_PATH")
	if catalogPath == "" {
		catalogPath = "./data/products.json"
	}

	return Config{
		Addr:          addr,
		EngineURL:     engineURL,
		EngineTimeout: timeout,
		CatalogPath:   catalogPath,
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
	}
}
