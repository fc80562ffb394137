package config

import (
	"os"
	"strconv"
)

// Config holds application configuration
type Config struct {
	Port   string
	DBPath string

	// Map layer tuning
	HexReferenceSizeKm float64 // hex cell size at the reference zoom
	HexReferenceZoom   int
	SpiderThresholdPx  float64 // pixel distance at or below which markers group
	SpiderSpreadPx     float64 // spread circle radius for displaced markers
}

// Load reads configuration from environment variables, falling back to
// defaults
func Load() *Config {
	cfg := &Config{
		Port:               ":8080",
		DBPath:             "./data/camtrap.db",
		HexReferenceSizeKm: 1.5,
		HexReferenceZoom:   10,
		SpiderThresholdPx:  30,
		SpiderSpreadPx:     20,
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("DB_PATH"); v != "" {
		cfg.DBPath = v
	}
	if f := envFloat("HEX_REFERENCE_SIZE_KM"); f > 0 {
		cfg.HexReferenceSizeKm = f
	}
	if n := envInt("HEX_REFERENCE_ZOOM"); n > 0 {
		cfg.HexReferenceZoom = n
	}
	if f := envFloat("SPIDER_THRESHOLD_PX"); f > 0 {
		cfg.SpiderThresholdPx = f
	}
	if f := envFloat("SPIDER_SPREAD_PX"); f > 0 {
		cfg.SpiderSpreadPx = f
	}

	return cfg
}

func envFloat(key string) float64 {
	v := os.Getenv(key)
	if v == "" {
		return 0
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0
	}
	return f
}

func envInt(key string) int {
	v := os.Getenv(key)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}
