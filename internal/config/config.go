package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration. Every value is explicit here;
// nothing else in the codebase reads the process environment.
type Config struct {
	Port      string
	DBPath    string
	JWTSecret string

	// Nominatim identification, required by its usage policy.
	GeocoderUserAgent string
	GeocoderBaseURL   string

	// Exclusive bounds distinguishing real state-plane eastings from
	// sentinel/garbage values in the raw CSV.
	SentinelLow  float64
	SentinelHigh float64

	// Default bin count per axis for density grids.
	DefaultBins int
}

// Load reads configuration from the environment, honoring a local .env file
// when present.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	return &Config{
		Port:              getEnv("PORT", ":8080"),
		DBPath:            getEnv("DB_PATH", "./data/citations.db"),
		JWTSecret:         getEnv("JWT_SECRET", ""),
		GeocoderUserAgent: getEnv("GEOCODER_USER_AGENT", ""),
		GeocoderBaseURL:   getEnv("GEOCODER_BASE_URL", ""),
		SentinelLow:       getEnvFloat("SENTINEL_LOW", 99999.0),
		SentinelHigh:      getEnvFloat("SENTINEL_HIGH", 1e7),
		DefaultBins:       getEnvInt("DEFAULT_BINS", 140),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			log.Fatalf("invalid %s: %v", key, err)
		}
		return f
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			log.Fatalf("invalid %s: %v", key, err)
		}
		return n
	}
	return fallback
}
