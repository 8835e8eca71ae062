// Package config reads service settings from the environment (optionally
// seeded from a .env file).
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"travel-locator-service/internal/adapters/places"
	"travel-locator-service/internal/domain"
)

// Placeholder shipped in .env.example; treated the same as an empty key.
const PlacesKeyPlaceholder = places.KeyPlaceholder

type Config struct {
	Env  string `validate:"required"`
	Port string `validate:"required,numeric"`

	DBPath          string
	DatabaseURL     string
	CatalogSeedPath string
	RedisAddr       string

	PlacesAPIKey      string
	PlacesBaseURL     string        `validate:"required,url"`
	PlacesRateLimit   float64       `validate:"gt=0"`
	SuggestionMode    string        `validate:"oneof=remote local"`
	SuggestionTimeout time.Duration `validate:"gt=0"`
	CacheTTL          time.Duration `validate:"gte=0"`

	BackendCandidates []string `validate:"dive,required,excludes=://"`
	BackendFallback   string   `validate:"required,excludes=://"`
	BackendPort       int      `validate:"min=1,max=65535"`
	BackendSecure     bool
	ProbePath         string
	ProbeTimeout      time.Duration `validate:"gt=0"`
}

// IsProduction reports whether ENV names a production deployment.
func (c Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// PlacesConfigured reports whether a usable provider credential is present.
func (c Config) PlacesConfigured() bool {
	k := strings.TrimSpace(c.PlacesAPIKey)
	return k != "" && k != PlacesKeyPlaceholder
}

// Endpoint assembles the resolver input from the backend settings.
func (c Config) Endpoint() domain.EndpointConfig {
	return domain.EndpointConfig{
		Candidates:   domain.EndpointCandidates(c.BackendCandidates),
		Fallback:     c.BackendFallback,
		Port:         c.BackendPort,
		Secure:       c.BackendSecure,
		ProbePath:    c.ProbePath,
		ProbeTimeout: c.ProbeTimeout,
	}.WithDefaults()
}

// Load reads .env (if present) and the environment, then validates the result.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found (using environment variables)")
	}

	cfg := Config{
		Env:  Get("ENV", "development"),
		Port: Get("PORT", "8080"),

		DBPath:          Get("DB_PATH", "data/app.db"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		CatalogSeedPath: Get("CATALOG_SEED_PATH", "data/seeds/catalog.json"),
		RedisAddr:       os.Getenv("REDIS_ADDR"),

		PlacesAPIKey:      Get("GOOGLE_PLACES_API_KEY", PlacesKeyPlaceholder),
		PlacesBaseURL:     Get("PLACES_BASE_URL", places.DefaultBaseURL),
		PlacesRateLimit:   GetFloat("PLACES_RATE_LIMIT", 10),
		SuggestionMode:    strings.ToLower(Get("SUGGESTION_MODE", string(domain.ModeLocal))),
		SuggestionTimeout: GetDuration("SUGGESTION_TIMEOUT", 12*time.Second),
		CacheTTL:          GetDuration("SUGGESTION_CACHE_TTL", 10*time.Minute),

		// 10.0.2.2 is the Android emulator's alias for the host loopback.
		BackendCandidates: GetList("BACKEND_CANDIDATES", []string{"10.0.2.2", "localhost", "127.0.0.1"}),
		BackendFallback:   Get("BACKEND_FALLBACK", "10.0.2.2"),
		BackendPort:       GetInt("BACKEND_PORT", domain.DefaultBackendPort),
		BackendSecure:     GetBool("BACKEND_SECURE", false),
		ProbePath:         Get("PROBE_PATH", domain.DefaultProbePath),
		ProbeTimeout:      GetDuration("PROBE_TIMEOUT", domain.DefaultProbeTimeout),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	return cfg, nil
}

// Get returns the environment value for key, or fallback when unset or empty.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func GetInt(key string, fallback int) int {
	v, err := strconv.Atoi(Get(key, ""))
	if err != nil {
		return fallback
	}
	return v
}

func GetFloat(key string, fallback float64) float64 {
	v, err := strconv.ParseFloat(Get(key, ""), 64)
	if err != nil {
		return fallback
	}
	return v
}

func GetBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(Get(key, ""))
	if err != nil {
		return fallback
	}
	return v
}

// GetDuration accepts Go duration strings ("2s") or bare milliseconds ("2000").
func GetDuration(key string, fallback time.Duration) time.Duration {
	raw := Get(key, "")
	if raw == "" {
		return fallback
	}
	if ms, err := strconv.Atoi(raw); err == nil {
		return time.Duration(ms) * time.Millisecond
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	return fallback
}

// GetList splits a comma-separated value, dropping blanks. Order is preserved.
func GetList(key string, fallback []string) []string {
	raw := Get(key, "")
	if raw == "" {
		return fallback
	}

	out := make([]string, 0, strings.Count(raw, ",")+1)
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
