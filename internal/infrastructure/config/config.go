package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	StoreDynamoDB = "dynamodb"
	StoreMongoDB  = "mongodb"
	StoreMemory   = "memory"
)

type Config struct {
	Port int

	LeadStore       string
	LeadsTable      string
	DatabaseURL     string
	DatabaseName    string
	LeadsCollection string

	// Whether DATABASE_URL / DATABASE_NAME were set explicitly.
	DatabaseURLSet  bool
	DatabaseNameSet bool

	CORSAllowAll bool
	CORSOrigins  []string

	LeadRateLimitPerMinute int
	LeadRateLimitBurst     int
}

// Load reads the configuration from the environment, after loading an
// optional .env file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	port, err := getenvInt("PORT", 8080)
	if err != nil {
		return nil, err
	}
	perMinute, err := getenvInt("LEAD_RATE_LIMIT_PER_MINUTE", 30)
	if err != nil {
		return nil, err
	}
	burst, err := getenvInt("LEAD_RATE_LIMIT_BURST", 10)
	if err != nil {
		return nil, err
	}

	origins := splitCSV(getenvDefault("CORS_ORIGINS", "*"))

	cfg := &Config{
		Port:                   port,
		LeadStore:              strings.ToLower(getenvDefault("LEAD_STORE", StoreDynamoDB)),
		LeadsTable:             getenvDefault("LEADS_TABLE", "leads"),
		DatabaseURL:            os.Getenv("DATABASE_URL"),
		DatabaseName:           getenvDefault("DATABASE_NAME", "grenzgaenger"),
		LeadsCollection:        getenvDefault("LEADS_COLLECTION", "lead"),
		DatabaseURLSet:         os.Getenv("DATABASE_URL") != "",
		DatabaseNameSet:        os.Getenv("DATABASE_NAME") != "",
		CORSAllowAll:           len(origins) == 0 || containsWildcard(origins),
		CORSOrigins:            origins,
		LeadRateLimitPerMinute: perMinute,
		LeadRateLimitBurst:     burst,
	}

	switch cfg.LeadStore {
	case StoreDynamoDB, StoreMemory:
	case StoreMongoDB:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required when LEAD_STORE is %s", StoreMongoDB)
		}
	default:
		return nil, fmt.Errorf("unknown LEAD_STORE %q", cfg.LeadStore)
	}
	if cfg.LeadRateLimitPerMinute < 0 || cfg.LeadRateLimitBurst < 0 {
		return nil, fmt.Errorf("lead rate limit settings must not be negative")
	}

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func containsWildcard(values []string) bool {
	for _, v := range values {
		if v == "*" {
			return true
		}
	}
	return false
}
