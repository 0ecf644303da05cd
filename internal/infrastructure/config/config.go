package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	AppEnv string
	Port   string

	Scheduling SchedulingConfig

	Sessions SessionConfig

	Redis RedisConfig

	// CORSAllowedOrigins is a comma-separated allowlist of browser origins
	// allowed to drive the form. Example:
	//   https://agendamento.rio,http://localhost:5173
	CORSAllowedOrigins []string

	LogLevel  string
	LogFormat string
}

type SchedulingConfig struct {
	// BaseURL of the scheduling API (CRAS agendamento backend).
	BaseURL string
	Timeout time.Duration
	// Mock answers every call with fixtures; for local dev without the backend.
	Mock bool
}

type SessionConfig struct {
	// Store is "memory" (single instance) or "dynamodb".
	Store      string
	TTL        time.Duration
	Table      string
	ResetDelay time.Duration
}

type RedisConfig struct {
	// Addr empty disables the lookup cache.
	Addr     string
	Password string
	DB       int

	UnitsTTL        time.Duration
	AvailabilityTTL time.Duration
}

const (
	StoreMemory   = "memory"
	StoreDynamoDB = "dynamodb"
)

// Load reads the configuration from the environment. Variables from a .env
// file are loaded by cmd/api through godotenv/autoload.
func Load() Config {
	return Config{
		AppEnv: env("APP_ENV", "dev"),
		Port:   env("PORT", "8080"),
		Scheduling: SchedulingConfig{
			BaseURL: env("SCHEDULING_API_URL", "http://54.165.236.137/"),
			Timeout: envDuration("SCHEDULING_API_TIMEOUT", 5*time.Second),
			Mock:    envBool("SCHEDULING_API_MOCK", false),
		},
		Sessions: SessionConfig{
			Store:      strings.ToLower(env("FORM_SESSION_STORE", StoreMemory)),
			TTL:        envDuration("FORM_SESSION_TTL", 30*time.Minute),
			Table:      env("FORM_SESSIONS_TABLE", "form_sessions"),
			ResetDelay: envDuration("SUBMIT_RESET_DELAY", 5*time.Second),
		},
		Redis: RedisConfig{
			Addr:            os.Getenv("REDIS_ADDR"),
			Password:        os.Getenv("REDIS_PASSWORD"),
			DB:              envInt("REDIS_DB", 0),
			UnitsTTL:        envDuration("UNITS_CACHE_TTL", 10*time.Minute),
			AvailabilityTTL: envDuration("AVAILABILITY_CACHE_TTL", 30*time.Second),
		},
		CORSAllowedOrigins: envList("CORS_ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:4173"),
		LogLevel:           env("LOG_LEVEL", "info"),
		LogFormat:          env("LOG_FORMAT", "text"),
	}
}

func env(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func envDuration(key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func envBool(key string, fallback bool) bool {
	b, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return n
}

func envList(key, fallback string) []string {
	raw := env(key, fallback)
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
