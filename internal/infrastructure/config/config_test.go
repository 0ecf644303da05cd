package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"APP_ENV", "PORT", "SCHEDULING_API_URL", "SCHEDULING_API_TIMEOUT", "SCHEDULING_API_MOCK",
		"FORM_SESSION_STORE", "FORM_SESSION_TTL", "FORM_SESSIONS_TABLE", "SUBMIT_RESET_DELAY",
		"REDIS_ADDR", "REDIS_DB", "UNITS_CACHE_TTL", "AVAILABILITY_CACHE_TTL",
		"CORS_ALLOWED_ORIGINS", "LOG_LEVEL", "LOG_FORMAT",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, "dev", cfg.AppEnv)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 5*time.Second, cfg.Scheduling.Timeout)
	assert.False(t, cfg.Scheduling.Mock)
	assert.Equal(t, StoreMemory, cfg.Sessions.Store)
	assert.Equal(t, 30*time.Minute, cfg.Sessions.TTL)
	assert.Equal(t, 5*time.Second, cfg.Sessions.ResetDelay)
	assert.Equal(t, "", cfg.Redis.Addr)
	assert.Equal(t, 10*time.Minute, cfg.Redis.UnitsTTL)
	assert.Equal(t, []string{"http://localhost:5173", "http://localhost:4173"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SCHEDULING_API_URL", "https://agendamento.example/")
	t.Setenv("SCHEDULING_API_TIMEOUT", "2s")
	t.Setenv("SCHEDULING_API_MOCK", "true")
	t.Setenv("FORM_SESSION_STORE", "DynamoDB")
	t.Setenv("FORM_SESSION_TTL", "-1m")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("REDIS_DB", "two")
	t.Setenv("AVAILABILITY_CACHE_TTL", "45s")
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example , ,https://b.example")

	cfg := Load()
	assert.Equal(t, "https://agendamento.example/", cfg.Scheduling.BaseURL)
	assert.Equal(t, 2*time.Second, cfg.Scheduling.Timeout)
	assert.True(t, cfg.Scheduling.Mock)
	assert.Equal(t, StoreDynamoDB, cfg.Sessions.Store)
	assert.Equal(t, 30*time.Minute, cfg.Sessions.TTL)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, 0, cfg.Redis.DB)
	assert.Equal(t, 45*time.Second, cfg.Redis.AvailabilityTTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
}
