package config

import (
	"os"
	"strconv"
	"time"
)

// SessionConfig holds settings for dashboard sessions.
type SessionConfig struct {
	CookieName     string
	IdleTimeoutSec int
}

// IdleTimeout is the session idle timeout; zero disables expiry.
func (s SessionConfig) IdleTimeout() time.Duration {
	if s.IdleTimeoutSec <= 0 {
		return 0
	}
	return time.Duration(s.IdleTimeoutSec) * time.Second
}

// RateLimitConfig holds the per-client token bucket settings.
type RateLimitConfig struct {
	Enabled bool
	RPS     float64
	Burst   int
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables.
type AppConfig struct {
	AppHost     string
	Port        string
	LogLevel    string
	SeedFile    string
	ServiceName string
	Session     SessionConfig
	RateLimit   RateLimitConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// Real environment variables take precedence over the file.
func Load() *AppConfig {
	return &AppConfig{
		AppHost:     getEnv("APP_HOST", "localhost:8080"),
		Port:        getEnv("PORT", "8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		SeedFile:    getEnv("SEED_FILE", ""),
		ServiceName: getEnv("OTEL_SERVICE_NAME", "docdash"),
		Session: SessionConfig{
			CookieName:     getEnv("SESSION_COOKIE", "docdash_session"),
			IdleTimeoutSec: getEnvInt("SESSION_IDLE_TIMEOUT_SEC", 1800),
		},
		RateLimit: RateLimitConfig{
			Enabled: getEnvBool("RATE_LIMIT_ENABLED", true),
			RPS:     getEnvFloat("RATE_LIMIT_RPS", 20),
			Burst:   getEnvInt("RATE_LIMIT_BURST", 40),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err == nil && f > 0 {
			return f
		}
	}
	return def
}
