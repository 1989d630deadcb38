package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr               string
	Environment        string
	JWTSecret          string
	TokenTTL           time.Duration
	DatabaseURL        string
	DataEncryptionKey  string
	RedisAddr          string
	RedisPassword      string
	RedisDB            int
	OpenAIAPIKey       string
	OpenAIModel        string
	AssistantCacheTTL  time.Duration
	SeedPassword       string
	CORSAllowedOrigins []string
	MaxBodyBytes       int64
	RateLimitPerMinute int
	SnapshotInterval   time.Duration
	Timezone           string
	EmailFrom          string
	EmailEnabled       bool
	SMTPHost           string
	SMTPPort           int
	SMTPUser           string
	SMTPPassword       string
	SMTPUseTLS         bool
	MetricsEnabled     bool
}

// Load reads the environment after merging an optional .env file. Values
// already set in the environment win over the file.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Addr:               getEnv("APP_ADDR", ":8080"),
		Environment:        getEnv("APP_ENV", "development"),
		JWTSecret:          getEnv("JWT_SECRET", "dev-secret-change-me"),
		TokenTTL:           getEnvDuration("TOKEN_TTL", 12*time.Hour),
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		DataEncryptionKey:  getEnv("DATA_ENCRYPTION_KEY", ""),
		RedisAddr:          getEnv("REDIS_ADDR", ""),
		RedisPassword:      getEnv("REDIS_PASSWORD", ""),
		RedisDB:            getEnvInt("REDIS_DB", 0),
		OpenAIAPIKey:       getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:        getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		AssistantCacheTTL:  getEnvDuration("ASSISTANT_CACHE_TTL", 24*time.Hour),
		SeedPassword:       getEnv("SEED_PASSWORD", "password123"),
		CORSAllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:5173"}),
		MaxBodyBytes:       int64(getEnvInt("MAX_BODY_BYTES", 1048576)),
		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 120),
		SnapshotInterval:   getEnvDuration("SNAPSHOT_INTERVAL", 0),
		Timezone:           getEnv("TIMEZONE", "Africa/Kigali"),
		EmailFrom:          getEnv("EMAIL_FROM", "no-reply@pts.rw"),
		EmailEnabled:       getEnvBool("EMAIL_ENABLED", false),
		SMTPHost:           getEnv("SMTP_HOST", ""),
		SMTPPort:           getEnvInt("SMTP_PORT", 587),
		SMTPUser:           getEnv("SMTP_USER", ""),
		SMTPPassword:       getEnv("SMTP_PASSWORD", ""),
		SMTPUseTLS:         getEnvBool("SMTP_USE_TLS", true),
		MetricsEnabled:     getEnvBool("METRICS_ENABLED", true),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvList(key string, fallback []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}

// Location resolves Timezone, falling back to UTC.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (c Config) AssistantEnabled() bool {
	return strings.TrimSpace(c.OpenAIAPIKey) != ""
}

func (c Config) Validate() error {
	if c.Environment == "production" {
		if strings.TrimSpace(c.JWTSecret) == "" || c.JWTSecret == "dev-secret-change-me" {
			return fmt.Errorf("JWT_SECRET must be set to a strong value in production")
		}
		if c.SeedPassword == "password123" {
			return fmt.Errorf("SEED_PASSWORD must be changed in production")
		}
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL must be positive")
	}
	if c.MaxBodyBytes < 1024 {
		return fmt.Errorf("MAX_BODY_BYTES must be at least 1024")
	}
	if c.RateLimitPerMinute <= 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must be positive")
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("TIMEZONE %q is not a known location: %w", c.Timezone, err)
	}
	if c.SnapshotInterval > 0 && strings.TrimSpace(c.DatabaseURL) == "" {
		return fmt.Errorf("SNAPSHOT_INTERVAL requires DATABASE_URL")
	}
	if c.EmailEnabled && c.SMTPHost == "" {
		return fmt.Errorf("SMTP_HOST must be set when EMAIL_ENABLED is true")
	}
	return nil
}
