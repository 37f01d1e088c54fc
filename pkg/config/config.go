package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

// Config represents the application configuration
type Config struct {
	ServiceName string
	Server      ServerConfig
	Log         LogConfig
	Metrics     MetricsConfig
	Locale      LocaleConfig
	GenAI       GenAIConfig
	Forms       FormsConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port            string
	Env             string
	ShutdownTimeout time.Duration
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string
}

// MetricsConfig holds metrics-related configuration
type MetricsConfig struct {
	Prefix string
}

// LocaleConfig holds the display locale used for month names and generated copy
type LocaleConfig struct {
	Tag language.Tag
}

// GenAIConfig holds settings for the text-generation API
type GenAIConfig struct {
	APIKey         string
	BaseURL        string
	Model          string
	Timeout        time.Duration
	BreakerErrors  int
	BreakerTimeout time.Duration
}

// FormsConfig bounds how long an untouched edit form stays open
type FormsConfig struct {
	IdleTTL       time.Duration
	SweepInterval time.Duration
}

// Load loads the application configuration from environment variables
func Load() (*Config, error) {
	// Load environment variables from .env file if it exists
	_ = godotenv.Load()

	tag, err := language.Parse(getEnv("LOCALE", "he-IL"))
	if err != nil {
		return nil, fmt.Errorf("invalid LOCALE: %w", err)
	}

	return &Config{
		ServiceName: "dress-rental-service",
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			Env:             getEnv("APP_ENV", "development"),
			ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Metrics: MetricsConfig{
			Prefix: getEnv("METRICS_PREFIX", "dress_rental"),
		},
		Locale: LocaleConfig{
			Tag: tag,
		},
		GenAI: GenAIConfig{
			APIKey:         getEnv("GENAI_API_KEY", ""),
			BaseURL:        getEnv("GENAI_BASE_URL", "https://generativelanguage.googleapis.com"),
			Model:          getEnv("GENAI_MODEL", "gemini-3-flash-preview"),
			Timeout:        getEnvAsDuration("GENAI_TIMEOUT", 15*time.Second),
			BreakerErrors:  getEnvAsInt("GENAI_BREAKER_ERRORS", 3),
			BreakerTimeout: getEnvAsDuration("GENAI_BREAKER_TIMEOUT", 30*time.Second),
		},
		Forms: FormsConfig{
			IdleTTL:       getEnvAsDuration("FORM_IDLE_TTL", 30*time.Minute),
			SweepInterval: getEnvAsDuration("FORM_SWEEP_INTERVAL", time.Minute),
		},
	}, nil
}

// LogFields returns the configuration as zap fields, leaving secrets out
func (c *Config) LogFields() []zap.Field {
	return []zap.Field{
		zap.String("service", c.ServiceName),
		zap.String("environment", c.Server.Env),
		zap.String("server_port", c.Server.Port),
		zap.String("locale", c.Locale.Tag.String()),
		zap.String("genai_model", c.GenAI.Model),
		zap.Bool("genai_key_set", c.GenAI.APIKey != ""),
	}
}

// Helper functions to get environment variables with defaults
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
