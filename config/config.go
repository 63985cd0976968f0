package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// Mapstructure tags are used to map environment variables and config file keys.
type Config struct {
	// Server Configuration
	ServerAddress string `mapstructure:"SERVER_ADDRESS"` // e.g., ":8080"
	AppEnv        string `mapstructure:"APP_ENV"`        // "development" or "production"

	// Logging
	LogLevel  string `mapstructure:"LOG_LEVEL"`  // debug, info, warn, error
	LogFormat string `mapstructure:"LOG_FORMAT"` // json or console

	// AI Configuration
	AIProvider       string        `mapstructure:"AI_PROVIDER"` // "gemini" or "openai"
	OpenAIKey        string        `mapstructure:"OPENAI_API_KEY"`
	OpenAIModel      string        `mapstructure:"OPENAI_MODEL"`       // e.g., "gpt-4o"
	OpenAIImageModel string        `mapstructure:"OPENAI_IMAGE_MODEL"` // e.g., "dall-e-3"
	GeminiKey        string        `mapstructure:"GEMINI_API_KEY"`
	GeminiModel      string        `mapstructure:"GEMINI_MODEL"`       // e.g., "gemini-2.5-flash"
	GeminiImageModel string        `mapstructure:"GEMINI_IMAGE_MODEL"` // e.g., "imagen-4.0-generate-001"
	GeminiVideoModel string        `mapstructure:"GEMINI_VIDEO_MODEL"` // e.g., "veo-3.0-generate-preview"
	AITimeout        time.Duration `mapstructure:"AI_TIMEOUT"`
	AIMaxRetries     int           `mapstructure:"AI_MAX_RETRIES"`

	// Document store
	DatabaseDriver string `mapstructure:"DATABASE_DRIVER"` // "sqlite" or "postgres"
	DatabaseURL    string `mapstructure:"DATABASE_URL"`    // file path for sqlite, DSN for postgres

	// Cache (empty address disables caching)
	RedisAddress  string `mapstructure:"REDIS_ADDRESS"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	// Auth
	JWTSecret string        `mapstructure:"JWT_SECRET"`
	JWTIssuer string        `mapstructure:"JWT_ISSUER"`
	JWTTTL    time.Duration `mapstructure:"JWT_TTL"`

	// Generated media
	MediaDir     string `mapstructure:"MEDIA_DIR"`
	MediaBaseURL string `mapstructure:"MEDIA_BASE_URL"`

	// Webpage summarizer
	WebFetchTimeout  time.Duration `mapstructure:"WEB_FETCH_TIMEOUT"`
	WebFetchMaxBytes int64         `mapstructure:"WEB_FETCH_MAX_BYTES"`

	// Tracing (empty endpoint disables export)
	OTelEndpoint string `mapstructure:"OTEL_EXPORTER_ENDPOINT"`
}

var defaults = map[string]any{
	"SERVER_ADDRESS":         ":8080",
	"APP_ENV":                "development",
	"LOG_LEVEL":              "info",
	"LOG_FORMAT":             "console",
	"AI_PROVIDER":            "gemini",
	"OPENAI_API_KEY":         "",
	"OPENAI_MODEL":           "gpt-4o",
	"OPENAI_IMAGE_MODEL":     "dall-e-3",
	"GEMINI_API_KEY":         "",
	"GEMINI_MODEL":           "gemini-2.5-flash",
	"GEMINI_IMAGE_MODEL":     "imagen-4.0-generate-001",
	"GEMINI_VIDEO_MODEL":     "veo-3.0-generate-preview",
	"AI_TIMEOUT":             "60s",
	"AI_MAX_RETRIES":         2,
	"DATABASE_DRIVER":        "sqlite",
	"DATABASE_URL":           "dashboard.db",
	"REDIS_ADDRESS":          "",
	"REDIS_PASSWORD":         "",
	"REDIS_DB":               0,
	"JWT_SECRET":             "",
	"JWT_ISSUER":             "ai-dashboard",
	"JWT_TTL":                "168h",
	"MEDIA_DIR":              "media",
	"MEDIA_BASE_URL":         "/media",
	"WEB_FETCH_TIMEOUT":      "10s",
	"WEB_FETCH_MAX_BYTES":    1 << 20,
	"OTEL_EXPORTER_ENDPOINT": "",
}

// LoadConfig reads configuration from file and environment variables.
// The returned warnings describe non-fatal fallbacks (missing config file, dev secrets).
func LoadConfig(path string) (config Config, warnings []string, err error) {
	v := viper.New()
	v.AddConfigPath(path)     // Path to look for the config file in
	v.SetConfigName("config") // Name of config file (without extension)
	v.SetConfigType("yaml")   // REQUIRED if the config file does not have the extension in the name

	// Unmarshal only sees keys viper knows about, so every env key gets a default.
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, nil, fmt.Errorf("error reading config file: %w", err)
		}
		warnings = append(warnings, "config file ('config.yaml') not found, relying on environment variables")
	}

	if err = v.Unmarshal(&config); err != nil {
		return Config{}, nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	config.normalize()

	if err = config.Validate(); err != nil {
		return Config{}, nil, err
	}
	if config.JWTSecret == "" {
		config.JWTSecret = "dev-insecure-secret"
		warnings = append(warnings, "JWT_SECRET is not set, using an insecure development secret")
	}
	return config, warnings, nil
}

func (c *Config) normalize() {
	c.AIProvider = strings.ToLower(strings.TrimSpace(c.AIProvider))
	c.DatabaseDriver = strings.ToLower(strings.TrimSpace(c.DatabaseDriver))
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
}

// IsProduction reports whether APP_ENV selects production mode.
func (c Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, "production")
}

// Validate rejects configurations the server cannot start with.
func (c Config) Validate() error {
	var problems []string

	switch c.AIProvider {
	case "gemini":
		if c.GeminiKey == "" {
			problems = append(problems, "GEMINI_API_KEY is required when AI_PROVIDER=gemini")
		}
	case "openai":
		if c.OpenAIKey == "" {
			problems = append(problems, "OPENAI_API_KEY is required when AI_PROVIDER=openai")
		}
	default:
		problems = append(problems, fmt.Sprintf("unknown AI_PROVIDER %q", c.AIProvider))
	}

	switch c.DatabaseDriver {
	case "sqlite", "postgres":
		if strings.TrimSpace(c.DatabaseURL) == "" {
			problems = append(problems, "DATABASE_URL is required")
		}
	default:
		problems = append(problems, fmt.Sprintf("unknown DATABASE_DRIVER %q", c.DatabaseDriver))
	}

	if c.AITimeout <= 0 {
		problems = append(problems, "AI_TIMEOUT must be positive")
	}
	if c.AIMaxRetries < 0 {
		problems = append(problems, "AI_MAX_RETRIES must not be negative")
	}
	if c.IsProduction() && c.JWTSecret == "" {
		problems = append(problems, "JWT_SECRET is required in production")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}
