package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// AppConfig holds all application-level configuration loaded from environment variables.
type AppConfig struct {
	// Port is the HTTP server port. Defaults to 3000.
	Port int `envconfig:"PORT" default:"3000"`

	// LogLevel sets the minimum log level (debug, info, warn, error). Defaults to info.
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// LogFormat selects the log encoding: json or text. Defaults to json.
	LogFormat string `envconfig:"LOG_FORMAT" default:"json"`

	// LogFile, when set, sends logs to a size-rotated file instead of stderr.
	LogFile string `envconfig:"LOG_FILE"`

	// FirebaseServiceAccountPath points at the Firebase service-account JSON
	// document. Required by every command that talks to FCM.
	FirebaseServiceAccountPath string `envconfig:"FIREBASE_SERVICE_ACCOUNT_PATH"`

	// CORSAllowedOrigins is a comma-separated list of allowed origins.
	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`

	// OTELEnabled turns on OTLP trace export. The endpoint is read from the
	// standard OTEL_EXPORTER_OTLP_ENDPOINT variable.
	OTELEnabled bool `envconfig:"OTEL_ENABLED" default:"false"`

	// ShutdownTimeout bounds graceful shutdown of the HTTP server.
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"5s"`
}

// Load reads AppConfig from environment variables using envconfig.
// A .env file in the working directory is loaded first when present;
// variables already set in the environment take precedence.
func Load() (*AppConfig, error) {
	_ = godotenv.Load()

	var c AppConfig
	if err := envconfig.Process("", &c); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return &c, nil
}

// SlogLevel converts the LogLevel string to a slog.Level.
// Unknown values default to slog.LevelInfo.
func (c *AppConfig) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
