package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds all environment backed configuration for the checkpoint server.
type Config struct {
	// HTTP Server
	HTTPPort    int    `env:"HTTP_PORT" envDefault:"8080"`
	MetricsPort int    `env:"METRICS_PORT" envDefault:"9091"`
	DatabaseURL string `env:"DATABASE_URL,notEmpty"`

	// Completion service (field extraction)
	CompletionBaseURL     string        `env:"COMPLETION_BASE_URL" envDefault:"https://api.groq.com/openai/v1"`
	CompletionAPIKey      string        `env:"COMPLETION_API_KEY,notEmpty"`
	CompletionModel       string        `env:"COMPLETION_MODEL" envDefault:"llama-3.3-70b-versatile"`
	CompletionTemperature float32       `env:"COMPLETION_TEMPERATURE" envDefault:"0.3"`
	CompletionMaxTokens   int           `env:"COMPLETION_MAX_TOKENS" envDefault:"1000"`
	CompletionTimeout     time.Duration `env:"COMPLETION_TIMEOUT" envDefault:"30s"`

	// Auth
	JWTSecret string        `env:"JWT_SECRET,notEmpty"`
	JWTTTL    time.Duration `env:"JWT_TTL" envDefault:"12h"`

	// Mail delivery
	MailAPIURL  string        `env:"MAIL_API_URL" envDefault:"https://api.resend.com"`
	MailAPIKey  string        `env:"MAIL_API_KEY"`
	MailFrom    string        `env:"MAIL_FROM" envDefault:"Checkpoints <onboarding@resend.dev>"`
	MailTimeout time.Duration `env:"MAIL_TIMEOUT" envDefault:"10s"`

	// Observability / Logging
	ServiceName string `env:"SERVICE_NAME" envDefault:"checkpoint-server"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"console"`

	// Features
	AutoMigrate bool `env:"AUTO_MIGRATE" envDefault:"true"`
}

// Load parses environment variables into Config and performs minimal validation.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if _, err := url.ParseRequestURI(cfg.CompletionBaseURL); err != nil {
		return nil, fmt.Errorf("invalid COMPLETION_BASE_URL: %w", err)
	}

	if _, err := url.ParseRequestURI(cfg.MailAPIURL); err != nil {
		return nil, fmt.Errorf("invalid MAIL_API_URL: %w", err)
	}

	if cfg.CompletionMaxTokens <= 0 {
		return nil, fmt.Errorf("COMPLETION_MAX_TOKENS must be positive, got %d", cfg.CompletionMaxTokens)
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)

	return cfg, nil
}
