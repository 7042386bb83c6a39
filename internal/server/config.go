package server

import (
	"fmt"
	"time"

	"github.com/SinlessRook/BayMax-Backend/pkg/classifier"
	"github.com/SinlessRook/BayMax-Backend/pkg/emotion"
)

// Config represents the HTTP server configuration
type Config struct {
	// Server settings
	Host            string        `yaml:"host" json:"host" env:"SERVER_HOST"`
	Port            int           `yaml:"port" json:"port" env:"SERVER_PORT"`
	ReadTimeout     time.Duration `yaml:"read_timeout" json:"read_timeout" env:"SERVER_READ_TIMEOUT"`
	WriteTimeout    time.Duration `yaml:"write_timeout" json:"write_timeout" env:"SERVER_WRITE_TIMEOUT"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" json:"idle_timeout" env:"SERVER_IDLE_TIMEOUT"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" json:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT"`

	// Request handling
	MaxRequestSize  int64  `yaml:"max_request_size" json:"max_request_size" env:"SERVER_MAX_REQUEST_SIZE"`
	RequestIDHeader string `yaml:"request_id_header" json:"request_id_header"`

	// CORS settings
	EnableCORS     bool     `yaml:"enable_cors" json:"enable_cors" env:"SERVER_ENABLE_CORS"`
	AllowedOrigins []string `yaml:"allowed_origins" json:"allowed_origins" env:"SERVER_ALLOWED_ORIGINS"`
	AllowedMethods []string `yaml:"allowed_methods" json:"allowed_methods"`
	AllowedHeaders []string `yaml:"allowed_headers" json:"allowed_headers"`

	// Rate limiting
	EnableRateLimit bool    `yaml:"enable_rate_limit" json:"enable_rate_limit" env:"SERVER_ENABLE_RATE_LIMIT"`
	RateLimit       float64 `yaml:"rate_limit" json:"rate_limit" env:"SERVER_RATE_LIMIT"`
	RateLimitBurst  int     `yaml:"rate_limit_burst" json:"rate_limit_burst" env:"SERVER_RATE_LIMIT_BURST"`

	// Observability
	LogLevel        string `yaml:"log_level" json:"log_level" env:"LOG_LEVEL"`
	LogFormat       string `yaml:"log_format" json:"log_format" env:"LOG_FORMAT"`
	HealthCheckPath string `yaml:"health_check_path" json:"health_check_path"`
	MetricsPath     string `yaml:"metrics_path" json:"metrics_path"`

	// Model and analysis settings
	Model    *classifier.InferenceConfig `yaml:"model" json:"model"`
	Analysis *emotion.ServiceConfig      `yaml:"analysis" json:"analysis"`
}

// GetDefaultConfig returns the default server configuration
func GetDefaultConfig() *Config {
	return &Config{
		Host:            "0.0.0.0",
		Port:            5000,
		ReadTimeout:     30 * time.Second,
		WriteTimeout:    60 * time.Second,
		IdleTimeout:     120 * time.Second,
		ShutdownTimeout: 10 * time.Second,
		MaxRequestSize:  4 << 20, // 4MB
		RequestIDHeader: "X-Request-ID",
		EnableCORS:      true,
		AllowedOrigins:  []string{"*"},
		AllowedMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:  []string{"Content-Type", "Authorization", "X-Request-ID"},
		EnableRateLimit: false,
		RateLimit:       100,
		RateLimitBurst:  200,
		LogLevel:        "info",
		LogFormat:       "json",
		HealthCheckPath: "/health",
		MetricsPath:     "/metrics",
		Model:           classifier.DefaultInferenceConfig(),
		Analysis:        emotion.DefaultServiceConfig(),
	}
}

// GetAddress returns the listen address
func (c *Config) GetAddress() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Validate checks the configuration for invalid values
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if c.ReadTimeout <= 0 {
		return fmt.Errorf("read timeout must be positive")
	}
	if c.WriteTimeout <= 0 {
		return fmt.Errorf("write timeout must be positive")
	}
	if c.MaxRequestSize <= 0 {
		return fmt.Errorf("max request size must be positive")
	}
	if c.EnableRateLimit && c.RateLimit <= 0 {
		return fmt.Errorf("rate limit must be positive when enabled")
	}
	if c.HealthCheckPath == "" {
		return fmt.Errorf("health check path cannot be empty")
	}
	if c.Analysis != nil && c.Analysis.MaxConcurrentAnalyses <= 0 {
		return fmt.Errorf("max concurrent analyses must be positive")
	}
	return nil
}
