package server

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDefaultConfig(t *testing.T) {
	config := GetDefaultConfig()

	require.NotNil(t, config)
	assert.Equal(t, "0.0.0.0", config.Host)
	assert.Equal(t, 5000, config.Port)
	assert.Equal(t, 30*time.Second, config.ReadTimeout)
	assert.True(t, config.EnableCORS)
	assert.False(t, config.EnableRateLimit)
	assert.Equal(t, "/health", config.HealthCheckPath)
	require.NotNil(t, config.Model)
	require.NotNil(t, config.Analysis)

	assert.NoError(t, config.Validate())
}

func TestConfigGetAddress(t *testing.T) {
	config := &Config{Host: "127.0.0.1", Port: 8080}
	assert.Equal(t, "127.0.0.1:8080", config.GetAddress())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"invalid port", func(c *Config) { c.Port = 0 }},
		{"port out of range", func(c *Config) { c.Port = 70000 }},
		{"zero read timeout", func(c *Config) { c.ReadTimeout = 0 }},
		{"zero write timeout", func(c *Config) { c.WriteTimeout = 0 }},
		{"zero max request size", func(c *Config) { c.MaxRequestSize = 0 }},
		{"rate limit enabled with zero limit", func(c *Config) { c.EnableRateLimit = true; c.RateLimit = 0 }},
		{"empty health path", func(c *Config) { c.HealthCheckPath = "" }},
		{"zero concurrency", func(c *Config) { c.Analysis.MaxConcurrentAnalyses = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := GetDefaultConfig()
			tt.mutate(config)
			assert.Error(t, config.Validate())
		})
	}
}
