package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Host     string        `yaml:"host" json:"host" env:"HOST"`
	Port     int           `yaml:"port" json:"port" env:"PORT"`
	Debug    bool          `yaml:"debug" json:"debug" env:"DEBUG"`
	Timeout  time.Duration `yaml:"timeout" json:"timeout" env:"TIMEOUT"`
	Origins  []string      `yaml:"origins" json:"origins" env:"ORIGINS"`
	Nested   nestedConfig  `yaml:"nested" json:"nested"`
	Pointer  *nestedConfig `yaml:"pointer" json:"pointer"`
	Untagged string        `yaml:"untagged" json:"untagged"`
}

type nestedConfig struct {
	Name string `yaml:"name" json:"name" env:"NESTED_NAME"`
}

func TestLoadFromFile(t *testing.T) {
	t.Run("yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("host: example.com\nport: 9090\ntimeout: 15s\n"), 0o644))

		var cfg testConfig
		require.NoError(t, NewLoader("").LoadFromFile(path, &cfg))

		assert.Equal(t, "example.com", cfg.Host)
		assert.Equal(t, 9090, cfg.Port)
		assert.Equal(t, 15*time.Second, cfg.Timeout)
	})

	t.Run("json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"host": "example.com", "port": 8080}`), 0o644))

		var cfg testConfig
		require.NoError(t, NewLoader("").LoadFromFile(path, &cfg))

		assert.Equal(t, "example.com", cfg.Host)
		assert.Equal(t, 8080, cfg.Port)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		require.NoError(t, os.WriteFile(path, []byte("host = 'x'"), 0o644))

		var cfg testConfig
		assert.Error(t, NewLoader("").LoadFromFile(path, &cfg))
	})

	t.Run("missing file", func(t *testing.T) {
		var cfg testConfig
		assert.Error(t, NewLoader("").LoadFromFile("/nonexistent/config.yaml", &cfg))
	})
}

func TestLoadFromEnv(t *testing.T) {
	t.Run("applies tagged fields with prefix", func(t *testing.T) {
		t.Setenv("APP_HOST", "env.example.com")
		t.Setenv("APP_PORT", "7070")
		t.Setenv("APP_DEBUG", "true")
		t.Setenv("APP_TIMEOUT", "45s")
		t.Setenv("APP_ORIGINS", "a.com, b.com")
		t.Setenv("APP_NESTED_NAME", "inner")

		cfg := testConfig{Pointer: &nestedConfig{}}
		require.NoError(t, NewLoader("APP").LoadFromEnv(&cfg))

		assert.Equal(t, "env.example.com", cfg.Host)
		assert.Equal(t, 7070, cfg.Port)
		assert.True(t, cfg.Debug)
		assert.Equal(t, 45*time.Second, cfg.Timeout)
		assert.Equal(t, []string{"a.com", "b.com"}, cfg.Origins)
		assert.Equal(t, "inner", cfg.Nested.Name)
		assert.Equal(t, "inner", cfg.Pointer.Name)
	})

	t.Run("unset variables leave values untouched", func(t *testing.T) {
		cfg := testConfig{Host: "keep-me", Port: 1234}
		require.NoError(t, NewLoader("APP").LoadFromEnv(&cfg))

		assert.Equal(t, "keep-me", cfg.Host)
		assert.Equal(t, 1234, cfg.Port)
	})

	t.Run("invalid value is an error", func(t *testing.T) {
		t.Setenv("APP_PORT", "not-a-number")

		var cfg testConfig
		assert.Error(t, NewLoader("APP").LoadFromEnv(&cfg))
	})

	t.Run("target must be a struct pointer", func(t *testing.T) {
		var s string
		assert.Error(t, NewLoader("APP").LoadFromEnv(&s))
	})
}
