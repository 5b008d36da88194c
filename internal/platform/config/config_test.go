package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setValidEnv(t *testing.T) {
	t.Helper()
	t.Setenv("PRIMARY_LOOKUP_URL", "https://primary.example.test/")
	t.Setenv("ENRICHMENT_URL", "https://enrichment.example.test/fetch")
	t.Setenv("ENRICHMENT_ACCESS_KEY", "test-key")
	t.Setenv("LOOKUP_ADDR", "")
	t.Setenv("UPSTREAM_TIMEOUT", "")
	t.Setenv("ENRICHMENT_FANOUT", "")
	t.Setenv("LOG_LEVEL", "")
}

func TestFromEnv(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		setValidEnv(t)

		cfg, err := FromEnv()
		require.NoError(t, err)
		assert.Equal(t, ":8000", cfg.Server.Addr)
		assert.Equal(t, 10*time.Second, cfg.Upstream.Timeout)
		assert.Equal(t, 4, cfg.Upstream.EnrichmentFanOut)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "test-key", cfg.Upstream.EnrichmentKey)
	})

	t.Run("reads overrides", func(t *testing.T) {
		setValidEnv(t)
		t.Setenv("LOOKUP_ADDR", ":9090")
		t.Setenv("UPSTREAM_TIMEOUT", "2500ms")
		t.Setenv("ENRICHMENT_FANOUT", "1")
		t.Setenv("LOG_LEVEL", "debug")

		cfg, err := FromEnv()
		require.NoError(t, err)
		assert.Equal(t, ":9090", cfg.Server.Addr)
		assert.Equal(t, 2500*time.Millisecond, cfg.Upstream.Timeout)
		assert.Equal(t, 1, cfg.Upstream.EnrichmentFanOut)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("rejects unparsable timeout", func(t *testing.T) {
		setValidEnv(t)
		t.Setenv("UPSTREAM_TIMEOUT", "ten seconds")

		_, err := FromEnv()
		assert.ErrorContains(t, err, "UPSTREAM_TIMEOUT")
	})

	t.Run("rejects unparsable fan-out", func(t *testing.T) {
		setValidEnv(t)
		t.Setenv("ENRICHMENT_FANOUT", "many")

		_, err := FromEnv()
		assert.ErrorContains(t, err, "ENRICHMENT_FANOUT")
	})

	t.Run("reports every missing upstream setting", func(t *testing.T) {
		setValidEnv(t)
		t.Setenv("PRIMARY_LOOKUP_URL", "")
		t.Setenv("ENRICHMENT_URL", "")
		t.Setenv("ENRICHMENT_ACCESS_KEY", "")

		_, err := FromEnv()
		require.Error(t, err)
		assert.ErrorContains(t, err, "PRIMARY_LOOKUP_URL is required")
		assert.ErrorContains(t, err, "ENRICHMENT_URL is required")
		assert.ErrorContains(t, err, "ENRICHMENT_ACCESS_KEY is required")
	})
}

func TestValidate(t *testing.T) {
	valid := Config{
		Upstream: Upstream{
			PrimaryURL:       "http://127.0.0.1:8081",
			EnrichmentURL:    "https://enrichment.example.test/fetch",
			EnrichmentKey:    "k",
			Timeout:          time.Second,
			EnrichmentFanOut: 2,
		},
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "relative url", mutate: func(c *Config) { c.Upstream.PrimaryURL = "/lookup" }, wantErr: "absolute http(s) URL"},
		{name: "unsupported scheme", mutate: func(c *Config) { c.Upstream.EnrichmentURL = "ftp://host/x" }, wantErr: "absolute http(s) URL"},
		{name: "zero timeout", mutate: func(c *Config) { c.Upstream.Timeout = 0 }, wantErr: "UPSTREAM_TIMEOUT must be positive"},
		{name: "zero fan-out", mutate: func(c *Config) { c.Upstream.EnrichmentFanOut = 0 }, wantErr: "ENRICHMENT_FANOUT must be at least 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("fills unset variables from env file", func(t *testing.T) {
		setValidEnv(t)
		// t.Setenv restores the original value on cleanup
		t.Setenv("ENRICHMENT_ACCESS_KEY", "")
		require.NoError(t, os.Unsetenv("ENRICHMENT_ACCESS_KEY"))

		path := filepath.Join(t.TempDir(), "lookup.env")
		require.NoError(t, os.WriteFile(path, []byte("ENRICHMENT_ACCESS_KEY=from-file\nLOOKUP_ADDR=:7000\n"), 0o600))
		t.Setenv("LOOKUP_ENV_FILE", path)

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "from-file", cfg.Upstream.EnrichmentKey)
		// LOOKUP_ADDR is set (to empty) by setValidEnv, godotenv does not override present variables
		assert.Equal(t, ":8000", cfg.Server.Addr)
	})

	t.Run("missing env file is not an error", func(t *testing.T) {
		setValidEnv(t)
		t.Setenv("LOOKUP_ENV_FILE", filepath.Join(t.TempDir(), "absent.env"))

		_, err := Load()
		assert.NoError(t, err)
	})
}
