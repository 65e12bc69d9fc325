package app

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		ManifestPaths: []string{"glue"},
		LogLevel:      "info",
		LogFormat:     "text",
		Workers:       1,
	}
}

func TestNewConfig(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(*Config)
		errPart string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "json and debug", mutate: func(c *Config) { c.LogFormat, c.LogLevel = "json", "debug" }},
		{name: "no manifests", mutate: func(c *Config) { c.ManifestPaths = nil }, errPart: "manifest path"},
		{name: "bad level", mutate: func(c *Config) { c.LogLevel = "loud" }, errPart: "invalid log-level"},
		{name: "bad format", mutate: func(c *Config) { c.LogFormat = "yaml" }, errPart: "invalid log-format"},
		{name: "no workers", mutate: func(c *Config) { c.Workers = 0 }, errPart: "invalid workers"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(&cfg)

			got, err := NewConfig(cfg)
			if tc.errPart != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.errPart)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, cfg, *got)
		})
	}
}

func TestNewConfig_CopiesPaths(t *testing.T) {
	cfg := validConfig()
	got, err := NewConfig(cfg)
	require.NoError(t, err)

	cfg.ManifestPaths[0] = "changed"
	assert.Equal(t, []string{"glue"}, got.ManifestPaths)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger("warn", "json", &buf)
	logger.Info("hidden")
	logger.Warn("shown", "key", "value")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)

	assert.True(t, newLogger("nonsense", "text", &buf).Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, newLogger("nonsense", "text", &buf).Enabled(context.Background(), slog.LevelDebug))
}
