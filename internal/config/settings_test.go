package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"GLUEBIND_LOG_LEVEL", "GLUEBIND_LOG_FORMAT", "GLUEBIND_MESSAGES", "GLUEBIND_WORKERS", "GLUEBIND_FAIL_FAST",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	s, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Settings{LogLevel: "info", LogFormat: "text", Workers: 1}, s)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("GLUEBIND_LOG_LEVEL", "debug")
	t.Setenv("GLUEBIND_LOG_FORMAT", "json")
	t.Setenv("GLUEBIND_MESSAGES", "out.ndjson")
	t.Setenv("GLUEBIND_WORKERS", "4")
	t.Setenv("GLUEBIND_FAIL_FAST", "true")

	s, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Settings{
		LogLevel:  "debug",
		LogFormat: "json",
		Messages:  "out.ndjson",
		Workers:   4,
		FailFast:  true,
	}, s)
}

func TestLoad_Error(t *testing.T) {
	t.Setenv("GLUEBIND_WORKERS", "many")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}
