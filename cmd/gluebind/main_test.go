package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/gluebind/internal/cli"
)

func TestRun_BundledManifest(t *testing.T) {
	out := &bytes.Buffer{}
	manifest := filepath.Join("..", "..", "modules", "belly", "belly.hcl")

	err := run(context.Background(), out, []string{"-log-level=debug", manifest})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Glue collected.")
	assert.Contains(t, out.String(), "definitions=11")
}

func TestRun_LoadError(t *testing.T) {
	// --- Arrange ---
	invalidHCL := `
		glue "belly.Steps" {
			given "HaveCukes" {
		// Missing closing braces here
	`
	filePath := filepath.Join(t.TempDir(), "main.hcl")
	require.NoError(t, os.WriteFile(filePath, []byte(invalidHCL), 0600), "failed to set up test file")

	// --- Act ---
	runErr := run(context.Background(), &bytes.Buffer{}, []string{filePath})

	// --- Assert ---
	require.Error(t, runErr)
	require.Contains(t, runErr.Error(), "failed to parse manifest")
}

func TestRun_ShouldExit(t *testing.T) {
	out := &bytes.Buffer{}

	err := run(context.Background(), out, []string{"-h"})

	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	err := run(context.Background(), &bytes.Buffer{}, []string{"--this-is-not-a-valid-flag"})

	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
}

func TestRun_EnvironmentError(t *testing.T) {
	t.Setenv("GLUEBIND_WORKERS", "lots")

	err := run(context.Background(), &bytes.Buffer{}, []string{"glue"})

	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Contains(t, exitErr.Message, "parse env:")
}
