package cli_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/vk/gluebind/internal/app"
	"github.com/vk/gluebind/internal/cli"
	"github.com/vk/gluebind/internal/config"
)

var defaults = config.Settings{LogLevel: "info", LogFormat: "text", Workers: 1}

func TestParse(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name           string
		args           []string
		defaults       config.Settings
		expectExit     bool
		expectErr      bool
		expectedConfig *app.Config
		checkOutput    func(t *testing.T, output string)
	}{
		{
			name: "Happy Path with all flags",
			args: []string{
				"-manifests", "/glue/a.hcl,/glue/more",
				"--log-level=debug",
				"--log-format=json",
				"--messages=-",
				"--workers=8",
				"--fail-fast",
			},
			defaults: defaults,
			expectedConfig: &app.Config{
				ManifestPaths: []string{"/glue/a.hcl", "/glue/more"},
				LogLevel:      "debug",
				LogFormat:     "json",
				Messages:      "-",
				Workers:       8,
				FailFast:      true,
			},
		},
		{
			name:     "Shorthand flag and defaults",
			args:     []string{"-m", "/short/path"},
			defaults: defaults,
			expectedConfig: &app.Config{
				ManifestPaths: []string{"/short/path"},
				LogLevel:      "info",
				LogFormat:     "text",
				Workers:       1,
			},
		},
		{
			name:     "Positional arguments for paths",
			args:     []string{"/one", "/two"},
			defaults: defaults,
			expectedConfig: &app.Config{
				ManifestPaths: []string{"/one", "/two"},
				LogLevel:      "info",
				LogFormat:     "text",
				Workers:       1,
			},
		},
		{
			name: "Environment settings seed flags",
			args: []string{"--workers=2", "/glue"},
			defaults: config.Settings{
				LogLevel:  "warn",
				LogFormat: "json",
				Messages:  "out.ndjson",
				Workers:   6,
				FailFast:  true,
			},
			expectedConfig: &app.Config{
				ManifestPaths: []string{"/glue"},
				LogLevel:      "warn",
				LogFormat:     "json",
				Messages:      "out.ndjson",
				Workers:       2,
				FailFast:      true,
			},
		},
		{
			name:     "Upper case levels are normalised",
			args:     []string{"--log-level=DEBUG", "--log-format=TEXT", "/glue"},
			defaults: defaults,
			expectedConfig: &app.Config{
				ManifestPaths: []string{"/glue"},
				LogLevel:      "debug",
				LogFormat:     "text",
				Workers:       1,
			},
		},
		{
			name:       "Help flag triggers clean exit",
			args:       []string{"-h"},
			defaults:   defaults,
			expectExit: true,
			checkOutput: func(t *testing.T, output string) {
				require.True(t, strings.Contains(output, "Usage:"), "Expected help text to be printed")
			},
		},
		{
			name:       "No path triggers clean exit with usage",
			args:       []string{},
			defaults:   defaults,
			expectExit: true,
			checkOutput: func(t *testing.T, output string) {
				require.True(t, strings.Contains(output, "Usage:"), "Expected help text to be printed")
			},
		},
		{
			name:      "Invalid log level returns an error",
			args:      []string{"--log-level=foo", "/path"},
			defaults:  defaults,
			expectErr: true,
		},
		{
			name:      "Invalid log format returns an error",
			args:      []string{"--log-format=yaml", "/path"},
			defaults:  defaults,
			expectErr: true,
		},
		{
			name:      "Zero workers returns an error",
			args:      []string{"--workers=0", "/path"},
			defaults:  defaults,
			expectErr: true,
		},
		{
			name:      "Unknown flag returns an error",
			args:      []string{"--nope"},
			defaults:  defaults,
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Arrange ---
			out := &bytes.Buffer{}

			// --- Act ---
			cfg, shouldExit, err := cli.Parse(tc.args, out, tc.defaults)

			// --- Assert ---
			if tc.expectErr {
				require.Error(t, err)
				exitErr, isExitError := err.(*cli.ExitError)
				require.True(t, isExitError, "Expected error to be of type ExitError")
				require.Equal(t, 2, exitErr.Code)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expectExit, shouldExit)

			if tc.expectedConfig != nil {
				if diff := cmp.Diff(tc.expectedConfig, cfg); diff != "" {
					t.Errorf("Config mismatch (-want +got):\n%s", diff)
				}
			}

			if tc.checkOutput != nil {
				tc.checkOutput(t, out.String())
			}
		})
	}
}
