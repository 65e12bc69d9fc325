// Package apptest runs a complete app against temporary manifests.
package apptest

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/gluebind/internal/app"
	"github.com/vk/gluebind/internal/callable"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of an app run.
type HarnessResult struct {
	LogOutput string
	Err       error
	App       *app.App
	// Dir is the temporary directory holding the manifests.
	Dir string
}

// RunApp writes files (relative path to content) into a temporary
// directory, points a debug-logging app at it and runs it. configure, when
// not nil, adjusts the config before the app is built. A panic during
// start-up is returned as an error.
func RunApp(t *testing.T, files map[string]string, configure func(*app.Config), modules ...callable.Module) *HarnessResult {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}

	cfg := &app.Config{
		ManifestPaths: []string{dir},
		LogLevel:      "debug",
		LogFormat:     "text",
		Workers:       1,
	}
	if configure != nil {
		configure(cfg)
	}

	logBuffer := &SafeBuffer{}
	result := &HarnessResult{Dir: dir}

	func() {
		defer func() {
			if r := recover(); r != nil {
				result.Err = fmt.Errorf("application startup panicked | %v", r)
			}
		}()
		result.App = app.NewApp(logBuffer, cfg, modules...)
	}()

	if result.App != nil {
		result.Err = result.App.Run(context.Background())
	}
	result.LogOutput = logBuffer.String()

	if os.Getenv("GLUEBIND_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), result.LogOutput)
	}
	return result
}
