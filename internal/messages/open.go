package messages

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"

	"github.com/vk/gluebind/internal/ctxlog"
)

// Stdout is the target that writes envelopes to standard output.
const Stdout = "-"

// Open returns the sink for target. "-" is standard output and is never
// closed; ws, wss, http and https URLs are socket.io servers; anything else
// is a file path, created or truncated.
func Open(ctx context.Context, target string) (io.Writer, error) {
	logger := ctxlog.FromContext(ctx).With("target", target)

	if target == Stdout {
		logger.Debug("Writing messages to stdout.")
		return struct{ io.Writer }{os.Stdout}, nil
	}

	if u, err := url.Parse(target); err == nil {
		switch u.Scheme {
		case "ws", "wss", "http", "https":
			logger.Debug("Writing messages to socket.io server.")
			sink, err := DialSocketIO(ctx, u, "")
			if err != nil {
				return nil, err
			}
			return sink, nil
		}
	}

	if dir := filepath.Dir(target); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory for %s: %w", target, err)
		}
	}
	f, err := os.Create(target)
	if err != nil {
		return nil, fmt.Errorf("failed to open message file %s: %w", target, err)
	}
	logger.Debug("Writing messages to file.")
	return f, nil
}
