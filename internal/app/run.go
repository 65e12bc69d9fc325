package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/vk/gluebind/internal/ctxlog"
	"github.com/vk/gluebind/internal/glue"
	"github.com/vk/gluebind/internal/messages"
)

// Run loads the configured manifests, binds the glue they declare and,
// when a message target is configured, writes the collected glue to it.
// Binding failures do not prevent the messages from being written; the run
// is then reported as unsuccessful.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")
	started := a.now()

	bindings, err := a.loader.Load(ctx, a.config.ManifestPaths...)
	if err != nil {
		return fmt.Errorf("failed to load glue manifests: %w", err)
	}
	if len(bindings) == 0 {
		a.logger.Warn("No glue found in manifests, nothing to bind.", "paths", a.config.ManifestPaths)
	}

	bindErr := a.bind(ctx, bindings)
	a.logger.Info("Glue collected.", a.summary(len(bindings))...)

	if a.config.Messages != "" {
		if err := a.writeMessages(ctx, started, bindErr); err != nil {
			return errors.Join(bindErr, err)
		}
	}

	a.logger.Debug("App.Run method finished.")
	return bindErr
}

func (a *App) summary(bindings int) []any {
	args := []any{"bindings", bindings, "definitions", a.glue.Len()}
	counts := a.glue.Counts()
	for _, cat := range glue.Categories() {
		if n := counts[cat]; n > 0 {
			args = append(args, string(cat), n)
		}
	}
	return args
}

func (a *App) writeMessages(ctx context.Context, started time.Time, bindErr error) error {
	w, err := messages.Open(ctx, a.config.Messages)
	if err != nil {
		return fmt.Errorf("failed to open message output: %w", err)
	}

	envs := []messages.Envelope{
		messages.NewMeta(Name, Version),
		{TestRunStarted: &messages.TestRunStarted{Timestamp: messages.TimestampOf(started)}},
	}
	envs = append(envs, messages.FromGlue(a.glue, a.newID)...)

	finished := &messages.TestRunFinished{Success: bindErr == nil, Timestamp: messages.TimestampOf(a.now())}
	if bindErr != nil {
		finished.Message = bindErr.Error()
	}
	envs = append(envs, messages.Envelope{TestRunFinished: finished})

	if err := messages.NewFormatter(w).WriteAll(envs); err != nil {
		if c, ok := w.(io.Closer); ok {
			c.Close()
		}
		return fmt.Errorf("failed to write messages: %w", err)
	}
	a.logger.Info("Messages written.", "target", a.config.Messages, "envelopes", len(envs))
	return nil
}
