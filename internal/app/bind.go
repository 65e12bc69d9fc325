package app

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/vk/gluebind/internal/ctxlog"
	"github.com/vk/gluebind/internal/manifest"
)

// bind hands every binding to the adaptor using the configured number of
// workers. With one worker definitions are registered in binding order.
// Failures are joined in binding order; with FailFast only the first one is
// returned and no further bindings are attempted.
func (a *App) bind(ctx context.Context, bindings []manifest.Binding) error {
	logger := ctxlog.FromContext(ctx)
	if len(bindings) == 0 {
		return nil
	}

	workCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	errs := make([]error, len(bindings))
	jobs := make(chan int)

	workers := max(1, min(a.config.Workers, len(bindings)))
	logger.Debug("Binding glue.", "bindings", len(bindings), "workers", workers)

	var wg sync.WaitGroup
	for id := 1; id <= workers; id++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			a.worker(workCtx, bindings, errs, jobs, cancel, workerID)
		}(id)
	}

feed:
	for i := range bindings {
		select {
		case jobs <- i:
		case <-workCtx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	var failed []error
	for _, err := range errs {
		if err != nil {
			failed = append(failed, err)
		}
	}
	if ctx.Err() != nil {
		failed = append(failed, fmt.Errorf("binding interrupted: %w", ctx.Err()))
	}
	if len(failed) == 0 {
		return nil
	}
	if a.config.FailFast {
		return failed[0]
	}
	return errors.Join(failed...)
}

// worker is the processing loop for a single binding worker.
func (a *App) worker(ctx context.Context, bindings []manifest.Binding, errs []error, jobs <-chan int, cancel context.CancelFunc, workerID int) {
	logger := ctxlog.FromContext(ctx).With("workerID", workerID)
	logger.Debug("Worker started.")

	for i := range jobs {
		if ctx.Err() != nil {
			continue
		}

		b := bindings[i]
		if err := a.adaptor.AddDefinition(ctx, b.Callable, b.Marker); err != nil {
			logger.Error("Binding failed.", "source", b.Source, "error", err)
			errs[i] = fmt.Errorf("%s: %w", b.Source, err)
			if a.config.FailFast {
				cancel()
			}
		}
	}
	logger.Debug("Worker finished.")
}
