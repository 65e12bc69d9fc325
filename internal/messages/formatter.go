package messages

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"
)

// ErrClosed is returned by Write after the stream was closed.
var ErrClosed = errors.New("messages: formatter is closed")

type flusher interface {
	Flush() error
}

// Formatter writes envelopes as newline-delimited JSON. The underlying
// writer is closed, when it is an io.Closer, after an envelope carrying
// TestRunFinished.
type Formatter struct {
	mu     sync.Mutex
	w      io.Writer
	closed bool
}

// NewFormatter creates a formatter writing to w.
func NewFormatter(w io.Writer) *Formatter {
	return &Formatter{w: w}
}

// Write serialises env as a single line.
func (f *Formatter) Write(env Envelope) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return ErrClosed
	}

	line, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("failed to encode envelope: %w", err)
	}
	line = append(line, '\n')
	if _, err := f.w.Write(line); err != nil {
		return fmt.Errorf("failed to write envelope: %w", err)
	}
	if fl, ok := f.w.(flusher); ok {
		if err := fl.Flush(); err != nil {
			return fmt.Errorf("failed to flush envelope: %w", err)
		}
	}

	if env.TestRunFinished != nil {
		f.closed = true
		if c, ok := f.w.(io.Closer); ok {
			if err := c.Close(); err != nil {
				return fmt.Errorf("failed to close message stream: %w", err)
			}
		}
	}
	return nil
}

// WriteAll writes envs in order and stops at the first error.
func (f *Formatter) WriteAll(envs []Envelope) error {
	for _, env := range envs {
		if err := f.Write(env); err != nil {
			return err
		}
	}
	return nil
}
