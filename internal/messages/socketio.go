package messages

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/vk/gluebind/internal/ctxlog"
	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"
)

// EnvelopeEvent is the socket.io event each envelope is emitted under.
const EnvelopeEvent = "envelope"

const connectTimeout = 15 * time.Second

// SocketIOSink emits every written line as one envelope event.
type SocketIOSink struct {
	mu         sync.Mutex
	emit       func(line string)
	disconnect func()
	closed     bool
}

func newSocketIOSink(io *socket.Socket) *SocketIOSink {
	return &SocketIOSink{
		emit:       func(line string) { io.Emit(EnvelopeEvent, line) },
		disconnect: func() { io.Disconnect() },
	}
}

// Write emits p without its trailing newline.
func (s *SocketIOSink) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0, ErrClosed
	}
	s.emit(string(bytes.TrimRight(p, "\n")))
	return len(p), nil
}

// Close disconnects the client. Closing twice is a no-op.
func (s *SocketIOSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	s.disconnect()
	return nil
}

// DialSocketIO connects to the socket.io server at u and waits for the
// connection to be established.
func DialSocketIO(ctx context.Context, u *url.URL, namespace string) (*SocketIOSink, error) {
	logger := ctxlog.FromContext(ctx).With("url", u.String())

	opts := socket.DefaultOptions()
	opts.SetPath(u.Path)
	opts.SetTransports(types.NewSet(transports.WebSocket))

	scheme := u.Scheme
	switch scheme {
	case "ws":
		scheme = "http"
	case "wss":
		scheme = "https"
	}
	baseURL := fmt.Sprintf("%s://%s", scheme, u.Host)

	connectChan := make(chan error, 1)
	manager := socket.NewManager(baseURL, opts)
	io := manager.Socket(namespace, opts)

	io.Once(types.EventName("connect"), func(...any) {
		logger.Debug("Connected to message server.", "sid", io.Id())
		connectChan <- nil
	})
	io.Once(types.EventName("connect_error"), func(errs ...any) {
		err := fmt.Errorf("connect_error")
		if len(errs) > 0 {
			if e, ok := errs[0].(error); ok {
				err = e
			}
		}
		connectChan <- err
	})

	io.Connect()

	select {
	case err := <-connectChan:
		if err != nil {
			io.Disconnect()
			return nil, fmt.Errorf("socket.io connection failed: %w", err)
		}
		return newSocketIOSink(io), nil
	case <-ctx.Done():
		io.Disconnect()
		return nil, fmt.Errorf("context cancelled while waiting for socket.io connection: %w", ctx.Err())
	case <-time.After(connectTimeout):
		io.Disconnect()
		return nil, fmt.Errorf("timed out after %s waiting for socket.io connection", connectTimeout)
	}
}
