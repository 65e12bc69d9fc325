package adaptor

import (
	"errors"
	"fmt"

	"github.com/vk/gluebind/internal/callable"
	"github.com/vk/gluebind/internal/factory"
	"github.com/vk/gluebind/internal/marker"
)

var (
	// ErrUnboundMarkerKind is returned when a marker kind has no factory.
	ErrUnboundMarkerKind = factory.ErrUnboundMarkerKind
	// ErrMalformedMarker is returned when a marker does not expose the
	// configuration its factory needs.
	ErrMalformedMarker = factory.ErrMalformedMarker
	// ErrConstruction is returned for any other failure while building or
	// routing a definition.
	ErrConstruction = errors.New("definition construction failed")
)

// BindingError reports a failed binding of one callable and marker kind.
type BindingError struct {
	Callable callable.Callable
	Kind     marker.Kind
	Err      error
}

func (e *BindingError) Error() string {
	return fmt.Sprintf("binding %s as %s: %v", e.Callable, e.Kind, e.Err)
}

func (e *BindingError) Unwrap() error { return e.Err }

// construction marks err as a construction failure unless it already
// carries one of the binding sentinels.
func construction(err error) error {
	if errors.Is(err, ErrUnboundMarkerKind) || errors.Is(err, ErrMalformedMarker) || errors.Is(err, ErrConstruction) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrConstruction, err)
}
