package definition

import (
	"errors"
	"fmt"

	"github.com/vk/gluebind/internal/callable"
	"github.com/vk/gluebind/internal/lookup"
)

// ErrUnknownPhase is returned when a hook is built for a phase outside the
// four lifecycle phases.
var ErrUnknownPhase = errors.New("unknown hook phase")

// Phase is the point in the scenario lifecycle a hook runs at.
type Phase int

const (
	PhaseBefore Phase = iota + 1
	PhaseAfter
	PhaseBeforeStep
	PhaseAfterStep
)

func (p Phase) String() string {
	switch p {
	case PhaseBefore:
		return "before"
	case PhaseAfter:
		return "after"
	case PhaseBeforeStep:
		return "before_step"
	case PhaseAfterStep:
		return "after_step"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Valid reports whether p is one of the lifecycle phases.
func (p Phase) Valid() bool {
	return p >= PhaseBefore && p <= PhaseAfterStep
}

// Hook is a lifecycle hook bound to one phase.
type Hook struct {
	base
	phase         Phase
	tagExpression string
	order         int
}

// NewHook builds a hook definition for phase.
func NewHook(phase Phase, tagExpression string, order int, c callable.Callable, l lookup.Lookup) (*Hook, error) {
	if !phase.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPhase, phase)
	}
	b, err := newBase(c, l)
	if err != nil {
		return nil, err
	}
	return &Hook{base: b, phase: phase, tagExpression: tagExpression, order: order}, nil
}

func (h *Hook) Phase() Phase          { return h.phase }
func (h *Hook) TagExpression() string { return h.tagExpression }
func (h *Hook) Order() int            { return h.order }
