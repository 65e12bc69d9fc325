// Package definition holds the immutable glue definitions produced by
// binding a callable to a marker. The set of variants is closed: only types
// in this package implement Definition.
package definition

import (
	"errors"
	"fmt"

	"github.com/vk/gluebind/internal/callable"
	"github.com/vk/gluebind/internal/lookup"
)

var (
	// ErrNoCallable is returned when a definition is built without a
	// resolved callable.
	ErrNoCallable = errors.New("definition requires a callable")
	// ErrNoLookup is returned when a definition is built without a lookup.
	ErrNoLookup = errors.New("definition requires a lookup")
)

// Definition is bound behaviour ready to be registered into glue.
type Definition interface {
	Callable() callable.Callable
	Lookup() lookup.Lookup
	// Location renders the glue method for diagnostics.
	Location() string

	sealed()
}

// base stores what every variant needs to invoke its method later.
type base struct {
	callable callable.Callable
	lookup   lookup.Lookup
}

func newBase(c callable.Callable, l lookup.Lookup) (base, error) {
	if c.IsZero() {
		return base{}, ErrNoCallable
	}
	if l == nil {
		return base{}, fmt.Errorf("%w for %s", ErrNoLookup, c)
	}
	return base{callable: c, lookup: l}, nil
}

func (b base) Callable() callable.Callable { return b.callable }
func (b base) Lookup() lookup.Lookup       { return b.lookup }
func (b base) Location() string            { return b.callable.String() }
func (base) sealed()                       {}

func copyStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
