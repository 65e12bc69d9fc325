// Package factory turns a (callable, marker) pair into a definition. It owns
// the static table that associates every marker kind with the factory for
// its definition variant.
package factory

import (
	"errors"
	"fmt"

	"github.com/vk/gluebind/internal/callable"
	"github.com/vk/gluebind/internal/definition"
	"github.com/vk/gluebind/internal/lookup"
	"github.com/vk/gluebind/internal/marker"
)

var (
	// ErrUnboundMarkerKind is returned when no factory is registered for a
	// marker kind.
	ErrUnboundMarkerKind = errors.New("unbound marker kind")
	// ErrMalformedMarker is returned when a marker does not expose the
	// configuration its factory reads.
	ErrMalformedMarker = errors.New("malformed marker")
)

// Factory builds the definition for one marker kind. Factories read only
// the fields of their own marker kind and are pure.
type Factory func(l lookup.Lookup, c callable.Callable, m marker.Marker) (definition.Definition, error)

// Table maps marker kinds to factories. A Table is read-only once built.
type Table struct {
	factories map[marker.Kind]Factory
}

// NewTable builds a table from entries. Nil factories are rejected.
func NewTable(entries map[marker.Kind]Factory) (Table, error) {
	factories := make(map[marker.Kind]Factory, len(entries))
	for kind, f := range entries {
		if f == nil {
			return Table{}, fmt.Errorf("factory: nil factory for kind %s", kind)
		}
		factories[kind] = f
	}
	return Table{factories: factories}, nil
}

// For returns the factory registered for kind.
func (t Table) For(kind marker.Kind) (Factory, error) {
	f, ok := t.factories[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnboundMarkerKind, kind)
	}
	return f, nil
}

// Len reports how many kinds the table binds.
func (t Table) Len() int { return len(t.factories) }

var defaultTable = mustTable(map[marker.Kind]Factory{
	marker.KindStep:                             Step,
	marker.KindBefore:                           NewHook(definition.PhaseBefore),
	marker.KindAfter:                            NewHook(definition.PhaseAfter),
	marker.KindBeforeStep:                       NewHook(definition.PhaseBeforeStep),
	marker.KindAfterStep:                        NewHook(definition.PhaseAfterStep),
	marker.KindParameterType:                    ParameterType,
	marker.KindDataTableType:                    DataTableType,
	marker.KindDefaultParameterTransformer:      DefaultParameterTransformer,
	marker.KindDefaultDataTableEntryTransformer: DefaultDataTableEntryTransformer,
	marker.KindDefaultDataTableCellTransformer:  DefaultDataTableCellTransformer,
	marker.KindDocStringType:                    DocStringType,
})

// Default returns the table binding every kind declared by package marker.
func Default() Table { return defaultTable }

func mustTable(entries map[marker.Kind]Factory) Table {
	t, err := NewTable(entries)
	if err != nil {
		panic(err)
	}
	return t
}
