package factory

import (
	"fmt"

	"github.com/vk/gluebind/internal/callable"
	"github.com/vk/gluebind/internal/definition"
	"github.com/vk/gluebind/internal/lookup"
	"github.com/vk/gluebind/internal/marker"
)

// Step builds a step definition from any step-like marker. The expression is
// read through marker.Expressioner, so markers bound to this factory must
// implement it.
func Step(l lookup.Lookup, c callable.Callable, m marker.Marker) (definition.Definition, error) {
	e, ok := m.(marker.Expressioner)
	if !ok {
		return nil, fmt.Errorf("%w: %T bound as a step but exposes no expression", ErrMalformedMarker, m)
	}
	d, err := definition.NewStep(e.Expression(), c, l)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// NewHook returns the factory for hooks of phase. The four hook kinds share
// one definition variant and differ only in phase.
func NewHook(phase definition.Phase) Factory {
	return func(l lookup.Lookup, c callable.Callable, m marker.Marker) (definition.Definition, error) {
		h, ok := m.(marker.Hook)
		if !ok {
			return nil, malformed(m, "hook")
		}
		d, err := definition.NewHook(phase, h.TagExpression(), h.HookOrder(), c, l)
		if err != nil {
			return nil, err
		}
		return d, nil
	}
}

// ParameterType builds a parameter type definition from a ParameterType marker.
func ParameterType(l lookup.Lookup, c callable.Callable, m marker.Marker) (definition.Definition, error) {
	p, ok := as[marker.ParameterType](m)
	if !ok {
		return nil, malformed(m, "parameter type")
	}
	d, err := definition.NewParameterType(p.Name, p.Value, definition.ParameterTypeOptions{
		UseForSnippets:       p.UseForSnippets,
		PreferForRegexMatch:  p.PreferForRegexMatch,
		UseRegexAsStrongHint: p.UseRegexpMatchAsStrongTypeHint,
	}, c, l)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// DataTableType builds a data table type definition from a DataTableType marker.
func DataTableType(l lookup.Lookup, c callable.Callable, m marker.Marker) (definition.Definition, error) {
	dt, ok := as[marker.DataTableType](m)
	if !ok {
		return nil, malformed(m, "data table type")
	}
	d, err := definition.NewDataTableType(dt.ReplaceWithEmptyString, c, l)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// DocStringType builds a doc string type definition from a DocStringType marker.
func DocStringType(l lookup.Lookup, c callable.Callable, m marker.Marker) (definition.Definition, error) {
	ds, ok := as[marker.DocStringType](m)
	if !ok {
		return nil, malformed(m, "doc string type")
	}
	d, err := definition.NewDocStringType(ds.ContentType, c, l)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// DefaultParameterTransformer builds the fallback parameter transformer.
func DefaultParameterTransformer(l lookup.Lookup, c callable.Callable, m marker.Marker) (definition.Definition, error) {
	if _, ok := as[marker.DefaultParameterTransformer](m); !ok {
		return nil, malformed(m, "default parameter transformer")
	}
	d, err := definition.NewDefaultParameterTransformer(c, l)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// DefaultDataTableEntryTransformer builds the fallback data table entry transformer.
func DefaultDataTableEntryTransformer(l lookup.Lookup, c callable.Callable, m marker.Marker) (definition.Definition, error) {
	t, ok := as[marker.DefaultDataTableEntryTransformer](m)
	if !ok {
		return nil, malformed(m, "default data table entry transformer")
	}
	d, err := definition.NewDefaultDataTableEntryTransformer(t.HeadersToProperties, t.ReplaceWithEmptyString, c, l)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// DefaultDataTableCellTransformer builds the fallback data table cell transformer.
func DefaultDataTableCellTransformer(l lookup.Lookup, c callable.Callable, m marker.Marker) (definition.Definition, error) {
	t, ok := as[marker.DefaultDataTableCellTransformer](m)
	if !ok {
		return nil, malformed(m, "default data table cell transformer")
	}
	d, err := definition.NewDefaultDataTableCellTransformer(t.ReplaceWithEmptyString, c, l)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// as reads m as a T marker. Both the value and a non-nil pointer to it are
// accepted.
func as[T marker.Marker](m marker.Marker) (T, bool) {
	switch v := any(m).(type) {
	case T:
		return v, true
	case *T:
		if v != nil {
			return *v, true
		}
	}
	var zero T
	return zero, false
}

func malformed(m marker.Marker, want string) error {
	return fmt.Errorf("%w: %T is not a %s marker", ErrMalformedMarker, m, want)
}
