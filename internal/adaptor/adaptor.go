// Package adaptor binds discovered glue methods into the glue repository.
//
// For every (callable, marker) pair the Adaptor looks up the factory for the
// marker kind, builds the definition and hands it to exactly one
// registration entry point of the glue. Routing is decided by the
// definition variant, and for hooks by their phase, never by the marker
// kind itself.
package adaptor

import (
	"context"
	"fmt"
	"reflect"

	"github.com/vk/gluebind/internal/callable"
	"github.com/vk/gluebind/internal/ctxlog"
	"github.com/vk/gluebind/internal/definition"
	"github.com/vk/gluebind/internal/factory"
	"github.com/vk/gluebind/internal/glue"
	"github.com/vk/gluebind/internal/lookup"
	"github.com/vk/gluebind/internal/marker"
)

// Adaptor routes definitions into a Glue.
type Adaptor struct {
	lookup lookup.Lookup
	glue   glue.Glue
	table  factory.Table
}

// Option configures an Adaptor.
type Option func(*Adaptor)

// WithTable replaces the default marker-to-factory table.
func WithTable(t factory.Table) Option {
	return func(a *Adaptor) { a.table = t }
}

// New creates an Adaptor that threads l into every definition it builds
// and registers them into g.
func New(l lookup.Lookup, g glue.Glue, opts ...Option) *Adaptor {
	a := &Adaptor{lookup: l, glue: g, table: factory.Default()}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// AddDefinition binds c under m. On success exactly one glue entry point
// has been called; on failure none has, and the returned error is a
// *BindingError.
func (a *Adaptor) AddDefinition(ctx context.Context, c callable.Callable, m marker.Marker) error {
	logger := ctxlog.FromContext(ctx)

	kind, err := kindOf(m)
	if err != nil {
		logger.Debug("Binding failed.", "callable", c.String(), "error", err)
		return &BindingError{Callable: c, Err: err}
	}
	logger = logger.With("callable", c.String(), "kind", kind.String())

	d, err := a.build(c, kind, m)
	if err != nil {
		logger.Debug("Binding failed.", "error", err)
		return &BindingError{Callable: c, Kind: kind, Err: err}
	}

	register, err := a.route(d)
	if err != nil {
		logger.Debug("Binding failed.", "error", err)
		return &BindingError{Callable: c, Kind: kind, Err: err}
	}
	register()
	logger.Debug("Bound glue method.", "definition", fmt.Sprintf("%T", d))
	return nil
}

// build resolves the factory and invokes it. A panicking factory is reported
// as a construction failure.
func (a *Adaptor) build(c callable.Callable, kind marker.Kind, m marker.Marker) (d definition.Definition, err error) {
	f, err := a.table.For(kind)
	if err != nil {
		return nil, err
	}

	defer func() {
		if r := recover(); r != nil {
			d = nil
			err = fmt.Errorf("%w: factory panicked: %v", ErrConstruction, r)
		}
	}()

	d, err = f(a.lookup, c, m)
	if err != nil {
		return nil, construction(err)
	}
	if d == nil {
		return nil, fmt.Errorf("%w: factory returned no definition", ErrConstruction)
	}
	return d, nil
}

// kindOf reads the kind of m. Nil markers, including typed nil pointers,
// and markers whose Kind panics are malformed.
func kindOf(m marker.Marker) (kind marker.Kind, err error) {
	if m == nil {
		return 0, fmt.Errorf("%w: nil marker", ErrMalformedMarker)
	}
	if v := reflect.ValueOf(m); v.Kind() == reflect.Pointer && v.IsNil() {
		return 0, fmt.Errorf("%w: nil %T marker", ErrMalformedMarker, m)
	}

	defer func() {
		if r := recover(); r != nil {
			kind = 0
			err = fmt.Errorf("%w: reading kind of %T panicked: %v", ErrMalformedMarker, m, r)
		}
	}()
	return m.Kind(), nil
}

// route selects the single entry point for d without calling it, so an
// unroutable definition never reaches the glue.
func (a *Adaptor) route(d definition.Definition) (func(), error) {
	switch v := d.(type) {
	case *definition.Step:
		return func() { a.glue.AddStepDefinition(v) }, nil
	case *definition.Hook:
		return a.routeHook(v)
	case *definition.ParameterType:
		return func() { a.glue.AddParameterType(v) }, nil
	case *definition.DataTableType:
		return func() { a.glue.AddDataTableType(v) }, nil
	case *definition.DefaultParameterTransformer:
		return func() { a.glue.AddDefaultParameterTransformer(v) }, nil
	case *definition.DefaultDataTableEntryTransformer:
		return func() { a.glue.AddDefaultDataTableEntryTransformer(v) }, nil
	case *definition.DefaultDataTableCellTransformer:
		return func() { a.glue.AddDefaultDataTableCellTransformer(v) }, nil
	case *definition.DocStringType:
		return func() { a.glue.AddDocStringType(v) }, nil
	default:
		return nil, fmt.Errorf("%w: no glue entry point for %T", ErrConstruction, d)
	}
}

func (a *Adaptor) routeHook(h *definition.Hook) (func(), error) {
	switch h.Phase() {
	case definition.PhaseBefore:
		return func() { a.glue.AddBeforeHook(h) }, nil
	case definition.PhaseAfter:
		return func() { a.glue.AddAfterHook(h) }, nil
	case definition.PhaseBeforeStep:
		return func() { a.glue.AddBeforeStepHook(h) }, nil
	case definition.PhaseAfterStep:
		return func() { a.glue.AddAfterStepHook(h) }, nil
	default:
		return nil, fmt.Errorf("%w: no glue entry point for hook phase %s", ErrConstruction, h.Phase())
	}
}
