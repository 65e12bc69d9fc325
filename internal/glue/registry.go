package glue

import (
	"log/slog"
	"sync"

	"github.com/vk/gluebind/internal/definition"
)

// Registry is the in-memory Glue. Appends are serialised by a mutex so
// bindings may be collected from several goroutines; the order of
// definitions within a category is then unspecified.
type Registry struct {
	mu      sync.Mutex
	logger  *slog.Logger
	entries map[Category][]definition.Definition
}

// NewRegistry creates an empty registry. A nil logger falls back to the
// process default.
func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		logger:  logger,
		entries: make(map[Category][]definition.Definition),
	}
}

func (r *Registry) add(cat Category, d definition.Definition) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logger.Debug("Registering glue definition.", "category", string(cat), "location", d.Location())
	r.entries[cat] = append(r.entries[cat], d)
}

func (r *Registry) AddStepDefinition(d *definition.Step) { r.add(CategoryStepDefinition, d) }
func (r *Registry) AddBeforeHook(d *definition.Hook)     { r.add(CategoryBeforeHook, d) }
func (r *Registry) AddAfterHook(d *definition.Hook)      { r.add(CategoryAfterHook, d) }
func (r *Registry) AddBeforeStepHook(d *definition.Hook) { r.add(CategoryBeforeStepHook, d) }
func (r *Registry) AddAfterStepHook(d *definition.Hook)  { r.add(CategoryAfterStepHook, d) }

func (r *Registry) AddParameterType(d *definition.ParameterType) {
	r.add(CategoryParameterType, d)
}

func (r *Registry) AddDataTableType(d *definition.DataTableType) {
	r.add(CategoryDataTableType, d)
}

func (r *Registry) AddDefaultParameterTransformer(d *definition.DefaultParameterTransformer) {
	r.add(CategoryDefaultParameterTransformer, d)
}

func (r *Registry) AddDefaultDataTableEntryTransformer(d *definition.DefaultDataTableEntryTransformer) {
	r.add(CategoryDefaultDataTableEntryTransformer, d)
}

func (r *Registry) AddDefaultDataTableCellTransformer(d *definition.DefaultDataTableCellTransformer) {
	r.add(CategoryDefaultDataTableCellTransformer, d)
}

func (r *Registry) AddDocStringType(d *definition.DocStringType) {
	r.add(CategoryDocStringType, d)
}

// Definitions returns a copy of the definitions registered under cat.
func (r *Registry) Definitions(cat Category) []definition.Definition {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]definition.Definition(nil), r.entries[cat]...)
}

// Counts returns the number of definitions per category. Categories with no
// definitions are omitted.
func (r *Registry) Counts() map[Category]int {
	r.mu.Lock()
	defer r.mu.Unlock()
	counts := make(map[Category]int, len(r.entries))
	for cat, defs := range r.entries {
		if len(defs) > 0 {
			counts[cat] = len(defs)
		}
	}
	return counts
}

// Len returns the total number of registered definitions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, defs := range r.entries {
		n += len(defs)
	}
	return n
}

// StepDefinitions returns the registered step definitions.
func (r *Registry) StepDefinitions() []*definition.Step {
	return collect[*definition.Step](r, CategoryStepDefinition)
}

// Hooks returns the hooks registered for the entry point of phase.
func (r *Registry) Hooks(phase definition.Phase) []*definition.Hook {
	switch phase {
	case definition.PhaseBefore:
		return collect[*definition.Hook](r, CategoryBeforeHook)
	case definition.PhaseAfter:
		return collect[*definition.Hook](r, CategoryAfterHook)
	case definition.PhaseBeforeStep:
		return collect[*definition.Hook](r, CategoryBeforeStepHook)
	case definition.PhaseAfterStep:
		return collect[*definition.Hook](r, CategoryAfterStepHook)
	default:
		return nil
	}
}

// ParameterTypes returns the registered parameter types.
func (r *Registry) ParameterTypes() []*definition.ParameterType {
	return collect[*definition.ParameterType](r, CategoryParameterType)
}

// DataTableTypes returns the registered data table types.
func (r *Registry) DataTableTypes() []*definition.DataTableType {
	return collect[*definition.DataTableType](r, CategoryDataTableType)
}

// DocStringTypes returns the registered doc string types.
func (r *Registry) DocStringTypes() []*definition.DocStringType {
	return collect[*definition.DocStringType](r, CategoryDocStringType)
}

func collect[T definition.Definition](r *Registry, cat Category) []T {
	defs := r.Definitions(cat)
	out := make([]T, 0, len(defs))
	for _, d := range defs {
		if typed, ok := d.(T); ok {
			out = append(out, typed)
		}
	}
	return out
}
