package testutil

import (
	"sync"

	"github.com/vk/gluebind/internal/definition"
	"github.com/vk/gluebind/internal/glue"
)

// Call records one invocation of a glue entry point.
type Call struct {
	Category   glue.Category
	Definition definition.Definition
}

// RecordingGlue is a glue.Glue spy that records every entry point call in
// order.
type RecordingGlue struct {
	mu    sync.Mutex
	calls []Call
}

func (g *RecordingGlue) record(cat glue.Category, d definition.Definition) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls = append(g.calls, Call{Category: cat, Definition: d})
}

// Calls returns a copy of the recorded calls.
func (g *RecordingGlue) Calls() []Call {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]Call(nil), g.calls...)
}

// CallCount returns the total number of entry point calls.
func (g *RecordingGlue) CallCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.calls)
}

func (g *RecordingGlue) AddStepDefinition(d *definition.Step) {
	g.record(glue.CategoryStepDefinition, d)
}

func (g *RecordingGlue) AddBeforeHook(d *definition.Hook) {
	g.record(glue.CategoryBeforeHook, d)
}

func (g *RecordingGlue) AddAfterHook(d *definition.Hook) {
	g.record(glue.CategoryAfterHook, d)
}

func (g *RecordingGlue) AddBeforeStepHook(d *definition.Hook) {
	g.record(glue.CategoryBeforeStepHook, d)
}

func (g *RecordingGlue) AddAfterStepHook(d *definition.Hook) {
	g.record(glue.CategoryAfterStepHook, d)
}

func (g *RecordingGlue) AddParameterType(d *definition.ParameterType) {
	g.record(glue.CategoryParameterType, d)
}

func (g *RecordingGlue) AddDataTableType(d *definition.DataTableType) {
	g.record(glue.CategoryDataTableType, d)
}

func (g *RecordingGlue) AddDefaultParameterTransformer(d *definition.DefaultParameterTransformer) {
	g.record(glue.CategoryDefaultParameterTransformer, d)
}

func (g *RecordingGlue) AddDefaultDataTableEntryTransformer(d *definition.DefaultDataTableEntryTransformer) {
	g.record(glue.CategoryDefaultDataTableEntryTransformer, d)
}

func (g *RecordingGlue) AddDefaultDataTableCellTransformer(d *definition.DefaultDataTableCellTransformer) {
	g.record(glue.CategoryDefaultDataTableCellTransformer, d)
}

func (g *RecordingGlue) AddDocStringType(d *definition.DocStringType) {
	g.record(glue.CategoryDocStringType, d)
}

var _ glue.Glue = (*RecordingGlue)(nil)
