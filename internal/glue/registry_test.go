package glue

import (
	"fmt"
	"reflect"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/gluebind/internal/callable"
	"github.com/vk/gluebind/internal/definition"
	"github.com/vk/gluebind/internal/lookup"
)

type steps struct{}

func (s *steps) Eat(n int) {}

func newStep(t *testing.T, expr string) *definition.Step {
	t.Helper()
	d, err := definition.NewStep(expr, callable.MustOf(reflect.TypeOf(steps{}), "Eat"), lookup.NewInMemory())
	require.NoError(t, err)
	return d
}

func newHook(t *testing.T, phase definition.Phase) *definition.Hook {
	t.Helper()
	d, err := definition.NewHook(phase, "", 0, callable.MustOf(reflect.TypeOf(steps{}), "Eat"), lookup.NewInMemory())
	require.NoError(t, err)
	return d
}

func TestRegistry_AcceptsDuplicates(t *testing.T) {
	r := NewRegistry(nil)
	d := newStep(t, "I eat {int} cukes")

	r.AddStepDefinition(d)
	r.AddStepDefinition(d)

	assert.Len(t, r.StepDefinitions(), 2)
	assert.Equal(t, 2, r.Len())
	assert.Equal(t, map[Category]int{CategoryStepDefinition: 2}, r.Counts())
}

func TestRegistry_HooksArePartitionedByEntryPoint(t *testing.T) {
	r := NewRegistry(nil)
	r.AddBeforeHook(newHook(t, definition.PhaseBefore))
	r.AddAfterHook(newHook(t, definition.PhaseAfter))
	r.AddAfterHook(newHook(t, definition.PhaseAfter))
	r.AddBeforeStepHook(newHook(t, definition.PhaseBeforeStep))
	r.AddAfterStepHook(newHook(t, definition.PhaseAfterStep))

	assert.Len(t, r.Hooks(definition.PhaseBefore), 1)
	assert.Len(t, r.Hooks(definition.PhaseAfter), 2)
	assert.Len(t, r.Hooks(definition.PhaseBeforeStep), 1)
	assert.Len(t, r.Hooks(definition.PhaseAfterStep), 1)
	assert.Nil(t, r.Hooks(definition.Phase(42)))
}

func TestRegistry_DefinitionsReturnsCopy(t *testing.T) {
	r := NewRegistry(nil)
	r.AddStepDefinition(newStep(t, "a"))

	defs := r.Definitions(CategoryStepDefinition)
	defs[0] = nil
	assert.NotNil(t, r.Definitions(CategoryStepDefinition)[0])
}

func TestCategories(t *testing.T) {
	cats := Categories()
	assert.Len(t, cats, 11)
	seen := make(map[Category]struct{})
	for _, c := range cats {
		seen[c] = struct{}{}
	}
	assert.Len(t, seen, 11, "categories must be distinct")
}

// TestRegistry_ConcurrentAppends verifies that parallel appends are neither
// lost nor corrupted.
func TestRegistry_ConcurrentAppends(t *testing.T) {
	r := NewRegistry(nil)
	numGoroutines := 100
	stepDefs := make([]*definition.Step, numGoroutines)
	for i := range stepDefs {
		stepDefs[i] = newStep(t, fmt.Sprintf("step %d", i))
	}
	hook := newHook(t, definition.PhaseAfterStep)
	var wg sync.WaitGroup

	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func(i int) {
			defer wg.Done()
			r.AddStepDefinition(stepDefs[i])
			r.AddAfterStepHook(hook)
		}(i)
	}
	wg.Wait()

	assert.Len(t, r.StepDefinitions(), numGoroutines)
	assert.Len(t, r.Hooks(definition.PhaseAfterStep), numGoroutines)

	seen := make(map[string]struct{})
	for _, s := range r.StepDefinitions() {
		seen[s.Expression()] = struct{}{}
	}
	assert.Len(t, seen, numGoroutines)
}
