package definition

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/gluebind/internal/callable"
	"github.com/vk/gluebind/internal/lookup"
)

type steps struct{}

func (s *steps) HaveCukes(n int) {}

func fixture(t *testing.T) (callable.Callable, lookup.Lookup) {
	t.Helper()
	return callable.MustOf(reflect.TypeOf(steps{}), "HaveCukes"), lookup.NewInMemory()
}

func TestNewStep(t *testing.T) {
	c, l := fixture(t)

	s, err := NewStep("I have {int} cukes", c, l)
	require.NoError(t, err)
	assert.Equal(t, "I have {int} cukes", s.Expression())
	assert.Equal(t, c, s.Callable())
	assert.Same(t, l, s.Lookup())
	assert.Equal(t, "definition.steps.HaveCukes(int)", s.Location())
}

func TestConstructorInvariants(t *testing.T) {
	c, l := fixture(t)

	t.Run("missing callable", func(t *testing.T) {
		_, err := NewStep("x", callable.Callable{}, l)
		assert.ErrorIs(t, err, ErrNoCallable)
	})

	t.Run("missing lookup", func(t *testing.T) {
		_, err := NewDocStringType("json", c, nil)
		assert.ErrorIs(t, err, ErrNoLookup)
	})

	t.Run("unknown phase", func(t *testing.T) {
		_, err := NewHook(Phase(0), "", 0, c, l)
		assert.ErrorIs(t, err, ErrUnknownPhase)
		_, err = NewHook(PhaseAfterStep+1, "", 0, c, l)
		assert.ErrorIs(t, err, ErrUnknownPhase)
	})
}

func TestNewHook(t *testing.T) {
	c, l := fixture(t)

	h, err := NewHook(PhaseAfterStep, "@slow", 5, c, l)
	require.NoError(t, err)
	assert.Equal(t, PhaseAfterStep, h.Phase())
	assert.Equal(t, "@slow", h.TagExpression())
	assert.Equal(t, 5, h.Order())
}

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "before", PhaseBefore.String())
	assert.Equal(t, "after", PhaseAfter.String())
	assert.Equal(t, "before_step", PhaseBeforeStep.String())
	assert.Equal(t, "after_step", PhaseAfterStep.String())
	assert.Equal(t, "Phase(9)", Phase(9).String())
}

func TestEmptyPatternsAreCopied(t *testing.T) {
	c, l := fixture(t)
	patterns := []string{"[blank]"}

	d, err := NewDataTableType(patterns, c, l)
	require.NoError(t, err)

	patterns[0] = "mutated"
	assert.Equal(t, []string{"[blank]"}, d.EmptyPatterns())

	got := d.EmptyPatterns()
	got[0] = "mutated"
	assert.Equal(t, []string{"[blank]"}, d.EmptyPatterns())
}

func TestParameterTypeOptions(t *testing.T) {
	c, l := fixture(t)

	p, err := NewParameterType("color", "red|blue", ParameterTypeOptions{
		UseForSnippets:       true,
		PreferForRegexMatch:  false,
		UseRegexAsStrongHint: true,
	}, c, l)
	require.NoError(t, err)
	assert.Equal(t, "color", p.Name())
	assert.Equal(t, "red|blue", p.Pattern())
	assert.True(t, p.UseForSnippets())
	assert.False(t, p.PreferForRegexMatch())
	assert.True(t, p.UseRegexAsStrongHint())
}

func TestVariantsImplementDefinition(t *testing.T) {
	var defs []Definition
	c, l := fixture(t)

	step, _ := NewStep("x", c, l)
	hook, _ := NewHook(PhaseBefore, "", 0, c, l)
	pt, _ := NewParameterType("", "", ParameterTypeOptions{}, c, l)
	dt, _ := NewDataTableType(nil, c, l)
	ds, _ := NewDocStringType("", c, l)
	dpt, _ := NewDefaultParameterTransformer(c, l)
	dte, _ := NewDefaultDataTableEntryTransformer(true, nil, c, l)
	dtc, _ := NewDefaultDataTableCellTransformer(nil, c, l)
	defs = append(defs, step, hook, pt, dt, ds, dpt, dte, dtc)

	for _, d := range defs {
		assert.Equal(t, c, d.Callable())
	}
	assert.Nil(t, dt.EmptyPatterns())
	assert.True(t, dte.HeadersToProperties())
}
