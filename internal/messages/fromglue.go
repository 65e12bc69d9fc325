package messages

import (
	"runtime"
	"strings"

	"github.com/google/uuid"
	"github.com/vk/gluebind/internal/callable"
	"github.com/vk/gluebind/internal/definition"
	"github.com/vk/gluebind/internal/glue"
)

var hookTypes = []struct {
	phase definition.Phase
	name  string
}{
	{definition.PhaseBefore, HookBeforeTestCase},
	{definition.PhaseAfter, HookAfterTestCase},
	{definition.PhaseBeforeStep, HookBeforeTestStep},
	{definition.PhaseAfterStep, HookAfterTestStep},
}

// NewMeta describes this binary.
func NewMeta(name, version string) Envelope {
	return Envelope{Meta: &Meta{
		ProtocolVersion: ProtocolVersion,
		Implementation:  Product{Name: name, Version: version},
		Runtime:         Product{Name: "go", Version: runtime.Version()},
		OS:              Product{Name: runtime.GOOS},
	}}
}

// FromGlue converts the definitions collected in reg into envelopes: step
// definitions first, then hooks by phase, then parameter types. A parameter
// type without a name is named after its method. newID defaults to random
// UUIDs.
func FromGlue(reg *glue.Registry, newID func() string) []Envelope {
	if newID == nil {
		newID = uuid.NewString
	}

	var out []Envelope
	for _, s := range reg.StepDefinitions() {
		out = append(out, Envelope{StepDefinition: &StepDefinition{
			ID: newID(),
			Pattern: StepDefinitionPattern{
				Source: s.Expression(),
				Type:   PatternType(s.Expression()),
			},
			SourceReference: referenceOf(s.Callable()),
		}})
	}

	for _, ht := range hookTypes {
		for _, h := range reg.Hooks(ht.phase) {
			out = append(out, Envelope{Hook: &Hook{
				ID:              newID(),
				Type:            ht.name,
				TagExpression:   h.TagExpression(),
				Order:           h.Order(),
				SourceReference: referenceOf(h.Callable()),
			}})
		}
	}

	for _, p := range reg.ParameterTypes() {
		name := p.Name()
		if name == "" {
			name = p.Callable().Name()
		}
		out = append(out, Envelope{ParameterType: &ParameterType{
			ID:                              newID(),
			Name:                            name,
			RegularExpressions:              []string{p.Pattern()},
			PreferForRegularExpressionMatch: p.PreferForRegexMatch(),
			UseForSnippets:                  p.UseForSnippets(),
			SourceReference:                 referenceOf(p.Callable()),
		}})
	}
	return out
}

// PatternType reports whether expr reads as a regular expression or a
// cucumber expression.
func PatternType(expr string) string {
	if strings.HasPrefix(expr, "^") || strings.HasSuffix(expr, "$") {
		return PatternRegularExpression
	}
	if len(expr) > 1 && strings.HasPrefix(expr, "/") && strings.HasSuffix(expr, "/") {
		return PatternRegularExpression
	}
	return PatternCucumberExpression
}

func referenceOf(c callable.Callable) SourceReference {
	if c.IsZero() {
		return SourceReference{}
	}
	return SourceReference{Method: &MethodReference{
		TypeName:       c.Owner().String(),
		MethodName:     c.Name(),
		ParameterTypes: c.ParameterTypes(),
	}}
}
