package definition

import (
	"github.com/vk/gluebind/internal/callable"
	"github.com/vk/gluebind/internal/lookup"
)

// Step binds a step expression to the method that implements it.
type Step struct {
	base
	expression string
}

// NewStep builds a step definition. The expression is not validated here;
// the matching engine compiles it.
func NewStep(expression string, c callable.Callable, l lookup.Lookup) (*Step, error) {
	b, err := newBase(c, l)
	if err != nil {
		return nil, err
	}
	return &Step{base: b, expression: expression}, nil
}

// Expression returns the cucumber expression or regular expression.
func (s *Step) Expression() string { return s.expression }
