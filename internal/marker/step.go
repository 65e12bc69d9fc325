package marker

// Given marks a step method matched by a Given keyword.
type Given struct {
	Value string `cty:"expression"`
}

func (Given) Kind() Kind           { return KindStep }
func (m Given) Expression() string { return m.Value }
func (Given) Keyword() string      { return "Given" }

// When marks a step method matched by a When keyword.
type When struct {
	Value string `cty:"expression"`
}

func (When) Kind() Kind           { return KindStep }
func (m When) Expression() string { return m.Value }
func (When) Keyword() string      { return "When" }

// Then marks a step method matched by a Then keyword.
type Then struct {
	Value string `cty:"expression"`
}

func (Then) Kind() Kind           { return KindStep }
func (m Then) Expression() string { return m.Value }
func (Then) Keyword() string      { return "Then" }

// And marks a step method matched by an And keyword.
type And struct {
	Value string `cty:"expression"`
}

func (And) Kind() Kind           { return KindStep }
func (m And) Expression() string { return m.Value }
func (And) Keyword() string      { return "And" }

// But marks a step method matched by a But keyword.
type But struct {
	Value string `cty:"expression"`
}

func (But) Kind() Kind           { return KindStep }
func (m But) Expression() string { return m.Value }
func (But) Keyword() string      { return "But" }

// Step marks a step method matched regardless of keyword.
type Step struct {
	Value string `cty:"expression"`
}

func (Step) Kind() Kind           { return KindStep }
func (m Step) Expression() string { return m.Value }
func (Step) Keyword() string      { return "*" }
