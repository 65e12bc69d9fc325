package marker

// Before marks a method run before each matching scenario.
type Before struct {
	Value string `cty:"tags"`
	Order int    `cty:"order"`
}

func (Before) Kind() Kind              { return KindBefore }
func (m Before) TagExpression() string { return m.Value }
func (m Before) HookOrder() int        { return m.Order }

// After marks a method run after each matching scenario.
type After struct {
	Value string `cty:"tags"`
	Order int    `cty:"order"`
}

func (After) Kind() Kind              { return KindAfter }
func (m After) TagExpression() string { return m.Value }
func (m After) HookOrder() int        { return m.Order }

// BeforeStep marks a method run before each step of a matching scenario.
type BeforeStep struct {
	Value string `cty:"tags"`
	Order int    `cty:"order"`
}

func (BeforeStep) Kind() Kind              { return KindBeforeStep }
func (m BeforeStep) TagExpression() string { return m.Value }
func (m BeforeStep) HookOrder() int        { return m.Order }

// AfterStep marks a method run after each step of a matching scenario.
type AfterStep struct {
	Value string `cty:"tags"`
	Order int    `cty:"order"`
}

func (AfterStep) Kind() Kind              { return KindAfterStep }
func (m AfterStep) TagExpression() string { return m.Value }
func (m AfterStep) HookOrder() int        { return m.Order }
