// Package marker defines the closed set of behavioural markers that can be
// attached to glue methods, and the configuration each one carries.
//
// Markers are plain values. The cty struct tags name the manifest
// attributes each field is decoded from.
package marker

import "fmt"

// Kind identifies which annotation a marker represents.
type Kind int

const (
	KindStep Kind = iota + 1
	KindBefore
	KindAfter
	KindBeforeStep
	KindAfterStep
	KindParameterType
	KindDataTableType
	KindDefaultParameterTransformer
	KindDefaultDataTableEntryTransformer
	KindDefaultDataTableCellTransformer
	KindDocStringType
)

var kindNames = map[Kind]string{
	KindStep:                             "Step",
	KindBefore:                           "Before",
	KindAfter:                            "After",
	KindBeforeStep:                       "BeforeStep",
	KindAfterStep:                        "AfterStep",
	KindParameterType:                    "ParameterType",
	KindDataTableType:                    "DataTableType",
	KindDefaultParameterTransformer:      "DefaultParameterTransformer",
	KindDefaultDataTableEntryTransformer: "DefaultDataTableEntryTransformer",
	KindDefaultDataTableCellTransformer:  "DefaultDataTableCellTransformer",
	KindDocStringType:                    "DocStringType",
}

// Kinds returns every kind known to this package, in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(kindNames))
	for k := KindStep; k <= KindDocStringType; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Marker is a configuration record attached to a callable.
type Marker interface {
	Kind() Kind
}

// Expressioner is implemented by every step-like marker. The step factory
// reads the step expression through it.
type Expressioner interface {
	Marker
	Expression() string
}

// Hook is implemented by the four lifecycle hook markers.
type Hook interface {
	Marker
	TagExpression() string
	HookOrder() int
}

// DefaultHookOrder is the order assigned to hooks that do not declare one.
const DefaultHookOrder = 10000
