// Package messages renders collected glue as a stream of newline-delimited
// JSON envelopes in the shape of cucumber messages.
package messages

import "time"

// ProtocolVersion is the message protocol version written in Meta.
const ProtocolVersion = "27.0.0"

// Envelope carries exactly one message.
type Envelope struct {
	Meta            *Meta            `json:"meta,omitempty"`
	StepDefinition  *StepDefinition  `json:"stepDefinition,omitempty"`
	Hook            *Hook            `json:"hook,omitempty"`
	ParameterType   *ParameterType   `json:"parameterType,omitempty"`
	TestRunStarted  *TestRunStarted  `json:"testRunStarted,omitempty"`
	TestRunFinished *TestRunFinished `json:"testRunFinished,omitempty"`
}

// Product names a piece of software and its version.
type Product struct {
	Name    string `json:"name"`
	Version string `json:"version,omitempty"`
}

// Meta describes the producer of the stream.
type Meta struct {
	ProtocolVersion string  `json:"protocolVersion"`
	Implementation  Product `json:"implementation"`
	Runtime         Product `json:"runtime"`
	OS              Product `json:"os"`
}

// Pattern types of a step definition.
const (
	PatternCucumberExpression = "CUCUMBER_EXPRESSION"
	PatternRegularExpression  = "REGULAR_EXPRESSION"
)

// Hook types.
const (
	HookBeforeTestCase = "BEFORE_TEST_CASE"
	HookAfterTestCase  = "AFTER_TEST_CASE"
	HookBeforeTestStep = "BEFORE_TEST_STEP"
	HookAfterTestStep  = "AFTER_TEST_STEP"
)

// MethodReference points at the Go method behind a definition.
type MethodReference struct {
	TypeName       string   `json:"typeName"`
	MethodName     string   `json:"methodName"`
	ParameterTypes []string `json:"parameterTypes"`
}

// SourceReference locates a definition.
type SourceReference struct {
	Method *MethodReference `json:"method,omitempty"`
}

type StepDefinitionPattern struct {
	Source string `json:"source"`
	Type   string `json:"type"`
}

type StepDefinition struct {
	ID              string                `json:"id"`
	Pattern         StepDefinitionPattern `json:"pattern"`
	SourceReference SourceReference       `json:"sourceReference"`
}

type Hook struct {
	ID              string          `json:"id"`
	Type            string          `json:"type"`
	TagExpression   string          `json:"tagExpression,omitempty"`
	Order           int             `json:"order"`
	SourceReference SourceReference `json:"sourceReference"`
}

type ParameterType struct {
	ID                              string          `json:"id"`
	Name                            string          `json:"name"`
	RegularExpressions              []string        `json:"regularExpressions"`
	PreferForRegularExpressionMatch bool            `json:"preferForRegularExpressionMatch"`
	UseForSnippets                  bool            `json:"useForSnippets"`
	SourceReference                 SourceReference `json:"sourceReference"`
}

// Timestamp is a point in time split into seconds and nanoseconds.
type Timestamp struct {
	Seconds int64 `json:"seconds"`
	Nanos   int   `json:"nanos"`
}

// TimestampOf converts t.
func TimestampOf(t time.Time) Timestamp {
	return Timestamp{Seconds: t.Unix(), Nanos: t.Nanosecond()}
}

type TestRunStarted struct {
	Timestamp Timestamp `json:"timestamp"`
}

type TestRunFinished struct {
	Success   bool      `json:"success"`
	Timestamp Timestamp `json:"timestamp"`
	Message   string    `json:"message,omitempty"`
}
