package definition

import (
	"github.com/vk/gluebind/internal/callable"
	"github.com/vk/gluebind/internal/lookup"
)

// ParameterType converts matched step arguments into a custom type.
type ParameterType struct {
	base
	name                 string
	pattern              string
	useForSnippets       bool
	preferForRegexMatch  bool
	useRegexAsStrongHint bool
}

// ParameterTypeOptions are the flags of a parameter type.
type ParameterTypeOptions struct {
	UseForSnippets       bool
	PreferForRegexMatch  bool
	UseRegexAsStrongHint bool
}

// NewParameterType creates a parameter type matching pattern.
func NewParameterType(name, pattern string, opts ParameterTypeOptions, c callable.Callable, l lookup.Lookup) (*ParameterType, error) {
	b, err := newBase(c, l)
	if err != nil {
		return nil, err
	}
	return &ParameterType{
		base:                 b,
		name:                 name,
		pattern:              pattern,
		useForSnippets:       opts.UseForSnippets,
		preferForRegexMatch:  opts.PreferForRegexMatch,
		useRegexAsStrongHint: opts.UseRegexAsStrongHint,
	}, nil
}

// Name is the parameter type name. An empty name means the method name is
// used by the engine.
func (p *ParameterType) Name() string               { return p.name }
func (p *ParameterType) Pattern() string            { return p.pattern }
func (p *ParameterType) UseForSnippets() bool       { return p.useForSnippets }
func (p *ParameterType) PreferForRegexMatch() bool  { return p.preferForRegexMatch }
func (p *ParameterType) UseRegexAsStrongHint() bool { return p.useRegexAsStrongHint }

// DataTableType converts data table entries, rows or cells.
type DataTableType struct {
	base
	emptyPatterns []string
}

// NewDataTableType creates a data table type.
func NewDataTableType(emptyPatterns []string, c callable.Callable, l lookup.Lookup) (*DataTableType, error) {
	b, err := newBase(c, l)
	if err != nil {
		return nil, err
	}
	return &DataTableType{base: b, emptyPatterns: copyStrings(emptyPatterns)}, nil
}

// EmptyPatterns lists cell values replaced by the empty string.
func (d *DataTableType) EmptyPatterns() []string { return copyStrings(d.emptyPatterns) }

// DocStringType converts doc strings of one content type.
type DocStringType struct {
	base
	contentType string
}

// NewDocStringType creates a doc string type for contentType.
func NewDocStringType(contentType string, c callable.Callable, l lookup.Lookup) (*DocStringType, error) {
	b, err := newBase(c, l)
	if err != nil {
		return nil, err
	}
	return &DocStringType{base: b, contentType: contentType}, nil
}

func (d *DocStringType) ContentType() string { return d.contentType }

// DefaultParameterTransformer converts parameters no parameter type claims.
type DefaultParameterTransformer struct {
	base
}

// NewDefaultParameterTransformer creates the fallback parameter transformer.
func NewDefaultParameterTransformer(c callable.Callable, l lookup.Lookup) (*DefaultParameterTransformer, error) {
	b, err := newBase(c, l)
	if err != nil {
		return nil, err
	}
	return &DefaultParameterTransformer{base: b}, nil
}

// DefaultDataTableEntryTransformer converts data table entries no data
// table type claims.
type DefaultDataTableEntryTransformer struct {
	base
	headersToProperties bool
	emptyPatterns       []string
}

// NewDefaultDataTableEntryTransformer creates the fallback entry transformer.
func NewDefaultDataTableEntryTransformer(headersToProperties bool, emptyPatterns []string, c callable.Callable, l lookup.Lookup) (*DefaultDataTableEntryTransformer, error) {
	b, err := newBase(c, l)
	if err != nil {
		return nil, err
	}
	return &DefaultDataTableEntryTransformer{
		base:                b,
		headersToProperties: headersToProperties,
		emptyPatterns:       copyStrings(emptyPatterns),
	}, nil
}

// HeadersToProperties reports whether table headers are mapped to property
// names before conversion.
func (d *DefaultDataTableEntryTransformer) HeadersToProperties() bool {
	return d.headersToProperties
}

func (d *DefaultDataTableEntryTransformer) EmptyPatterns() []string {
	return copyStrings(d.emptyPatterns)
}

// DefaultDataTableCellTransformer converts data table cells no data table
// type claims.
type DefaultDataTableCellTransformer struct {
	base
	emptyPatterns []string
}

// NewDefaultDataTableCellTransformer creates the fallback cell transformer.
func NewDefaultDataTableCellTransformer(emptyPatterns []string, c callable.Callable, l lookup.Lookup) (*DefaultDataTableCellTransformer, error) {
	b, err := newBase(c, l)
	if err != nil {
		return nil, err
	}
	return &DefaultDataTableCellTransformer{base: b, emptyPatterns: copyStrings(emptyPatterns)}, nil
}

func (d *DefaultDataTableCellTransformer) EmptyPatterns() []string {
	return copyStrings(d.emptyPatterns)
}
