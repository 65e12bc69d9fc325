package marker

// ParameterType marks a method that converts a matched step argument.
type ParameterType struct {
	Value                          string `cty:"pattern"`
	Name                           string `cty:"name"`
	UseForSnippets                 bool   `cty:"use_for_snippets"`
	PreferForRegexMatch            bool   `cty:"prefer_for_regex_match"`
	UseRegexpMatchAsStrongTypeHint bool   `cty:"use_regexp_match_as_strong_type_hint"`
}

func (ParameterType) Kind() Kind { return KindParameterType }

// DataTableType marks a method that converts data table entries, rows or
// cells into a custom type.
type DataTableType struct {
	ReplaceWithEmptyString []string `cty:"replace_with_empty_string"`
}

func (DataTableType) Kind() Kind { return KindDataTableType }

// DocStringType marks a method that converts a doc string of a content type.
type DocStringType struct {
	ContentType string `cty:"content_type"`
}

func (DocStringType) Kind() Kind { return KindDocStringType }

// DefaultParameterTransformer marks the fallback parameter conversion.
type DefaultParameterTransformer struct{}

func (DefaultParameterTransformer) Kind() Kind { return KindDefaultParameterTransformer }

// DefaultDataTableEntryTransformer marks the fallback data table entry
// conversion.
type DefaultDataTableEntryTransformer struct {
	HeadersToProperties    bool     `cty:"headers_to_properties"`
	ReplaceWithEmptyString []string `cty:"replace_with_empty_string"`
}

func (DefaultDataTableEntryTransformer) Kind() Kind { return KindDefaultDataTableEntryTransformer }

// DefaultDataTableCellTransformer marks the fallback data table cell
// conversion.
type DefaultDataTableCellTransformer struct {
	ReplaceWithEmptyString []string `cty:"replace_with_empty_string"`
}

func (DefaultDataTableCellTransformer) Kind() Kind { return KindDefaultDataTableCellTransformer }
