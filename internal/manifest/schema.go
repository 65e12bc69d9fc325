package manifest

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/vk/gluebind/internal/marker"
	"github.com/zclconf/go-cty/cty"
)

// fileRoot decodes the top-level blocks of a manifest file.
type fileRoot struct {
	Glue []*glueBlock `hcl:"glue,block"`
}

// glueBlock groups the marker blocks of one owner type.
type glueBlock struct {
	Owner string   `hcl:"owner,label"`
	Body  hcl.Body `hcl:",remain"`
}

// attrSpec describes one marker attribute. A nil Default makes the attribute
// required.
type attrSpec struct {
	Type    cty.Type
	Default *cty.Value
}

// blockSpec describes one marker block type and the marker it produces. New
// returns a pointer to a zero marker for gocty to decode into.
type blockSpec struct {
	New   func() any
	Attrs map[string]attrSpec
}

func defaultOf(v cty.Value) *cty.Value { return &v }

var (
	expressionAttrs = map[string]attrSpec{
		"expression": {Type: cty.String},
	}

	hookAttrs = map[string]attrSpec{
		"tags":  {Type: cty.String, Default: defaultOf(cty.StringVal(""))},
		"order": {Type: cty.Number, Default: defaultOf(cty.NumberIntVal(marker.DefaultHookOrder))},
	}

	emptyStringAttr = attrSpec{
		Type:    cty.List(cty.String),
		Default: defaultOf(cty.ListValEmpty(cty.String)),
	}
)

// blockSpecs maps manifest block types to markers.
var blockSpecs = map[string]blockSpec{
	"given": {New: func() any { return new(marker.Given) }, Attrs: expressionAttrs},
	"when":  {New: func() any { return new(marker.When) }, Attrs: expressionAttrs},
	"then":  {New: func() any { return new(marker.Then) }, Attrs: expressionAttrs},
	"and":   {New: func() any { return new(marker.And) }, Attrs: expressionAttrs},
	"but":   {New: func() any { return new(marker.But) }, Attrs: expressionAttrs},
	"step":  {New: func() any { return new(marker.Step) }, Attrs: expressionAttrs},

	"before":      {New: func() any { return new(marker.Before) }, Attrs: hookAttrs},
	"after":       {New: func() any { return new(marker.After) }, Attrs: hookAttrs},
	"before_step": {New: func() any { return new(marker.BeforeStep) }, Attrs: hookAttrs},
	"after_step":  {New: func() any { return new(marker.AfterStep) }, Attrs: hookAttrs},

	"parameter_type": {
		New: func() any { return new(marker.ParameterType) },
		Attrs: map[string]attrSpec{
			"pattern":                              {Type: cty.String},
			"name":                                 {Type: cty.String, Default: defaultOf(cty.StringVal(""))},
			"use_for_snippets":                     {Type: cty.Bool, Default: defaultOf(cty.False)},
			"prefer_for_regex_match":               {Type: cty.Bool, Default: defaultOf(cty.False)},
			"use_regexp_match_as_strong_type_hint": {Type: cty.Bool, Default: defaultOf(cty.True)},
		},
	},
	"data_table_type": {
		New:   func() any { return new(marker.DataTableType) },
		Attrs: map[string]attrSpec{"replace_with_empty_string": emptyStringAttr},
	},
	"doc_string_type": {
		New: func() any { return new(marker.DocStringType) },
		Attrs: map[string]attrSpec{
			"content_type": {Type: cty.String, Default: defaultOf(cty.StringVal(""))},
		},
	},
	"default_parameter_transformer": {
		New:   func() any { return new(marker.DefaultParameterTransformer) },
		Attrs: map[string]attrSpec{},
	},
	"default_data_table_entry_transformer": {
		New: func() any { return new(marker.DefaultDataTableEntryTransformer) },
		Attrs: map[string]attrSpec{
			"headers_to_properties":     {Type: cty.Bool, Default: defaultOf(cty.True)},
			"replace_with_empty_string": emptyStringAttr,
		},
	},
	"default_data_table_cell_transformer": {
		New:   func() any { return new(marker.DefaultDataTableCellTransformer) },
		Attrs: map[string]attrSpec{"replace_with_empty_string": emptyStringAttr},
	},
}

// glueBodySchema is the schema of a glue block body: every marker block
// type, labelled with the method name.
var glueBodySchema = func() *hcl.BodySchema {
	s := &hcl.BodySchema{}
	for _, name := range blockTypeNames() {
		s.Blocks = append(s.Blocks, hcl.BlockHeaderSchema{Type: name, LabelNames: []string{"method"}})
	}
	return s
}()
