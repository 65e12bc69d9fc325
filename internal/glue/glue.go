// Package glue defines the behaviour repository that bound definitions are
// registered into, and provides a thread-safe in-memory implementation.
//
// The repository is populated once during the glue collection phase and
// read by the execution engine afterwards. It is append-only and accepts
// duplicates; conflict detection belongs to the engine.
package glue

import "github.com/vk/gluebind/internal/definition"

// Glue accepts one definition per call, partitioned by category.
type Glue interface {
	AddStepDefinition(d *definition.Step)
	AddBeforeHook(d *definition.Hook)
	AddAfterHook(d *definition.Hook)
	AddBeforeStepHook(d *definition.Hook)
	AddAfterStepHook(d *definition.Hook)
	AddParameterType(d *definition.ParameterType)
	AddDataTableType(d *definition.DataTableType)
	AddDefaultParameterTransformer(d *definition.DefaultParameterTransformer)
	AddDefaultDataTableEntryTransformer(d *definition.DefaultDataTableEntryTransformer)
	AddDefaultDataTableCellTransformer(d *definition.DefaultDataTableCellTransformer)
	AddDocStringType(d *definition.DocStringType)
}

// Category names one registration entry point of Glue.
type Category string

const (
	CategoryStepDefinition                   Category = "step_definition"
	CategoryBeforeHook                       Category = "before_hook"
	CategoryAfterHook                        Category = "after_hook"
	CategoryBeforeStepHook                   Category = "before_step_hook"
	CategoryAfterStepHook                    Category = "after_step_hook"
	CategoryParameterType                    Category = "parameter_type"
	CategoryDataTableType                    Category = "data_table_type"
	CategoryDefaultParameterTransformer      Category = "default_parameter_transformer"
	CategoryDefaultDataTableEntryTransformer Category = "default_data_table_entry_transformer"
	CategoryDefaultDataTableCellTransformer  Category = "default_data_table_cell_transformer"
	CategoryDocStringType                    Category = "doc_string_type"
)

// Categories lists every entry point in declaration order.
func Categories() []Category {
	return []Category{
		CategoryStepDefinition,
		CategoryBeforeHook,
		CategoryAfterHook,
		CategoryBeforeStepHook,
		CategoryAfterStepHook,
		CategoryParameterType,
		CategoryDataTableType,
		CategoryDefaultParameterTransformer,
		CategoryDefaultDataTableEntryTransformer,
		CategoryDefaultDataTableCellTransformer,
		CategoryDocStringType,
	}
}
