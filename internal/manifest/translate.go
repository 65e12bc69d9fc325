package manifest

import (
	"context"
	"fmt"
	"reflect"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/gluebind/internal/ctxlog"
	"github.com/vk/gluebind/internal/marker"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

func blockTypeNames() []string {
	names := make([]string, 0, len(blockSpecs))
	for name := range blockSpecs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// decodeMarker evaluates the attributes of a marker block against its
// schema, applies defaults, and decodes the result into the marker value.
func decodeMarker(ctx context.Context, block *hcl.Block) (marker.Marker, error) {
	logger := ctxlog.FromContext(ctx)

	spec, ok := blockSpecs[block.Type]
	if !ok {
		return nil, fmt.Errorf("%s: unsupported marker block %q", block.DefRange, block.Type)
	}

	attrs, diags := block.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, diags
	}

	for name, attr := range attrs {
		if _, known := spec.Attrs[name]; !known {
			return nil, fmt.Errorf("%s: unsupported argument %q in %s block", attr.NameRange, name, block.Type)
		}
	}

	values := make(map[string]cty.Value, len(spec.Attrs))
	for name, as := range spec.Attrs {
		val := cty.NullVal(as.Type)
		if attr, provided := attrs[name]; provided {
			raw, diags := attr.Expr.Value(nil)
			if diags.HasErrors() {
				return nil, diags
			}
			converted, err := convert.Convert(raw, as.Type)
			if err != nil {
				return nil, fmt.Errorf("%s: argument %q: cannot convert %s to %s: %w",
					attr.Range, name, raw.Type().FriendlyName(), as.Type.FriendlyName(), err)
			}
			val = converted
		}

		if val.IsNull() {
			if as.Default == nil {
				return nil, fmt.Errorf("%s: missing required argument %q in %s block", block.DefRange, name, block.Type)
			}
			logger.Debug("Applying default for marker argument.", "block", block.Type, "argument", name)
			val = *as.Default
		}
		values[name] = val
	}

	obj := cty.EmptyObjectVal
	if len(values) > 0 {
		obj = cty.ObjectVal(values)
	}

	target := spec.New()
	if err := gocty.FromCtyValue(obj, target); err != nil {
		return nil, fmt.Errorf("%s: decoding %s block: %w", block.DefRange, block.Type, err)
	}

	m, ok := reflect.ValueOf(target).Elem().Interface().(marker.Marker)
	if !ok {
		return nil, fmt.Errorf("%s: %s block does not produce a marker", block.DefRange, block.Type)
	}
	return m, nil
}
