package document

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

// HCLLoader decodes HCL documents written in attribute syntax:
//
//	shape = {
//	  cube = [{ name = "room", start = [0, 0, 0], size = [1, 1, 1] }]
//	}
//	material = [{ name = "air" }]
//
// Expressions are evaluated without variables or functions, so every value
// must be a literal.
type HCLLoader struct{}

// NewHCLLoader creates an HCLLoader.
func NewHCLLoader() *HCLLoader {
	return &HCLLoader{}
}

// Load implements Loader.
func (l *HCLLoader) Load(ctx context.Context, path string) (cty.Value, error) {
	return readFile(ctx, path, l.Decode)
}

// Decode implements Loader.
func (l *HCLLoader) Decode(_ context.Context, src []byte, filename string) (cty.Value, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return cty.NilVal, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}

	attrs, diags := file.Body.JustAttributes()
	if diags.HasErrors() {
		return cty.NilVal, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	vals := make(map[string]cty.Value, len(attrs))
	var all hcl.Diagnostics
	for name, attr := range attrs {
		v, valDiags := attr.Expr.Value(nil)
		all = append(all, valDiags...)
		if valDiags.HasErrors() {
			continue
		}
		vals[name] = v
	}
	if all.HasErrors() {
		return cty.NilVal, fmt.Errorf("failed to evaluate HCL file %s: %w", filename, all)
	}

	return cty.ObjectVal(vals), nil
}
