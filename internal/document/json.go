package document

import (
	"context"
	"fmt"

	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

// JSONLoader decodes JSON documents directly into cty values, keeping the
// exact decimal representation of numbers.
type JSONLoader struct{}

// NewJSONLoader creates a JSONLoader.
func NewJSONLoader() *JSONLoader {
	return &JSONLoader{}
}

// Load implements Loader.
func (l *JSONLoader) Load(ctx context.Context, path string) (cty.Value, error) {
	return readFile(ctx, path, l.Decode)
}

// Decode implements Loader.
func (l *JSONLoader) Decode(_ context.Context, src []byte, filename string) (cty.Value, error) {
	ty, err := ctyjson.ImpliedType(src)
	if err != nil {
		return cty.NilVal, fmt.Errorf("failed to decode JSON file %s: %w", filename, err)
	}
	root, err := ctyjson.Unmarshal(src, ty)
	if err != nil {
		return cty.NilVal, fmt.Errorf("failed to decode JSON file %s: %w", filename, err)
	}
	return root, nil
}
