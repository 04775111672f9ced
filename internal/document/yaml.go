package document

import (
	"context"
	"fmt"

	"github.com/zclconf/go-cty/cty"
	"gopkg.in/yaml.v3"
)

// YAMLLoader decodes YAML documents. Only the first document of a stream is
// read.
type YAMLLoader struct{}

// NewYAMLLoader creates a YAMLLoader.
func NewYAMLLoader() *YAMLLoader {
	return &YAMLLoader{}
}

// Load implements Loader.
func (l *YAMLLoader) Load(ctx context.Context, path string) (cty.Value, error) {
	return readFile(ctx, path, l.Decode)
}

// Decode implements Loader.
func (l *YAMLLoader) Decode(_ context.Context, src []byte, filename string) (cty.Value, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(src, &raw); err != nil {
		return cty.NilVal, fmt.Errorf("failed to decode YAML file %s: %w", filename, err)
	}
	if raw == nil {
		// An empty stream is an empty document.
		raw = map[string]any{}
	}
	root, err := FromGo(raw)
	if err != nil {
		return cty.NilVal, fmt.Errorf("failed to convert YAML file %s: %w", filename, err)
	}
	return root, nil
}
