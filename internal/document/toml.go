package document

import (
	"context"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/zclconf/go-cty/cty"
)

// TOMLLoader decodes TOML documents.
type TOMLLoader struct{}

// NewTOMLLoader creates a TOMLLoader.
func NewTOMLLoader() *TOMLLoader {
	return &TOMLLoader{}
}

// Load implements Loader.
func (l *TOMLLoader) Load(ctx context.Context, path string) (cty.Value, error) {
	return readFile(ctx, path, l.Decode)
}

// Decode implements Loader.
func (l *TOMLLoader) Decode(_ context.Context, src []byte, filename string) (cty.Value, error) {
	var raw map[string]any
	if _, err := toml.Decode(string(src), &raw); err != nil {
		return cty.NilVal, fmt.Errorf("failed to decode TOML file %s: %w", filename, err)
	}
	root, err := FromGo(raw)
	if err != nil {
		return cty.NilVal, fmt.Errorf("failed to convert TOML file %s: %w", filename, err)
	}
	return root, nil
}
