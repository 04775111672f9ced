package document

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/fdtdscene/internal/ctxlog"
	"github.com/specialistvlad/fdtdscene/internal/tree"
	"github.com/zclconf/go-cty/cty"
)

// Format names a document syntax.
type Format string

const (
	FormatAuto Format = "auto"
	FormatTOML Format = "toml"
	FormatHCL  Format = "hcl"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Formats lists the accepted values of the -format option.
var Formats = []Format{FormatAuto, FormatTOML, FormatHCL, FormatYAML, FormatJSON}

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown document format %q", s)
}

// FormatForPath picks a format from a file extension. Unknown extensions are
// read as TOML.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		return FormatHCL
	case ".yaml", ".yml":
		return FormatYAML
	case ".json":
		return FormatJSON
	default:
		return FormatTOML
	}
}

// Extensions lists the file extensions recognised by FormatForPath.
func Extensions() []string {
	return []string{".toml", ".hcl", ".yaml", ".yml", ".json"}
}

// Loader reads a document into a cty.Value tree.
type Loader interface {
	// Load reads and decodes the file at path.
	Load(ctx context.Context, path string) (cty.Value, error)
	// Decode decodes an in-memory document. The filename is only used in
	// diagnostics.
	Decode(ctx context.Context, src []byte, filename string) (cty.Value, error)
}

// NewLoader returns the loader for a format. FormatAuto resolves the format
// from path.
func NewLoader(format Format, path string) (Loader, error) {
	if format == FormatAuto || format == "" {
		format = FormatForPath(path)
	}
	switch format {
	case FormatTOML:
		return NewTOMLLoader(), nil
	case FormatHCL:
		return NewHCLLoader(), nil
	case FormatYAML:
		return NewYAMLLoader(), nil
	case FormatJSON:
		return NewJSONLoader(), nil
	default:
		return nil, fmt.Errorf("unknown document format %q", format)
	}
}

// readFile is the shared Load implementation: read the file and hand the
// bytes to decode.
func readFile(ctx context.Context, path string, decode func(context.Context, []byte, string) (cty.Value, error)) (cty.Value, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Reading document.", "path", path)

	src, err := os.ReadFile(path)
	if err != nil {
		return cty.NilVal, fmt.Errorf("failed to read document: %w", err)
	}

	root, err := decode(ctx, src, path)
	if err != nil {
		return cty.NilVal, err
	}
	if !tree.IsRecord(root) {
		return cty.NilVal, fmt.Errorf("document %s: root must be a table, got %s", path, root.Type().FriendlyName())
	}

	logger.Debug("Document decoded.", "path", path, "type", root.Type().FriendlyName())
	return root, nil
}
