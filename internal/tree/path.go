package tree

import (
	"fmt"
	"strings"

	"github.com/zclconf/go-cty/cty"
)

// FormatPath renders a cty.Path the way a user would address the value in
// the document, e.g. `shape.cube[2].start`.
func FormatPath(path cty.Path) string {
	if len(path) == 0 {
		return "document"
	}

	var sb strings.Builder
	for _, step := range path {
		switch s := step.(type) {
		case cty.GetAttrStep:
			if sb.Len() > 0 {
				sb.WriteRune('.')
			}
			sb.WriteString(s.Name)
		case cty.IndexStep:
			sb.WriteString(formatIndexKey(s.Key))
		default:
			sb.WriteString("[?]")
		}
	}
	return sb.String()
}

func formatIndexKey(key cty.Value) string {
	if !key.IsKnown() || key.IsNull() {
		return "[?]"
	}
	switch {
	case key.Type().Equals(cty.Number):
		return "[" + key.AsBigFloat().Text('f', -1) + "]"
	case key.Type().Equals(cty.String):
		return fmt.Sprintf("[%q]", key.AsString())
	default:
		return "[?]"
	}
}
