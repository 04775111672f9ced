package document

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/specialistvlad/fdtdscene/internal/tree"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// FromGo converts the generic Go values produced by the TOML and YAML
// decoders into a cty value. Maps become objects and slices become tuples so
// that heterogeneous arrays survive the conversion.
func FromGo(v any) (cty.Value, error) {
	val, err := fromGo(v, cty.Path{})
	if err != nil {
		var pathErr cty.PathError
		if errors.As(err, &pathErr) {
			return cty.NilVal, fmt.Errorf("%s: %w", tree.FormatPath(pathErr.Path), err)
		}
		return cty.NilVal, err
	}
	return val, nil
}

func fromGo(v any, path cty.Path) (cty.Value, error) {
	switch t := v.(type) {
	case nil:
		return cty.NullVal(cty.DynamicPseudoType), nil
	case cty.Value:
		return t, nil
	case string:
		return cty.StringVal(t), nil
	case bool:
		return cty.BoolVal(t), nil
	case int:
		return cty.NumberIntVal(int64(t)), nil
	case int8:
		return cty.NumberIntVal(int64(t)), nil
	case int16:
		return cty.NumberIntVal(int64(t)), nil
	case int32:
		return cty.NumberIntVal(int64(t)), nil
	case int64:
		return cty.NumberIntVal(t), nil
	case uint:
		return cty.NumberUIntVal(uint64(t)), nil
	case uint8:
		return cty.NumberUIntVal(uint64(t)), nil
	case uint16:
		return cty.NumberUIntVal(uint64(t)), nil
	case uint32:
		return cty.NumberUIntVal(uint64(t)), nil
	case uint64:
		return cty.NumberUIntVal(t), nil
	case float32:
		return floatVal(float64(t))
	case float64:
		return floatVal(t)
	case time.Time:
		return cty.StringVal(t.Format(time.RFC3339Nano)), nil
	case map[string]any:
		attrs := make(map[string]cty.Value, len(t))
		for k, elem := range t {
			cv, err := fromGo(elem, path.GetAttr(k))
			if err != nil {
				return cty.NilVal, err
			}
			attrs[k] = cv
		}
		return cty.ObjectVal(attrs), nil
	case map[any]any:
		attrs := make(map[string]cty.Value, len(t))
		for k, elem := range t {
			key, ok := k.(string)
			if !ok {
				return cty.NilVal, path.NewErrorf("non-string key %v", k)
			}
			cv, err := fromGo(elem, path.GetAttr(key))
			if err != nil {
				return cty.NilVal, err
			}
			attrs[key] = cv
		}
		return cty.ObjectVal(attrs), nil
	case []any:
		return tupleOf(len(t), func(i int) any { return t[i] }, path)
	case []map[string]any:
		return tupleOf(len(t), func(i int) any { return t[i] }, path)
	case fmt.Stringer:
		// TOML local dates and times.
		return cty.StringVal(t.String()), nil
	default:
		ty, err := gocty.ImpliedType(v)
		if err != nil {
			return cty.NilVal, path.NewErrorf("unsupported value of type %T", v)
		}
		cv, err := gocty.ToCtyValue(v, ty)
		if err != nil {
			return cty.NilVal, path.NewError(err)
		}
		return cv, nil
	}
}

func tupleOf(n int, at func(int) any, path cty.Path) (cty.Value, error) {
	if n == 0 {
		return cty.EmptyTupleVal, nil
	}
	elems := make([]cty.Value, n)
	for i := range n {
		cv, err := fromGo(at(i), path.IndexInt(i))
		if err != nil {
			return cty.NilVal, err
		}
		elems[i] = cv
	}
	return cty.TupleVal(elems), nil
}

// floatVal maps NaN to a null number, which readers treat as an absent
// field.
func floatVal(f float64) (cty.Value, error) {
	if math.IsNaN(f) {
		return cty.NullVal(cty.Number), nil
	}
	return cty.NumberFloatVal(f), nil
}
