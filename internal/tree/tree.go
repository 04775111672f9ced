// Package tree provides typed read access to a parsed configuration
// document represented as a cty.Value.
//
// Document loaders produce objects (or maps) for tables, tuples (or lists)
// for arrays and primitive values for scalars. The helpers here hide that
// variety: a "record" is any known, non-null object or map, and an "array" is
// any known, non-null tuple, list or set. A null attribute is treated as
// absent.
package tree

import (
	"math/big"

	"github.com/zclconf/go-cty/cty"
)

// IsRecord reports whether v is a table-like value.
func IsRecord(v cty.Value) bool {
	if !v.IsKnown() || v.IsNull() {
		return false
	}
	ty := v.Type()
	return ty.IsObjectType() || ty.IsMapType()
}

// Attr returns the named attribute of a record. The second result is false
// when rec is not a record, the attribute is absent, or its value is null.
func Attr(rec cty.Value, name string) (cty.Value, bool) {
	if !IsRecord(rec) {
		return cty.NilVal, false
	}

	var v cty.Value
	ty := rec.Type()
	if ty.IsObjectType() {
		if !ty.HasAttribute(name) {
			return cty.NilVal, false
		}
		v = rec.GetAttr(name)
	} else {
		key := cty.StringVal(name)
		if !rec.HasIndex(key).True() {
			return cty.NilVal, false
		}
		v = rec.Index(key)
	}

	if !v.IsKnown() || v.IsNull() {
		return cty.NilVal, false
	}
	return v, true
}

// Elements returns the elements of an array-like value.
func Elements(v cty.Value) ([]cty.Value, bool) {
	if !v.IsKnown() || v.IsNull() {
		return nil, false
	}
	ty := v.Type()
	if !ty.IsTupleType() && !ty.IsListType() && !ty.IsSetType() {
		return nil, false
	}
	return v.AsValueSlice(), true
}

// Record returns the named attribute if it is itself a record.
func Record(rec cty.Value, name string) (cty.Value, bool) {
	v, ok := Attr(rec, name)
	if !ok || !IsRecord(v) {
		return cty.NilVal, false
	}
	return v, true
}

// Array returns the elements of the named attribute if it is an array.
func Array(rec cty.Value, name string) ([]cty.Value, bool) {
	v, ok := Attr(rec, name)
	if !ok {
		return nil, false
	}
	return Elements(v)
}

// String returns the named attribute if it is a string.
func String(rec cty.Value, name string) (string, bool) {
	v, ok := Attr(rec, name)
	if !ok || !v.Type().Equals(cty.String) {
		return "", false
	}
	return v.AsString(), true
}

// Number returns the named attribute if it is a number.
func Number(rec cty.Value, name string) (float64, bool) {
	v, ok := Attr(rec, name)
	if !ok {
		return 0, false
	}
	return asFloat(v)
}

// Int returns the named attribute if it is a number with an exact integer
// value that fits in an int.
func Int(rec cty.Value, name string) (int, bool) {
	v, ok := Attr(rec, name)
	if !ok || !v.Type().Equals(cty.Number) {
		return 0, false
	}
	bf := v.AsBigFloat()
	if !bf.IsInt() {
		return 0, false
	}
	i, acc := bf.Int64()
	if acc != big.Exact || int64(int(i)) != i {
		return 0, false
	}
	return int(i), true
}

// Bool returns the named attribute if it is a bool.
func Bool(rec cty.Value, name string) (bool, bool) {
	v, ok := Attr(rec, name)
	if !ok || !v.Type().Equals(cty.Bool) {
		return false, false
	}
	return v.True(), true
}

func asFloat(v cty.Value) (float64, bool) {
	if !v.IsKnown() || v.IsNull() || !v.Type().Equals(cty.Number) {
		return 0, false
	}
	f, _ := v.AsBigFloat().Float64()
	return f, true
}
