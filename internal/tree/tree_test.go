package tree

import (
	"testing"

	"github.com/specialistvlad/fdtdscene/internal/fdtd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func sampleRecord() cty.Value {
	return cty.ObjectVal(map[string]cty.Value{
		"name":     cty.StringVal("room"),
		"radius":   cty.NumberFloatVal(0.5),
		"priority": cty.NumberIntVal(3),
		"half":     cty.NumberFloatVal(2.5),
		"flag":     cty.True,
		"nothing":  cty.NullVal(cty.String),
		"start":    cty.TupleVal([]cty.Value{cty.NumberIntVal(1), cty.NumberFloatVal(2.5), cty.NumberIntVal(-3)}),
		"short":    cty.TupleVal([]cty.Value{cty.NumberIntVal(1), cty.NumberIntVal(2)}),
		"mixed":    cty.TupleVal([]cty.Value{cty.NumberIntVal(1), cty.StringVal("x"), cty.NumberIntVal(2)}),
		"nested":   cty.ObjectVal(map[string]cty.Value{"a": cty.NumberIntVal(1)}),
	})
}

func TestAttr(t *testing.T) {
	rec := sampleRecord()

	_, ok := Attr(rec, "name")
	assert.True(t, ok)

	_, ok = Attr(rec, "missing")
	assert.False(t, ok)

	_, ok = Attr(rec, "nothing")
	assert.False(t, ok, "null attributes count as absent")

	_, ok = Attr(cty.StringVal("scalar"), "name")
	assert.False(t, ok)
}

func TestAttr_Map(t *testing.T) {
	rec := cty.MapVal(map[string]cty.Value{"name": cty.StringVal("air")})

	name, ok := String(rec, "name")
	require.True(t, ok)
	assert.Equal(t, "air", name)

	_, ok = String(rec, "other")
	assert.False(t, ok)
}

func TestScalars(t *testing.T) {
	rec := sampleRecord()

	s, ok := String(rec, "name")
	require.True(t, ok)
	assert.Equal(t, "room", s)

	_, ok = String(rec, "radius")
	assert.False(t, ok, "numbers are not strings")

	f, ok := Number(rec, "radius")
	require.True(t, ok)
	assert.Equal(t, 0.5, f)

	f, ok = Number(rec, "priority")
	require.True(t, ok, "integers are numbers")
	assert.Equal(t, 3.0, f)

	i, ok := Int(rec, "priority")
	require.True(t, ok)
	assert.Equal(t, 3, i)

	_, ok = Int(rec, "half")
	assert.False(t, ok, "fractional numbers are not integers")

	b, ok := Bool(rec, "flag")
	require.True(t, ok)
	assert.True(t, b)

	_, ok = Bool(rec, "name")
	assert.False(t, ok)
}

func TestRecordAndArray(t *testing.T) {
	rec := sampleRecord()

	_, ok := Record(rec, "nested")
	assert.True(t, ok)
	_, ok = Record(rec, "name")
	assert.False(t, ok)

	elems, ok := Array(rec, "start")
	require.True(t, ok)
	assert.Len(t, elems, 3)
	_, ok = Array(rec, "nested")
	assert.False(t, ok)

	list := cty.ListVal([]cty.Value{cty.StringVal("a"), cty.StringVal("b")})
	elems, ok = Elements(list)
	require.True(t, ok)
	assert.Len(t, elems, 2)
}

func TestVector(t *testing.T) {
	rec := sampleRecord()

	v, err := Vector(rec, "start")
	require.NoError(t, err)
	assert.Equal(t, fdtd.NewVector(1, 2.5, -3), v)

	testCases := []struct {
		field   string
		message string
	}{
		{field: "missing", message: "missing field missing"},
		{field: "name", message: "must be an array"},
		{field: "short", message: "exactly 3 components"},
		{field: "mixed", message: "mixed[1] must be a number"},
	}
	for _, tc := range testCases {
		t.Run(tc.field, func(t *testing.T) {
			_, err := Vector(rec, tc.field)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.message)
		})
	}
}

func TestFormatPath(t *testing.T) {
	assert.Equal(t, "document", FormatPath(nil))

	p := cty.GetAttrPath("shape").GetAttr("cube").Index(cty.NumberIntVal(2)).GetAttr("start")
	assert.Equal(t, "shape.cube[2].start", FormatPath(p))

	p = cty.GetAttrPath("material").Index(cty.StringVal("air"))
	assert.Equal(t, `material["air"]`, FormatPath(p))
}
