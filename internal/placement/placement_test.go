package placement

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/specialistvlad/fdtdscene/internal/catalog"
	"github.com/specialistvlad/fdtdscene/internal/ctxlog"
	"github.com/specialistvlad/fdtdscene/internal/parseerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func testContext(buf *bytes.Buffer) context.Context {
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return ctxlog.WithLogger(context.Background(), logger)
}

func object(name, shape, material string, priority int64) cty.Value {
	return cty.ObjectVal(map[string]cty.Value{
		"name":     cty.StringVal(name),
		"shape":    cty.StringVal(shape),
		"material": cty.StringVal(material),
		"priority": cty.NumberIntVal(priority),
	})
}

func document(records ...cty.Value) cty.Value {
	return cty.ObjectVal(map[string]cty.Value{"object": cty.TupleVal(records)})
}

func TestRead_Valid(t *testing.T) {
	c := NewCatalog(catalog.Options{})
	require.NoError(t, c.Read(testContext(&bytes.Buffer{}), document(object("bg", "room", "air", 0))))

	e, err := c.Get("bg")
	require.NoError(t, err)
	assert.Equal(t, Entry{Name: "bg", ShapeName: "room", MaterialName: "air", Priority: 0}, e)
	assert.Equal(t, "ObjectEntry: {name: bg, shape: room, material: air, priority: 0}", e.String())
}

func TestRead_MissingFieldsDropRecord(t *testing.T) {
	drop := func(field string) cty.Value {
		attrs := object("x-"+field, "room", "air", 1).AsValueMap()
		delete(attrs, field)
		return cty.ObjectVal(attrs)
	}

	testCases := []struct {
		name  string
		bad   cty.Value
		match string
	}{
		{name: "name", bad: drop("name"), match: "missing field name"},
		{name: "shape", bad: drop("shape"), match: "missing field shape"},
		{name: "material", bad: drop("material"), match: "missing field material"},
		{name: "priority", bad: drop("priority"), match: "missing integer field priority"},
		{
			name: "fractional priority",
			bad: cty.ObjectVal(map[string]cty.Value{
				"name":     cty.StringVal("frac"),
				"shape":    cty.StringVal("room"),
				"material": cty.StringVal("air"),
				"priority": cty.NumberFloatVal(1.5),
			}),
			match: "missing integer field priority",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var logs bytes.Buffer
			c := NewCatalog(catalog.Options{})
			err := c.Read(testContext(&logs), document(object("ok", "room", "air", 0), tc.bad))

			require.NoError(t, err)
			assert.Equal(t, []string{"ok"}, c.Names())
			assert.Contains(t, logs.String(), tc.match)
		})
	}
}

func TestRead_StructuralErrors(t *testing.T) {
	t.Run("missing object array", func(t *testing.T) {
		c := NewCatalog(catalog.Options{})
		err := c.Read(testContext(&bytes.Buffer{}), cty.ObjectVal(map[string]cty.Value{"shape": cty.EmptyObjectVal}))

		var structErr *parseerr.StructuralError
		require.ErrorAs(t, err, &structErr)
		assert.Equal(t, 0, c.Len())
	})

	t.Run("non-table element", func(t *testing.T) {
		c := NewCatalog(catalog.Options{})
		err := c.Read(testContext(&bytes.Buffer{}), document(object("bg", "room", "air", 0), cty.NumberIntVal(7)))

		var structErr *parseerr.StructuralError
		require.ErrorAs(t, err, &structErr)
		assert.Equal(t, 0, c.Len())
	})
}

func TestGet_NotFound(t *testing.T) {
	c := NewCatalog(catalog.Options{})
	require.NoError(t, c.Read(testContext(&bytes.Buffer{}), document(object("bg", "room", "air", 0))))

	_, err := c.Get("ExceptionTest")
	var lookupErr *parseerr.LookupError
	require.ErrorAs(t, err, &lookupErr)
	assert.Equal(t, "ExceptionTest", lookupErr.Name)
	assert.Contains(t, err.Error(), `object: name "ExceptionTest" is not found`)
}

func TestNamesByPriority(t *testing.T) {
	testCases := []struct {
		name    string
		records []cty.Value
		want    []string
	}{
		{
			name: "ascending",
			records: []cty.Value{
				object("three", "s", "m", 3),
				object("one", "s", "m", 1),
				object("two", "s", "m", 2),
			},
			want: []string{"one", "two", "three"},
		},
		{
			name: "negative priorities come first",
			records: []cty.Value{
				object("zero", "s", "m", 0),
				object("minus", "s", "m", -5),
			},
			want: []string{"minus", "zero"},
		},
		{
			name: "ties are ordered by name",
			records: []cty.Value{
				object("c", "s", "m", 1),
				object("b", "s", "m", 0),
				object("a", "s", "m", 1),
			},
			want: []string{"b", "a", "c"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := NewCatalog(catalog.Options{})
			require.NoError(t, c.Read(testContext(&bytes.Buffer{}), document(tc.records...)))
			assert.Equal(t, tc.want, c.NamesByPriority())
		})
	}
}

func TestRead_StrictNames(t *testing.T) {
	var logs bytes.Buffer
	c := NewCatalog(catalog.Options{RequireUniqueNames: true})
	err := c.Read(testContext(&logs), document(object("bg", "room", "air", 0), object("bg", "ball", "air", 1)))
	require.NoError(t, err)

	e, err := c.Get("bg")
	require.NoError(t, err)
	assert.Equal(t, "room", e.ShapeName)
	assert.Contains(t, logs.String(), "duplicate object name")
}
