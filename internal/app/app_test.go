package app_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/specialistvlad/fdtdscene/internal/app"
	"github.com/specialistvlad/fdtdscene/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

// stubLoader serves a fixed tree regardless of the path.
type stubLoader struct {
	root  cty.Value
	paths []string
}

func (l *stubLoader) Load(_ context.Context, path string) (cty.Value, error) {
	l.paths = append(l.paths, path)
	return l.root, nil
}

func (l *stubLoader) Decode(context.Context, []byte, string) (cty.Value, error) {
	return l.root, nil
}

func vec(x, y, z int64) cty.Value {
	return cty.TupleVal([]cty.Value{cty.NumberIntVal(x), cty.NumberIntVal(y), cty.NumberIntVal(z)})
}

func sceneTree() cty.Value {
	return cty.ObjectVal(map[string]cty.Value{
		"shape": cty.ObjectVal(map[string]cty.Value{
			"cube": cty.TupleVal([]cty.Value{cty.ObjectVal(map[string]cty.Value{
				"name":  cty.StringVal("room"),
				"start": vec(0, 0, 0),
				"size":  vec(1, 1, 1),
			})}),
			"sphere": cty.EmptyTupleVal,
		}),
		"material": cty.TupleVal([]cty.Value{
			cty.ObjectVal(map[string]cty.Value{"name": cty.StringVal("air")}),
		}),
		"object": cty.TupleVal([]cty.Value{cty.ObjectVal(map[string]cty.Value{
			"name":     cty.StringVal("bg"),
			"shape":    cty.StringVal("room"),
			"material": cty.StringVal("air"),
			"priority": cty.NumberIntVal(0),
		})}),
	})
}

func TestApp_RunWithInjectedLoader(t *testing.T) {
	cfg, err := app.NewConfig(app.Config{DocumentPath: "config.toml", DefaultDocument: true})
	require.NoError(t, err)

	out := &testutil.SafeBuffer{}
	logs := &testutil.SafeBuffer{}
	loader := &stubLoader{root: sceneTree()}

	a, err := app.NewApp(out, logs, cfg, loader)
	require.NoError(t, err)

	result, err := a.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, result.Objects, 1)
	assert.Equal(t, "bg", result.Objects[0].Name)
	assert.Equal(t, []string{"config.toml"}, loader.paths)

	assert.True(t, strings.HasPrefix(out.String(), "Reading default file: config.toml\nShapes:\nroom\n"), out.String())
}

func TestApp_DirectoryWithOneDocument(t *testing.T) {
	dir := t.TempDir()
	doc := filepath.Join(dir, "scene.json")
	require.NoError(t, os.WriteFile(doc, []byte(`{
  "shape": {"cube": [], "sphere": []},
  "material": [],
  "object": []
}`), 0o644))

	cfg, err := app.NewConfig(app.Config{DocumentPath: dir})
	require.NoError(t, err)

	logs := &testutil.SafeBuffer{}
	a, err := app.NewApp(&testutil.SafeBuffer{}, logs, cfg, nil)
	require.NoError(t, err)

	result, err := a.Run(context.Background())
	require.NoError(t, err)
	assert.Empty(t, result.Objects)
	assert.Contains(t, logs.String(), "Document found in directory.")
}

func TestApp_AmbiguousDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.toml"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.yaml"), nil, 0o644))

	cfg, err := app.NewConfig(app.Config{DocumentPath: dir})
	require.NoError(t, err)

	_, err = app.NewApp(&testutil.SafeBuffer{}, &testutil.SafeBuffer{}, cfg, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "holds 2 documents")
}
