package templates

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"text/template"

	embeddedtmpl "github.com/kolah/swagdecl/templates"
	"github.com/stretchr/testify/require"
)

func TestEngineLoadsEmbeddedTemplates(t *testing.T) {
	e, err := NewEngine(embeddedtmpl.FS, "", template.FuncMap{"upper": func(s string) string { return s }})
	require.NoError(t, err)
	require.Contains(t, e.Names(), "typescript/declaration.tmpl")
}

func TestEngineCustomDirOverrides(t *testing.T) {
	embedded := fstest.MapFS{
		"ts/a.tmpl": {Data: []byte("embedded {{.}}")},
		"ts/b.tmpl": {Data: []byte("kept {{.}}")},
	}
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "ts"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ts", "a.tmpl"), []byte("custom {{.}}"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ts", "notes.txt"), []byte("{{"), 0o644))

	e, err := NewEngine(embedded, dir, nil)
	require.NoError(t, err)

	out, err := e.Execute("ts/a.tmpl", "x")
	require.NoError(t, err)
	require.Equal(t, "custom x", out)

	out, err = e.Execute("ts/b.tmpl", "y")
	require.NoError(t, err)
	require.Equal(t, "kept y", out)
}

func TestEngineMissingCustomDir(t *testing.T) {
	embedded := fstest.MapFS{"a.tmpl": {Data: []byte("a")}}

	e, err := NewEngine(embedded, filepath.Join(t.TempDir(), "absent"), nil)
	require.NoError(t, err)

	out, err := e.Execute("a.tmpl", nil)
	require.NoError(t, err)
	require.Equal(t, "a", out)
}

func TestEngineErrors(t *testing.T) {
	_, err := NewEngine(fstest.MapFS{"bad.tmpl": {Data: []byte("{{ .Open")}}, "", nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "parsing embedded template bad.tmpl")

	e, err := NewEngine(fstest.MapFS{"a.tmpl": {Data: []byte("{{.Missing.Field}}")}}, "", nil)
	require.NoError(t, err)

	_, err = e.Execute("nope.tmpl", nil)
	require.EqualError(t, err, "template not found: nope.tmpl")

	_, err = e.Execute("a.tmpl", 42)
	require.Error(t, err)
	require.Contains(t, err.Error(), "executing template a.tmpl")
}
