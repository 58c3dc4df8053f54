package templates

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"
	"text/template"
)

const templateExt = ".tmpl"

type Engine interface {
	Execute(name string, data any) (string, error)
}

// TextTemplateEngine renders named text templates. Templates found in the
// custom directory replace embedded ones with the same relative path.
type TextTemplateEngine struct {
	templates *template.Template
}

func NewEngine(embedded fs.FS, customDir string, funcs template.FuncMap) (*TextTemplateEngine, error) {
	e := &TextTemplateEngine{
		templates: template.New("").Funcs(funcs),
	}

	if err := e.parseFS(embedded, "embedded"); err != nil {
		return nil, err
	}

	if customDir != "" {
		err := e.parseFS(os.DirFS(customDir), "custom")
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	return e, nil
}

func (e *TextTemplateEngine) parseFS(fsys fs.FS, origin string) error {
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(p, templateExt) {
			return nil
		}
		content, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("reading %s template %s: %w", origin, p, err)
		}
		if _, err := e.templates.New(path.Clean(p)).Parse(string(content)); err != nil {
			return fmt.Errorf("parsing %s template %s: %w", origin, p, err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("loading %s templates: %w", origin, err)
	}
	return nil
}

// Names lists the loaded template names.
func (e *TextTemplateEngine) Names() []string {
	var names []string
	for _, t := range e.templates.Templates() {
		if t.Name() != "" {
			names = append(names, t.Name())
		}
	}
	return names
}

func (e *TextTemplateEngine) Execute(name string, data any) (string, error) {
	tmpl := e.templates.Lookup(name)
	if tmpl == nil {
		return "", fmt.Errorf("template not found: %s", name)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template %s: %w", name, err)
	}

	return buf.String(), nil
}
