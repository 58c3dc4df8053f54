// Package declaration renders one resolved operation as a TypeScript
// `declare namespace` block with a Params and a Response interface.
package declaration

import (
	"time"

	"github.com/kolah/swagdecl/internal/resolver"
	"github.com/kolah/swagdecl/internal/templates"
	"github.com/kolah/swagdecl/internal/typescript"
)

const (
	TemplateName      = "typescript/declaration.tmpl"
	DefaultTimeLayout = "2006/1/2 15:04:05"

	paramsInterface   = "Params"
	responseInterface = "Response"
)

// Emitter is safe for concurrent use once built.
type Emitter struct {
	engine     templates.Engine
	indent     typescript.Indenter
	timeLayout string
	now        func() time.Time
}

type Option func(*Emitter)

// WithIndent sets the indentation step: unit repeated count times per level.
func WithIndent(unit string, count int) Option {
	return func(e *Emitter) {
		e.indent = typescript.NewIndenter(unit, count)
	}
}

// WithTimeLayout sets the layout of the @update header line.
func WithTimeLayout(layout string) Option {
	return func(e *Emitter) {
		if layout != "" {
			e.timeLayout = layout
		}
	}
}

// WithClock replaces time.Now for the @update header line.
func WithClock(now func() time.Time) Option {
	return func(e *Emitter) {
		if now != nil {
			e.now = now
		}
	}
}

func New(engine templates.Engine, opts ...Option) *Emitter {
	e := &Emitter{
		engine:     engine,
		indent:     typescript.NewIndenter(typescript.DefaultIndentUnit, typescript.DefaultIndentCount),
		timeLayout: DefaultTimeLayout,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

type templateData struct {
	Title     string
	GroupName string
	BasePath  string
	Path      string
	Method    string
	Updated   string
	Namespace string
	Lines     []string
}

// Render returns the declaration text of node, ending with a newline.
func (e *Emitter) Render(node *resolver.Interface) (string, error) {
	lines := e.renderParams(node.Params)
	lines = append(lines, e.renderResponse(node.Response)...)

	return e.engine.Execute(TemplateName, templateData{
		Title:     node.Title,
		GroupName: node.GroupName,
		BasePath:  node.BasePath,
		Path:      node.Path,
		Method:    string(node.Method),
		Updated:   e.now().Format(e.timeLayout),
		Namespace: node.PathName,
		Lines:     lines,
	})
}

// renderParams always produces a Params block, empty or not.
func (e *Emitter) renderParams(params []resolver.ResolvedProperty) []string {
	if len(params) == 0 {
		return e.wrap(paramsInterface, nil, 1)
	}
	return e.renderBlock(paramsInterface, params, 1)
}

// renderResponse always produces a Response block and drops the blank line
// after it, since it closes the namespace.
func (e *Emitter) renderResponse(resp *resolver.ResolvedSchema) []string {
	lines := e.renderSchema(responseInterface, resp, 1)
	if len(lines) == 0 {
		lines = e.wrap(responseInterface, nil, 1)
	}
	return lines[:len(lines)-1]
}
