// Package codegen wires the loaded document, the tree builder and the
// declaration emitter together and writes the results to disk.
package codegen

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/kolah/swagdecl/internal/config"
	"github.com/kolah/swagdecl/internal/model"
	"github.com/kolah/swagdecl/internal/resolver"
	"github.com/kolah/swagdecl/internal/targets/declaration"
	"github.com/kolah/swagdecl/internal/templates"
	"github.com/kolah/swagdecl/internal/typescript"
	embeddedtmpl "github.com/kolah/swagdecl/templates"
	"go.uber.org/zap"
)

type Generator struct {
	config  *config.Config
	logger  *zap.Logger
	emitter *declaration.Emitter
}

type Output struct {
	Filename string
	PathName string
	Content  string
}

type Status string

const (
	StatusWritten   Status = "written"
	StatusUnchanged Status = "unchanged"
)

type WriteResult struct {
	Path   string
	Status Status
}

// New builds a generator from cfg. Extra emitter options are applied after
// the ones derived from cfg.
func New(cfg *config.Config, logger *zap.Logger, opts ...declaration.Option) (*Generator, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	engine, err := templates.NewEngine(embeddedtmpl.FS, cfg.Templates.Dir, typescript.TemplateFuncs())
	if err != nil {
		return nil, fmt.Errorf("creating template engine: %w", err)
	}

	emitterOpts := []declaration.Option{
		declaration.WithIndent(cfg.Output.IndentUnit, cfg.Output.IndentCount),
		declaration.WithTimeLayout(cfg.Output.TimeLayout),
	}

	return &Generator{
		config:  cfg,
		logger:  logger,
		emitter: declaration.New(engine, append(emitterOpts, opts...)...),
	}, nil
}

// Tree builds the operation tree of doc and applies the tag filters.
func (g *Generator) Tree(doc *model.Document) []*resolver.Group {
	title := g.config.Title
	if title == "" {
		title = doc.Info.Title
	}
	item := resolver.ConfigItem{
		Title:    title,
		BasePath: g.config.BasePath,
		URL:      g.config.URL,
	}

	opts := []resolver.Option{resolver.WithLogger(g.logger)}
	if g.config.Tree.AllMethods {
		opts = append(opts, resolver.WithAllMethods())
	}
	if g.config.Tree.UngroupedTitle != "" {
		opts = append(opts, resolver.WithUngrouped(g.config.Tree.UngroupedTitle))
	}

	groups := resolver.BuildTree(doc, item, opts...)
	return resolver.Filter(groups, g.config.IncludeTags, g.config.ExcludeTags)
}

// Generate renders every operation of groups once.
func (g *Generator) Generate(groups []*resolver.Group) ([]Output, error) {
	nodes := resolver.Interfaces(groups)
	outputs := make([]Output, 0, len(nodes))
	for _, node := range nodes {
		out, err := g.Render(node)
		if err != nil {
			return nil, err
		}
		outputs = append(outputs, out)
	}
	return outputs, nil
}

func (g *Generator) Render(node *resolver.Interface) (Output, error) {
	content, err := g.emitter.Render(node)
	if err != nil {
		return Output{}, fmt.Errorf("rendering %s: %w", node.PathName, err)
	}
	return Output{
		Filename: node.FileName + g.config.Output.Extension,
		PathName: node.PathName,
		Content:  content,
	}, nil
}

// Write stores outputs under dir. A file whose content differs from the
// existing one only in the @update line is left untouched.
func Write(dir string, outputs []Output) ([]WriteResult, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	results := make([]WriteResult, 0, len(outputs))
	for _, out := range outputs {
		path := filepath.Join(dir, out.Filename)

		existing, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return results, fmt.Errorf("reading %s: %w", path, err)
		}
		if err == nil && SameDeclaration(existing, []byte(out.Content)) {
			results = append(results, WriteResult{Path: path, Status: StatusUnchanged})
			continue
		}

		if err := os.WriteFile(path, []byte(out.Content), 0o644); err != nil {
			return results, fmt.Errorf("writing %s: %w", path, err)
		}
		results = append(results, WriteResult{Path: path, Status: StatusWritten})
	}
	return results, nil
}

var updateMarker = []byte("* @update")

// SameDeclaration compares two rendered declarations ignoring their @update
// header line.
func SameDeclaration(a, b []byte) bool {
	return bytes.Equal(stripUpdate(a), stripUpdate(b))
}

func stripUpdate(content []byte) []byte {
	lines := bytes.Split(content, []byte("\n"))
	kept := make([][]byte, 0, len(lines))
	for _, line := range lines {
		if bytes.HasPrefix(bytes.TrimSpace(line), updateMarker) {
			continue
		}
		kept = append(kept, line)
	}
	return bytes.Join(kept, []byte("\n"))
}
