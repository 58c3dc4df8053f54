package resolver

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/kolah/swagdecl/internal/model"
	"github.com/kolah/swagdecl/internal/typescript"
	"go.uber.org/zap"
)

// BuildTree groups the operations of doc by tag. It returns one group per
// declared tag, in declaration order; operations are reachable only through
// the groups' Children. The tree is rebuilt from scratch on every call and
// its keys differ between calls, PathName is the stable identifier.
//
// BuildTree never fails: resolution problems are logged and the affected
// parameters or response come out empty.
func BuildTree(doc *model.Document, item ConfigItem, opts ...Option) []*Group {
	o := newOptions(opts)
	if doc == nil {
		return nil
	}

	b := &treeBuilder{
		doc:      doc,
		item:     item,
		opts:     o,
		resolver: &referenceResolver{defs: &doc.Definitions, logger: o.logger},
	}
	return b.build()
}

type treeBuilder struct {
	doc      *model.Document
	item     ConfigItem
	opts     *options
	resolver *referenceResolver
}

func (b *treeBuilder) build() []*Group {
	groups := make([]*Group, 0, len(b.doc.Tags))
	byTag := make(map[string]*Group, len(b.doc.Tags))
	for _, tag := range b.doc.Tags {
		g := &Group{
			Key:       b.opts.newKey(tag.Name),
			ParentKey: b.item.URL,
			Title:     tag.Name,
			SubTitle:  tag.Description,
		}
		groups = append(groups, g)
		byTag[tag.Name] = g
	}

	var ungrouped []*Interface
	for path, pathItem := range b.doc.Paths.All() {
		methods := pathItem.Methods()
		if len(methods) == 0 {
			continue
		}
		if len(methods) > 1 && !b.opts.allMethods {
			b.opts.logger.Warn("path declares several methods, only the first is processed",
				zap.String("path", path),
				zap.String("method", string(methods[0])),
				zap.Int("dropped", len(methods)-1))
			methods = methods[:1]
		}

		for i, method := range methods {
			node := b.buildInterface(path, method, pathItem.Operation(method))
			if i > 0 {
				node.PathName += typescript.UpperFirst(string(method))
				node.FileName += "-" + string(method)
			}
			if !b.attach(node, pathItem.Operation(method).Tags, byTag) {
				ungrouped = append(ungrouped, node)
			}
		}
	}

	if len(ungrouped) == 0 {
		return groups
	}
	if b.opts.ungroupedTitle == "" {
		for _, node := range ungrouped {
			b.opts.logger.Warn("operation matches no tag and is dropped",
				zap.String("path", node.Path),
				zap.String("method", string(node.Method)))
		}
		return groups
	}

	g := &Group{
		Key:       b.opts.newKey(b.opts.ungroupedTitle),
		ParentKey: b.item.URL,
		Title:     b.opts.ungroupedTitle,
		Children:  ungrouped,
	}
	for _, node := range ungrouped {
		node.ParentKey = g.Key
	}
	return append(groups, g)
}

// attach appends node to the group of every tag it names. ParentKey ends up
// pointing at the last matching group.
func (b *treeBuilder) attach(node *Interface, tags []string, byTag map[string]*Group) bool {
	attached := false
	for _, tag := range tags {
		g, ok := byTag[tag]
		if !ok {
			b.opts.logger.Warn("operation references an undeclared tag",
				zap.String("path", node.Path),
				zap.String("tag", tag))
			continue
		}
		node.ParentKey = g.Key
		g.Children = append(g.Children, node)
		attached = true
	}
	return attached
}

func (b *treeBuilder) buildInterface(path string, method model.Method, op *model.Operation) *Interface {
	basePath := b.item.BasePath
	if basePath == "" {
		basePath = b.doc.BasePath
	}

	return &Interface{
		Key:         b.opts.newKey(op.Summary),
		GroupName:   b.item.Title,
		Method:      method,
		Params:      b.resolveParams(path, op.Parameters),
		Response:    b.resolveResponse(path, op),
		Title:       op.Summary,
		SubTitle:    path,
		Path:        path,
		PathName:    typescript.NamespaceName(path),
		FileName:    typescript.FileName(path),
		BasePath:    basePath,
		OperationID: op.OperationID,
		Description: op.Description,
		Deprecated:  op.Deprecated,
		Consumes:    op.Consumes,
		Produces:    op.Produces,
	}
}

// resolveParams flattens the body schema when there is one. Otherwise every
// non-header parameter is kept as declared.
func (b *treeBuilder) resolveParams(path string, params []*model.Parameter) []ResolvedProperty {
	for _, p := range params {
		if p == nil || p.In != model.LocationBody {
			continue
		}
		if p.Schema == nil {
			return nil
		}
		resolved := b.resolveSafely(path, "body", p.Schema)
		return resolved.Properties
	}

	var out []ResolvedProperty
	for _, p := range params {
		if p == nil || p.In == model.LocationHeader {
			continue
		}
		rp := ResolvedProperty{
			Name:        p.Name,
			In:          p.In,
			Type:        p.Type,
			Format:      p.Format,
			Required:    p.Required,
			Description: p.Description,
		}
		if p.Items.Source() == model.ItemsFromType {
			rp.ItemsType = p.Items.Type
		}
		out = append(out, rp)
	}
	return out
}

func (b *treeBuilder) resolveResponse(path string, op *model.Operation) *ResolvedSchema {
	resp := op.Response("200")
	if resp == nil || resp.Schema == nil {
		return nil
	}
	return b.resolveSafely(path, "response", resp.Schema)
}

// resolveSafely turns a failure anywhere in the recursive resolution into an
// empty schema so one bad operation cannot stop the build.
func (b *treeBuilder) resolveSafely(path, part string, schema *model.Schema) (out *ResolvedSchema) {
	defer func() {
		if rec := recover(); rec != nil {
			b.opts.logger.Error("schema resolution failed",
				zap.String("path", path),
				zap.String("part", part),
				zap.String("ref", schema.RefName()),
				zap.Any("schema", schema),
				zap.String("error", fmt.Sprint(rec)))
			out = &ResolvedSchema{Ref: schema.RefName()}
		}
	}()
	return b.resolver.resolve(elementOrSelf(schema), nil)
}

// elementOrSelf unwraps a bare array schema to its element, so an array body
// or response declares the element's shape.
func elementOrSelf(schema *model.Schema) *model.Schema {
	if schema.RefName() != "" || schema.Properties.Len() > 0 {
		return schema
	}
	if elem := schema.Items.ElementSchema(); elem != nil {
		return elem
	}
	return schema
}

func randomKey(name string) string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return name + "-" + id[:6]
}
