package resolver

import (
	"slices"

	"github.com/kolah/swagdecl/internal/model"
	"go.uber.org/zap"
)

type definitions = model.OrderedMap[*model.Schema]

// ResolveReference expands schema against defs. References that are already
// being resolved further up the current path are not expanded again, which
// bounds the recursion on self-referencing schemas. A missing definition is
// logged and yields a schema without properties; the result is never nil.
func ResolveReference(schema *model.Schema, defs *definitions, logger *zap.Logger) *ResolvedSchema {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &referenceResolver{defs: defs, logger: logger}
	return r.resolve(schema, nil)
}

type referenceResolver struct {
	defs   *definitions
	logger *zap.Logger
}

func (r *referenceResolver) resolve(schema *model.Schema, stack []string) *ResolvedSchema {
	ref := schema.RefName()
	out := &ResolvedSchema{Ref: ref}

	def := r.lookup(schema, ref)
	if def == nil {
		return out
	}

	out.Name = def.Name
	out.Type = def.Type
	out.Title = def.Title
	out.Description = def.Description

	if ref != "" {
		stack = append(stack, ref)
	}

	out.Properties = make([]ResolvedProperty, 0, def.Properties.Len())
	for key, prop := range def.Properties.All() {
		out.Properties = append(out.Properties, r.resolveProperty(key, prop, def.Required, stack))
	}

	return out
}

func (r *referenceResolver) resolveProperty(key string, prop *model.Schema, required []string, stack []string) ResolvedProperty {
	if prop == nil {
		prop = &model.Schema{}
	}

	name := prop.Name
	if name == "" {
		name = key
	}

	p := ResolvedProperty{
		Name:        name,
		Type:        prop.Type,
		Format:      prop.Format,
		Required:    slices.Contains(required, key),
		Description: prop.Description,
		Title:       prop.Title,
		Ref:         prop.RefName(),
	}

	if p.Ref != "" && !slices.Contains(stack, p.Ref) {
		p.Item = r.resolve(prop, stack)
	}

	if prop.Items == nil {
		return p
	}

	switch prop.Items.Source() {
	case model.ItemsFromSchema, model.ItemsFromRef:
		elem := prop.Items.ElementSchema()
		elemRef := elem.RefName()
		switch {
		case elemRef == "" && elem.Properties.Len() == 0:
			p.ItemsType = elem.Type
		case elemRef == "" || !slices.Contains(stack, elemRef):
			p.Item = r.resolve(elem, stack)
		}
	case model.ItemsFromType:
		p.ItemsType = prop.Items.Type
	}

	return p
}

func (r *referenceResolver) lookup(schema *model.Schema, ref string) *model.Schema {
	if ref == "" {
		if schema != nil && schema.Properties.Len() > 0 {
			return schema
		}
		r.logger.Error("schema has neither a reference nor properties",
			zap.String("type", schemaType(schema)))
		return nil
	}

	var def *model.Schema
	if r.defs != nil {
		def, _ = r.defs.Get(ref)
	}
	if def == nil {
		r.logger.Error("reference not found in definitions", zap.String("ref", ref))
	}
	return def
}

func schemaType(s *model.Schema) string {
	if s == nil {
		return ""
	}
	return s.Type
}
