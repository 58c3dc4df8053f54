package declaration

import (
	"github.com/kolah/swagdecl/internal/model"
	"github.com/kolah/swagdecl/internal/resolver"
	"github.com/kolah/swagdecl/internal/typescript"
)

// renderSchema renders a single resolved node under name plus the node's own
// name. A node without properties renders nothing.
func (e *Emitter) renderSchema(name string, s *resolver.ResolvedSchema, depth int) []string {
	if s == nil || len(s.Properties) == 0 {
		return nil
	}
	return e.renderBlock(name+typescript.UpperFirst(s.Name), s.Properties, depth)
}

// renderBlock renders the interface for props. Interfaces generated for
// nested properties come first so every name is declared before use.
func (e *Emitter) renderBlock(name string, props []resolver.ResolvedProperty, depth int) []string {
	var nested, members []string
	for _, p := range props {
		sub, lines := e.renderProperty(name, p, depth)
		nested = append(nested, sub...)
		members = append(members, lines...)
	}
	if len(members) == 0 {
		return nested
	}
	return append(nested, e.wrap(name, members, depth)...)
}

func (e *Emitter) renderProperty(parent string, p resolver.ResolvedProperty, depth int) (nested, lines []string) {
	isArray := model.SchemaType(p.Type) == model.TypeArray
	t := typescript.MapType(p.Type)

	if p.Item != nil {
		sub := parent + typescript.UpperFirst(p.Name)
		if isArray {
			sub += "Item"
		}
		nested = e.renderSchema(sub, p.Item, depth)
		t = typescript.Type{Name: sub}
		if len(p.Item.Properties) == 0 {
			t = typescript.Type{Name: typescript.ObjectType}
		}
	}

	if isArray {
		if p.Item == nil {
			t = typescript.MapType(p.ItemsType)
		}
		t = t.Array()
	}

	indent := e.indent.At(depth + 1)
	if p.Description != "" {
		lines = append(lines, indent+"/** "+p.Description+" */")
	}

	sep := "?:"
	if p.Required {
		sep = ":"
	}
	line := indent + p.Name + sep + " " + t.Name
	if t.Unresolved {
		line += " " + typescript.UnresolvedMarker
	}

	return nested, append(lines, line)
}

func (e *Emitter) wrap(name string, members []string, depth int) []string {
	indent := e.indent.At(depth)
	lines := make([]string, 0, len(members)+3)
	lines = append(lines, indent+"interface "+name+" {")
	lines = append(lines, members...)
	return append(lines, indent+"}", "")
}
