package model

import "strings"

type SchemaType string

const (
	TypeString  SchemaType = "string"
	TypeNumber  SchemaType = "number"
	TypeInteger SchemaType = "integer"
	TypeBoolean SchemaType = "boolean"
	TypeArray   SchemaType = "array"
	TypeObject  SchemaType = "object"
	TypeFile    SchemaType = "file"

	// TypeRef is not a Swagger type. Some generators emit it for references
	// they failed to inline.
	TypeRef SchemaType = "ref"
)

// Schema is a definition or an inline schema. Only the fields the resolver
// reads are decoded.
type Schema struct {
	Ref         string `yaml:"$ref"`
	OriginalRef string `yaml:"originalRef"` // springfox emits this next to $ref

	Name        string `yaml:"name"`
	Type        string `yaml:"type"`
	Format      string `yaml:"format"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`

	Properties OrderedMap[*Schema] `yaml:"properties"`
	Required   []string            `yaml:"required"`

	Items *Items `yaml:"items"`
}

// RefName returns the definition name the schema points at, or "" for an
// inline schema.
func (s *Schema) RefName() string {
	if s == nil {
		return ""
	}
	return RefName(s.Ref, s.OriginalRef)
}

// Items describes array elements. Depending on the producer it carries a
// nested schema, a reference, or a primitive type.
type Items struct {
	Schema      *Schema `yaml:"schema"`
	Ref         string  `yaml:"$ref"`
	OriginalRef string  `yaml:"originalRef"`
	Type        string  `yaml:"type"`
	Format      string  `yaml:"format"`
}

// ItemsSource tells which field of Items describes the element.
type ItemsSource int

const (
	ItemsNone ItemsSource = iota
	ItemsFromSchema
	ItemsFromRef
	ItemsFromType
)

func (s ItemsSource) String() string {
	switch s {
	case ItemsFromSchema:
		return "schema"
	case ItemsFromRef:
		return "ref"
	case ItemsFromType:
		return "type"
	default:
		return "none"
	}
}

// Source picks the element description by priority: schema, then ref, then
// type.
func (i *Items) Source() ItemsSource {
	switch {
	case i == nil:
		return ItemsNone
	case i.Schema != nil:
		return ItemsFromSchema
	case RefName(i.Ref, i.OriginalRef) != "":
		return ItemsFromRef
	case i.Type != "":
		return ItemsFromType
	default:
		return ItemsNone
	}
}

// ElementSchema returns the schema to resolve for ItemsFromSchema and
// ItemsFromRef sources, nil otherwise.
func (i *Items) ElementSchema() *Schema {
	switch i.Source() {
	case ItemsFromSchema:
		return i.Schema
	case ItemsFromRef:
		return &Schema{Ref: i.Ref, OriginalRef: i.OriginalRef, Type: i.Type}
	default:
		return nil
	}
}

// RefName prefers originalRef and falls back to the last segment of $ref
// ("#/definitions/User" -> "User").
func RefName(ref, originalRef string) string {
	if originalRef != "" {
		return originalRef
	}
	if ref == "" {
		return ""
	}
	parts := strings.Split(ref, "/")
	return parts[len(parts)-1]
}
