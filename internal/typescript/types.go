package typescript

import "github.com/kolah/swagdecl/internal/model"

const (
	AnyType    = "any"
	ObjectType = "Record<string, unknown>"

	// UnresolvedMarker trails members whose type is a reference the resolver
	// could not expand.
	UnresolvedMarker = "// unresolved reference"
)

// Type is a rendered TypeScript type.
type Type struct {
	Name       string
	Unresolved bool
}

// Array returns the element type wrapped as an array.
func (t Type) Array() Type {
	t.Name += "[]"
	return t
}

// MapType converts a Swagger primitive type name. Unknown names pass through
// unchanged, an empty name becomes any.
func MapType(swaggerType string) Type {
	switch model.SchemaType(swaggerType) {
	case model.TypeInteger:
		return Type{Name: "number"}
	case model.TypeObject:
		return Type{Name: ObjectType}
	case model.TypeRef:
		return Type{Name: AnyType, Unresolved: true}
	case "":
		return Type{Name: AnyType}
	default:
		return Type{Name: swaggerType}
	}
}
