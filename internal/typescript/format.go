package typescript

import "strings"

const (
	DefaultIndentUnit  = " "
	DefaultIndentCount = 2
)

// Indenter produces the leading whitespace for a nesting depth.
type Indenter struct {
	step string
}

// NewIndenter repeats unit count times per level. Empty or non-positive
// arguments fall back to two spaces.
func NewIndenter(unit string, count int) Indenter {
	if unit == "" {
		unit = DefaultIndentUnit
	}
	if count <= 0 {
		count = DefaultIndentCount
	}
	return Indenter{step: strings.Repeat(unit, count)}
}

func (i Indenter) At(depth int) string {
	if depth <= 0 {
		return ""
	}
	return strings.Repeat(i.step, depth)
}
