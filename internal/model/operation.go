package model

import (
	"fmt"
	"strings"

	"go.yaml.in/yaml/v4"
)

// Method is a path item key naming an HTTP operation, lower-case as in the
// source document.
type Method string

const (
	MethodGet     Method = "get"
	MethodPut     Method = "put"
	MethodPost    Method = "post"
	MethodDelete  Method = "delete"
	MethodOptions Method = "options"
	MethodHead    Method = "head"
	MethodPatch   Method = "patch"
)

// ParseMethod reports whether key names an HTTP operation.
func ParseMethod(key string) (Method, bool) {
	switch m := Method(strings.ToLower(key)); m {
	case MethodGet, MethodPut, MethodPost, MethodDelete, MethodOptions, MethodHead, MethodPatch:
		return m, true
	}
	return "", false
}

type ParameterLocation string

const (
	LocationBody     ParameterLocation = "body"
	LocationHeader   ParameterLocation = "header"
	LocationPath     ParameterLocation = "path"
	LocationQuery    ParameterLocation = "query"
	LocationFormData ParameterLocation = "formData"
)

// PathItem holds the operations of one path in declaration order. Path-level
// keys that are not methods (parameters, $ref, extensions) are skipped.
type PathItem struct {
	methods    []Method
	operations map[Method]*Operation
}

// Methods returns the declared methods in source order.
func (p *PathItem) Methods() []Method {
	if p == nil {
		return nil
	}
	return p.methods
}

func (p *PathItem) Operation(m Method) *Operation {
	if p == nil {
		return nil
	}
	return p.operations[m]
}

// AddOperation appends an operation under m, replacing an existing one in
// place.
func (p *PathItem) AddOperation(m Method, op *Operation) {
	if p.operations == nil {
		p.operations = make(map[Method]*Operation)
	}
	if _, ok := p.operations[m]; !ok {
		p.methods = append(p.methods, m)
	}
	p.operations[m] = op
}

func (p *PathItem) UnmarshalYAML(node *yaml.Node) error {
	node = resolveAlias(node)
	if isNull(node) {
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: path item must be a mapping", node.Line)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		m, ok := ParseMethod(node.Content[i].Value)
		if !ok {
			continue
		}
		op := &Operation{}
		if err := node.Content[i+1].Decode(op); err != nil {
			return fmt.Errorf("decoding %s operation: %w", m, err)
		}
		p.AddOperation(m, op)
	}
	return nil
}

type Operation struct {
	Summary     string                `yaml:"summary"`
	Description string                `yaml:"description"`
	OperationID string                `yaml:"operationId"`
	Tags        []string              `yaml:"tags"`
	Consumes    []string              `yaml:"consumes"`
	Produces    []string              `yaml:"produces"`
	Deprecated  bool                  `yaml:"deprecated"`
	Parameters  []*Parameter          `yaml:"parameters"`
	Responses   OrderedMap[*Response] `yaml:"responses"`
}

// Response returns the response for a status code, or nil.
func (o *Operation) Response(code string) *Response {
	r, _ := o.Responses.Get(code)
	return r
}

// Parameter is a Swagger 2.0 parameter. Body parameters carry Schema, all
// others describe their value inline.
type Parameter struct {
	Name        string            `yaml:"name"`
	In          ParameterLocation `yaml:"in"`
	Description string            `yaml:"description"`
	Required    bool              `yaml:"required"`
	Type        string            `yaml:"type"`
	Format      string            `yaml:"format"`
	Items       *Items            `yaml:"items"`
	Schema      *Schema           `yaml:"schema"`
}

type Response struct {
	Description string  `yaml:"description"`
	Schema      *Schema `yaml:"schema"`
}
