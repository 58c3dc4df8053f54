package resolver

import "github.com/kolah/swagdecl/internal/model"

// ConfigItem labels one Swagger source. Only Title, BasePath and URL are
// read by the builder.
type ConfigItem struct {
	Title    string
	BasePath string
	URL      string
}

// ResolvedProperty is a property with its references expanded. Item is set
// only for references and arrays of references; ItemsType only for arrays of
// primitives.
type ResolvedProperty struct {
	Name        string                  `yaml:"name"`
	In          model.ParameterLocation `yaml:"in,omitempty"`
	Type        string                  `yaml:"type,omitempty"`
	Format      string                  `yaml:"format,omitempty"`
	Required    bool                    `yaml:"required"`
	Description string                  `yaml:"description,omitempty"`
	Title       string                  `yaml:"title,omitempty"`
	Ref         string                  `yaml:"ref,omitempty"`
	Item        *ResolvedSchema         `yaml:"item,omitempty"`
	ItemsType   string                  `yaml:"itemsType,omitempty"`
}

// ResolvedSchema is a definition with every property resolved.
type ResolvedSchema struct {
	Name        string             `yaml:"name,omitempty"`
	Ref         string             `yaml:"ref,omitempty"`
	Type        string             `yaml:"type,omitempty"`
	Title       string             `yaml:"title,omitempty"`
	Description string             `yaml:"description,omitempty"`
	Properties  []ResolvedProperty `yaml:"properties"`
}

// Group is the tree node of one tag.
type Group struct {
	Key       string       `yaml:"key"`
	ParentKey string       `yaml:"parentKey"`
	Title     string       `yaml:"title"`
	SubTitle  string       `yaml:"subTitle,omitempty"`
	Children  []*Interface `yaml:"children"`
}

// Interface is the tree node of one operation. A node with several tags is
// shared, not copied, between their groups.
type Interface struct {
	Key       string             `yaml:"key"`
	ParentKey string             `yaml:"parentKey"`
	GroupName string             `yaml:"groupName"`
	Method    model.Method       `yaml:"method"`
	Params    []ResolvedProperty `yaml:"params"`
	Response  *ResolvedSchema    `yaml:"response"`
	Title     string             `yaml:"title"`
	SubTitle  string             `yaml:"subTitle"`
	Path      string             `yaml:"path"`
	PathName  string             `yaml:"pathName"`
	FileName  string             `yaml:"fileName"`
	BasePath  string             `yaml:"basePath"`

	OperationID string   `yaml:"operationId,omitempty"`
	Description string   `yaml:"description,omitempty"`
	Deprecated  bool     `yaml:"deprecated,omitempty"`
	Consumes    []string `yaml:"consumes,omitempty"`
	Produces    []string `yaml:"produces,omitempty"`
}
