package model

// Document is a Swagger 2.0 document as read by the tree builder. It is
// never mutated after loading.
type Document struct {
	Swagger     string                `yaml:"swagger"`
	Info        Info                  `yaml:"info"`
	Host        string                `yaml:"host"`
	BasePath    string                `yaml:"basePath"`
	Tags        []Tag                 `yaml:"tags"`
	Paths       OrderedMap[*PathItem] `yaml:"paths"`
	Definitions OrderedMap[*Schema]   `yaml:"definitions"`
}

// Definition returns the named definition, or nil.
func (d *Document) Definition(name string) *Schema {
	s, _ := d.Definitions.Get(name)
	return s
}

type Info struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Version     string `yaml:"version"`
}

type Tag struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}
