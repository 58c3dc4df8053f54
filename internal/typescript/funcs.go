package typescript

import (
	"strings"
	"text/template"
)

// TemplateFuncs returns the helpers available to declaration templates.
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"upper":      strings.ToUpper,
		"lower":      strings.ToLower,
		"upperFirst": UpperFirst,
		"namespace":  NamespaceName,
		"fileName":   FileName,
	}
}
