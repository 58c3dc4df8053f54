// Package templates embeds the default declaration templates.
package templates

import "embed"

//go:embed typescript/*.tmpl
var FS embed.FS
