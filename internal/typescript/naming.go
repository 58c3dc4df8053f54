package typescript

import (
	"strings"
	"unicode"
)

// UpperFirst upper-cases the first rune and leaves the rest untouched:
// "userInfo" -> "UserInfo".
func UpperFirst(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

// NamespaceName turns a request path into a camel-cased identifier:
// "/user/{id}" -> "userId", "/api/order-items/list" -> "apiOrderItemsList".
func NamespaceName(path string) string {
	words := splitPath(path)
	if len(words) == 0 {
		return "root"
	}

	var b strings.Builder
	for i, w := range words {
		if i == 0 {
			b.WriteString(lowerFirst(w))
			continue
		}
		b.WriteString(UpperFirst(w))
	}

	name := b.String()
	if unicode.IsDigit([]rune(name)[0]) {
		name = "_" + name
	}
	return EscapeKeyword(name)
}

// FileName strips the leading slash and joins the segments with hyphens:
// "/user/{id}" -> "user-{id}".
func FileName(path string) string {
	return strings.ReplaceAll(strings.TrimPrefix(path, "/"), "/", "-")
}

func splitPath(path string) []string {
	return strings.FieldsFunc(path, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '$'
	})
}

var reservedWords = map[string]bool{
	"break": true, "case": true, "catch": true, "class": true, "const": true,
	"continue": true, "debugger": true, "declare": true, "default": true,
	"delete": true, "do": true, "else": true, "enum": true, "export": true,
	"extends": true, "false": true, "finally": true, "for": true,
	"function": true, "if": true, "implements": true, "import": true,
	"in": true, "instanceof": true, "interface": true, "let": true,
	"namespace": true, "new": true, "null": true, "package": true,
	"private": true, "protected": true, "public": true, "return": true,
	"static": true, "super": true, "switch": true, "this": true,
	"throw": true, "true": true, "try": true, "typeof": true, "var": true,
	"void": true, "while": true, "with": true, "yield": true,
}

// EscapeKeyword appends an underscore to TypeScript reserved words so they
// can name a namespace.
func EscapeKeyword(s string) string {
	if reservedWords[s] {
		return s + "_"
	}
	return s
}
