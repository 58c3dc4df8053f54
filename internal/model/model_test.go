package model

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"
)

const orderedDoc = `{
  "swagger": "2.0",
  "basePath": "/api",
  "tags": [{"name": "User", "description": "users"}],
  "paths": {
    "/zeta": {"post": {"summary": "z"}},
    "/alpha": {
      "parameters": [{"name": "trace", "in": "header"}],
      "put": {"summary": "a-put"},
      "get": {"summary": "a-get"}
    }
  },
  "definitions": {
    "User": {
      "required": ["id"],
      "properties": {
        "name": {"type": "string"},
        "id": {"type": "integer", "format": "int64"},
        "friends": {"type": "array", "items": {"$ref": "#/definitions/User", "originalRef": "User"}}
      }
    }
  }
}`

func TestDecodeKeepsSourceOrder(t *testing.T) {
	var doc Document
	require.NoError(t, yaml.Unmarshal([]byte(orderedDoc), &doc))

	require.Equal(t, "2.0", doc.Swagger)
	require.Equal(t, "/api", doc.BasePath)
	require.Equal(t, []Tag{{Name: "User", Description: "users"}}, doc.Tags)
	require.Equal(t, []string{"/zeta", "/alpha"}, doc.Paths.Keys())

	alpha, ok := doc.Paths.Get("/alpha")
	require.True(t, ok)
	require.Equal(t, []Method{MethodPut, MethodGet}, alpha.Methods())
	require.Equal(t, "a-put", alpha.Operation(MethodPut).Summary)

	user := doc.Definition("User")
	require.NotNil(t, user)
	require.Equal(t, []string{"name", "id", "friends"}, user.Properties.Keys())
	require.Equal(t, []string{"id"}, user.Required)

	friends, _ := user.Properties.Get("friends")
	require.Equal(t, ItemsFromRef, friends.Items.Source())
	require.Equal(t, "User", friends.Items.ElementSchema().RefName())
}

func TestOrderedMapSetKeepsPosition(t *testing.T) {
	var m OrderedMap[int]
	m.Set("b", 1)
	m.Set("a", 2)
	m.Set("b", 3)

	require.Equal(t, []string{"b", "a"}, m.Keys())
	v, ok := m.Get("b")
	require.True(t, ok)
	require.Equal(t, 3, v)

	var got []string
	for k := range m.All() {
		got = append(got, k)
	}
	require.Equal(t, []string{"b", "a"}, got)
}

func TestOrderedMapRejectsSequence(t *testing.T) {
	var doc struct {
		Props OrderedMap[*Schema] `yaml:"props"`
	}
	err := yaml.Unmarshal([]byte("props: [1, 2]"), &doc)
	require.Error(t, err)
	require.Contains(t, err.Error(), "expected a mapping")
}

func TestItemsSourcePriority(t *testing.T) {
	tests := []struct {
		name  string
		items *Items
		want  ItemsSource
	}{
		{"nil", nil, ItemsNone},
		{"empty", &Items{}, ItemsNone},
		{"schema wins", &Items{Schema: &Schema{OriginalRef: "A"}, OriginalRef: "B", Type: "string"}, ItemsFromSchema},
		{"ref over type", &Items{OriginalRef: "B", Type: "string"}, ItemsFromRef},
		{"plain $ref", &Items{Ref: "#/definitions/B"}, ItemsFromRef},
		{"type only", &Items{Type: "string"}, ItemsFromType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.items.Source())
		})
	}
}

func TestRefName(t *testing.T) {
	tests := []struct {
		ref, original, want string
	}{
		{"#/definitions/User", "", "User"},
		{"#/definitions/User", "UserDTO", "UserDTO"},
		{"", "Pet", "Pet"},
		{"", "", ""},
		{"Plain", "", "Plain"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			require.Equal(t, tt.want, RefName(tt.ref, tt.original))
		})
	}
}

func TestParseMethod(t *testing.T) {
	m, ok := ParseMethod("GET")
	require.True(t, ok)
	require.Equal(t, MethodGet, m)

	for _, key := range []string{"parameters", "$ref", "x-internal", "trace"} {
		_, ok := ParseMethod(key)
		require.False(t, ok, key)
	}
}
