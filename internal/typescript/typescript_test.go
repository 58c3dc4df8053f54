package typescript

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUpperFirst(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"a", "A"},
		{"userInfo", "UserInfo"},
		{"UserInfo", "UserInfo"},
		{"user_info", "User_info"},
		{"élan", "Élan"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			require.Equal(t, tt.expected, UpperFirst(tt.input))
		})
	}
}

func TestNamespaceName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"/user/{id}", "userId"},
		{"/user", "user"},
		{"/api/order-items/list", "apiOrderItemsList"},
		{"/getUserById", "getUserById"},
		{"/User/List", "userList"},
		{"/user_info/detail", "userInfoDetail"},
		{"/v2/pets", "v2Pets"},
		{"/2fa/verify", "_2faVerify"},
		{"/delete", "delete_"},
		{"/", "root"},
		{"", "root"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			require.Equal(t, tt.expected, NamespaceName(tt.input))
		})
	}
}

func TestFileName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"/user/{id}", "user-{id}"},
		{"/a/b/c", "a-b-c"},
		{"/user", "user"},
		{"user/list", "user-list"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			require.Equal(t, tt.expected, FileName(tt.input))
		})
	}
}

func TestEscapeKeyword(t *testing.T) {
	require.Equal(t, "delete_", EscapeKeyword("delete"))
	require.Equal(t, "interface_", EscapeKeyword("interface"))
	require.Equal(t, "user", EscapeKeyword("user"))
}

func TestMapType(t *testing.T) {
	tests := []struct {
		input    string
		expected Type
	}{
		{"integer", Type{Name: "number"}},
		{"object", Type{Name: "Record<string, unknown>"}},
		{"ref", Type{Name: "any", Unresolved: true}},
		{"", Type{Name: "any"}},
		{"string", Type{Name: "string"}},
		{"boolean", Type{Name: "boolean"}},
		{"number", Type{Name: "number"}},
		{"array", Type{Name: "array"}},
		{"file", Type{Name: "file"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			require.Equal(t, tt.expected, MapType(tt.input))
		})
	}
}

func TestTypeArray(t *testing.T) {
	require.Equal(t, Type{Name: "number[]"}, MapType("integer").Array())
	require.Equal(t, Type{Name: "any[]", Unresolved: true}, MapType("ref").Array())
}

func TestIndenter(t *testing.T) {
	tests := []struct {
		name     string
		unit     string
		count    int
		depth    int
		expected string
	}{
		{"default depth 0", "", 0, 0, ""},
		{"default depth 1", "", 0, 1, "  "},
		{"default depth 2", " ", 2, 2, "    "},
		{"tabs", "\t", 1, 2, "\t\t"},
		{"four spaces", " ", 4, 1, "    "},
		{"negative depth", " ", 2, -1, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, NewIndenter(tt.unit, tt.count).At(tt.depth))
		})
	}
}
