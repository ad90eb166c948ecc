package mock

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractGameID_Matches(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{name: "lowercase id", path: "/game/export/0j36wf0d", expected: "0j36wf0d"},
		{name: "case preserved", path: "/game/export/qAPyiPom", expected: "qAPyiPom"},
		{name: "single character", path: "/game/export/x", expected: "x"},
		{name: "punctuation allowed", path: "/game/export/non-existent", expected: "non-existent"},
		{name: "percent escapes kept verbatim", path: "/game/export/a%20b", expected: "a%20b"},
		{name: "query-like text kept", path: "/game/export/abc?moves=false", expected: "abc?moves=false"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := ExtractGameID(tt.path)
			assert.True(t, ok)
			assert.Equal(t, tt.expected, id)
		})
	}
}

func TestExtractGameID_NoMatch(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{name: "empty", path: ""},
		{name: "other resource", path: "/other/resource"},
		{name: "missing id", path: "/game/export"},
		{name: "empty id", path: "/game/export/"},
		{name: "trailing slash", path: "/game/export/abc/"},
		{name: "extra segment", path: "/game/export/abc/pgn"},
		{name: "leading content", path: "/api/game/export/abc"},
		{name: "no leading slash", path: "game/export/abc"},
		{name: "double slash", path: "/game/export//abc"},
		{name: "wrong case prefix", path: "/Game/Export/abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := ExtractGameID(tt.path)
			assert.False(t, ok)
			assert.Empty(t, id)
		})
	}
}
