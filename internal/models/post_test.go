package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTags(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Tags
	}{
		{
			name: "single tag passes through unchanged",
			raw:  "#trading",
			want: Tags{Single: "#trading"},
		},
		{
			name: "comma splits and trims",
			raw:  "#a, #b",
			want: Tags{Many: []string{"#a", "#b"}},
		},
		{
			name: "ragged whitespace",
			raw:  "  go ,  web,cache  ",
			want: Tags{Many: []string{"go", "web", "cache"}},
		},
		{
			name: "empty tokens dropped",
			raw:  "one,,two,",
			want: Tags{Many: []string{"one", "two"}},
		},
		{
			name: "empty input stays single",
			raw:  "",
			want: Tags{Single: ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseTags(tt.raw))
		})
	}
}

func TestTagsJSON_BothWireShapes(t *testing.T) {
	var p Post
	require.NoError(t, json.Unmarshal([]byte(`{"id":"1","tags":"#solo"}`), &p))
	assert.False(t, p.Tags.IsMany())
	assert.Equal(t, []string{"#solo"}, p.Tags.List())

	require.NoError(t, json.Unmarshal([]byte(`{"id":"2","tags":["#a","#b"]}`), &p))
	assert.True(t, p.Tags.IsMany())
	assert.Equal(t, []string{"#a", "#b"}, p.Tags.List())

	single, err := json.Marshal(Tags{Single: "#solo"})
	require.NoError(t, err)
	assert.JSONEq(t, `"#solo"`, string(single))

	many, err := json.Marshal(Tags{Many: []string{"#a", "#b"}})
	require.NoError(t, err)
	assert.JSONEq(t, `["#a","#b"]`, string(many))
}

func TestTagsEditable(t *testing.T) {
	assert.Equal(t, "#a, #b", Tags{Many: []string{"#a", "#b"}}.Editable())
	assert.Equal(t, "#solo", Tags{Single: "#solo"}.Editable())
	assert.Equal(t, "", Tags{}.Editable())
}

func TestEditPostInput_OmitsNilFields(t *testing.T) {
	title := "Renamed"
	b, err := json.Marshal(EditPostInput{Title: &title})
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"Renamed"}`, string(b))
}
