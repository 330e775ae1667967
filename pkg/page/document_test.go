package page

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/shortcode-cli/pkg/shortcode"
)

func TestFromShortcode_UsesRegistryAllowList(t *testing.T) {
	doc, err := FromShortcode("Home", `[box]hi [hexagon/][/box]`, DefaultRegistry())
	require.NoError(t, err)

	assert.Equal(t, "Home", doc.Title)
	require.Len(t, doc.Components, 1)
	box := doc.Components[0]
	require.Len(t, box.Children, 1)
	assert.Equal(t, "hi[hexagon/]", box.Children[0].Text)
}

func TestDocument_Shortcode(t *testing.T) {
	doc, err := FromShortcode("", `[circle radius="10" /]`, DefaultRegistry())
	require.NoError(t, err)
	assert.Equal(t, `[circle radius="10"/]`, doc.Shortcode())
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"page.json", FormatJSON, false},
		{"page.JSON", FormatJSON, false},
		{"page.yml", FormatYAML, false},
		{"dir/page.yaml", FormatYAML, false},
		{"page.txt", "", true},
		{"page", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "unsupported document extension")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDocument_SaveLoad(t *testing.T) {
	doc, err := FromShortcode("Landing", `[triangle] tlso db [box z="1" a="2"]x[/box] [/triangle]`, DefaultRegistry())
	require.NoError(t, err)

	for _, ext := range []string{".json", ".yaml"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "page"+ext)
			require.NoError(t, doc.Save(path))

			loaded, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, doc, loaded)
			assert.Equal(t, doc.Shortcode(), loaded.Shortcode())
		})
	}
}

func TestDocument_EncodeKeepsAttributeOrder(t *testing.T) {
	doc := &Document{
		Title: "t",
		Components: []*Component{{
			ID:         "c1",
			Tag:        "box",
			Attributes: shortcode.Attributes{{Name: "z", Value: "1"}, {Name: "a", Value: ""}},
		}},
	}

	data, err := doc.Encode(FormatYAML)
	require.NoError(t, err)
	yml := string(data)
	assert.Less(t, strings.Index(yml, "z:"), strings.Index(yml, "a:"))
	assert.Contains(t, yml, `z: "1"`)

	data, err = doc.Encode(FormatJSON)
	require.NoError(t, err)
	js := string(data)
	assert.Less(t, strings.Index(js, `"z": "1"`), strings.Index(js, `"a": ""`))
}

func TestDecode_Errors(t *testing.T) {
	_, err := Decode([]byte("{"), FormatJSON)
	assert.Error(t, err)

	_, err = Decode([]byte("components:\n  - id: c1\n    tag: box\n    attributes: [a, b]\n"), FormatYAML)
	assert.Error(t, err)

	_, err = Decode([]byte("{}"), Format("xml"))
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read document")
}

func TestSave_UnsupportedExtension(t *testing.T) {
	doc := &Document{Title: "t"}
	path := filepath.Join(t.TempDir(), "page.txt")
	require.Error(t, doc.Save(path))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
