package markdown

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseFrontmatter(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    map[string]string
	}{
		{
			name:    "no opening delimiter",
			content: "# Just a heading\nkey: value\n",
			want:    map[string]string{},
		},
		{
			name:    "empty file",
			content: "",
			want:    map[string]string{},
		},
		{
			name:    "simple block",
			content: "---\nkey: value\n---\n# Title\n",
			want:    map[string]string{"key": "value"},
		},
		{
			name:    "multiple keys",
			content: "---\ndescription: A test prompt\nmode: agent\ntools: github\n---\n",
			want: map[string]string{
				"description": "A test prompt",
				"mode":        "agent",
				"tools":       "github",
			},
		},
		{
			name:    "double quoted value",
			content: "---\nkey: \"quoted value\"\n---\n",
			want:    map[string]string{"key": "quoted value"},
		},
		{
			name:    "single quoted value",
			content: "---\nkey: 'quoted value'\n---\n",
			want:    map[string]string{"key": "quoted value"},
		},
		{
			name:    "quotes stripped exactly once",
			content: "---\nkey: \"\"double\"\"\n---\n",
			want:    map[string]string{"key": "\"double\""},
		},
		{
			name:    "mismatched quotes kept",
			content: "---\nkey: \"half quoted'\n---\n",
			want:    map[string]string{"key": "\"half quoted'"},
		},
		{
			name:    "unterminated block",
			content: "---\nkey: value\nother: thing\n",
			want:    map[string]string{"key": "value", "other": "thing"},
		},
		{
			name:    "last occurrence wins",
			content: "---\nkey: first\nkey: second\n---\n",
			want:    map[string]string{"key": "second"},
		},
		{
			name:    "non-matching lines ignored",
			content: "---\nkey: value\nnot a pair\n  - list item\n: leading colon\n---\n",
			want:    map[string]string{"key": "value"},
		},
		{
			name:    "value with colon",
			content: "---\nurl: https://example.com\n---\n",
			want:    map[string]string{"url": "https://example.com"},
		},
		{
			name:    "empty value",
			content: "---\nkey:\n---\n",
			want:    map[string]string{"key": ""},
		},
		{
			name:    "keys after close ignored",
			content: "---\nkey: value\n---\nafter: block\n",
			want:    map[string]string{"key": "value"},
		},
		{
			name:    "delimiter must be first line",
			content: "\n---\nkey: value\n---\n",
			want:    map[string]string{},
		},
		{
			name:    "indented delimiter does not open",
			content: " ---\nkey: value\n---\n",
			want:    map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseFrontmatter(tt.content))
		})
	}
}

func TestReadFrontmatter(t *testing.T) {
	path := writeFile(t, "sample.prompt.md", "---\ndescription: Sample\n---\n# Sample\n")

	frontmatter, err := ReadFrontmatter(path)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"description": "Sample"}, frontmatter)
}

func TestReadFrontmatterMissingFile(t *testing.T) {
	frontmatter, err := ReadFrontmatter(filepath.Join(t.TempDir(), "missing.md"))

	assert.Error(t, err)
	assert.Empty(t, frontmatter)
}

func TestReadFrontmatterInvalidUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "binary.md")
	require.NoError(t, os.WriteFile(path, []byte{0xff, 0xfe, 0x00, 0x01}, 0o644))

	frontmatter, err := ReadFrontmatter(path)

	assert.Error(t, err)
	assert.Empty(t, frontmatter)
}

func TestExtractFrontmatterNeverFails(t *testing.T) {
	ctx := context.Background()

	frontmatter := ExtractFrontmatter(ctx, filepath.Join(t.TempDir(), "missing.md"))
	assert.NotNil(t, frontmatter)
	assert.Empty(t, frontmatter)

	path := writeFile(t, "ok.md", "---\nkey: value\n---\n")
	assert.Equal(t, map[string]string{"key": "value"}, ExtractFrontmatter(ctx, path))
}
