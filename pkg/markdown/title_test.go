package markdown

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTitle(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
		found   bool
	}{
		{
			name:    "heading after frontmatter",
			content: "---\nkey: value\n---\n# Title\n",
			want:    "Title",
			found:   true,
		},
		{
			name:    "heading without frontmatter",
			content: "# Standalone Title\nbody\n",
			want:    "Standalone Title",
			found:   true,
		},
		{
			name:    "heading inside frontmatter ignored",
			content: "---\n# Not A Title\nkey: value\n---\n# Real Title\n",
			want:    "Real Title",
			found:   true,
		},
		{
			name:    "first heading wins",
			content: "---\n---\n# First\n# Second\n",
			want:    "First",
			found:   true,
		},
		{
			name:    "delimiter after close not special",
			content: "---\nkey: value\n---\n---\n# After Rule\n",
			want:    "After Rule",
			found:   true,
		},
		{
			name:    "subheading is not a title",
			content: "## Not Title\n### Also Not\n",
			found:   false,
		},
		{
			name:    "no heading",
			content: "---\nkey: value\n---\nplain text only\n",
			found:   false,
		},
		{
			name:    "heading trimmed",
			content: "#   Spaced Out   \n",
			want:    "Spaced Out",
			found:   true,
		},
		{
			name:    "hash space prefix required",
			content: "#NoSpace\n",
			found:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseTitle(tt.content)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestFallbackTitle(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"my-cool-prompt.prompt.md", "My Cool Prompt"},
		{"prompts/code-review.prompt.md", "Code Review"},
		{"azure-DEVOPS.instructions.md", "Azure Devops"},
		{"single.chatmode.md", "Single"},
		{"noextension", "Noextension"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FallbackTitle(tt.path))
	}
}

func TestReadTitle(t *testing.T) {
	path := writeFile(t, "sample.prompt.md", "---\ndescription: Sample\n---\n# Sample Title\n")

	title, err := ReadTitle(path)
	require.NoError(t, err)
	assert.Equal(t, "Sample Title", title)
}

func TestReadTitleFallsBackToFilename(t *testing.T) {
	path := writeFile(t, "my-cool-prompt.prompt.md", "---\ndescription: Sample\n---\nno heading here\n")

	title, err := ReadTitle(path)
	require.NoError(t, err)
	assert.Equal(t, "My Cool Prompt", title)
}

func TestExtractTitleUnknownOnReadFailure(t *testing.T) {
	title := ExtractTitle(context.Background(), filepath.Join(t.TempDir(), "missing.md"))
	assert.Equal(t, UnknownTitle, title)
}
