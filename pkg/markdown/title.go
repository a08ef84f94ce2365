package markdown

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/promptops/evalctl/pkg/logger"
)

// UnknownTitle is returned when a file cannot be read at all.
const UnknownTitle = "Unknown"

// ExtractTitle returns the title for the file at path, degrading any read
// or decode failure to UnknownTitle with a logged diagnostic. It never
// fails.
func ExtractTitle(ctx context.Context, path string) string {
	title, err := ReadTitle(path)
	if err != nil {
		logger.G(ctx).WithField("path", path).WithError(err).Warn("Failed to extract title")
		return UnknownTitle
	}
	return title
}

// ReadTitle reads the file at path and determines its title: the first
// `# ` heading after the frontmatter block has closed, or a title derived
// from the filename when no heading exists. Read and decode failures yield
// the failure reason alongside UnknownTitle.
func ReadTitle(path string) (string, error) {
	content, err := readText(path)
	if err != nil {
		return UnknownTitle, err
	}

	if title, ok := ParseTitle(content); ok {
		return title, nil
	}
	return FallbackTitle(path), nil
}

// ParseTitle scans content for the first line beginning with "# " that
// appears after the frontmatter block has fully closed. When the first
// line is not a frontmatter opener the whole file is eligible. Delimiter
// lines after the block has closed are not treated specially.
func ParseTitle(content string) (string, bool) {
	lines := strings.Split(content, "\n")

	state := stateAfter
	if len(lines) > 0 && strings.TrimSpace(lines[0]) == delimiter {
		state = stateBefore
	}

	for _, line := range lines {
		if state != stateAfter && strings.TrimSpace(line) == delimiter {
			switch state {
			case stateBefore:
				state = stateInBlock
			case stateInBlock:
				state = stateAfter
			}
			continue
		}

		if state == stateAfter && strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(line[2:]), true
		}
	}

	return "", false
}

// FallbackTitle derives a title from the file's base name: the portion
// before the first dot, hyphens replaced by spaces, each word capitalized.
// "my-cool-prompt.prompt.md" becomes "My Cool Prompt".
func FallbackTitle(path string) string {
	base := filepath.Base(path)
	if idx := strings.Index(base, "."); idx >= 0 {
		base = base[:idx]
	}

	words := strings.Split(strings.ReplaceAll(base, "-", " "), " ")
	for i, word := range words {
		words[i] = capitalize(word)
	}
	return strings.Join(words, " ")
}

func capitalize(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
}
