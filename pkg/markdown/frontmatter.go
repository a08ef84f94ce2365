// Package markdown extracts lightweight metadata from markdown artifact
// files: a flat frontmatter mapping and a human-readable title. Parsing is
// line-oriented: only flat `key: value` scalars between two `---` delimiter
// lines are recognized; nested YAML structures do not match and are
// ignored.
//
// Every exported Extract* function collapses failures to a degraded default
// (empty mapping, fallback title) so that discovery over a tree of files
// never aborts on a single malformed or unreadable file. The Read* variants
// expose the underlying failure reason for callers that want it.
package markdown

import (
	"context"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/promptops/evalctl/pkg/logger"
)

const delimiter = "---"

// scanState tracks position relative to the frontmatter block.
type scanState int

const (
	stateBefore scanState = iota
	stateInBlock
	stateAfter
)

// ExtractFrontmatter returns the frontmatter mapping for the file at path,
// degrading any read or decode failure to an empty mapping with a logged
// diagnostic. It never fails.
func ExtractFrontmatter(ctx context.Context, path string) map[string]string {
	frontmatter, err := ReadFrontmatter(path)
	if err != nil {
		logger.G(ctx).WithField("path", path).WithError(err).Warn("Failed to extract frontmatter")
	}
	return frontmatter
}

// ReadFrontmatter reads the file at path and parses its leading frontmatter
// block into a flat mapping. A file without an opening delimiter yields an
// empty mapping and no error; read or decode failures yield the failure
// reason alongside an empty mapping.
func ReadFrontmatter(path string) (map[string]string, error) {
	content, err := readText(path)
	if err != nil {
		return map[string]string{}, err
	}
	return ParseFrontmatter(content), nil
}

// ParseFrontmatter parses a leading frontmatter block out of content.
//
// The block opens only when the file's first line is exactly "---" and
// closes at the next such line; end-of-file closes an unterminated block.
// Inside the block, each line is a candidate `key: value` pair: the key is
// everything up to the first colon (trimmed), the value is the remainder
// (trimmed, one layer of matching surrounding quotes stripped). Lines with
// no colon, or starting with one, are ignored. A repeated key keeps its
// last value.
func ParseFrontmatter(content string) map[string]string {
	frontmatter := map[string]string{}

	state := stateBefore
	for _, line := range strings.Split(content, "\n") {
		switch state {
		case stateBefore:
			if line != delimiter {
				return frontmatter
			}
			state = stateInBlock
		case stateInBlock:
			if line == delimiter {
				state = stateAfter
				continue
			}
			key, value, ok := splitKeyValue(line)
			if ok {
				frontmatter[key] = value
			}
		case stateAfter:
			return frontmatter
		}
	}

	return frontmatter
}

// splitKeyValue matches a single `key: value` frontmatter line.
func splitKeyValue(line string) (string, string, bool) {
	idx := strings.Index(line, ":")
	if idx <= 0 {
		return "", "", false
	}

	key := strings.TrimSpace(line[:idx])
	value := strings.TrimSpace(line[idx+1:])
	value = unquote(value)

	return key, value, true
}

// unquote strips one layer of matching surrounding quote characters.
func unquote(value string) string {
	if len(value) < 2 {
		return value
	}

	first, last := value[0], value[len(value)-1]
	if first == last && (first == '"' || first == '\'') {
		return value[1 : len(value)-1]
	}
	return value
}

// readText reads path fully and rejects content that is not valid UTF-8.
func readText(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "failed to read %s", path)
	}
	if !utf8.Valid(content) {
		return "", errors.Errorf("file %s is not valid UTF-8", path)
	}
	return string(content), nil
}
