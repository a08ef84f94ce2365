// Package targets discovers evaluation targets: prompt, instruction, and
// chatmode markdown files living in their category directories, each tagged
// with the metadata extracted from its frontmatter and heading.
package targets

import (
	"context"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/promptops/evalctl/pkg/config"
	"github.com/promptops/evalctl/pkg/logger"
	"github.com/promptops/evalctl/pkg/markdown"
)

// NoDescription is the placeholder used when a target's frontmatter has no
// description key.
const NoDescription = "No description available"

// Target is one discovered artifact together with its extracted metadata.
// Targets are immutable after creation.
type Target struct {
	Filename    string            `json:"filename"`
	Path        string            `json:"path"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Category    string            `json:"type"`
	Frontmatter map[string]string `json:"frontmatter"`
}

// Discovery enumerates evaluation targets from configured category
// directories.
type Discovery struct {
	root        string
	categories  []string
	directories map[string]string
	extensions  map[string]string
}

// Option is a function that configures a Discovery
type Option func(*Discovery) error

// WithConfig sets categories, directories, and extensions from cfg.
func WithConfig(cfg *config.Config) Option {
	return func(d *Discovery) error {
		if cfg == nil {
			return errors.New("config must not be nil")
		}
		d.categories = cfg.Categories()
		d.directories = cfg.Directories
		d.extensions = cfg.Extensions
		return nil
	}
}

// WithRoot resolves category directories relative to root instead of the
// working directory.
func WithRoot(root string) Option {
	return func(d *Discovery) error {
		d.root = root
		return nil
	}
}

// NewDiscovery creates a discovery instance. Without options it uses the
// built-in configuration.
func NewDiscovery(opts ...Option) (*Discovery, error) {
	d := &Discovery{}

	for _, opt := range opts {
		if err := opt(d); err != nil {
			return nil, errors.Wrap(err, "failed to apply discovery option")
		}
	}

	if d.directories == nil {
		if err := WithConfig(config.NewDefault())(d); err != nil {
			return nil, err
		}
	}

	return d, nil
}

// DiscoverTargets walks every configured category directory and returns the
// targets found per category, sorted by filename. A missing directory is a
// warning, not a failure: its category maps to an empty list and the
// aggregated warnings come back as the (non-fatal) error value. Extraction
// failures on individual files degrade to empty metadata for that file.
func (d *Discovery) DiscoverTargets(ctx context.Context) (map[string][]Target, error) {
	found := make(map[string][]Target, len(d.categories))

	var warnings *multierror.Error
	for _, category := range d.categories {
		dir := d.directories[category]
		if d.root != "" {
			dir = filepath.Join(d.root, dir)
		}

		list, err := d.discoverCategory(ctx, category, dir)
		if err != nil {
			logger.G(ctx).WithField("directory", dir).WithError(err).Warn("Skipping category directory")
			warnings = multierror.Append(warnings, err)
		}
		found[category] = list
	}

	return found, warnings.ErrorOrNil()
}

// discoverCategory lists the files directly inside dir (non-recursive)
// whose names match the category's suffix pattern.
func (d *Discovery) discoverCategory(ctx context.Context, category, dir string) ([]Target, error) {
	list := []Target{}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return list, errors.Wrapf(err, "directory not found: %s", dir)
	}

	pattern := "*" + d.extensions[category]
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		matched, err := doublestar.Match(pattern, entry.Name())
		if err != nil || !matched {
			continue
		}

		list = append(list, d.newTarget(ctx, category, filepath.Join(dir, entry.Name())))
	}

	sort.Slice(list, func(i, j int) bool { return list[i].Filename < list[j].Filename })

	return list, nil
}

func (d *Discovery) newTarget(ctx context.Context, category, path string) Target {
	frontmatter := markdown.ExtractFrontmatter(ctx, path)

	description, ok := frontmatter["description"]
	if !ok {
		description = NoDescription
	}

	return Target{
		Filename:    filepath.Base(path),
		Path:        path,
		Title:       markdown.ExtractTitle(ctx, path),
		Description: description,
		Category:    category,
		Frontmatter: frontmatter,
	}
}

// Count returns the total number of targets across all categories.
func Count(found map[string][]Target) int {
	total := 0
	for _, list := range found {
		total += len(list)
	}
	return total
}
