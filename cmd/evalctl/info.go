package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/promptops/evalctl/pkg/markdown"
	"github.com/promptops/evalctl/pkg/presenter"
)

type fileInfo struct {
	Path        string            `json:"path"`
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	Frontmatter map[string]string `json:"frontmatter"`
}

var infoCmd = &cobra.Command{
	Use:   "info <path>",
	Short: "Show the extracted metadata of a single file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		if _, err := os.Stat(path); err != nil {
			presenter.Error(errors.Wrap(err, "cannot read file"), "info")
			return nil
		}

		info := fileInfo{
			Path:        path,
			Title:       markdown.ExtractTitle(cmd.Context(), path),
			Frontmatter: markdown.ExtractFrontmatter(cmd.Context(), path),
		}
		info.Description = info.Frontmatter["description"]

		output, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return errors.Wrap(err, "failed to render file info")
		}

		fmt.Println(string(output))
		return nil
	},
}
