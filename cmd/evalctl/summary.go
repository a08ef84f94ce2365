package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/promptops/evalctl/pkg/presenter"
	"github.com/promptops/evalctl/pkg/targets"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show the evaluation summary",
	Long:  `Prints how many targets were discovered per category and how many evaluation combinations the configured models imply.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		presenter.Info("Generating evaluation summary...")

		found, err := discoverTargets(cmd.Context(), cfg)
		if err != nil {
			return err
		}

		total := targets.Count(found)

		presenter.Section("Evaluation Summary")
		presenter.Info(fmt.Sprintf("Total files: %d", total))
		for _, category := range cfg.Categories() {
			presenter.Info(fmt.Sprintf("- %s: %d", category, len(found[category])))
		}
		presenter.Info(fmt.Sprintf("Models to test: %d", len(cfg.Models)))
		presenter.Info(fmt.Sprintf("Total evaluation combinations: %d", total*len(cfg.Models)))
		return nil
	},
}
