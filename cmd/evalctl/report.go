package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/promptops/evalctl/pkg/evaluation"
	"github.com/promptops/evalctl/pkg/presenter"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Create the evaluation report template",
	Long:  `Renders a Markdown report enumerating every discovered target with placeholder score fields and writes it to evaluation-report.md.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		presenter.Info("Creating evaluation report template...")

		found, err := discoverTargets(cmd.Context(), cfg)
		if err != nil {
			return err
		}

		report, err := evaluation.RenderReport(found, cfg)
		if err != nil {
			return err
		}

		path, err := evaluation.NewWriter(cfg.OutputDir).WriteReport(report)
		if err != nil {
			return err
		}

		presenter.Success(fmt.Sprintf("Evaluation report template created: %s", path))
		return nil
	},
}
