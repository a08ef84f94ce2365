package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/promptops/evalctl/pkg/evaluation"
	"github.com/promptops/evalctl/pkg/presenter"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate the evaluation plan",
	Long:  `Cross-products discovered targets with the configured models and writes the pending evaluation matrix to evaluation-plan.json.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		presenter.Info("Generating evaluation plan...")

		found, err := discoverTargets(cmd.Context(), cfg)
		if err != nil {
			return err
		}

		plan := evaluation.BuildPlan(found, cfg)

		path, err := evaluation.NewWriter(cfg.OutputDir).WritePlan(plan)
		if err != nil {
			return err
		}

		presenter.Success(fmt.Sprintf("Evaluation plan generated: %s", path))
		presenter.Info(fmt.Sprintf("Total evaluations planned: %d", len(plan.EvaluationMatrix)))
		return nil
	},
}
