package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/promptops/evalctl/pkg/models"
	"github.com/promptops/evalctl/pkg/presenter"
)

var testConnectionCmd = &cobra.Command{
	Use:   "test-connection",
	Short: "Test the GitHub Models API connection",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		if len(cfg.Models) == 0 {
			presenter.Error(errors.New("no models configured"), "test-connection")
			return nil
		}

		presenter.Info("Testing GitHub Models connection...")

		client := models.NewClient(cfg)
		if err := client.TestConnection(cmd.Context(), cfg.Models[0]); err != nil {
			presenter.Error(err, "test-connection")
			presenter.Info("Please check your GITHUB_TOKEN environment variable")
			return nil
		}

		presenter.Success("GitHub Models connection successful")
		return nil
	},
}
