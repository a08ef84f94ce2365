package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/promptops/evalctl/pkg/config"
	"github.com/promptops/evalctl/pkg/presenter"
	"github.com/promptops/evalctl/pkg/targets"
)

var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Discover all evaluation targets",
	Long:  `Scans the configured category directories and prints every discovered target with its extracted metadata as JSON.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		presenter.Info("Discovering evaluation targets...")

		found, err := discoverTargets(cmd.Context(), cfg)
		if err != nil {
			return err
		}

		output, err := json.MarshalIndent(found, "", "  ")
		if err != nil {
			return errors.Wrap(err, "failed to render discovery output")
		}

		fmt.Println(string(output))
		return nil
	},
}

// discoverTargets runs discovery and surfaces the non-fatal warnings
// (missing directories) to the user before returning the results.
func discoverTargets(ctx context.Context, cfg *config.Config) (map[string][]targets.Target, error) {
	d, err := targets.NewDiscovery(targets.WithConfig(cfg))
	if err != nil {
		return nil, err
	}

	found, warn := d.DiscoverTargets(ctx)
	if warn != nil {
		var merr *multierror.Error
		if errors.As(warn, &merr) {
			for _, e := range merr.Errors {
				presenter.Warning(e.Error())
			}
		} else {
			presenter.Warning(warn.Error())
		}
	}

	return found, nil
}
