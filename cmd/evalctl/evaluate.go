package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/promptops/evalctl/pkg/evaluation"
	"github.com/promptops/evalctl/pkg/models"
	"github.com/promptops/evalctl/pkg/presenter"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate <path> [model]",
	Short: "Run one evaluation request for a target file",
	Long: `Sends the target file's content to the given model (default: the first
configured model) as a single chat-completion request and writes the
outcome to a timestamped result file. Failures are recorded, not raised.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		path := args[0]
		if _, err := os.Stat(path); err != nil {
			presenter.Error(errors.Wrap(err, "cannot read target file"), "evaluate")
			return nil
		}

		if len(cfg.Models) == 0 {
			presenter.Error(errors.New("no models configured"), "evaluate")
			return nil
		}

		model := cfg.Models[0]
		if len(args) == 2 {
			model = args[1]
		}
		if !cfg.HasModel(model) {
			presenter.Error(errors.Errorf("unknown model: %s", model), "evaluate")
			presenter.Info("Configured models: " + strings.Join(cfg.Models, ", "))
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return errors.Wrapf(err, "failed to read %s", path)
		}

		presenter.Info(fmt.Sprintf("Evaluating %s against %s...", path, model))

		client := models.NewClient(cfg)
		result := client.Evaluate(cmd.Context(), path, model, evaluationPrompt(string(content)))

		resultPath, err := evaluation.NewWriter(cfg.OutputDir).WriteResult(model, result)
		if err != nil {
			return err
		}

		if result.Success {
			presenter.Success(fmt.Sprintf("Evaluation completed in %.2fs", result.ResponseTime))
		} else {
			presenter.Warning(fmt.Sprintf("Evaluation failed: %s", result.Error))
		}
		presenter.Info(fmt.Sprintf("Result written: %s", resultPath))
		return nil
	},
}

// evaluationPrompt wraps the target file's content into the test prompt
// sent to the model.
func evaluationPrompt(content string) string {
	return fmt.Sprintf(`You are evaluating a prompt artifact. Respond to the following content as if it were given to you directly:

%s`, content)
}
