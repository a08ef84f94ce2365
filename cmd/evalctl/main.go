// Command evalctl orchestrates the evaluation of prompt, instruction, and
// chatmode files against LLM models served by GitHub Models.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/promptops/evalctl/pkg/config"
	"github.com/promptops/evalctl/pkg/logger"
	"github.com/promptops/evalctl/pkg/presenter"
)

func init() {
	// Environment variables
	viper.SetEnvPrefix("EVALCTL")
	viper.AutomaticEnv()

	// Config file support
	viper.SetConfigName("evalctl-config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.evalctl")

	config.SetDefaults(viper.GetViper())

	// Load config file if it exists (ignore errors if it doesn't)
	_ = viper.ReadInConfig()
}

var rootCmd = &cobra.Command{
	Use:   "evalctl",
	Short: "Prompt evaluation orchestrator for GitHub Models",
	Long: `evalctl discovers prompt, instruction, and chatmode files in a
repository, extracts their metadata, and builds plans and reports for
evaluating them against LLM models via the GitHub Models API.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := logger.SetLogLevel(viper.GetString("log_level")); err != nil {
			return err
		}
		logger.SetLogFormat(viper.GetString("log_format"))
		presenter.SetQuiet(viper.GetBool("quiet"))
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// loadConfig unmarshals the current viper state into the explicit Config
// value passed into discovery, generators, and the API client.
func loadConfig() (*config.Config, error) {
	return config.Load(viper.GetViper())
}

func main() {
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "fmt", "Log format (fmt, json)")
	rootCmd.PersistentFlags().String("output-dir", "evaluation-results", "Directory receiving plan, report, and result files")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress non-error output")

	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))
	viper.BindPFlag("output_dir", rootCmd.PersistentFlags().Lookup("output-dir"))
	viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))

	rootCmd.AddCommand(discoverCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(evaluateCmd)
	rootCmd.AddCommand(testConnectionCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		presenter.Error(err, "")
		os.Exit(1)
	}
}
