// Package config defines the explicit configuration value consumed by
// discovery, plan/report generation, and the models API client. Loading is
// viper-backed (flags, environment, optional config file) but the resulting
// Config struct is plain data passed into constructors.
package config

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// DefaultCategories is the fixed category order used for deterministic
// plan and report output.
var DefaultCategories = []string{"prompts", "instructions", "chatmodes"}

// Config holds every knob the orchestrator reads. A zero Config is not
// usable; obtain one via Load or NewDefault.
type Config struct {
	// Directories maps category name to the directory scanned for that
	// category, relative to the working directory.
	Directories map[string]string `mapstructure:"directories"`

	// Extensions maps category name to the filename suffix that marks a
	// file as belonging to that category.
	Extensions map[string]string `mapstructure:"extensions"`

	// Models is the ordered list of model names evaluated against.
	Models []string `mapstructure:"models"`

	// Metrics is the ordered list of metric keys initialized per matrix entry.
	Metrics []string `mapstructure:"metrics"`

	// OutputDir receives plan, report, and evaluation result files.
	OutputDir string `mapstructure:"output_dir"`

	// BaseURL is the root of the GitHub Models inference API.
	BaseURL string `mapstructure:"base_url"`

	// APIVersion is the API version advertised to the inference endpoint.
	APIVersion string `mapstructure:"api_version"`

	// Token authenticates API calls. Its absence degrades discovery and
	// report commands but makes any network-calling command fail per-call.
	Token string `mapstructure:"-"`

	// RequestTimeout bounds a single evaluation request.
	RequestTimeout time.Duration `mapstructure:"request_timeout"`

	// ConnectTimeout bounds the test-connection probe.
	ConnectTimeout time.Duration `mapstructure:"connect_timeout"`

	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

// NewDefault returns the built-in configuration matching the repository's
// conventional layout and the GitHub Models catalog.
func NewDefault() *Config {
	return &Config{
		Directories: map[string]string{
			"prompts":      "prompts",
			"instructions": "instructions",
			"chatmodes":    "chatmodes",
		},
		Extensions: map[string]string{
			"prompts":      ".prompt.md",
			"instructions": ".instructions.md",
			"chatmodes":    ".chatmode.md",
		},
		Models: []string{
			"gpt-4o-mini",
			"gpt-4o",
			"Phi-3-mini-128k-instruct",
			"Phi-3-medium-128k-instruct",
			"Meta-Llama-3.1-70B-Instruct",
			"Meta-Llama-3.1-405B-Instruct",
			"Mistral-large",
			"Mistral-Nemo",
			"Cohere-command-r",
			"Cohere-command-r-plus",
		},
		Metrics: []string{
			"accuracy",
			"relevance",
			"completeness",
			"clarity",
			"consistency",
			"response_time",
			"token_usage",
			"cost_efficiency",
		},
		OutputDir:      "evaluation-results",
		BaseURL:        "https://models.inference.ai.azure.com",
		APIVersion:     "2024-05-01-preview",
		RequestTimeout: 30 * time.Second,
		ConnectTimeout: 10 * time.Second,
		LogLevel:       "info",
		LogFormat:      "fmt",
	}
}

// SetDefaults registers the built-in configuration as viper defaults so
// that flags, environment variables, and config files override it.
func SetDefaults(v *viper.Viper) {
	def := NewDefault()
	v.SetDefault("directories", def.Directories)
	v.SetDefault("extensions", def.Extensions)
	v.SetDefault("models", def.Models)
	v.SetDefault("metrics", def.Metrics)
	v.SetDefault("output_dir", def.OutputDir)
	v.SetDefault("base_url", def.BaseURL)
	v.SetDefault("api_version", def.APIVersion)
	v.SetDefault("request_timeout", def.RequestTimeout)
	v.SetDefault("connect_timeout", def.ConnectTimeout)
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("log_format", def.LogFormat)
}

// Load unmarshals the current viper state into a Config and reads the
// GitHub token from the environment. The token is read once here; callers
// decide how its absence degrades their command.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal configuration")
	}

	cfg.Token = os.Getenv("GITHUB_TOKEN")

	return &cfg, nil
}

// Categories returns the category names in fixed order, restricted to
// those that have both a directory and an extension configured.
func (c *Config) Categories() []string {
	ordered := make([]string, 0, len(c.Directories))
	for _, name := range DefaultCategories {
		if _, ok := c.Directories[name]; !ok {
			continue
		}
		if _, ok := c.Extensions[name]; !ok {
			continue
		}
		ordered = append(ordered, name)
	}
	return ordered
}

// HasModel reports whether name is one of the configured models.
func (c *Config) HasModel(name string) bool {
	for _, m := range c.Models {
		if m == name {
			return true
		}
	}
	return false
}
