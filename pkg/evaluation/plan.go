// Package evaluation turns discovered targets into evaluation plans and
// report documents, and writes every orchestrator artifact to the output
// directory. Generators are pure: they enumerate work, they never execute
// any evaluation.
package evaluation

import (
	"time"

	"github.com/promptops/evalctl/pkg/config"
	"github.com/promptops/evalctl/pkg/targets"
)

// StatusPending marks a matrix entry that has been planned but not run.
const StatusPending = "pending"

// DefaultTestCases are the scenario labels attached to every matrix entry.
var DefaultTestCases = []string{
	"standard_use_case",
	"edge_cases",
	"context_variations",
	"consistency_check",
}

// Plan is the JSON document produced by the plan command.
type Plan struct {
	Metadata         PlanMetadata  `json:"metadata"`
	EvaluationMatrix []MatrixEntry `json:"evaluation_matrix"`
	Recommendations  []string      `json:"recommendations"`
}

// PlanMetadata summarizes the plan's scope.
type PlanMetadata struct {
	Generated     string         `json:"generated"`
	TotalTargets  int            `json:"total_targets"`
	TargetsByType map[string]int `json:"targets_by_type"`
}

// TargetRef identifies the target of a matrix entry.
type TargetRef struct {
	Type        string `json:"type"`
	Filename    string `json:"filename"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// MatrixEntry is one planned (target, model) evaluation. Metrics map every
// configured metric key to null until an evaluation records a score.
type MatrixEntry struct {
	Target    TargetRef           `json:"target"`
	Model     string              `json:"model"`
	Metrics   map[string]*float64 `json:"metrics"`
	Status    string              `json:"status"`
	TestCases []string            `json:"test_cases"`
}

// BuildPlan cross-products the discovered targets with the configured
// models: one pending matrix entry per (target, model) pair, every metric
// key present and unset. Entry order is deterministic: category order, then
// targets as discovered, then models in configured order.
func BuildPlan(found map[string][]targets.Target, cfg *config.Config) *Plan {
	plan := &Plan{
		Metadata: PlanMetadata{
			Generated:     time.Now().Format(time.RFC3339),
			TargetsByType: make(map[string]int, len(found)),
		},
		EvaluationMatrix: []MatrixEntry{},
		Recommendations:  []string{},
	}

	for _, category := range cfg.Categories() {
		items := found[category]
		plan.Metadata.TargetsByType[category] = len(items)
		plan.Metadata.TotalTargets += len(items)
	}

	for _, category := range cfg.Categories() {
		for _, item := range found[category] {
			for _, model := range cfg.Models {
				plan.EvaluationMatrix = append(plan.EvaluationMatrix, newMatrixEntry(item, model, cfg.Metrics))
			}
		}
	}

	return plan
}

func newMatrixEntry(item targets.Target, model string, metricKeys []string) MatrixEntry {
	metrics := make(map[string]*float64, len(metricKeys))
	for _, key := range metricKeys {
		metrics[key] = nil
	}

	return MatrixEntry{
		Target: TargetRef{
			Type:        item.Category,
			Filename:    item.Filename,
			Title:       item.Title,
			Description: item.Description,
		},
		Model:     model,
		Metrics:   metrics,
		Status:    StatusPending,
		TestCases: append([]string{}, DefaultTestCases...),
	}
}
