package evaluation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptops/evalctl/pkg/config"
	"github.com/promptops/evalctl/pkg/targets"
)

func sampleTargets() map[string][]targets.Target {
	return map[string][]targets.Target{
		"prompts": {
			{Filename: "a.prompt.md", Path: "prompts/a.prompt.md", Title: "A", Description: "First", Category: "prompts"},
			{Filename: "b.prompt.md", Path: "prompts/b.prompt.md", Title: "B", Description: "Second", Category: "prompts"},
		},
		"instructions": {
			{Filename: "c.instructions.md", Path: "instructions/c.instructions.md", Title: "C", Description: "Third", Category: "instructions"},
		},
		"chatmodes": {},
	}
}

func TestBuildPlanMatrixSize(t *testing.T) {
	cfg := config.NewDefault()
	plan := BuildPlan(sampleTargets(), cfg)

	assert.Len(t, plan.EvaluationMatrix, 3*len(cfg.Models))
	assert.Equal(t, 3, plan.Metadata.TotalTargets)
	assert.Equal(t, 2, plan.Metadata.TargetsByType["prompts"])
	assert.Equal(t, 1, plan.Metadata.TargetsByType["instructions"])
	assert.Equal(t, 0, plan.Metadata.TargetsByType["chatmodes"])
	assert.NotEmpty(t, plan.Metadata.Generated)
	assert.NotNil(t, plan.Recommendations)
}

func TestBuildPlanEntryShape(t *testing.T) {
	cfg := config.NewDefault()
	plan := BuildPlan(sampleTargets(), cfg)

	for _, entry := range plan.EvaluationMatrix {
		assert.Equal(t, StatusPending, entry.Status)
		assert.Equal(t, DefaultTestCases, entry.TestCases)
		require.Len(t, entry.Metrics, len(cfg.Metrics))
		for _, key := range cfg.Metrics {
			value, ok := entry.Metrics[key]
			assert.True(t, ok, "metric %s missing", key)
			assert.Nil(t, value)
		}
	}
}

func TestBuildPlanDeterministicOrder(t *testing.T) {
	cfg := config.NewDefault()
	cfg.Models = []string{"gpt-4o-mini", "gpt-4o"}

	plan := BuildPlan(sampleTargets(), cfg)
	require.Len(t, plan.EvaluationMatrix, 6)

	assert.Equal(t, "a.prompt.md", plan.EvaluationMatrix[0].Target.Filename)
	assert.Equal(t, "gpt-4o-mini", plan.EvaluationMatrix[0].Model)
	assert.Equal(t, "a.prompt.md", plan.EvaluationMatrix[1].Target.Filename)
	assert.Equal(t, "gpt-4o", plan.EvaluationMatrix[1].Model)
	assert.Equal(t, "b.prompt.md", plan.EvaluationMatrix[2].Target.Filename)
	assert.Equal(t, "c.instructions.md", plan.EvaluationMatrix[4].Target.Filename)
	assert.Equal(t, "instructions", plan.EvaluationMatrix[4].Target.Type)
}

func TestBuildPlanEmptyDiscovery(t *testing.T) {
	cfg := config.NewDefault()
	plan := BuildPlan(map[string][]targets.Target{}, cfg)

	assert.Empty(t, plan.EvaluationMatrix)
	assert.Equal(t, 0, plan.Metadata.TotalTargets)
}
