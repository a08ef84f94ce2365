package evaluation

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptops/evalctl/pkg/config"
)

func TestWritePlan(t *testing.T) {
	outputDir := filepath.Join(t.TempDir(), "evaluation-results")
	w := NewWriter(outputDir)

	plan := BuildPlan(sampleTargets(), config.NewDefault())
	path, err := w.WritePlan(plan)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(outputDir, "evaluation-plan.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "metadata")
	assert.Contains(t, decoded, "evaluation_matrix")

	// null metric values survive the round trip
	assert.Contains(t, string(data), "\"accuracy\": null")
}

func TestWriteReport(t *testing.T) {
	outputDir := filepath.Join(t.TempDir(), "out")
	w := NewWriter(outputDir)

	path, err := w.WriteReport("# Report\n")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(outputDir, "evaluation-report.md"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# Report\n", string(data))
}

func TestWriteResult(t *testing.T) {
	outputDir := filepath.Join(t.TempDir(), "out")
	w := NewWriter(outputDir)

	path, err := w.WriteResult("gpt-4o", map[string]any{"success": true})
	require.NoError(t, err)

	base := filepath.Base(path)
	assert.True(t, strings.HasPrefix(base, "evaluation-gpt-4o-"))
	assert.True(t, strings.HasSuffix(base, ".json"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\"success\": true")
}
