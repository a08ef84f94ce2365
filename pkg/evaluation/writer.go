package evaluation

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
)

const (
	planFileName   = "evaluation-plan.json"
	reportFileName = "evaluation-report.md"

	resultTimestampLayout = "20060102-150405"
)

// Writer persists orchestrator artifacts into the output directory,
// creating it on demand.
type Writer struct {
	outputDir string
}

// NewWriter creates a writer targeting outputDir.
func NewWriter(outputDir string) *Writer {
	return &Writer{outputDir: outputDir}
}

// WritePlan writes the evaluation plan as indented JSON and returns the
// path written.
func (w *Writer) WritePlan(plan *Plan) (string, error) {
	data, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal evaluation plan")
	}
	return w.writeFile(planFileName, data)
}

// WriteReport writes the Markdown report template and returns the path
// written.
func (w *Writer) WriteReport(report string) (string, error) {
	return w.writeFile(reportFileName, []byte(report))
}

// WriteResult writes one evaluation result as indented JSON to a
// model-and-timestamp named file and returns the path written.
func (w *Writer) WriteResult(model string, result any) (string, error) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal evaluation result")
	}

	name := fmt.Sprintf("evaluation-%s-%s.json", model, time.Now().Format(resultTimestampLayout))
	return w.writeFile(name, data)
}

func (w *Writer) writeFile(name string, data []byte) (string, error) {
	if err := os.MkdirAll(w.outputDir, 0o755); err != nil {
		return "", errors.Wrapf(err, "failed to create output directory %s", w.outputDir)
	}

	path := filepath.Join(w.outputDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", errors.Wrapf(err, "failed to write %s", path)
	}

	return path, nil
}
