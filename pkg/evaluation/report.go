package evaluation

import (
	"bytes"
	"strings"
	"text/template"
	"time"

	"github.com/pkg/errors"

	"github.com/promptops/evalctl/pkg/config"
	"github.com/promptops/evalctl/pkg/targets"
)

const reportTemplate = `# Prompt Evaluation Report
Generated: {{.Generated}}

## Executive Summary

This report presents the evaluation results for prompts, instructions, and chatmodes in this repository against multiple LLM models using GitHub Models.

### Evaluation Scope
- **Total Files Evaluated**: {{.TotalFiles}}
{{- range .Categories}}
- **{{.Heading}}**: {{len .Items}}
{{- end}}
- **Models Tested**: {{join .Models ", "}}

### Key Findings
<!-- To be filled after evaluation -->
- **Best Overall Model**: TBD
- **Most Cost-Effective**: TBD
- **Fastest Response**: TBD
- **Most Consistent**: TBD

## Detailed Results

### Model Performance Overview
| Model | Avg Accuracy | Avg Relevance | Avg Completeness | Avg Clarity | Avg Consistency | Avg Cost | Avg Time |
|-------|--------------|---------------|------------------|-------------|-----------------|----------|----------|
{{- range .Models}}
| {{.}} | TBD | TBD | TBD | TBD | TBD | TBD | TBD |
{{- end}}

### Evaluation by Type
{{range .Categories}}
#### {{.Heading}} ({{len .Items}} files)
{{range .Items}}
##### {{.Title}}
- **File**: ` + "`{{.Filename}}`" + `
- **Description**: {{.Description}}
- **Best Model**: TBD
- **Overall Score**: TBD/10
- **Recommendations**: TBD
{{end}}{{end}}
## Recommendations

### Model Selection Guidelines
<!-- To be filled after evaluation -->
- **For Cost-Sensitive Projects**: TBD
- **For Maximum Quality**: TBD
- **For Balanced Performance**: TBD

### Optimization Opportunities
<!-- To be filled after evaluation -->
1. **High-Impact Improvements**: TBD
2. **Model-Specific Tuning**: TBD
3. **General Enhancements**: TBD

## Methodology

### Evaluation Framework
- **Quality Metrics**: {{join .QualityMetrics ", "}}
- **Performance Metrics**: {{join .PerformanceMetrics ", "}}
- **Test Scenarios**: Standard use case, edge cases, context variations, consistency checks

### Test Configuration
- **Models**: {{join .Models ", "}}
- **GitHub Models API**: {{.BaseURL}}
- **Authentication**: GitHub Token (current user)
- **Temperature**: 0.1, 0.7, 1.0
- **Max Tokens**: 2000, 4000, 8000
- **Runs per Test**: 3 (for consistency measurement)

## Next Steps

1. **Implement Recommendations**: Apply high-impact improvements identified
2. **Monitor Performance**: Track changes in evaluation scores over time
3. **Expand Coverage**: Add new models and evaluation scenarios
4. **Automate Process**: Integrate evaluation into CI/CD pipeline
`

type reportCategory struct {
	Name    string
	Heading string
	Items   []targets.Target
}

type reportData struct {
	Generated          string
	TotalFiles         int
	Categories         []reportCategory
	Models             []string
	QualityMetrics     []string
	PerformanceMetrics []string
	BaseURL            string
}

// RenderReport produces the Markdown evaluation report template for the
// discovered targets: per-category sections enumerating each target with
// placeholder score fields to be filled once evaluations have run.
func RenderReport(found map[string][]targets.Target, cfg *config.Config) (string, error) {
	tmpl, err := template.New("report").Funcs(template.FuncMap{
		"join": strings.Join,
	}).Parse(reportTemplate)
	if err != nil {
		return "", errors.Wrap(err, "failed to parse report template")
	}

	data := reportData{
		Generated: time.Now().Format(time.RFC3339),
		Models:    cfg.Models,
		BaseURL:   cfg.BaseURL,
	}

	for _, category := range cfg.Categories() {
		items := found[category]
		data.TotalFiles += len(items)
		data.Categories = append(data.Categories, reportCategory{
			Name:    category,
			Heading: headingFor(category),
			Items:   items,
		})
	}

	// Metric keys with underscores measure performance, the rest quality.
	for _, metric := range cfg.Metrics {
		if strings.Contains(metric, "_") {
			data.PerformanceMetrics = append(data.PerformanceMetrics, metric)
		} else {
			data.QualityMetrics = append(data.QualityMetrics, metric)
		}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", errors.Wrap(err, "failed to render report template")
	}

	return buf.String(), nil
}

func headingFor(category string) string {
	if category == "" {
		return category
	}
	return strings.ToUpper(category[:1]) + category[1:]
}
