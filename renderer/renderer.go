// Package renderer turns core results into markdown reports. Each report is
// a main template assembled from partials, all embedded next to this file.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed *.md
var templates embed.FS

// ImportMarkdown renders the outcome of one ingestion run.
func ImportMarkdown(v *ImportView) string {
	partials := map[string]string{
		"import_holdings": "import_holdings.md",
		"import_warnings": "import_warnings.md",
	}
	return renderTemplate("import", "import_result.md", partials, v)
}

// RiskMarkdown renders the full analysis report: alerts and classification.
func RiskMarkdown(v *ReportView) string {
	partials := map[string]string{
		"risk_alerts":           "risk_alerts.md",
		"risk_classification":   "risk_classification.md",
		"risk_sector_breakdown": "risk_sector_breakdown.md",
	}
	return renderTemplate("risk", "risk_report.md", partials, v)
}

// ClassificationMarkdown renders a classification result on its own, for
// the classify subcommand that runs from explicit metrics.
func ClassificationMarkdown(v *ClassificationView) string {
	return renderTemplate("classification", "risk_classification.md", nil, v)
}

// renderTemplate is a generic utility to render a main template that
// depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcMap).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, readErr := fs.ReadFile(templates, file)
		if readErr != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, readErr)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}

var funcMap = template.FuncMap{
	"join": strings.Join,
	"usd": func(v float64) string {
		return "$" + groupThousands(fmt.Sprintf("%.2f", v))
	},
	"pct": func(v float64) string {
		return fmt.Sprintf("%.1f%%", v)
	},
}

// groupThousands inserts thousands separators into the integer part of an
// already-formatted number.
func groupThousands(s string) string {
	intPart, frac, hasFrac := strings.Cut(s, ".")
	sign := ""
	if strings.HasPrefix(intPart, "-") {
		sign, intPart = "-", intPart[1:]
	}
	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	out := sign + b.String()
	if hasFrac {
		out += "." + frac
	}
	return out
}
