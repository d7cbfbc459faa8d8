package renderer

import (
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

// LedgerRenderOptions holds configuration for rendering a ledger page.
type LedgerRenderOptions struct {
	SkipTotals bool // Do not render the totals section.
}

// RenderLedgerPage renders the LedgerPage struct to a markdown string.
func RenderLedgerPage(p *LedgerPage, opts LedgerRenderOptions) string {
	partials := map[string]string{
		"ledger_title":  "ledger_title.md",
		"ledger_prefix": "ledger_prefix.md",
		"ledger_rows":   "ledger_rows.md",
	}

	// Skip totals if requested. An empty file name results in an empty template.
	if opts.SkipTotals {
		partials["ledger_totals"] = ""
	} else {
		partials["ledger_totals"] = "ledger_totals.md"
	}

	return renderTemplate("ledger", "ledger.md", partials, p)
}

// RenderAgingReport renders the AgingReport struct to a markdown string.
func RenderAgingReport(r *AgingReport) string {
	partials := map[string]string{
		"aging_title": "aging_title.md",
		"aging_rows":  "aging_rows.md",
	}
	return renderTemplate("aging", "aging.md", partials, r)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		// An empty file name is a valid case, resulting in an empty template.
		if file != "" {
			var readErr error
			content, readErr = fs.ReadFile(templates, file)
			if readErr != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, readErr)
			}
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
