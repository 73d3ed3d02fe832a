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

// ReportRenderOptions holds configuration for rendering a report.
type ReportRenderOptions struct {
	SkipEntries bool // Do not render the purchases and transfers sections.
}

// RenderReport renders the Report to a markdown string. Sections come in a
// fixed order: title and turnover, exchange rates, members, purchases,
// transfers, pending balances.
func RenderReport(r *Report, opts ReportRenderOptions) string {
	partials := map[string]string{
		"report_title":   "report_title.md",
		"report_rates":   "report_rates.md",
		"report_members": "report_members.md",
		"report_entries": "report_entries.md",
	}
	if opts.SkipEntries {
		partials["report_purchases"] = ""
		partials["report_transfers"] = ""
	} else {
		partials["report_purchases"] = "report_purchases.md"
		partials["report_transfers"] = "report_transfers.md"
	}
	return renderTemplate("report", "report.md", partials, r)
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
			content, err = fs.ReadFile(templates, file)
			if err != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, err)
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
