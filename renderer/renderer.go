// Package renderer renders transactions and summaries to markdown.
package renderer

import (
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/etnz/vanguard"
)

// templates are named after their file, partials included.
//
//go:embed *.md
var templates embed.FS

var markdown = template.Must(template.ParseFS(templates, "*.md"))

// RenderSummary renders s to markdown.
func RenderSummary(s *vanguard.Summary) string {
	return render("summary.md", s)
}

// render executes the named template. Errors are rendered in place of the document.
func render(name string, data any) string {
	var b strings.Builder
	if err := markdown.ExecuteTemplate(&b, name, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", name, err)
	}
	return b.String()
}
