package render

import (
	"html/template"
	"io"
)

// reportTemplate renders the report panel. Report text goes through
// html/template escaping; the AI summary is inserted from its pre-escaped form.
var reportTemplate = template.Must(template.New("report").Parse(`<section id="output" class="report">
  <div id="meta" class="meta">{{.Summary}}</div>
  <ul id="issues">
{{- if .AISummary}}
    <li class="ai-summary"><strong>AI Summary</strong><pre>{{.SummaryHTML}}</pre></li>
{{- end}}
{{- range .Items}}
{{- if .Placeholder}}
    <li>{{.Message}}</li>
{{- else}}
    <li>
      <div><span class="severity severity-{{.Badge}}">{{.Badge}}</span><span> {{.Message}}</span></div>
      <div class="meta">{{.MetaLine}}</div>
{{- if .Suggestion}}
      <div class="suggestion">{{.Suggestion}}</div>
{{- end}}
    </li>
{{- end}}
{{- end}}
  </ul>
</section>
`))

// HTMLWriter renders a view as an HTML fragment.
type HTMLWriter struct{}

type htmlView struct {
	View
	SummaryHTML template.HTML
}

func (h *HTMLWriter) Write(w io.Writer, v View) error {
	return reportTemplate.Execute(w, HTMLData(v))
}

// Template exposes the report panel template so pages can embed it.
func Template() *template.Template {
	return reportTemplate
}

// HTMLData prepares v for Template.
func HTMLData(v View) any {
	data := htmlView{View: v}
	if v.AISummary != nil {
		// Escaped by Render; this is the only raw insertion.
		data.SummaryHTML = template.HTML(v.AISummary.HTML) //nolint:gosec // pre-escaped
	}
	return data
}
