// Package render turns a review report into a display-neutral View and applies
// that view to concrete surfaces (terminal text, HTML, Markdown).
package render

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/sevigo/review-desk/internal/core"
)

const (
	// Placeholder stands in for metadata the report does not carry.
	Placeholder = "—"
	// NoIssuesText is the single entry shown for an empty issue list.
	NoIssuesText = "No issues found."

	defaultSeverity = "info"
	defaultMessage  = "(no message)"
)

// View is the rendered form of a report. It holds plain text only; surfaces
// decide how to display it.
type View struct {
	// Summary is the metadata line: lines, complexity and issue count.
	Summary string
	// AISummary is set only when the report carries a non-empty AI summary.
	AISummary *SummaryBlock
	// Items are the list entries, in report order.
	Items []Item
	// Warnings records every placeholder substitution and decode problem.
	Warnings []core.RenderWarning
}

// SummaryBlock is the AI summary shown ahead of the issue list.
type SummaryBlock struct {
	// Text is the summary as received.
	Text string
	// HTML is Text with markup characters escaped. It is the only value a
	// surface may insert as raw markup.
	HTML string
}

// Item is one entry of the issue list.
type Item struct {
	// Placeholder marks the lone "No issues found." entry.
	Placeholder bool
	// Badge is the uppercased severity.
	Badge string
	// Message is the issue message or its placeholder.
	Message string
	// MetaLine lists whichever of rule, line and column are present.
	MetaLine string
	// Suggestion is "Suggestion: ..." or empty.
	Suggestion string
}

// Header is the badge followed by the message, or the placeholder text.
func (it Item) Header() string {
	if it.Placeholder {
		return it.Message
	}
	return it.Badge + " " + it.Message
}

// Render builds the view for report. A nil report renders like an empty one.
func Render(report *core.ReviewReport) View {
	if report == nil {
		report = &core.ReviewReport{}
	}

	v := View{Warnings: append([]core.RenderWarning(nil), report.Warnings...)}
	v.Summary = v.summaryLine(report)

	if report.AISummary != nil && *report.AISummary != "" {
		v.AISummary = &SummaryBlock{
			Text: *report.AISummary,
			HTML: EscapeHTML(*report.AISummary),
		}
	}

	if len(report.Issues) == 0 {
		v.Items = []Item{{Placeholder: true, Message: NoIssuesText}}
		return v
	}

	v.Items = make([]Item, 0, len(report.Issues))
	for i, issue := range report.Issues {
		v.Items = append(v.Items, v.item(i, issue))
	}
	return v
}

func (v *View) summaryLine(report *core.ReviewReport) string {
	lines, score := Placeholder, Placeholder
	meta := report.Meta
	if meta == nil {
		v.warn("meta", "missing")
		meta = &core.Meta{}
	}

	if meta.Lines != nil {
		lines = formatNumber(*meta.Lines)
	} else {
		v.warn("meta.lines", "missing")
	}

	switch {
	case meta.ComplexityScore != nil:
		score = formatNumber(*meta.ComplexityScore)
	case meta.Complexity != nil:
		score = formatNumber(*meta.Complexity)
	default:
		v.warn("meta.complexityScore", "missing")
	}

	return fmt.Sprintf("Lines: %s · ComplexityScore: %s · Issues: %d", lines, score, len(report.Issues))
}

func (v *View) item(i int, issue core.Issue) Item {
	severity := deref(issue.Severity)
	if severity == "" {
		v.warn(fmt.Sprintf("issues[%d].severity", i), "missing")
		severity = defaultSeverity
	}
	message := deref(issue.Message)
	if message == "" {
		v.warn(fmt.Sprintf("issues[%d].message", i), "missing")
		message = defaultMessage
	}

	var meta []string
	if rule := deref(issue.RuleID); rule != "" {
		meta = append(meta, "rule: "+rule)
	}
	if issue.Line != nil && *issue.Line != 0 {
		meta = append(meta, "line: "+strconv.Itoa(*issue.Line))
	}
	if issue.Column != nil && *issue.Column != 0 {
		meta = append(meta, "col: "+strconv.Itoa(*issue.Column))
	}

	it := Item{
		Badge:    strings.ToUpper(severity),
		Message:  message,
		MetaLine: strings.Join(meta, " "),
	}
	if s := deref(issue.Suggestion); s != "" {
		it.Suggestion = "Suggestion: " + s
	}
	return it
}

func (v *View) warn(field, reason string) {
	v.Warnings = append(v.Warnings, core.RenderWarning{Field: field, Reason: reason})
}

// EscapeHTML escapes &, <, >, and quotes so text can be inserted as markup.
func EscapeHTML(s string) string {
	return html.EscapeString(s)
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
