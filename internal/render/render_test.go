package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevigo/review-desk/internal/core"
)

func TestRender_EmptyIssues(t *testing.T) {
	v := Render(&core.ReviewReport{
		Meta:   &core.Meta{Lines: core.Ptr(10.0), ComplexityScore: core.Ptr(3.0)},
		Issues: []core.Issue{},
	})

	require.Len(t, v.Items, 1)
	assert.True(t, v.Items[0].Placeholder)
	assert.Equal(t, "No issues found.", v.Items[0].Header())
	assert.Equal(t, "Lines: 10 · ComplexityScore: 3 · Issues: 0", v.Summary)
}

func TestRender_IssueFields(t *testing.T) {
	tests := []struct {
		name           string
		issue          core.Issue
		wantHeader     string
		wantMeta       string
		wantSuggestion string
		excludes       []string
	}{
		{
			name:       "warning with line only",
			issue:      core.Issue{Severity: core.Ptr("warning"), Message: core.Ptr("unused var"), Line: core.Ptr(5)},
			wantHeader: "WARNING unused var",
			wantMeta:   "line: 5",
			excludes:   []string{"rule:", "col:"},
		},
		{
			name:       "defaults for missing severity and message",
			issue:      core.Issue{},
			wantHeader: "INFO (no message)",
			wantMeta:   "",
		},
		{
			name: "all fields",
			issue: core.Issue{
				Severity: core.Ptr("error"), Message: core.Ptr("bad"), RuleID: core.Ptr("r/1"),
				Line: core.Ptr(3), Column: core.Ptr(9), Suggestion: core.Ptr("fix it"),
			},
			wantHeader:     "ERROR bad",
			wantMeta:       "rule: r/1 line: 3 col: 9",
			wantSuggestion: "Suggestion: fix it",
		},
		{
			name:       "zero line and empty suggestion are treated as absent",
			issue:      core.Issue{Severity: core.Ptr("info"), Message: core.Ptr("todo"), Line: core.Ptr(0), Suggestion: core.Ptr("")},
			wantHeader: "INFO todo",
			wantMeta:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Render(&core.ReviewReport{Issues: []core.Issue{tt.issue}})
			require.Len(t, v.Items, 1)
			it := v.Items[0]
			assert.False(t, it.Placeholder)
			assert.Equal(t, tt.wantHeader, it.Header())
			assert.Equal(t, tt.wantMeta, it.MetaLine)
			assert.Equal(t, tt.wantSuggestion, it.Suggestion)
			for _, ex := range tt.excludes {
				assert.NotContains(t, it.MetaLine, ex)
			}
		})
	}
}

func TestRender_PreservesOrder(t *testing.T) {
	v := Render(&core.ReviewReport{Issues: []core.Issue{
		{Severity: core.Ptr("info"), Message: core.Ptr("first")},
		{Severity: core.Ptr("error"), Message: core.Ptr("second")},
		{Severity: core.Ptr("warning"), Message: core.Ptr("third")},
	}})

	require.Len(t, v.Items, 3)
	assert.Equal(t, "first", v.Items[0].Message)
	assert.Equal(t, "second", v.Items[1].Message)
	assert.Equal(t, "third", v.Items[2].Message)
}

func TestRender_SummaryFallbacks(t *testing.T) {
	tests := []struct {
		name string
		meta *core.Meta
		want string
	}{
		{name: "no meta", meta: nil, want: "Lines: — · ComplexityScore: — · Issues: 0"},
		{name: "legacy complexity", meta: &core.Meta{Lines: core.Ptr(0.0), Complexity: core.Ptr(2.5)}, want: "Lines: 0 · ComplexityScore: 2.5 · Issues: 0"},
		{name: "score wins over complexity", meta: &core.Meta{ComplexityScore: core.Ptr(7.0), Complexity: core.Ptr(1.0)}, want: "Lines: — · ComplexityScore: 7 · Issues: 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Render(&core.ReviewReport{Meta: tt.meta}).Summary)
		})
	}
}

func TestRender_NilReportAndWarnings(t *testing.T) {
	v := Render(nil)
	assert.Equal(t, "Lines: — · ComplexityScore: — · Issues: 0", v.Summary)
	require.Len(t, v.Items, 1)
	assert.Nil(t, v.AISummary)
	assert.NotEmpty(t, v.Warnings)

	v = Render(&core.ReviewReport{
		Issues:   []core.Issue{{}},
		Warnings: []core.RenderWarning{{Field: "filename", Reason: "Invalid type"}},
	})
	fields := make([]string, 0, len(v.Warnings))
	for _, w := range v.Warnings {
		fields = append(fields, w.Field)
	}
	assert.Contains(t, fields, "filename")
	assert.Contains(t, fields, "issues[0].severity")
	assert.Contains(t, fields, "issues[0].message")
}

func TestRender_AISummaryIsEscaped(t *testing.T) {
	report := &core.ReviewReport{
		AISummary: core.Ptr("<script>alert(1)</script> & more"),
		Issues:    []core.Issue{{Severity: core.Ptr("info"), Message: core.Ptr("<b>bold</b>")}},
	}
	v := Render(report)
	require.NotNil(t, v.AISummary)
	assert.NotContains(t, v.AISummary.HTML, "<script>")
	assert.Contains(t, v.AISummary.HTML, "&lt;script&gt;")
	assert.Contains(t, v.AISummary.HTML, "&amp; more")

	var buf bytes.Buffer
	require.NoError(t, (&HTMLWriter{}).Write(&buf, v))
	out := buf.String()
	assert.NotContains(t, out, "<script>")
	assert.NotContains(t, out, "<b>bold</b>")
	assert.Contains(t, out, "&lt;script&gt;alert(1)&lt;/script&gt;")

	summaryAt := strings.Index(out, "ai-summary")
	firstIssueAt := strings.Index(out, "severity-INFO")
	require.NotEqual(t, -1, summaryAt)
	require.NotEqual(t, -1, firstIssueAt)
	assert.Less(t, summaryAt, firstIssueAt, "summary block comes ahead of the issue list")
}

func TestRender_EmptyAISummaryIsSkipped(t *testing.T) {
	assert.Nil(t, Render(&core.ReviewReport{AISummary: core.Ptr("")}).AISummary)
}

func TestTextWriter(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	v := Render(&core.ReviewReport{
		Meta:      &core.Meta{Lines: core.Ptr(4.0)},
		AISummary: core.Ptr("Looks fine.\nMinor nits."),
		Issues: []core.Issue{
			{Severity: core.Ptr("warning"), Message: core.Ptr("unused var"), Line: core.Ptr(5), Suggestion: core.Ptr("remove it")},
			{Message: core.Ptr("no severity")},
		},
	})

	var buf bytes.Buffer
	require.NoError(t, (&TextWriter{}).Write(&buf, v))
	out := buf.String()
	assert.Contains(t, out, "Lines: 4 · ComplexityScore: — · Issues: 2")
	assert.Contains(t, out, "│ Minor nits.")
	assert.Contains(t, out, "WARNING unused var")
	assert.Contains(t, out, "  line: 5")
	assert.Contains(t, out, "  Suggestion: remove it")
	assert.Contains(t, out, "INFO no severity")
}

func TestMarkdownWriter_EscapesReportText(t *testing.T) {
	v := Render(&core.ReviewReport{
		AISummary: core.Ptr("# not a heading <img src=x>"),
		Issues:    []core.Issue{{Severity: core.Ptr("info"), Message: core.Ptr("use *ptr and [link](x)")}},
	})

	var buf bytes.Buffer
	require.NoError(t, (&MarkdownWriter{}).Write(&buf, v))
	out := buf.String()
	assert.Contains(t, out, `> \# not a heading &lt;img src=x&gt;`)
	assert.Contains(t, out, `- **INFO** use \*ptr and \[link\](x)`)
	assert.NotContains(t, out, "<img")
}

func TestMarkdownWriter_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&MarkdownWriter{}).Write(&buf, Render(&core.ReviewReport{})))
	assert.Contains(t, buf.String(), "- No issues found.")
}

func TestGetWriter(t *testing.T) {
	for _, f := range []string{"text", "", "html", "markdown", "md"} {
		w, err := GetWriter(f)
		require.NoError(t, err, f)
		assert.NotNil(t, w)
	}
	_, err := GetWriter("sarif")
	assert.Error(t, err)
}
