package render

import (
	"io"
	"strings"
)

// MarkdownWriter renders a view as Markdown. Report text is escaped so it
// cannot introduce formatting of its own.
type MarkdownWriter struct{}

func (m *MarkdownWriter) Write(w io.Writer, v View) error {
	ew := &errWriter{w: w}

	ew.println("## Review")
	ew.println("")
	ew.println("_" + EscapeMarkdown(v.Summary) + "_")
	ew.println("")

	if v.AISummary != nil {
		ew.println("> **AI Summary**")
		ew.println(">")
		for _, line := range strings.Split(v.AISummary.Text, "\n") {
			ew.println("> " + EscapeMarkdown(line))
		}
		ew.println("")
	}

	for _, it := range v.Items {
		if it.Placeholder {
			ew.println("- " + EscapeMarkdown(it.Message))
			continue
		}
		ew.printf("- **%s** %s\n", EscapeMarkdown(it.Badge), EscapeMarkdown(it.Message))
		if it.MetaLine != "" {
			ew.println("  `" + strings.ReplaceAll(it.MetaLine, "`", "'") + "`")
		}
		if it.Suggestion != "" {
			ew.println("  " + EscapeMarkdown(it.Suggestion))
		}
	}
	return ew.err
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	`*`, `\*`,
	`_`, `\_`,
	`[`, `\[`,
	`]`, `\]`,
	`<`, `&lt;`,
	`>`, `&gt;`,
	`#`, `\#`,
	`|`, `\|`,
	`~`, `\~`,
)

// EscapeMarkdown neutralizes characters that Markdown would treat as syntax.
func EscapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}
