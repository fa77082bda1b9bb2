package render

import (
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	summaryColor = color.New(color.FgCyan, color.Bold)
	aiColor      = color.New(color.FgMagenta)
	dimColor     = color.New(color.FgHiBlack)
	infoColor    = color.New(color.FgWhite)
	successColor = color.New(color.FgGreen)
	suggestColor = color.New(color.FgGreen, color.Italic)
)

// TextWriter prints a view for a terminal, coloring the severity badges.
type TextWriter struct{}

func (t *TextWriter) Write(w io.Writer, v View) error {
	ew := &errWriter{w: w}

	ew.println(summaryColor.Sprint(v.Summary))
	ew.println(strings.Repeat("─", 60))

	if v.AISummary != nil {
		ew.println(aiColor.Sprint("AI Summary"))
		for _, line := range strings.Split(v.AISummary.Text, "\n") {
			ew.println(aiColor.Sprint("│ ") + line)
		}
		ew.println(strings.Repeat("─", 60))
	}

	for i, it := range v.Items {
		if it.Placeholder {
			ew.println(successColor.Sprint(it.Message))
			continue
		}
		ew.printf("%s %s\n", badgeColor(it.Badge).Sprint(it.Badge), infoColor.Sprint(it.Message))
		if it.MetaLine != "" {
			ew.println("  " + dimColor.Sprint(it.MetaLine))
		}
		if it.Suggestion != "" {
			ew.println("  " + suggestColor.Sprint(it.Suggestion))
		}
		if i < len(v.Items)-1 {
			ew.println("")
		}
	}
	return ew.err
}

func badgeColor(badge string) *color.Color {
	switch badge {
	case "CRITICAL", "ERROR":
		return color.New(color.BgRed, color.FgWhite, color.Bold)
	case "HIGH":
		return color.New(color.BgHiRed, color.FgWhite)
	case "WARNING", "MEDIUM":
		return color.New(color.BgYellow, color.FgBlack)
	case "LOW":
		return color.New(color.BgGreen, color.FgWhite)
	default:
		return color.New(color.BgWhite, color.FgBlack)
	}
}
