package main

import (
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/sevigo/review-desk/internal/render"
	"github.com/sevigo/review-desk/internal/session"
)

var (
	titleColor   = color.New(color.FgCyan, color.Bold)
	successColor = color.New(color.FgGreen)
	errorColor   = color.New(color.FgRed)
	dimColor     = color.New(color.FgHiBlack)
)

// consoleSurface prints controller updates. Status lines go to errOut so
// that out carries only the report.
type consoleSurface struct {
	out    io.Writer
	errOut io.Writer
	writer render.Writer
}

func newConsoleSurface(out, errOut io.Writer, writer render.Writer) *consoleSurface {
	return &consoleSurface{out: out, errOut: errOut, writer: writer}
}

func (c *consoleSurface) SetStatus(text string) {
	switch {
	case text == "":
	case text == session.StatusDone:
		successColor.Fprintln(c.errOut, text)
	case isErrorStatus(text):
		errorColor.Fprintln(c.errOut, text)
	default:
		dimColor.Fprintln(c.errOut, text)
	}
}

func (c *consoleSurface) ShowReport(v render.View) {
	if c.writer == nil {
		return
	}
	if err := c.writer.Write(c.out, v); err != nil {
		errorColor.Fprintf(c.errOut, "failed to print report: %v\n", err)
	}
}

func (c *consoleSurface) Alert(msg string) {
	errorColor.Fprintln(c.errOut, msg)
}

func (c *consoleSurface) SetReviewEnabled(bool) {}
func (c *consoleSurface) SetExportEnabled(bool) {}
func (c *consoleSurface) ClearReport()          {}
func (c *consoleSurface) SetReportVisible(bool) {}
func (c *consoleSurface) ClearInput()           {}

func isErrorStatus(text string) bool {
	return strings.HasPrefix(text, session.ErrorPrefix) || strings.HasPrefix(text, session.NetworkErrorPrefix)
}

func printHeader(w io.Writer, target string) {
	titleColor.Fprintln(w, "Review Desk")
	dimColor.Fprintf(w, "   Target: %s\n\n", target)
}
