package main

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sevigo/review-desk/internal/app"
	"github.com/sevigo/review-desk/internal/export"
	"github.com/sevigo/review-desk/internal/session"
	"github.com/sevigo/review-desk/internal/wire"
)

const pingTimeout = 10 * time.Second

func initializeAppCmd() tea.Cmd {
	return func() tea.Msg {
		a, cleanup, err := wire.InitializeApp()
		if err != nil {
			return appInitializedMsg{err: err}
		}
		return appInitializedMsg{app: a, cleanup: cleanup}
	}
}

// submitCmd runs a submission off the UI goroutine. The controller reports
// progress through the panel, so the message only signals completion.
func submitCmd(c *session.Controller, code, language, filename string, includeAI *bool) tea.Cmd {
	return func() tea.Msg {
		_, err := c.SubmitRaw(context.Background(), code, language, filename, includeAI)
		return reviewDoneMsg{err: err}
	}
}

func exportCmd(c *session.Controller, dir string) tea.Cmd {
	return func() tea.Msg {
		dst := export.DirDestination{Dir: dir}
		name, ok, err := c.Export(dst)
		if err != nil || !ok {
			return exportDoneMsg{ok: ok, err: err}
		}
		return exportDoneMsg{path: dst.Path(name), ok: true}
	}
}

func pingCmd(a *app.App) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
		defer cancel()
		return pingDoneMsg{err: a.Ping(ctx)}
	}
}
