package main

import (
	"github.com/sevigo/review-desk/internal/app"
)

// Indicates that the core application services have been initialized.
type appInitializedMsg struct {
	app     *app.App
	cleanup func()
	err     error
}

// Indicates that a submission finished. The outcome is already on the panel.
type reviewDoneMsg struct{ err error }

type exportDoneMsg struct {
	path string
	ok   bool
	err  error
}

type pingDoneMsg struct{ err error }
