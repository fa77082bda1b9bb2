// Package session holds the state of one interactive review session and the
// controller that drives submissions through it.
package session

import "github.com/sevigo/review-desk/internal/render"

// Surface is the UI control surface a controller drives. Widget identities
// are up to the host; a terminal UI, a web page and a CLI all implement it.
type Surface interface {
	// SetStatus replaces the status line.
	SetStatus(text string)
	// SetReviewEnabled enables or disables the review trigger.
	SetReviewEnabled(enabled bool)
	// SetExportEnabled enables or disables the export trigger.
	SetExportEnabled(enabled bool)
	// ClearReport empties the issue list and the metadata line.
	ClearReport()
	// SetReportVisible shows or hides the report panel.
	SetReportVisible(visible bool)
	// ShowReport displays a rendered report.
	ShowReport(v render.View)
	// Alert shows a blocking notice that needs acknowledgement.
	Alert(msg string)
	// ClearInput empties the code input.
	ClearInput()
}
