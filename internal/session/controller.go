package session

import (
	"context"
	"errors"
	"log/slog"

	"github.com/sevigo/review-desk/internal/core"
	"github.com/sevigo/review-desk/internal/export"
	"github.com/sevigo/review-desk/internal/render"
	"github.com/sevigo/review-desk/internal/request"
)

// Status line texts.
const (
	StatusReviewing = "Reviewing..."
	StatusDone      = "Done."

	ErrorPrefix        = "Error: "
	NetworkErrorPrefix = "Network error: "

	// EmptyCodeNotice is the blocking notice shown for blank code.
	EmptyCodeNotice = "Please paste some code to review."
)

var (
	// ErrBusy is returned when a submission is requested while one is in flight.
	ErrBusy = errors.New("a review is already in progress")

	// ErrDiscarded is returned when the session was cleared while the
	// submission was in flight. The result was thrown away unseen.
	ErrDiscarded = errors.New("review result discarded after clear")
)

// Controller runs submissions against a reviewer and keeps the surface and
// the session in step with the outcome. Failures never escape as panics;
// every path ends with the review trigger enabled again.
type Controller struct {
	reviewer core.Reviewer
	surface  Surface
	session  *Session
	fsm      *machine
	logger   *slog.Logger
}

// NewController creates a controller with a fresh session.
func NewController(reviewer core.Reviewer, surface Surface, logger *slog.Logger) (*Controller, error) {
	fsm, err := newMachine()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		reviewer: reviewer,
		surface:  surface,
		session:  New(),
		fsm:      fsm,
		logger:   logger,
	}, nil
}

// Session returns the session the controller owns.
func (c *Controller) Session() *Session {
	return c.session
}

// State returns the current lifecycle state.
func (c *Controller) State() string {
	return c.fsm.current()
}

// SubmitRaw builds a request from raw form input and submits it. Blank code
// raises a blocking notice and nothing is sent.
func (c *Controller) SubmitRaw(ctx context.Context, code, language, filename string, includeAI *bool) (*core.ReviewReport, error) {
	req, err := request.Build(code, language, filename, includeAI)
	if err != nil {
		c.logger.Debug("review not submitted", "error", err)
		c.surface.Alert(EmptyCodeNotice)
		return nil, err
	}
	return c.Submit(ctx, req)
}

// Submit sends req to the reviewer. The busy check is advisory: it keeps a
// single host from overlapping submissions, it does not coordinate hosts.
func (c *Controller) Submit(ctx context.Context, req core.ReviewRequest) (*core.ReviewReport, error) {
	gen, ok := c.session.begin()
	if !ok {
		return nil, ErrBusy
	}
	defer c.finish()

	c.fsm.send(EventSubmit)
	c.surface.SetReviewEnabled(false)
	c.surface.SetExportEnabled(false)
	c.surface.ClearReport()
	c.surface.SetReportVisible(false)
	c.surface.SetStatus(StatusReviewing)

	report, err := c.reviewer.Review(ctx, req)
	if !c.session.current(gen) {
		c.logger.Info("discarding review result after clear", "filename", req.Filename, "error", err)
		return nil, ErrDiscarded
	}

	if err != nil {
		se := core.AsSubmissionError(err)
		c.fsm.send(EventFail)
		switch se.Kind {
		case core.ServerRejected:
			c.surface.SetStatus(ErrorPrefix + se.Message)
		default:
			c.surface.SetStatus(NetworkErrorPrefix + se.Message)
		}
		c.logger.Warn("review failed", "kind", se.Kind, "error", se.Message)
		return nil, se
	}
	if report == nil {
		report = &core.ReviewReport{}
	}

	c.session.complete(gen, report)
	c.fsm.send(EventSucceed)

	view := render.Render(report)
	for _, w := range view.Warnings {
		c.logger.Debug("report rendered with placeholder", "field", w.Field, "reason", w.Reason)
	}
	c.surface.ShowReport(view)
	c.surface.SetReportVisible(true)
	c.surface.SetExportEnabled(true)
	c.surface.SetStatus(StatusDone)
	return report, nil
}

func (c *Controller) finish() {
	c.session.end()
	c.surface.SetReviewEnabled(true)
}

// Clear resets the form: empty input and status, hidden report, export
// disabled, last report discarded. A submission still in flight is allowed
// to finish but its result is dropped.
func (c *Controller) Clear() {
	c.session.reset()
	c.fsm.send(EventClear)
	c.surface.ClearInput()
	c.surface.ClearReport()
	c.surface.SetReportVisible(false)
	c.surface.SetStatus("")
	c.surface.SetExportEnabled(false)
}

// Export hands the last report to dst. It is a no-op without a report.
func (c *Controller) Export(dst export.Destination) (string, bool, error) {
	name, ok, err := export.Export(c.session.LastReport(), dst)
	if err != nil {
		c.logger.Error("export failed", "error", err)
		return "", false, err
	}
	if ok {
		c.logger.Info("report exported", "name", name)
	}
	return name, ok, nil
}
