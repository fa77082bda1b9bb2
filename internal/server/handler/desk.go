// Package handler provides HTTP handlers for the local web desk.
package handler

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"sync"

	"github.com/sevigo/review-desk/internal/app"
	"github.com/sevigo/review-desk/internal/core"
	"github.com/sevigo/review-desk/internal/export"
	"github.com/sevigo/review-desk/internal/render"
	"github.com/sevigo/review-desk/internal/session"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/desk.html"))

// maxFormBytes caps the size of a submitted form.
const maxFormBytes = 4 << 20

// form holds the values shown in the input controls between requests.
type form struct {
	Code      string
	Language  string
	Filename  string
	IncludeAI bool
}

type pageData struct {
	form
	session.PanelState
	Languages    []string
	ShowAIToggle bool
	Report       template.HTML
}

// DeskHandler serves a single-session review desk. The process owns one
// session; every browser tab talking to it sees the same state.
type DeskHandler struct {
	controller *session.Controller
	panel      *session.Panel
	showAI     bool
	logger     *slog.Logger

	mu   sync.Mutex
	form form
}

// NewDeskHandler creates the desk handler and its controller.
func NewDeskHandler(a *app.App) (*DeskHandler, error) {
	panel := session.NewPanel()
	controller, err := a.NewController(panel)
	if err != nil {
		return nil, err
	}

	includeAI := a.IncludeAIDefault()
	return &DeskHandler{
		controller: controller,
		panel:      panel,
		showAI:     includeAI != nil,
		logger:     a.Logger,
		form: form{
			Language:  a.Profile.Language,
			Filename:  a.Profile.Filename,
			IncludeAI: includeAI != nil && *includeAI,
		},
	}, nil
}

// Page renders the desk with the current session state.
func (h *DeskHandler) Page(w http.ResponseWriter, _ *http.Request) {
	h.writePage(w, http.StatusOK)
}

// Review submits the posted form and renders the outcome.
func (h *DeskHandler) Review(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	f := form{
		Code:     r.PostFormValue("code"),
		Language: r.PostFormValue("language"),
		Filename: r.PostFormValue("filename"),
	}
	var includeAI *bool
	if h.showAI && r.PostFormValue("includeAiPresent") != "" {
		f.IncludeAI = r.PostFormValue("includeAi") != ""
		includeAI = core.Ptr(f.IncludeAI)
	}
	if !core.IsSupportedLanguage(f.Language) {
		f.Language = core.SupportedLanguages[0]
	}
	h.setForm(f)

	_, err := h.controller.SubmitRaw(r.Context(), f.Code, f.Language, f.Filename, includeAI)
	if errors.Is(err, session.ErrBusy) {
		h.writePage(w, http.StatusConflict)
		return
	}
	// Rejections and transport failures are shown in the status line.
	h.writePage(w, http.StatusOK)
}

// Export downloads the last report as JSON.
func (h *DeskHandler) Export(w http.ResponseWriter, _ *http.Request) {
	if !h.controller.Session().CanExport() {
		http.Error(w, "No report to export", http.StatusNotFound)
		return
	}
	if _, _, err := h.controller.Export(export.HTTPDestination{W: w}); err != nil {
		h.logger.Error("failed to stream export", "error", err)
	}
}

// Clear resets the desk and redirects back to it.
func (h *DeskHandler) Clear(w http.ResponseWriter, r *http.Request) {
	h.controller.Clear()
	if h.panel.TakeInputCleared() {
		h.mu.Lock()
		h.form.Code = ""
		h.mu.Unlock()
	}
	h.panel.AckAlert()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *DeskHandler) setForm(f form) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.form = f
}

func (h *DeskHandler) writePage(w http.ResponseWriter, status int) {
	h.mu.Lock()
	data := pageData{
		form:         h.form,
		PanelState:   h.panel.Snapshot(),
		Languages:    core.SupportedLanguages,
		ShowAIToggle: h.showAI,
	}
	h.mu.Unlock()
	h.panel.AckAlert()

	if data.ReportVisible && data.View != nil {
		var report bytes.Buffer
		if err := render.Template().Execute(&report, render.HTMLData(*data.View)); err != nil {
			h.logger.Error("failed to render report", "error", err)
			http.Error(w, "Failed to render report", http.StatusInternalServerError)
			return
		}
		// Produced by html/template above.
		data.Report = template.HTML(report.String()) //nolint:gosec
	}

	var page bytes.Buffer
	if err := pageTemplate.Execute(&page, data); err != nil {
		h.logger.Error("failed to render page", "error", err)
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(page.Bytes())
}
