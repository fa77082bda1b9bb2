package main

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/sevigo/review-desk/internal/app"
	"github.com/sevigo/review-desk/internal/core"
	"github.com/sevigo/review-desk/internal/render"
	"github.com/sevigo/review-desk/internal/session"
)

type focusField int

const (
	focusCode focusField = iota
	focusLanguage
	focusFilename
	focusAI
)

const helpText = "ctrl+r review • ctrl+e export • ctrl+l clear • tab focus • esc quit"

type model struct {
	styles  styles
	app     *app.App
	cleanup func()

	controller *session.Controller
	panel      *session.Panel

	// UI Components
	code     textarea.Model
	filename textinput.Model
	viewport viewport.Model
	spinner  spinner.Model

	// Form State
	language  string
	includeAI *bool // nil when the toggle is hidden
	focus     focusField

	alert      string
	notice     string
	reportText string
	panelState session.PanelState
	width      int
	initErr    error
}

func initialModel(theme ThemeName) *model {
	styles := GetTheme(theme)

	ta := textarea.New()
	ta.Placeholder = "Paste code here..."
	ta.ShowLineNumbers = true
	ta.CharLimit = 0
	ta.SetWidth(80)
	ta.SetHeight(12)
	ta.Focus()

	fi := textinput.New()
	fi.Placeholder = core.DefaultFilename
	fi.Prompt = ""
	fi.CharLimit = 255
	fi.Width = 30

	sp := spinner.New()
	sp.Spinner = spinner.Points
	sp.Style = lipgloss.NewStyle().Foreground(styles.primary)

	return &model{
		styles:   styles,
		code:     ta,
		filename: fi,
		viewport: viewport.New(80, 12),
		spinner:  sp,
		language: core.SupportedLanguages[0],
		width:    80,
	}
}

func (m *model) Init() tea.Cmd {
	return tea.Batch(initializeAppCmd(), m.spinner.Tick)
}

// attach wires an initialized app into the model.
func (m *model) attach(a *app.App) error {
	panel := session.NewPanel()
	controller, err := a.NewController(panel)
	if err != nil {
		return err
	}
	m.app = a
	m.panel = panel
	m.controller = controller
	m.language = a.Profile.Language
	m.filename.SetValue(a.Profile.Filename)
	m.includeAI = a.IncludeAIDefault()
	m.sync()
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case appInitializedMsg:
		if msg.err != nil {
			m.initErr = msg.err
			return m, nil
		}
		m.cleanup = msg.cleanup
		if err := m.attach(msg.app); err != nil {
			m.initErr = err
			return m, nil
		}
		return m, pingCmd(m.app)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case reviewDoneMsg:
		m.sync()
		return m, nil

	case exportDoneMsg:
		switch {
		case msg.err != nil:
			m.notice = m.styles.error.Render("Export failed: " + msg.err.Error())
		case msg.ok:
			m.notice = m.styles.success.Render("Exported " + msg.path)
		}
		return m, nil

	case pingDoneMsg:
		if msg.err != nil {
			m.notice = m.styles.error.Render("Reviewer not reachable: " + m.app.Client.Endpoint())
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.panel != nil {
			m.sync()
		}
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.styles.header = m.styles.header.Width(msg.Width - 4)
		m.code.SetWidth(msg.Width - 6)
		m.filename.Width = max(msg.Width/3, 10)
		m.viewport.Width = msg.Width - 4
		m.viewport.Height = max(msg.Height-m.code.Height()-14, 5)
		m.refreshReport()
		return m, nil
	}

	var vpCmd tea.Cmd
	m.viewport, vpCmd = m.viewport.Update(msg)
	return m, vpCmd
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	// A pending notice blocks the form until acknowledged.
	if m.alert != "" {
		m.alert = ""
		return m, nil
	}
	if msg.String() == "esc" {
		return m, tea.Quit
	}
	if m.controller == nil {
		return m, nil
	}

	switch msg.String() {
	case "ctrl+r":
		return m, m.submit()
	case "ctrl+e":
		if !m.panelState.ExportEnabled {
			return m, nil
		}
		return m, exportCmd(m.controller, m.app.Cfg.ExportDir)
	case "ctrl+l":
		m.controller.Clear()
		m.notice = ""
		m.sync()
		return m, nil
	case "tab":
		m.cycleFocus()
		return m, nil
	case "pgup", "pgdown":
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	switch m.focus {
	case focusCode:
		m.code, cmd = m.code.Update(msg)
	case focusFilename:
		m.filename, cmd = m.filename.Update(msg)
	case focusLanguage:
		switch msg.String() {
		case "right", "l", " ", "enter":
			m.language = core.NextLanguage(m.language)
		case "left", "h":
			m.language = prevLanguage(m.language)
		}
	case focusAI:
		if m.includeAI != nil && (msg.String() == " " || msg.String() == "enter") {
			m.includeAI = core.Ptr(!*m.includeAI)
		}
	}
	return m, cmd
}

func (m *model) submit() tea.Cmd {
	if !m.panelState.ReviewEnabled {
		return nil
	}
	code := m.code.Value()
	if strings.TrimSpace(code) == "" {
		// SubmitRaw raises the notice without touching the network.
		_, _ = m.controller.SubmitRaw(context.Background(), code, m.language, m.filename.Value(), m.includeAI)
		m.sync()
		return nil
	}
	m.notice = ""
	m.panelState.ReviewEnabled = false
	return tea.Batch(m.spinner.Tick, submitCmd(m.controller, code, m.language, m.filename.Value(), m.includeAI))
}

func (m *model) cycleFocus() {
	m.focus++
	if m.focus > focusAI || (m.focus == focusAI && m.includeAI == nil) {
		m.focus = focusCode
	}
	if m.focus == focusCode {
		m.code.Focus()
	} else {
		m.code.Blur()
	}
	if m.focus == focusFilename {
		m.filename.Focus()
	} else {
		m.filename.Blur()
	}
}

// sync pulls the panel state the controller has written.
func (m *model) sync() {
	prev := m.panelState.View
	m.panelState = m.panel.Snapshot()
	if alert := m.panel.AckAlert(); alert != "" {
		m.alert = alert
	}
	if m.panel.TakeInputCleared() {
		m.code.Reset()
	}
	if m.panelState.View != prev {
		m.refreshReport()
	}
}

func (m *model) refreshReport() {
	if m.panelState.View == nil {
		m.reportText = ""
		m.viewport.SetContent("")
		return
	}
	m.reportText = renderReport(*m.panelState.View, m.viewport.Width)
	m.viewport.SetContent(m.reportText)
	m.viewport.GotoTop()
}

func (m *model) View() string {
	if m.initErr != nil {
		return m.styles.error.Render(fmt.Sprintf("\n  Failed to start: %v\n\n", m.initErr))
	}
	if m.app == nil {
		return fmt.Sprintf("\n  %s Starting review desk...\n\n", m.spinner.View())
	}

	header := m.styles.header.Render("REVIEW DESK  " + m.styles.inactive.Render(m.app.Client.Endpoint()))

	codeBox := m.box(focusCode).Render(m.code.View())
	form := lipgloss.JoinHorizontal(lipgloss.Center,
		m.box(focusLanguage).Render("Language: ‹ "+m.language+" ›"),
		" ",
		m.box(focusFilename).Render("Filename: "+m.filename.View()),
		" ",
		m.aiToggleView(),
	)

	sections := []string{header, codeBox, form, m.statusView()}
	if m.alert != "" {
		sections = append(sections, m.styles.alert.Render(m.alert+"  (press any key)"))
	}
	if m.panelState.ReportVisible {
		sections = append(sections, m.styles.viewport.Render(m.viewport.View()))
	}
	footer := m.styles.inactive.Render(helpText)
	if !m.panelState.ExportEnabled {
		footer = m.styles.inactive.Render(strings.Replace(helpText, "ctrl+e export • ", "", 1))
	}
	if m.notice != "" {
		footer = m.notice + "\n" + footer
	}
	sections = append(sections, m.styles.footer.Render(footer))

	return m.styles.app.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m *model) box(f focusField) lipgloss.Style {
	if m.focus == f {
		return m.styles.focused
	}
	return m.styles.blurred
}

func (m *model) aiToggleView() string {
	if m.includeAI == nil {
		return ""
	}
	mark := "[ ]"
	if *m.includeAI {
		mark = "[x]"
	}
	return m.box(focusAI).Render(mark + " AI summary")
}

func (m *model) statusView() string {
	status := m.panelState.Status
	switch {
	case status == "":
		return ""
	case status == session.StatusReviewing:
		return m.spinner.View() + " " + m.styles.command.Render(status)
	case status == session.StatusDone:
		return m.styles.success.Render(status)
	case strings.HasPrefix(status, session.ErrorPrefix), strings.HasPrefix(status, session.NetworkErrorPrefix):
		return m.styles.error.Render(status)
	default:
		return m.styles.inactive.Render(status)
	}
}

func prevLanguage(lang string) string {
	langs := core.SupportedLanguages
	for i, l := range langs {
		if l == lang {
			return langs[(i+len(langs)-1)%len(langs)]
		}
	}
	return langs[0]
}

// renderReport renders a view as Markdown and then for the terminal with
// glamour. It falls back to the plain Markdown if glamour fails.
func renderReport(v render.View, width int) string {
	var md bytes.Buffer
	if err := (&render.MarkdownWriter{}).Write(&md, v); err != nil {
		return v.Summary
	}
	if width < 20 {
		width = 20
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md.String()
	}
	out, err := r.Render(md.String())
	if err != nil {
		return md.String()
	}
	return strings.TrimSpace(out)
}
