package main

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevigo/review-desk/internal/app"
	"github.com/sevigo/review-desk/internal/client"
	"github.com/sevigo/review-desk/internal/config"
	"github.com/sevigo/review-desk/internal/core"
	"github.com/sevigo/review-desk/internal/session"
)

func newTestModel(t *testing.T, aiToggle bool) (*model, *int) {
	t.Helper()
	calls := new(int)
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		*calls++
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"meta":{"lines":1},"issues":[{"severity":"warning","message":"unused var","line":5}],"filename":"app.py"}`)
	}))
	t.Cleanup(upstream.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	a := &app.App{
		Cfg:     &config.Config{ReviewerURL: upstream.URL, RequestTimeout: 5 * time.Second, AIToggle: aiToggle, ExportDir: t.TempDir()},
		Logger:  logger,
		Client:  client.New(upstream.URL, client.WithLogger(logger)),
		Profile: &core.Profile{Language: "python", Filename: "app.py"},
	}
	m := initialModel(ThemeCyan)
	require.NoError(t, m.attach(a))
	return m, calls
}

func TestModel_Attach(t *testing.T) {
	m, _ := newTestModel(t, true)
	assert.Equal(t, "python", m.language)
	assert.Equal(t, "app.py", m.filename.Value())
	require.NotNil(t, m.includeAI)
	assert.False(t, *m.includeAI)
	assert.True(t, m.panelState.ReviewEnabled)
	assert.False(t, m.panelState.ExportEnabled)
}

func TestModel_EmptyCodeRaisesNotice(t *testing.T) {
	m, calls := newTestModel(t, true)
	m.code.SetValue("   ")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	assert.Nil(t, cmd)
	assert.Equal(t, session.EmptyCodeNotice, m.alert)
	assert.Equal(t, "", m.panelState.Status)
	assert.Equal(t, 0, *calls)

	// Any key acknowledges the notice.
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	assert.Empty(t, m.alert)
}

func TestModel_SubmitExportAndClear(t *testing.T) {
	m, calls := newTestModel(t, true)
	m.code.SetValue("x = 1")

	cmd := m.submit()
	require.NotNil(t, cmd)
	assert.False(t, m.panelState.ReviewEnabled)

	msg := submitCmd(m.controller, m.code.Value(), m.language, m.filename.Value(), m.includeAI)()
	m.Update(msg)

	assert.Equal(t, 1, *calls)
	assert.Equal(t, session.StatusDone, m.panelState.Status)
	assert.True(t, m.panelState.ReportVisible)
	assert.True(t, m.panelState.ExportEnabled)
	assert.True(t, m.panelState.ReviewEnabled)
	assert.Contains(t, m.reportText, "unused")

	done := exportCmd(m.controller, m.app.Cfg.ExportDir)().(exportDoneMsg)
	require.NoError(t, done.err)
	assert.True(t, done.ok)
	assert.FileExists(t, done.path)

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlL})
	assert.Equal(t, "", m.code.Value())
	assert.Equal(t, "", m.panelState.Status)
	assert.False(t, m.panelState.ReportVisible)
	assert.False(t, m.panelState.ExportEnabled)
	assert.Empty(t, m.reportText)
	assert.Nil(t, m.controller.Session().LastReport())
}

func TestModel_FocusSkipsHiddenAIToggle(t *testing.T) {
	m, _ := newTestModel(t, false)
	assert.Nil(t, m.includeAI)

	seen := []focusField{m.focus}
	for range 3 {
		m.cycleFocus()
		seen = append(seen, m.focus)
	}
	assert.Equal(t, []focusField{focusCode, focusLanguage, focusFilename, focusCode}, seen)
}

func TestModel_LanguageSelector(t *testing.T) {
	m, _ := newTestModel(t, true)
	m.cycleFocus()
	require.Equal(t, focusLanguage, m.focus)

	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, "go", m.language)
	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, "javascript", m.language)
}

func TestParseTheme(t *testing.T) {
	theme, ok := ParseTheme(" Dracula ")
	assert.True(t, ok)
	assert.Equal(t, ThemeDracula, theme)

	_, ok = ParseTheme("neon")
	assert.False(t, ok)
}

func TestPrevLanguage(t *testing.T) {
	assert.Equal(t, "other", prevLanguage("java"))
	assert.Equal(t, "java", prevLanguage("javascript"))
	assert.Equal(t, "java", prevLanguage("cobol"))
}
