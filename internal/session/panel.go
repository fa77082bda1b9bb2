package session

import (
	"sync"

	"github.com/sevigo/review-desk/internal/render"
)

// Panel is an in-memory Surface. Hosts that redraw from state (a terminal UI,
// a page rendered per request) point the controller at a Panel and read a
// Snapshot when drawing.
type Panel struct {
	mu    sync.Mutex
	state PanelState
}

// PanelState is a copy of everything a host needs to draw.
type PanelState struct {
	Status        string
	ReviewEnabled bool
	ExportEnabled bool
	ReportVisible bool
	// View is nil while the report area is cleared.
	View *render.View
	// Alert holds an unacknowledged blocking notice.
	Alert string
	// InputCleared is set by ClearInput and reset by TakeInputCleared.
	InputCleared bool
}

// NewPanel returns a panel in its idle state: review enabled, export
// disabled, report hidden.
func NewPanel() *Panel {
	return &Panel{state: PanelState{ReviewEnabled: true}}
}

// Snapshot returns a copy of the current state.
func (p *Panel) Snapshot() PanelState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// AckAlert clears the pending notice and returns it.
func (p *Panel) AckAlert() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	msg := p.state.Alert
	p.state.Alert = ""
	return msg
}

// TakeInputCleared reports whether ClearInput was called since the last call.
func (p *Panel) TakeInputCleared() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	cleared := p.state.InputCleared
	p.state.InputCleared = false
	return cleared
}

func (p *Panel) update(fn func(*PanelState)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fn(&p.state)
}

func (p *Panel) SetStatus(text string) {
	p.update(func(s *PanelState) { s.Status = text })
}

func (p *Panel) SetReviewEnabled(enabled bool) {
	p.update(func(s *PanelState) { s.ReviewEnabled = enabled })
}

func (p *Panel) SetExportEnabled(enabled bool) {
	p.update(func(s *PanelState) { s.ExportEnabled = enabled })
}

func (p *Panel) ClearReport() {
	p.update(func(s *PanelState) { s.View = nil })
}

func (p *Panel) SetReportVisible(visible bool) {
	p.update(func(s *PanelState) { s.ReportVisible = visible })
}

func (p *Panel) ShowReport(v render.View) {
	p.update(func(s *PanelState) { s.View = &v })
}

func (p *Panel) Alert(msg string) {
	p.update(func(s *PanelState) { s.Alert = msg })
}

func (p *Panel) ClearInput() {
	p.update(func(s *PanelState) { s.InputCleared = true })
}
