package session

import (
	"sync"

	"github.com/sevigo/review-desk/internal/core"
)

// Session is the transient state of one review session. It lives in memory
// only and is discarded with the process or page that owns it.
//
// The controller is the only writer. Readers get the last report through
// LastReport; a non-nil last report is exactly the condition under which
// export is allowed.
type Session struct {
	mu         sync.RWMutex
	lastReport *core.ReviewReport
	busy       bool
	generation uint64
}

// New returns an empty session.
func New() *Session {
	return &Session{}
}

// LastReport returns the report of the last successful submission, or nil.
func (s *Session) LastReport() *core.ReviewReport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastReport
}

// CanExport reports whether there is a report to export.
func (s *Session) CanExport() bool {
	return s.LastReport() != nil
}

// Busy reports whether a submission is in flight.
func (s *Session) Busy() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.busy
}

// begin marks a submission as in flight and drops the previous report.
// It returns false when another submission is already running.
func (s *Session) begin() (uint64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy {
		return 0, false
	}
	s.busy = true
	s.lastReport = nil
	s.generation++
	return s.generation, true
}

// complete stores report if the submission identified by gen is still
// current. A clear in the meantime makes the result stale.
func (s *Session) complete(gen uint64, report *core.ReviewReport) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		return false
	}
	s.lastReport = report
	return true
}

func (s *Session) current(gen uint64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return gen == s.generation
}

func (s *Session) end() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.busy = false
}

func (s *Session) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastReport = nil
	s.generation++
}
