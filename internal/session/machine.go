package session

import (
	"fmt"
	"sync"

	"github.com/felixgeelhaar/statekit"
)

// Session states. Untyped so they convert to statekit.StateID.
const (
	StateIdle       = "idle"
	StateSubmitting = "submitting"
	StateSuccess    = "success"
	StateFailed     = "failed"
)

// Events accepted by the session machine.
const (
	EventSubmit  = "submit"
	EventSucceed = "succeed"
	EventFail    = "fail"
	EventClear   = "clear"
)

type machineContext struct{}

// machine tracks the submission lifecycle:
// idle → submitting → {success, failed}, and back to idle on clear.
type machine struct {
	mu          sync.Mutex
	interpreter *statekit.Interpreter[machineContext]
}

func newMachine() (*machine, error) {
	builder := statekit.NewMachine[machineContext]("review-session").
		WithInitial(statekit.StateID(StateIdle)).
		WithContext(machineContext{})

	builder.State(StateIdle).
		On(EventSubmit).Target(StateSubmitting).
		Done()

	builder.State(StateSubmitting).
		On(EventSucceed).Target(StateSuccess).
		On(EventFail).Target(StateFailed).
		On(EventClear).Target(StateIdle).
		Done()

	builder.State(StateSuccess).
		On(EventSubmit).Target(StateSubmitting).
		On(EventClear).Target(StateIdle).
		Done()

	builder.State(StateFailed).
		On(EventSubmit).Target(StateSubmitting).
		On(EventClear).Target(StateIdle).
		Done()

	m, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build session state machine: %w", err)
	}

	interpreter := statekit.NewInterpreter(m)
	interpreter.Start()
	return &machine{interpreter: interpreter}, nil
}

// send delivers event and reports whether the state changed.
func (m *machine) send(event string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	before := m.interpreter.State().Value
	m.interpreter.Send(statekit.Event{Type: statekit.EventType(event)})
	return m.interpreter.State().Value != before
}

func (m *machine) current() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return string(m.interpreter.State().Value)
}
