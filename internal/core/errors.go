package core

import (
	"errors"
	"fmt"
)

// ValidationError is returned when user input cannot be submitted at all.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ErrEmptyCode is returned when the code is blank after trimming.
var ErrEmptyCode = &ValidationError{Field: "code", Reason: "no code provided"}

// SubmissionErrorKind tells a rejected request apart from a transport failure.
type SubmissionErrorKind int

const (
	// ServerRejected means the service answered with a non-2xx status.
	ServerRejected SubmissionErrorKind = iota + 1
	// Transport means no usable answer arrived (dial, DNS, timeout, bad body).
	Transport
)

func (k SubmissionErrorKind) String() string {
	switch k {
	case ServerRejected:
		return "server_rejected"
	case Transport:
		return "transport"
	default:
		return "unknown"
	}
}

// SubmissionError describes a failed submission. Both kinds are recoverable;
// the user may simply retry.
type SubmissionError struct {
	Kind       SubmissionErrorKind
	StatusCode int
	Message    string
	Err        error
}

func (e *SubmissionError) Error() string {
	if e.Kind == ServerRejected {
		return fmt.Sprintf("reviewer rejected request (status %d): %s", e.StatusCode, e.Message)
	}
	return "reviewer unreachable: " + e.Message
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}

// AsSubmissionError classifies err. Errors that are not already a
// SubmissionError are treated as transport failures.
func AsSubmissionError(err error) *SubmissionError {
	var se *SubmissionError
	if errors.As(err, &se) {
		return se
	}
	return &SubmissionError{Kind: Transport, Message: err.Error(), Err: err}
}

// RenderWarning flags a malformed or partial part of a report. Warnings are
// informational; rendering always falls back to placeholders.
type RenderWarning struct {
	Field  string
	Reason string
}

func (w RenderWarning) String() string {
	return w.Field + ": " + w.Reason
}
