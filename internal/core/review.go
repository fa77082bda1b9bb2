// Package core defines the data model and the contracts shared by the request
// builder, the submission controller, the renderer and the export path. The
// reviewer service is treated as an opaque collaborator: everything it returns
// is optional and must be tolerated when absent.
package core

import "encoding/json"

// DefaultFilename is used when the caller leaves the filename blank.
const DefaultFilename = "file.txt"

// ReviewRequest is the payload submitted to the reviewer service. A request is
// built fresh for every submission and never mutated afterwards.
type ReviewRequest struct {
	Language  string `json:"language"`
	Code      string `json:"code"`
	Filename  string `json:"filename"`
	IncludeAI bool   `json:"includeAi"`
}

// ReviewReport is the report returned by the reviewer service.
//
// A report decoded from JSON remembers the exact document it was decoded from
// and marshals back to it, so an exported report is the report that was
// received, including fields this package does not model.
type ReviewReport struct {
	Meta      *Meta   `json:"meta,omitempty"`
	Issues    []Issue `json:"issues,omitempty"`
	AISummary *string `json:"aiSummary,omitempty"`
	Filename  *string `json:"filename,omitempty"`
	Language  *string `json:"language,omitempty"`

	// Warnings collected while decoding the report. Never serialized.
	Warnings []RenderWarning `json:"-"`

	raw json.RawMessage
}

// Meta carries the report metadata. The service may send either
// complexityScore or the older complexity key.
type Meta struct {
	Lines           *float64 `json:"lines,omitempty"`
	ComplexityScore *float64 `json:"complexityScore,omitempty"`
	Complexity      *float64 `json:"complexity,omitempty"`
	IssueCount      *float64 `json:"issueCount,omitempty"`
	AIError         *string  `json:"aiError,omitempty"`
}

// Issue is a single finding. Issues are kept in the order received.
type Issue struct {
	Severity   *string `json:"severity,omitempty"`
	Message    *string `json:"message,omitempty"`
	RuleID     *string `json:"ruleId,omitempty"`
	Line       *int    `json:"line,omitempty"`
	Column     *int    `json:"column,omitempty"`
	Suggestion *string `json:"suggestion,omitempty"`
}

type plainReport ReviewReport

// UnmarshalJSON decodes the report and keeps a copy of the source document.
func (r *ReviewReport) UnmarshalJSON(data []byte) error {
	var p plainReport
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*r = ReviewReport(p)
	r.raw = append(json.RawMessage(nil), data...)
	return nil
}

// MarshalJSON returns the document the report was decoded from, or the
// encoded fields when the report was built in code.
func (r ReviewReport) MarshalJSON() ([]byte, error) {
	if len(r.raw) > 0 {
		return r.raw, nil
	}
	return json.Marshal(plainReport(r))
}

// SetSource replaces the document the report marshals back to.
func (r *ReviewReport) SetSource(raw []byte) {
	r.raw = append(json.RawMessage(nil), raw...)
}

// HasFilename reports whether the report names the reviewed file.
func (r *ReviewReport) HasFilename() bool {
	return r != nil && r.Filename != nil && *r.Filename != ""
}

// Ptr returns a pointer to v. Handy for building optional report fields.
func Ptr[T any](v T) *T {
	return &v
}
