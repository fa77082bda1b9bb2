package core

import "context"

// Reviewer submits a request to the reviewer service and returns its report.
// Implementations issue exactly one request per call and report failures as
// *SubmissionError.
type Reviewer interface {
	Review(ctx context.Context, req ReviewRequest) (*ReviewReport, error)
}

// Profile holds per-project defaults read from .review-desk.yml.
type Profile struct {
	// Language preselected in the language selector.
	Language string `yaml:"language"`

	// Filename sent when none is given on the command line.
	Filename string `yaml:"filename"`

	// IncludeAI sets the initial state of the AI toggle.
	IncludeAI bool `yaml:"include_ai"`
}

// DefaultProfile returns a profile with default values.
func DefaultProfile() *Profile {
	return &Profile{
		Language: SupportedLanguages[0],
	}
}
