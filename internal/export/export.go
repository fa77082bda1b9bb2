// Package export serializes a review report into a downloadable JSON artifact.
package export

import (
	"encoding/json"
	"fmt"

	"github.com/sevigo/review-desk/internal/core"
)

// DefaultName is used when the report does not name the reviewed file.
const DefaultName = "review.json"

const suffix = ".review.json"

// Destination receives a finished artifact. Implementations release whatever
// they opened to deliver it before returning.
type Destination interface {
	Deliver(name string, content []byte) error
}

// Name returns the artifact name for report.
func Name(report *core.ReviewReport) string {
	if report.HasFilename() {
		return *report.Filename + suffix
	}
	return DefaultName
}

// Marshal encodes report as indented JSON with a trailing newline.
func Marshal(report *core.ReviewReport) ([]byte, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode report: %w", err)
	}
	return append(data, '\n'), nil
}

// Export delivers report to dst and returns the artifact name. A nil report
// is a no-op and reports ok == false.
func Export(report *core.ReviewReport, dst Destination) (name string, ok bool, err error) {
	if report == nil {
		return "", false, nil
	}
	content, err := Marshal(report)
	if err != nil {
		return "", false, err
	}
	name = Name(report)
	if err := dst.Deliver(name, content); err != nil {
		return "", false, fmt.Errorf("failed to deliver %s: %w", name, err)
	}
	return name, true, nil
}
