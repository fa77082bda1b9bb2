// Package request turns raw form input into a normalized review request.
package request

import (
	"strings"

	"github.com/sevigo/review-desk/internal/core"
)

// Build validates and normalizes raw input. The code is trimmed and must not
// be empty; a blank filename becomes core.DefaultFilename. The language is
// passed through untouched since the selector only offers supported values.
// A nil includeAI means the hosting UI has no AI toggle.
func Build(rawCode, rawLanguage, rawFilename string, rawIncludeAI *bool) (core.ReviewRequest, error) {
	code := strings.TrimSpace(rawCode)
	if code == "" {
		return core.ReviewRequest{}, core.ErrEmptyCode
	}

	filename := strings.TrimSpace(rawFilename)
	if filename == "" {
		filename = core.DefaultFilename
	}

	includeAI := false
	if rawIncludeAI != nil {
		includeAI = *rawIncludeAI
	}

	return core.ReviewRequest{
		Language:  rawLanguage,
		Code:      code,
		Filename:  filename,
		IncludeAI: includeAI,
	}, nil
}
