package client

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/sevigo/review-desk/internal/core"
)

// reportSchema describes what the renderer knows how to display. Every field
// is optional and nulls are accepted; extra fields are allowed.
const reportSchema = `{
  "type": "object",
  "properties": {
    "filename":  {"type": ["string", "null"]},
    "language":  {"type": ["string", "null"]},
    "aiSummary": {"type": ["string", "null"]},
    "meta": {
      "type": ["object", "null"],
      "properties": {
        "lines":           {"type": ["number", "null"]},
        "complexityScore": {"type": ["number", "null"]},
        "complexity":      {"type": ["number", "null"]},
        "issueCount":      {"type": ["number", "null"]},
        "aiError":         {"type": ["string", "null"]}
      }
    },
    "issues": {
      "type": ["array", "null"],
      "items": {
        "type": "object",
        "properties": {
          "severity":   {"type": ["string", "null"]},
          "message":    {"type": ["string", "null"]},
          "ruleId":     {"type": ["string", "null"]},
          "line":       {"type": ["integer", "null"]},
          "column":     {"type": ["integer", "null"]},
          "suggestion": {"type": ["string", "null"]}
        }
      }
    }
  }
}`

var reportSchemaLoader = gojsonschema.NewStringLoader(reportSchema)

// validateReport checks a raw report body against reportSchema. Problems
// are returned as warnings, one per failing field.
func validateReport(body []byte) []core.RenderWarning {
	result, err := gojsonschema.Validate(reportSchemaLoader, gojsonschema.NewBytesLoader(body))
	if err != nil {
		return []core.RenderWarning{{Field: "(root)", Reason: err.Error()}}
	}
	if result.Valid() {
		return nil
	}
	warnings := make([]core.RenderWarning, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		warnings = append(warnings, core.RenderWarning{Field: desc.Field(), Reason: desc.Description()})
	}
	return warnings
}

// decodeReport decodes a report body. Fields that fail reportSchema are
// dropped before the typed decode and reported as warnings, so one mistyped
// field degrades to a placeholder instead of failing the review. The report
// still marshals back to body unchanged. Only a body that is not JSON at all
// is an error.
func decodeReport(body []byte) (*core.ReviewReport, error) {
	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, err
	}

	warnings := validateReport(body)
	obj, ok := doc.(map[string]any)
	if !ok {
		// Not an object: nothing in it can be displayed.
		obj = map[string]any{}
	}
	for _, w := range warnings {
		dropField(obj, w.Field)
	}

	clean, err := json.Marshal(obj)
	if err != nil {
		return nil, err
	}
	var report core.ReviewReport
	if err := json.Unmarshal(clean, &report); err != nil {
		return nil, err
	}
	report.SetSource(body)
	report.Warnings = warnings
	return &report, nil
}

// dropField removes the value at a dotted schema path such as
// "issues.0.line". Array elements are nulled so later indexes stay valid.
func dropField(doc map[string]any, path string) {
	if path == "" || path == gojsonschema.STRING_ROOT_SCHEMA_PROPERTY {
		return
	}
	parts := strings.Split(path, ".")
	var node any = doc
	for i, part := range parts {
		last := i == len(parts)-1
		switch n := node.(type) {
		case map[string]any:
			if last {
				delete(n, part)
				return
			}
			node = n[part]
		case []any:
			idx, err := strconv.Atoi(part)
			if err != nil || idx < 0 || idx >= len(n) {
				return
			}
			if last {
				n[idx] = nil
				return
			}
			node = n[idx]
		default:
			return
		}
	}
}
