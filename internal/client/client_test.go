package client

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevigo/review-desk/internal/core"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestClient_Review_Success(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/review", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]any{
			"language":  "python",
			"code":      "print(1)",
			"filename":  "app.py",
			"includeAi": true,
		}, body)

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"filename":"app.py","meta":{"lines":1,"complexityScore":1},"issues":[{"severity":"warning","message":"print() found","line":1,"ruleId":"debug/print"}]}`)
	}))
	defer srv.Close()

	c := New(srv.URL+"/api/review", WithLogger(quietLogger()))
	report, err := c.Review(context.Background(), core.ReviewRequest{
		Language: "python", Code: "print(1)", Filename: "app.py", IncludeAI: true,
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, calls.Load())
	require.Len(t, report.Issues, 1)
	assert.Equal(t, "debug/print", *report.Issues[0].RuleID)
	assert.Empty(t, report.Warnings)
}

func TestClient_Review_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{name: "error field is used", status: http.StatusBadRequest, body: `{"error":"No code provided"}`, wantMsg: "No code provided"},
		{name: "non json body falls back to status text", status: http.StatusBadGateway, body: `<html>bad gateway</html>`, wantMsg: "Bad Gateway"},
		{name: "json without error field falls back", status: http.StatusInternalServerError, body: `{"message":"boom"}`, wantMsg: "Internal Server Error"},
		{name: "empty body falls back", status: http.StatusNotFound, body: ``, wantMsg: "Not Found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				calls.Add(1)
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			c := New(srv.URL, WithLogger(quietLogger()))
			report, err := c.Review(context.Background(), core.ReviewRequest{Code: "x", Filename: "file.txt"})
			require.Error(t, err)
			assert.Nil(t, report)
			assert.EqualValues(t, 1, calls.Load(), "a rejected review must not be retried")

			se := core.AsSubmissionError(err)
			assert.Equal(t, core.ServerRejected, se.Kind)
			assert.Equal(t, tt.status, se.StatusCode)
			assert.Equal(t, tt.wantMsg, se.Message)
		})
	}
}

func TestClient_Review_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := New(url, WithLogger(quietLogger()))
	_, err := c.Review(context.Background(), core.ReviewRequest{Code: "x", Filename: "file.txt"})
	require.Error(t, err)

	se := core.AsSubmissionError(err)
	assert.Equal(t, core.Transport, se.Kind)
	assert.Contains(t, se.Message, "connect")
	assert.NotContains(t, se.Message, "Post ")
}

func TestClient_Review_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	c := New(srv.URL, WithLogger(quietLogger()), WithTimeout(50*time.Millisecond))
	start := time.Now()
	_, err := c.Review(context.Background(), core.ReviewRequest{Code: "x", Filename: "file.txt"})
	require.Error(t, err)
	assert.Less(t, time.Since(start), 5*time.Second)
	assert.Equal(t, core.Transport, core.AsSubmissionError(err).Kind)
}

func TestClient_Review_InvalidBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `not json`)
	}))
	defer srv.Close()

	c := New(srv.URL, WithLogger(quietLogger()))
	_, err := c.Review(context.Background(), core.ReviewRequest{Code: "x", Filename: "file.txt"})
	require.Error(t, err)
	se := core.AsSubmissionError(err)
	assert.Equal(t, core.Transport, se.Kind)
	assert.Contains(t, se.Message, "invalid report body")
}

func warningFields(warnings []core.RenderWarning) []string {
	fields := make([]string, 0, len(warnings))
	for _, w := range warnings {
		fields = append(fields, w.Field)
	}
	return fields
}

func TestClient_Review_SchemaWarnings(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantFields []string
		check      func(t *testing.T, r *core.ReviewReport)
	}{
		{
			name:       "string line",
			body:       `{"filename":"app.py","issues":[{"severity":"warning","message":"unused var","line":"5"}]}`,
			wantFields: []string{"issues.0.line"},
			check: func(t *testing.T, r *core.ReviewReport) {
				require.Len(t, r.Issues, 1)
				assert.Nil(t, r.Issues[0].Line)
				assert.Equal(t, "unused var", *r.Issues[0].Message)
				assert.Equal(t, "app.py", *r.Filename)
			},
		},
		{
			name:       "string meta lines",
			body:       `{"meta":{"lines":"12","issueCount":0},"issues":[]}`,
			wantFields: []string{"meta.lines"},
			check: func(t *testing.T, r *core.ReviewReport) {
				require.NotNil(t, r.Meta)
				assert.Nil(t, r.Meta.Lines)
				require.NotNil(t, r.Meta.IssueCount)
				assert.Zero(t, *r.Meta.IssueCount)
			},
		},
		{
			name:       "numeric severity and filename",
			body:       `{"issues":[{"severity":3,"message":"m"}],"filename":7,"meta":{"aiError":"quota exceeded"}}`,
			wantFields: []string{"issues.0.severity", "filename"},
			check: func(t *testing.T, r *core.ReviewReport) {
				assert.Nil(t, r.Issues[0].Severity)
				assert.Nil(t, r.Filename)
				assert.Equal(t, "quota exceeded", *r.Meta.AIError)
			},
		},
		{
			name:       "issue that is not an object",
			body:       `{"issues":["oops",{"message":"kept"}]}`,
			wantFields: []string{"issues.0"},
			check: func(t *testing.T, r *core.ReviewReport) {
				require.Len(t, r.Issues, 2)
				assert.Nil(t, r.Issues[0].Message)
				assert.Equal(t, "kept", *r.Issues[1].Message)
			},
		},
		{
			name: "integral float line",
			body: `{"issues":[{"message":"m","line":5.0}]}`,
			check: func(t *testing.T, r *core.ReviewReport) {
				require.NotNil(t, r.Issues[0].Line)
				assert.Equal(t, 5, *r.Issues[0].Line)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				_, _ = io.WriteString(w, tc.body)
			}))
			defer srv.Close()

			c := New(srv.URL, WithLogger(quietLogger()))
			report, err := c.Review(context.Background(), core.ReviewRequest{Code: "x", Filename: "file.txt"})
			require.NoError(t, err)
			require.NotNil(t, report)

			fields := warningFields(report.Warnings)
			assert.Len(t, fields, len(tc.wantFields))
			for _, f := range tc.wantFields {
				assert.Contains(t, fields, f)
			}
			tc.check(t, report)

			// Export still reproduces what the service sent.
			out, err := json.Marshal(report)
			require.NoError(t, err)
			assert.JSONEq(t, tc.body, string(out))
		})
	}
}

func TestClient_Review_NonObjectBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `[1,2]`)
	}))
	defer srv.Close()

	c := New(srv.URL, WithLogger(quietLogger()))
	report, err := c.Review(context.Background(), core.ReviewRequest{Code: "x", Filename: "file.txt"})
	require.NoError(t, err)
	assert.Empty(t, report.Issues)
	assert.Contains(t, warningFields(report.Warnings), "(root)")
}

func TestDropField(t *testing.T) {
	doc := map[string]any{
		"filename": "a.go",
		"issues":   []any{map[string]any{"line": "5", "message": "m"}},
		"meta":     map[string]any{"lines": "x"},
	}
	dropField(doc, "issues.0.line")
	dropField(doc, "meta.lines")
	dropField(doc, "issues.9.line")
	dropField(doc, "(root)")

	assert.Equal(t, map[string]any{
		"filename": "a.go",
		"issues":   []any{map[string]any{"message": "m"}},
		"meta":     map[string]any{},
	}, doc)
}

func TestValidateReport_AcceptsSparseReports(t *testing.T) {
	assert.Empty(t, validateReport([]byte(`{}`)))
	assert.Empty(t, validateReport([]byte(`{"issues":[],"meta":null,"aiSummary":null,"extra":true}`)))
	assert.Empty(t, validateReport([]byte(`{"issues":[{}],"meta":{"complexity":2.5}}`)))
}

func TestClient_Ping(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		if calls.Add(1) < 2 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = io.WriteString(w, "OK")
	}))
	defer srv.Close()

	c := New(srv.URL+"/api/review", WithLogger(quietLogger()), WithPingRetry(3, time.Millisecond))
	require.NoError(t, c.Ping(context.Background()))
	assert.EqualValues(t, 2, calls.Load())
}

func TestDeriveHealthURL(t *testing.T) {
	assert.Equal(t, "http://localhost:8080/health", deriveHealthURL("http://localhost:8080/api/review"))
	assert.Equal(t, "not a url", deriveHealthURL("not a url"))
}
