// Package client talks to the remote reviewer service.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/felixgeelhaar/fortify/retry"
	"github.com/felixgeelhaar/fortify/timeout"
	"github.com/google/uuid"

	"github.com/sevigo/review-desk/internal/core"
)

const (
	defaultTimeout = 60 * time.Second
	maxErrorBody   = 64 << 10
)

// Client posts review requests to the reviewer service. It satisfies
// core.Reviewer.
type Client struct {
	endpoint  string
	healthURL string
	http      *http.Client
	timeout   time.Duration
	retryCfg  retry.Config
	logger    *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTimeout bounds a single review request. Zero keeps the default.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithHealthURL overrides the health endpoint derived from the review endpoint.
func WithHealthURL(u string) Option {
	return func(c *Client) { c.healthURL = u }
}

// WithPingRetry sets how many times Ping tries before giving up.
func WithPingRetry(attempts int, initialDelay time.Duration) Option {
	return func(c *Client) {
		c.retryCfg.MaxAttempts = attempts
		c.retryCfg.InitialDelay = initialDelay
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// New creates a client for the given review endpoint.
func New(endpoint string, opts ...Option) *Client {
	c := &Client{
		endpoint: endpoint,
		http:     &http.Client{},
		timeout:  defaultTimeout,
		retryCfg: retry.Config{
			MaxAttempts:   3,
			InitialDelay:  500 * time.Millisecond,
			BackoffPolicy: retry.BackoffExponential,
		},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.healthURL == "" {
		c.healthURL = deriveHealthURL(endpoint)
	}
	return c
}

// Endpoint returns the configured review endpoint.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Review submits req and decodes the report. Exactly one HTTP request is made;
// the call is bounded by the configured timeout and by ctx.
func (c *Client) Review(ctx context.Context, req core.ReviewRequest) (*core.ReviewReport, error) {
	requestID := uuid.New().String()
	logger := c.logger.With("request_id", requestID, "filename", req.Filename, "language", req.Language)

	t := timeout.New[*core.ReviewReport](timeout.Config{DefaultTimeout: c.timeout})
	start := time.Now()
	report, err := t.Execute(ctx, c.timeout, func(ctx context.Context) (*core.ReviewReport, error) {
		return c.post(ctx, requestID, req)
	})
	if err != nil {
		se := core.AsSubmissionError(err)
		logger.Warn("review request failed", "kind", se.Kind, "status", se.StatusCode, "error", se.Message)
		return nil, se
	}

	logger.Info("review received",
		"issues", len(report.Issues),
		"warnings", len(report.Warnings),
		"elapsed", time.Since(start).Round(time.Millisecond))
	for _, w := range report.Warnings {
		logger.Debug("report does not match schema", "field", w.Field, "reason", w.Reason)
	}
	return report, nil
}

func (c *Client) post(ctx context.Context, requestID string, req core.ReviewRequest) (*core.ReviewReport, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode review request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, &core.SubmissionError{Kind: core.Transport, Message: err.Error(), Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("X-Request-ID", requestID)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, &core.SubmissionError{Kind: core.Transport, Message: transportMessage(err), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &core.SubmissionError{
			Kind:       core.ServerRejected,
			StatusCode: resp.StatusCode,
			Message:    rejectionMessage(resp, body),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &core.SubmissionError{Kind: core.Transport, Message: err.Error(), Err: err}
	}

	report, err := decodeReport(body)
	if err != nil {
		return nil, &core.SubmissionError{
			Kind:    core.Transport,
			Message: "invalid report body: " + err.Error(),
			Err:     err,
		}
	}
	return report, nil
}

// Ping checks that the reviewer service answers its health endpoint, retrying
// with exponential backoff. Any answer below 500 counts as reachable since the
// service is not required to implement the health route.
func (c *Client) Ping(ctx context.Context) error {
	r := retry.New[int](c.retryCfg)
	_, err := r.Do(ctx, func(ctx context.Context) (int, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.healthURL, nil)
		if err != nil {
			return 0, err
		}
		resp, err := c.http.Do(req)
		if err != nil {
			return 0, err
		}
		defer resp.Body.Close()
		_, _ = io.Copy(io.Discard, resp.Body)
		if resp.StatusCode >= 500 {
			return resp.StatusCode, fmt.Errorf("health check returned %s", resp.Status)
		}
		return resp.StatusCode, nil
	})
	if err != nil {
		return fmt.Errorf("reviewer at %s is not reachable: %w", c.healthURL, err)
	}
	return nil
}

type errorBody struct {
	Error string `json:"error"`
}

// rejectionMessage prefers the "error" field of a JSON body and falls back to
// the HTTP status text.
func rejectionMessage(resp *http.Response, body []byte) string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil && eb.Error != "" {
		return eb.Error
	}
	if text := http.StatusText(resp.StatusCode); text != "" {
		return text
	}
	return strings.TrimSpace(strings.TrimPrefix(resp.Status, fmt.Sprint(resp.StatusCode)))
}

// transportMessage strips the method and URL that net/http prepends, leaving
// the underlying cause.
func transportMessage(err error) string {
	var ue *url.Error
	if errors.As(err, &ue) {
		return ue.Err.Error()
	}
	return err.Error()
}

func deriveHealthURL(endpoint string) string {
	u, err := url.Parse(endpoint)
	if err != nil || u.Host == "" {
		return endpoint
	}
	return u.Scheme + "://" + u.Host + "/health"
}
