package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevigo/review-desk/internal/client"
	"github.com/sevigo/review-desk/internal/config"
	"github.com/sevigo/review-desk/internal/core"
	"github.com/sevigo/review-desk/internal/session"
)

func newTestApp(t *testing.T, aiToggle bool) *App {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(ts.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{ReviewerURL: ts.URL + "/api/review", AIToggle: aiToggle}
	profile := &core.Profile{Language: "go", IncludeAI: true}
	return NewApp(cfg, logger, client.New(cfg.ReviewerURL, client.WithLogger(logger)), profile)
}

func TestIncludeAIDefault(t *testing.T) {
	shown := newTestApp(t, true)
	require.NotNil(t, shown.IncludeAIDefault())
	assert.True(t, *shown.IncludeAIDefault())

	hidden := newTestApp(t, false)
	assert.Nil(t, hidden.IncludeAIDefault())
}

func TestNewController(t *testing.T) {
	a := newTestApp(t, true)
	c, err := a.NewController(session.NewPanel())
	require.NoError(t, err)
	assert.False(t, c.Session().CanExport())
}

func TestPing(t *testing.T) {
	a := newTestApp(t, true)
	assert.NoError(t, a.Ping(context.Background()))
}
