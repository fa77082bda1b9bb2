// Package app holds the components every review-desk host shares: the
// configuration, the logger, the reviewer client and the project profile.
package app

import (
	"context"
	"log/slog"

	"github.com/sevigo/review-desk/internal/client"
	"github.com/sevigo/review-desk/internal/config"
	"github.com/sevigo/review-desk/internal/core"
	"github.com/sevigo/review-desk/internal/session"
)

// App holds the main application components.
type App struct {
	Cfg     *config.Config
	Logger  *slog.Logger
	Client  *client.Client
	Profile *core.Profile
}

// NewApp assembles an App from its dependencies.
func NewApp(cfg *config.Config, logger *slog.Logger, c *client.Client, profile *core.Profile) *App {
	logger.Info("initializing review desk",
		"reviewer_url", cfg.ReviewerURL,
		"timeout", cfg.RequestTimeout,
		"language", profile.Language)

	return &App{
		Cfg:     cfg,
		Logger:  logger,
		Client:  c,
		Profile: profile,
	}
}

// NewController creates a submission controller that drives surface.
func (a *App) NewController(surface session.Surface) (*session.Controller, error) {
	return session.NewController(a.Client, surface, a.Logger)
}

// IncludeAIDefault returns the initial AI toggle value for a host. It is nil
// when the toggle is hidden by configuration, which the request builder
// reads as false.
func (a *App) IncludeAIDefault() *bool {
	if !a.Cfg.AIToggle {
		return nil
	}
	return core.Ptr(a.Profile.IncludeAI)
}

// Ping checks that the reviewer service answers. Hosts log the outcome at
// startup; an unreachable reviewer is not fatal.
func (a *App) Ping(ctx context.Context) error {
	if err := a.Client.Ping(ctx); err != nil {
		a.Logger.Warn("reviewer service is not reachable", "url", a.Client.Endpoint(), "error", err)
		return err
	}
	a.Logger.Info("reviewer service is reachable", "url", a.Client.Endpoint())
	return nil
}
