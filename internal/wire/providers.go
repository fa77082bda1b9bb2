package wire

import (
	"errors"
	"log/slog"

	"github.com/google/wire"

	"github.com/sevigo/review-desk/internal/app"
	"github.com/sevigo/review-desk/internal/client"
	"github.com/sevigo/review-desk/internal/config"
	"github.com/sevigo/review-desk/internal/core"
	"github.com/sevigo/review-desk/internal/logger"
	"github.com/sevigo/review-desk/internal/server"
	"github.com/sevigo/review-desk/internal/server/handler"
)

var AppSet = wire.NewSet(
	app.NewApp,
	config.LoadConfig,
	provideLoggerConfig,
	provideLogger,
	provideClient,
	provideProfile,
)

var ServerSet = wire.NewSet(
	AppSet,
	handler.NewDeskHandler,
	server.NewServer,
)

func provideLoggerConfig(cfg *config.Config) logger.Config {
	return cfg.Logging
}

func provideLogger(cfg logger.Config) (*slog.Logger, func(), error) {
	output, cleanup, err := logger.OpenOutput(cfg)
	if err != nil {
		return nil, nil, err
	}
	return logger.NewLogger(cfg, output), cleanup, nil
}

func provideClient(cfg *config.Config, log *slog.Logger) *client.Client {
	return client.New(cfg.ReviewerURL,
		client.WithTimeout(cfg.RequestTimeout),
		client.WithHealthURL(cfg.HealthURL),
		client.WithLogger(log),
	)
}

// provideProfile loads .review-desk.yml from the working directory. A missing
// file is not an error; a broken one is.
func provideProfile(log *slog.Logger) (*core.Profile, error) {
	profile, err := config.LoadProfile(".")
	if errors.Is(err, config.ErrConfigNotFound) {
		log.Debug("no project profile found, using defaults", "file", config.ProfileFile)
		return profile, nil
	}
	if err != nil {
		return nil, err
	}
	log.Debug("loaded project profile", "file", config.ProfileFile, "language", profile.Language)
	return profile, nil
}
