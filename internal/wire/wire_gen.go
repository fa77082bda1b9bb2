// Code generated manually. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package wire

import (
	"fmt"

	"github.com/sevigo/review-desk/internal/app"
	"github.com/sevigo/review-desk/internal/config"
	"github.com/sevigo/review-desk/internal/server"
	"github.com/sevigo/review-desk/internal/server/handler"
)

// InitializeApp builds the components shared by the CLI and terminal hosts.
func InitializeApp() (*app.App, func(), error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	loggerConfig := provideLoggerConfig(cfg)
	slogLogger, cleanup, err := provideLogger(loggerConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	reviewClient := provideClient(cfg, slogLogger)

	profile, err := provideProfile(slogLogger)
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to load project profile: %w", err)
	}

	appApp := app.NewApp(cfg, slogLogger, reviewClient, profile)
	return appApp, func() {
		cleanup()
	}, nil
}

// InitializeServer builds the local web desk.
func InitializeServer() (*server.Server, func(), error) {
	appApp, cleanup, err := InitializeApp()
	if err != nil {
		return nil, nil, err
	}

	deskHandler, err := handler.NewDeskHandler(appApp)
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to create desk handler: %w", err)
	}

	serverServer := server.NewServer(appApp.Cfg, deskHandler, appApp.Logger)
	return serverServer, func() {
		cleanup()
	}, nil
}
