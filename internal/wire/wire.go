//go:build wireinject
// +build wireinject

package wire

import (
	"github.com/google/wire"

	"github.com/sevigo/review-desk/internal/app"
	"github.com/sevigo/review-desk/internal/server"
)

// InitializeApp builds the components shared by the CLI and terminal hosts.
func InitializeApp() (*app.App, func(), error) {
	wire.Build(AppSet)
	return &app.App{}, nil, nil
}

// InitializeServer builds the local web desk.
func InitializeServer() (*server.Server, func(), error) {
	wire.Build(ServerSet)
	return &server.Server{}, nil, nil
}
