//go:build wireinject

package main

import (
	"checkpoint-server/internal/domain"
	"checkpoint-server/internal/infrastructure"
	"checkpoint-server/internal/interfaces"
	"checkpoint-server/internal/interfaces/httpserver/routes"

	"github.com/google/wire"
)

func CreateApplication() (*Application, error) {
	wire.Build(
		domain.ServiceProvider,
		infrastructure.InfrastructureProvider,
		routes.RouteProvider,
		interfaces.InterfacesProvider,
		wire.Struct(new(Application), "*"),
	)
	return nil, nil
}
