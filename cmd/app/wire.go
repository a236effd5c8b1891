//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/weather-proxy/internal/bootstrap"
	"github.com/yanqian/weather-proxy/internal/domain/forecast"
	"github.com/yanqian/weather-proxy/internal/infra/config"
	"github.com/yanqian/weather-proxy/internal/infra/openmeteo"
	httpiface "github.com/yanqian/weather-proxy/internal/interface/http"
	"github.com/yanqian/weather-proxy/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideUpstreamOptions,
		provideClock,
		openmeteo.NewClient,
		forecast.NewService,
		wire.Bind(new(forecast.Upstream), new(*openmeteo.Client)),
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
