package main

import (
	"time"

	"github.com/yanqian/weather-proxy/internal/domain/forecast"
	"github.com/yanqian/weather-proxy/internal/infra/config"
	"github.com/yanqian/weather-proxy/internal/infra/openmeteo"
)

func provideUpstreamOptions(cfg *config.Config) openmeteo.Options {
	cb := cfg.Upstream.CircuitBreaker
	return openmeteo.Options{
		BaseURL: cfg.Upstream.BaseURL,
		Timeout: cfg.Upstream.Timeout,
		Breaker: openmeteo.BreakerOptions{
			Enabled:          cb.Enabled,
			FailureThreshold: cb.FailureThreshold,
			OpenTimeout:      cb.OpenTimeout,
			HalfOpenRequests: cb.HalfOpenRequests,
		},
	}
}

func provideClock() forecast.Clock {
	return time.Now
}
