package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/weather-proxy/internal/infra/config"
)

func TestProvideUpstreamOptions(t *testing.T) {
	cfg := &config.Config{
		Upstream: config.UpstreamConfig{
			BaseURL: "http://meteo.local/v1/forecast",
			Timeout: 3 * time.Second,
			CircuitBreaker: config.CircuitBreakerConfig{
				Enabled:          true,
				FailureThreshold: 4,
				OpenTimeout:      time.Minute,
				HalfOpenRequests: 2,
			},
		},
	}

	opts := provideUpstreamOptions(cfg)
	require.Equal(t, "http://meteo.local/v1/forecast", opts.BaseURL)
	require.Equal(t, 3*time.Second, opts.Timeout)
	require.True(t, opts.Breaker.Enabled)
	require.EqualValues(t, 4, opts.Breaker.FailureThreshold)
	require.Equal(t, time.Minute, opts.Breaker.OpenTimeout)
	require.EqualValues(t, 2, opts.Breaker.HalfOpenRequests)
}

func TestProvideClock(t *testing.T) {
	clock := provideClock()
	require.WithinDuration(t, time.Now(), clock(), time.Second)
}
