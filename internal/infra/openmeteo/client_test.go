package openmeteo

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/weather-proxy/internal/domain/forecast"
)

func testQuery() forecast.UpstreamQuery {
	return forecast.BuildQuery(
		forecast.Coordinate{Latitude: 37.77, Longitude: -122.42},
		forecast.DateRange{Start: "2025-06-01", End: "2025-06-08"},
		forecast.ViewWeekly,
	)
}

func TestFetchSendsQueryAndDecodes(t *testing.T) {
	var got *http.Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(context.Background())
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"latitude":37.763283,"longitude":-122.41286,"daily_units":{"weather_code":"wmo code"},"daily":{"time":["2025-06-01"],"weather_code":[3]}}`))
	}))
	defer server.Close()

	client := NewClient(Options{BaseURL: server.URL + "/v1/forecast/"}, newTestLogger())
	raw, err := client.Fetch(context.Background(), testQuery())
	require.NoError(t, err)

	require.NotNil(t, got)
	q := got.URL.Query()
	require.Equal(t, http.MethodGet, got.Method)
	require.Equal(t, "/v1/forecast", got.URL.Path)
	require.Equal(t, "application/json", got.Header.Get("Accept"))
	require.Equal(t, "37.77", q.Get("latitude"))
	require.Equal(t, "-122.42", q.Get("longitude"))
	require.Equal(t, "sunshine_duration,temperature_2m_max,temperature_2m_min,weather_code,pressure_msl_mean", q.Get("daily"))
	require.Equal(t, "auto", q.Get("timezone"))
	require.Equal(t, "2025-06-01", q.Get("start_date"))
	require.Equal(t, "2025-06-08", q.Get("end_date"))

	require.True(t, raw.HasDaily())
	require.Equal(t, 37.763283, *raw.Latitude)
	require.Equal(t, "wmo code", raw.DailyUnits["weather_code"])
	require.JSONEq(t, `[3]`, string(raw.Daily["weather_code"]))
}

func TestFetchPassesUpstreamStatusThrough(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":true,"reason":"Parameter 'start_date' is out of allowed range"}`))
	}))
	defer server.Close()

	client := NewClient(Options{BaseURL: server.URL}, newTestLogger())
	_, err := client.Fetch(context.Background(), testQuery())

	var upErr *forecast.UpstreamError
	require.True(t, errors.As(err, &upErr))
	require.Equal(t, http.StatusBadRequest, upErr.Status)
	require.Contains(t, upErr.Error(), "out of allowed range")
}

func TestFetchEmptyBodyIsNotAnError(t *testing.T) {
	for _, body := range []string{"", "null", "{}", "  \n", "[]", `""`, "0", "false"} {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(body))
		}))

		client := NewClient(Options{BaseURL: server.URL}, newTestLogger())
		raw, err := client.Fetch(context.Background(), testQuery())
		require.NoError(t, err, body)
		require.False(t, raw.HasDaily(), body)
		server.Close()
	}
}

func TestFetchMalformedBodyIsBadGateway(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>oops</html>`))
	}))
	defer server.Close()

	client := NewClient(Options{BaseURL: server.URL}, newTestLogger())
	_, err := client.Fetch(context.Background(), testQuery())

	var upErr *forecast.UpstreamError
	require.True(t, errors.As(err, &upErr))
	require.Equal(t, http.StatusBadGateway, upErr.Status)
}

func TestFetchTimeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	client := NewClient(Options{BaseURL: server.URL, Timeout: 50 * time.Millisecond}, newTestLogger())
	_, err := client.Fetch(context.Background(), testQuery())

	var upErr *forecast.UpstreamError
	require.True(t, errors.As(err, &upErr))
	require.Equal(t, http.StatusBadGateway, upErr.Status)
}

func TestBreakerOpensOnServerErrorsOnly(t *testing.T) {
	var (
		hits   atomic.Int32
		status atomic.Int32
	)
	status.Store(http.StatusNotFound)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(int(status.Load()))
	}))
	defer server.Close()

	client := NewClient(Options{
		BaseURL: server.URL,
		Breaker: BreakerOptions{Enabled: true, FailureThreshold: 2, OpenTimeout: time.Minute, HalfOpenRequests: 1},
	}, newTestLogger())

	for i := 0; i < 3; i++ {
		_, err := client.Fetch(context.Background(), testQuery())
		var upErr *forecast.UpstreamError
		require.True(t, errors.As(err, &upErr))
		require.Equal(t, http.StatusNotFound, upErr.Status)
	}

	status.Store(http.StatusInternalServerError)
	for i := 0; i < 2; i++ {
		_, err := client.Fetch(context.Background(), testQuery())
		var upErr *forecast.UpstreamError
		require.True(t, errors.As(err, &upErr))
		require.Equal(t, http.StatusInternalServerError, upErr.Status)
	}
	require.Equal(t, int32(5), hits.Load())

	_, err := client.Fetch(context.Background(), testQuery())
	var upErr *forecast.UpstreamError
	require.True(t, errors.As(err, &upErr))
	require.Equal(t, http.StatusServiceUnavailable, upErr.Status)
	require.Equal(t, int32(5), hits.Load())
}

func TestRequestURL(t *testing.T) {
	client := NewClient(Options{BaseURL: "https://api.open-meteo.com/v1/forecast/"}, newTestLogger())
	got := client.requestURL(testQuery())
	require.Equal(t, "https://api.open-meteo.com/v1/forecast?daily=sunshine_duration%2Ctemperature_2m_max%2Ctemperature_2m_min%2Cweather_code%2Cpressure_msl_mean&end_date=2025-06-08&latitude=37.77&longitude=-122.42&start_date=2025-06-01&timezone=auto", got)
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
