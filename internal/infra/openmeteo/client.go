package openmeteo

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker"

	"github.com/yanqian/weather-proxy/internal/domain/forecast"
)

// API Docs: https://open-meteo.com/en/docs
const (
	defaultBaseURL = "https://api.open-meteo.com/v1/forecast"
	defaultTimeout = 8 * time.Second
)

// Options configures the forecast client.
type Options struct {
	BaseURL string
	Timeout time.Duration
	Breaker BreakerOptions
}

// BreakerOptions configures the optional circuit breaker around upstream calls.
type BreakerOptions struct {
	Enabled          bool
	FailureThreshold uint32
	OpenTimeout      time.Duration
	HalfOpenRequests uint32
}

// Client fetches daily forecasts from Open-Meteo.
type Client struct {
	baseURL string
	http    *resty.Client
	breaker *gobreaker.CircuitBreaker
	logger  *slog.Logger
}

// NewClient builds an API client.
func NewClient(opts Options, logger *slog.Logger) *Client {
	baseURL := strings.TrimSpace(opts.BaseURL)
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: resty.New().
			SetTimeout(timeout).
			SetHeader("Accept", "application/json"),
		logger: logger.With("component", "openmeteo.client"),
	}
	if opts.Breaker.Enabled {
		c.breaker = newBreaker(opts.Breaker, c.logger)
	}
	return c
}

func newBreaker(opts BreakerOptions, logger *slog.Logger) *gobreaker.CircuitBreaker {
	threshold := opts.FailureThreshold
	if threshold == 0 {
		threshold = 5
	}
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "openmeteo",
		MaxRequests: opts.HalfOpenRequests,
		Timeout:     opts.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		// provider 4xx answers do not count as failures
		IsSuccessful: func(err error) bool {
			var upErr *forecast.UpstreamError
			if errors.As(err, &upErr) {
				return upErr.Status < http.StatusInternalServerError
			}
			return err == nil
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed", "breaker", name, "from", from.String(), "to", to.String())
		},
	})
}

// Fetch performs one GET against the forecast endpoint. Non-2xx answers
// become *forecast.UpstreamError carrying the provider status; transport and
// decode failures use 502, an open breaker 503. An empty body yields a zero
// RawForecast.
func (c *Client) Fetch(ctx context.Context, q forecast.UpstreamQuery) (forecast.RawForecast, error) {
	if c.breaker == nil {
		return c.fetch(ctx, q)
	}

	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.fetch(ctx, q)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return forecast.RawForecast{}, &forecast.UpstreamError{Status: http.StatusServiceUnavailable, Err: err}
	}
	if err != nil {
		return forecast.RawForecast{}, err
	}
	raw, ok := result.(forecast.RawForecast)
	if !ok {
		return forecast.RawForecast{}, fmt.Errorf("unexpected result type from circuit breaker")
	}
	return raw, nil
}

func (c *Client) fetch(ctx context.Context, q forecast.UpstreamQuery) (forecast.RawForecast, error) {
	start := time.Now()
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParamsFromValues(encodeQuery(q)).
		Get(c.baseURL)
	if err != nil {
		return forecast.RawForecast{}, &forecast.UpstreamError{
			Status: http.StatusBadGateway,
			Err:    fmt.Errorf("forecast request failed: %w", err),
		}
	}

	c.logger.Debug("forecast request completed",
		"url", c.requestURL(q),
		"status", resp.StatusCode(),
		"latency_ms", time.Since(start).Milliseconds(),
	)

	if !resp.IsSuccess() {
		body := resp.Body()
		if len(body) > 4<<10 {
			body = body[:4<<10]
		}
		return forecast.RawForecast{}, &forecast.UpstreamError{
			Status: resp.StatusCode(),
			Err:    fmt.Errorf("forecast request error: body=%s", string(body)),
		}
	}

	raw, err := decodeForecast(resp.Body())
	if err != nil {
		return forecast.RawForecast{}, &forecast.UpstreamError{Status: http.StatusBadGateway, Err: err}
	}
	return raw, nil
}

func encodeQuery(q forecast.UpstreamQuery) url.Values {
	values := url.Values{}
	values.Set("latitude", formatCoordinate(q.Latitude))
	values.Set("longitude", formatCoordinate(q.Longitude))
	values.Set("daily", strings.Join(q.Daily, ","))
	values.Set("timezone", q.Timezone)
	values.Set("start_date", q.StartDate)
	values.Set("end_date", q.EndDate)
	return values
}

func formatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func (c *Client) requestURL(q forecast.UpstreamQuery) string {
	return c.baseURL + "?" + encodeQuery(q).Encode()
}

// decodeForecast treats a blank body, or any JSON value that is not an
// object ([], "", null, 0), as a forecast without data.
func decodeForecast(body []byte) (forecast.RawForecast, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return forecast.RawForecast{}, nil
	}
	var value json.RawMessage
	if err := json.Unmarshal(trimmed, &value); err != nil {
		return forecast.RawForecast{}, fmt.Errorf("decode forecast response: %w", err)
	}
	if value[0] != '{' {
		return forecast.RawForecast{}, nil
	}
	var raw forecast.RawForecast
	if err := json.Unmarshal(value, &raw); err != nil {
		return forecast.RawForecast{}, fmt.Errorf("decode forecast response: %w", err)
	}
	return raw, nil
}
