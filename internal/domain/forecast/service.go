package forecast

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	apperrors "github.com/yanqian/weather-proxy/pkg/errors"
)

// Service exposes the daily and weekly forecast views.
type Service interface {
	Daily(ctx context.Context, req Request) (DailyView, error)
	Weekly(ctx context.Context, req Request) (WeeklySummary, error)
}

// Upstream performs the single provider call behind each request.
// An empty body is returned as a zero RawForecast, not as an error.
type Upstream interface {
	Fetch(ctx context.Context, q UpstreamQuery) (RawForecast, error)
}

type service struct {
	upstream Upstream
	logger   *slog.Logger
	now      Clock
}

// NewService wires up the forecast domain.
func NewService(upstream Upstream, clock Clock, logger *slog.Logger) Service {
	if clock == nil {
		clock = time.Now
	}
	return &service{
		upstream: upstream,
		logger:   logger.With("component", "forecast.service"),
		now:      clock,
	}
}

func (s *service) Daily(ctx context.Context, req Request) (DailyView, error) {
	raw, _, err := s.fetch(ctx, req, ViewDaily)
	if err != nil {
		return DailyView{}, err
	}
	if !raw.HasDaily() {
		return DailyView{}, apperrors.Wrap(apperrors.CodeNotFound, MsgNoData, nil)
	}
	return FilterDaily(raw), nil
}

func (s *service) Weekly(ctx context.Context, req Request) (WeeklySummary, error) {
	raw, dates, err := s.fetch(ctx, req, ViewWeekly)
	if err != nil {
		return WeeklySummary{}, err
	}
	if !raw.HasDaily() {
		return WeeklySummary{}, apperrors.Wrap(apperrors.CodeNotFound, MsgNoData, nil)
	}

	series, err := extractWeekly(raw.Daily)
	if err != nil {
		return WeeklySummary{}, fmt.Errorf("weekly forecast: %w", err)
	}
	if series.empty() {
		return WeeklySummary{}, apperrors.Wrap(apperrors.CodeNotFound, MsgEmptyDataSet, nil)
	}
	return summarizeWeekly(raw, series, dates), nil
}

// fetch validates the request and performs the provider call. Invalid input
// never reaches the upstream.
func (s *service) fetch(ctx context.Context, req Request, view View) (RawForecast, DateRange, error) {
	coord, err := ParseCoordinate(req.Latitude, req.Longitude)
	if err != nil {
		return RawForecast{}, DateRange{}, err
	}
	dates, err := ResolveDateRange(req.StartDate, req.EndDate, s.now())
	if err != nil {
		return RawForecast{}, DateRange{}, err
	}

	query := BuildQuery(coord, dates, view)
	raw, err := s.upstream.Fetch(ctx, query)
	if err != nil {
		s.logger.Warn("forecast upstream call failed",
			"view", view.String(),
			"latitude", query.Latitude,
			"longitude", query.Longitude,
			"error", err,
		)
		return RawForecast{}, DateRange{}, err
	}
	s.logger.Debug("forecast upstream call succeeded",
		"view", view.String(),
		"latitude", query.Latitude,
		"longitude", query.Longitude,
		"start", dates.Start,
		"end", dates.End,
		"has_daily", raw.HasDaily(),
	)
	return raw, dates, nil
}
