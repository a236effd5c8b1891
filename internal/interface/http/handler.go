package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/weather-proxy/internal/domain/forecast"
	apperrors "github.com/yanqian/weather-proxy/pkg/errors"
)

// Handler wires the HTTP transport to domain services.
type Handler struct {
	forecastSvc forecast.Service
	logger      *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(forecastSvc forecast.Service, logger *slog.Logger) *Handler {
	return &Handler{
		forecastSvc: forecastSvc,
		logger:      logger.With("component", "http.handler"),
	}
}

// forecastURI binds both the short and the dated route variants.
type forecastURI struct {
	Latitude  string `uri:"lat" binding:"required"`
	Longitude string `uri:"lon" binding:"required"`
	StartDate string `uri:"start"`
	EndDate   string `uri:"end"`
}

func (u forecastURI) toRequest() forecast.Request {
	return forecast.Request{
		Latitude:  u.Latitude,
		Longitude: u.Longitude,
		StartDate: u.StartDate,
		EndDate:   u.EndDate,
	}
}

// DailyForecast returns the filtered per-day forecast arrays.
func (h *Handler) DailyForecast(c *gin.Context) {
	var uri forecastURI
	if err := c.ShouldBindUri(&uri); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", forecast.MsgNotNumeric, err))
		return
	}

	resp, err := h.forecastSvc.Daily(c.Request.Context(), uri.toRequest())
	if err != nil {
		abortWithError(c, forecastHTTPError(err))
		return
	}

	c.JSON(http.StatusOK, resp)
}

// WeeklySummary returns aggregate statistics over the requested range.
func (h *Handler) WeeklySummary(c *gin.Context) {
	var uri forecastURI
	if err := c.ShouldBindUri(&uri); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", forecast.MsgNotNumeric, err))
		return
	}

	resp, err := h.forecastSvc.Weekly(c.Request.Context(), uri.toRequest())
	if err != nil {
		abortWithError(c, forecastHTTPError(err))
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func forecastHTTPError(err error) *HTTPError {
	var upErr *forecast.UpstreamError
	switch {
	case errors.As(err, &upErr):
		return NewHTTPError(upErr.ResponseStatus(), "upstream_error", forecast.MsgUpstream, err)
	case apperrors.IsCode(err, apperrors.CodeInvalidInput):
		return NewHTTPError(http.StatusBadRequest, "invalid_request", apperrors.MessageOf(err), err)
	case apperrors.IsCode(err, apperrors.CodeNotFound):
		return NewHTTPError(http.StatusNotFound, "not_found", apperrors.MessageOf(err), err)
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal_error", "something went wrong", err)
	}
}
