package forecast

import (
	"fmt"
	"net/http"
)

// Client facing messages.
const (
	MsgNotNumeric   = "Latitude and longitude must be numeric (e.g. 37.77 -122.42)."
	MsgOutOfRange   = "Latitude must be −90…90 and longitude −180…180."
	MsgBadDate      = "Dates must be YYYY-MM-DD."
	MsgDateOrder    = "start_date cannot be after end_date."
	MsgNoData       = "No weather data found for the given location and date range."
	MsgEmptyDataSet = "Weather service returned empty data set."
	MsgUpstream     = "Open-Meteo error"
)

// UpstreamError reports a failed provider call. Status is the provider's
// HTTP status, or a gateway status when no usable response arrived.
type UpstreamError struct {
	Status int
	Err    error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("upstream status %d: %v", e.Status, e.Err)
	}
	return fmt.Sprintf("upstream status %d", e.Status)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// ResponseStatus is the status to answer the client with.
func (e *UpstreamError) ResponseStatus() int {
	if e.Status < http.StatusBadRequest || e.Status > 599 {
		return http.StatusBadGateway
	}
	return e.Status
}
