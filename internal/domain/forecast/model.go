package forecast

import (
	"encoding/json"
	"time"
)

// View selects which projection of the upstream forecast a request produces.
type View int

const (
	// ViewDaily returns the filtered per-day arrays.
	ViewDaily View = iota
	// ViewWeekly returns scalar statistics over the date range.
	ViewWeekly
)

func (v View) String() string {
	if v == ViewWeekly {
		return "weekly"
	}
	return "daily"
}

// Clock returns the current time; injected so default dates are deterministic in tests.
type Clock func() time.Time

// Request carries the raw path parameters accepted by both endpoints.
// StartDate and EndDate are optional.
type Request struct {
	Latitude  string
	Longitude string
	StartDate string
	EndDate   string
}

// Coordinate is a validated location, already rounded to 2 decimals.
type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// DateRange holds the resolved YYYY-MM-DD bounds of a query.
type DateRange struct {
	Start string
	End   string
}

// UpstreamQuery is the provider agnostic description of one forecast call.
type UpstreamQuery struct {
	Latitude  float64
	Longitude float64
	Daily     []string
	Timezone  string
	StartDate string
	EndDate   string
}

// RawForecast mirrors the parts of the provider body the views read.
// Daily is nil when the body carried no daily object.
type RawForecast struct {
	Latitude   *float64                   `json:"latitude"`
	Longitude  *float64                   `json:"longitude"`
	Daily      map[string]json.RawMessage `json:"daily"`
	DailyUnits map[string]string          `json:"daily_units"`
}

// HasDaily reports whether the provider returned a daily object at all.
func (r RawForecast) HasDaily() bool {
	return r.Daily != nil
}

// DailyView is the response of the daily endpoint.
type DailyView struct {
	Daily      DailySeries `json:"daily"`
	DailyUnits DailyUnits  `json:"daily_units"`
}

// DailySeries passes the provider arrays through untouched.
type DailySeries struct {
	Time             json.RawMessage `json:"time"`
	SunshineDuration json.RawMessage `json:"sunshine_duration"`
	TemperatureMax   json.RawMessage `json:"temperature_2m_max"`
	TemperatureMin   json.RawMessage `json:"temperature_2m_min"`
	WeatherCode      json.RawMessage `json:"weather_code"`
}

// DailyUnits lists the unit strings matching DailySeries.
type DailyUnits struct {
	SunshineDuration string `json:"sunshine_duration"`
	TemperatureMax   string `json:"temperature_2m_max"`
	TemperatureMin   string `json:"temperature_2m_min"`
}

// WeeklySummary is the response of the weekly endpoint. Nil statistics
// serialize as null and mean the underlying array was empty.
type WeeklySummary struct {
	AvgPressureHPa          *float64 `json:"avg_pressure_hPa"`
	WeeklyMaxTemp           *float64 `json:"weekly_max_temp"`
	WeeklyMinTemp           *float64 `json:"weekly_min_temp"`
	AvgSunshineHours        *float64 `json:"avg_sunshine_hours"`
	MostFrequentWeatherCode *float64 `json:"most_frequent_weather_code"`
	Latitude                *float64 `json:"latitude"`
	Longitude               *float64 `json:"longitude"`
	StartDate               string   `json:"start_date"`
	EndDate                 string   `json:"end_date"`
}
