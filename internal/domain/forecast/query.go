package forecast

// Daily variables requested from the provider.
const (
	FieldTime             = "time"
	FieldSunshineDuration = "sunshine_duration"
	FieldTemperatureMax   = "temperature_2m_max"
	FieldTemperatureMin   = "temperature_2m_min"
	FieldWeatherCode      = "weather_code"
	FieldPressureMean     = "pressure_msl_mean"
)

// timezoneAuto lets the provider resolve the local timezone from the coordinate.
const timezoneAuto = "auto"

// BuildQuery describes the provider call for a validated request. The weekly
// view additionally asks for mean sea level pressure.
func BuildQuery(coord Coordinate, dates DateRange, view View) UpstreamQuery {
	fields := []string{
		FieldSunshineDuration,
		FieldTemperatureMax,
		FieldTemperatureMin,
		FieldWeatherCode,
	}
	if view == ViewWeekly {
		fields = append(fields, FieldPressureMean)
	}

	return UpstreamQuery{
		Latitude:  coord.Latitude,
		Longitude: coord.Longitude,
		Daily:     fields,
		Timezone:  timezoneAuto,
		StartDate: dates.Start,
		EndDate:   dates.End,
	}
}
