package forecast

import (
	"bytes"
	"encoding/json"
	"fmt"
)

var emptyArray = json.RawMessage("[]")

// FilterDaily projects the raw body onto the daily view. Arrays are copied
// verbatim and default to [], units default to "". Pressure is never included.
func FilterDaily(raw RawForecast) DailyView {
	return DailyView{
		Daily: DailySeries{
			Time:             arrayOrEmpty(raw.Daily, FieldTime),
			SunshineDuration: arrayOrEmpty(raw.Daily, FieldSunshineDuration),
			TemperatureMax:   arrayOrEmpty(raw.Daily, FieldTemperatureMax),
			TemperatureMin:   arrayOrEmpty(raw.Daily, FieldTemperatureMin),
			WeatherCode:      arrayOrEmpty(raw.Daily, FieldWeatherCode),
		},
		DailyUnits: DailyUnits{
			SunshineDuration: raw.DailyUnits[FieldSunshineDuration],
			TemperatureMax:   raw.DailyUnits[FieldTemperatureMax],
			TemperatureMin:   raw.DailyUnits[FieldTemperatureMin],
		},
	}
}

func arrayOrEmpty(daily map[string]json.RawMessage, field string) json.RawMessage {
	value, ok := daily[field]
	if !ok || len(bytes.TrimSpace(value)) == 0 {
		return emptyArray
	}
	return value
}

// weeklySeries holds the arrays the weekly statistics are computed from.
// Entries are nil where the provider reported null.
type weeklySeries struct {
	Time     []string
	Pressure []*float64
	TempMax  []*float64
	TempMin  []*float64
	Sunshine []*float64
	Codes    []*float64
}

func (s weeklySeries) empty() bool {
	return len(s.Pressure) == 0 &&
		len(s.TempMax) == 0 &&
		len(s.TempMin) == 0 &&
		len(s.Sunshine) == 0 &&
		len(s.Codes) == 0
}

func extractWeekly(daily map[string]json.RawMessage) (weeklySeries, error) {
	var (
		series weeklySeries
		err    error
	)
	if err = decodeField(daily, FieldTime, &series.Time); err != nil {
		return weeklySeries{}, err
	}
	if series.Pressure, err = numbers(daily, FieldPressureMean); err != nil {
		return weeklySeries{}, err
	}
	if series.TempMax, err = numbers(daily, FieldTemperatureMax); err != nil {
		return weeklySeries{}, err
	}
	if series.TempMin, err = numbers(daily, FieldTemperatureMin); err != nil {
		return weeklySeries{}, err
	}
	if series.Sunshine, err = numbers(daily, FieldSunshineDuration); err != nil {
		return weeklySeries{}, err
	}
	if series.Codes, err = numbers(daily, FieldWeatherCode); err != nil {
		return weeklySeries{}, err
	}
	return series, nil
}

func numbers(daily map[string]json.RawMessage, field string) ([]*float64, error) {
	var out []*float64
	if err := decodeField(daily, field, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func decodeField(daily map[string]json.RawMessage, field string, dst any) error {
	value, ok := daily[field]
	if !ok || len(bytes.TrimSpace(value)) == 0 {
		return nil
	}
	if err := json.Unmarshal(value, dst); err != nil {
		return fmt.Errorf("decode daily.%s: %w", field, err)
	}
	return nil
}

// summarizeWeekly derives the weekly statistics. dates is echoed when the
// provider returned no time axis.
func summarizeWeekly(raw RawForecast, series weeklySeries, dates DateRange) WeeklySummary {
	summary := WeeklySummary{
		Latitude:  raw.Latitude,
		Longitude: raw.Longitude,
		StartDate: dates.Start,
		EndDate:   dates.End,
	}

	if avg, ok := mean(series.Pressure); ok {
		summary.AvgPressureHPa = ptr(roundTo(avg, 1))
	}
	if v, ok := maxOf(series.TempMax); ok {
		summary.WeeklyMaxTemp = ptr(v)
	}
	if v, ok := minOf(series.TempMin); ok {
		summary.WeeklyMinTemp = ptr(v)
	}
	if avg, ok := mean(series.Sunshine); ok {
		summary.AvgSunshineHours = ptr(roundTo(avg/3600, 2))
	}
	if v, ok := mode(series.Codes); ok {
		summary.MostFrequentWeatherCode = ptr(v)
	}
	if len(series.Time) > 0 {
		summary.StartDate = series.Time[0]
		summary.EndDate = series.Time[len(series.Time)-1]
	}
	return summary
}

func ptr(v float64) *float64 {
	return &v
}
