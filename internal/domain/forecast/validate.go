package forecast

import (
	"math"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/yanqian/weather-proxy/pkg/errors"
	"github.com/yanqian/weather-proxy/pkg/util"
)

// defaultRangeDays is how far past today an open ended range reaches.
const defaultRangeDays = 7

// ParseCoordinate validates raw latitude/longitude strings and rounds them
// to 2 decimals. Bounds are compared against the values truncated to whole
// degrees, so 90.9 is accepted as a latitude while 91 is not.
func ParseCoordinate(lat, lon string) (Coordinate, error) {
	latVal, err := parseNumber(lat)
	if err != nil {
		return Coordinate{}, apperrors.Wrap(apperrors.CodeInvalidInput, MsgNotNumeric, err)
	}
	lonVal, err := parseNumber(lon)
	if err != nil {
		return Coordinate{}, apperrors.Wrap(apperrors.CodeInvalidInput, MsgNotNumeric, err)
	}

	if !within(math.Trunc(latVal), 90) || !within(math.Trunc(lonVal), 180) {
		return Coordinate{}, apperrors.Wrap(apperrors.CodeInvalidInput, MsgOutOfRange, nil)
	}

	return Coordinate{
		Latitude:  roundTo(latVal, 2),
		Longitude: roundTo(lonVal, 2),
	}, nil
}

func parseNumber(raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, strconv.ErrRange
	}
	return v, nil
}

func within(v, bound float64) bool {
	return v >= -bound && v <= bound
}

// ResolveDateRange fills missing bounds from now (today and today+7) and
// checks format and ordering. The returned strings are the caller's input
// when present.
func ResolveDateRange(start, end string, now time.Time) (DateRange, error) {
	start = strings.TrimSpace(start)
	end = strings.TrimSpace(end)
	if start == "" {
		start = util.FormatDate(now)
	}
	if end == "" {
		end = util.FormatDate(util.AddDays(now, defaultRangeDays))
	}

	startDate, err := util.ParseDate(start)
	if err != nil {
		return DateRange{}, apperrors.Wrap(apperrors.CodeInvalidInput, MsgBadDate, err)
	}
	endDate, err := util.ParseDate(end)
	if err != nil {
		return DateRange{}, apperrors.Wrap(apperrors.CodeInvalidInput, MsgBadDate, err)
	}
	if startDate.After(endDate) {
		return DateRange{}, apperrors.Wrap(apperrors.CodeInvalidInput, MsgDateOrder, nil)
	}

	return DateRange{Start: start, End: end}, nil
}
