package forecast

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func vals(values ...float64) []*float64 {
	out := make([]*float64, 0, len(values))
	for _, v := range values {
		out = append(out, ptr(v))
	}
	return out
}

func TestAggregatesSkipNulls(t *testing.T) {
	series := []*float64{ptr(2), nil, ptr(4)}

	avg, ok := mean(series)
	require.True(t, ok)
	require.Equal(t, 3.0, avg)

	hi, ok := maxOf(series)
	require.True(t, ok)
	require.Equal(t, 4.0, hi)

	lo, ok := minOf(series)
	require.True(t, ok)
	require.Equal(t, 2.0, lo)

	_, ok = mean([]*float64{nil, nil})
	require.False(t, ok)
	_, ok = maxOf(nil)
	require.False(t, ok)
	_, ok = minOf(nil)
	require.False(t, ok)
	_, ok = mode(nil)
	require.False(t, ok)
}

func TestMaxMinHandleNegatives(t *testing.T) {
	hi, _ := maxOf(vals(-5, -2, -9))
	require.Equal(t, -2.0, hi)
	lo, _ := minOf(vals(-5, -2, -9))
	require.Equal(t, -9.0, lo)
}

func TestModeTieGoesToFirstSeen(t *testing.T) {
	v, ok := mode(vals(3, 3, 2))
	require.True(t, ok)
	require.Equal(t, 3.0, v)

	v, _ = mode(vals(61, 2, 2, 61))
	require.Equal(t, 61.0, v)

	v, _ = mode(vals(1, 2, 3))
	require.Equal(t, 1.0, v)

	v, _ = mode(vals(1, 2, 2))
	require.Equal(t, 2.0, v)
}

func TestRoundTo(t *testing.T) {
	require.Equal(t, 1010.0, roundTo(1010, 1))
	require.Equal(t, 1013.3, roundTo(1013.26666, 1))
	require.Equal(t, 1.57, roundTo(1.5694, 2))
	require.Equal(t, -122.42, roundTo(-122.4194, 2))
	require.Equal(t, 0.12, roundTo(0.125, 2))
}
