package forecast

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSampleValueOf(t *testing.T) {
	ts := time.Date(2026, 8, 27, 10, 0, 0, 0, time.UTC)
	s := newSample(ts, map[string]float64{"t": 5.0, "r": 80.0})

	v, err := s.ValueOf("t")
	require.NoError(t, err)
	require.Equal(t, 5.0, v)

	v, err = s.ValueOf("temperature")
	require.NoError(t, err)
	require.Equal(t, 5.0, v)
}

func TestSampleValueOfMissing(t *testing.T) {
	ts := time.Date(2026, 8, 27, 10, 0, 0, 0, time.UTC)
	s := newSample(ts, map[string]float64{"t": 5.0})

	_, err := s.ValueOf("wind_speed")
	require.ErrorIs(t, err, ErrMissingParameter)
}

func TestSampleValueOfUnknown(t *testing.T) {
	s := newSample(time.Now(), map[string]float64{"t": 5.0})

	_, err := s.ValueOf("bogus")
	require.ErrorIs(t, err, ErrUnknownParameter)
}

func TestSampleCompareUsesTimestampOnly(t *testing.T) {
	earlier := time.Date(2026, 8, 27, 10, 0, 0, 0, time.UTC)
	later := earlier.Add(time.Hour)

	a := newSample(earlier, map[string]float64{"t": 5.0})
	b := newSample(later, map[string]float64{"t": 6.0})
	c := newSample(earlier, map[string]float64{"t": 100.0})

	require.Negative(t, a.Compare(b))
	require.Positive(t, b.Compare(a))
	require.Zero(t, a.Compare(c))
}

func TestSampleValuesIsACopy(t *testing.T) {
	ts := time.Date(2026, 8, 27, 10, 0, 0, 0, time.UTC)
	s := newSample(ts, map[string]float64{"t": 5.0})

	values := s.Values()
	values["t"] = 99.0

	v, err := s.ValueOf("t")
	require.NoError(t, err)
	require.Equal(t, 5.0, v)
}
