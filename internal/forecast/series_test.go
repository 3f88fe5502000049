package forecast

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var (
	refTime = time.Date(2026, 8, 27, 8, 0, 0, 0, time.UTC)
	t10     = time.Date(2026, 8, 27, 10, 0, 0, 0, time.UTC)
	t11     = time.Date(2026, 8, 27, 11, 0, 0, 0, time.UTC)
	t12     = time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)
)

// threeSampleSeries builds the canonical fixture: samples at 10:00, 11:00 and
// 12:00 with temperatures 5.0, 6.0 and 7.0. The map is keyed out of order on
// purpose; assembly must sort.
func threeSampleSeries(t *testing.T) *Series {
	t.Helper()
	s := NewSeries(Observations{
		t12: {"t": 7.0, "ws": 4.5, "r": 70.0},
		t10: {"t": 5.0, "ws": 3.1, "r": 85.0},
		t11: {"t": 6.0, "ws": 3.8, "r": 78.0},
	}, refTime, 59.3293, 18.0686)
	requireSorted(t, s.Samples())
	return s
}

func requireSorted(t *testing.T, samples []Sample) {
	t.Helper()
	for i := 1; i < len(samples); i++ {
		require.LessOrEqual(t, samples[i-1].Compare(samples[i]), 0,
			"samples out of order at %d", i)
	}
}

func TestSeriesProvenance(t *testing.T) {
	s := threeSampleSeries(t)

	require.Equal(t, refTime, s.ReferenceTime())
	require.Equal(t, 59.3293, s.Latitude())
	require.Equal(t, 18.0686, s.Longitude())
	require.Equal(t, 3, s.Len())
}

func TestAtMatchesSamples(t *testing.T) {
	s := threeSampleSeries(t)
	all := s.Samples()

	for i := range all {
		got, err := s.At(i)
		require.NoError(t, err)
		require.Equal(t, all[i], got)
	}
}

func TestAtOutOfRange(t *testing.T) {
	s := threeSampleSeries(t)

	_, err := s.At(-1)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = s.At(3)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
}

// TestAtTimeMatchesLinearScan checks the binary search against a linear scan
// for probes around every boundary of the fixture.
func TestAtTimeMatchesLinearScan(t *testing.T) {
	s := threeSampleSeries(t)

	probes := []time.Time{
		t10.Add(-time.Hour),
		t10,
		t10.Add(time.Minute),
		t11,
		t11.Add(30 * time.Minute),
		t12,
	}

	for _, probe := range probes {
		var want Sample
		found := false
		for _, smp := range s.Samples() {
			if !smp.Timestamp().Before(probe) {
				want = smp
				found = true
				break
			}
		}
		require.True(t, found)

		got, err := s.AtTime(probe)
		require.NoError(t, err, "probe %s", probe)
		require.Equal(t, want.Values(), got, "probe %s", probe)
	}
}

func TestAtTimeAfterLastSample(t *testing.T) {
	s := threeSampleSeries(t)

	_, err := s.AtTime(time.Date(2026, 8, 27, 13, 0, 0, 0, time.UTC))
	require.ErrorIs(t, err, ErrNoMatch)
}

func TestBetweenInclusive(t *testing.T) {
	s := threeSampleSeries(t)

	sub, err := s.Between(t10, t11)
	require.NoError(t, err)
	require.Equal(t, 2, sub.Len())
	requireSorted(t, sub.Samples())
	require.Equal(t, refTime, sub.ReferenceTime())
}

func TestBetweenMidpoints(t *testing.T) {
	s := threeSampleSeries(t)

	sub, err := s.Between(t10.Add(30*time.Minute), t11.Add(30*time.Minute))
	require.NoError(t, err)
	require.Equal(t, 1, sub.Len())

	only, err := sub.At(0)
	require.NoError(t, err)
	require.Equal(t, t11, only.Timestamp())
}

func TestBetweenFullRangeIsIdempotent(t *testing.T) {
	s := threeSampleSeries(t)

	sub, err := s.Between(t10, t12)
	require.NoError(t, err)
	require.Equal(t, s.Samples(), sub.Samples())
}

func TestBetweenRange(t *testing.T) {
	s := threeSampleSeries(t)

	sub, err := s.BetweenRange(TimeRange{Start: t11, End: t12})
	require.NoError(t, err)
	require.Equal(t, 2, sub.Len())
}

func TestBetweenInvalidRange(t *testing.T) {
	s := threeSampleSeries(t)

	_, err := s.Between(t12, t10)
	require.ErrorIs(t, err, ErrInvalidRange)
}

// TestBeforeAfterPartition checks that Before(t), the sample at t and
// After(t) partition the series.
func TestBeforeAfterPartition(t *testing.T) {
	s := threeSampleSeries(t)

	before := s.Before(t11)
	after := s.After(t11)

	require.Equal(t, 1, before.Len())
	require.Equal(t, 1, after.Len())
	require.Equal(t, s.Len(), before.Len()+after.Len()+1)

	first, err := before.At(0)
	require.NoError(t, err)
	require.Equal(t, t10, first.Timestamp())

	last, err := after.At(0)
	require.NoError(t, err)
	require.Equal(t, t12, last.Timestamp())
}

func TestUntilAliasesBefore(t *testing.T) {
	s := threeSampleSeries(t)
	require.Equal(t, s.Before(t11).Samples(), s.Until(t11).Samples())
}

func TestProjectScalarAtTime(t *testing.T) {
	s := threeSampleSeries(t)

	temps, err := s.Project("temperature")
	require.NoError(t, err)

	// First sample at or after 11:30 is the 12:00 one.
	v, err := temps.AtTime(t11.Add(30 * time.Minute))
	require.NoError(t, err)
	require.Equal(t, 7.0, v)
}

func TestProjectMatchesUnprojectedLookup(t *testing.T) {
	s := threeSampleSeries(t)

	temps, err := s.Project("t")
	require.NoError(t, err)

	for _, probe := range []time.Time{t10, t11, t12} {
		scalar, err := temps.AtTime(probe)
		require.NoError(t, err)

		full, err := s.AtTime(probe)
		require.NoError(t, err)
		require.Equal(t, full["t"], scalar)
	}
}

func TestProjectAliasEquivalence(t *testing.T) {
	s := threeSampleSeries(t)

	byAlias, err := s.Project("temperature")
	require.NoError(t, err)
	byKey, err := s.Project("t")
	require.NoError(t, err)

	require.Equal(t, byKey.Key(), byAlias.Key())
	require.Equal(t, byKey.Samples(), byAlias.Samples())
	require.Equal(t, byKey.Values(), byAlias.Values())
}

func TestProjectSingleKeySamples(t *testing.T) {
	s := threeSampleSeries(t)

	winds, err := s.Project("wind_speed")
	require.NoError(t, err)
	require.Equal(t, "ws", winds.Key())

	for smp := range winds.All() {
		require.Len(t, smp.Values(), 1)
	}
	require.Equal(t, []float64{3.1, 3.8, 4.5}, winds.Values())
}

func TestProjectUnknownParameter(t *testing.T) {
	s := threeSampleSeries(t)

	_, err := s.Project("bogus")
	require.ErrorIs(t, err, ErrUnknownParameter)
}

func TestProjectSkipsSamplesWithoutParameter(t *testing.T) {
	s := NewSeries(Observations{
		t10: {"t": 5.0, "gust": 9.0},
		t11: {"t": 6.0},
		t12: {"t": 7.0, "gust": 11.0},
	}, refTime, 59.3293, 18.0686)

	gusts, err := s.Project("gust")
	require.NoError(t, err)
	require.Equal(t, 2, gusts.Len())
	requireSorted(t, gusts.Samples())
}

func TestParameterSeriesNarrowingStaysProjected(t *testing.T) {
	s := threeSampleSeries(t)

	temps, err := s.Project("temperature")
	require.NoError(t, err)

	sub, err := temps.Between(t10, t11)
	require.NoError(t, err)
	require.Equal(t, "t", sub.Key())
	require.Equal(t, 2, sub.Len())

	v, err := sub.AtTime(t10.Add(time.Minute))
	require.NoError(t, err)
	require.Equal(t, 6.0, v)

	require.Equal(t, 1, temps.After(t11).Len())
	require.Equal(t, 1, temps.Before(t11).Len())
	require.Equal(t, temps.Before(t11).Values(), temps.Until(t11).Values())
}

func TestAllIsRestartable(t *testing.T) {
	s := threeSampleSeries(t)

	seq := s.All()
	for range 2 {
		var count int
		for range seq {
			count++
		}
		require.Equal(t, 3, count)
	}
}

func TestIndexDispatch(t *testing.T) {
	s := threeSampleSeries(t)

	got, err := s.Index(1)
	require.NoError(t, err)
	smp, ok := got.(Sample)
	require.True(t, ok)
	require.Equal(t, t11, smp.Timestamp())

	got, err = s.Index(t11)
	require.NoError(t, err)
	values, ok := got.(map[string]float64)
	require.True(t, ok)
	require.Equal(t, 6.0, values["t"])

	got, err = s.Index("temperature")
	require.NoError(t, err)
	_, ok = got.(*ParameterSeries)
	require.True(t, ok)
}

func TestIndexUnknownOperation(t *testing.T) {
	s := threeSampleSeries(t)

	_, err := s.Index("bogus")
	require.ErrorIs(t, err, ErrUnknownOperation)

	_, err = s.Index(3.14)
	require.ErrorIs(t, err, ErrUnknownOperation)
}

func TestNewSeriesFromSampleSlice(t *testing.T) {
	parent := threeSampleSeries(t)

	// Deliberately reversed; the constructor must restore the sort.
	samples := parent.Samples()
	samples[0], samples[2] = samples[2], samples[0]

	s, err := NewSeriesFrom(samples, refTime, 59.3293, 18.0686)
	require.NoError(t, err)
	requireSorted(t, s.Samples())
	require.Equal(t, parent.Samples(), s.Samples())
}

func TestNewSeriesFromObservations(t *testing.T) {
	s, err := NewSeriesFrom(Observations{t10: {"t": 5.0}}, refTime, 59.3293, 18.0686)
	require.NoError(t, err)
	require.Equal(t, 1, s.Len())
}

func TestNewSeriesFromIllegalArgument(t *testing.T) {
	_, err := NewSeriesFrom("not a series source", refTime, 59.3293, 18.0686)
	require.ErrorIs(t, err, ErrIllegalArgument)
}

func TestNewSeriesDropsUnknownParameterNames(t *testing.T) {
	s := NewSeries(Observations{
		t10: {"t": 5.0, "no_such_param": 1.0},
	}, refTime, 59.3293, 18.0686)

	smp, err := s.At(0)
	require.NoError(t, err)
	require.Equal(t, map[string]float64{"t": 5.0}, smp.Values())
}

func TestStringListsSamples(t *testing.T) {
	s := threeSampleSeries(t)

	out := s.String()
	require.Contains(t, out, "3 samples")
	require.Contains(t, out, "2026-08-27T10:00:00Z")
	require.Contains(t, out, "2026-08-27T12:00:00Z")
}
