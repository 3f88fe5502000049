package forecast

import (
	"fmt"
	"slices"
	"sort"
	"time"
)

// Observations is the parsed form handed over by the decoding collaborator:
// one parameter mapping per valid time. Map iteration order is meaningless,
// so assembly always sorts.
type Observations map[time.Time]map[string]float64

// NewSeries assembles a Series from parsed observations. Parameter names are
// resolved through the registry; names that resolve to nothing are dropped so
// a sample never carries an unknown key.
func NewSeries(obs Observations, referenceTime time.Time, latitude, longitude float64) *Series {
	times := make([]time.Time, 0, len(obs))
	for ts := range obs {
		times = append(times, ts)
	}
	sort.Slice(times, func(i, j int) bool { return times[i].Before(times[j]) })

	samples := make([]Sample, 0, len(times))
	for _, ts := range times {
		values := make(map[string]float64, len(obs[ts]))
		for name, v := range obs[ts] {
			key, err := Resolve(name)
			if err != nil {
				continue
			}
			values[key] = v
		}
		samples = append(samples, newSample(ts, values))
	}

	return &Series{
		samples:       samples,
		referenceTime: referenceTime,
		latitude:      latitude,
		longitude:     longitude,
	}
}

// newSeriesFromSamples wraps an already-ordered sample slice. Narrowing
// operations use this path: the parent was sorted and filtering preserves
// order, so no re-sort happens.
func newSeriesFromSamples(samples []Sample, referenceTime time.Time, latitude, longitude float64) *Series {
	return &Series{
		samples:       samples,
		referenceTime: referenceTime,
		latitude:      latitude,
		longitude:     longitude,
	}
}

// NewSeriesFrom builds a Series from either construction form: an
// Observations map (sorted during assembly) or a []Sample (sorted defensively
// if the caller's order turns out not to hold). Anything else fails with
// ErrIllegalArgument.
func NewSeriesFrom(data any, referenceTime time.Time, latitude, longitude float64) (*Series, error) {
	switch d := data.(type) {
	case Observations:
		return NewSeries(d, referenceTime, latitude, longitude), nil
	case map[time.Time]map[string]float64:
		return NewSeries(Observations(d), referenceTime, latitude, longitude), nil
	case []Sample:
		samples := slices.Clone(d)
		if !slices.IsSortedFunc(samples, Sample.Compare) {
			slices.SortStableFunc(samples, Sample.Compare)
		}
		return newSeriesFromSamples(samples, referenceTime, latitude, longitude), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrIllegalArgument, data)
	}
}
