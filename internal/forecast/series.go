package forecast

import (
	"fmt"
	"iter"
	"sort"
	"strings"
	"time"
)

// Series is an ordered, time-sorted sequence of Samples together with the
// provenance of the forecast they came from: the reference time of the model
// run and the grid point it was issued for.
//
// A Series is immutable. Every narrowing operation (Between, Before, After,
// Project) returns a new Series or ParameterSeries carrying the same
// provenance and sharing the underlying Samples; nothing is copied or
// re-sorted because filtering preserves the sort order established at
// construction.
type Series struct {
	samples       []Sample
	referenceTime time.Time
	latitude      float64
	longitude     float64
}

// TimeRange is an inclusive [Start, End] interval.
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// ReferenceTime returns the instant the forecast was issued.
func (f *Series) ReferenceTime() time.Time { return f.referenceTime }

// Latitude returns the forecast point's latitude in decimal degrees.
func (f *Series) Latitude() float64 { return f.latitude }

// Longitude returns the forecast point's longitude in decimal degrees.
func (f *Series) Longitude() float64 { return f.longitude }

// Len returns the number of samples.
func (f *Series) Len() int { return len(f.samples) }

// At returns the n-th sample, 0-based.
func (f *Series) At(n int) (Sample, error) {
	if n < 0 || n >= len(f.samples) {
		return Sample{}, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, n, len(f.samples))
	}
	return f.samples[n], nil
}

// AtTime returns the parameter mapping of the first sample whose timestamp is
// at or after t, located by binary search. ErrNoMatch is a hard failure, not
// an empty result: t falling after the last sample means this forecast run
// simply does not cover the requested instant.
func (f *Series) AtTime(t time.Time) (map[string]float64, error) {
	s, err := f.sampleAt(t)
	if err != nil {
		return nil, err
	}
	return s.Values(), nil
}

func (f *Series) sampleAt(t time.Time) (Sample, error) {
	i := sort.Search(len(f.samples), func(i int) bool {
		return !f.samples[i].timestamp.Before(t)
	})
	if i == len(f.samples) {
		return Sample{}, fmt.Errorf("%w: %s", ErrNoMatch, t.Format(time.RFC3339))
	}
	return f.samples[i], nil
}

// Between returns the sub-series of samples with start <= timestamp <= end.
func (f *Series) Between(start, end time.Time) (*Series, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end %s before start %s", ErrInvalidRange,
			end.Format(time.RFC3339), start.Format(time.RFC3339))
	}
	return f.filter(func(ts time.Time) bool {
		return !ts.Before(start) && !ts.After(end)
	}), nil
}

// BetweenRange is Between taking a single range value.
func (f *Series) BetweenRange(r TimeRange) (*Series, error) {
	return f.Between(r.Start, r.End)
}

// Before returns the sub-series of samples strictly before t.
func (f *Series) Before(t time.Time) *Series {
	return f.filter(func(ts time.Time) bool { return ts.Before(t) })
}

// Until is an alias for Before.
func (f *Series) Until(t time.Time) *Series { return f.Before(t) }

// After returns the sub-series of samples strictly after t.
func (f *Series) After(t time.Time) *Series {
	return f.filter(func(ts time.Time) bool { return ts.After(t) })
}

// filter keeps samples whose timestamp satisfies keep. Relative order is
// preserved, so the sorted invariant holds without re-sorting.
func (f *Series) filter(keep func(time.Time) bool) *Series {
	kept := make([]Sample, 0, len(f.samples))
	for _, s := range f.samples {
		if keep(s.timestamp) {
			kept = append(kept, s)
		}
	}
	return newSeriesFromSamples(kept, f.referenceTime, f.latitude, f.longitude)
}

// Project narrows the series to a single parameter. The name is resolved
// through the registry; each resulting sample carries only the resolved key.
// Samples that do not report the parameter are dropped.
func (f *Series) Project(name string) (*ParameterSeries, error) {
	key, err := Resolve(name)
	if err != nil {
		return nil, err
	}
	projected := make([]Sample, 0, len(f.samples))
	for _, s := range f.samples {
		v, ok := s.values[key]
		if !ok {
			continue
		}
		projected = append(projected, newSample(s.timestamp, map[string]float64{key: v}))
	}
	return &ParameterSeries{
		series: Series{
			samples:       projected,
			referenceTime: f.referenceTime,
			latitude:      f.latitude,
			longitude:     f.longitude,
		},
		key: key,
	}, nil
}

// Samples returns the ordered samples. The returned slice is the caller's to
// keep; the Sample values themselves are shared and immutable.
func (f *Series) Samples() []Sample {
	out := make([]Sample, len(f.samples))
	copy(out, f.samples)
	return out
}

// All iterates the samples in ascending time order without copying. The
// sequence is restartable.
func (f *Series) All() iter.Seq[Sample] {
	return func(yield func(Sample) bool) {
		for _, s := range f.samples {
			if !yield(s) {
				return
			}
		}
	}
}

// String is a debug listing of every sample; diagnostics only.
func (f *Series) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "forecast %s (%.6f, %.6f), %d samples\n",
		f.referenceTime.Format(time.RFC3339), f.latitude, f.longitude, len(f.samples))
	for _, s := range f.samples {
		fmt.Fprintf(&b, "  %s\n", s)
	}
	return b.String()
}

// ParameterSeries is a Series narrowed to a single parameter. It offers the
// same query surface, but every further narrowing stays single-parameter and
// AtTime returns the bare scalar instead of a one-entry mapping.
type ParameterSeries struct {
	series Series
	key    string
}

// Key returns the canonical key this series was projected to.
func (p *ParameterSeries) Key() string { return p.key }

// ReferenceTime returns the instant the forecast was issued.
func (p *ParameterSeries) ReferenceTime() time.Time { return p.series.referenceTime }

// Latitude returns the forecast point's latitude in decimal degrees.
func (p *ParameterSeries) Latitude() float64 { return p.series.latitude }

// Longitude returns the forecast point's longitude in decimal degrees.
func (p *ParameterSeries) Longitude() float64 { return p.series.longitude }

// Len returns the number of samples.
func (p *ParameterSeries) Len() int { return p.series.Len() }

// At returns the n-th sample, 0-based.
func (p *ParameterSeries) At(n int) (Sample, error) { return p.series.At(n) }

// AtTime returns the projected parameter's value in the first sample at or
// after t.
func (p *ParameterSeries) AtTime(t time.Time) (float64, error) {
	s, err := p.series.sampleAt(t)
	if err != nil {
		return 0, err
	}
	return s.values[p.key], nil
}

// Between returns the sub-series of samples with start <= timestamp <= end.
func (p *ParameterSeries) Between(start, end time.Time) (*ParameterSeries, error) {
	sub, err := p.series.Between(start, end)
	if err != nil {
		return nil, err
	}
	return &ParameterSeries{series: *sub, key: p.key}, nil
}

// BetweenRange is Between taking a single range value.
func (p *ParameterSeries) BetweenRange(r TimeRange) (*ParameterSeries, error) {
	return p.Between(r.Start, r.End)
}

// Before returns the sub-series of samples strictly before t.
func (p *ParameterSeries) Before(t time.Time) *ParameterSeries {
	return &ParameterSeries{series: *p.series.Before(t), key: p.key}
}

// Until is an alias for Before.
func (p *ParameterSeries) Until(t time.Time) *ParameterSeries { return p.Before(t) }

// After returns the sub-series of samples strictly after t.
func (p *ParameterSeries) After(t time.Time) *ParameterSeries {
	return &ParameterSeries{series: *p.series.After(t), key: p.key}
}

// Samples returns the ordered single-parameter samples.
func (p *ParameterSeries) Samples() []Sample { return p.series.Samples() }

// All iterates the samples in ascending time order without copying.
func (p *ParameterSeries) All() iter.Seq[Sample] { return p.series.All() }

// Values returns the projected parameter's scalars in ascending time order.
func (p *ParameterSeries) Values() []float64 {
	out := make([]float64, 0, len(p.series.samples))
	for _, s := range p.series.samples {
		out = append(out, s.values[p.key])
	}
	return out
}

func (p *ParameterSeries) String() string {
	return fmt.Sprintf("%s of %s", p.key, p.series.String())
}
