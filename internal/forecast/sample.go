package forecast

import (
	"encoding/json"
	"fmt"
	"maps"
	"time"
)

// Sample is one timestamped set of weather parameter values. It is immutable
// after construction; a parent series and its narrowed children share the same
// Sample values by reference.
type Sample struct {
	timestamp time.Time
	values    map[string]float64
}

// newSample copies values so later changes to the caller's map cannot leak in.
// Keys are assumed canonical; the builder resolves them before calling.
func newSample(timestamp time.Time, values map[string]float64) Sample {
	return Sample{
		timestamp: timestamp,
		values:    maps.Clone(values),
	}
}

// Timestamp returns the instant this sample is valid for.
func (s Sample) Timestamp() time.Time {
	return s.timestamp
}

// Values returns a copy of the parameter mapping.
func (s Sample) Values() map[string]float64 {
	return maps.Clone(s.values)
}

// ValueOf resolves name through the parameter registry and returns the scalar
// stored under the resolved key, or ErrMissingParameter if this sample does
// not carry it.
func (s Sample) ValueOf(name string) (float64, error) {
	key, err := Resolve(name)
	if err != nil {
		return 0, err
	}
	v, ok := s.values[key]
	if !ok {
		return 0, fmt.Errorf("%w: %q at %s", ErrMissingParameter, key, s.timestamp.Format(time.RFC3339))
	}
	return v, nil
}

// Compare orders samples by timestamp only; values are ignored.
func (s Sample) Compare(other Sample) int {
	return s.timestamp.Compare(other.timestamp)
}

func (s Sample) String() string {
	return fmt.Sprintf("%s %v", s.timestamp.Format(time.RFC3339), s.values)
}

// MarshalJSON emits the SMHI-style validTime/values shape used by the HTTP API.
func (s Sample) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ValidTime time.Time          `json:"validTime"`
		Values    map[string]float64 `json:"values"`
	}{
		ValidTime: s.timestamp,
		Values:    s.values,
	})
}
