package forecast

import "errors"

var (
	// ErrUnknownParameter is returned when a name resolves to neither a
	// canonical parameter key nor a known alias.
	ErrUnknownParameter = errors.New("unknown parameter")

	// ErrMissingParameter is returned when a resolved key is absent from a
	// particular sample's values.
	ErrMissingParameter = errors.New("parameter not present in sample")

	// ErrIndexOutOfRange is returned by At for positions outside [0, Len).
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrNoMatch is returned by AtTime when the requested instant is after
	// every sample in the series.
	ErrNoMatch = errors.New("no forecast at or after the requested time")

	// ErrInvalidRange is returned by Between when the range end precedes its start.
	ErrInvalidRange = errors.New("invalid range arguments")

	// ErrIllegalArgument is returned by NewSeriesFrom for input that is neither
	// a timestamp-keyed observation map nor an ordered sample slice.
	ErrIllegalArgument = errors.New("illegal construction argument")

	// ErrUnknownOperation is returned by the Index facade for keys it cannot
	// dispatch on.
	ErrUnknownOperation = errors.New("unknown operation")
)
