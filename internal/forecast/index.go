package forecast

import (
	"fmt"
	"time"
)

// Index is a boundary facade over the named query operations, for callers
// that arrive with an untyped key (an HTTP path segment, a scripted lookup).
// The dispatch is on the key's dynamic type:
//
//	int       -> At
//	time.Time -> AtTime
//	TimeRange -> BetweenRange
//	string    -> Project (after registry resolution)
//
// Internal code never goes through here; it calls the named operations.
func (f *Series) Index(key any) (any, error) {
	switch k := key.(type) {
	case int:
		return f.At(k)
	case time.Time:
		return f.AtTime(k)
	case TimeRange:
		return f.BetweenRange(k)
	case string:
		if _, err := Resolve(k); err != nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownOperation, k)
		}
		return f.Project(k)
	default:
		return nil, fmt.Errorf("%w: cannot index with %T", ErrUnknownOperation, key)
	}
}
