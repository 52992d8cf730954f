package clock

import (
	"time"
)

// Clock is an interface around the standard library functions that
// provide time handling. It has been added to aid unit testing.
type Clock interface {
	// Return the current time of day. Equivalent to time.Now().
	//
	// The returned value carries a monotonic clock reading, so that
	// durations between two calls may be computed reliably using
	// time.Time.Sub().
	Now() time.Time
}
