package core

import "math"

// Duration is simulated time in seconds. Keeping it a plain float64 keeps
// the event loop free of unit conversions.
type Duration = float64

func Millis(val float64) Duration {
	return val / 1000.0
}

func Micros(val float64) Duration {
	return val / 1000000.0
}

// Returns the larger of two durations
func MaxDuration(d1 Duration, d2 Duration) Duration {
	if d1 >= d2 {
		return d1
	}
	return d2
}

// Returns the smaller of two durations
func MinDuration(d1 Duration, d2 Duration) Duration {
	if d1 <= d2 {
		return d1
	}
	return d2
}

// Helper for float comparison in tests.
func approxEqualTest(a, b, tolerance float64) bool {
	if a == b {
		return true
	}
	return math.Abs(a-b) < tolerance
}
