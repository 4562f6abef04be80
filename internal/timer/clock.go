package timer

import "time"

// Clock abstracts time.Now so tests can drive the timer deterministically.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock. Values carry Go's monotonic reading,
// so wall clock adjustments do not affect measured durations.
var SystemClock Clock = systemClock{}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}
