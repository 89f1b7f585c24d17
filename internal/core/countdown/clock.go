package countdown

import (
	"errors"
	"time"
)

// ErrClockUnavailable indicates the wall clock could not be read.
var ErrClockUnavailable = errors.New("clock unavailable")

// Clock supplies wall-clock readings to the engine.
type Clock interface {
	Now() (time.Time, error)
}

// SystemClock reads the host clock.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() (time.Time, error) {
	return time.Now(), nil
}
