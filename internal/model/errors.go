package model

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptySeries is returned when there is no input data to compute on.
	ErrEmptySeries = errors.New("empty series")
	// ErrUnorderedSeries is returned when bars are not strictly increasing by time.
	ErrUnorderedSeries = errors.New("series not strictly increasing by time")
	// ErrNoDataAvailable is returned when no bar has every derived column defined.
	ErrNoDataAvailable = errors.New("no fully-defined bar available")
)

// InvalidWindowError reports a window parameter that is non-positive or can
// never be fully populated by a series of the given length.
type InvalidWindowError struct {
	Name   string
	Window int
	Length int
}

func (e *InvalidWindowError) Error() string {
	if e.Window <= 0 {
		return fmt.Sprintf("invalid window %s=%d: must be positive", e.Name, e.Window)
	}
	return fmt.Sprintf("invalid window %s=%d: series of %d bars can never populate it", e.Name, e.Window, e.Length)
}
