package clock

import (
	"errors"
	"fmt"
	"sort"
)

// an OS clock id as accepted by clock_gettime(2)
type ID int32

// Unset is the value of a timestamp that has not (yet) been read.  It is
// returned alongside every error and is never a valid reading.
const Unset float64 = -1

var (
	ErrClockUnavailable = errors.New("monotonic clock unavailable")
	ErrUnknownClock     = errors.New("unknown clock")
)

// Lookup returns the clock id for a name such as "CLOCK_MONOTONIC".  Only
// clocks the host supports are known.
func Lookup(name string) (ID, error) {
	id, ok := names[name]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrUnknownClock, name)
	}
	return id, nil
}

// Names lists the clock names accepted by Lookup, sorted.
func Names() []string {
	ns := make([]string, 0, len(names))
	for name := range names {
		ns = append(ns, name)
	}
	sort.Strings(ns)
	return ns
}

// Seconds reads the clock and returns elapsed seconds since the clock's
// (arbitrary) epoch.  On failure it returns Unset and an error wrapping
// ErrClockUnavailable.
func Seconds(id ID) (float64, error) {
	sec, nsec, err := gettime(id)
	if err != nil {
		return Unset, fmt.Errorf("%w: clock id %v: %w", ErrClockUnavailable, id, err)
	}
	if sec < 0 || nsec < 0 {
		return Unset, fmt.Errorf(
			"%w: clock id %v returned negative time %v.%09d",
			ErrClockUnavailable, id, sec, nsec)
	}
	return float64(sec) + float64(nsec)/1e9, nil
}

// MonotonicSeconds reads the Default clock.
func MonotonicSeconds() (float64, error) {
	return Seconds(Default)
}
