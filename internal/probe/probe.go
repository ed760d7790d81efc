package probe

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/stevenpelley/startprobe/internal/clock"
)

// exit codes
const (
	SUCCESS           = 0
	CLOCK_UNAVAILABLE = 1
	OUTPUT_ERROR      = 2
	INPUT_ERROR       = 127
)

var ErrOutput = errors.New("writing timestamp")

// returns seconds on a monotonic clock, or clock.Unset and an error
type Clock func() (float64, error)

type ExitError struct {
	Message      string
	ExitCode     int
	DisplayUsage bool
	Cause        error
}

func (err *ExitError) Error() string {
	if err.Cause == nil {
		return err.Message
	}
	return fmt.Sprintf("%v: %v", err.Message, err.Cause)
}

func (err *ExitError) Unwrap() error {
	return err.Cause
}

// ExitErrorFor maps an error from Measure (or argument handling) to the
// process's exit code.  nil stays nil; an *ExitError is returned as is.
func ExitErrorFor(err error) *ExitError {
	if err == nil {
		return nil
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}
	switch {
	case errors.Is(err, clock.ErrUnknownClock):
		return &ExitError{
			Message:      "invalid clock",
			ExitCode:     INPUT_ERROR,
			DisplayUsage: true,
			Cause:        err}
	case errors.Is(err, clock.ErrClockUnavailable):
		return &ExitError{
			Message:  "no timestamp",
			ExitCode: CLOCK_UNAVAILABLE,
			Cause:    err}
	case errors.Is(err, ErrOutput):
		return &ExitError{
			Message:  "no timestamp",
			ExitCode: OUTPUT_ERROR,
			Cause:    err}
	}
	panic(fmt.Sprintf("no exit code for error: %v", err))
}

// Format renders seconds as the tail of the harness's record: six decimal
// places then " ] }" and a newline.  The harness writes the opening "{ ... ["
// itself.
func Format(seconds float64) string {
	return fmt.Sprintf("%f ] }\n", seconds)
}

// Measure reads c once and writes the formatted reading to w.  A failed read
// or a negative reading is an error wrapping clock.ErrClockUnavailable and
// nothing is written.
func Measure(w io.Writer, c Clock) error {
	startTime, err := c()
	if err != nil {
		if !errors.Is(err, clock.ErrClockUnavailable) {
			err = fmt.Errorf("%w: %w", clock.ErrClockUnavailable, err)
		}
		return err
	}
	if startTime < 0 || math.IsNaN(startTime) || math.IsInf(startTime, 0) {
		return fmt.Errorf("%w: clock returned %v", clock.ErrClockUnavailable, startTime)
	}

	// one write so the harness never sees a partial line from us
	if _, err := io.WriteString(w, Format(startTime)); err != nil {
		return fmt.Errorf("%w: %w", ErrOutput, err)
	}
	return nil
}
