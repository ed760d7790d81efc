//go:build darwin || freebsd || netbsd || openbsd

package clock

import "golang.org/x/sys/unix"

const Default ID = unix.CLOCK_MONOTONIC

var names = map[string]ID{
	"CLOCK_MONOTONIC": unix.CLOCK_MONOTONIC,
}

func gettime(id ID) (int64, int64, error) {
	var ts unix.Timespec
	if err := unix.ClockGettime(int32(id), &ts); err != nil {
		return 0, 0, err
	}
	sec, nsec := ts.Unix()
	return sec, nsec, nil
}
