//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd

package clock

import "errors"

// no clock_gettime(2) on this platform
const Default ID = 0

var names = map[string]ID{}

func gettime(id ID) (int64, int64, error) {
	return 0, 0, errors.New("clock_gettime not supported on this platform")
}
