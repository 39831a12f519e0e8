//go:build unix

package bench

import (
	"runtime"

	"golang.org/x/sys/unix"
)

const memoryMethod = "getrusage()"

// MemoryUsage returns the peak resident set size of the process in bytes,
// zero when it cannot be measured.
func MemoryUsage() uint64 {
	var usage unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &usage); err != nil {
		return 0
	}
	if usage.Maxrss <= 0 {
		return 0
	}
	rss := uint64(usage.Maxrss)
	switch runtime.GOOS {
	case "darwin", "ios":
	default:
		// kilobytes everywhere else
		rss *= 1024
	}
	return rss
}
