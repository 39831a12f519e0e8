//go:build !unix

package bench

import "runtime"

const memoryMethod = "runtime.MemStats"

// MemoryUsage falls back to the memory obtained from the OS by the Go runtime.
func MemoryUsage() uint64 {
	var stats runtime.MemStats
	runtime.ReadMemStats(&stats)
	return stats.Sys
}
