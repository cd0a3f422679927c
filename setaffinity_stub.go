//go:build !linux || tinygo

package concur

// pinCPURange is a no-op on platforms without sched_setaffinity. The
// thread still runs, unpinned, matching the "non-fatal" contract for
// affinity failures.
func pinCPURange(lo, hi int) error {
	return nil
}
