package concur

import (
	"time"

	"code.hybscloud.com/spin"
)

// Tier thresholds for BackoffWaiter, contractual per the busy-loop
// strategy this package's mutexes and deque use throughout. sSpin calls
// busy-spin (~10ms of polling at a 1GHz-equivalent pause rate covers short
// contention without a syscall); the next sNap calls sleep 1ms; everything
// after sleeps 10ms.
const (
	sSpin = 10_000_000
	sNap  = 1_000

	napSleep   = 1 * time.Millisecond
	longSleep  = 10 * time.Millisecond
)

// BackoffWaiter is a per-call-site adaptive spin/sleep throttle used
// inside every busy loop in this package: mutex/spinlock acquisition
// retries, fair-mutex and condition-variable flag spins, and
// reader/writer conversion retries.
//
// It is not safe for concurrent use by multiple goroutines; each caller
// that needs backoff should own its own BackoffWaiter.
type BackoffWaiter struct {
	count uint64
}

// Wait advances the waiter one step and blocks according to its current
// tier: busy-spin for the first sSpin calls, then sleep 1ms for the next
// sNap calls, then sleep 10ms indefinitely.
func (b *BackoffWaiter) Wait() {
	b.count++
	switch {
	case b.count <= sSpin:
		var sw spin.Wait
		sw.Once()
	case b.count <= sSpin+sNap:
		time.Sleep(napSleep)
	default:
		time.Sleep(longSleep)
	}
}

// Reset returns the waiter to its initial tier.
func (b *BackoffWaiter) Reset() {
	b.count = 0
}
