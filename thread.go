package concur

import (
	"runtime"

	"code.hybscloud.com/atomix"
)

var nextThreadID atomix.Uint64

// Thread is a detached, non-joinable goroutine wrapper carrying a logical
// affinity id (LogicalMain, LogicalComm, or LogicalWorker) and, for pool
// workers, an index used to spread bound workers across their configured
// CPU range. Construction does not start the thread; Start does, and its
// lifetime ends when the wrapped function returns.
type Thread struct {
	_         noCopy
	id        uint64
	logicalID int
	poolIndex int
	fn        func()
}

// NewThread constructs a Thread bound to the given logical affinity id.
// poolIndex is only meaningful for LogicalWorker and should be -1
// otherwise.
func NewThread(logicalID, poolIndex int, fn func()) *Thread {
	return &Thread{
		id:        nextThreadID.AddAcqRel(1),
		logicalID: logicalID,
		poolIndex: poolIndex,
		fn:        fn,
	}
}

// ID returns the thread's process-unique identifier.
func (t *Thread) ID() uint64 { return t.id }

// Start creates the underlying goroutine, locks it to its OS thread so
// affinity pinning sticks, applies the current AffinityPolicy for this
// thread's logical id, and invokes its function. Start does not block.
func (t *Thread) Start() {
	go func() {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		applyAffinity(t.logicalID, t.poolIndex)
		t.fn()
	}()
}

// SetAffinity pins the calling OS thread to the CPU(s) the current
// AffinityPolicy assigns to logicalID, using poolIndex the same way
// Thread.Start does for LogicalWorker (pass -1 for LogicalMain and
// LogicalComm). Thread.Start locks its own goroutine to its OS thread
// before pinning; a caller of SetAffinity must have already called
// runtime.LockOSThread for the pin to persist across the current
// goroutine's lifetime rather than just its current OS thread residency.
func SetAffinity(logicalID, poolIndex int) error {
	if logicalID < LogicalMain || logicalID > LogicalWorker {
		return newError(ConfigErrorKind, "set affinity: logical id out of range")
	}
	applyAffinity(logicalID, poolIndex)
	return nil
}

// applyAffinity pins the calling OS thread per the process-wide
// AffinityPolicy. Failures are logged and swallowed: the thread still
// runs, just unpinned.
func applyAffinity(logicalID, poolIndex int) {
	policy := currentAffinityPolicy()
	lo, hi := policy.CPULo[logicalID], policy.CPUHi[logicalID]

	if !policy.Bind[logicalID] {
		// Unbound: the thread may float across [cpu_lo, ncpu-1].
		if err := pinCPURange(lo, runtime.NumCPU()-1); err != nil {
			logAffinityFailure(logicalID, lo, err)
		}
		return
	}

	if logicalID == LogicalWorker && poolIndex >= 0 {
		width := hi - lo + 1
		cpu := lo + poolIndex%width
		if err := pinCPURange(cpu, cpu); err != nil {
			logAffinityFailure(logicalID, cpu, err)
		}
		return
	}

	if err := pinCPURange(lo, hi); err != nil {
		logAffinityFailure(logicalID, lo, err)
	}
}
