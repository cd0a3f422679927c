// Package concur is the concurrency substrate of a parallel numerical
// runtime: mutual-exclusion primitives with varying fairness and
// reader/writer trade-offs, a growable double-ended blocking queue, and a
// singleton worker pool that drains it.
//
// # Primitives
//
// Mutex, Spinlock, and FairMutex all satisfy Locker:
//
//	type Locker interface {
//	    Lock()
//	    Unlock()
//	    TryLock() bool
//	}
//
// ScopedGuard acquires on construction and releases exactly once, on every
// exit path:
//
//	g := concur.Acquire(&mu)
//	defer g.Release()
//
// RWMutex adds a reader/writer state lattice with up/down conversion.
// ConditionVariable is bound to a *Mutex and accumulates signals issued
// while no one is waiting, unlike POSIX condition variables.
//
// # Deque and pool
//
// Deque[T] is a growable circular double-ended queue; Pop* with wait=true
// blocks on an embedded condition variable until an item exists.
//
//	q := concur.NewDeque[int](0)
//	q.PushBack(1)
//	v, ok := q.PopFront(true)
//
// GetPool lazily constructs the process-wide singleton worker pool that
// drains a Deque[PoolTask], honoring HighPriority routing:
//
//	pool := concur.GetPool()
//	pool.Submit(concur.TaskFunc(func() { ... }))
//	pool.End()
//
// POOL_NTHREAD overrides the default worker count (max(1, NumCPU()-1)).
// Set affinity before the first call to GetPool — the pool is constructed
// once and is not reconfigurable afterward.
//
// # Errors
//
// Four kinds surface from this package: LockError and StateError signal an
// invariant violation and are not meant to be recovered from; ConfigError
// is returned from initialization functions before any worker starts;
// ResourceError covers thread/buffer allocation failures. Affinity syscall
// failures are logged and swallowed rather than surfaced as errors.
//
// # Testing
//
// Every primitive here is exercised under go test -race; the deque and
// fair mutex additionally carry ordering tests that check fixed expected
// pop and acquisition sequences.
package concur
